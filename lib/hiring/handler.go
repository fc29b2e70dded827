package hiringhandler

import (
	"context"
	"fmt"
	"time"

	"helpdesk-backend/db"
	approvalstore "helpdesk-backend/lib/approval/store"
	candidateresumestore "helpdesk-backend/lib/candidate-resume/store"
	filestorage "helpdesk-backend/lib/file-storage"
	hrscreeningstore "helpdesk-backend/lib/hr-screening/store"
	interviewstore "helpdesk-backend/lib/interview/store"
	loastore "helpdesk-backend/lib/loa/store"
	requestactivityhandler "helpdesk-backend/lib/request-activity"
	requeststore "helpdesk-backend/lib/request/store"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// согласование CEO и публикация вакансии
	RouteToCEO(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (hiringapimodels.TransitionResult, error)
	CeoDecision(actor models.Actor, requestID string, data hiringapimodels.DecisionData) (hiringapimodels.TransitionResult, error)
	MarkJobPosted(actor models.Actor, requestID string, data hiringapimodels.JobPostedData) (hiringapimodels.TransitionResult, error)
	// кандидаты и решение нанимающего менеджера
	UploadResume(ctx context.Context, actor models.Actor, requestID string, data hiringapimodels.ResumeUploadData) (hiringapimodels.ResumeView, error)
	DeleteResume(ctx context.Context, actor models.Actor, requestID, resumeID string) error
	ListResumes(requestID string) ([]hiringapimodels.ResumeView, error)
	DownloadResume(ctx context.Context, requestID, resumeID string) (hiringapimodels.DownloadFile, error)
	RouteToManager(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (hiringapimodels.TransitionResult, error)
	ManagerDecision(actor models.Actor, requestID string, data hiringapimodels.ManagerDecisionData) (hiringapimodels.TransitionResult, error)
	// интервью и проверка HR
	ScheduleInterview(actor models.Actor, requestID string, data hiringapimodels.ScheduleInterviewData) (hiringapimodels.TransitionResult, error)
	SubmitInterviewFeedback(actor models.Actor, requestID string, data hiringapimodels.InterviewFeedbackData) (hiringapimodels.TransitionResult, error)
	StartHRScreening(actor models.Actor, requestID string, data hiringapimodels.StartScreeningData) (hiringapimodels.TransitionResult, error)
	UpdateScreeningStatus(actor models.Actor, requestID string, data hiringapimodels.UpdateScreeningData) (hiringapimodels.HRScreeningView, error)
	GetInterviewDetails(requestID string) (hiringapimodels.InterviewDetailsView, error)
	GetScreeningDetails(requestID string) (hiringapimodels.HRScreeningView, error)
	// оффер
	UploadLOA(ctx context.Context, actor models.Actor, requestID string, file hiringapimodels.UploadFile) (hiringapimodels.LoaView, error)
	RouteLOAForApproval(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (hiringapimodels.TransitionResult, error)
	ManagerApproveLOA(actor models.Actor, requestID string, data hiringapimodels.DecisionData) (hiringapimodels.TransitionResult, error)
	MarkLOAIssued(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (hiringapimodels.TransitionResult, error)
	UploadSignedLOA(ctx context.Context, actor models.Actor, requestID string, file hiringapimodels.UploadFile) (hiringapimodels.LoaView, error)
	MarkLOAAccepted(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (hiringapimodels.TransitionResult, error)
	GetLOADetails(requestID string) (hiringapimodels.LoaView, error)
	DownloadLOA(ctx context.Context, requestID string, signed bool) (hiringapimodels.DownloadFile, error)

	ListApprovals(requestID string) ([]hiringapimodels.ApprovalView, error)
}

const (
	OpRouteToCEO              = "routeToCEO"
	OpCeoDecision             = "ceoDecision"
	OpMarkJobPosted           = "markJobPosted"
	OpUploadResume            = "uploadResume"
	OpDeleteResume            = "deleteResume"
	OpRouteToManager          = "routeToManager"
	OpManagerDecision         = "managerDecision"
	OpScheduleInterview       = "scheduleInterview"
	OpSubmitInterviewFeedback = "submitInterviewFeedback"
	OpStartHRScreening        = "startHRScreening"
	OpUpdateScreeningStatus   = "updateScreeningStatus"
	OpUploadLOA               = "uploadLOA"
	OpRouteLOAForApproval     = "routeLOAForApproval"
	OpManagerApproveLOA       = "managerApproveLOA"
	OpMarkLOAIssued           = "markLOAIssued"
	OpUploadSignedLOA         = "uploadSignedLOA"
	OpMarkLOAAccepted         = "markLOAAccepted"
)

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, filestorage.Instance)
}

func NewInstance(DB *gorm.DB, fileStorage filestorage.Provider) Provider {
	return impl{
		db:          DB,
		fileStorage: fileStorage,
		now:         time.Now,
	}
}

type impl struct {
	db          *gorm.DB
	fileStorage filestorage.Provider
	now         func() time.Time
}

// stores хранилища, работающие в рамках одной транзакции
type stores struct {
	request   requeststore.Provider
	approval  approvalstore.Provider
	resume    candidateresumestore.Provider
	interview interviewstore.Provider
	screening hrscreeningstore.Provider
	loa       loastore.Provider
	activity  requestactivityhandler.Provider
}

func newStores(tx *gorm.DB) stores {
	return stores{
		request:   requeststore.NewInstance(tx),
		approval:  approvalstore.NewInstance(tx),
		resume:    candidateresumestore.NewInstance(tx),
		interview: interviewstore.NewInstance(tx),
		screening: hrscreeningstore.NewInstance(tx),
		loa:       loastore.NewInstance(tx),
		activity:  requestactivityhandler.NewInstance(tx),
	}
}

func (i impl) getLogger(requestID, operation string, actor *models.Actor) *log.Entry {
	logger := log.
		WithField("request_id", requestID).
		WithField("operation", operation)
	if actor != nil {
		logger = logger.
			WithField("user_id", actor.ID).
			WithField("user_role", actor.Role)
	}
	return logger
}

// inTx все проверки и записи операции выполняются в одной транзакции
func (i impl) inTx(fn func(s stores) error) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		return fn(newStores(tx))
	})
}

func (i impl) readStores() stores {
	return newStores(i.db)
}

func (i impl) getRequest(s stores, requestID string) (*dbmodels.Request, error) {
	rec, err := s.request.GetByID(requestID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil {
		return nil, apperrors.NotFound("заявка не найдена")
	}
	return rec, nil
}

func checkStatus(rec *dbmodels.Request, operation string, allowed ...models.RequestStatus) error {
	if rec.Status.In(allowed...) {
		return nil
	}
	return apperrors.InvalidState("операция %v недоступна в текущем статусе заявки: %v", operation, rec.Status.ToHuman())
}

// checkHiringManager решение за нанимающего менеджера может принять только автор заявки
func checkHiringManager(actor models.Actor, rec *dbmodels.Request) error {
	if rec.IsHiringManager(actor.ID) {
		return nil
	}
	return apperrors.Forbidden("решение может принять только нанимающий менеджер (автор заявки)")
}

// changeStatus переводит заявку в новый статус, если она все еще находится в одном из from
func (i impl) changeStatus(s stores, rec *dbmodels.Request, to models.RequestStatus, from []models.RequestStatus, extra map[string]interface{}) error {
	updMap := map[string]interface{}{
		"status": to,
	}
	for k, v := range extra {
		updMap[k] = v
	}
	changed, err := s.request.ChangeStatus(rec.ID, from, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления статуса заявки")
	}
	if !changed {
		return apperrors.InvalidState("статус заявки был изменен другим пользователем, обновите данные")
	}
	rec.Status = to
	return nil
}

// holdStatus фиксирует, что статус заявки не изменился на момент записи
func (i impl) holdStatus(s stores, rec *dbmodels.Request, allowed ...models.RequestStatus) error {
	changed, err := s.request.ChangeStatus(rec.ID, allowed, map[string]interface{}{
		"updated_at": i.now(),
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления заявки")
	}
	if !changed {
		return apperrors.InvalidState("статус заявки был изменен другим пользователем, обновите данные")
	}
	return nil
}

type activityData struct {
	operation  string
	actType    models.ActivityType
	message    string
	comments   string
	fromStatus models.RequestStatus
	entityID   string
	internal   bool
}

func (i impl) appendActivity(s stores, actor models.Actor, rec *dbmodels.Request, data activityData) error {
	message := data.message
	if data.comments != "" {
		message = fmt.Sprintf("%v. Комментарий: %v", message, data.comments)
	}
	return s.activity.Append(&actor, rec.ID, requestactivityhandler.Entry{
		Type:       data.actType,
		Message:    message,
		IsInternal: data.internal,
		Metadata: dbmodels.ActivityMetadata{
			Operation:  data.operation,
			FromStatus: data.fromStatus,
			ToStatus:   rec.Status,
			Comments:   data.comments,
			EntityID:   data.entityID,
		},
	})
}

func (i impl) requestView(s stores, requestID string) (hiringapimodels.RequestView, error) {
	rec, err := i.getRequest(s, requestID)
	if err != nil {
		return hiringapimodels.RequestView{}, err
	}
	return hiringapimodels.RequestConvert(*rec), nil
}

// logResult пишет в лог итог операции, ожидаемые ошибки процесса пишутся как предупреждение
func logResult(logger *log.Entry, err error, successMsg string) {
	if err == nil {
		logger.Info(successMsg)
		return
	}
	if apperrors.KindOf(err) == apperrors.KindUnexpected {
		logger.WithError(err).Error("ошибка выполнения операции процесса найма")
		return
	}
	logger.WithError(err).Warn("операция процесса найма отклонена")
}

func validate(v interface{ Validate() error }) error {
	return apperrors.Validation(v.Validate())
}

func decisionActivityType(decision models.Decision) models.ActivityType {
	if decision == models.DecisionApproved {
		return models.ActivityApproval
	}
	return models.ActivityRejection
}
