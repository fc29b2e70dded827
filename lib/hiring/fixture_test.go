package hiringhandler

import (
	"context"
	"testing"

	filestorage "helpdesk-backend/lib/file-storage"
	requesthandler "helpdesk-backend/lib/request"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/lib/utils/testdb"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"
	dbmodels "helpdesk-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	agent    = models.Actor{ID: "agent-1", Name: "Иванова Анна", Role: models.AgentRole}
	ceo      = models.Actor{ID: "ceo-1", Name: "Петров Сергей", Role: models.CeoRole}
	manager  = models.Actor{ID: "manager-1", Name: "Смирнов Олег", Role: models.EmployeeRole}
	outsider = models.Actor{ID: "user-2", Name: "Кузнецова Мария", Role: models.EmployeeRole}
)

type fixture struct {
	t        *testing.T
	db       *gorm.DB
	files    filestorage.Provider
	requests requesthandler.Provider
	handler  Provider
}

func newFixture(t *testing.T) *fixture {
	DB := testdb.New(t)
	files := filestorage.NewMemoryStorage()
	return &fixture{
		t:        t,
		db:       DB,
		files:    files,
		requests: requesthandler.NewInstance(DB),
		handler:  NewInstance(DB, files),
	}
}

func requireKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	require.NotNil(t, err)
	require.Equal(t, kind, apperrors.KindOf(err), err.Error())
}

func (f *fixture) createRequest() string {
	view, err := f.requests.Create(manager, hiringapimodels.RequestCreateData{
		Title:       "Backend-разработчик",
		Description: "Вакансия в команду платежей",
		ServiceDesk: models.ServiceDeskHR,
	})
	require.Nil(f.t, err)
	require.Equal(f.t, models.RSSubmitted, view.Status)
	return view.ID
}

func (f *fixture) request(id string) dbmodels.Request {
	rec := dbmodels.Request{}
	require.Nil(f.t, f.db.Where("id = ?", id).First(&rec).Error)
	return rec
}

func (f *fixture) status(id string) models.RequestStatus {
	return f.request(id).Status
}

func (f *fixture) loa(id string) dbmodels.LetterOfAcceptance {
	rec := dbmodels.LetterOfAcceptance{}
	require.Nil(f.t, f.db.Where("request_id = ?", id).First(&rec).Error)
	return rec
}

func (f *fixture) activityCount(id string) int64 {
	var count int64
	require.Nil(f.t, f.db.Model(&dbmodels.RequestActivity{}).Where("request_id = ?", id).Count(&count).Error)
	return count
}

func (f *fixture) setStatus(id string, status models.RequestStatus) {
	require.Nil(f.t, f.db.Model(&dbmodels.Request{}).Where("id = ?", id).Update("status", status).Error)
}

func (f *fixture) uploadResume(id, candidateName string) hiringapimodels.ResumeView {
	resume, err := f.handler.UploadResume(context.TODO(), agent, id, hiringapimodels.ResumeUploadData{
		CandidateName: candidateName,
		Notes:         "5 лет опыта",
		File: hiringapimodels.UploadFile{
			FileName: "resume.pdf",
			MimeType: "application/pdf",
			Body:     []byte("%PDF-1.4 resume of " + candidateName),
		},
	})
	require.Nil(f.t, err)
	return resume
}

func (f *fixture) firstResume(id string) hiringapimodels.ResumeView {
	list, err := f.handler.ListResumes(id)
	require.Nil(f.t, err)
	require.NotEmpty(f.t, list)
	return list[0]
}

func (f *fixture) completeScreening(id string) {
	completed := models.CheckStatusCompleted
	_, err := f.handler.UpdateScreeningStatus(agent, id, hiringapimodels.UpdateScreeningData{
		BackgroundCheckStatus: &completed,
		ReferencesCheckStatus: &completed,
	})
	require.Nil(f.t, err)
}

func loaFile(name string) hiringapimodels.UploadFile {
	return hiringapimodels.UploadFile{
		FileName: name,
		MimeType: "application/pdf",
		Body:     []byte("%PDF-1.4 " + name),
	}
}

// step выполняет один шаг основного сценария найма из текущего статуса
func (f *fixture) step(id string) {
	var err error
	switch f.status(id) {
	case models.RSSubmitted, models.RSInReview:
		_, err = f.handler.RouteToCEO(agent, id, hiringapimodels.CommentsData{Comments: "Бюджет согласован"})
	case models.RSPendingCeoApproval:
		_, err = f.handler.CeoDecision(ceo, id, hiringapimodels.DecisionData{Decision: models.DecisionApproved})
	case models.RSCeoApproved:
		_, err = f.handler.MarkJobPosted(agent, id, hiringapimodels.JobPostedData{JobPostingURL: "https://jobs.example.com/backend"})
	case models.RSJobPosted:
		f.uploadResume(id, "Алексеев Дмитрий")
		_, err = f.handler.RouteToManager(agent, id, hiringapimodels.CommentsData{})
	case models.RSPendingManagerReview:
		_, err = f.handler.ManagerDecision(manager, id, hiringapimodels.ManagerDecisionData{
			DecisionData:        hiringapimodels.DecisionData{Decision: models.DecisionApproved},
			SelectedCandidateID: f.firstResume(id).ID,
		})
	case models.RSManagerApproved:
		_, err = f.handler.ScheduleInterview(agent, id, hiringapimodels.ScheduleInterviewData{
			CandidateID:   f.firstResume(id).ID,
			InterviewDate: "2026-11-02",
			InterviewTime: "10:30",
			Location:      "Переговорная 3",
			Interviewers:  []string{manager.ID},
		})
	case models.RSInterviewScheduled:
		_, err = f.handler.SubmitInterviewFeedback(manager, id, hiringapimodels.InterviewFeedbackData{
			Decision: models.InterviewDecisionProceed,
			Feedback: "Сильный кандидат",
		})
	case models.RSInterviewFeedbackPending:
		_, err = f.handler.StartHRScreening(agent, id, hiringapimodels.StartScreeningData{})
	case models.RSHrScreening:
		f.completeScreening(id)
		_, err = f.handler.UploadLOA(context.TODO(), agent, id, loaFile("offer.pdf"))
		require.Nil(f.t, err)
		_, err = f.handler.RouteLOAForApproval(agent, id, hiringapimodels.CommentsData{})
	case models.RSLoaPendingApproval:
		_, err = f.handler.ManagerApproveLOA(manager, id, hiringapimodels.DecisionData{Decision: models.DecisionApproved})
	case models.RSLoaApproved:
		_, err = f.handler.MarkLOAIssued(agent, id, hiringapimodels.CommentsData{})
	case models.RSLoaIssued:
		_, err = f.handler.UploadSignedLOA(context.TODO(), agent, id, loaFile("offer-signed.pdf"))
		require.Nil(f.t, err)
		_, err = f.handler.MarkLOAAccepted(agent, id, hiringapimodels.CommentsData{})
	default:
		f.t.Fatalf("нет следующего шага для статуса %v", f.status(id))
	}
	require.Nil(f.t, err)
}

func (f *fixture) advanceTo(id string, target models.RequestStatus) {
	for i := 0; f.status(id) != target; i++ {
		require.Less(f.t, i, 20, "статус %v не достигнут", target)
		f.step(id)
	}
}

// requestIn создает заявку и переводит ее в указанный статус
func (f *fixture) requestIn(status models.RequestStatus) string {
	id := f.createRequest()
	switch status {
	case models.RSInReview:
		_, err := f.requests.StartReview(agent, id)
		require.Nil(f.t, err)
	case models.RSCeoRejected:
		f.advanceTo(id, models.RSPendingCeoApproval)
		_, err := f.handler.CeoDecision(ceo, id, hiringapimodels.DecisionData{Decision: models.DecisionRejected})
		require.Nil(f.t, err)
	case models.RSCandidateRejectedInterview:
		f.advanceTo(id, models.RSInterviewScheduled)
		_, err := f.handler.SubmitInterviewFeedback(manager, id, hiringapimodels.InterviewFeedbackData{
			Decision: models.InterviewDecisionReject,
			Feedback: "Недостаточно опыта",
		})
		require.Nil(f.t, err)
	default:
		f.advanceTo(id, status)
	}
	require.Equal(f.t, status, f.status(id))
	return id
}
