package requesthandler

import (
	"helpdesk-backend/db"
	"helpdesk-backend/lib/metrics"
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

const OpStartReview = "startReview"

type Provider interface {
	Create(actor models.Actor, data hiringapimodels.RequestCreateData) (hiringapimodels.RequestView, error)
	GetByID(actor models.Actor, id string) (hiringapimodels.RequestView, error)
	// CheckAccess проверяет, что пользователь может просматривать заявку
	CheckAccess(actor models.Actor, id string) error
	StartReview(actor models.Actor, id string) (hiringapimodels.TransitionResult, error)
	AddComment(actor models.Actor, id string, data hiringapimodels.CommentData) error
	ListActivities(actor models.Actor, id string, filter hiringapimodels.ActivityFilter) ([]hiringapimodels.ActivityView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		db:    DB,
		store: requeststore.NewInstance(DB),
	}
}

type impl struct {
	db    *gorm.DB
	store requeststore.Provider
}

func (i impl) getLogger(id string, actor models.Actor) *log.Entry {
	return log.
		WithField("request_id", id).
		WithField("user_id", actor.ID).
		WithField("user_role", actor.Role)
}

func (i impl) Create(actor models.Actor, data hiringapimodels.RequestCreateData) (hiringapimodels.RequestView, error) {
	if err := apperrors.Validation(data.Validate()); err != nil {
		return hiringapimodels.RequestView{}, err
	}
	serviceDesk := data.ServiceDesk
	if serviceDesk == "" {
		serviceDesk = models.ServiceDeskHR
	}
	rec := dbmodels.Request{
		Title:         data.Title,
		Description:   data.Description,
		ServiceDesk:   serviceDesk,
		Status:        models.RSSubmitted,
		RequesterID:   actor.ID,
		RequesterName: actor.GetName(),
	}
	err := i.db.Transaction(func(tx *gorm.DB) error {
		var err error
		rec.ID, err = requeststore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания заявки")
		}
		return requestactivityhandler.NewInstance(tx).Append(&actor, rec.ID, requestactivityhandler.Entry{
			Type:    models.ActivitySystem,
			Message: "Заявка на найм создана: " + rec.Title,
			Metadata: dbmodels.ActivityMetadata{
				Operation: "createRequest",
				ToStatus:  models.RSSubmitted,
			},
		})
	})
	if err != nil {
		log.WithField("user_id", actor.ID).WithError(err).Error("ошибка создания заявки")
		return hiringapimodels.RequestView{}, errors.New("ошибка создания заявки")
	}
	i.getLogger(rec.ID, actor).Info("заявка на найм создана")
	return i.GetByID(actor, rec.ID)
}

func (i impl) get(actor models.Actor, id string) (*dbmodels.Request, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.getLogger(id, actor).WithError(err).Error("ошибка получения заявки")
		return nil, errors.New("ошибка получения заявки")
	}
	if rec == nil {
		return nil, apperrors.NotFound("заявка не найдена")
	}
	switch {
	case actor.Role.IsAgent():
	case actor.Role == models.CeoRole:
		if !rec.Status.IsInHiringWorkflow() && !rec.IsHiringManager(actor.ID) {
			return nil, apperrors.Forbidden("заявка не находится в процессе найма")
		}
	default:
		if !rec.IsHiringManager(actor.ID) {
			return nil, apperrors.Forbidden("нет доступа к заявке")
		}
	}
	return rec, nil
}

func (i impl) GetByID(actor models.Actor, id string) (hiringapimodels.RequestView, error) {
	rec, err := i.get(actor, id)
	if err != nil {
		return hiringapimodels.RequestView{}, err
	}
	return hiringapimodels.RequestConvert(*rec), nil
}

func (i impl) CheckAccess(actor models.Actor, id string) error {
	_, err := i.get(actor, id)
	return err
}

func (i impl) StartReview(actor models.Actor, id string) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpStartReview, &err)
	logger := i.getLogger(id, actor)
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		rec, err := store.GetByID(id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения заявки")
		}
		if rec == nil {
			return apperrors.NotFound("заявка не найдена")
		}
		if rec.Status != models.RSSubmitted {
			return apperrors.InvalidState("взять в работу можно только новую заявку, текущий статус: %v", rec.Status.ToHuman())
		}
		changed, err := store.ChangeStatus(id, []models.RequestStatus{models.RSSubmitted}, map[string]interface{}{
			"status":         models.RSInReview,
			"assigned_to_id": actor.ID,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка обновления статуса заявки")
		}
		if !changed {
			return apperrors.InvalidState("статус заявки был изменен другим пользователем, обновите данные")
		}
		err = requestactivityhandler.NewInstance(tx).Append(&actor, id, requestactivityhandler.Entry{
			Type:    models.ActivityStatusChange,
			Message: "Заявка взята в работу: " + actor.GetName(),
			Metadata: dbmodels.ActivityMetadata{
				Operation:  OpStartReview,
				FromStatus: models.RSSubmitted,
				ToStatus:   models.RSInReview,
			},
		})
		if err != nil {
			return err
		}
		rec, err = store.GetByID(id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения заявки")
		}
		result.Request = hiringapimodels.RequestConvert(*rec)
		return nil
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnexpected {
			logger.WithError(err).Error("ошибка взятия заявки в работу")
		}
		return result, err
	}
	logger.Info("заявка взята в работу")
	return result, nil
}

func (i impl) AddComment(actor models.Actor, id string, data hiringapimodels.CommentData) error {
	if err := apperrors.Validation(data.Validate()); err != nil {
		return err
	}
	if _, err := i.get(actor, id); err != nil {
		return err
	}
	commentType := models.ActivityComment
	isInternal := data.IsInternal && (actor.Role.IsAgent() || actor.Role == models.CeoRole)
	err := requestactivityhandler.NewInstance(i.db).Append(&actor, id, requestactivityhandler.Entry{
		Type:       commentType,
		Message:    data.Message,
		IsInternal: isInternal,
		Metadata: dbmodels.ActivityMetadata{
			Operation: "addComment",
		},
	})
	if err != nil {
		return errors.New("ошибка добавления комментария")
	}
	return nil
}

func (i impl) ListActivities(actor models.Actor, id string, filter hiringapimodels.ActivityFilter) ([]hiringapimodels.ActivityView, int64, error) {
	if _, err := i.get(actor, id); err != nil {
		return nil, 0, err
	}
	return requestactivityhandler.NewInstance(i.db).List(id, actor.Role, filter)
}
