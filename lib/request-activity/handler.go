package requestactivityhandler

import (
	"helpdesk-backend/db"
	requestactivitystore "helpdesk-backend/lib/request-activity/store"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Append добавляет запись в журнал, ошибка прерывает транзакцию перехода
	Append(actor *models.Actor, requestID string, entry Entry) error
	List(requestID string, role models.UserRole, filter hiringapimodels.ActivityFilter) ([]hiringapimodels.ActivityView, int64, error)
	ListAll(requestID string) ([]dbmodels.RequestActivity, error)
}

// Entry описание действия по заявке
type Entry struct {
	Type       models.ActivityType
	Message    string
	IsInternal bool
	Metadata   dbmodels.ActivityMetadata
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(tx *gorm.DB) Provider {
	return impl{
		store: requestactivitystore.NewInstance(tx),
	}
}

type impl struct {
	store requestactivitystore.Provider
}

func (i impl) Append(actor *models.Actor, requestID string, entry Entry) error {
	logger := log.
		WithField("request_id", requestID).
		WithField("activity_type", entry.Type).
		WithField("operation", entry.Metadata.Operation)
	rec := dbmodels.RequestActivity{
		BaseRequestModel: dbmodels.BaseRequestModel{
			RequestID: requestID,
		},
		Type:       entry.Type,
		Message:    entry.Message,
		IsInternal: entry.IsInternal,
		Metadata:   entry.Metadata,
	}
	if actor != nil && actor.ID != "" {
		authorID := actor.ID
		rec.AuthorID = &authorID
		rec.AuthorName = actor.GetName()
		rec.AuthorRole = actor.Role
	} else {
		rec.AuthorName = models.SystemUser
		rec.IsSystemGenerated = true
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения истории действий по заявке")
		return errors.Wrap(err, "ошибка сохранения истории действий по заявке")
	}
	return nil
}

func (i impl) List(requestID string, role models.UserRole, filter hiringapimodels.ActivityFilter) ([]hiringapimodels.ActivityView, int64, error) {
	// внутренние записи видны только сотрудникам службы поддержки и CEO
	withInternal := role.IsAgent() || role == models.CeoRole
	rowCount, err := i.store.ListCount(requestID, filter, withInternal)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []hiringapimodels.ActivityView{}, rowCount, nil
	}

	list, err := i.store.List(requestID, filter, withInternal)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка действий")
		return nil, 0, errors.New("ошибка получения списка действий")
	}
	result := make([]hiringapimodels.ActivityView, 0, len(list))
	for _, rec := range list {
		result = append(result, hiringapimodels.ActivityConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ListAll(requestID string) ([]dbmodels.RequestActivity, error) {
	return i.store.ListAll(requestID)
}
