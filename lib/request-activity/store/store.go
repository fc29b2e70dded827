package requestactivitystore

import (
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.RequestActivity) (id string, err error)
	Count(requestID string) (count int64, err error)
	ListCount(requestID string, filter hiringapimodels.ActivityFilter, withInternal bool) (count int64, err error)
	List(requestID string, filter hiringapimodels.ActivityFilter, withInternal bool) (list []dbmodels.RequestActivity, err error)
	ListAll(requestID string) (list []dbmodels.RequestActivity, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestActivity) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Count(requestID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.RequestActivity{}).
		Where("request_id = ?", requestID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListCount(requestID string, filter hiringapimodels.ActivityFilter, withInternal bool) (count int64, err error) {
	tx := i.filter(requestID, filter, withInternal)
	err = tx.Count(&count).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества действий по заявке")
		return 0, errors.New("ошибка получения общего количества действий по заявке")
	}
	return count, nil
}

func (i impl) List(requestID string, filter hiringapimodels.ActivityFilter, withInternal bool) (list []dbmodels.RequestActivity, err error) {
	list = []dbmodels.RequestActivity{}
	tx := i.filter(requestID, filter, withInternal)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = tx.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll(requestID string) (list []dbmodels.RequestActivity, err error) {
	list = []dbmodels.RequestActivity{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) filter(requestID string, filter hiringapimodels.ActivityFilter, withInternal bool) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.RequestActivity{}).
		Where("request_id = ?", requestID)
	if filter.CommentsOnly {
		tx = tx.Where("type = ?", models.ActivityComment)
	}
	if !withInternal {
		tx = tx.Where("is_internal = ?", false)
	}
	return tx
}
