package hrscreeningstore

import (
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.HRScreening) (id string, err error)
	GetByRequest(requestID string) (rec *dbmodels.HRScreening, err error)
	// GetByRequestForUpdate блокирует строку проверки до конца транзакции
	GetByRequestForUpdate(requestID string) (rec *dbmodels.HRScreening, err error)
	Save(rec dbmodels.HRScreening) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HRScreening) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByRequest(requestID string) (*dbmodels.HRScreening, error) {
	return first(byRequest(i.db, requestID, false))
}

func (i impl) GetByRequestForUpdate(requestID string) (*dbmodels.HRScreening, error) {
	return first(byRequest(i.db, requestID, true))
}

func byRequest(tx *gorm.DB, requestID string, forUpdate bool) *gorm.DB {
	tx = tx.Where("request_id = ?", requestID)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func first(tx *gorm.DB) (*dbmodels.HRScreening, error) {
	rec := dbmodels.HRScreening{}
	err := tx.
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Save(rec dbmodels.HRScreening) error {
	if rec.ID == "" {
		return errors.New("не указан ид проверки")
	}
	return i.db.
		Save(&rec).
		Error
}
