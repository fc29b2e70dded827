package candidateresumestore

import (
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CandidateResume) (id string, err error)
	GetByID(requestID, id string) (rec *dbmodels.CandidateResume, err error)
	Delete(requestID, id string) error
	List(requestID string) (list []dbmodels.CandidateResume, err error)
	Count(requestID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateResume) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(requestID, id string) (*dbmodels.CandidateResume, error) {
	rec := dbmodels.CandidateResume{}
	err := i.db.
		Where("id = ?", id).
		Where("request_id = ?", requestID).
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

func (i impl) Delete(requestID, id string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("request_id = ?", requestID).
		Delete(&dbmodels.CandidateResume{})
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

// List резюме по заявке, сначала последние загруженные
func (i impl) List(requestID string) (list []dbmodels.CandidateResume, err error) {
	list = []dbmodels.CandidateResume{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count(requestID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.CandidateResume{}).
		Where("request_id = ?", requestID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
