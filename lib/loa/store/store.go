package loastore

import (
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.LetterOfAcceptance) (id string, err error)
	GetByRequest(requestID string) (rec *dbmodels.LetterOfAcceptance, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Save создает оффер, либо полностью перезаписывает существующий
func (i impl) Save(rec dbmodels.LetterOfAcceptance) (id string, err error) {
	if rec.ID == "" {
		err = i.db.Create(&rec).Error
	} else {
		err = i.db.Save(&rec).Error
	}
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByRequest(requestID string) (*dbmodels.LetterOfAcceptance, error) {
	rec := dbmodels.LetterOfAcceptance{}
	err := i.db.
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.LetterOfAcceptance{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}
