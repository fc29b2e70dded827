package requeststore

import (
	"helpdesk-backend/models"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(id string) (rec *dbmodels.Request, err error)
	Update(id string, updMap map[string]interface{}) error
	ChangeStatus(id string, from []models.RequestStatus, updMap map[string]interface{}) (changed bool, err error)
	CountByStatus(statuses []models.RequestStatus) (map[models.RequestStatus]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
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
		Model(&dbmodels.Request{}).
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

// ChangeStatus обновляет заявку только если ее текущий статус входит в from.
// changed=false означает, что статус уже был изменен конкурентным запросом
func (i impl) ChangeStatus(id string, from []models.RequestStatus, updMap map[string]interface{}) (changed bool, err error) {
	if len(from) == 0 {
		return false, errors.New("не указаны допустимые исходные статусы")
	}
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Where("status IN ?", from).
		Updates(updMap)
	if err = tx.Error; err != nil {
		return false, err
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) CountByStatus(statuses []models.RequestStatus) (map[models.RequestStatus]int64, error) {
	type row struct {
		Status models.RequestStatus
		Cnt    int64
	}
	rows := []row{}
	err := i.db.
		Model(&dbmodels.Request{}).
		Select("status, count(*) as cnt").
		Where("status IN ?", statuses).
		Group("status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[models.RequestStatus]int64, len(statuses))
	for _, status := range statuses {
		result[status] = 0
	}
	for _, r := range rows {
		result[r.Status] = r.Cnt
	}
	return result, nil
}
