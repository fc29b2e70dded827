package approvalstore

import (
	"helpdesk-backend/models"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Approval) (id string, err error)
	GetByID(requestID, id string) (rec *dbmodels.Approval, err error)
	GetPending(requestID string, approverType models.ApproverType) (rec *dbmodels.Approval, err error)
	Resolve(id string, updMap map[string]interface{}) (resolved bool, err error)
	List(requestID string) (list []dbmodels.Approval, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Approval) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(requestID, id string) (*dbmodels.Approval, error) {
	rec := dbmodels.Approval{}
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

func (i impl) GetPending(requestID string, approverType models.ApproverType) (*dbmodels.Approval, error) {
	rec := dbmodels.Approval{}
	err := i.db.
		Where("request_id = ?", requestID).
		Where("approver_type = ?", approverType).
		Where("status = ?", models.AStatusPending).
		Order("created_at DESC").
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

// Resolve закрывает согласование, которое еще находится в статусе PENDING
func (i impl) Resolve(id string, updMap map[string]interface{}) (resolved bool, err error) {
	tx := i.db.
		Model(&dbmodels.Approval{}).
		Where("id = ?", id).
		Where("status = ?", models.AStatusPending).
		Updates(updMap)
	if err = tx.Error; err != nil {
		return false, err
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) List(requestID string) (list []dbmodels.Approval, err error) {
	list = []dbmodels.Approval{}
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
