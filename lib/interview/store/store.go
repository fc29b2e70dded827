package interviewstore

import (
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateSchedule(rec dbmodels.InterviewSchedule) (id string, err error)
	GetSchedule(requestID string) (rec *dbmodels.InterviewSchedule, err error)
	CreateFeedback(rec dbmodels.InterviewFeedback) (id string, err error)
	GetFeedback(requestID string) (rec *dbmodels.InterviewFeedback, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateSchedule(rec dbmodels.InterviewSchedule) (id string, err error) {
	err = i.db.
		Omit("Candidate").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetSchedule(requestID string) (*dbmodels.InterviewSchedule, error) {
	rec := dbmodels.InterviewSchedule{}
	err := i.db.
		Where("request_id = ?", requestID).
		Preload("Candidate").
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

func (i impl) CreateFeedback(rec dbmodels.InterviewFeedback) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetFeedback(requestID string) (*dbmodels.InterviewFeedback, error) {
	rec := dbmodels.InterviewFeedback{}
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
