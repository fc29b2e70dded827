package dbmodels

import (
	"helpdesk-backend/models"
	"time"
)

type Approval struct {
	BaseRequestModel
	ApproverType models.ApproverType   `gorm:"type:varchar(50);index"`
	ApproverID   *string               `gorm:"type:varchar(36)"`
	ApproverName string                `gorm:"type:varchar(255)"`
	Status       models.ApprovalStatus `gorm:"type:varchar(50);index"`
	Comments     string
	DecidedAt    *time.Time
}
