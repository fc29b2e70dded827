package dbmodels

import (
	"database/sql/driver"
	"helpdesk-backend/models"
	"time"

	"gorm.io/gorm"
)

type Request struct {
	BaseModel
	Title         string `gorm:"type:varchar(255)"`
	Description   string
	ServiceDesk   models.ServiceDesk   `gorm:"type:varchar(50)"`
	Status        models.RequestStatus `gorm:"type:varchar(50);index"`
	RequesterID   string               `gorm:"type:varchar(36);index"`
	RequesterName string               `gorm:"type:varchar(255)"`
	AssignedToID  *string              `gorm:"type:varchar(36)"`
	CustomFields  HiringFields         `gorm:"type:jsonb"`
	ResolvedAt    *time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// HiringFields данные процесса найма, хранятся в customFields заявки
type HiringFields struct {
	JobPostingURL         string     `json:"jobPostingUrl,omitempty"`
	JobPostingNotes       string     `json:"jobPostingNotes,omitempty"`
	JobPostedAt           *time.Time `json:"jobPostedAt,omitempty"`
	SelectedCandidateID   string     `json:"selectedCandidateId,omitempty"`
	SelectedCandidateName string     `json:"selectedCandidateName,omitempty"`
}

func (j HiringFields) Value() (driver.Value, error) {
	return jsonValue(j)
}

func (j *HiringFields) Scan(value any) error {
	return jsonScan(value, j)
}

// IsHiringManager нанимающим менеджером считается автор заявки
func (r Request) IsHiringManager(userID string) bool {
	return userID != "" && r.RequesterID == userID
}
