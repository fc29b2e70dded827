package dbmodels

import (
	"helpdesk-backend/models"
	"time"
)

type HRScreening struct {
	BaseModel
	RequestID             string             `gorm:"type:varchar(36);uniqueIndex"`
	BackgroundCheckStatus models.CheckStatus `gorm:"type:varchar(50)"`
	BackgroundCheckNotes  string
	ReferencesCheckStatus models.CheckStatus `gorm:"type:varchar(50)"`
	ReferencesCheckNotes  string
	ReferencesContacted   StringList             `gorm:"type:jsonb"`
	OverallStatus         models.ScreeningStatus `gorm:"type:varchar(50)"`
	Notes                 string
	StartedByID           string  `gorm:"type:varchar(36)"`
	CompletedByID         *string `gorm:"type:varchar(36)"`
	CompletedAt           *time.Time
}

// Recalculate пересчитывает общий статус проверки
func (s *HRScreening) Recalculate() {
	s.OverallStatus = models.DeriveScreeningStatus(s.BackgroundCheckStatus, s.ReferencesCheckStatus)
}
