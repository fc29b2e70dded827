package dbmodels

import (
	"database/sql/driver"
	"helpdesk-backend/models"
)

type RequestActivity struct {
	BaseRequestModel
	AuthorID          *string             `gorm:"type:varchar(36)"`
	AuthorName        string              `gorm:"type:varchar(255)"`
	AuthorRole        models.UserRole     `gorm:"type:varchar(50)"`
	Type              models.ActivityType `gorm:"type:varchar(50)"`
	Message           string
	IsSystemGenerated bool
	IsInternal        bool
	Metadata          ActivityMetadata `gorm:"type:jsonb"`
}

type ActivityMetadata struct {
	Operation  string               `json:"operation,omitempty"`  // операция процесса найма
	FromStatus models.RequestStatus `json:"fromStatus,omitempty"` // статус до перехода
	ToStatus   models.RequestStatus `json:"toStatus,omitempty"`   // статус после перехода
	Comments   string               `json:"comments,omitempty"`   // комментарий пользователя
	EntityID   string               `json:"entityId,omitempty"`   // ид связанной записи
}

func (j ActivityMetadata) Value() (driver.Value, error) {
	return jsonValue(j)
}

func (j *ActivityMetadata) Scan(value any) error {
	return jsonScan(value, j)
}
