package hiringapimodels

import (
	"helpdesk-backend/models"
	dbmodels "helpdesk-backend/models/db"
	"time"
)

type StartScreeningData struct {
	Notes string `json:"notes"`
}

func (s StartScreeningData) Validate() error {
	return nil
}

type UpdateScreeningData struct {
	BackgroundCheckStatus *models.CheckStatus `json:"backgroundCheckStatus"`
	BackgroundCheckNotes  *string             `json:"backgroundCheckNotes"`
	ReferencesCheckStatus *models.CheckStatus `json:"referencesCheckStatus"`
	ReferencesCheckNotes  *string             `json:"referencesCheckNotes"`
	ReferencesContacted   []string            `json:"referencesContacted"`
}

func (u UpdateScreeningData) Validate() error {
	if u.BackgroundCheckStatus != nil {
		if err := u.BackgroundCheckStatus.Validate(); err != nil {
			return err
		}
	}
	if u.ReferencesCheckStatus != nil {
		if err := u.ReferencesCheckStatus.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type HRScreeningView struct {
	ID                    string                 `json:"id"`
	RequestID             string                 `json:"requestId"`
	BackgroundCheckStatus models.CheckStatus     `json:"backgroundCheckStatus"`
	BackgroundCheckNotes  string                 `json:"backgroundCheckNotes"`
	ReferencesCheckStatus models.CheckStatus     `json:"referencesCheckStatus"`
	ReferencesCheckNotes  string                 `json:"referencesCheckNotes"`
	ReferencesContacted   []string               `json:"referencesContacted"`
	OverallStatus         models.ScreeningStatus `json:"overallStatus"`
	Notes                 string                 `json:"notes"`
	StartedByID           string                 `json:"startedById"`
	CompletedByID         *string                `json:"completedById"`
	CompletedAt           *time.Time             `json:"completedAt"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
}

func HRScreeningConvert(rec dbmodels.HRScreening) HRScreeningView {
	result := HRScreeningView{
		ID:                    rec.ID,
		RequestID:             rec.RequestID,
		BackgroundCheckStatus: rec.BackgroundCheckStatus,
		BackgroundCheckNotes:  rec.BackgroundCheckNotes,
		ReferencesCheckStatus: rec.ReferencesCheckStatus,
		ReferencesCheckNotes:  rec.ReferencesCheckNotes,
		ReferencesContacted:   []string(rec.ReferencesContacted),
		OverallStatus:         rec.OverallStatus,
		Notes:                 rec.Notes,
		StartedByID:           rec.StartedByID,
		CompletedByID:         rec.CompletedByID,
		CompletedAt:           rec.CompletedAt,
		CreatedAt:             rec.CreatedAt,
		UpdatedAt:             rec.UpdatedAt,
	}
	if result.ReferencesContacted == nil {
		result.ReferencesContacted = []string{}
	}
	return result
}
