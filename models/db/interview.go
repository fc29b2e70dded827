package dbmodels

import (
	"helpdesk-backend/models"
	"time"
)

type InterviewSchedule struct {
	BaseModel
	RequestID       string           `gorm:"type:varchar(36);uniqueIndex"`
	CandidateID     string           `gorm:"type:varchar(36)"`
	Candidate       *CandidateResume `gorm:"foreignKey:CandidateID"`
	InterviewDate   time.Time
	InterviewTime   string `gorm:"type:varchar(5)"`
	Location        string
	MeetingLink     string
	Interviewers    StringList `gorm:"type:jsonb"`
	Notes           string
	ScheduledByID   string `gorm:"type:varchar(36)"`
	ScheduledByName string `gorm:"type:varchar(255)"`
}

type InterviewFeedback struct {
	BaseModel
	RequestID       string                   `gorm:"type:varchar(36);uniqueIndex"`
	Decision        models.InterviewDecision `gorm:"type:varchar(50)"`
	OverallRating   *int
	TechnicalSkills *int
	CulturalFit     *int
	Communication   *int
	Feedback        string
	Concerns        string
	SubmittedByID   string `gorm:"type:varchar(36)"`
	SubmittedByName string `gorm:"type:varchar(255)"`
}
