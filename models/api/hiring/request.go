package hiringapimodels

import (
	"helpdesk-backend/models"
	apimodels "helpdesk-backend/models/api"
	dbmodels "helpdesk-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type RequestCreateData struct {
	Title       string             `json:"title"`       // тема заявки
	Description string             `json:"description"` // описание вакансии
	ServiceDesk models.ServiceDesk `json:"serviceDesk"` // служба поддержки (IT/HR/FINANCE)
}

func (r RequestCreateData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("отсутствует тема заявки")
	}
	if r.ServiceDesk == "" {
		return nil
	}
	return r.ServiceDesk.Validate()
}

type RequestView struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	ServiceDesk   models.ServiceDesk    `json:"serviceDesk"`
	Status        models.RequestStatus  `json:"status"`
	StatusName    string                `json:"statusName"`
	RequesterID   string                `json:"requesterId"`
	RequesterName string                `json:"requesterName"`
	AssignedToID  *string               `json:"assignedToId"`
	CustomFields  dbmodels.HiringFields `json:"customFields"`
	ResolvedAt    *time.Time            `json:"resolvedAt"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

func RequestConvert(rec dbmodels.Request) RequestView {
	return RequestView{
		ID:            rec.ID,
		Title:         rec.Title,
		Description:   rec.Description,
		ServiceDesk:   rec.ServiceDesk,
		Status:        rec.Status,
		StatusName:    rec.Status.ToHuman(),
		RequesterID:   rec.RequesterID,
		RequesterName: rec.RequesterName,
		AssignedToID:  rec.AssignedToID,
		CustomFields:  rec.CustomFields,
		ResolvedAt:    rec.ResolvedAt,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

// TransitionResult ответ на операцию процесса найма
type TransitionResult struct {
	Request           RequestView            `json:"request"`
	Approval          *ApprovalView          `json:"approval,omitempty"`
	InterviewSchedule *InterviewScheduleView `json:"interviewSchedule,omitempty"`
	InterviewFeedback *InterviewFeedbackView `json:"interviewFeedback,omitempty"`
	HRScreening       *HRScreeningView       `json:"hrScreening,omitempty"`
	Loa               *LoaView               `json:"letterOfAcceptance,omitempty"`
}

type CommentData struct {
	Message    string `json:"message"`    // текст комментария
	IsInternal bool   `json:"isInternal"` // виден только сотрудникам службы поддержки
}

func (c CommentData) Validate() error {
	if strings.TrimSpace(c.Message) == "" {
		return errors.New("отсутствует текст комментария")
	}
	return nil
}

type ActivityFilter struct {
	apimodels.Pagination
	CommentsOnly bool `json:"commentsOnly"`
}

type ActivityView struct {
	ID                string                    `json:"id"`
	RequestID         string                    `json:"requestId"`
	AuthorID          *string                   `json:"authorId"`
	AuthorName        string                    `json:"authorName"`
	AuthorRole        models.UserRole           `json:"authorRole"`
	Type              models.ActivityType       `json:"type"`
	Message           string                    `json:"message"`
	IsSystemGenerated bool                      `json:"isSystemGenerated"`
	IsInternal        bool                      `json:"isInternal"`
	Metadata          dbmodels.ActivityMetadata `json:"metadata"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

func ActivityConvert(rec dbmodels.RequestActivity) ActivityView {
	return ActivityView{
		ID:                rec.ID,
		RequestID:         rec.RequestID,
		AuthorID:          rec.AuthorID,
		AuthorName:        rec.AuthorName,
		AuthorRole:        rec.AuthorRole,
		Type:              rec.Type,
		Message:           rec.Message,
		IsSystemGenerated: rec.IsSystemGenerated,
		IsInternal:        rec.IsInternal,
		Metadata:          rec.Metadata,
		CreatedAt:         rec.CreatedAt,
	}
}
