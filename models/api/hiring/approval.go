package hiringapimodels

import (
	"helpdesk-backend/models"
	dbmodels "helpdesk-backend/models/db"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

type CommentsData struct {
	Comments string `json:"comments"` // комментарий
}

func (c CommentsData) Validate() error {
	return nil
}

type DecisionData struct {
	Decision models.Decision `json:"decision"` // APPROVED/REJECTED
	Comments string          `json:"comments"` // комментарий
}

func (d DecisionData) Validate() error {
	return d.Decision.Validate()
}

type ManagerDecisionData struct {
	DecisionData
	SelectedCandidateID string `json:"selectedCandidateId"` // ид выбранного резюме кандидата
}

func (d ManagerDecisionData) Validate() error {
	return d.DecisionData.Validate()
}

type JobPostedData struct {
	JobPostingURL string `json:"jobPostingUrl"` // ссылка на опубликованную вакансию
	Notes         string `json:"notes"`
}

func (j JobPostedData) Validate() error {
	if j.JobPostingURL == "" {
		return nil
	}
	u, err := url.ParseRequestURI(j.JobPostingURL)
	if err != nil || u.Host == "" {
		return errors.New("некорректная ссылка на вакансию")
	}
	return nil
}

type ApprovalView struct {
	ID           string                `json:"id"`
	RequestID    string                `json:"requestId"`
	ApproverType models.ApproverType   `json:"approverType"`
	ApproverID   *string               `json:"approverId"`
	ApproverName string                `json:"approverName"`
	Status       models.ApprovalStatus `json:"status"`
	Comments     string                `json:"comments"`
	DecidedAt    *time.Time            `json:"decidedAt"`
	CreatedAt    time.Time             `json:"createdAt"`
}

func ApprovalConvert(rec dbmodels.Approval) ApprovalView {
	return ApprovalView{
		ID:           rec.ID,
		RequestID:    rec.RequestID,
		ApproverType: rec.ApproverType,
		ApproverID:   rec.ApproverID,
		ApproverName: rec.ApproverName,
		Status:       rec.Status,
		Comments:     rec.Comments,
		DecidedAt:    rec.DecidedAt,
		CreatedAt:    rec.CreatedAt,
	}
}
