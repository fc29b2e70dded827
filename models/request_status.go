package models

import (
	"slices"

	"github.com/pkg/errors"
)

type RequestStatus string

const (
	RSSubmitted                  RequestStatus = "SUBMITTED"
	RSInReview                   RequestStatus = "IN_REVIEW"
	RSPendingCeoApproval         RequestStatus = "PENDING_CEO_APPROVAL"
	RSCeoApproved                RequestStatus = "CEO_APPROVED"
	RSCeoRejected                RequestStatus = "CEO_REJECTED"
	RSJobPosted                  RequestStatus = "JOB_POSTED"
	RSPendingManagerReview       RequestStatus = "PENDING_MANAGER_REVIEW"
	RSManagerApproved            RequestStatus = "MANAGER_APPROVED"
	RSInterviewScheduled         RequestStatus = "INTERVIEW_SCHEDULED"
	RSInterviewFeedbackPending   RequestStatus = "INTERVIEW_FEEDBACK_PENDING"
	RSCandidateRejectedInterview RequestStatus = "CANDIDATE_REJECTED_INTERVIEW"
	RSHrScreening                RequestStatus = "HR_SCREENING"
	RSLoaPendingApproval         RequestStatus = "LOA_PENDING_APPROVAL"
	RSLoaApproved                RequestStatus = "LOA_APPROVED"
	RSLoaIssued                  RequestStatus = "LOA_ISSUED"
	RSResolved                   RequestStatus = "RESOLVED"
)

var requestStatusHumanName = map[RequestStatus]string{
	RSSubmitted:                  "Создана",
	RSInReview:                   "На рассмотрении",
	RSPendingCeoApproval:         "Ожидает согласования CEO",
	RSCeoApproved:                "Согласована CEO",
	RSCeoRejected:                "Отклонена CEO",
	RSJobPosted:                  "Вакансия опубликована",
	RSPendingManagerReview:       "Ожидает решения нанимающего менеджера",
	RSManagerApproved:            "Кандидат одобрен менеджером",
	RSInterviewScheduled:         "Интервью назначено",
	RSInterviewFeedbackPending:   "Получен отзыв по интервью",
	RSCandidateRejectedInterview: "Кандидат отклонен по итогам интервью",
	RSHrScreening:                "Проверка HR",
	RSLoaPendingApproval:         "Оффер на согласовании",
	RSLoaApproved:                "Оффер согласован",
	RSLoaIssued:                  "Оффер выдан",
	RSResolved:                   "Закрыта",
}

// порядок статусов найма, используется для отчетов и метрик
var hiringWorkflowStatuses = []RequestStatus{
	RSPendingCeoApproval,
	RSCeoApproved,
	RSCeoRejected,
	RSJobPosted,
	RSPendingManagerReview,
	RSManagerApproved,
	RSInterviewScheduled,
	RSInterviewFeedbackPending,
	RSCandidateRejectedInterview,
	RSHrScreening,
	RSLoaPendingApproval,
	RSLoaApproved,
	RSLoaIssued,
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s RequestStatus) Validate() error {
	if _, exist := requestStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус заявки: %v", s)
	}
	return nil
}

// In проверяет, что статус входит в список допустимых
func (s RequestStatus) In(list ...RequestStatus) bool {
	return slices.Contains(list, s)
}

// IsInHiringWorkflow заявка находится внутри процесса найма (видна CEO)
func (s RequestStatus) IsInHiringWorkflow() bool {
	return slices.Contains(hiringWorkflowStatuses, s)
}

func (s RequestStatus) IsTerminal() bool {
	return s.In(RSCeoRejected, RSCandidateRejectedInterview, RSResolved)
}

func HiringWorkflowStatuses() []RequestStatus {
	return slices.Clone(hiringWorkflowStatuses)
}

type ServiceDesk string

const (
	ServiceDeskIT      ServiceDesk = "IT"
	ServiceDeskHR      ServiceDesk = "HR"
	ServiceDeskFinance ServiceDesk = "FINANCE"
)

func (d ServiceDesk) Validate() error {
	switch d {
	case ServiceDeskIT, ServiceDeskHR, ServiceDeskFinance:
		return nil
	}
	return errors.Errorf("неизвестная служба поддержки: %v", d)
}
