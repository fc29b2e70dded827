package models

import "github.com/pkg/errors"

type InterviewDecision string

const (
	InterviewDecisionProceed InterviewDecision = "PROCEED"
	InterviewDecisionReject  InterviewDecision = "REJECT"
)

func (d InterviewDecision) Validate() error {
	switch d {
	case InterviewDecisionProceed, InterviewDecisionReject:
		return nil
	case "":
		return errors.New("не указано решение по интервью")
	}
	return errors.Errorf("недопустимое решение по интервью: %v, ожидается PROCEED или REJECT", d)
}

type CheckStatus string

const (
	CheckStatusPending    CheckStatus = "PENDING"
	CheckStatusInProgress CheckStatus = "IN_PROGRESS"
	CheckStatusCompleted  CheckStatus = "COMPLETED"
	CheckStatusFailed     CheckStatus = "FAILED"
)

var checkStatusHuman = map[CheckStatus]string{
	CheckStatusPending:    "Ожидает",
	CheckStatusInProgress: "В работе",
	CheckStatusCompleted:  "Пройдена",
	CheckStatusFailed:     "Не пройдена",
}

func (s CheckStatus) ToHuman() string {
	if name, ok := checkStatusHuman[s]; ok {
		return name
	}
	return string(s)
}

func (s CheckStatus) Validate() error {
	switch s {
	case CheckStatusPending, CheckStatusInProgress, CheckStatusCompleted, CheckStatusFailed:
		return nil
	}
	return errors.Errorf("недопустимый статус проверки: %v", s)
}

type ScreeningStatus string

const (
	ScreeningInProgress  ScreeningStatus = "IN_PROGRESS"
	ScreeningCompleted   ScreeningStatus = "COMPLETED"
	ScreeningIssuesFound ScreeningStatus = "ISSUES_FOUND"
)

var screeningStatusHuman = map[ScreeningStatus]string{
	ScreeningInProgress:  "В процессе",
	ScreeningCompleted:   "Завершена",
	ScreeningIssuesFound: "Выявлены проблемы",
}

func (s ScreeningStatus) ToHuman() string {
	if name, ok := screeningStatusHuman[s]; ok {
		return name
	}
	return string(s)
}

// DeriveScreeningStatus общий статус проверки HR вычисляется только из статусов двух подпроверок
func DeriveScreeningStatus(background, references CheckStatus) ScreeningStatus {
	if background == CheckStatusFailed || references == CheckStatusFailed {
		return ScreeningIssuesFound
	}
	if background == CheckStatusCompleted && references == CheckStatusCompleted {
		return ScreeningCompleted
	}
	return ScreeningInProgress
}
