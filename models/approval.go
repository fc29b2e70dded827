package models

import "github.com/pkg/errors"

type ApproverType string

const (
	ApproverTypeCeo           ApproverType = "CEO"
	ApproverTypeHiringManager ApproverType = "HIRING_MANAGER"
)

type ApprovalStatus string

const (
	AStatusPending  ApprovalStatus = "PENDING"
	AStatusApproved ApprovalStatus = "APPROVED"
	AStatusRejected ApprovalStatus = "REJECTED"
)

var approvalStatusHumanName = map[ApprovalStatus]string{
	AStatusPending:  "Ожидает решения",
	AStatusApproved: "Согласовано",
	AStatusRejected: "Отклонено",
}

func (s ApprovalStatus) ToHuman() string {
	if human, exist := approvalStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// Decision решение по согласованию, допустимы только APPROVED/REJECTED
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

func (d Decision) Validate() error {
	switch d {
	case DecisionApproved, DecisionRejected:
		return nil
	case "":
		return errors.New("не указано решение")
	}
	return errors.Errorf("недопустимое решение: %v, ожидается APPROVED или REJECTED", d)
}

func (d Decision) ToApprovalStatus() ApprovalStatus {
	if d == DecisionApproved {
		return AStatusApproved
	}
	return AStatusRejected
}
