package models

type ActivityType string

const (
	ActivitySystem       ActivityType = "SYSTEM"
	ActivityComment      ActivityType = "COMMENT"
	ActivityApproval     ActivityType = "APPROVAL"
	ActivityRejection    ActivityType = "REJECTION"
	ActivityAssignment   ActivityType = "ASSIGNMENT"
	ActivityAttachment   ActivityType = "ATTACHMENT"
	ActivityStatusChange ActivityType = "STATUS_CHANGE"
)

var activityTypeHumanName = map[ActivityType]string{
	ActivitySystem:       "Система",
	ActivityComment:      "Комментарий",
	ActivityApproval:     "Согласование",
	ActivityRejection:    "Отклонение",
	ActivityAssignment:   "Назначение",
	ActivityAttachment:   "Вложение",
	ActivityStatusChange: "Смена статуса",
}

func (t ActivityType) ToHuman() string {
	if human, exist := activityTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

const SystemUser = "Система"
