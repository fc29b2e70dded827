package models

import "slices"

type UserRole string

const (
	AdminRole    UserRole = "ADMIN"
	AgentRole    UserRole = "AGENT"
	CeoRole      UserRole = "CEO"
	EmployeeRole UserRole = "USER"
)

var roleHumanName = map[UserRole]string{
	AdminRole:    "Администратор",
	AgentRole:    "HR-агент",
	CeoRole:      "CEO",
	EmployeeRole: "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsAgent сотрудник службы поддержки (агентский доступ)
func (r UserRole) IsAgent() bool {
	return slices.Contains([]UserRole{AdminRole, AgentRole}, r)
}

// Actor пользователь, от имени которого выполняется операция
type Actor struct {
	ID   string
	Name string
	Role UserRole
}

func (a Actor) GetName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
