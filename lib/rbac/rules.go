package rbac

import (
	"helpdesk-backend/models"

	log "github.com/sirupsen/logrus"
)

var (
	AgentRoleSet    = []models.UserRole{models.AdminRole, models.AgentRole}
	CeoRoleSet      = []models.UserRole{models.AdminRole, models.CeoRole}
	AllRoles        = []models.UserRole{models.AdminRole, models.AgentRole, models.CeoRole, models.EmployeeRole}
	StaffViewerRole = []models.UserRole{models.AdminRole, models.AgentRole, models.CeoRole}
)

func (i *impl) initRules() {
	i.requestRbac()
	i.hiringRbac()
	i.candidateRbac()
	i.loaRbac()
	i.activityRbac()
}

func (i *impl) mustRegister(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, nil); err != nil {
		log.WithError(err).Fatal("ошибка регистрации правила доступа")
	}
}

func (i *impl) requestRbac() {
	i.mustRegister(models.RequestModule, models.CreatePermission, AllRoles, "/api/v1/requests [post]")
	i.mustRegister(models.RequestModule, models.ViewPermission, AllRoles, "/api/v1/requests/{id} [get]")
	i.mustRegister(models.RequestModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/start-review [put]")
	i.mustRegister(models.RequestModule, models.ViewPermission, AllRoles, "/api/v1/requests/{id}/approvals [get]")
	i.mustRegister(models.RequestModule, models.ExportPermission, StaffViewerRole, "/api/v1/requests/{id}/summary.pdf [get]")
}

func (i *impl) hiringRbac() {
	// действия HR агента
	i.mustRegister(models.HiringModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/route-to-ceo [post]")
	i.mustRegister(models.HiringModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/mark-job-posted [post]")
	i.mustRegister(models.HiringModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/route-to-manager [post]")
	i.mustRegister(models.HiringModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/schedule-interview [post]")
	i.mustRegister(models.HiringModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/start-screening [post]")
	i.mustRegister(models.HiringModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/screening [put]")
	// решение CEO
	i.mustRegister(models.HiringModule, models.DecidePermission, CeoRoleSet, "/api/v1/requests/{id}/ceo-decision [post]")
	// решения нанимающего менеджера, автор заявки проверяется при выполнении перехода
	i.mustRegister(models.HiringModule, models.DecidePermission, AllRoles, "/api/v1/requests/{id}/manager-decision [post]")
	i.mustRegister(models.HiringModule, models.DecidePermission, AllRoles, "/api/v1/requests/{id}/interview-feedback [post]")
	// просмотр
	i.mustRegister(models.HiringModule, models.ViewPermission, AllRoles, "/api/v1/requests/{id}/interview [get]")
	i.mustRegister(models.HiringModule, models.ViewPermission, StaffViewerRole, "/api/v1/requests/{id}/screening [get]")
}

func (i *impl) candidateRbac() {
	i.mustRegister(models.CandidateModule, models.ViewPermission, AllRoles, "/api/v1/requests/{id}/resumes [get]")
	i.mustRegister(models.CandidateModule, models.ViewPermission, AllRoles, "/api/v1/requests/{id}/resumes/{resumeId}/download [get]")
	i.mustRegister(models.CandidateModule, models.FilesPermission, AgentRoleSet, "/api/v1/requests/{id}/resumes [post]")
	i.mustRegister(models.CandidateModule, models.FilesPermission, AgentRoleSet, "/api/v1/requests/{id}/resumes/{resumeId} [delete]")
}

func (i *impl) loaRbac() {
	i.mustRegister(models.LoaModule, models.ViewPermission, AllRoles, "/api/v1/requests/{id}/loa [get]")
	i.mustRegister(models.LoaModule, models.ViewPermission, AllRoles, "/api/v1/requests/{id}/loa/download [get]")
	i.mustRegister(models.LoaModule, models.FilesPermission, AgentRoleSet, "/api/v1/requests/{id}/loa/upload [post]")
	i.mustRegister(models.LoaModule, models.FilesPermission, AgentRoleSet, "/api/v1/requests/{id}/loa/upload-signed [post]")
	i.mustRegister(models.LoaModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/loa/route-for-approval [post]")
	i.mustRegister(models.LoaModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/loa/mark-issued [post]")
	i.mustRegister(models.LoaModule, models.FlowPermission, AgentRoleSet, "/api/v1/requests/{id}/loa/mark-accepted [post]")
	i.mustRegister(models.LoaModule, models.DecidePermission, AllRoles, "/api/v1/requests/{id}/loa/manager-approve [post]")
}

func (i *impl) activityRbac() {
	i.mustRegister(models.ActivityModule, models.ViewPermission, AllRoles, "/api/v1/requests/{id}/activities [get]")
	i.mustRegister(models.ActivityModule, models.NotesPermission, AllRoles, "/api/v1/requests/{id}/comments [post]")
	i.mustRegister(models.ActivityModule, models.ExportPermission, StaffViewerRole, "/api/v1/requests/{id}/activities/export [get]")
}
