package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	RequestModule   Module = "REQUEST"
	HiringModule    Module = "HIRING"
	CandidateModule Module = "CANDIDATE"
	LoaModule       Module = "LOA"
	ActivityModule  Module = "ACTIVITY"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	ViewPermission   Permission = "VIEW"
	FlowPermission   Permission = "FLOW"
	DecidePermission Permission = "DECIDE"
	FilesPermission  Permission = "FILES"
	NotesPermission  Permission = "NOTES"
	ExportPermission Permission = "EXPORT"
)
