package dbmodels

type CandidateResume struct {
	BaseRequestModel
	UploadedByID   string `gorm:"type:varchar(36)"`
	UploadedByName string `gorm:"type:varchar(255)"`
	FileName       string `gorm:"type:varchar(255)"`
	FileURL        string `gorm:"type:varchar(512)"`
	FileSize       int64
	MimeType       string `gorm:"type:varchar(255)"`
	CandidateName  string `gorm:"type:varchar(255)"`
	Notes          string
}
