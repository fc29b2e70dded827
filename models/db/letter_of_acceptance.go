package dbmodels

import "time"

type LetterOfAcceptance struct {
	BaseModel
	RequestID         string `gorm:"type:varchar(36);uniqueIndex"`
	LoaFileName       string `gorm:"type:varchar(255)"`
	LoaFileURL        string `gorm:"type:varchar(512)"`
	LoaFileSize       int64
	LoaMimeType       string `gorm:"type:varchar(255)"`
	UploadedByID      string `gorm:"type:varchar(36)"`
	SignedLoaFileName string `gorm:"type:varchar(255)"`
	SignedLoaFileURL  string `gorm:"type:varchar(512)"`
	SignedLoaFileSize int64
	SignedLoaMimeType string `gorm:"type:varchar(255)"`
	SignedUploadedAt  *time.Time
	ApprovedByID      *string `gorm:"type:varchar(36)"`
	ApprovedByName    string  `gorm:"type:varchar(255)"`
	ApprovalDate      *time.Time
	ApprovalComments  string
	IssuedDate        *time.Time
	AcceptedDate      *time.Time
}

func (l LetterOfAcceptance) IsApproved() bool {
	return l.ApprovedByID != nil && *l.ApprovedByID != ""
}

func (l LetterOfAcceptance) IsSigned() bool {
	return l.SignedLoaFileURL != ""
}
