package hiringapimodels

import (
	dbmodels "helpdesk-backend/models/db"
	"time"
)

type LoaView struct {
	ID                string     `json:"id"`
	RequestID         string     `json:"requestId"`
	LoaFileName       string     `json:"loaFileName"`
	LoaFileURL        string     `json:"loaFileUrl"`
	LoaFileSize       int64      `json:"loaFileSize,string"`
	LoaMimeType       string     `json:"loaMimeType"`
	UploadedByID      string     `json:"uploadedById"`
	SignedLoaFileName string     `json:"signedLoaFileName"`
	SignedLoaFileURL  string     `json:"signedLoaFileUrl"`
	SignedLoaFileSize int64      `json:"signedLoaFileSize,string"`
	SignedLoaMimeType string     `json:"signedLoaMimeType"`
	SignedUploadedAt  *time.Time `json:"signedUploadedAt"`
	ApprovedByID      *string    `json:"approvedById"`
	ApprovedByName    string     `json:"approvedByName"`
	ApprovalDate      *time.Time `json:"approvalDate"`
	ApprovalComments  string     `json:"approvalComments"`
	IssuedDate        *time.Time `json:"issuedDate"`
	AcceptedDate      *time.Time `json:"acceptedDate"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func LoaConvert(rec dbmodels.LetterOfAcceptance) LoaView {
	return LoaView{
		ID:                rec.ID,
		RequestID:         rec.RequestID,
		LoaFileName:       rec.LoaFileName,
		LoaFileURL:        rec.LoaFileURL,
		LoaFileSize:       rec.LoaFileSize,
		LoaMimeType:       rec.LoaMimeType,
		UploadedByID:      rec.UploadedByID,
		SignedLoaFileName: rec.SignedLoaFileName,
		SignedLoaFileURL:  rec.SignedLoaFileURL,
		SignedLoaFileSize: rec.SignedLoaFileSize,
		SignedLoaMimeType: rec.SignedLoaMimeType,
		SignedUploadedAt:  rec.SignedUploadedAt,
		ApprovedByID:      rec.ApprovedByID,
		ApprovedByName:    rec.ApprovedByName,
		ApprovalDate:      rec.ApprovalDate,
		ApprovalComments:  rec.ApprovalComments,
		IssuedDate:        rec.IssuedDate,
		AcceptedDate:      rec.AcceptedDate,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}
