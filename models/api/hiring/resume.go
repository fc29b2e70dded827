package hiringapimodels

import (
	dbmodels "helpdesk-backend/models/db"
	"time"
)

type ResumeView struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"requestId"`
	CandidateName  string    `json:"candidateName"`
	Notes          string    `json:"notes"`
	FileName       string    `json:"fileName"`
	FileURL        string    `json:"fileUrl"`
	FileSize       int64     `json:"fileSize,string"` // размер файла в байтах
	MimeType       string    `json:"mimeType"`
	UploadedByID   string    `json:"uploadedById"`
	UploadedByName string    `json:"uploadedByName"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ResumeConvert(rec dbmodels.CandidateResume) ResumeView {
	return ResumeView{
		ID:             rec.ID,
		RequestID:      rec.RequestID,
		CandidateName:  rec.CandidateName,
		Notes:          rec.Notes,
		FileName:       rec.FileName,
		FileURL:        rec.FileURL,
		FileSize:       rec.FileSize,
		MimeType:       rec.MimeType,
		UploadedByID:   rec.UploadedByID,
		UploadedByName: rec.UploadedByName,
		CreatedAt:      rec.CreatedAt,
	}
}
