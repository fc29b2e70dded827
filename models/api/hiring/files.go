package hiringapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

// UploadFile загруженный файл (резюме, оффер)
type UploadFile struct {
	FileName string
	MimeType string
	Body     []byte
}

func (f UploadFile) Size() int64 {
	return int64(len(f.Body))
}

func (f UploadFile) Validate() error {
	if strings.TrimSpace(f.FileName) == "" {
		return errors.New("отсутствует имя файла")
	}
	if len(f.Body) == 0 {
		return errors.New("файл пустой")
	}
	return nil
}

type ResumeUploadData struct {
	CandidateName string `json:"candidateName"` // ФИО кандидата
	Notes         string `json:"notes"`
	File          UploadFile
}

func (r ResumeUploadData) Validate() error {
	if strings.TrimSpace(r.CandidateName) == "" {
		return errors.New("отсутствует ФИО кандидата")
	}
	return r.File.Validate()
}

// DownloadFile файл для скачивания
type DownloadFile struct {
	FileName string
	MimeType string
	Body     []byte
}
