package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"helpdesk-backend/config"
	"helpdesk-backend/db"
	hiringhandler "helpdesk-backend/lib/hiring"
	requeststore "helpdesk-backend/lib/request/store"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	hiringapimodels "helpdesk-backend/models/api/hiring"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// RequestSummary сводка по процессу найма
	RequestSummary(requestID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(requeststore.NewInstance(db.DB), hiringhandler.Instance, config.Conf.App.FontDir)
}

func NewInstance(requestStore requeststore.Provider, hiring hiringhandler.Provider, fontDir string) Provider {
	return impl{
		requestStore: requestStore,
		hiring:       hiring,
		fontDir:      fontDir,
	}
}

type impl struct {
	requestStore requeststore.Provider
	hiring       hiringhandler.Provider
	fontDir      string
}

func (i impl) RequestSummary(requestID string) (*bytes.Buffer, error) {
	rec, err := i.requestStore.GetByID(requestID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil {
		return nil, apperrors.NotFound("заявка не найдена")
	}
	data, err := collectSummary(i.hiring, hiringapimodels.RequestConvert(*rec))
	if err != nil {
		return nil, err
	}
	body, err := GenerateSummary(i.fontDir, data)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return bytes.NewBuffer(body), nil
}

type summaryWriter struct {
	pdf       *fpdf.Fpdf
	family    string
	translate func(string) string
}

// GenerateSummary без шрифтов с кириллицей в fontDir используется встроенный шрифт
func GenerateSummary(fontDir string, data SummaryData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSummary panic recover: %v", r)
		}
	}()
	w := newSummaryWriter(fontDir)
	pdf := w.pdf
	pdf.AddPage()
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	w.title(data.Request.Title)
	w.field("Заявка", data.Request.ID)
	w.field("Статус", data.Request.StatusName)
	w.field("Нанимающий менеджер", data.Request.RequesterName)
	w.field("Создана", formatTime(&data.Request.CreatedAt))
	w.field("Закрыта", formatTime(data.Request.ResolvedAt))
	if data.Request.CustomFields.JobPostingURL != "" {
		w.field("Вакансия", data.Request.CustomFields.JobPostingURL)
	}
	if data.Request.CustomFields.SelectedCandidateName != "" {
		w.field("Выбранный кандидат", data.Request.CustomFields.SelectedCandidateName)
	}

	w.section("Согласования")
	if len(data.Approvals) == 0 {
		w.text("нет")
	}
	for _, approval := range data.Approvals {
		w.text(fmt.Sprintf("%v: %v, %v %v", approval.ApproverType, approval.Status.ToHuman(), approval.ApproverName, formatTime(approval.DecidedAt)))
	}

	w.section("Кандидаты")
	if len(data.Resumes) == 0 {
		w.text("нет")
	}
	for _, resume := range data.Resumes {
		w.text(fmt.Sprintf("%v (%v)", resume.CandidateName, resume.FileName))
	}

	w.section("Интервью")
	if schedule := data.Interview.InterviewSchedule; schedule != nil {
		w.field("Кандидат", schedule.CandidateName)
		w.field("Дата", schedule.InterviewDate+" "+schedule.InterviewTime)
		if schedule.Location != "" {
			w.field("Место", schedule.Location)
		}
		if len(schedule.Interviewers) != 0 {
			w.field("Интервьюеры", strings.Join(schedule.Interviewers, ", "))
		}
	} else {
		w.text("не назначено")
	}
	if feedback := data.Interview.InterviewFeedback; feedback != nil {
		w.field("Решение", string(feedback.Decision))
		w.field("Оценки", feedback.RatingsSummary())
		w.field("Отзыв", feedback.Feedback)
	}

	w.section("Проверка HR")
	if screening := data.Screening; screening != nil {
		w.field("Биография", screening.BackgroundCheckStatus.ToHuman())
		w.field("Рекомендации", screening.ReferencesCheckStatus.ToHuman())
		w.field("Итог", screening.OverallStatus.ToHuman())
	} else {
		w.text("не начата")
	}

	w.section("Оффер")
	if loa := data.Loa; loa != nil {
		w.field("Файл", loa.LoaFileName)
		w.field("Согласован", formatTime(loa.ApprovalDate))
		w.field("Выдан", formatTime(loa.IssuedDate))
		w.field("Подписан", formatTime(loa.SignedUploadedAt))
		w.field("Принят", formatTime(loa.AcceptedDate))
	} else {
		w.text("не загружен")
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newSummaryWriter(fontDir string) *summaryWriter {
	if fontDir != "" {
		if _, err := os.Stat(filepath.Join(fontDir, "Arial.ttf")); err == nil {
			pdf := fpdf.New("P", "mm", "A4", fontDir)
			pdf.AddUTF8Font("Arial", "", "Arial.ttf")
			pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
			return &summaryWriter{
				pdf:       pdf,
				family:    "Arial",
				translate: func(s string) string { return s },
			}
		}
		log.WithField("font_dir", fontDir).Warn("шрифты для pdf не найдены, используется встроенный шрифт")
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	return &summaryWriter{
		pdf:       pdf,
		family:    "Helvetica",
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (w *summaryWriter) title(value string) {
	w.pdf.SetFont(w.family, "B", 16)
	w.pdf.MultiCell(0, 8, w.translate(value), "", "L", false)
	w.pdf.Ln(4)
}

func (w *summaryWriter) section(value string) {
	w.pdf.Ln(4)
	w.pdf.SetFont(w.family, "B", 13)
	w.pdf.CellFormat(0, 7, w.translate(value), "B", 1, "L", false, 0, "")
	w.pdf.Ln(2)
}

func (w *summaryWriter) field(name, value string) {
	if value == "" {
		value = "-"
	}
	w.pdf.SetFont(w.family, "B", 11)
	w.pdf.CellFormat(55, 6, w.translate(name+":"), "", 0, "L", false, 0, "")
	w.pdf.SetFont(w.family, "", 11)
	w.pdf.MultiCell(0, 6, w.translate(value), "", "L", false)
}

func (w *summaryWriter) text(value string) {
	w.pdf.SetFont(w.family, "", 11)
	w.pdf.MultiCell(0, 6, w.translate(value), "", "L", false)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006 15:04")
}
