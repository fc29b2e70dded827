package hiringapimodels

import (
	"fmt"
	"helpdesk-backend/models"
	dbmodels "helpdesk-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	InterviewDateLayout = "2006-01-02"
	InterviewTimeLayout = "15:04"
)

type ScheduleInterviewData struct {
	CandidateID   string   `json:"candidateId"`   // ид резюме кандидата
	InterviewDate string   `json:"interviewDate"` // дата, YYYY-MM-DD
	InterviewTime string   `json:"interviewTime"` // время, HH:MM
	Location      string   `json:"location"`
	MeetingLink   string   `json:"meetingLink"`
	Interviewers  []string `json:"interviewers"` // ид интервьюеров
	Notes         string   `json:"notes"`
}

func (s ScheduleInterviewData) Validate() error {
	if s.CandidateID == "" {
		return errors.New("не указан кандидат")
	}
	if s.InterviewDate == "" {
		return errors.New("не указана дата интервью")
	}
	if s.InterviewTime == "" {
		return errors.New("не указано время интервью")
	}
	for _, interviewer := range s.Interviewers {
		if strings.TrimSpace(interviewer) == "" {
			return errors.New("не указан ид интервьюера")
		}
	}
	_, err := s.InterviewAt()
	return err
}

// InterviewAt дата и время интервью
func (s ScheduleInterviewData) InterviewAt() (time.Time, error) {
	date, err := time.Parse(InterviewDateLayout, s.InterviewDate)
	if err != nil {
		return time.Time{}, errors.Errorf("некорректная дата интервью: %v", s.InterviewDate)
	}
	clock, err := time.Parse(InterviewTimeLayout, s.InterviewTime)
	if err != nil {
		return time.Time{}, errors.Errorf("некорректное время интервью: %v", s.InterviewTime)
	}
	return date.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), nil
}

type InterviewFeedbackData struct {
	Decision        models.InterviewDecision `json:"decision"` // PROCEED/REJECT
	OverallRating   *int                     `json:"overallRating"`
	TechnicalSkills *int                     `json:"technicalSkills"`
	CulturalFit     *int                     `json:"culturalFit"`
	Communication   *int                     `json:"communication"`
	Feedback        string                   `json:"feedback"`
	Concerns        string                   `json:"concerns"`
}

func (f InterviewFeedbackData) Validate() error {
	if err := f.Decision.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(f.Feedback) == "" {
		return errors.New("отсутствует отзыв по интервью")
	}
	ratings := map[string]*int{
		"overallRating":   f.OverallRating,
		"technicalSkills": f.TechnicalSkills,
		"culturalFit":     f.CulturalFit,
		"communication":   f.Communication,
	}
	for name, rating := range ratings {
		if rating == nil {
			continue
		}
		if *rating < 1 || *rating > 5 {
			return errors.Errorf("оценка %v должна быть от 1 до 5", name)
		}
	}
	return nil
}

type InterviewScheduleView struct {
	ID              string    `json:"id"`
	RequestID       string    `json:"requestId"`
	CandidateID     string    `json:"candidateId"`
	CandidateName   string    `json:"candidateName"`
	InterviewDate   string    `json:"interviewDate"`
	InterviewTime   string    `json:"interviewTime"`
	Location        string    `json:"location"`
	MeetingLink     string    `json:"meetingLink"`
	Interviewers    []string  `json:"interviewers"`
	Notes           string    `json:"notes"`
	ScheduledByID   string    `json:"scheduledById"`
	ScheduledByName string    `json:"scheduledByName"`
	CreatedAt       time.Time `json:"createdAt"`
}

func InterviewScheduleConvert(rec dbmodels.InterviewSchedule) InterviewScheduleView {
	result := InterviewScheduleView{
		ID:              rec.ID,
		RequestID:       rec.RequestID,
		CandidateID:     rec.CandidateID,
		InterviewDate:   rec.InterviewDate.Format(InterviewDateLayout),
		InterviewTime:   rec.InterviewTime,
		Location:        rec.Location,
		MeetingLink:     rec.MeetingLink,
		Interviewers:    []string(rec.Interviewers),
		Notes:           rec.Notes,
		ScheduledByID:   rec.ScheduledByID,
		ScheduledByName: rec.ScheduledByName,
		CreatedAt:       rec.CreatedAt,
	}
	if result.Interviewers == nil {
		result.Interviewers = []string{}
	}
	if rec.Candidate != nil {
		result.CandidateName = rec.Candidate.CandidateName
	}
	return result
}

type InterviewFeedbackView struct {
	ID              string                   `json:"id"`
	RequestID       string                   `json:"requestId"`
	Decision        models.InterviewDecision `json:"decision"`
	OverallRating   *int                     `json:"overallRating"`
	TechnicalSkills *int                     `json:"technicalSkills"`
	CulturalFit     *int                     `json:"culturalFit"`
	Communication   *int                     `json:"communication"`
	Feedback        string                   `json:"feedback"`
	Concerns        string                   `json:"concerns"`
	SubmittedByID   string                   `json:"submittedById"`
	SubmittedByName string                   `json:"submittedByName"`
	CreatedAt       time.Time                `json:"createdAt"`
}

func InterviewFeedbackConvert(rec dbmodels.InterviewFeedback) InterviewFeedbackView {
	return InterviewFeedbackView{
		ID:              rec.ID,
		RequestID:       rec.RequestID,
		Decision:        rec.Decision,
		OverallRating:   rec.OverallRating,
		TechnicalSkills: rec.TechnicalSkills,
		CulturalFit:     rec.CulturalFit,
		Communication:   rec.Communication,
		Feedback:        rec.Feedback,
		Concerns:        rec.Concerns,
		SubmittedByID:   rec.SubmittedByID,
		SubmittedByName: rec.SubmittedByName,
		CreatedAt:       rec.CreatedAt,
	}
}

// InterviewDetailsView данные интервью по заявке
type InterviewDetailsView struct {
	InterviewSchedule *InterviewScheduleView `json:"interviewSchedule"`
	InterviewFeedback *InterviewFeedbackView `json:"interviewFeedback"`
}

func formatRating(rating *int) string {
	if rating == nil {
		return "-"
	}
	return fmt.Sprintf("%d/5", *rating)
}

// RatingsSummary краткая строка с оценками для отчетов
func (f InterviewFeedbackView) RatingsSummary() string {
	return fmt.Sprintf("общая %v, технические навыки %v, культура %v, коммуникация %v",
		formatRating(f.OverallRating), formatRating(f.TechnicalSkills), formatRating(f.CulturalFit), formatRating(f.Communication))
}
