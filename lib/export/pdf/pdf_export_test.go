package pdfexport

import (
	"testing"
	"time"

	filestorage "helpdesk-backend/lib/file-storage"
	hiringhandler "helpdesk-backend/lib/hiring"
	requesthandler "helpdesk-backend/lib/request"
	requeststore "helpdesk-backend/lib/request/store"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/lib/utils/testdb"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"

	"github.com/stretchr/testify/require"
)

func TestRequestSummary(t *testing.T) {
	t.Run(`GenerateSummary check`, func(t *testing.T) {
		rating := 4
		now := time.Now()
		data := SummaryData{
			Request: hiringapimodels.RequestView{
				ID:            "req-1",
				Title:         "Backend developer",
				Status:        models.RSLoaIssued,
				StatusName:    models.RSLoaIssued.ToHuman(),
				RequesterName: "Smirnov Oleg",
				CreatedAt:     now,
			},
			Approvals: []hiringapimodels.ApprovalView{
				{ApproverType: models.ApproverTypeCeo, Status: models.AStatusApproved, ApproverName: "Petrov", DecidedAt: &now},
			},
			Resumes: []hiringapimodels.ResumeView{
				{CandidateName: "Ivanov Ivan", FileName: "cv.pdf"},
			},
			Interview: hiringapimodels.InterviewDetailsView{
				InterviewSchedule: &hiringapimodels.InterviewScheduleView{
					CandidateName: "Ivanov Ivan",
					InterviewDate: "2026-10-20",
					InterviewTime: "14:30",
					Interviewers:  []string{"manager-1"},
				},
				InterviewFeedback: &hiringapimodels.InterviewFeedbackView{
					Decision:      models.InterviewDecisionProceed,
					OverallRating: &rating,
					Feedback:      "Strong candidate",
				},
			},
			Screening: &hiringapimodels.HRScreeningView{
				BackgroundCheckStatus: models.CheckStatusCompleted,
				ReferencesCheckStatus: models.CheckStatusCompleted,
				OverallStatus:         models.ScreeningCompleted,
			},
			Loa: &hiringapimodels.LoaView{LoaFileName: "offer.pdf", ApprovalDate: &now, IssuedDate: &now},
		}
		body, err := GenerateSummary("", data)
		require.Nil(t, err)
		require.True(t, len(body) > 0)
		require.Equal(t, "%PDF", string(body[:4]))
	})

	t.Run(`RequestSummary check`, func(t *testing.T) {
		DB := testdb.New(t)
		manager := models.Actor{ID: "manager-1", Name: "Смирнов Олег", Role: models.EmployeeRole}
		view, err := requesthandler.NewInstance(DB).Create(manager, hiringapimodels.RequestCreateData{
			Title:       "Аналитик",
			ServiceDesk: models.ServiceDeskHR,
		})
		require.Nil(t, err)

		hiring := hiringhandler.NewInstance(DB, filestorage.NewMemoryStorage())
		i := NewInstance(requeststore.NewInstance(DB), hiring, "")
		buf, err := i.RequestSummary(view.ID)
		require.Nil(t, err)
		require.Equal(t, "%PDF", string(buf.Bytes()[:4]))

		_, err = i.RequestSummary("unknown")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`collectSummary check`, func(t *testing.T) {
		DB := testdb.New(t)
		manager := models.Actor{ID: "manager-1", Name: "Смирнов Олег", Role: models.EmployeeRole}
		view, err := requesthandler.NewInstance(DB).Create(manager, hiringapimodels.RequestCreateData{
			Title: "Аналитик",
		})
		require.Nil(t, err)

		data, err := collectSummary(hiringhandler.NewInstance(DB, filestorage.NewMemoryStorage()), view)
		require.Nil(t, err)
		require.Empty(t, data.Approvals)
		require.Empty(t, data.Resumes)
		require.Nil(t, data.Interview.InterviewSchedule)
		require.Nil(t, data.Screening)
		require.Nil(t, data.Loa)
	})
}
