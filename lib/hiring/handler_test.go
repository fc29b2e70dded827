package hiringhandler

import (
	"context"
	"sync"
	"testing"

	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type guardedOp struct {
	name    string
	allowed []models.RequestStatus
	call    func(p Provider, id string) error
}

func guardedOps() []guardedOp {
	ctx := context.TODO()
	return []guardedOp{
		{OpRouteToCEO, []models.RequestStatus{models.RSSubmitted, models.RSInReview}, func(p Provider, id string) error {
			_, err := p.RouteToCEO(agent, id, hiringapimodels.CommentsData{})
			return err
		}},
		{OpCeoDecision, []models.RequestStatus{models.RSPendingCeoApproval}, func(p Provider, id string) error {
			_, err := p.CeoDecision(ceo, id, hiringapimodels.DecisionData{Decision: models.DecisionApproved})
			return err
		}},
		{OpMarkJobPosted, []models.RequestStatus{models.RSCeoApproved}, func(p Provider, id string) error {
			_, err := p.MarkJobPosted(agent, id, hiringapimodels.JobPostedData{})
			return err
		}},
		{OpUploadResume, []models.RequestStatus{models.RSJobPosted}, func(p Provider, id string) error {
			_, err := p.UploadResume(ctx, agent, id, hiringapimodels.ResumeUploadData{CandidateName: "Кандидат", File: loaFile("cv.pdf")})
			return err
		}},
		{OpRouteToManager, []models.RequestStatus{models.RSJobPosted}, func(p Provider, id string) error {
			_, err := p.RouteToManager(agent, id, hiringapimodels.CommentsData{})
			return err
		}},
		{OpManagerDecision, []models.RequestStatus{models.RSPendingManagerReview}, func(p Provider, id string) error {
			_, err := p.ManagerDecision(manager, id, hiringapimodels.ManagerDecisionData{
				DecisionData: hiringapimodels.DecisionData{Decision: models.DecisionApproved},
			})
			return err
		}},
		{OpScheduleInterview, []models.RequestStatus{models.RSManagerApproved}, func(p Provider, id string) error {
			_, err := p.ScheduleInterview(agent, id, hiringapimodels.ScheduleInterviewData{
				CandidateID:   "unknown",
				InterviewDate: "2026-11-02",
				InterviewTime: "10:30",
			})
			return err
		}},
		{OpSubmitInterviewFeedback, []models.RequestStatus{models.RSInterviewScheduled}, func(p Provider, id string) error {
			_, err := p.SubmitInterviewFeedback(manager, id, hiringapimodels.InterviewFeedbackData{
				Decision: models.InterviewDecisionProceed,
				Feedback: "ok",
			})
			return err
		}},
		{OpStartHRScreening, []models.RequestStatus{models.RSInterviewFeedbackPending}, func(p Provider, id string) error {
			_, err := p.StartHRScreening(agent, id, hiringapimodels.StartScreeningData{})
			return err
		}},
		{OpUploadLOA, []models.RequestStatus{models.RSHrScreening, models.RSLoaPendingApproval}, func(p Provider, id string) error {
			_, err := p.UploadLOA(ctx, agent, id, loaFile("offer.pdf"))
			return err
		}},
		{OpRouteLOAForApproval, []models.RequestStatus{models.RSHrScreening, models.RSLoaPendingApproval}, func(p Provider, id string) error {
			_, err := p.RouteLOAForApproval(agent, id, hiringapimodels.CommentsData{})
			return err
		}},
		{OpManagerApproveLOA, []models.RequestStatus{models.RSLoaPendingApproval}, func(p Provider, id string) error {
			_, err := p.ManagerApproveLOA(manager, id, hiringapimodels.DecisionData{Decision: models.DecisionApproved})
			return err
		}},
		{OpMarkLOAIssued, []models.RequestStatus{models.RSLoaApproved}, func(p Provider, id string) error {
			_, err := p.MarkLOAIssued(agent, id, hiringapimodels.CommentsData{})
			return err
		}},
		{OpUploadSignedLOA, []models.RequestStatus{models.RSLoaIssued}, func(p Provider, id string) error {
			_, err := p.UploadSignedLOA(ctx, agent, id, loaFile("offer-signed.pdf"))
			return err
		}},
		{OpMarkLOAAccepted, []models.RequestStatus{models.RSLoaIssued}, func(p Provider, id string) error {
			_, err := p.MarkLOAAccepted(agent, id, hiringapimodels.CommentsData{})
			return err
		}},
	}
}

var allStatuses = []models.RequestStatus{
	models.RSSubmitted,
	models.RSInReview,
	models.RSPendingCeoApproval,
	models.RSCeoApproved,
	models.RSCeoRejected,
	models.RSJobPosted,
	models.RSPendingManagerReview,
	models.RSManagerApproved,
	models.RSInterviewScheduled,
	models.RSInterviewFeedbackPending,
	models.RSCandidateRejectedInterview,
	models.RSHrScreening,
	models.RSLoaPendingApproval,
	models.RSLoaApproved,
	models.RSLoaIssued,
	models.RSResolved,
}

func TestHiringWorkflow(t *testing.T) {
	t.Run(`full hiring scenario check`, func(t *testing.T) {
		f := newFixture(t)
		ctx := context.TODO()
		id := f.createRequest()
		require.EqualValues(t, 1, f.activityCount(id))

		expectStep := func(status models.RequestStatus, activities int64) {
			t.Helper()
			require.Equal(t, status, f.status(id))
			require.Equal(t, activities, f.activityCount(id))
		}

		res, err := f.handler.RouteToCEO(agent, id, hiringapimodels.CommentsData{Comments: "Бюджет согласован"})
		require.Nil(t, err)
		require.Equal(t, models.RSPendingCeoApproval, res.Request.Status)
		require.NotNil(t, res.Approval)
		require.Equal(t, models.AStatusPending, res.Approval.Status)
		expectStep(models.RSPendingCeoApproval, 2)

		res, err = f.handler.CeoDecision(ceo, id, hiringapimodels.DecisionData{Decision: models.DecisionApproved, Comments: "Согласовано"})
		require.Nil(t, err)
		require.Equal(t, models.AStatusApproved, res.Approval.Status)
		require.Equal(t, ceo.ID, *res.Approval.ApproverID)
		expectStep(models.RSCeoApproved, 3)

		res, err = f.handler.MarkJobPosted(agent, id, hiringapimodels.JobPostedData{JobPostingURL: "https://jobs.example.com/backend", Notes: "hh и сайт"})
		require.Nil(t, err)
		require.Equal(t, "https://jobs.example.com/backend", res.Request.CustomFields.JobPostingURL)
		require.NotNil(t, res.Request.CustomFields.JobPostedAt)
		expectStep(models.RSJobPosted, 4)

		first := f.uploadResume(id, "Алексеев Дмитрий")
		second := f.uploadResume(id, "Орлова Елена")
		expectStep(models.RSJobPosted, 6)

		res, err = f.handler.RouteToManager(agent, id, hiringapimodels.CommentsData{})
		require.Nil(t, err)
		require.Equal(t, manager.ID, *res.Request.AssignedToID)
		require.Equal(t, models.ApproverTypeHiringManager, res.Approval.ApproverType)
		expectStep(models.RSPendingManagerReview, 7)

		res, err = f.handler.ManagerDecision(manager, id, hiringapimodels.ManagerDecisionData{
			DecisionData:        hiringapimodels.DecisionData{Decision: models.DecisionApproved},
			SelectedCandidateID: second.ID,
		})
		require.Nil(t, err)
		require.Equal(t, second.ID, res.Request.CustomFields.SelectedCandidateID)
		require.Equal(t, "Орлова Елена", res.Request.CustomFields.SelectedCandidateName)
		expectStep(models.RSManagerApproved, 8)

		res, err = f.handler.ScheduleInterview(agent, id, hiringapimodels.ScheduleInterviewData{
			CandidateID:   second.ID,
			InterviewDate: "2026-11-02",
			InterviewTime: "10:30",
			MeetingLink:   "https://meet.example.com/abc",
			Interviewers:  []string{manager.ID, agent.ID},
		})
		require.Nil(t, err)
		require.Equal(t, "Орлова Елена", res.InterviewSchedule.CandidateName)
		require.Equal(t, "2026-11-02", res.InterviewSchedule.InterviewDate)
		expectStep(models.RSInterviewScheduled, 9)

		rating := 5
		res, err = f.handler.SubmitInterviewFeedback(manager, id, hiringapimodels.InterviewFeedbackData{
			Decision:      models.InterviewDecisionProceed,
			OverallRating: &rating,
			Feedback:      "Сильный кандидат",
		})
		require.Nil(t, err)
		require.Equal(t, models.InterviewDecisionProceed, res.InterviewFeedback.Decision)
		expectStep(models.RSInterviewFeedbackPending, 10)

		details, err := f.handler.GetInterviewDetails(id)
		require.Nil(t, err)
		require.NotNil(t, details.InterviewSchedule)
		require.NotNil(t, details.InterviewFeedback)
		require.Equal(t, []string{manager.ID, agent.ID}, details.InterviewSchedule.Interviewers)

		res, err = f.handler.StartHRScreening(agent, id, hiringapimodels.StartScreeningData{Notes: "Старт"})
		require.Nil(t, err)
		require.Equal(t, models.ScreeningInProgress, res.HRScreening.OverallStatus)
		require.Equal(t, models.CheckStatusPending, res.HRScreening.BackgroundCheckStatus)
		expectStep(models.RSHrScreening, 11)

		f.completeScreening(id)
		expectStep(models.RSHrScreening, 12)

		loa, err := f.handler.UploadLOA(ctx, agent, id, loaFile("offer.pdf"))
		require.Nil(t, err)
		require.Equal(t, "offer.pdf", loa.LoaFileName)
		require.EqualValues(t, len("%PDF-1.4 offer.pdf"), loa.LoaFileSize)
		expectStep(models.RSHrScreening, 13)

		_, err = f.handler.RouteLOAForApproval(agent, id, hiringapimodels.CommentsData{})
		require.Nil(t, err)
		expectStep(models.RSLoaPendingApproval, 14)

		res, err = f.handler.ManagerApproveLOA(manager, id, hiringapimodels.DecisionData{Decision: models.DecisionApproved, Comments: "Ок"})
		require.Nil(t, err)
		require.Equal(t, manager.ID, *res.Loa.ApprovedByID)
		require.NotNil(t, res.Loa.ApprovalDate)
		expectStep(models.RSLoaApproved, 15)

		res, err = f.handler.MarkLOAIssued(agent, id, hiringapimodels.CommentsData{})
		require.Nil(t, err)
		require.NotNil(t, res.Loa.IssuedDate)
		expectStep(models.RSLoaIssued, 16)

		loa, err = f.handler.UploadSignedLOA(ctx, agent, id, loaFile("offer-signed.pdf"))
		require.Nil(t, err)
		require.Equal(t, "offer-signed.pdf", loa.SignedLoaFileName)
		expectStep(models.RSLoaIssued, 17)

		res, err = f.handler.MarkLOAAccepted(agent, id, hiringapimodels.CommentsData{Comments: "Выход 1 декабря"})
		require.Nil(t, err)
		require.NotNil(t, res.Loa.AcceptedDate)
		require.NotNil(t, res.Request.ResolvedAt)
		expectStep(models.RSResolved, 18)

		_, err = f.handler.MarkLOAAccepted(agent, id, hiringapimodels.CommentsData{})
		requireKind(t, err, apperrors.KindInvalidState)
		expectStep(models.RSResolved, 18)

		file, err := f.handler.DownloadLOA(ctx, id, true)
		require.Nil(t, err)
		require.Equal(t, "offer-signed.pdf", file.FileName)
		require.Equal(t, []byte("%PDF-1.4 offer-signed.pdf"), file.Body)

		file, err = f.handler.DownloadResume(ctx, id, first.ID)
		require.Nil(t, err)
		require.Equal(t, "resume.pdf", file.FileName)
	})

	t.Run(`operations outside of allowed statuses check`, func(t *testing.T) {
		f := newFixture(t)
		ops := guardedOps()
		for _, status := range allStatuses {
			id := f.requestIn(status)
			activities := f.activityCount(id)
			for _, op := range ops {
				if status.In(op.allowed...) {
					continue
				}
				err := op.call(f.handler, id)
				require.NotNil(t, err, "%v в статусе %v", op.name, status)
				require.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err), "%v в статусе %v: %v", op.name, status, err)
			}
			require.Equal(t, status, f.status(id))
			require.Equal(t, activities, f.activityCount(id), "статус %v", status)
		}
	})

	t.Run(`unknown request check`, func(t *testing.T) {
		f := newFixture(t)
		for _, op := range guardedOps() {
			requireKind(t, op.call(f.handler, "missing"), apperrors.KindNotFound)
		}
		_, err := f.handler.GetInterviewDetails("missing")
		requireKind(t, err, apperrors.KindNotFound)
		_, err = f.handler.ListResumes("missing")
		requireKind(t, err, apperrors.KindNotFound)
	})
}

func TestApprovals(t *testing.T) {
	t.Run(`ceo rejection check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSPendingCeoApproval)
		res, err := f.handler.CeoDecision(ceo, id, hiringapimodels.DecisionData{Decision: models.DecisionRejected, Comments: "Нет бюджета"})
		require.Nil(t, err)
		require.Equal(t, models.RSCeoRejected, res.Request.Status)
		require.Equal(t, models.AStatusRejected, res.Approval.Status)
		require.Equal(t, "Нет бюджета", res.Approval.Comments)
		require.True(t, res.Request.Status.IsTerminal())

		_, err = f.handler.CeoDecision(ceo, id, hiringapimodels.DecisionData{Decision: models.DecisionApproved})
		requireKind(t, err, apperrors.KindInvalidState)
	})

	t.Run(`single pending approval check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSPendingManagerReview)
		_, err := f.handler.ManagerDecision(manager, id, hiringapimodels.ManagerDecisionData{
			DecisionData: hiringapimodels.DecisionData{Decision: models.DecisionRejected, Comments: "Нужны другие кандидаты"},
		})
		require.Nil(t, err)
		require.Equal(t, models.RSInReview, f.status(id))

		_, err = f.handler.RouteToCEO(agent, id, hiringapimodels.CommentsData{})
		require.Nil(t, err)

		approvals, err := f.handler.ListApprovals(id)
		require.Nil(t, err)
		pending := map[models.ApproverType]int{}
		for _, approval := range approvals {
			if approval.Status == models.AStatusPending {
				pending[approval.ApproverType]++
			}
		}
		require.Equal(t, map[models.ApproverType]int{models.ApproverTypeCeo: 1}, pending)
		require.Len(t, approvals, 3)
	})

	t.Run(`job posting url validation check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSCeoApproved)
		_, err := f.handler.MarkJobPosted(agent, id, hiringapimodels.JobPostedData{JobPostingURL: "not a url"})
		requireKind(t, err, apperrors.KindValidation)
		require.Equal(t, models.RSCeoApproved, f.status(id))
	})

	t.Run(`decision validation check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSPendingCeoApproval)
		_, err := f.handler.CeoDecision(ceo, id, hiringapimodels.DecisionData{})
		requireKind(t, err, apperrors.KindValidation)
		_, err = f.handler.CeoDecision(ceo, id, hiringapimodels.DecisionData{Decision: "MAYBE"})
		requireKind(t, err, apperrors.KindValidation)
		require.Equal(t, models.RSPendingCeoApproval, f.status(id))
	})

	t.Run(`concurrent ceo decisions check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSPendingCeoApproval)
		activities := f.activityCount(id)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		decisions := []models.Decision{models.DecisionApproved, models.DecisionRejected}
		for n := range decisions {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, errs[n] = f.handler.CeoDecision(ceo, id, hiringapimodels.DecisionData{Decision: decisions[n]})
			}(n)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			requireKind(t, err, apperrors.KindInvalidState)
		}
		require.Equal(t, 1, succeeded)
		require.Equal(t, activities+1, f.activityCount(id))
		require.True(t, f.status(id).In(models.RSCeoApproved, models.RSCeoRejected))
	})
}

func TestCandidates(t *testing.T) {
	t.Run(`route to manager without resumes check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSJobPosted)
		activities := f.activityCount(id)
		_, err := f.handler.RouteToManager(agent, id, hiringapimodels.CommentsData{})
		requireKind(t, err, apperrors.KindPreconditionFailed)
		require.Equal(t, models.RSJobPosted, f.status(id))
		require.Equal(t, activities, f.activityCount(id))
	})

	t.Run(`resume upload and delete check`, func(t *testing.T) {
		f := newFixture(t)
		ctx := context.TODO()
		id := f.requestIn(models.RSJobPosted)
		resume := f.uploadResume(id, "Алексеев Дмитрий")
		require.Equal(t, "Алексеев Дмитрий", resume.CandidateName)
		require.EqualValues(t, len("%PDF-1.4 resume of Алексеев Дмитрий"), resume.FileSize)

		body, err := f.files.Get(ctx, resume.FileURL)
		require.Nil(t, err)
		require.NotEmpty(t, body)

		activities := f.activityCount(id)
		require.Nil(t, f.handler.DeleteResume(ctx, agent, id, resume.ID))
		require.Equal(t, activities+1, f.activityCount(id))
		list, err := f.handler.ListResumes(id)
		require.Nil(t, err)
		require.Empty(t, list)
		_, err = f.files.Get(ctx, resume.FileURL)
		require.NotNil(t, err)

		requireKind(t, f.handler.DeleteResume(ctx, agent, id, resume.ID), apperrors.KindNotFound)
	})

	t.Run(`resume validation check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSJobPosted)
		_, err := f.handler.UploadResume(context.TODO(), agent, id, hiringapimodels.ResumeUploadData{
			CandidateName: "",
			File:          loaFile("cv.pdf"),
		})
		requireKind(t, err, apperrors.KindValidation)
		_, err = f.handler.UploadResume(context.TODO(), agent, id, hiringapimodels.ResumeUploadData{
			CandidateName: "Кандидат",
			File:          hiringapimodels.UploadFile{FileName: "cv.pdf"},
		})
		requireKind(t, err, apperrors.KindValidation)
	})

	t.Run(`hiring manager only check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSPendingManagerReview)
		for _, actor := range []models.Actor{outsider, agent, ceo} {
			_, err := f.handler.ManagerDecision(actor, id, hiringapimodels.ManagerDecisionData{
				DecisionData: hiringapimodels.DecisionData{Decision: models.DecisionApproved},
			})
			requireKind(t, err, apperrors.KindForbidden)
		}
		require.Equal(t, models.RSPendingManagerReview, f.status(id))

		// проверка автора выполняется независимо от статуса заявки
		submitted := f.requestIn(models.RSSubmitted)
		_, err := f.handler.ManagerDecision(outsider, submitted, hiringapimodels.ManagerDecisionData{
			DecisionData: hiringapimodels.DecisionData{Decision: models.DecisionApproved},
		})
		requireKind(t, err, apperrors.KindForbidden)
		_, err = f.handler.SubmitInterviewFeedback(outsider, submitted, hiringapimodels.InterviewFeedbackData{
			Decision: models.InterviewDecisionProceed,
			Feedback: "ok",
		})
		requireKind(t, err, apperrors.KindForbidden)
		_, err = f.handler.ManagerApproveLOA(outsider, submitted, hiringapimodels.DecisionData{Decision: models.DecisionApproved})
		requireKind(t, err, apperrors.KindForbidden)
	})

	t.Run(`unknown selected candidate check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSPendingManagerReview)
		_, err := f.handler.ManagerDecision(manager, id, hiringapimodels.ManagerDecisionData{
			DecisionData:        hiringapimodels.DecisionData{Decision: models.DecisionApproved},
			SelectedCandidateID: "missing",
		})
		requireKind(t, err, apperrors.KindNotFound)
		require.Equal(t, models.RSPendingManagerReview, f.status(id))
	})
}

func TestInterview(t *testing.T) {
	t.Run(`schedule validation check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSManagerApproved)
		_, err := f.handler.ScheduleInterview(agent, id, hiringapimodels.ScheduleInterviewData{
			CandidateID:   f.firstResume(id).ID,
			InterviewDate: "02.11.2026",
			InterviewTime: "10:30",
		})
		requireKind(t, err, apperrors.KindValidation)

		_, err = f.handler.ScheduleInterview(agent, id, hiringapimodels.ScheduleInterviewData{
			CandidateID:   "missing",
			InterviewDate: "2026-11-02",
			InterviewTime: "10:30",
		})
		requireKind(t, err, apperrors.KindNotFound)
		require.Equal(t, models.RSManagerApproved, f.status(id))
	})

	t.Run(`feedback rating validation check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSInterviewScheduled)
		rating := 6
		_, err := f.handler.SubmitInterviewFeedback(manager, id, hiringapimodels.InterviewFeedbackData{
			Decision:    models.InterviewDecisionProceed,
			CulturalFit: &rating,
			Feedback:    "ok",
		})
		requireKind(t, err, apperrors.KindValidation)
	})

	t.Run(`rejected candidate check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSCandidateRejectedInterview)
		require.True(t, f.status(id).IsTerminal())
		_, err := f.handler.StartHRScreening(agent, id, hiringapimodels.StartScreeningData{})
		requireKind(t, err, apperrors.KindInvalidState)
	})

	t.Run(`screening without feedback check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSInterviewScheduled)
		f.setStatus(id, models.RSInterviewFeedbackPending)
		_, err := f.handler.StartHRScreening(agent, id, hiringapimodels.StartScreeningData{})
		requireKind(t, err, apperrors.KindPreconditionFailed)
	})
}

func TestScreening(t *testing.T) {
	t.Run(`derived overall status check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSHrScreening)

		inProgress := models.CheckStatusInProgress
		failed := models.CheckStatusFailed
		completed := models.CheckStatusCompleted
		notes := "Судимостей нет"

		view, err := f.handler.UpdateScreeningStatus(agent, id, hiringapimodels.UpdateScreeningData{
			BackgroundCheckStatus: &inProgress,
			BackgroundCheckNotes:  &notes,
			ReferencesContacted:   []string{"ООО Ромашка"},
		})
		require.Nil(t, err)
		require.Equal(t, models.ScreeningInProgress, view.OverallStatus)
		require.Equal(t, notes, view.BackgroundCheckNotes)
		require.Equal(t, []string{"ООО Ромашка"}, view.ReferencesContacted)

		view, err = f.handler.UpdateScreeningStatus(agent, id, hiringapimodels.UpdateScreeningData{
			ReferencesCheckStatus: &failed,
		})
		require.Nil(t, err)
		require.Equal(t, models.ScreeningIssuesFound, view.OverallStatus)
		require.Equal(t, []string{"ООО Ромашка"}, view.ReferencesContacted)

		_, err = f.handler.UploadLOA(context.TODO(), agent, id, loaFile("offer.pdf"))
		requireKind(t, err, apperrors.KindPreconditionFailed)

		view, err = f.handler.UpdateScreeningStatus(agent, id, hiringapimodels.UpdateScreeningData{
			BackgroundCheckStatus: &completed,
			ReferencesCheckStatus: &completed,
		})
		require.Nil(t, err)
		require.Equal(t, models.ScreeningCompleted, view.OverallStatus)
		require.Equal(t, agent.ID, *view.CompletedByID)
		require.NotNil(t, view.CompletedAt)

		stored, err := f.handler.GetScreeningDetails(id)
		require.Nil(t, err)
		require.Equal(t, models.ScreeningCompleted, stored.OverallStatus)
		require.Equal(t, models.RSHrScreening, f.status(id))
	})

	t.Run(`invalid check status check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSHrScreening)
		unknown := models.CheckStatus("DONE")
		_, err := f.handler.UpdateScreeningStatus(agent, id, hiringapimodels.UpdateScreeningData{
			BackgroundCheckStatus: &unknown,
		})
		requireKind(t, err, apperrors.KindValidation)
	})

	t.Run(`screening not started check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSInterviewFeedbackPending)
		completed := models.CheckStatusCompleted
		_, err := f.handler.UpdateScreeningStatus(agent, id, hiringapimodels.UpdateScreeningData{
			BackgroundCheckStatus: &completed,
		})
		requireKind(t, err, apperrors.KindNotFound)
		_, err = f.handler.GetScreeningDetails(id)
		requireKind(t, err, apperrors.KindNotFound)
	})
}

func TestLetterOfAcceptance(t *testing.T) {
	t.Run(`route without loa check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSHrScreening)
		_, err := f.handler.RouteLOAForApproval(agent, id, hiringapimodels.CommentsData{})
		requireKind(t, err, apperrors.KindPreconditionFailed)
		_, err = f.handler.GetLOADetails(id)
		requireKind(t, err, apperrors.KindNotFound)
	})

	t.Run(`manager rejects loa check`, func(t *testing.T) {
		f := newFixture(t)
		ctx := context.TODO()
		id := f.requestIn(models.RSLoaPendingApproval)
		res, err := f.handler.ManagerApproveLOA(manager, id, hiringapimodels.DecisionData{
			Decision: models.DecisionRejected,
			Comments: "Поправить оклад",
		})
		require.Nil(t, err)
		require.Equal(t, models.RSHrScreening, res.Request.Status)
		require.Nil(t, res.Loa.ApprovedByID)
		require.Equal(t, "Поправить оклад", res.Loa.ApprovalComments)

		loa, err := f.handler.UploadLOA(ctx, agent, id, loaFile("offer-v2.pdf"))
		require.Nil(t, err)
		require.Equal(t, "offer-v2.pdf", loa.LoaFileName)
		require.Equal(t, res.Loa.ID, loa.ID)

		_, err = f.handler.RouteLOAForApproval(agent, id, hiringapimodels.CommentsData{})
		require.Nil(t, err)
		res, err = f.handler.ManagerApproveLOA(manager, id, hiringapimodels.DecisionData{Decision: models.DecisionApproved})
		require.Nil(t, err)
		require.Equal(t, models.RSLoaApproved, res.Request.Status)

		file, err := f.handler.DownloadLOA(ctx, id, false)
		require.Nil(t, err)
		require.Equal(t, "offer-v2.pdf", file.FileName)
		_, err = f.handler.DownloadLOA(ctx, id, true)
		requireKind(t, err, apperrors.KindNotFound)
	})

	t.Run(`accept without signed loa check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSLoaIssued)
		activities := f.activityCount(id)
		_, err := f.handler.MarkLOAAccepted(agent, id, hiringapimodels.CommentsData{})
		requireKind(t, err, apperrors.KindPreconditionFailed)
		require.Equal(t, models.RSLoaIssued, f.status(id))
		require.Equal(t, activities, f.activityCount(id))
	})

	t.Run(`replaced loa files are removed check`, func(t *testing.T) {
		f := newFixture(t)
		ctx := context.TODO()
		id := f.requestIn(models.RSHrScreening)
		f.completeScreening(id)
		_, err := f.handler.UploadLOA(ctx, agent, id, loaFile("offer.pdf"))
		require.Nil(t, err)
		first := f.loa(id).LoaFileURL
		_, err = f.files.Get(ctx, first)
		require.Nil(t, err)

		_, err = f.handler.UploadLOA(ctx, agent, id, loaFile("offer-v2.pdf"))
		require.Nil(t, err)
		second := f.loa(id).LoaFileURL
		require.NotEqual(t, first, second)
		_, err = f.files.Get(ctx, first)
		require.NotNil(t, err)
		_, err = f.files.Get(ctx, second)
		require.Nil(t, err)

		f.advanceTo(id, models.RSLoaIssued)
		_, err = f.handler.UploadSignedLOA(ctx, agent, id, loaFile("offer-signed.pdf"))
		require.Nil(t, err)
		signed := f.loa(id).SignedLoaFileURL
		_, err = f.handler.UploadSignedLOA(ctx, agent, id, loaFile("offer-signed-v2.pdf"))
		require.Nil(t, err)
		_, err = f.files.Get(ctx, signed)
		require.NotNil(t, err)
		_, err = f.files.Get(ctx, f.loa(id).SignedLoaFileURL)
		require.Nil(t, err)
		_, err = f.files.Get(ctx, f.loa(id).LoaFileURL)
		require.Nil(t, err)
	})

	t.Run(`failed upload leaves no changes check`, func(t *testing.T) {
		f := newFixture(t)
		id := f.requestIn(models.RSHrScreening)
		f.completeScreening(id)
		activities := f.activityCount(id)

		broken := NewInstance(f.db, failingStorage{})
		_, err := broken.UploadLOA(context.TODO(), agent, id, loaFile("offer.pdf"))
		requireKind(t, err, apperrors.KindUnexpected)
		require.Equal(t, activities, f.activityCount(id))
		_, err = f.handler.GetLOADetails(id)
		requireKind(t, err, apperrors.KindNotFound)
	})
}

var errStorageUnavailable = errors.New("хранилище недоступно")

type failingStorage struct{}

func (failingStorage) Upload(ctx context.Context, folder, fileName, contentType string, body []byte) (string, error) {
	return "", errStorageUnavailable
}

func (failingStorage) Get(ctx context.Context, objectKey string) ([]byte, error) {
	return nil, errStorageUnavailable
}

func (failingStorage) Delete(ctx context.Context, objectKey string) error {
	return errStorageUnavailable
}
