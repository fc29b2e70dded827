package hiringhandler

import (
	"fmt"

	"helpdesk-backend/lib/metrics"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
)

func (i impl) ScheduleInterview(actor models.Actor, requestID string, data hiringapimodels.ScheduleInterviewData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpScheduleInterview, &err)
	logger := i.getLogger(requestID, OpScheduleInterview, &actor).WithField("candidate_id", data.CandidateID)
	if err = validate(data); err != nil {
		return result, err
	}
	interviewAt, err := data.InterviewAt()
	if err != nil {
		return result, apperrors.Validation(err)
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpScheduleInterview, models.RSManagerApproved); err != nil {
			return err
		}
		candidate, err := s.resume.GetByID(requestID, data.CandidateID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения резюме")
		}
		if candidate == nil {
			return apperrors.NotFound("резюме кандидата не найдено")
		}
		existing, err := s.interview.GetSchedule(requestID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения расписания интервью")
		}
		if existing != nil {
			return apperrors.InvalidState("интервью по заявке уже назначено")
		}
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, models.RSInterviewScheduled, []models.RequestStatus{models.RSManagerApproved}, nil); err != nil {
			return err
		}
		schedule := dbmodels.InterviewSchedule{
			RequestID:       requestID,
			CandidateID:     candidate.ID,
			InterviewDate:   interviewAt,
			InterviewTime:   data.InterviewTime,
			Location:        data.Location,
			MeetingLink:     data.MeetingLink,
			Interviewers:    data.Interviewers,
			Notes:           data.Notes,
			ScheduledByID:   actor.ID,
			ScheduledByName: actor.GetName(),
		}
		schedule.ID, err = s.interview.CreateSchedule(schedule)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения расписания интервью")
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation: OpScheduleInterview,
			actType:   models.ActivityStatusChange,
			message: fmt.Sprintf("Назначено интервью с кандидатом %v на %v %v",
				candidate.CandidateName, data.InterviewDate, data.InterviewTime),
			comments:   data.Notes,
			fromStatus: fromStatus,
			entityID:   schedule.ID,
		})
		if err != nil {
			return err
		}
		schedule.Candidate = candidate
		scheduleView := hiringapimodels.InterviewScheduleConvert(schedule)
		result.InterviewSchedule = &scheduleView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "интервью назначено")
	return result, err
}

func (i impl) SubmitInterviewFeedback(actor models.Actor, requestID string, data hiringapimodels.InterviewFeedbackData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpSubmitInterviewFeedback, &err)
	logger := i.getLogger(requestID, OpSubmitInterviewFeedback, &actor).WithField("decision", data.Decision)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkHiringManager(actor, rec); err != nil {
			return err
		}
		if err = checkStatus(rec, OpSubmitInterviewFeedback, models.RSInterviewScheduled); err != nil {
			return err
		}
		existing, err := s.interview.GetFeedback(requestID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения отзыва по интервью")
		}
		if existing != nil {
			return apperrors.InvalidState("отзыв по интервью уже отправлен")
		}
		to := models.RSInterviewFeedbackPending
		actType := models.ActivityApproval
		message := "Кандидат прошел интервью, ожидается проверка HR"
		if data.Decision == models.InterviewDecisionReject {
			to = models.RSCandidateRejectedInterview
			actType = models.ActivityRejection
			message = "Кандидат отклонен по итогам интервью"
		}
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, to, []models.RequestStatus{models.RSInterviewScheduled}, nil); err != nil {
			return err
		}
		feedback := dbmodels.InterviewFeedback{
			RequestID:       requestID,
			Decision:        data.Decision,
			OverallRating:   data.OverallRating,
			TechnicalSkills: data.TechnicalSkills,
			CulturalFit:     data.CulturalFit,
			Communication:   data.Communication,
			Feedback:        data.Feedback,
			Concerns:        data.Concerns,
			SubmittedByID:   actor.ID,
			SubmittedByName: actor.GetName(),
		}
		feedback.ID, err = s.interview.CreateFeedback(feedback)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения отзыва по интервью")
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpSubmitInterviewFeedback,
			actType:    actType,
			message:    message,
			comments:   data.Concerns,
			fromStatus: fromStatus,
			entityID:   feedback.ID,
		})
		if err != nil {
			return err
		}
		feedbackView := hiringapimodels.InterviewFeedbackConvert(feedback)
		result.InterviewFeedback = &feedbackView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "отзыв по интервью сохранен")
	return result, err
}

func (i impl) StartHRScreening(actor models.Actor, requestID string, data hiringapimodels.StartScreeningData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpStartHRScreening, &err)
	logger := i.getLogger(requestID, OpStartHRScreening, &actor)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpStartHRScreening, models.RSInterviewFeedbackPending); err != nil {
			return err
		}
		feedback, err := s.interview.GetFeedback(requestID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения отзыва по интервью")
		}
		if feedback == nil {
			return apperrors.PreconditionFailed("отсутствует отзыв по интервью")
		}
		if feedback.Decision != models.InterviewDecisionProceed {
			return apperrors.PreconditionFailed("проверка HR доступна только для кандидата, прошедшего интервью")
		}
		existing, err := s.screening.GetByRequest(requestID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения проверки HR")
		}
		if existing != nil {
			return apperrors.InvalidState("проверка HR по заявке уже начата")
		}
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, models.RSHrScreening, []models.RequestStatus{models.RSInterviewFeedbackPending}, nil); err != nil {
			return err
		}
		screening := dbmodels.HRScreening{
			RequestID:             requestID,
			BackgroundCheckStatus: models.CheckStatusPending,
			ReferencesCheckStatus: models.CheckStatusPending,
			ReferencesContacted:   dbmodels.StringList{},
			Notes:                 data.Notes,
			StartedByID:           actor.ID,
		}
		screening.Recalculate()
		screening.ID, err = s.screening.Create(screening)
		if err != nil {
			return errors.Wrap(err, "ошибка создания проверки HR")
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpStartHRScreening,
			actType:    models.ActivityStatusChange,
			message:    "Начата проверка кандидата службой HR",
			comments:   data.Notes,
			fromStatus: fromStatus,
			entityID:   screening.ID,
		})
		if err != nil {
			return err
		}
		screeningView := hiringapimodels.HRScreeningConvert(screening)
		result.HRScreening = &screeningView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "проверка HR начата")
	return result, err
}

func (i impl) UpdateScreeningStatus(actor models.Actor, requestID string, data hiringapimodels.UpdateScreeningData) (result hiringapimodels.HRScreeningView, err error) {
	defer metrics.ObserveTransition(OpUpdateScreeningStatus, &err)
	logger := i.getLogger(requestID, OpUpdateScreeningStatus, &actor)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		screening, err := s.screening.GetByRequestForUpdate(requestID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения проверки HR")
		}
		if screening == nil {
			return apperrors.NotFound("проверка HR по заявке не найдена")
		}
		prevStatus := screening.OverallStatus
		if data.BackgroundCheckStatus != nil {
			screening.BackgroundCheckStatus = *data.BackgroundCheckStatus
		}
		if data.BackgroundCheckNotes != nil {
			screening.BackgroundCheckNotes = *data.BackgroundCheckNotes
		}
		if data.ReferencesCheckStatus != nil {
			screening.ReferencesCheckStatus = *data.ReferencesCheckStatus
		}
		if data.ReferencesCheckNotes != nil {
			screening.ReferencesCheckNotes = *data.ReferencesCheckNotes
		}
		if data.ReferencesContacted != nil {
			screening.ReferencesContacted = data.ReferencesContacted
		}
		screening.Recalculate()
		if screening.OverallStatus == models.ScreeningCompleted {
			if screening.CompletedByID == nil {
				completedBy := actor.ID
				completedAt := i.now()
				screening.CompletedByID = &completedBy
				screening.CompletedAt = &completedAt
			}
		} else {
			screening.CompletedByID = nil
			screening.CompletedAt = nil
		}
		if err = s.screening.Save(*screening); err != nil {
			return errors.Wrap(err, "ошибка сохранения проверки HR")
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation: OpUpdateScreeningStatus,
			actType:   models.ActivitySystem,
			message: fmt.Sprintf("Обновлена проверка HR: проверка биографии - %v, проверка рекомендаций - %v, итог - %v",
				screening.BackgroundCheckStatus.ToHuman(), screening.ReferencesCheckStatus.ToHuman(), screening.OverallStatus.ToHuman()),
			fromStatus: rec.Status,
			entityID:   screening.ID,
			internal:   true,
		})
		if err != nil {
			return err
		}
		logger = logger.
			WithField("prev_status", prevStatus).
			WithField("overall_status", screening.OverallStatus)
		result = hiringapimodels.HRScreeningConvert(*screening)
		return nil
	})
	logResult(logger, err, "проверка HR обновлена")
	return result, err
}

func (i impl) GetInterviewDetails(requestID string) (hiringapimodels.InterviewDetailsView, error) {
	result := hiringapimodels.InterviewDetailsView{}
	s := i.readStores()
	logger := i.getLogger(requestID, "getInterviewDetails", nil)
	if _, err := i.getRequest(s, requestID); err != nil {
		return result, err
	}
	schedule, err := s.interview.GetSchedule(requestID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения расписания интервью")
		return result, errors.New("ошибка получения расписания интервью")
	}
	if schedule != nil {
		view := hiringapimodels.InterviewScheduleConvert(*schedule)
		result.InterviewSchedule = &view
	}
	feedback, err := s.interview.GetFeedback(requestID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения отзыва по интервью")
		return result, errors.New("ошибка получения отзыва по интервью")
	}
	if feedback != nil {
		view := hiringapimodels.InterviewFeedbackConvert(*feedback)
		result.InterviewFeedback = &view
	}
	return result, nil
}

func (i impl) GetScreeningDetails(requestID string) (hiringapimodels.HRScreeningView, error) {
	s := i.readStores()
	if _, err := i.getRequest(s, requestID); err != nil {
		return hiringapimodels.HRScreeningView{}, err
	}
	screening, err := s.screening.GetByRequest(requestID)
	if err != nil {
		i.getLogger(requestID, "getScreeningDetails", nil).WithError(err).Error("ошибка получения проверки HR")
		return hiringapimodels.HRScreeningView{}, errors.New("ошибка получения проверки HR")
	}
	if screening == nil {
		return hiringapimodels.HRScreeningView{}, apperrors.NotFound("проверка HR по заявке не найдена")
	}
	return hiringapimodels.HRScreeningConvert(*screening), nil
}
