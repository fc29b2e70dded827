package hiringhandler

import (
	"helpdesk-backend/lib/metrics"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
)

func (i impl) RouteToCEO(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpRouteToCEO, &err)
	logger := i.getLogger(requestID, OpRouteToCEO, &actor)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		from := []models.RequestStatus{models.RSSubmitted, models.RSInReview}
		if err = checkStatus(rec, OpRouteToCEO, from...); err != nil {
			return err
		}
		pending, err := s.approval.GetPending(requestID, models.ApproverTypeCeo)
		if err != nil {
			return errors.Wrap(err, "ошибка получения согласования")
		}
		if pending != nil {
			return apperrors.InvalidState("заявка уже ожидает согласования CEO")
		}
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, models.RSPendingCeoApproval, from, nil); err != nil {
			return err
		}
		approval := dbmodels.Approval{
			BaseRequestModel: dbmodels.BaseRequestModel{RequestID: requestID},
			ApproverType:     models.ApproverTypeCeo,
			Status:           models.AStatusPending,
			Comments:         data.Comments,
		}
		approval.ID, err = s.approval.Create(approval)
		if err != nil {
			return errors.Wrap(err, "ошибка создания согласования")
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpRouteToCEO,
			actType:    models.ActivityStatusChange,
			message:    "Заявка направлена на согласование CEO",
			comments:   data.Comments,
			fromStatus: fromStatus,
			entityID:   approval.ID,
		})
		if err != nil {
			return err
		}
		approvalView := hiringapimodels.ApprovalConvert(approval)
		result.Approval = &approvalView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "заявка направлена на согласование CEO")
	return result, err
}

func (i impl) CeoDecision(actor models.Actor, requestID string, data hiringapimodels.DecisionData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpCeoDecision, &err)
	logger := i.getLogger(requestID, OpCeoDecision, &actor).WithField("decision", data.Decision)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpCeoDecision, models.RSPendingCeoApproval); err != nil {
			return err
		}
		approval, err := s.approval.GetPending(requestID, models.ApproverTypeCeo)
		if err != nil {
			return errors.Wrap(err, "ошибка получения согласования")
		}
		if approval == nil {
			return apperrors.NotFound("ожидающее согласование CEO не найдено")
		}
		to := models.RSCeoApproved
		message := "CEO согласовал заявку на найм"
		if data.Decision == models.DecisionRejected {
			to = models.RSCeoRejected
			message = "CEO отклонил заявку на найм"
		}
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, to, []models.RequestStatus{models.RSPendingCeoApproval}, nil); err != nil {
			return err
		}
		if err = i.resolveApproval(s, actor, approval, data.Decision, data.Comments); err != nil {
			return err
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpCeoDecision,
			actType:    decisionActivityType(data.Decision),
			message:    message,
			comments:   data.Comments,
			fromStatus: fromStatus,
			entityID:   approval.ID,
		})
		if err != nil {
			return err
		}
		approvalView := hiringapimodels.ApprovalConvert(*approval)
		result.Approval = &approvalView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "решение CEO по заявке сохранено")
	return result, err
}

func (i impl) MarkJobPosted(actor models.Actor, requestID string, data hiringapimodels.JobPostedData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpMarkJobPosted, &err)
	logger := i.getLogger(requestID, OpMarkJobPosted, &actor)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpMarkJobPosted, models.RSCeoApproved); err != nil {
			return err
		}
		postedAt := i.now()
		fields := rec.CustomFields
		fields.JobPostingURL = data.JobPostingURL
		fields.JobPostingNotes = data.Notes
		fields.JobPostedAt = &postedAt
		fromStatus := rec.Status
		err = i.changeStatus(s, rec, models.RSJobPosted, []models.RequestStatus{models.RSCeoApproved}, map[string]interface{}{
			"custom_fields": fields,
		})
		if err != nil {
			return err
		}
		message := "Вакансия опубликована"
		if data.JobPostingURL != "" {
			message = "Вакансия опубликована: " + data.JobPostingURL
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpMarkJobPosted,
			actType:    models.ActivityStatusChange,
			message:    message,
			comments:   data.Notes,
			fromStatus: fromStatus,
		})
		if err != nil {
			return err
		}
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "вакансия отмечена как опубликованная")
	return result, err
}

func (i impl) RouteToManager(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpRouteToManager, &err)
	logger := i.getLogger(requestID, OpRouteToManager, &actor)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpRouteToManager, models.RSJobPosted); err != nil {
			return err
		}
		resumeCount, err := s.resume.Count(requestID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения количества резюме")
		}
		if resumeCount == 0 {
			return apperrors.PreconditionFailed("для передачи менеджеру необходимо загрузить хотя бы одно резюме")
		}
		pending, err := s.approval.GetPending(requestID, models.ApproverTypeHiringManager)
		if err != nil {
			return errors.Wrap(err, "ошибка получения согласования")
		}
		if pending != nil {
			return apperrors.InvalidState("заявка уже ожидает решения нанимающего менеджера")
		}
		fromStatus := rec.Status
		managerID := rec.RequesterID
		err = i.changeStatus(s, rec, models.RSPendingManagerReview, []models.RequestStatus{models.RSJobPosted}, map[string]interface{}{
			"assigned_to_id": managerID,
		})
		if err != nil {
			return err
		}
		approval := dbmodels.Approval{
			BaseRequestModel: dbmodels.BaseRequestModel{RequestID: requestID},
			ApproverType:     models.ApproverTypeHiringManager,
			ApproverID:       &managerID,
			ApproverName:     rec.RequesterName,
			Status:           models.AStatusPending,
			Comments:         data.Comments,
		}
		approval.ID, err = s.approval.Create(approval)
		if err != nil {
			return errors.Wrap(err, "ошибка создания согласования")
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpRouteToManager,
			actType:    models.ActivityAssignment,
			message:    "Резюме кандидатов переданы нанимающему менеджеру на рассмотрение",
			comments:   data.Comments,
			fromStatus: fromStatus,
			entityID:   approval.ID,
		})
		if err != nil {
			return err
		}
		approvalView := hiringapimodels.ApprovalConvert(approval)
		result.Approval = &approvalView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "заявка передана нанимающему менеджеру")
	return result, err
}

func (i impl) ManagerDecision(actor models.Actor, requestID string, data hiringapimodels.ManagerDecisionData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpManagerDecision, &err)
	logger := i.getLogger(requestID, OpManagerDecision, &actor).WithField("decision", data.Decision)
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
		if err = checkStatus(rec, OpManagerDecision, models.RSPendingManagerReview); err != nil {
			return err
		}
		approval, err := s.approval.GetPending(requestID, models.ApproverTypeHiringManager)
		if err != nil {
			return errors.Wrap(err, "ошибка получения согласования")
		}
		if approval == nil {
			return apperrors.NotFound("ожидающее решение нанимающего менеджера не найдено")
		}
		to := models.RSInReview
		message := "Нанимающий менеджер отклонил кандидатов, заявка возвращена на рассмотрение"
		var extra map[string]interface{}
		if data.Decision == models.DecisionApproved {
			to = models.RSManagerApproved
			message = "Нанимающий менеджер одобрил кандидатов"
			if data.SelectedCandidateID != "" {
				resume, err := s.resume.GetByID(requestID, data.SelectedCandidateID)
				if err != nil {
					return errors.Wrap(err, "ошибка получения резюме")
				}
				if resume == nil {
					return apperrors.NotFound("резюме выбранного кандидата не найдено")
				}
				fields := rec.CustomFields
				fields.SelectedCandidateID = resume.ID
				fields.SelectedCandidateName = resume.CandidateName
				extra = map[string]interface{}{
					"custom_fields": fields,
				}
				message = "Нанимающий менеджер одобрил кандидата " + resume.CandidateName
			}
		}
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, to, []models.RequestStatus{models.RSPendingManagerReview}, extra); err != nil {
			return err
		}
		if err = i.resolveApproval(s, actor, approval, data.Decision, data.Comments); err != nil {
			return err
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpManagerDecision,
			actType:    decisionActivityType(data.Decision),
			message:    message,
			comments:   data.Comments,
			fromStatus: fromStatus,
			entityID:   approval.ID,
		})
		if err != nil {
			return err
		}
		approvalView := hiringapimodels.ApprovalConvert(*approval)
		result.Approval = &approvalView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "решение нанимающего менеджера сохранено")
	return result, err
}

func (i impl) ListApprovals(requestID string) ([]hiringapimodels.ApprovalView, error) {
	s := i.readStores()
	if _, err := i.getRequest(s, requestID); err != nil {
		return nil, err
	}
	list, err := s.approval.List(requestID)
	if err != nil {
		i.getLogger(requestID, "listApprovals", nil).WithError(err).Error("ошибка получения списка согласований")
		return nil, errors.New("ошибка получения списка согласований")
	}
	result := make([]hiringapimodels.ApprovalView, 0, len(list))
	for _, rec := range list {
		result = append(result, hiringapimodels.ApprovalConvert(rec))
	}
	return result, nil
}

// resolveApproval закрывает ожидающее согласование, approval обновляется на месте
func (i impl) resolveApproval(s stores, actor models.Actor, approval *dbmodels.Approval, decision models.Decision, comments string) error {
	decidedAt := i.now()
	approverID := actor.ID
	status := decision.ToApprovalStatus()
	resolved, err := s.approval.Resolve(approval.ID, map[string]interface{}{
		"status":        status,
		"approver_id":   approverID,
		"approver_name": actor.GetName(),
		"comments":      comments,
		"decided_at":    decidedAt,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения решения по согласованию")
	}
	if !resolved {
		return apperrors.InvalidState("решение по согласованию уже принято")
	}
	approval.Status = status
	approval.ApproverID = &approverID
	approval.ApproverName = actor.GetName()
	approval.Comments = comments
	approval.DecidedAt = &decidedAt
	return nil
}
