package apiv1

import (
	"helpdesk-backend/controllers"
	hiringhandler "helpdesk-backend/lib/hiring"
	requesthandler "helpdesk-backend/lib/request"
	"helpdesk-backend/middleware"
	apimodels "helpdesk-backend/models/api"
	hiringapimodels "helpdesk-backend/models/api/hiring"

	"github.com/gofiber/fiber/v2"
)

type hiringApiController struct {
	controllers.BaseAPIController
}

func InitHiringApiRouters(app *fiber.App) {
	controller := hiringApiController{}
	app.Route(":id", func(idRoute fiber.Router) {
		idRoute.Post("route-to-ceo", controller.routeToCEO)              // на согласование CEO
		idRoute.Post("ceo-decision", controller.ceoDecision)             // решение CEO
		idRoute.Post("mark-job-posted", controller.markJobPosted)        // вакансия опубликована
		idRoute.Post("route-to-manager", controller.routeToManager)      // кандидаты на рассмотрение менеджеру
		idRoute.Post("manager-decision", controller.managerDecision)     // решение менеджера по кандидатам
		idRoute.Post("schedule-interview", controller.scheduleInterview) // назначить интервью
		idRoute.Post("interview-feedback", controller.interviewFeedback) // отзыв по интервью
		idRoute.Get("interview", controller.interview)
		idRoute.Post("start-screening", controller.startScreening) // начать проверку HR
		idRoute.Put("screening", controller.updateScreening)
		idRoute.Get("screening", controller.screening)
	})
}

// @Summary На согласование CEO
// @Tags Процесс найма
// @Description Перевод заявки из SUBMITTED или IN_REVIEW в PENDING_CEO_APPROVAL
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.CommentsData	false	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/route-to-ceo [post]
func (c *hiringApiController) routeToCEO(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.CommentsData
	if err = c.OptionalBodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.RouteToCEO(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки заявки на согласование CEO")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Решение CEO
// @Tags Процесс найма
// @Description Согласование или отклонение заявки CEO
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/ceo-decision [post]
func (c *hiringApiController) ceoDecision(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.CeoDecision(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения решения CEO")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансия опубликована
// @Tags Процесс найма
// @Description Перевод заявки из CEO_APPROVED в JOB_POSTED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.JobPostedData	false	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/mark-job-posted [post]
func (c *hiringApiController) markJobPosted(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.JobPostedData
	if err = c.OptionalBodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.MarkJobPosted(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка перевода заявки в статус публикации вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Кандидаты на рассмотрение менеджеру
// @Tags Процесс найма
// @Description Перевод заявки из JOB_POSTED в PENDING_MANAGER_REVIEW. Требуется хотя бы одно резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.CommentsData	false	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/route-to-manager [post]
func (c *hiringApiController) routeToManager(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.CommentsData
	if err = c.OptionalBodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.RouteToManager(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки кандидатов на рассмотрение менеджеру")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Решение менеджера по кандидатам
// @Tags Процесс найма
// @Description Выбор кандидата нанимающим менеджером. Доступно только автору заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.ManagerDecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/manager-decision [post]
func (c *hiringApiController) managerDecision(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.ManagerDecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.ManagerDecision(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения решения менеджера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Назначить интервью
// @Tags Процесс найма
// @Description Перевод заявки из MANAGER_APPROVED в INTERVIEW_SCHEDULED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.ScheduleInterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/schedule-interview [post]
func (c *hiringApiController) scheduleInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.ScheduleInterviewData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.ScheduleInterview(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отзыв по интервью
// @Tags Процесс найма
// @Description Отзыв нанимающего менеджера по интервью. Доступно только автору заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.InterviewFeedbackData	true	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/interview-feedback [post]
func (c *hiringApiController) interviewFeedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.InterviewFeedbackData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.SubmitInterviewFeedback(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения отзыва по интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Интервью
// @Tags Процесс найма
// @Description Расписание интервью и отзыв по нему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.InterviewDetailsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/interview [get]
func (c *hiringApiController) interview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = requesthandler.Instance.CheckAccess(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	resp, err := hiringhandler.Instance.GetInterviewDetails(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Начать проверку HR
// @Tags Процесс найма
// @Description Перевод заявки из INTERVIEW_FEEDBACK_PENDING в HR_SCREENING. Требуется положительный отзыв по интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.StartScreeningData	false	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/start-screening [post]
func (c *hiringApiController) startScreening(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.StartScreeningData
	if err = c.OptionalBodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.StartHRScreening(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запуска проверки HR")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

type screeningResponse struct {
	HRScreening hiringapimodels.HRScreeningView `json:"hrScreening"`
}

// @Summary Обновить проверку HR
// @Tags Процесс найма
// @Description Обновление статусов проверки биографии и рекомендаций
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.UpdateScreeningData	true	"request body"
// @Success 200 {object} apimodels.Response{data=screeningResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/screening [put]
func (c *hiringApiController) updateScreening(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.UpdateScreeningData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.UpdateScreeningStatus(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления проверки HR")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(screeningResponse{HRScreening: resp}))
}

// @Summary Проверка HR
// @Tags Процесс найма
// @Description Состояние проверки HR
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.HRScreeningView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/screening [get]
func (c *hiringApiController) screening(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = requesthandler.Instance.CheckAccess(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	resp, err := hiringhandler.Instance.GetScreeningDetails(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения проверки HR")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
