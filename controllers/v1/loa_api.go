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

type loaApiController struct {
	controllers.BaseAPIController
}

func InitLoaApiRouters(app *fiber.App) {
	controller := loaApiController{}
	app.Route(":id/loa", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Get("download", controller.download)
		router.Post("upload", controller.upload)                       // загрузить оффер
		router.Post("route-for-approval", controller.routeForApproval) // на согласование менеджеру
		router.Post("manager-approve", controller.managerApprove)      // решение менеджера
		router.Post("mark-issued", controller.markIssued)              // оффер выдан кандидату
		router.Post("upload-signed", controller.uploadSigned)          // загрузить подписанный оффер
		router.Post("mark-accepted", controller.markAccepted)          // оффер принят
	})
}

// @Summary Оффер
// @Tags Оффер
// @Description Данные оффера по заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.LoaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/loa [get]
func (c *loaApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = requesthandler.Instance.CheckAccess(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	resp, err := hiringhandler.Instance.GetLOADetails(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Скачать оффер
// @Tags Оффер
// @Description Скачать файл оффера
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	signed				query 	bool							false		 "подписанный оффер"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/loa/download [get]
func (c *loaApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = requesthandler.Instance.CheckAccess(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	file, err := hiringhandler.Instance.DownloadLOA(ctx.UserContext(), id, ctx.QueryBool("signed", false))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла оффера")
	}
	return c.SendFile(ctx, file)
}

// @Summary Загрузить оффер
// @Tags Оффер
// @Description Загрузка оффера. Доступно в статусе HR_SCREENING после завершения проверки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   file				formData	file 	true 	"файл оффера"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.LoaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/loa/upload [post]
func (c *loaApiController) upload(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := c.GetFormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.UploadLOA(ctx.UserContext(), middleware.GetActor(ctx), id, file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary На согласование менеджеру
// @Tags Оффер
// @Description Перевод заявки из HR_SCREENING в LOA_PENDING_APPROVAL
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.CommentsData	false	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/loa/route-for-approval [post]
func (c *loaApiController) routeForApproval(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.CommentsData
	if err = c.OptionalBodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.RouteLOAForApproval(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки оффера на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Решение менеджера по офферу
// @Tags Оффер
// @Description Согласование оффера нанимающим менеджером. Доступно только автору заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/loa/manager-approve [post]
func (c *loaApiController) managerApprove(ctx *fiber.Ctx) error {
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

	resp, err := hiringhandler.Instance.ManagerApproveLOA(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения решения по офферу")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Оффер выдан
// @Tags Оффер
// @Description Перевод заявки из LOA_APPROVED в LOA_ISSUED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.CommentsData	false	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/loa/mark-issued [post]
func (c *loaApiController) markIssued(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.CommentsData
	if err = c.OptionalBodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.MarkLOAIssued(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки о выдаче оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Загрузить подписанный оффер
// @Tags Оффер
// @Description Загрузка подписанного кандидатом оффера. Доступно в статусе LOA_ISSUED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   file				formData	file 	true 	"файл подписанного оффера"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.LoaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/loa/upload-signed [post]
func (c *loaApiController) uploadSigned(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := c.GetFormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.UploadSignedLOA(ctx.UserContext(), middleware.GetActor(ctx), id, file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки подписанного оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Оффер принят
// @Tags Оффер
// @Description Закрытие заявки после подписания оффера кандидатом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 hiringapimodels.CommentsData	false	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.TransitionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/loa/mark-accepted [post]
func (c *loaApiController) markAccepted(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringapimodels.CommentsData
	if err = c.OptionalBodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.MarkLOAAccepted(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка закрытия заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
