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

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route(":id/resumes", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.upload)
		router.Route(":resumeId", func(resumeRoute fiber.Router) {
			resumeRoute.Delete("", controller.delete)
			resumeRoute.Get("download", controller.download)
		})
	})
}

// @Summary Список резюме
// @Tags Кандидаты
// @Description Резюме кандидатов по заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]hiringapimodels.ResumeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/resumes [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = requesthandler.Instance.CheckAccess(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	list, err := hiringhandler.Instance.ListResumes(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Загрузить резюме
// @Tags Кандидаты
// @Description Загрузка резюме кандидата. Доступно в статусе JOB_POSTED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   file				formData	file 	true 	"файл резюме"
// @Param   candidateName		formData	string 	true 	"ФИО кандидата"
// @Param   notes				formData	string 	false 	"заметки"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.ResumeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/resumes [post]
func (c *candidateApiController) upload(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := c.GetFormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := hiringapimodels.ResumeUploadData{
		CandidateName: ctx.FormValue("candidateName"),
		Notes:         ctx.FormValue("notes"),
		File:          file,
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringhandler.Instance.UploadResume(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удалить резюме
// @Tags Кандидаты
// @Description Удаление резюме кандидата. Доступно в статусе JOB_POSTED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   resumeId          	path    string  				    	true         "resume ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/resumes/{resumeId} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resumeID, err := c.GetIDByKey(ctx, "resumeId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = hiringhandler.Instance.DeleteResume(ctx.UserContext(), middleware.GetActor(ctx), id, resumeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Скачать резюме
// @Tags Кандидаты
// @Description Скачать файл резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   resumeId          	path    string  				    	true         "resume ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/resumes/{resumeId}/download [get]
func (c *candidateApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resumeID, err := c.GetIDByKey(ctx, "resumeId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = requesthandler.Instance.CheckAccess(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	file, err := hiringhandler.Instance.DownloadResume(ctx.UserContext(), id, resumeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла резюме")
	}
	return c.SendFile(ctx, file)
}
