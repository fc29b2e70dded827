package controllers

import (
	"io"
	"strings"

	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/middleware"
	apimodels "helpdesk-backend/models/api"
	hiringapimodels "helpdesk-backend/models/api/hiring"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

// OptionalBodyParser разбирает тело запроса, если оно передано
func (c *BaseAPIController) OptionalBodyParser(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	return c.BodyParser(ctx, out)
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := strings.TrimSpace(ctx.Params(key))
	if id == "" {
		return "", errors.Errorf("не указан идентификатор %v", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path()).
		WithField("user_id", middleware.GetUserID(ctx))
}

// GetFormFile читает файл из multipart формы
func (c *BaseAPIController) GetFormFile(ctx *fiber.Ctx, key string) (hiringapimodels.UploadFile, error) {
	file, err := ctx.FormFile(key)
	if err != nil {
		return hiringapimodels.UploadFile{}, errors.Errorf("не передан файл %v", key)
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("ошибка при получении файла")
		return hiringapimodels.UploadFile{}, errors.New("ошибка при получении файла")
	}
	defer buffer.Close()
	body, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("ошибка при чтении файла")
		return hiringapimodels.UploadFile{}, errors.New("ошибка при чтении файла")
	}
	return hiringapimodels.UploadFile{
		FileName: file.Filename,
		MimeType: file.Header.Get(fiber.HeaderContentType),
		Body:     body,
	}, nil
}

// SendError ошибки процесса отдаются с сообщением, прочие логируются и заменяются на msg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	kind := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case apperrors.KindForbidden:
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case apperrors.KindInvalidState, apperrors.KindPreconditionFailed, apperrors.KindValidation:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

func (c *BaseAPIController) SendFile(ctx *fiber.Ctx, file hiringapimodels.DownloadFile) error {
	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	ctx.Set(fiber.HeaderContentType, mimeType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return ctx.Send(file.Body)
}
