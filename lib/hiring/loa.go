package hiringhandler

import (
	"context"
	"fmt"

	"helpdesk-backend/lib/metrics"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func loaFolder(requestID string) string {
	return fmt.Sprintf("requests/%v/loa", requestID)
}

func (i impl) getLoa(s stores, requestID string) (*dbmodels.LetterOfAcceptance, error) {
	loa, err := s.loa.GetByRequest(requestID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения оффера")
	}
	return loa, nil
}

// removeUploaded удаляет файл, загруженный в рамках неуспешной операции
func (i impl) removeUploaded(ctx context.Context, logger *log.Entry, objectKey string) {
	if objectKey == "" {
		return
	}
	if err := i.fileStorage.Delete(ctx, objectKey); err != nil {
		logger.WithError(err).WithField("object_key", objectKey).Warn("не удалось удалить файл после неуспешной операции")
	}
}

// removeReplaced удаляет предыдущую версию файла после фиксации транзакции
func (i impl) removeReplaced(ctx context.Context, logger *log.Entry, prevKey, objectKey string) {
	if prevKey == "" || prevKey == objectKey {
		return
	}
	if err := i.fileStorage.Delete(ctx, prevKey); err != nil {
		logger.WithError(err).WithField("object_key", prevKey).Warn("не удалось удалить предыдущую версию файла")
	}
}

func (i impl) UploadLOA(ctx context.Context, actor models.Actor, requestID string, file hiringapimodels.UploadFile) (result hiringapimodels.LoaView, err error) {
	defer metrics.ObserveTransition(OpUploadLOA, &err)
	logger := i.getLogger(requestID, OpUploadLOA, &actor).WithField("file_name", file.FileName)
	if err = validate(file); err != nil {
		return result, err
	}
	var objectKey, prevKey string
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		allowed := []models.RequestStatus{models.RSHrScreening, models.RSLoaPendingApproval}
		if err = checkStatus(rec, OpUploadLOA, allowed...); err != nil {
			return err
		}
		screening, err := s.screening.GetByRequestForUpdate(requestID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения проверки HR")
		}
		if screening == nil || screening.OverallStatus != models.ScreeningCompleted {
			return apperrors.PreconditionFailed("загрузка оффера доступна только после успешного завершения проверки HR")
		}
		loa, err := i.getLoa(s, requestID)
		if err != nil {
			return err
		}
		if loa == nil {
			loa = &dbmodels.LetterOfAcceptance{RequestID: requestID}
		}
		objectKey, err = i.fileStorage.Upload(ctx, loaFolder(requestID), file.FileName, file.MimeType, file.Body)
		if err != nil {
			return err
		}
		if err = i.holdStatus(s, rec, allowed...); err != nil {
			return err
		}
		prevKey = loa.LoaFileURL
		// новая версия оффера требует повторного согласования
		loa.LoaFileName = file.FileName
		loa.LoaFileURL = objectKey
		loa.LoaFileSize = file.Size()
		loa.LoaMimeType = file.MimeType
		loa.UploadedByID = actor.ID
		loa.ApprovedByID = nil
		loa.ApprovedByName = ""
		loa.ApprovalDate = nil
		loa.ApprovalComments = ""
		if _, err = s.loa.Save(*loa); err != nil {
			return errors.Wrap(err, "ошибка сохранения оффера")
		}
		loa, err = i.getLoa(s, requestID)
		if err != nil {
			return err
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpUploadLOA,
			actType:    models.ActivityAttachment,
			message:    "Загружен оффер: " + file.FileName,
			fromStatus: rec.Status,
			entityID:   loa.ID,
		})
		if err != nil {
			return err
		}
		result = hiringapimodels.LoaConvert(*loa)
		return nil
	})
	if err != nil {
		i.removeUploaded(ctx, logger, objectKey)
	} else {
		i.removeReplaced(ctx, logger, prevKey, objectKey)
	}
	logResult(logger, err, "оффер загружен")
	return result, err
}

func (i impl) RouteLOAForApproval(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpRouteLOAForApproval, &err)
	logger := i.getLogger(requestID, OpRouteLOAForApproval, &actor)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		from := []models.RequestStatus{models.RSHrScreening, models.RSLoaPendingApproval}
		if err = checkStatus(rec, OpRouteLOAForApproval, from...); err != nil {
			return err
		}
		loa, err := i.getLoa(s, requestID)
		if err != nil {
			return err
		}
		if loa == nil || loa.LoaFileURL == "" {
			return apperrors.PreconditionFailed("оффер не загружен")
		}
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, models.RSLoaPendingApproval, from, nil); err != nil {
			return err
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpRouteLOAForApproval,
			actType:    models.ActivityStatusChange,
			message:    "Оффер направлен на согласование нанимающему менеджеру",
			comments:   data.Comments,
			fromStatus: fromStatus,
			entityID:   loa.ID,
		})
		if err != nil {
			return err
		}
		loaView := hiringapimodels.LoaConvert(*loa)
		result.Loa = &loaView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "оффер направлен на согласование")
	return result, err
}

func (i impl) ManagerApproveLOA(actor models.Actor, requestID string, data hiringapimodels.DecisionData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpManagerApproveLOA, &err)
	logger := i.getLogger(requestID, OpManagerApproveLOA, &actor).WithField("decision", data.Decision)
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
		if err = checkStatus(rec, OpManagerApproveLOA, models.RSLoaPendingApproval); err != nil {
			return err
		}
		loa, err := i.getLoa(s, requestID)
		if err != nil {
			return err
		}
		if loa == nil {
			return apperrors.NotFound("оффер не найден")
		}
		to := models.RSLoaApproved
		message := "Нанимающий менеджер согласовал оффер"
		updMap := map[string]interface{}{
			"approval_comments": data.Comments,
		}
		if data.Decision == models.DecisionApproved {
			approvedBy := actor.ID
			approvedAt := i.now()
			updMap["approved_by_id"] = approvedBy
			updMap["approved_by_name"] = actor.GetName()
			updMap["approval_date"] = approvedAt
			loa.ApprovedByID = &approvedBy
			loa.ApprovedByName = actor.GetName()
			loa.ApprovalDate = &approvedAt
		} else {
			to = models.RSHrScreening
			message = "Нанимающий менеджер отклонил оффер, требуется доработка"
			updMap["approved_by_id"] = nil
			updMap["approved_by_name"] = ""
			updMap["approval_date"] = nil
			loa.ApprovedByID = nil
			loa.ApprovedByName = ""
			loa.ApprovalDate = nil
		}
		loa.ApprovalComments = data.Comments
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, to, []models.RequestStatus{models.RSLoaPendingApproval}, nil); err != nil {
			return err
		}
		if err = s.loa.Update(loa.ID, updMap); err != nil {
			return errors.Wrap(err, "ошибка сохранения решения по офферу")
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpManagerApproveLOA,
			actType:    decisionActivityType(data.Decision),
			message:    message,
			comments:   data.Comments,
			fromStatus: fromStatus,
			entityID:   loa.ID,
		})
		if err != nil {
			return err
		}
		loaView := hiringapimodels.LoaConvert(*loa)
		result.Loa = &loaView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "решение по офферу сохранено")
	return result, err
}

func (i impl) MarkLOAIssued(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpMarkLOAIssued, &err)
	logger := i.getLogger(requestID, OpMarkLOAIssued, &actor)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpMarkLOAIssued, models.RSLoaApproved); err != nil {
			return err
		}
		loa, err := i.getLoa(s, requestID)
		if err != nil {
			return err
		}
		if loa == nil {
			return apperrors.NotFound("оффер не найден")
		}
		if !loa.IsApproved() {
			return apperrors.PreconditionFailed("оффер не согласован нанимающим менеджером")
		}
		issuedAt := i.now()
		fromStatus := rec.Status
		if err = i.changeStatus(s, rec, models.RSLoaIssued, []models.RequestStatus{models.RSLoaApproved}, nil); err != nil {
			return err
		}
		if err = s.loa.Update(loa.ID, map[string]interface{}{"issued_date": issuedAt}); err != nil {
			return errors.Wrap(err, "ошибка сохранения даты выдачи оффера")
		}
		loa.IssuedDate = &issuedAt
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpMarkLOAIssued,
			actType:    models.ActivityStatusChange,
			message:    "Оффер выдан кандидату",
			comments:   data.Comments,
			fromStatus: fromStatus,
			entityID:   loa.ID,
		})
		if err != nil {
			return err
		}
		loaView := hiringapimodels.LoaConvert(*loa)
		result.Loa = &loaView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "оффер выдан")
	return result, err
}

func (i impl) UploadSignedLOA(ctx context.Context, actor models.Actor, requestID string, file hiringapimodels.UploadFile) (result hiringapimodels.LoaView, err error) {
	defer metrics.ObserveTransition(OpUploadSignedLOA, &err)
	logger := i.getLogger(requestID, OpUploadSignedLOA, &actor).WithField("file_name", file.FileName)
	if err = validate(file); err != nil {
		return result, err
	}
	var objectKey, prevKey string
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpUploadSignedLOA, models.RSLoaIssued); err != nil {
			return err
		}
		loa, err := i.getLoa(s, requestID)
		if err != nil {
			return err
		}
		if loa == nil {
			return apperrors.NotFound("оффер не найден")
		}
		objectKey, err = i.fileStorage.Upload(ctx, loaFolder(requestID)+"/signed", file.FileName, file.MimeType, file.Body)
		if err != nil {
			return err
		}
		if err = i.holdStatus(s, rec, models.RSLoaIssued); err != nil {
			return err
		}
		prevKey = loa.SignedLoaFileURL
		signedAt := i.now()
		err = s.loa.Update(loa.ID, map[string]interface{}{
			"signed_loa_file_name": file.FileName,
			"signed_loa_file_url":  objectKey,
			"signed_loa_file_size": file.Size(),
			"signed_loa_mime_type": file.MimeType,
			"signed_uploaded_at":   signedAt,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения подписанного оффера")
		}
		loa.SignedLoaFileName = file.FileName
		loa.SignedLoaFileURL = objectKey
		loa.SignedLoaFileSize = file.Size()
		loa.SignedLoaMimeType = file.MimeType
		loa.SignedUploadedAt = &signedAt
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpUploadSignedLOA,
			actType:    models.ActivityAttachment,
			message:    "Загружен подписанный кандидатом оффер: " + file.FileName,
			fromStatus: rec.Status,
			entityID:   loa.ID,
		})
		if err != nil {
			return err
		}
		result = hiringapimodels.LoaConvert(*loa)
		return nil
	})
	if err != nil {
		i.removeUploaded(ctx, logger, objectKey)
	} else {
		i.removeReplaced(ctx, logger, prevKey, objectKey)
	}
	logResult(logger, err, "подписанный оффер загружен")
	return result, err
}

func (i impl) MarkLOAAccepted(actor models.Actor, requestID string, data hiringapimodels.CommentsData) (result hiringapimodels.TransitionResult, err error) {
	defer metrics.ObserveTransition(OpMarkLOAAccepted, &err)
	logger := i.getLogger(requestID, OpMarkLOAAccepted, &actor)
	if err = validate(data); err != nil {
		return result, err
	}
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpMarkLOAAccepted, models.RSLoaIssued); err != nil {
			return err
		}
		loa, err := i.getLoa(s, requestID)
		if err != nil {
			return err
		}
		if loa == nil {
			return apperrors.NotFound("оффер не найден")
		}
		if !loa.IsSigned() {
			return apperrors.PreconditionFailed("подписанный оффер не загружен")
		}
		acceptedAt := i.now()
		fromStatus := rec.Status
		err = i.changeStatus(s, rec, models.RSResolved, []models.RequestStatus{models.RSLoaIssued}, map[string]interface{}{
			"resolved_at": acceptedAt,
		})
		if err != nil {
			return err
		}
		if err = s.loa.Update(loa.ID, map[string]interface{}{"accepted_date": acceptedAt}); err != nil {
			return errors.Wrap(err, "ошибка сохранения даты принятия оффера")
		}
		loa.AcceptedDate = &acceptedAt
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpMarkLOAAccepted,
			actType:    models.ActivityStatusChange,
			message:    "Кандидат принял оффер, заявка на найм закрыта",
			comments:   data.Comments,
			fromStatus: fromStatus,
			entityID:   loa.ID,
		})
		if err != nil {
			return err
		}
		loaView := hiringapimodels.LoaConvert(*loa)
		result.Loa = &loaView
		result.Request, err = i.requestView(s, requestID)
		return err
	})
	logResult(logger, err, "оффер принят кандидатом")
	return result, err
}

func (i impl) GetLOADetails(requestID string) (hiringapimodels.LoaView, error) {
	s := i.readStores()
	if _, err := i.getRequest(s, requestID); err != nil {
		return hiringapimodels.LoaView{}, err
	}
	loa, err := i.getLoa(s, requestID)
	if err != nil {
		i.getLogger(requestID, "getLoaDetails", nil).WithError(err).Error("ошибка получения оффера")
		return hiringapimodels.LoaView{}, errors.New("ошибка получения оффера")
	}
	if loa == nil {
		return hiringapimodels.LoaView{}, apperrors.NotFound("оффер не найден")
	}
	return hiringapimodels.LoaConvert(*loa), nil
}

func (i impl) DownloadLOA(ctx context.Context, requestID string, signed bool) (hiringapimodels.DownloadFile, error) {
	s := i.readStores()
	logger := i.getLogger(requestID, "downloadLoa", nil).WithField("signed", signed)
	if _, err := i.getRequest(s, requestID); err != nil {
		return hiringapimodels.DownloadFile{}, err
	}
	loa, err := i.getLoa(s, requestID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения оффера")
		return hiringapimodels.DownloadFile{}, errors.New("ошибка получения оффера")
	}
	if loa == nil {
		return hiringapimodels.DownloadFile{}, apperrors.NotFound("оффер не найден")
	}
	result := hiringapimodels.DownloadFile{
		FileName: loa.LoaFileName,
		MimeType: loa.LoaMimeType,
	}
	objectKey := loa.LoaFileURL
	if signed {
		if !loa.IsSigned() {
			return hiringapimodels.DownloadFile{}, apperrors.NotFound("подписанный оффер не загружен")
		}
		result.FileName = loa.SignedLoaFileName
		result.MimeType = loa.SignedLoaMimeType
		objectKey = loa.SignedLoaFileURL
	}
	result.Body, err = i.fileStorage.Get(ctx, objectKey)
	if err != nil {
		logger.WithError(err).Error("ошибка получения файла оффера")
		return hiringapimodels.DownloadFile{}, errors.New("ошибка получения файла оффера")
	}
	return result, nil
}
