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
)

func resumeFolder(requestID string) string {
	return fmt.Sprintf("requests/%v/resumes", requestID)
}

func (i impl) UploadResume(ctx context.Context, actor models.Actor, requestID string, data hiringapimodels.ResumeUploadData) (result hiringapimodels.ResumeView, err error) {
	defer metrics.ObserveTransition(OpUploadResume, &err)
	logger := i.getLogger(requestID, OpUploadResume, &actor).WithField("file_name", data.File.FileName)
	if err = validate(data); err != nil {
		return result, err
	}
	var objectKey string
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpUploadResume, models.RSJobPosted); err != nil {
			return err
		}
		objectKey, err = i.fileStorage.Upload(ctx, resumeFolder(requestID), data.File.FileName, data.File.MimeType, data.File.Body)
		if err != nil {
			return err
		}
		if err = i.holdStatus(s, rec, models.RSJobPosted); err != nil {
			return err
		}
		resume := dbmodels.CandidateResume{
			BaseRequestModel: dbmodels.BaseRequestModel{RequestID: requestID},
			UploadedByID:     actor.ID,
			UploadedByName:   actor.GetName(),
			FileName:         data.File.FileName,
			FileURL:          objectKey,
			FileSize:         data.File.Size(),
			MimeType:         data.File.MimeType,
			CandidateName:    data.CandidateName,
			Notes:            data.Notes,
		}
		resume.ID, err = s.resume.Create(resume)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения резюме")
		}
		err = i.appendActivity(s, actor, rec, activityData{
			operation:  OpUploadResume,
			actType:    models.ActivityAttachment,
			message:    fmt.Sprintf("Загружено резюме кандидата %v: %v", data.CandidateName, data.File.FileName),
			fromStatus: rec.Status,
			entityID:   resume.ID,
		})
		if err != nil {
			return err
		}
		stored, err := s.resume.GetByID(requestID, resume.ID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения резюме")
		}
		if stored != nil {
			resume = *stored
		}
		result = hiringapimodels.ResumeConvert(resume)
		return nil
	})
	if err != nil {
		i.removeUploaded(ctx, logger, objectKey)
	}
	logResult(logger, err, "резюме кандидата загружено")
	return result, err
}

func (i impl) DeleteResume(ctx context.Context, actor models.Actor, requestID, resumeID string) (err error) {
	defer metrics.ObserveTransition(OpDeleteResume, &err)
	logger := i.getLogger(requestID, OpDeleteResume, &actor).WithField("resume_id", resumeID)
	var objectKey string
	err = i.inTx(func(s stores) error {
		rec, err := i.getRequest(s, requestID)
		if err != nil {
			return err
		}
		if err = checkStatus(rec, OpDeleteResume, models.RSJobPosted); err != nil {
			return err
		}
		resume, err := s.resume.GetByID(requestID, resumeID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения резюме")
		}
		if resume == nil {
			return apperrors.NotFound("резюме не найдено")
		}
		if err = i.holdStatus(s, rec, models.RSJobPosted); err != nil {
			return err
		}
		if err = s.resume.Delete(requestID, resumeID); err != nil {
			return errors.Wrap(err, "ошибка удаления резюме")
		}
		objectKey = resume.FileURL
		return i.appendActivity(s, actor, rec, activityData{
			operation:  OpDeleteResume,
			actType:    models.ActivityAttachment,
			message:    fmt.Sprintf("Удалено резюме кандидата %v: %v", resume.CandidateName, resume.FileName),
			fromStatus: rec.Status,
			entityID:   resume.ID,
		})
	})
	logResult(logger, err, "резюме кандидата удалено")
	if err != nil {
		return err
	}
	// файл удаляется после фиксации транзакции, ошибка хранилища не откатывает удаление записи
	if err := i.fileStorage.Delete(ctx, objectKey); err != nil {
		logger.WithError(err).Warn("не удалось удалить файл резюме из хранилища")
	}
	return nil
}

func (i impl) ListResumes(requestID string) ([]hiringapimodels.ResumeView, error) {
	s := i.readStores()
	if _, err := i.getRequest(s, requestID); err != nil {
		return nil, err
	}
	list, err := s.resume.List(requestID)
	if err != nil {
		i.getLogger(requestID, "listResumes", nil).WithError(err).Error("ошибка получения списка резюме")
		return nil, errors.New("ошибка получения списка резюме")
	}
	result := make([]hiringapimodels.ResumeView, 0, len(list))
	for _, rec := range list {
		result = append(result, hiringapimodels.ResumeConvert(rec))
	}
	return result, nil
}

func (i impl) DownloadResume(ctx context.Context, requestID, resumeID string) (hiringapimodels.DownloadFile, error) {
	s := i.readStores()
	logger := i.getLogger(requestID, "downloadResume", nil).WithField("resume_id", resumeID)
	if _, err := i.getRequest(s, requestID); err != nil {
		return hiringapimodels.DownloadFile{}, err
	}
	resume, err := s.resume.GetByID(requestID, resumeID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения резюме")
		return hiringapimodels.DownloadFile{}, errors.New("ошибка получения резюме")
	}
	if resume == nil {
		return hiringapimodels.DownloadFile{}, apperrors.NotFound("резюме не найдено")
	}
	body, err := i.fileStorage.Get(ctx, resume.FileURL)
	if err != nil {
		logger.WithError(err).Error("ошибка получения файла резюме")
		return hiringapimodels.DownloadFile{}, errors.New("ошибка получения файла резюме")
	}
	return hiringapimodels.DownloadFile{
		FileName: resume.FileName,
		MimeType: resume.MimeType,
		Body:     body,
	}, nil
}
