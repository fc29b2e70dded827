package db

import (
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := Migrate(DB); err != nil {
		return err
	}
	log.Info("Миграция прошла успешно")
	return nil
}

// Migrate создает структуру таблиц процесса найма
func Migrate(DB *gorm.DB) error {
	if err := DB.AutoMigrate(&dbmodels.Request{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Request")
	}
	if err := DB.AutoMigrate(&dbmodels.Approval{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Approval")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateResume{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateResume")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewSchedule{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewSchedule")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewFeedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewFeedback")
	}
	if err := DB.AutoMigrate(&dbmodels.HRScreening{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры HRScreening")
	}
	if err := DB.AutoMigrate(&dbmodels.LetterOfAcceptance{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LetterOfAcceptance")
	}
	if err := DB.AutoMigrate(&dbmodels.RequestActivity{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RequestActivity")
	}
	return nil
}
