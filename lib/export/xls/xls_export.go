package xlsexport

import (
	"bytes"

	"helpdesk-backend/db"
	requestactivitystore "helpdesk-backend/lib/request-activity/store"
	requeststore "helpdesk-backend/lib/request/store"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	dbmodels "helpdesk-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Provider interface {
	// Activities выгрузка ленты активности заявки, включая внутренние заметки
	Activities(requestID string) (*bytes.Buffer, error)
	ExportActivityList(list []dbmodels.RequestActivity) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		requestStore:  requeststore.NewInstance(DB),
		activityStore: requestactivitystore.NewInstance(DB),
	}
}

type impl struct {
	requestStore  requeststore.Provider
	activityStore requestactivitystore.Provider
}

var activityHeaders = []string{"Дата", "Автор", "Роль", "Тип", "Сообщение", "Статус до", "Статус после", "Внутренняя заметка"}

func (i impl) Activities(requestID string) (*bytes.Buffer, error) {
	rec, err := i.requestStore.GetByID(requestID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil {
		return nil, apperrors.NotFound("заявка не найдена")
	}
	list, err := i.activityStore.ListAll(requestID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения ленты активности")
	}
	return i.ExportActivityList(list)
}

func (i impl) ExportActivityList(list []dbmodels.RequestActivity) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, activityHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeActivityData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, "Активность"); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	return f.WriteToBuffer()
}

func writeActivityData(f *excelize.File, sheet string, list []dbmodels.RequestActivity, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, len(activityHeaders), row+1, row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Дата"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		// "Автор"
		col++
		if err := writeColumn(f, sheet, col, row, item.AuthorName); err != nil {
			return row, err
		}

		// "Роль"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.AuthorRole)); err != nil {
			return row, err
		}

		// "Тип"
		col++
		if err := writeColumn(f, sheet, col, row, item.Type.ToHuman()); err != nil {
			return row, err
		}

		// "Сообщение"
		col++
		if err := writeColumn(f, sheet, col, row, item.Message); err != nil {
			return row, err
		}

		// "Статус до"
		col++
		if item.Metadata.FromStatus != "" {
			if err := writeColumn(f, sheet, col, row, item.Metadata.FromStatus.ToHuman()); err != nil {
				return row, err
			}
		}

		// "Статус после"
		col++
		if item.Metadata.ToStatus != "" {
			if err := writeColumn(f, sheet, col, row, item.Metadata.ToStatus.ToHuman()); err != nil {
				return row, err
			}
		}

		// "Внутренняя заметка"
		col++
		internal := "Нет"
		if item.IsInternal {
			internal = "Да"
		}
		if err := writeColumn(f, sheet, col, row, internal); err != nil {
			return row, err
		}
	}
	return row, nil
}
