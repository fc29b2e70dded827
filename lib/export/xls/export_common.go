package xlsexport

import "github.com/xuri/excelize/v2"

const (
	fontFamily   = "Times New Roman"
	columnWidth  = 25
	messageWidth = 60
	// messageColumn колонка "Сообщение" шире остальных и переносит текст
	messageColumn = 5
)

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func cellStyle(f *excelize.File, horizontal string, bold, wrap bool) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   "center",
			WrapText:   wrap,
		},
		Font: &excelize.Font{
			Bold:   bold,
			Family: fontFamily,
			Size:   11,
		},
	})
}

func setRangeStyle(f *excelize.File, sheet string, style, colFrom, rowFrom, colTo, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := cellStyle(f, "center", true, false)
	if err != nil {
		return row, err
	}
	if err = setRangeStyle(f, sheet, style, 1, row, len(headers), row); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return row, err
	}
	if messageColumn <= len(headers) {
		name, err := excelize.ColumnNumberToName(messageColumn)
		if err != nil {
			return row, err
		}
		if err = f.SetColWidth(sheet, name, name, messageWidth); err != nil {
			return row, err
		}
	}
	for idx, value := range headers {
		if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}

// applyDataCellStyle строки данных: выравнивание влево, перенос текста в колонке сообщения
func applyDataCellStyle(f *excelize.File, sheet string, colCount, rowFrom, rowTo int) error {
	style, err := cellStyle(f, "left", false, false)
	if err != nil {
		return err
	}
	if err = setRangeStyle(f, sheet, style, 1, rowFrom, colCount, rowTo); err != nil {
		return err
	}
	if messageColumn > colCount {
		return nil
	}
	wrapStyle, err := cellStyle(f, "left", false, true)
	if err != nil {
		return err
	}
	return setRangeStyle(f, sheet, wrapStyle, messageColumn, rowFrom, messageColumn, rowTo)
}
