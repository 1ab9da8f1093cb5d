package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andikahakim/royba/internal/i18n"
	"github.com/andikahakim/royba/internal/models"
	"github.com/xuri/excelize/v2"
)

var ErrInvalidMonthKey = errors.New("invalid month key")

const monthKeyLayout = "2006-01"

var exportHeaderKeys = []string{
	"export.header.date",
	"export.header.employee",
	"export.header.check_in",
	"export.header.check_out",
	"export.header.status",
	"export.header.shift",
}

type ExportAttendanceReader interface {
	ListAttendance() ([]models.Attendance, error)
}

// ExportService projects one month of attendance into a spreadsheet
// workbook with localized headers. Pure read and transform; nothing is
// persisted.
type ExportService struct {
	records    ExportAttendanceReader
	translator *i18n.Manager
}

func NewExportService(records ExportAttendanceReader, translator *i18n.Manager) *ExportService {
	return &ExportService{records: records, translator: translator}
}

// MonthRecords returns the attendance records whose date falls inside
// the given "2006-01" month, in stored order.
func (service *ExportService) MonthRecords(monthKey string) ([]models.Attendance, error) {
	if _, err := time.Parse(monthKeyLayout, monthKey); err != nil {
		return nil, ErrInvalidMonthKey
	}

	records, err := service.records.ListAttendance()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Attendance, 0, len(records))
	for _, record := range records {
		if strings.HasPrefix(record.Date, monthKey+"-") {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (service *ExportService) BuildWorkbook(monthKey string, language string) (*excelize.File, error) {
	records, err := service.MonthRecords(monthKey)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	sheet := service.translator.T(language, "export.sheet")
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for column, key := range exportHeaderKeys {
		cell, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, service.translator.T(language, key)); err != nil {
			return nil, err
		}
	}

	for row, record := range records {
		values := []any{
			record.Date,
			record.UserID,
			orDash(record.CheckIn),
			orDash(record.CheckOut),
			service.translator.T(language, "status."+record.Status),
			record.Shift,
		}
		for column, value := range values {
			cell, err := excelize.CoordinatesToCellName(column+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}

func (service *ExportService) WriteMonthly(writer io.Writer, monthKey string, language string) error {
	file, err := service.BuildWorkbook(monthKey, language)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteTo(writer); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Filename names the exported workbook after the month it covers.
func (service *ExportService) Filename(monthKey string) string {
	return "absensi-" + monthKey + ".xlsx"
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
