package bookings

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/bookings/models"
)

// maxSheetNameLength ограничение Excel на длину имени листа
const maxSheetNameLength = 31

var exportColumns = []string{
	"export-day",
	"export-from",
	"export-to",
	"export-room",
	"export-name",
	"export-email",
	"export-voice",
	"export-notes",
	"export-booked-at",
}

// ExportBookings собирает xlsx с бронированиями типа, один лист на тип
func (s *Service) ExportBookings(ctx context.Context, dateType, lang string) (*models.ExportResponse, error) {
	s.logger.Info("ExportBookings: date_type=%s", dateType)

	lang = i18n.Normalize(lang)
	dt, list, err := s.load(ctx, "ExportBookings", dateType, lang)
	if err != nil {
		return nil, err
	}

	buf, err := s.buildWorkbook(dt, list, lang)
	if err != nil {
		s.logger.Error("ExportBookings: failed to build workbook date_type=%s: %v", dateType, err)
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	filename := fmt.Sprintf("bookings-%s-%s.xlsx", dt.Value, s.timeProvider().In(s.location).Format("2006-01-02"))

	s.logger.Info("ExportBookings: date_type=%s, rows=%d, bytes=%d", dateType, len(list), buf.Len())
	return &models.ExportResponse{Filename: filename, Content: buf.Bytes()}, nil
}

func (s *Service) buildWorkbook(dt *domain.DateType, list []*domain.BookedSlot, lang string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(dt)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, key := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, s.translator.Translate(lang, key, nil)); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, b := range list {
		row := i + 2
		from := b.Slot.From.In(s.location)
		values := []interface{}{
			from.Format(domain.DayFormat),
			from.Format(domain.TimeFormat),
			b.Slot.To.In(s.location).Format(domain.TimeFormat),
			b.Slot.RoomNumber,
			b.Booking.PersonName,
			b.Booking.Email,
			voiceLabel(b),
			b.Booking.Notes,
			b.Booking.CreatedAt.In(s.location).Format(domain.DayFormat + " " + domain.TimeFormat),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportColumns))
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func sheetName(dt *domain.DateType) string {
	name := dt.DisplayName
	if name == "" {
		name = dt.Value
	}
	runes := []rune(name)
	if len(runes) > maxSheetNameLength {
		runes = runes[:maxSheetNameLength]
	}
	return string(runes)
}

func voiceLabel(b *domain.BookedSlot) string {
	if b.VoiceName != "" {
		return b.VoiceName
	}
	return b.Booking.Voice
}
