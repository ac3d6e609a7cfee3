package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/receiptiq/receiptiq/internal/entity"
)

// Service produces XLSX/CSV bytes for batches of extracted records.
type Service struct {
	sheetName string
	logger    *slog.Logger
}

func NewService(sheetName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sheetName == "" {
		sheetName = "Extractions"
	}
	return &Service{sheetName: sheetName, logger: logger}
}

var headers = []string{
	"Vendor",
	"Category",
	"Transaction Date",
	"Amount",
	"Currency",
	"Error",
}

// RecordsXLSX returns an XLSX workbook (as bytes) for the given records.
func (s *Service) RecordsXLSX(records []entity.ExtractedRecord) ([]byte, error) {
	f := excelize.NewFile()
	sheet := s.sheetName
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, r := range records {
		row := rowIdx + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		cells := recordCells(r)
		for col, v := range cells {
			write(col+1, v)
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // vendor
	_ = f.SetColWidth(sheet, "B", "B", 22) // category
	_ = f.SetColWidth(sheet, "C", "C", 16) // date
	_ = f.SetColWidth(sheet, "D", "E", 12) // amount, currency
	_ = f.SetColWidth(sheet, "F", "F", 40) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx", "records", len(records), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// RecordsCSV returns the same table as CSV bytes.
func (s *Service) RecordsCSV(records []entity.ExtractedRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	for _, r := range records {
		if err := w.Write(recordCells(r)); err != nil {
			return nil, fmt.Errorf("csv write: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	s.logger.Info("export.csv", "records", len(records), "bytes", buf.Len())
	return buf.Bytes(), nil
}

func recordCells(r entity.ExtractedRecord) []string {
	amount := ""
	if r.Amount != nil {
		amount = r.Amount.StringFixed(2)
	}
	return []string{
		orEmpty(r.Vendor),
		orEmpty(r.Category),
		orEmpty(r.TransactionDate),
		amount,
		r.Currency,
		r.Error,
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
