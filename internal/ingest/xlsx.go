// Package ingest reads holdings workbooks, either the pull command's
// output with a header row or a raw Alma Analytics export.
package ingest

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ils-data/marc852-audit/constants"
	"github.com/ils-data/marc852-audit/internal/common"
	"github.com/ils-data/marc852-audit/internal/entity"
)

// AllowedExt checks if a file extension is in the allowed set (xlsx or xlsm).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// headerCells are first-row values that mark a workbook with a header
// row. Raw Analytics exports carry three banner rows instead.
var headerCells = map[string]struct{}{
	"Permanent Call Number": {},
	"MMS Id":                {},
	"852 MARC":              {},
	"Holdings ID":           {},
	"Institution Name":      {},
	"Suppressed":            {},
}

// ReadWorkbook loads holdings records from the first sheet of the
// workbook at path, detecting the layout from the first cell. Fields
// without a matching column stay empty.
func ReadWorkbook(path string, logger *slog.Logger) ([]entity.HoldingRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !AllowedExt(filepath.Ext(path)) {
		return nil, common.NewAppError("INGEST_ERROR",
			"unsupported file type "+filepath.Ext(path), common.ErrInvalidInput)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewAppError("INGEST_ERROR", "failed to open workbook "+path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("workbook close error", "path", path, "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.NewAppError("INGEST_ERROR", "workbook has no sheets", common.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, common.NewAppError("INGEST_ERROR", "failed to read sheet "+sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []entity.HoldingRecord
	layout := "headers"
	if _, ok := headerCells[strings.TrimSpace(cell(rows[0], 0))]; ok {
		records = readHeaderLayout(rows)
	} else {
		layout = "analytics"
		records = readAnalyticsLayout(rows)
	}

	logger.Info("ingest.read.ok", "path", path, "layout", layout, "records", len(records))
	return records, nil
}

// readHeaderLayout maps columns to fields by the exact header names the
// pull command writes.
func readHeaderLayout(rows [][]string) []entity.HoldingRecord {
	index := make(map[string]int)
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	at := func(row []string, name string) string {
		i, ok := index[name]
		if !ok {
			return ""
		}
		return cell(row, i)
	}

	records := make([]entity.HoldingRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, entity.HoldingRecord{
			PermanentCallNumber:     at(row, "Permanent Call Number"),
			PermanentCallNumberType: at(row, "Permanent Call Number Type"),
			MARC852:                 at(row, "852 MARC"),
			NormalizedCallNumber:    at(row, "Normalized Call Number"),
			InstitutionName:         at(row, "Institution Name"),
			MMSID:                   at(row, "MMS Id"),
			HoldingsID:              at(row, "Holdings ID"),
			Suppressed:              at(row, "Suppressed"),
		})
	}
	return records
}

// readAnalyticsLayout reads a raw export: three banner rows, then data
// in the export's fixed six-column order. Such exports carry no
// Holdings ID or Suppressed columns.
func readAnalyticsLayout(rows [][]string) []entity.HoldingRecord {
	if len(rows) <= 3 {
		return nil
	}

	records := make([]entity.HoldingRecord, 0, len(rows)-3)
	for _, row := range rows[3:] {
		records = append(records, entity.HoldingRecord{
			PermanentCallNumber:     cell(row, 0),
			PermanentCallNumberType: cell(row, 1),
			MARC852:                 cell(row, 2),
			NormalizedCallNumber:    cell(row, 3),
			InstitutionName:         cell(row, 4),
			MMSID:                   cell(row, 5),
		})
	}
	return records
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
