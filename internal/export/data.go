package export

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ils-data/marc852-audit/internal/common"
	"github.com/ils-data/marc852-audit/internal/entity"
)

// dataSheet is the single sheet name in pulled-data workbooks.
const dataSheet = "Analytics Data"

// dataColumns is the canonical column order for pulled holdings. Row 1
// of this layout is what the analysis reader keys on, so pulled
// workbooks feed straight back into analysis.
var dataColumns = []string{
	"Permanent Call Number", "Permanent Call Number Type", "852 MARC",
	"Normalized Call Number", "Institution Name", "MMS Id",
	"Holdings ID", "Suppressed",
}

// WriteDataWorkbook writes pulled holdings to a plain workbook with
// headers in row 1.
func (s *Service) WriteDataWorkbook(path string, records []entity.HoldingRecord) error {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	_ = f.SetSheetName("Sheet1", dataSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Family: "Arial", Size: 12, Bold: true}})
	dataStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Family: "Arial", Size: 12}})

	set := cellWriter(f, dataSheet)
	for i, name := range dataColumns {
		set(i+1, 1, name, headerStyle)
	}
	for i, rec := range records {
		row := i + 2
		values := []string{
			rec.PermanentCallNumber, rec.PermanentCallNumberType, rec.MARC852,
			rec.NormalizedCallNumber, rec.InstitutionName, rec.MMSID,
			rec.HoldingsID, rec.Suppressed,
		}
		for col, v := range values {
			set(col+1, row, v, dataStyle)
		}
	}

	for i, name := range dataColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(name) + 5)
		if width < 15 {
			width = 15
		}
		_ = f.SetColWidth(dataSheet, col, col, width)
	}

	if err := f.SaveAs(path); err != nil {
		return common.NewAppError("EXPORT_ERROR", "failed to write data workbook "+path, err)
	}
	s.logger.Info("export.data.ok",
		"path", path,
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
