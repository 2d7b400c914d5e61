package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ils-data/marc852-audit/constants"
	"github.com/ils-data/marc852-audit/internal/common"
	"github.com/ils-data/marc852-audit/internal/entity"
)

// Sheet names in the analysis workbook.
const (
	sheetAnalysis    = "852 Field Analysis"
	sheetStatistics  = "Statistics"
	sheetInstitution = "By Institution"
)

// analysisHeaders is the column order of the main sheet. The ID columns
// (MMS Id, Holdings ID) are written as text to keep Excel from mangling
// them into scientific notation.
var analysisHeaders = []string{
	"Permanent Call Number", "Extracted Call Number", "Permanent Call Number Type",
	"852 MARC", "Normalized Call Number", "Institution Name", "MMS Id",
	"Holdings ID", "Suppressed",
	"Current Indicator", "Suggested Indicator", "Change Needed",
	"Classification Type", "Confidence", "Subfield Changes", "Notes",
}

// Service writes workbooks for analysis results and pulled data.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteReport writes the three-sheet analysis workbook to path.
func (s *Service) WriteReport(path string, records []entity.AnalyzedRecord) error {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	st := buildStyles(f)
	_ = f.SetSheetName("Sheet1", sheetAnalysis)
	_, _ = f.NewSheet(sheetStatistics)
	_, _ = f.NewSheet(sheetInstitution)

	s.writeAnalysisSheet(f, st, records)
	s.writeStatisticsSheet(f, st, records)
	s.writeInstitutionSheet(f, st, records)

	activeIndex, _ := f.GetSheetIndex(sheetAnalysis)
	f.SetActiveSheet(activeIndex)

	if err := f.SaveAs(path); err != nil {
		return common.NewAppError("EXPORT_ERROR", "failed to write report "+path, err)
	}
	s.logger.Info("export.report.ok",
		"path", path,
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// OutputName derives the report filename from the input workbook name,
// keeping the input's directory: the first "_data" in the stem becomes
// "_analyzed" (appended when the stem has none), plus a timestamp.
func OutputName(inputPath string, now time.Time) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if strings.Contains(stem, "_data") {
		stem = strings.Replace(stem, "_data", "_analyzed", 1)
	} else {
		stem += "_analyzed"
	}
	name := fmt.Sprintf("%s_%s.xlsx", stem, now.Format("20060102_150405"))
	return filepath.Join(filepath.Dir(inputPath), name)
}

func (s *Service) writeAnalysisSheet(f *excelize.File, st reportStyles, records []entity.AnalyzedRecord) {
	set := cellWriter(f, sheetAnalysis)

	for i, h := range analysisHeaders {
		set(i+1, 1, h, st.header)
	}

	for i, rec := range records {
		row := i + 2
		values := []string{
			rec.PermanentCallNumber, rec.ExtractedCallNumber, rec.PermanentCallNumberType,
			rec.MARC852, rec.NormalizedCallNumber, rec.InstitutionName, rec.MMSID,
			rec.HoldingsID, rec.Suppressed,
			rec.CurrentIndicator, rec.SuggestedIndicator, rec.ChangeNeeded,
			rec.ClassificationType, rec.Confidence, rec.SubfieldChanges, rec.Notes,
		}
		for col, v := range values {
			set(col+1, row, v, analysisCellStyle(st, col+1, v))
		}
	}

	_ = f.SetColWidth(sheetAnalysis, "A", "A", 35)
	_ = f.SetColWidth(sheetAnalysis, "B", "B", 30)
	_ = f.SetColWidth(sheetAnalysis, "C", "C", 25)
	_ = f.SetColWidth(sheetAnalysis, "D", "D", 60)
	_ = f.SetColWidth(sheetAnalysis, "E", "E", 45)
	_ = f.SetColWidth(sheetAnalysis, "F", "F", 30)
	_ = f.SetColWidth(sheetAnalysis, "G", "H", 20)
	_ = f.SetColWidth(sheetAnalysis, "I", "I", 15)
	_ = f.SetColWidth(sheetAnalysis, "J", "K", 18)
	_ = f.SetColWidth(sheetAnalysis, "L", "L", 15)
	_ = f.SetColWidth(sheetAnalysis, "M", "M", 28)
	_ = f.SetColWidth(sheetAnalysis, "N", "N", 12)
	_ = f.SetColWidth(sheetAnalysis, "O", "O", 40)
	_ = f.SetColWidth(sheetAnalysis, "P", "P", 55)

	_ = f.SetPanes(sheetAnalysis, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	_ = f.AutoFilter(sheetAnalysis, fmt.Sprintf("A1:P%d", len(records)+1), nil)
}

// analysisCellStyle picks the style for one data cell: text format for
// the ID columns, traffic-light fills for Change Needed and Confidence,
// and a loud highlight for rows that are not call numbers at all.
func analysisCellStyle(st reportStyles, col int, value string) int {
	switch col {
	case 7, 8:
		return st.dataText
	case 12:
		switch value {
		case "Yes":
			return st.red
		case "No":
			return st.green
		case "Review":
			return st.yellow
		}
	case 13:
		if value == string(constants.SchemeNotCN) {
			return st.notCallNumber
		}
	case 14:
		return confidenceStyle(st, value)
	}
	return st.data
}

func (s *Service) writeStatisticsSheet(f *excelize.File, st reportStyles, records []entity.AnalyzedRecord) {
	set := cellWriter(f, sheetStatistics)
	sum := Summarize(records)

	row := 1
	set(1, row, "852 First Indicator Analysis - Statistics", st.title)
	row += 2

	set(1, row, "Overall Summary", st.bold)
	row++
	set(1, row, "Total Records:", st.plain)
	set(2, row, sum.Total, st.plain)
	row++
	set(1, row, "Records with Extracted Call Number:", st.plain)
	set(2, row, sum.WithExtracted, st.plain)
	row += 2

	set(1, row, "By Classification Type", st.bold)
	row++
	for i, h := range []string{"Suggested Indicator", "Classification Type", "Count", "Percentage"} {
		set(i+1, row, h, st.tableHeader)
	}
	row++
	for _, entry := range sum.ByIndicatorType {
		set(1, row, entry.Indicator, st.data)
		set(2, row, entry.Type, st.data)
		set(3, row, entry.Count, st.data)
		set(4, row, entry.Percentage/100, st.percent)
		row++
	}
	row++

	set(1, row, "By Confidence Level", st.bold)
	row++
	for i, h := range []string{"Confidence", "Count", "Percentage"} {
		set(i+1, row, h, st.tableHeader)
	}
	row++
	for _, entry := range sum.ByConfidence {
		set(1, row, entry.Confidence, confidenceStyle(st, entry.Confidence))
		set(2, row, entry.Count, st.data)
		set(3, row, entry.Percentage/100, st.percent)
		row++
	}
	row++

	set(1, row, "By Institution", st.bold)
	row++
	for i, h := range []string{"Institution", "Count"} {
		set(i+1, row, h, st.tableHeader)
	}
	row++
	for _, entry := range sum.ByInstitution {
		set(1, row, entry.Institution, st.data)
		set(2, row, entry.Count, st.data)
		row++
	}

	_ = f.SetColWidth(sheetStatistics, "A", "A", 50)
	_ = f.SetColWidth(sheetStatistics, "B", "B", 30)
	_ = f.SetColWidth(sheetStatistics, "C", "C", 15)
	_ = f.SetColWidth(sheetStatistics, "D", "D", 12)
}

func (s *Service) writeInstitutionSheet(f *excelize.File, st reportStyles, records []entity.AnalyzedRecord) {
	set := cellWriter(f, sheetInstitution)
	ct := buildCrosstab(records)

	set(1, 1, "Classification by Institution", st.title)

	row := 3
	set(1, row, "Count by Institution and Suggested Indicator", st.bold)
	row++
	set(1, row, "Institution", st.tableHeader)
	for i, ind := range ct.indicators {
		set(i+2, row, ind, st.tableHeader)
	}
	row++
	for i, inst := range ct.institutions {
		set(1, row, inst, st.data)
		for j := range ct.indicators {
			set(j+2, row, ct.counts[i][j], st.data)
		}
		row++
	}

	row += 2
	set(1, row, "Sample 'Other Scheme' and 'Unknown' Entries by Institution", st.bold)
	row++
	set(1, row, "(These may be local schemes that vary by campus)", st.italic)
	row += 2

	for _, group := range sampleOtherUnknown(records, 10, 8) {
		set(1, row, group.institution, st.bold)
		row++
		for _, sample := range group.samples {
			set(2, row, truncate(sample, 60), st.plain)
			row++
		}
		row++
	}

	_ = f.SetColWidth(sheetInstitution, "A", "A", 50)
	_ = f.SetColWidth(sheetInstitution, "B", "B", 40)
	_ = f.SetColWidth(sheetInstitution, "C", "O", 10)
}

// cellWriter returns a closure that writes one styled cell on sheet.
func cellWriter(f *excelize.File, sheet string) func(col, row int, v any, style int) {
	return func(col, row int, v any, style int) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
		if style != 0 {
			_ = f.SetCellStyle(sheet, cell, cell, style)
		}
	}
}

type reportStyles struct {
	title         int
	bold          int
	italic        int
	plain         int
	header        int
	tableHeader   int
	data          int
	dataText      int
	percent       int
	green         int
	yellow        int
	red           int
	notCallNumber int
}

func buildStyles(f *excelize.File) reportStyles {
	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	solid := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}
	arial := func(size float64, bold bool) *excelize.Font {
		return &excelize.Font{Family: "Arial", Size: size, Bold: bold}
	}

	var st reportStyles
	st.title, _ = f.NewStyle(&excelize.Style{Font: arial(14, true)})
	st.bold, _ = f.NewStyle(&excelize.Style{Font: arial(12, true)})
	st.italic, _ = f.NewStyle(&excelize.Style{Font: &excelize.Font{Family: "Arial", Size: 12, Italic: true}})
	st.plain, _ = f.NewStyle(&excelize.Style{Font: arial(12, false)})
	st.header, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 12, Bold: true, Color: "FFFFFF"},
		Fill:      solid("4472C4"),
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
		Border:    thin,
	})
	st.tableHeader, _ = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: "Arial", Size: 12, Bold: true, Color: "FFFFFF"},
		Fill:   solid("4472C4"),
		Border: thin,
	})
	st.data, _ = f.NewStyle(&excelize.Style{Font: arial(12, false), Border: thin})
	st.dataText, _ = f.NewStyle(&excelize.Style{Font: arial(12, false), Border: thin, NumFmt: 49})
	st.percent, _ = f.NewStyle(&excelize.Style{Font: arial(12, false), Border: thin, NumFmt: 10})
	st.green, _ = f.NewStyle(&excelize.Style{Font: arial(12, false), Border: thin, Fill: solid("C6EFCE")})
	st.yellow, _ = f.NewStyle(&excelize.Style{Font: arial(12, false), Border: thin, Fill: solid("FFEB9C")})
	st.red, _ = f.NewStyle(&excelize.Style{Font: arial(12, false), Border: thin, Fill: solid("FFC7CE")})
	st.notCallNumber, _ = f.NewStyle(&excelize.Style{Font: arial(12, true), Border: thin, Fill: solid("FF6B6B")})
	return st
}

func confidenceStyle(st reportStyles, confidence string) int {
	switch constants.Confidence(confidence) {
	case constants.ConfidenceHigh:
		return st.green
	case constants.ConfidenceMedium:
		return st.yellow
	case constants.ConfidenceLow:
		return st.red
	}
	return st.data
}

// truncate caps s at n runes with no ellipsis, matching how sample call
// numbers are clipped for display.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
