package export

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ils-data/marc852-audit/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func reportRecords() []entity.AnalyzedRecord {
	return []entity.AnalyzedRecord{
		{
			HoldingRecord: entity.HoldingRecord{
				PermanentCallNumber: "QA76.73.G63 B3",
				MARC852:             "85200 $$b MAIN $$h QA76.73.G63 $$i B3",
				InstitutionName:     "Brooklyn College",
				MMSID:               "991001234567",
				HoldingsID:          "222001234567",
				Suppressed:          "No",
			},
			ExtractedCallNumber: "QA76.73.G63 B3",
			CurrentIndicator:    "0",
			SuggestedIndicator:  "0",
			ChangeNeeded:        "No",
			ClassificationType:  "Library of Congress",
			Confidence:          "High",
		},
		{
			HoldingRecord: entity.HoldingRecord{
				PermanentCallNumber: "PS3545 .H16",
				MARC852:             "852__ $$h PS3545 $$i .H16",
				InstitutionName:     "Brooklyn College",
				MMSID:               "991001234568",
			},
			ExtractedCallNumber: "PS3545 .H16",
			CurrentIndicator:    "blank",
			SuggestedIndicator:  "0",
			ChangeNeeded:        "Yes",
			ClassificationType:  "Library of Congress",
			Confidence:          "High",
		},
		{
			HoldingRecord: entity.HoldingRecord{
				PermanentCallNumber: "510.2 B21",
				MARC852:             "852__ $$h 510.2 $$i B21",
				InstitutionName:     "City College",
				MMSID:               "991001234569",
			},
			ExtractedCallNumber: "510.2 B21",
			CurrentIndicator:    "blank",
			SuggestedIndicator:  "1",
			ChangeNeeded:        "Yes",
			ClassificationType:  "Dewey Decimal",
			Confidence:          "High",
		},
		{
			HoldingRecord: entity.HoldingRecord{
				PermanentCallNumber: "Ask at desk",
				MARC852:             "852__ $$h Ask at desk",
				InstitutionName:     "City College",
				MMSID:               "991001234570",
			},
			ExtractedCallNumber: "Ask at desk",
			CurrentIndicator:    "blank",
			SuggestedIndicator:  "N/A",
			ChangeNeeded:        "Review",
			ClassificationType:  "Not a call number",
			Confidence:          "High",
			SubfieldChanges:     "Move to $z",
			Notes:               "Public note, not a call number",
		},
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BM_852_analyzed.xlsx")
	svc := NewService(discardLogger())

	require.NoError(t, svc.WriteReport(path, reportRecords()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetAnalysis, sheetStatistics, sheetInstitution}, f.GetSheetList())

	t.Run("analysis sheet", func(t *testing.T) {
		cell := func(ref string) string {
			v, err := f.GetCellValue(sheetAnalysis, ref)
			require.NoError(t, err)
			return v
		}
		assert.Equal(t, "Permanent Call Number", cell("A1"))
		assert.Equal(t, "Notes", cell("P1"))
		assert.Equal(t, "QA76.73.G63 B3", cell("A2"))
		assert.Equal(t, "991001234567", cell("G2"))
		assert.Equal(t, "No", cell("L2"))
		assert.Equal(t, "Yes", cell("L3"))
		assert.Equal(t, "Ask at desk", cell("B5"))
		assert.Equal(t, "Review", cell("L5"))
		assert.Equal(t, "Not a call number", cell("M5"))
		assert.Equal(t, "Public note, not a call number", cell("P5"))

		styleNo, err := f.GetCellStyle(sheetAnalysis, "L2")
		require.NoError(t, err)
		styleYes, err := f.GetCellStyle(sheetAnalysis, "L3")
		require.NoError(t, err)
		styleYesAgain, err := f.GetCellStyle(sheetAnalysis, "L4")
		require.NoError(t, err)
		assert.NotEqual(t, styleNo, styleYes)
		assert.Equal(t, styleYes, styleYesAgain)

		styleNotCN, err := f.GetCellStyle(sheetAnalysis, "M5")
		require.NoError(t, err)
		stylePlain, err := f.GetCellStyle(sheetAnalysis, "M2")
		require.NoError(t, err)
		assert.NotEqual(t, stylePlain, styleNotCN)
	})

	t.Run("statistics sheet", func(t *testing.T) {
		cell := func(ref string) string {
			v, err := f.GetCellValue(sheetStatistics, ref)
			require.NoError(t, err)
			return v
		}
		assert.Equal(t, "852 First Indicator Analysis - Statistics", cell("A1"))
		assert.Equal(t, "Total Records:", cell("A4"))
		assert.Equal(t, "4", cell("B4"))
		assert.Equal(t, "4", cell("B5"))
		assert.Equal(t, "By Classification Type", cell("A7"))
		assert.Equal(t, "0", cell("A9"))
		assert.Equal(t, "Library of Congress", cell("B9"))
		assert.Equal(t, "2", cell("C9"))
		assert.Equal(t, "50.00%", cell("D9"))
		assert.Equal(t, "By Confidence Level", cell("A13"))
		assert.Equal(t, "High", cell("A15"))
		assert.Equal(t, "100.00%", cell("C15"))
		assert.Equal(t, "By Institution", cell("A17"))
		assert.Equal(t, "Brooklyn College", cell("A19"))
		assert.Equal(t, "2", cell("B19"))
	})

	t.Run("by institution sheet", func(t *testing.T) {
		cell := func(ref string) string {
			v, err := f.GetCellValue(sheetInstitution, ref)
			require.NoError(t, err)
			return v
		}
		assert.Equal(t, "Classification by Institution", cell("A1"))
		assert.Equal(t, "Institution", cell("A4"))
		assert.Equal(t, "0", cell("B4"))
		assert.Equal(t, "All", cell("E4"))
		assert.Equal(t, "Brooklyn College", cell("A5"))
		assert.Equal(t, "2", cell("B5"))
		assert.Equal(t, "4", cell("E7"))
		assert.Equal(t, "City College", cell("A13"))
		assert.Equal(t, "Ask at desk", cell("B14"))
	})
}

func TestWriteReportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty_analyzed.xlsx")
	svc := NewService(discardLogger())

	require.NoError(t, svc.WriteReport(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetAnalysis, sheetStatistics, sheetInstitution}, f.GetSheetList())
	v, err := f.GetCellValue(sheetStatistics, "B4")
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}

func TestWriteDataWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BM_852_data.xlsx")
	svc := NewService(discardLogger())

	records := []entity.HoldingRecord{
		{
			PermanentCallNumber:     "QA76 .B3",
			PermanentCallNumberType: "0",
			MARC852:                 "85200 $$h QA76 $$i .B3",
			NormalizedCallNumber:    "QA 76 B 3",
			InstitutionName:         "Brooklyn College",
			MMSID:                   "991001234567",
			HoldingsID:              "222001234567",
			Suppressed:              "No",
		},
		{
			PermanentCallNumber:     "DVD 521",
			PermanentCallNumberType: "8",
			MARC852:                 "8524_ $$j DVD 521",
			NormalizedCallNumber:    "DVD 521",
			InstitutionName:         "Brooklyn College",
			MMSID:                   "991007654321",
			HoldingsID:              "222007654321",
			Suppressed:              "Yes",
		},
	}
	require.NoError(t, svc.WriteDataWorkbook(path, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{dataSheet}, f.GetSheetList())

	rows, err := f.GetRows(dataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, dataColumns, rows[0])
	assert.Equal(t, []string{
		"QA76 .B3", "0", "85200 $$h QA76 $$i .B3", "QA 76 B 3",
		"Brooklyn College", "991001234567", "222001234567", "No",
	}, rows[1])
	assert.Equal(t, "DVD 521", rows[2][0])
	assert.Equal(t, "Yes", rows[2][7])
}

func TestOutputName(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 2, 36, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "data stem is renamed",
			input: filepath.Join("data", "KB_852_data.xlsx"),
			want:  filepath.Join("data", "KB_852_analyzed_20260301_120236.xlsx"),
		},
		{
			name:  "plain stem gets suffix",
			input: "holdings.xlsx",
			want:  "holdings_analyzed_20260301_120236.xlsx",
		},
		{
			name:  "only first data is renamed",
			input: "BM_data_data.xlsx",
			want:  "BM_analyzed_data_20260301_120236.xlsx",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputName(tt.input, now))
		})
	}
}
