package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ils-data/marc852-audit/constants"
	"github.com/ils-data/marc852-audit/internal/entity"
)

func TestAnalyzeRecord(t *testing.T) {
	a := NewAnalyzer()

	t.Run("lc call number already coded", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{
			PermanentCallNumber: "QA76.73 .P98 B37 2009",
			MARC852:             "85200 $$b MAIN $$h QA76.73 $$i .P98",
		})
		assert.Equal(t, "QA76.73 .P98", out.ExtractedCallNumber)
		assert.Equal(t, "0", out.CurrentIndicator)
		assert.Equal(t, "0", out.SuggestedIndicator)
		assert.Equal(t, "Library of Congress", out.ClassificationType)
		assert.Equal(t, "High", out.Confidence)
		assert.Equal(t, "No", out.ChangeNeeded)
		assert.Empty(t, out.SubfieldChanges)
	})

	t.Run("dewey with blank indicator needs change", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{
			PermanentCallNumber: "394.26",
			MARC852:             "852__ $$h 394.26",
		})
		assert.Equal(t, "blank", out.CurrentIndicator)
		assert.Equal(t, "1", out.SuggestedIndicator)
		assert.Equal(t, "Dewey Decimal", out.ClassificationType)
		assert.Equal(t, "Yes", out.ChangeNeeded)
	})

	t.Run("missing call number", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{})
		assert.Empty(t, out.ExtractedCallNumber)
		assert.Equal(t, "blank", out.CurrentIndicator)
		assert.Equal(t, "blank", out.SuggestedIndicator)
		assert.Equal(t, "Unknown", out.ClassificationType)
		assert.Equal(t, "Missing call number", out.Notes)
		assert.Equal(t, "No", out.ChangeNeeded)
	})

	t.Run("falls back to permanent call number column", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{
			PermanentCallNumber: "DVD 521",
			MARC852:             "852__ $$b MAIN",
		})
		assert.Empty(t, out.ExtractedCallNumber)
		assert.Equal(t, "4", out.SuggestedIndicator)
		assert.Equal(t, "Shelving control number", out.ClassificationType)
		assert.Equal(t, "AV format shelving", out.Notes)
		assert.Equal(t, "Yes", out.ChangeNeeded)
	})

	t.Run("public note in call number subfield", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{
			MARC852: "85200 $$h Available at Circulation Desk",
		})
		assert.Equal(t, "N/A", out.SuggestedIndicator)
		assert.Equal(t, "Not a call number", out.ClassificationType)
		assert.Equal(t, "Public note", out.Notes)
		assert.Equal(t, "Review", out.ChangeNeeded)
		assert.Equal(t, "Move to $z", out.SubfieldChanges)
	})

	t.Run("classification miscoded in j", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{
			MARC852: "852__ $$j PS3545 .H16",
		})
		assert.True(t, out.FromJ)
		assert.Equal(t, "0", out.SuggestedIndicator)
		assert.Equal(t, "Move $j to $h", out.SubfieldChanges)
		assert.Equal(t, "Yes", out.ChangeNeeded)
	})

	t.Run("shelving control in j stays put", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{
			MARC852: "8524_ $$j DVD 521",
		})
		assert.True(t, out.FromJ)
		assert.Equal(t, "4", out.CurrentIndicator)
		assert.Equal(t, "4", out.SuggestedIndicator)
		assert.Empty(t, out.SubfieldChanges)
		assert.Equal(t, "No", out.ChangeNeeded)
	})

	t.Run("cutter miscoded in j", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{
			MARC852: "85200 $$h PS3545 $$i .H16 $$j A37",
		})
		assert.True(t, out.JCombined)
		assert.Equal(t, "PS3545 .H16 A37", out.ExtractedCallNumber)
		assert.Equal(t, "0", out.SuggestedIndicator)
		assert.Equal(t, "Move $j cutter to $i", out.SubfieldChanges)
		assert.Equal(t, "No", out.ChangeNeeded)
	})

	t.Run("two schemes in one field", func(t *testing.T) {
		out := a.Analyze(entity.HoldingRecord{
			MARC852: "85200 $$h N620 .F6 $$i A85 $$j DVD 12",
		})
		assert.True(t, out.JConflict)
		assert.Equal(t, "N/A", out.SuggestedIndicator)
		assert.Equal(t, "Review", out.Confidence)
		assert.Equal(t, "Library of Congress in $h but shelving control number in $j - review needed", out.Notes)
		assert.Equal(t, "Review", out.ChangeNeeded)
	})
}

func TestChangeNeeded(t *testing.T) {
	tests := []struct {
		current   string
		suggested constants.Indicator
		want      string
	}{
		{"blank", constants.IndicatorLC, "Yes"},
		{"0", constants.IndicatorLC, "No"},
		{"1", constants.IndicatorLC, "Yes"},
		{"4", constants.IndicatorDewey, "Yes"},
		{"0", constants.IndicatorBlank, "No"},
		{"blank", constants.IndicatorBlank, "No"},
		{"0", constants.IndicatorNotCN, "Review"},
		{"8", constants.IndicatorOther, "No"},
	}
	for _, tt := range tests {
		got := changeNeeded(tt.current, tt.suggested)
		assert.Equal(t, tt.want, got, "current %q suggested %q", tt.current, tt.suggested)
	}
}
