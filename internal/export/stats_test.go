package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ils-data/marc852-audit/internal/entity"
)

func analyzed(inst, indicator, class, confidence, extracted string) entity.AnalyzedRecord {
	return entity.AnalyzedRecord{
		HoldingRecord:       entity.HoldingRecord{InstitutionName: inst},
		ExtractedCallNumber: extracted,
		SuggestedIndicator:  indicator,
		ClassificationType:  class,
		Confidence:          confidence,
	}
}

func TestSummarize(t *testing.T) {
	records := []entity.AnalyzedRecord{
		analyzed("Brooklyn College", "0", "Library of Congress", "High", "QA76 .B3"),
		analyzed("Brooklyn College", "0", "Library of Congress", "High", "PS3545 .H16"),
		analyzed("Brooklyn College", "1", "Dewey Decimal", "High", "510.2 B21"),
		analyzed("City College", "8", "Other scheme", "Low", ""),
	}

	sum := Summarize(records)

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 3, sum.WithExtracted)

	require.Len(t, sum.ByIndicatorType, 3)
	assert.Equal(t, IndicatorTypeCount{Indicator: "0", Type: "Library of Congress", Count: 2, Percentage: 50}, sum.ByIndicatorType[0])
	assert.Equal(t, IndicatorTypeCount{Indicator: "1", Type: "Dewey Decimal", Count: 1, Percentage: 25}, sum.ByIndicatorType[1])
	assert.Equal(t, IndicatorTypeCount{Indicator: "8", Type: "Other scheme", Count: 1, Percentage: 25}, sum.ByIndicatorType[2])

	require.Len(t, sum.ByConfidence, 2)
	assert.Equal(t, ConfidenceCount{Confidence: "High", Count: 3, Percentage: 75}, sum.ByConfidence[0])
	assert.Equal(t, ConfidenceCount{Confidence: "Low", Count: 1, Percentage: 25}, sum.ByConfidence[1])

	require.Len(t, sum.ByInstitution, 2)
	assert.Equal(t, InstitutionCount{Institution: "Brooklyn College", Count: 3}, sum.ByInstitution[0])
	assert.Equal(t, InstitutionCount{Institution: "City College", Count: 1}, sum.ByInstitution[1])
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)

	assert.Equal(t, 0, sum.Total)
	assert.Equal(t, 0, sum.WithExtracted)
	assert.Empty(t, sum.ByIndicatorType)
	assert.Empty(t, sum.ByConfidence)
	assert.Empty(t, sum.ByInstitution)
}

func TestBuildCrosstab(t *testing.T) {
	records := []entity.AnalyzedRecord{
		analyzed("Brooklyn College", "0", "Library of Congress", "High", "QA76 .B3"),
		analyzed("Brooklyn College", "0", "Library of Congress", "High", "PS3545 .H16"),
		analyzed("Brooklyn College", "8", "Other scheme", "Low", "THESIS 1999"),
		analyzed("City College", "0", "Library of Congress", "High", "QC21 .F4"),
	}

	ct := buildCrosstab(records)

	assert.Equal(t, []string{"Brooklyn College", "City College", "All"}, ct.institutions)
	assert.Equal(t, []string{"0", "8", "All"}, ct.indicators)
	require.Len(t, ct.counts, 3)
	assert.Equal(t, []int{2, 1, 3}, ct.counts[0])
	assert.Equal(t, []int{1, 0, 1}, ct.counts[1])
	assert.Equal(t, []int{3, 1, 4}, ct.counts[2])
}

func TestSampleOtherUnknown(t *testing.T) {
	records := []entity.AnalyzedRecord{
		analyzed("Brooklyn College", "8", "Other scheme", "Low", "THESIS 1999"),
		analyzed("Brooklyn College", "8", "Other scheme", "Low", "THESIS 1999"),
		analyzed("Brooklyn College", "blank", "Unknown", "Low", "XX(12345.1)"),
		analyzed("City College", "N/A", "Not a call number", "High", ""),
		analyzed("Queens College", "0", "Library of Congress", "High", "QA76 .B3"),
	}

	groups := sampleOtherUnknown(records, 10, 8)

	require.Len(t, groups, 2)
	assert.Equal(t, "Brooklyn College", groups[0].institution)
	assert.Equal(t, []string{"THESIS 1999", "XX(12345.1)"}, groups[0].samples)
	assert.Equal(t, "City College", groups[1].institution)
	assert.Empty(t, groups[1].samples)

	t.Run("caps institutions and samples", func(t *testing.T) {
		groups := sampleOtherUnknown(records, 1, 1)
		require.Len(t, groups, 1)
		assert.Equal(t, "Brooklyn College", groups[0].institution)
		assert.Equal(t, []string{"THESIS 1999"}, groups[0].samples)
	})
}
