package classify

import (
	"testing"

	"github.com/ils-data/marc852-audit/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownCallNumbers(t *testing.T) {
	tests := []struct {
		name      string
		cn        string
		indicator constants.Indicator
		scheme    constants.Scheme
		conf      constants.Confidence
		note      string
	}{
		{"dewey decimal", "394.26", constants.IndicatorDewey, constants.SchemeDewey, constants.ConfidenceHigh, "Dewey with decimal"},
		{"lc cutter", "QA76.73 .P98", constants.IndicatorLC, constants.SchemeLC, constants.ConfidenceHigh, "LC with cutter"},
		{"sudoc", "Y 4.J 89/1:S 53/5", constants.IndicatorSuDoc, constants.SchemeSuDoc, constants.ConfidenceHigh, "SuDoc pattern (colon separator)"},
		{"av shelving", "DVD 521", constants.IndicatorShelving, constants.SchemeShelving, constants.ConfidenceHigh, "AV format shelving"},
		{"lac", "FC 2900", constants.IndicatorSource, constants.SchemeLAC, constants.ConfidenceHigh, "LAC class FC (Canadian history)"},
		{"nlm", "WB 100 .H6", constants.IndicatorNLM, constants.SchemeNLM, constants.ConfidenceHigh, "NLM class (QS-QZ or W)"},
		{"unrecognized", "zzyqx!!", constants.IndicatorOther, constants.SchemeOther, constants.ConfidenceLow, "Pattern not recognized - review recommended"},
	}

	e := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Classify(tt.cn, SubfieldFlags{})
			assert.Equal(t, tt.indicator, res.Indicator)
			assert.Equal(t, tt.scheme, res.Scheme)
			assert.Equal(t, tt.conf, res.Confidence)
			assert.Equal(t, tt.note, res.Note)
			assert.Empty(t, res.Repairs)
		})
	}
}

func TestClassifyMissing(t *testing.T) {
	e := NewEngine()
	for _, cn := range []string{"", "   ", "\t"} {
		res := e.Classify(cn, SubfieldFlags{})
		assert.Equal(t, constants.IndicatorBlank, res.Indicator)
		assert.Equal(t, constants.SchemeUnknown, res.Scheme)
		assert.Equal(t, "Missing call number", res.Note)
	}
}

func TestClassifyNonCallNumbers(t *testing.T) {
	e := NewEngine()

	t.Run("public note suggests a move to $z", func(t *testing.T) {
		res := e.Classify("ask at reference desk", SubfieldFlags{})
		assert.Equal(t, constants.IndicatorNotCN, res.Indicator)
		assert.Equal(t, constants.SchemeNotCN, res.Scheme)
		assert.Equal(t, constants.ConfidenceHigh, res.Confidence)
		assert.Equal(t, "Public note", res.Note)
		assert.Equal(t, []string{"Move to $z"}, res.Repairs)
	})

	t.Run("staff note suggests a move to $x", func(t *testing.T) {
		res := e.Classify("withdrawn", SubfieldFlags{})
		assert.Equal(t, "Staff/cataloging note", res.Note)
		assert.Equal(t, []string{"Move to $x"}, res.Repairs)
	})

	t.Run("format descriptor has no repair", func(t *testing.T) {
		res := e.Classify("DVD", SubfieldFlags{})
		assert.Equal(t, constants.IndicatorNotCN, res.Indicator)
		assert.Equal(t, "Format descriptor only", res.Note)
		assert.Empty(t, res.Repairs)
	})

	t.Run("equipment description", func(t *testing.T) {
		res := e.Classify("Logitech Headset", SubfieldFlags{})
		assert.Equal(t, "Equipment description - may be intentional for circulation", res.Note)
	})
}

func TestClassifyShelvingPrefixes(t *testing.T) {
	e := NewEngine()

	t.Run("prefix alone is ambiguous", func(t *testing.T) {
		res := e.Classify("Periodical", SubfieldFlags{})
		assert.Equal(t, constants.IndicatorOther, res.Indicator)
		assert.Equal(t, constants.ConfidenceLow, res.Confidence)
		assert.Equal(t, "Prefix only - no classification follows. Could be shelving control (4) or other scheme (8)", res.Note)
		assert.Equal(t, []string{"Move 'Periodical' to $k"}, res.Repairs)
	})

	t.Run("prefix plus classification", func(t *testing.T) {
		res := e.Classify("REFERENCE QA76 .B3", SubfieldFlags{})
		assert.Equal(t, constants.IndicatorLC, res.Indicator)
		assert.Equal(t, "LC with cutter", res.Note)
		assert.Equal(t, []string{"Move 'REFERENCE' to $k"}, res.Repairs)
	})

	t.Run("prefix plus unrecognized remainder", func(t *testing.T) {
		res := e.Classify("OVERSIZE kjhsdfk", SubfieldFlags{})
		assert.Equal(t, constants.IndicatorOther, res.Indicator)
		assert.Equal(t, "Remainder 'kjhsdfk' not a standard classification. Could be shelving control (4) or other scheme (8)", res.Note)
		assert.Equal(t, []string{"Move 'OVERSIZE' to $k"}, res.Repairs)
	})
}

func TestClassifyPriorityOrder(t *testing.T) {
	e := NewEngine()

	t.Run("sudoc colon outranks lc decimal", func(t *testing.T) {
		res := e.Classify("HE 20.3152:P 94", SubfieldFlags{})
		assert.Equal(t, constants.SchemeSuDoc, res.Scheme)
	})

	t.Run("reserve label outranks lc", func(t *testing.T) {
		res := e.Classify("CJ 2017 3rd Ed", SubfieldFlags{})
		assert.Equal(t, constants.SchemeOther, res.Scheme)
		assert.Equal(t, "Local shelving label (title abbreviation + edition)", res.Note)
	})

	t.Run("lac outranks lc for ps8000", func(t *testing.T) {
		res := e.Classify("PS 8501 .A5", SubfieldFlags{})
		assert.Equal(t, constants.SchemeLAC, res.Scheme)
	})

	t.Run("lc cd class beats av shelving when a cutter follows", func(t *testing.T) {
		res := e.Classify("CD 3960 .P9", SubfieldFlags{})
		assert.Equal(t, constants.SchemeLC, res.Scheme)
		assert.Equal(t, "LC with cutter", res.Note)
	})

	t.Run("av rom number beats everything", func(t *testing.T) {
		res := e.Classify("CD ROM 003", SubfieldFlags{})
		assert.Equal(t, constants.SchemeShelving, res.Scheme)
		assert.Equal(t, "AV format shelving", res.Note)
	})

	t.Run("invalid lc letters fall through", func(t *testing.T) {
		res := e.Classify("IC 50", SubfieldFlags{})
		assert.NotEqual(t, constants.SchemeLC, res.Scheme)
		assert.Equal(t, "Possible local collection scheme (prefix + number)", res.Note)
	})
}

func TestClassifySubfieldFlags(t *testing.T) {
	e := NewEngine()

	t.Run("classification from $j is a subfield error", func(t *testing.T) {
		res := e.Classify("QA76.73 .P98", SubfieldFlags{FromJ: true})
		assert.Equal(t, constants.IndicatorLC, res.Indicator)
		assert.Equal(t, []string{"Move $j to $h"}, res.Repairs)
	})

	t.Run("shelving number in $j is fine", func(t *testing.T) {
		res := e.Classify("DVD 521", SubfieldFlags{FromJ: true})
		assert.Equal(t, constants.IndicatorShelving, res.Indicator)
		assert.Empty(t, res.Repairs)
	})

	t.Run("merged cutter", func(t *testing.T) {
		res := e.Classify("PS3545 .H16 A37", SubfieldFlags{JCombined: true})
		assert.Equal(t, constants.IndicatorLC, res.Indicator)
		assert.Equal(t, []string{"Move $j cutter to $i"}, res.Repairs)
	})

	t.Run("conflicting schemes force review", func(t *testing.T) {
		res := e.Classify("N620 .F6 A85", SubfieldFlags{JConflict: true})
		assert.Equal(t, constants.IndicatorNotCN, res.Indicator)
		assert.Equal(t, constants.ConfidenceReview, res.Confidence)
		assert.Equal(t, "Library of Congress in $h but shelving control number in $j - review needed", res.Note)
	})

	t.Run("conflict keeps prefix repair", func(t *testing.T) {
		res := e.Classify("REFERENCE QA76 .B3", SubfieldFlags{JConflict: true})
		assert.Equal(t, constants.IndicatorNotCN, res.Indicator)
		assert.Equal(t, []string{"Move 'REFERENCE' to $k"}, res.Repairs)
	})
}

func TestClassifyTotality(t *testing.T) {
	e := NewEngine()
	inputs := []string{
		"", " ", "?", "!!!!", "12", "a", "Z",
		"☃ snow ☃", "漢字", "QA", "....", "#5",
		"\n\t", "0x1F", "null", "https://x", "- -",
	}
	for _, cn := range inputs {
		res := e.Classify(cn, SubfieldFlags{})
		require.True(t, constants.ValidIndicator(string(res.Indicator)), "indicator %q for %q", res.Indicator, cn)
		require.True(t, constants.ValidConfidence(string(res.Confidence)), "confidence %q for %q", res.Confidence, cn)
		require.True(t, constants.ValidScheme(string(res.Scheme)), "scheme %q for %q", res.Scheme, cn)
		require.NotEmpty(t, res.Note, cn)
	}
}
