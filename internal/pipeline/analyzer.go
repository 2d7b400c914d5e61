// Package pipeline turns raw holdings rows into analyzed records: parse
// the 852 field, extract the call number candidate, classify it, and
// derive the suggested-change columns.
package pipeline

import (
	"strings"

	"github.com/ils-data/marc852-audit/constants"
	"github.com/ils-data/marc852-audit/internal/classify"
	"github.com/ils-data/marc852-audit/internal/entity"
	"github.com/ils-data/marc852-audit/internal/marc"
)

// Analyzer classifies one holdings record at a time. It holds no
// per-record state and is safe for concurrent use.
type Analyzer struct {
	engine *classify.Engine
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{engine: classify.NewEngine()}
}

// Analyze parses the serialized 852 field, extracts the call number
// candidate, and classifies it. When the field yields no candidate the
// exported Permanent Call Number column is classified instead.
func (a *Analyzer) Analyze(rec entity.HoldingRecord) entity.AnalyzedRecord {
	out := entity.AnalyzedRecord{HoldingRecord: rec}

	field := marc.ParseField(rec.MARC852)
	cand := marc.ExtractCallNumber(field)
	out.ExtractedCallNumber = cand.Text
	out.FromJ = cand.FromJ
	out.JCombined = cand.JCombined
	out.JConflict = cand.JConflict

	out.CurrentIndicator = string(constants.IndicatorBlank)
	if field != nil && field.Indicator1 != "" {
		out.CurrentIndicator = field.Indicator1
	}

	text := cand.Text
	if text == "" {
		text = rec.PermanentCallNumber
	}

	res := a.engine.Classify(text, classify.SubfieldFlags{
		FromJ:     cand.FromJ,
		JCombined: cand.JCombined,
		JConflict: cand.JConflict,
	})

	out.SuggestedIndicator = string(res.Indicator)
	out.ClassificationType = string(res.Scheme)
	out.Confidence = string(res.Confidence)
	out.Notes = res.Note
	out.SubfieldChanges = strings.Join(res.Repairs, "; ")
	out.ChangeNeeded = changeNeeded(out.CurrentIndicator, res.Indicator)

	return out
}

// changeNeeded compares the cataloged first indicator against the
// suggestion. A blank suggestion (missing call number) never asks for a
// change, and a non-call-number suggestion always asks for review.
func changeNeeded(current string, suggested constants.Indicator) string {
	s := string(suggested)
	switch {
	case current != s && suggested != constants.IndicatorBlank && suggested != constants.IndicatorNotCN:
		return "Yes"
	case suggested == constants.IndicatorNotCN:
		return "Review"
	default:
		return "No"
	}
}
