// Package classify assigns MARC 852 first indicator values to call
// numbers. Classification is total and pure: every input string maps to
// a well-formed result, the reference tables are read-only, and the same
// input always produces the same output, so records can be classified
// concurrently without coordination.
package classify

import (
	"fmt"
	"strings"

	"github.com/ils-data/marc852-audit/constants"
)

// Result is the classifier's verdict for one call number.
type Result struct {
	Indicator  constants.Indicator
	Scheme     constants.Scheme
	Confidence constants.Confidence
	Note       string

	// Repairs lists suggested subfield moves in the order they were
	// found, e.g. "Move 'REFERENCE' to $k".
	Repairs []string
}

// SubfieldFlags records how the call-number text was assembled from the
// 852 subfields. The flags influence repair suggestions and conflict
// handling but never the scheme match itself.
type SubfieldFlags struct {
	FromJ     bool
	JCombined bool
	JConflict bool
}

// schemeRule pairs a name with a matcher. Rules are evaluated
// top-to-bottom with first-match-wins semantics; several matchers can
// textually match the same input, so correctness depends on this order.
type schemeRule struct {
	name  string
	match func(cn string) (Result, bool)
}

// Engine classifies call numbers against the ordered scheme rules.
type Engine struct {
	rules []schemeRule
}

// NewEngine builds an engine with the scheme rules in priority order.
// SuDoc outranks everything because its colon is near-unambiguous; the
// local reserve labels sit just above LC to stop false matches on valid
// class letters; the catch-all local notations come last.
func NewEngine() *Engine {
	return &Engine{
		rules: []schemeRule{
			{"sudoc", matchSuDoc},
			{"sudoc-y-class", matchSuDocY},
			{"nlm", matchNLM},
			{"lac", matchLAC},
			{"dewey", matchDewey},
			{"local-reserve-label", matchReserveLabel},
			{"lc", matchLC},
			{"local-collection", matchLocalCollection},
			{"av-scheme", matchAVScheme},
			{"local-numeric", matchLocalNumeric},
			{"local-notation", matchLocalNotation},
		},
	}
}

var nonCallNumberNotes = map[NonCallNumberCategory]string{
	CategoryPublicNote: "Public note",
	CategoryStaffNote:  "Staff/cataloging note",
	CategoryEquipment:  "Equipment description - may be intentional for circulation",
	CategoryFormatOnly: "Format descriptor only",
	CategoryTestData:   "Test/placeholder data",
}

var nonCallNumberRepairs = map[NonCallNumberCategory]string{
	CategoryPublicNote: "Move to $z",
	CategoryStaffNote:  "Move to $x",
}

// Classify suggests the 852 first indicator for a call number. It
// always classifies by content, regardless of which subfield the data
// came from: content in $j that looks like a standard classification is
// flagged as a subfield error rather than accepted as shelving control.
// It never fails; unrecognized input comes back as indicator 8 with Low
// confidence.
func (e *Engine) Classify(callNum string, flags SubfieldFlags) Result {
	cn := strings.TrimSpace(callNum)
	if cn == "" {
		return Result{
			Indicator:  constants.IndicatorBlank,
			Scheme:     constants.SchemeUnknown,
			Confidence: constants.ConfidenceLow,
			Note:       "Missing call number",
		}
	}

	// Non-call-numbers first: "DVD" alone is a format descriptor even
	// when it arrived via $j.
	if cat, ok := DetectNonCallNumber(cn); ok {
		res := Result{
			Indicator:  constants.IndicatorNotCN,
			Scheme:     constants.SchemeNotCN,
			Confidence: constants.ConfidenceHigh,
			Note:       nonCallNumberNotes[cat],
		}
		if repair, ok := nonCallNumberRepairs[cat]; ok {
			res.Repairs = []string{repair}
		}
		return res
	}

	if isAVShelvingNumber(cn) {
		return Result{
			Indicator:  constants.IndicatorShelving,
			Scheme:     constants.SchemeShelving,
			Confidence: constants.ConfidenceHigh,
			Note:       "AV format shelving",
		}
	}

	// A shelving-prefix word alone ("Periodical", "Thesis") leaves the
	// indicator ambiguous: nothing was classified.
	if IsShelvingPrefix(cn) {
		return Result{
			Indicator:  constants.IndicatorOther,
			Scheme:     constants.SchemeOther,
			Confidence: constants.ConfidenceLow,
			Note:       "Prefix only - no classification follows. Could be shelving control (4) or other scheme (8)",
			Repairs:    []string{fmt.Sprintf("Move '%s' to $k", cn)},
		}
	}

	stripped, prefix := StripShelvingPrefix(cn)

	var repairs []string
	res, matched := e.classifyScheme(stripped)
	switch {
	case matched:
		if prefix != "" {
			repairs = append(repairs, fmt.Sprintf("Move '%s' to $k", prefix))
		}
	case prefix != "":
		res = Result{
			Indicator:  constants.IndicatorOther,
			Scheme:     constants.SchemeOther,
			Confidence: constants.ConfidenceLow,
			Note:       fmt.Sprintf("Remainder '%s' not a standard classification. Could be shelving control (4) or other scheme (8)", stripped),
		}
		repairs = append(repairs, fmt.Sprintf("Move '%s' to $k", prefix))
	default:
		res = Result{
			Indicator:  constants.IndicatorOther,
			Scheme:     constants.SchemeOther,
			Confidence: constants.ConfidenceLow,
			Note:       "Pattern not recognized - review recommended",
		}
	}

	// $j holds shelving control numbers. Standard classifications found
	// there were miscoded.
	if flags.FromJ && res.Indicator != constants.IndicatorShelving {
		repairs = append(repairs, "Move $j to $h")
	}
	if flags.JCombined {
		repairs = append(repairs, "Move $j cutter to $i")
	}
	if flags.JConflict {
		res.Note = fmt.Sprintf("%s in $h but shelving control number in $j - review needed", res.Scheme)
		res.Indicator = constants.IndicatorNotCN
		res.Confidence = constants.ConfidenceReview
	}

	res.Repairs = repairs
	return res
}

func (e *Engine) classifyScheme(cn string) (Result, bool) {
	for _, rule := range e.rules {
		if res, ok := rule.match(cn); ok {
			return res, true
		}
	}
	return Result{}, false
}
