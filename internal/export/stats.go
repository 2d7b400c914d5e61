// Package export writes the analysis report and the raw pull data as
// XLSX workbooks.
package export

import (
	"math"
	"sort"

	"github.com/ils-data/marc852-audit/constants"
	"github.com/ils-data/marc852-audit/internal/entity"
)

// IndicatorTypeCount is one (suggested indicator, classification type)
// bucket with its share of all records.
type IndicatorTypeCount struct {
	Indicator  string
	Type       string
	Count      int
	Percentage float64
}

// ConfidenceCount is one confidence grade with its share of all records.
type ConfidenceCount struct {
	Confidence string
	Count      int
	Percentage float64
}

// InstitutionCount is one institution's record count.
type InstitutionCount struct {
	Institution string
	Count       int
}

// Summary holds the aggregations behind the Statistics sheet.
type Summary struct {
	Total           int
	WithExtracted   int
	ByIndicatorType []IndicatorTypeCount
	ByConfidence    []ConfidenceCount
	ByInstitution   []InstitutionCount
}

// Summarize aggregates analyzed records for reporting. Slices come back
// in display order: indicator/type and institution buckets by count
// descending, confidence grades alphabetically.
func Summarize(records []entity.AnalyzedRecord) Summary {
	sum := Summary{Total: len(records)}

	type bucket struct{ indicator, class string }
	byType := make(map[bucket]int)
	byConf := make(map[string]int)
	byInst := make(map[string]int)
	for _, rec := range records {
		if rec.ExtractedCallNumber != "" {
			sum.WithExtracted++
		}
		byType[bucket{rec.SuggestedIndicator, rec.ClassificationType}]++
		byConf[rec.Confidence]++
		byInst[rec.InstitutionName]++
	}

	for key, n := range byType {
		sum.ByIndicatorType = append(sum.ByIndicatorType, IndicatorTypeCount{
			Indicator:  key.indicator,
			Type:       key.class,
			Count:      n,
			Percentage: percentage(n, sum.Total),
		})
	}
	sort.Slice(sum.ByIndicatorType, func(i, j int) bool {
		a, b := sum.ByIndicatorType[i], sum.ByIndicatorType[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Indicator != b.Indicator {
			return a.Indicator < b.Indicator
		}
		return a.Type < b.Type
	})

	for conf, n := range byConf {
		sum.ByConfidence = append(sum.ByConfidence, ConfidenceCount{
			Confidence: conf,
			Count:      n,
			Percentage: percentage(n, sum.Total),
		})
	}
	sort.Slice(sum.ByConfidence, func(i, j int) bool {
		return sum.ByConfidence[i].Confidence < sum.ByConfidence[j].Confidence
	})

	for inst, n := range byInst {
		sum.ByInstitution = append(sum.ByInstitution, InstitutionCount{Institution: inst, Count: n})
	}
	sort.Slice(sum.ByInstitution, func(i, j int) bool {
		a, b := sum.ByInstitution[i], sum.ByInstitution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Institution < b.Institution
	})

	return sum
}

// percentage rounds n/total to two decimal places of percent.
func percentage(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*10000) / 100
}

// crosstab is the institution by suggested-indicator count table with
// "All" margins on both axes.
type crosstab struct {
	institutions []string
	indicators   []string
	counts       [][]int
}

func buildCrosstab(records []entity.AnalyzedRecord) crosstab {
	instSet := make(map[string]struct{})
	indSet := make(map[string]struct{})
	cells := make(map[[2]string]int)
	for _, rec := range records {
		instSet[rec.InstitutionName] = struct{}{}
		indSet[rec.SuggestedIndicator] = struct{}{}
		cells[[2]string{rec.InstitutionName, rec.SuggestedIndicator}]++
	}

	insts := make([]string, 0, len(instSet))
	for inst := range instSet {
		insts = append(insts, inst)
	}
	sort.Strings(insts)
	inds := make([]string, 0, len(indSet))
	for ind := range indSet {
		inds = append(inds, ind)
	}
	sort.Strings(inds)

	counts := make([][]int, len(insts)+1)
	for i := range counts {
		counts[i] = make([]int, len(inds)+1)
	}
	for i, inst := range insts {
		for j, ind := range inds {
			n := cells[[2]string{inst, ind}]
			counts[i][j] = n
			counts[i][len(inds)] += n
			counts[len(insts)][j] += n
			counts[len(insts)][len(inds)] += n
		}
	}

	return crosstab{
		institutions: append(insts, "All"),
		indicators:   append(inds, "All"),
		counts:       counts,
	}
}

// institutionSamples lists distinct extracted call numbers from one
// institution's hard-to-classify rows.
type institutionSamples struct {
	institution string
	samples     []string
}

// sampleOtherUnknown picks the busiest institutions among records whose
// suggested indicator landed on Other, blank, or N/A, keeping up to
// maxSamples distinct extracted call numbers per institution in
// first-seen order. Local schemes tend to cluster by campus, so these
// samples are the quickest way to spot one.
func sampleOtherUnknown(records []entity.AnalyzedRecord, maxInstitutions, maxSamples int) []institutionSamples {
	counts := make(map[string]int)
	taken := make(map[string][]string)
	seen := make(map[[2]string]struct{})
	for _, rec := range records {
		switch constants.Indicator(rec.SuggestedIndicator) {
		case constants.IndicatorOther, constants.IndicatorBlank, constants.IndicatorNotCN:
		default:
			continue
		}
		counts[rec.InstitutionName]++
		if rec.ExtractedCallNumber == "" {
			continue
		}
		key := [2]string{rec.InstitutionName, rec.ExtractedCallNumber}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if len(taken[rec.InstitutionName]) < maxSamples {
			taken[rec.InstitutionName] = append(taken[rec.InstitutionName], rec.ExtractedCallNumber)
		}
	}

	insts := make([]string, 0, len(counts))
	for inst := range counts {
		insts = append(insts, inst)
	}
	sort.Slice(insts, func(i, j int) bool {
		if counts[insts[i]] != counts[insts[j]] {
			return counts[insts[i]] > counts[insts[j]]
		}
		return insts[i] < insts[j]
	})
	if len(insts) > maxInstitutions {
		insts = insts[:maxInstitutions]
	}

	out := make([]institutionSamples, 0, len(insts))
	for _, inst := range insts {
		out = append(out, institutionSamples{institution: inst, samples: taken[inst]})
	}
	return out
}
