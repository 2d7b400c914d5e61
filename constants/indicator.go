package constants

// Indicator is a MARC 852 first indicator value as suggested by the
// analyzer. The digit values follow the MARC 21 holdings format; the two
// non-digit values cover data that is not a call number at all ("N/A")
// and records with no call number to classify ("blank").
type Indicator string

const (
	IndicatorLC       Indicator = "0"     // Library of Congress classification
	IndicatorDewey    Indicator = "1"     // Dewey Decimal classification
	IndicatorNLM      Indicator = "2"     // National Library of Medicine classification
	IndicatorSuDoc    Indicator = "3"     // Superintendent of Documents classification
	IndicatorShelving Indicator = "4"     // Shelving control number
	IndicatorTitle    Indicator = "5"     // Title
	IndicatorSource   Indicator = "7"     // Source specified in $2
	IndicatorOther    Indicator = "8"     // Other scheme
	IndicatorNotCN    Indicator = "N/A"   // Not a call number
	IndicatorBlank    Indicator = "blank" // Unknown or missing
)

var allIndicators = []Indicator{
	IndicatorLC,
	IndicatorDewey,
	IndicatorNLM,
	IndicatorSuDoc,
	IndicatorShelving,
	IndicatorTitle,
	IndicatorSource,
	IndicatorOther,
	IndicatorNotCN,
	IndicatorBlank,
}

// IndicatorValues returns every value the analyzer may suggest.
func IndicatorValues() []string {
	result := make([]string, len(allIndicators))
	for i, ind := range allIndicators {
		result[i] = string(ind)
	}
	return result
}

// ValidIndicator reports whether s is one of the suggested-indicator values.
func ValidIndicator(s string) bool {
	for _, ind := range allIndicators {
		if s == string(ind) {
			return true
		}
	}
	return false
}
