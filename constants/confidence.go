package constants

// Confidence grades how certain a classification is. "Review" is reserved
// for records with conflicting signals that need a human decision.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
	ConfidenceReview Confidence = "Review"
)

var allConfidences = []Confidence{
	ConfidenceHigh,
	ConfidenceMedium,
	ConfidenceLow,
	ConfidenceReview,
}

// ConfidenceValues returns the confidence grades in display order.
func ConfidenceValues() []string {
	result := make([]string, len(allConfidences))
	for i, c := range allConfidences {
		result[i] = string(c)
	}
	return result
}

// ValidConfidence reports whether s is a known confidence grade.
func ValidConfidence(s string) bool {
	for _, c := range allConfidences {
		if s == string(c) {
			return true
		}
	}
	return false
}
