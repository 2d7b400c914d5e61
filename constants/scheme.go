package constants

// Scheme is the human-readable name of the classification scheme behind a
// suggested indicator. These exact strings appear in report output, so
// they are stable values.
type Scheme string

const (
	SchemeLC       Scheme = "Library of Congress"
	SchemeDewey    Scheme = "Dewey Decimal"
	SchemeNLM      Scheme = "National Library of Medicine"
	SchemeSuDoc    Scheme = "Superintendent of Documents"
	SchemeShelving Scheme = "Shelving control number"
	SchemeLAC      Scheme = "Library and Archives Canada"
	SchemeLocal    Scheme = "Local scheme"
	SchemeOther    Scheme = "Other scheme"
	SchemeNotCN    Scheme = "Not a call number"
	SchemeUnknown  Scheme = "Unknown"
)

var allSchemes = []Scheme{
	SchemeLC,
	SchemeDewey,
	SchemeNLM,
	SchemeSuDoc,
	SchemeShelving,
	SchemeLAC,
	SchemeLocal,
	SchemeOther,
	SchemeNotCN,
	SchemeUnknown,
}

// SchemeValues returns every scheme name the analyzer can report.
func SchemeValues() []string {
	result := make([]string, len(allSchemes))
	for i, s := range allSchemes {
		result[i] = string(s)
	}
	return result
}

// ValidScheme reports whether s is a known scheme name.
func ValidScheme(s string) bool {
	for _, sc := range allSchemes {
		if s == string(sc) {
			return true
		}
	}
	return false
}
