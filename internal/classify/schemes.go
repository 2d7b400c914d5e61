package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ils-data/marc852-audit/constants"
)

var (
	// SuDoc: agency letters + number.anything + colon. Slashes, hyphens,
	// digits, letters and spaces may appear between the dot and the colon,
	// as in "Y 4.J 89/1:S 53/5" or "C55.281/2-2:IM 1/2/CD".
	sudocRe  = regexp.MustCompile(`(?i)^[A-Z]{1,4}\s*\d+\.[A-Z0-9\s/\-\.]+:`)
	sudocYRe = regexp.MustCompile(`(?i)^Y\s*\d`)

	classLettersRe = regexp.MustCompile(`(?i)^([A-Z]{1,3})\s*\d`)

	// NLM ranges QS-QZ and W. The digit check is case-sensitive on
	// purpose: lowercased medicine classes are too easy to confuse with
	// local shelving text.
	nlmLettersRe = regexp.MustCompile(`^(Q[S-Z]|W[A-Z]?)$`)
	nlmDigitRe   = regexp.MustCompile(`^(Q[S-Z]|W[A-Z]?)\s*\d`)

	lacFCRe = regexp.MustCompile(`(?i)^FC\s*\d`)
	lacPSRe = regexp.MustCompile(`(?i)^PS\s*(\d+)`)

	deweyDecimalRe = regexp.MustCompile(`^\d{3}\.\d+`)
	deweyCutterRe  = regexp.MustCompile(`(?i)^(\d{3})\s+([A-Z]\d+[A-Z]?)(\s|$)`)
	deweyAuthorRe  = regexp.MustCompile(`^(\d{3})\s+[A-Z][a-z]{1,4}\b`)

	reserveEditionRe = regexp.MustCompile(`(?i)^[A-Z]{1,3}\s*\d{4}\s+\d+(st|nd|rd|th)\s+Ed`)
	reserveYearRe    = regexp.MustCompile(`(?i)^[A-Z]{1,3}\s+\d{1,2}\s+\d{4}\s*$`)

	localHyphenRe = regexp.MustCompile(`(?i)^[A-Z]{2,5}\s+\d{2,4}-\d+`)
	localPlainRe  = regexp.MustCompile(`(?i)^[A-Z]{2,5}\s+\d{2,4}(\s|$)`)

	avDirectRe = regexp.MustCompile(`(?i)^(DVD|VHS|CD|VID|TAPE|VIDEO)\s*\d`)
	avCircRe   = regexp.MustCompile(`(?i)^(Circ|Arch)\s*(CD|DVD|Video|VHS)`)

	localTwoDigitRe  = regexp.MustCompile(`^\d{2}\s+[A-Z]\d`)
	localDateRe      = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}`)
	localAccessionRe = regexp.MustCompile(`^\d{4,}-\d+`)
	localNotationRe  = regexp.MustCompile(`^[*#]`)
)

// lcRules are tried in order once the leading letters pass the
// valid-class gate. The MLCS rule is unanchored: CIP records bury the
// MLCS number after other text.
var lcRules = []struct {
	re   *regexp.Regexp
	conf constants.Confidence
	note string
}{
	{regexp.MustCompile(`(?i)MLCS\s*\d{4}/`), constants.ConfidenceLow, "LC (CIP/preliminary - MLCS number)"},
	// Cutter attached to the class number ("QA76.9" style dot-letter)
	{regexp.MustCompile(`(?i)^[A-Z]{1,3}\s*\d{1,4}\.[A-Z]\d*`), constants.ConfidenceHigh, "LC with cutter"},
	// Cutter after a space, with an optional decimal on the class number
	{regexp.MustCompile(`(?i)^[A-Z]{1,3}\s*\d{1,4}(\s*\.\d+)?\s+\.?[A-Z]\d*`), constants.ConfidenceHigh, "LC with cutter"},
	{regexp.MustCompile(`(?i)^[A-Z]{1,3}\s*\d{1,4}\s+\d{4}\s+\.?[A-Z]\d*`), constants.ConfidenceHigh, "LC with date and cutter"},
	{regexp.MustCompile(`(?i)^[A-Z]{1,3}\s*\d{1,4}\s*\.\d+`), constants.ConfidenceMedium, "LC class with decimal"},
	// Cutter with no dot and no space, e.g. PQ2402A3. Case-sensitive so
	// lowercase local labels don't sneak in.
	{regexp.MustCompile(`^[A-Z]{1,3}\d{1,4}[A-Z]\d*`), constants.ConfidenceMedium, "LC with cutter (no separator)"},
	{regexp.MustCompile(`(?i)^[A-Z]{1,3}\s*\d{1,4}(\s|$)`), constants.ConfidenceMedium, "LC class and number"},
}

// extractClassLetters returns the leading class letters of cn,
// uppercased, or "" when cn does not begin letters-then-digit.
func extractClassLetters(cn string) string {
	m := classLettersRe.FindStringSubmatch(cn)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

func isValidLCClass(letters string) bool {
	if letters == "" {
		return false
	}
	_, ok := lcValidClasses[letters]
	return ok
}

// matchSuDoc detects Superintendent of Documents numbers. The colon is
// the strongest single signal: a call number containing one is almost
// always SuDoc. Rare LC Geography table notation (G1254.N4:2M3) also
// carries a colon and will land here.
func matchSuDoc(cn string) (Result, bool) {
	if !strings.Contains(cn, ":") {
		return Result{}, false
	}
	if !sudocRe.MatchString(cn) {
		return Result{}, false
	}
	return Result{
		Indicator:  constants.IndicatorSuDoc,
		Scheme:     constants.SchemeSuDoc,
		Confidence: constants.ConfidenceHigh,
		Note:       "SuDoc pattern (colon separator)",
	}, true
}

// matchSuDocY: the Y class is always SuDoc (Congressional), never LC.
func matchSuDocY(cn string) (Result, bool) {
	if !sudocYRe.MatchString(cn) {
		return Result{}, false
	}
	return Result{
		Indicator:  constants.IndicatorSuDoc,
		Scheme:     constants.SchemeSuDoc,
		Confidence: constants.ConfidenceHigh,
		Note:       "SuDoc Y class (Congressional)",
	}, true
}

func matchNLM(cn string) (Result, bool) {
	letters := extractClassLetters(cn)
	if letters == "" || !nlmLettersRe.MatchString(letters) {
		return Result{}, false
	}
	if !nlmDigitRe.MatchString(cn) {
		return Result{}, false
	}
	return Result{
		Indicator:  constants.IndicatorNLM,
		Scheme:     constants.SchemeNLM,
		Confidence: constants.ConfidenceHigh,
		Note:       "NLM class (QS-QZ or W)",
	}, true
}

// matchLAC detects Library and Archives Canada numbers. LAC uses two
// ranges that are structurally identical to LC but outside its
// schedule: FC (Canadian history) and PS8000+ (Canadian literature).
func matchLAC(cn string) (Result, bool) {
	if lacFCRe.MatchString(cn) {
		return Result{
			Indicator:  constants.IndicatorSource,
			Scheme:     constants.SchemeLAC,
			Confidence: constants.ConfidenceHigh,
			Note:       "LAC class FC (Canadian history)",
		}, true
	}
	if m := lacPSRe.FindStringSubmatch(cn); m != nil {
		digits := strings.TrimLeft(m[1], "0")
		n, err := strconv.Atoi(digits)
		if len(digits) > 4 || (err == nil && n >= 8000) {
			return Result{
				Indicator:  constants.IndicatorSource,
				Scheme:     constants.SchemeLAC,
				Confidence: constants.ConfidenceHigh,
				Note:       "LAC class PS8000+ (Canadian literature)",
			}, true
		}
	}
	return Result{}, false
}

// matchDewey detects Dewey Decimal: exactly three leading digits with a
// decimal, a Cutter, or a truncated author name. Three digits repeated
// ("102 102") are local schemes, not Dewey.
func matchDewey(cn string) (Result, bool) {
	if deweyDecimalRe.MatchString(cn) {
		return deweyResult(constants.ConfidenceHigh, "Dewey with decimal"), true
	}
	if m := deweyCutterRe.FindStringSubmatch(cn); m != nil {
		if !strings.HasPrefix(cn, m[1]+" "+m[1]) {
			return deweyResult(constants.ConfidenceHigh, "Dewey with Cutter"), true
		}
	}
	if m := deweyAuthorRe.FindStringSubmatch(cn); m != nil {
		if !strings.HasPrefix(cn, m[1]+" "+m[1]) {
			return deweyResult(constants.ConfidenceMedium, "Dewey with author abbreviation"), true
		}
	}
	return Result{}, false
}

func deweyResult(conf constants.Confidence, note string) Result {
	return Result{
		Indicator:  constants.IndicatorDewey,
		Scheme:     constants.SchemeDewey,
		Confidence: conf,
		Note:       note,
	}
}

// matchReserveLabel catches local course-reserve shelving labels that
// would otherwise false-match LC: an abbreviated title plus a year and
// edition ("Am 2014 4th Ed"), or letters plus a small number and a year
// with no cutter ("RM 30 2016").
func matchReserveLabel(cn string) (Result, bool) {
	if reserveEditionRe.MatchString(cn) {
		return Result{
			Indicator:  constants.IndicatorOther,
			Scheme:     constants.SchemeOther,
			Confidence: constants.ConfidenceMedium,
			Note:       "Local shelving label (title abbreviation + edition)",
		}, true
	}
	if reserveYearRe.MatchString(cn) {
		return Result{
			Indicator:  constants.IndicatorOther,
			Scheme:     constants.SchemeOther,
			Confidence: constants.ConfidenceMedium,
			Note:       "Local shelving label (title abbreviation + year)",
		}, true
	}
	return Result{}, false
}

func matchLC(cn string) (Result, bool) {
	letters := extractClassLetters(cn)
	if !isValidLCClass(letters) {
		return Result{}, false
	}
	for _, rule := range lcRules {
		if rule.re.MatchString(cn) {
			return Result{
				Indicator:  constants.IndicatorLC,
				Scheme:     constants.SchemeLC,
				Confidence: rule.conf,
				Note:       rule.note,
			}, true
		}
	}
	return Result{}, false
}

// matchLocalCollection detects institution-specific collection schemes:
// a short letter prefix plus an accession-style number, often
// hyphenated ("BRL 200-11", "BRLV 207").
func matchLocalCollection(cn string) (Result, bool) {
	if localHyphenRe.MatchString(cn) {
		return Result{
			Indicator:  constants.IndicatorShelving,
			Scheme:     constants.SchemeShelving,
			Confidence: constants.ConfidenceMedium,
			Note:       "Local collection scheme (prefix + hyphenated number)",
		}, true
	}
	if localPlainRe.MatchString(cn) {
		return Result{
			Indicator:  constants.IndicatorShelving,
			Scheme:     constants.SchemeShelving,
			Confidence: constants.ConfidenceLow,
			Note:       "Possible local collection scheme (prefix + number)",
		}, true
	}
	return Result{}, false
}

// matchAVScheme catches AV formats the main shelving matcher missed,
// plus circulation-collection AV labels ("Circ DVD", "Arch Video").
func matchAVScheme(cn string) (Result, bool) {
	if avDirectRe.MatchString(cn) {
		return Result{
			Indicator:  constants.IndicatorShelving,
			Scheme:     constants.SchemeShelving,
			Confidence: constants.ConfidenceHigh,
			Note:       "AV format shelving",
		}, true
	}
	if avCircRe.MatchString(cn) {
		return Result{
			Indicator:  constants.IndicatorShelving,
			Scheme:     constants.SchemeShelving,
			Confidence: constants.ConfidenceHigh,
			Note:       "AV circulation shelving",
		}, true
	}
	return Result{}, false
}

func matchLocalNumeric(cn string) (Result, bool) {
	if localTwoDigitRe.MatchString(cn) {
		return localResult(constants.ConfidenceMedium, "Local shelving (2-digit prefix)"), true
	}
	if localDateRe.MatchString(cn) {
		return localResult(constants.ConfidenceHigh, "Date-based shelving"), true
	}
	if localAccessionRe.MatchString(cn) {
		return localResult(constants.ConfidenceMedium, "Accession number"), true
	}
	return Result{}, false
}

func matchLocalNotation(cn string) (Result, bool) {
	if !localNotationRe.MatchString(cn) {
		return Result{}, false
	}
	return localResult(constants.ConfidenceLow, "Local notation"), true
}

func localResult(conf constants.Confidence, note string) Result {
	return Result{
		Indicator:  constants.IndicatorSource,
		Scheme:     constants.SchemeLocal,
		Confidence: conf,
		Note:       note,
	}
}
