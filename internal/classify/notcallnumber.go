package classify

import (
	"regexp"
	"strings"
)

// NonCallNumberCategory names the kind of non-call-number data found in
// a call number field.
type NonCallNumberCategory string

const (
	CategoryPublicNote NonCallNumberCategory = "public_note"       // patron-facing instructions, belong in $z
	CategoryStaffNote  NonCallNumberCategory = "staff_note"        // cataloging/processing notes, belong in $x
	CategoryEquipment  NonCallNumberCategory = "equipment"         // not an information resource
	CategoryFormatOnly NonCallNumberCategory = "format_descriptor" // standalone format word such as "DVD"
	CategoryTestData   NonCallNumberCategory = "test_data"         // placeholder or test values
)

// Exact-match placeholder values.
var testValues = map[string]struct{}{
	"test": {}, "sample": {}, "example": {}, "dummy": {}, "temp": {}, "temporary": {},
	"xxx": {}, "zzz": {}, "tbd": {}, "tba": {}, "n/a": {}, "na": {}, "none": {}, "null": {},
	"delete": {}, "remove": {}, "fix": {}, "error": {}, "blank": {}, "empty": {},
}

// Format words that are only a call number when a number follows them.
var formatOnly = map[string]struct{}{
	"cd rom": {}, "cd-rom": {}, "cdrom": {}, "dvd rom": {}, "dvd-rom": {}, "dvdrom": {},
	"dvd": {}, "cd": {}, "vhs": {}, "dvd video": {}, "computer file": {},
	"cassette": {}, "microfilm": {}, "microfiche": {}, "filmstrip": {},
}

var equipmentWords = map[string]struct{}{
	"projector": {}, "marker": {}, "charger": {}, "adapter": {}, "cable": {}, "remote": {},
	"headphones": {}, "headset": {}, "speaker": {}, "tripod": {}, "screen": {}, "pointer": {},
	"clicker": {}, "eraser": {}, "whiteboard": {}, "easel": {}, "calculator": {},
}

// publicNotePatterns match patron-facing instructions that belong in $z.
// Order matters: these run before the staff patterns, so text matching
// both categories is reported as a public note.
var publicNotePatterns = compilePatterns([]string{
	// Patron instructions
	`(?i)ask\s+(at|for|librarian|staff)`,
	`(?i)check\s+(with|at|below)`,
	`(?i)inquire`,
	`(?i)please\s+`,
	`(?i)assistance`,
	`(?i)circulation\s+desk`,
	`(?i)microforms?\s+desk`,

	// Access and availability
	`(?i)^access\s*(for|through|to|:)`,
	`(?i)access[:.]`,
	`(?i)available\s+(at|in|from|to|on)`,
	`(?i)not\s+available`,
	`(?i)users?\s+(only|must|can|may)`,
	`(?i)(college|university|library)\s+users`,

	// Shelving and location guidance
	`(?i)shelved\s+(with|in|at|by|under)`,
	`(?i)filed\s+(under|with|in)`,
	`(?i)located\s+(in|at)`,
	`(?i)\bon\s+reserve`,
	`(?i)reference\s+(only|desk|room)`,
	`(?i)non-circulating`,
	`(?i)in-library\s+use`,
	`(?i)room\s+use\s+only`,
	`(?i)does\s+not\s+circulate`,
	`(?i)\brestricted\b`,
	`(?i)permission\s+(required|needed)`,

	// Electronic access
	`(?i)online\s+(access|only|version)`,
	`(?i)electronic\s+(access|version)`,
	`(?i)e-?resource`,
	`(?i)\bdatabase\b`,
	`(?i)website`,
	`(?i)workstation`,
	`(?i)^https?://`,
	`(?i)^www\.`,

	// Browsing notes
	`(?i)current\s+issues`,

	// Room references
	`(?i)reading\s+room`,

	// Loan period notes
	`(?i)\d+[- ]?(day|week|hour)\s+(loan|checkout|reserve)`,
})

// staffNotePatterns match cataloging and processing notes that belong in $x.
var staffNotePatterns = compilePatterns([]string{
	// Cataloging notes
	`(?i)cataloged\s+(under|with|as|separately)`,
	`(?i)classed\s+(with|in)`,
	`(?i)search\s+under`,
	`(?i)see\s+(also|librarian|reference|archivist)`,
	`(?i)contact\s+`,
	`(?i)request\s+(from|at|through)`,
	`(?i)consult\s+`,
	`(?i)bound\s+with`,
	`(?i)use\s+copy\s+in`,
	`(?i)keep\s+at`,
	`(?i)kept\s+(on|at|in)`,
	`(?i)stored\s+(off-?site|in)`,
	`(?i)shelve\s+in\b`,
	`(?i)library\s+copy`,
	`(?i)scholarship`,
	`(?i)order\s+(from|through)`,
	`(?i)interlibrary\s+loan`,
	`(?i)\bill\s+only`,

	// Status notes
	`(?i)^in\s+process`,
	`(?i)superseded`,
	`(?i)cancelled`,
	`(?i)withdrawn`,
	`(?i)\bmissing\b`,
	`(?i)\blost\b`,
	`(?i)damaged`,

	// Shelving instructions
	`(?i)sort\s+by\s+`,
	`(?i)separately\s+classed`,
	`(?i)shelved\s+alphabetically`,

	// Volume/issue notation without a call number
	`(?i)^\*\s*(vol|no\.?|v\.|issue|pt\.?|part)`,

	// Encoding placeholders
	`(?i)^e-[a-z]{2}---`,
	`(?i)^[a-z]-[a-z]{2}---`,
})

var (
	punctuationOnlyRe = regexp.MustCompile(`^[?.\-_*#]+$`)
	anyDigitRe        = regexp.MustCompile(`\d`)
)

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// DetectNonCallNumber reports whether cn is a note, placeholder,
// equipment description or bare format word rather than a call number.
// Checks run in a fixed order and the first hit wins.
//
// Equipment and supplies without identifiers ("Logitech Headset") are
// flagged; items with identifiers ("TOOLKIT#1") are shelving control
// numbers and fall through to normal classification.
func DetectNonCallNumber(cn string) (NonCallNumberCategory, bool) {
	lower := strings.ToLower(strings.TrimSpace(cn))

	if _, ok := testValues[lower]; ok {
		return CategoryTestData, true
	}
	if _, ok := formatOnly[lower]; ok {
		return CategoryFormatOnly, true
	}
	if containsEquipmentWord(lower) && !anyDigitRe.MatchString(cn) {
		return CategoryEquipment, true
	}
	if punctuationOnlyRe.MatchString(cn) {
		return CategoryTestData, true
	}
	for _, re := range publicNotePatterns {
		if re.MatchString(cn) {
			return CategoryPublicNote, true
		}
	}
	for _, re := range staffNotePatterns {
		if re.MatchString(cn) {
			return CategoryStaffNote, true
		}
	}
	return "", false
}

func containsEquipmentWord(lower string) bool {
	for _, word := range strings.Fields(lower) {
		if _, ok := equipmentWords[word]; ok {
			return true
		}
	}
	return false
}
