package marc

import (
	"regexp"
	"strings"
)

// Candidate is the call-number text resolved from a field's $h, $i and
// $j subfields, with flags recording how it was assembled. The zero
// Candidate means the field carries no call number. $k holds a shelving
// prefix and never contributes text.
type Candidate struct {
	Text string

	// FromJ marks text that came from $j alone.
	FromJ bool

	// JCombined marks a $j value merged into $h/$i because it looks
	// like a miscoded cutter rather than a shelving control number.
	JCombined bool

	// JConflict marks a field with a classification in $h and a real
	// shelving control number in $j at the same time.
	JConflict bool
}

var (
	// A genuine shelving control number in $j starts with a media
	// format word and carries a number somewhere after it.
	shelvingControlRe = regexp.MustCompile(`(?i)^(DVD|CD|VHS|Video|Fiche|Disc|Tape|Cassette)\b`)
	digitRe           = regexp.MustCompile(`\d`)
)

func looksLikeShelvingControl(v string) bool {
	v = strings.TrimSpace(v)
	return shelvingControlRe.MatchString(v) && digitRe.MatchString(v)
}

// ExtractCallNumber resolves the call-number text for a parsed field.
//
// $h plus $i is the normal case. A lone $j is used as-is but flagged so
// a repair can be suggested. When $j coexists with $h or $i, its shape
// decides: a shelving-control shape means the two call numbers conflict
// and only $h/$i is kept; anything else is treated as a cutter that was
// keyed into the wrong subfield and joined on.
func ExtractCallNumber(f *Field) Candidate {
	h := f.Subfield("h")
	i := f.Subfield("i")
	j := f.Subfield("j")

	switch {
	case j != "" && (h != "" || i != ""):
		if looksLikeShelvingControl(j) {
			text := h
			if i != "" {
				text = strings.TrimSpace(h + " " + i)
			}
			return Candidate{Text: text, JConflict: true}
		}
		parts := make([]string, 0, 3)
		for _, p := range []string{h, i, j} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		return Candidate{Text: strings.Join(parts, " "), JCombined: true}

	case j != "":
		return Candidate{Text: j, FromJ: true}

	case h != "":
		if i != "" {
			return Candidate{Text: strings.TrimSpace(h + " " + i)}
		}
		return Candidate{Text: h}
	}
	return Candidate{}
}
