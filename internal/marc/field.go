// Package marc parses the serialized 852 field strings that Alma
// Analytics exports and resolves which subfields hold the call number.
package marc

import (
	"regexp"
	"strings"
)

var (
	// Analytics serializes the field as "852" followed by the two
	// indicator characters, with "_" or "#" standing in for blank.
	indicatorRe = regexp.MustCompile(`^852([_#0-9])([_#0-9])`)

	// Subfields look like "$$h QA76.73" and run until the next "$".
	subfieldRe = regexp.MustCompile(`(?i)\$\$([a-z0-9])\s*([^$]*)`)
)

// Field is a parsed 852 field. Subfields maps lowercased codes to their
// trimmed values; a repeated code has its values joined with a single
// space in first-seen order. Codes preserves that order. Treat a Field
// as read-only once built.
type Field struct {
	Raw        string
	Indicator1 string
	Indicator2 string
	Subfields  map[string]string
	Codes      []string
}

// ParseField parses a raw 852 string such as
//
//	852_0 $$a NBC $$b BC001 $$h N620 .F6 $$i A85
//
// Empty or all-whitespace input yields nil. Parsing never fails: a
// string without the indicator prefix still gets its subfields scanned.
func ParseField(raw string) *Field {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	f := &Field{Raw: raw, Subfields: make(map[string]string)}
	if m := indicatorRe.FindStringSubmatch(raw); m != nil {
		f.Indicator1 = normalizeIndicator(m[1])
		f.Indicator2 = normalizeIndicator(m[2])
	}

	for _, m := range subfieldRe.FindAllStringSubmatch(raw, -1) {
		code := strings.ToLower(m[1])
		value := strings.TrimSpace(m[2])
		if prev, ok := f.Subfields[code]; ok {
			f.Subfields[code] = prev + " " + value
			continue
		}
		f.Subfields[code] = value
		f.Codes = append(f.Codes, code)
	}
	return f
}

// Subfield returns the value for code, or "" when absent.
func (f *Field) Subfield(code string) string {
	if f == nil {
		return ""
	}
	return f.Subfields[code]
}

func normalizeIndicator(c string) string {
	if c == "_" || c == "#" {
		return ""
	}
	return c
}
