package classify

import (
	"strings"
	"unicode"
)

// StripShelvingPrefix removes a leading shelving-location word from a
// call number. The prefix must be followed by a space so that "REF"
// never matches inside "REFERENCE" or "RESERVED", and it is only
// stripped when something remains afterwards. Matching is
// case-insensitive; the remainder keeps its original casing.
//
// Returns the (possibly) stripped call number and the uppercase prefix
// token found, or the input unchanged and "" when no prefix matched.
func StripShelvingPrefix(cn string) (string, string) {
	upper := strings.ToUpper(cn)
	for _, prefix := range shelvingPrefixes {
		if strings.HasPrefix(upper, prefix+" ") {
			rest := strings.TrimLeftFunc(cn[len(prefix):], unicode.IsSpace)
			if rest != "" {
				return rest, prefix
			}
		}
	}
	return cn, ""
}

// IsShelvingPrefix reports whether cn consists of a shelving-location
// word and nothing else.
func IsShelvingPrefix(cn string) bool {
	upper := strings.ToUpper(strings.TrimSpace(cn))
	for _, prefix := range shelvingPrefixes {
		if upper == prefix {
			return true
		}
	}
	return false
}
