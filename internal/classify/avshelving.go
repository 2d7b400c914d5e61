package classify

import "regexp"

// AV format shelving numbers use the media format as the primary
// organization, followed by an accession or control number. Context
// matters: "CD ROM" alone is a format descriptor, "CD ROM 003" is a
// shelving number, and "CD 3960 .P9" is LC class CD (Diplomatics).

// avFormatNumberRe is the simple format-plus-number shape (CD 1811,
// DVD 456, VHS-937). avLCLookalikeRe carves out the LC call numbers
// that share those letters but carry a cutter after the number.
var (
	avFormatNumberRe = regexp.MustCompile(`(?i)^(CD|DVD|VHS|LP|MC|DAT)[\s\-]+[A-Z]*\d+(\s|$)`)
	avLCLookalikeRe  = regexp.MustCompile(`(?i)^(CD|DVD)\s*\d+[\s.]+\.?[A-Z]\d*`)
)

// avShelvingRes are tried in order after the format-plus-number check.
// The video-format and recording patterns are unanchored because a
// collection prefix often comes first ("MusLib Video- disc MD56").
var avShelvingRes = []*regexp.Regexp{
	// Format + ROM + number (CD ROM 003, DVD ROM 001)
	regexp.MustCompile(`(?i)^(CD|DVD)[\s\-]*(ROM)\s+\d+`),
	// Collection prefix + format (+ optional ROM) + number (BRL CD ROM 071)
	regexp.MustCompile(`(?i)^[A-Z]+\s+(CD|DVD)[\s\-]*(ROM)?\s+\d+`),
	// Video + disc/recording/tape/format + number, any prefix
	regexp.MustCompile(`(?i)Video[\s\-]*(disc|recording|tape|CD|DVD|VHS)\s*[A-Z]*\d+`),
	// VIDEO CASSETTE 2199
	regexp.MustCompile(`(?i)^VIDEO\s+CASSETTE\s+\d+`),
	// Fiche 414, Microcard 5067
	regexp.MustCompile(`(?i)^(Fiche|Micro(film|card|fiche))\s*\d+`),
	// Microfilm MF 400
	regexp.MustCompile(`(?i)^Micro(film|card|fiche)\s+[A-Z]+\s+\d+`),
	// MusLib Recording CD1116
	regexp.MustCompile(`(?i)Recording\s+[A-Z]*\d+`),
	// Music CD no.8
	regexp.MustCompile(`(?i)^Music\s+(CD|DVD)\s+`),
}

// isAVShelvingNumber reports whether cn is an AV format shelving number.
func isAVShelvingNumber(cn string) bool {
	if avFormatNumberRe.MatchString(cn) && !avLCLookalikeRe.MatchString(cn) {
		return true
	}
	for _, re := range avShelvingRes {
		if re.MatchString(cn) {
			return true
		}
	}
	return false
}
