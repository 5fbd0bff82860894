package normalize

import "regexp"

// Precompiled once, like the teacher's pdu byte tables — never rebuilt per call.
var (
	minViable  = `[` + ValidDigits + `]{2}`
	fullViable = `[` + PlusChars + `]*(?:[` + ValidPunctuation + `]*[` + ValidDigits + `]){3,}[` +
		ValidPunctuation + `A-Za-z0-9]*`

	// extBody recognizes the three shapes spec.md §4.4 lists, at the end of
	// a string, case-insensitively. Only one of the three named groups will
	// be non-empty on a given match. It carries no anchors so it can be
	// embedded both standalone and inside ViablePattern.
	extBody = `(?i:` +
		`;ext=(?P<rfc>\d{1,7})` +
		`|[ \t,]{0,4}(?:extn|e?xt(?:ensi[oó]n?)?|anexo|int|[x#~])[:\.．]?[ \t,-]*(?P<kw>\d{1,7})#?` +
		`|[- ](?P<us>\d{1,5})#` +
		`)`

	extensionPattern = regexp.MustCompile(extBody + `$`)

	// ViablePattern implements `^(?:MIN|FULL(EXT)?)$`: the whole string is
	// either exactly two digits or a FULL number with an optional extension.
	ViablePattern = regexp.MustCompile(`^(?:` + minViable + `|` + fullViable + `(?:` + extBody + `)?)$`)

	// validStartChar is the first character allowed to begin a possible number.
	validStartChar = regexp.MustCompile(`[` + PlusChars + ValidDigits + `]`)

	// unwantedEndChars trims everything after the last character a possible
	// number may legitimately end with.
	unwantedEndChars = regexp.MustCompile(`[^` + ValidDigits + `A-Za-z#]+$`)

	// secondNumberStart matches the first "/x" or "\x" style marker used to
	// separate two numbers crammed into one field.
	secondNumberStart = regexp.MustCompile(`[\\/] *x`)
)

// IsViablePhoneNumber reports whether s could possibly be a phone number,
// ignoring any region-specific validity.
func IsViablePhoneNumber(s string) bool {
	if len(s) < 2 {
		return false
	}
	return ViablePattern.MatchString(s)
}

// ExtractPossibleNumber strips leading characters before the first valid
// start character, trailing characters that cannot end a number, and
// truncates at a second-number marker (spec.md §4.3 step 2).
func ExtractPossibleNumber(s string) string {
	if loc := validStartChar.FindStringIndex(s); loc != nil {
		s = s[loc[0]:]
	} else {
		return ""
	}
	if loc := secondNumberStart.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	s = unwantedEndChars.ReplaceAllString(s, "")
	return s
}

// ExtractExtension splits a trailing extension off s, per spec.md §4.4. It
// only recognizes the extension if the portion preceding it is itself a
// viable phone number; otherwise it returns s unchanged with no extension.
func ExtractExtension(s string) (rest, ext string) {
	m := extensionPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return s, ""
	}
	candidate := s[:m[0]]
	if !IsViablePhoneNumber(candidate) {
		return s, ""
	}
	names := extensionPattern.SubexpNames()
	for i, name := range names {
		if name == "" || m[2*i] < 0 {
			continue
		}
		switch name {
		case "rfc", "kw", "us":
			return candidate, s[m[2*i]:m[2*i+1]]
		}
	}
	return s, ""
}
