package phonenumber

import "fmt"

// ParseErrorKind tags why Parse rejected an input, spec.md §7.
type ParseErrorKind byte

// ParseErrorKinds are all known ParseErrorKind values.
var ParseErrorKinds = struct {
	NotANumber        ParseErrorKind
	TooLong           ParseErrorKind
	TooShortNSN       ParseErrorKind
	TooShortAfterIDD  ParseErrorKind
	InvalidCountryCode ParseErrorKind
}{
	NotANumber:         1,
	TooLong:            2,
	TooShortNSN:        3,
	TooShortAfterIDD:   4,
	InvalidCountryCode: 5,
}

var parseErrorKindNames = map[ParseErrorKind]string{
	ParseErrorKinds.NotANumber:         "not a number",
	ParseErrorKinds.TooLong:           "too long",
	ParseErrorKinds.TooShortNSN:       "too short (NSN)",
	ParseErrorKinds.TooShortAfterIDD:  "too short after IDD",
	ParseErrorKinds.InvalidCountryCode: "invalid country code",
}

func (k ParseErrorKind) String() string {
	if name, ok := parseErrorKindNames[k]; ok {
		return name
	}
	return "unknown parse error"
}

// ParseError reports why Parse or ParseAndKeepRawInput rejected input.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("phonenumber: %s: %q", e.Kind, e.Input)
}

func parseErr(kind ParseErrorKind, input string) error {
	return &ParseError{Kind: kind, Input: input}
}
