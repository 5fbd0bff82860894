package normalize

import "regexp"

// validAlphaPattern matches any string that contains at least three ASCII
// letters anywhere in it — the signal used to decide whether a number
// should be normalized in alpha mode (vanity numbers like "1-800-FLOWERS").
var validAlphaPattern = regexp.MustCompile(`(?:.*?[A-Za-z]){3}.*`)

// Normalize strips s down to digits, using the keypad map (A-Z -> 2-9) when
// s looks like a vanity number (at least three letters), and the plain
// digit-variant map otherwise. Characters with no mapping are dropped.
func Normalize(s string) string {
	if validAlphaPattern.MatchString(s) {
		return mapRunes(s, KeypadMap)
	}
	return mapRunes(s, DigitMap)
}

// NormalizeDigitsOnly always uses the digit-variant map, regardless of
// whether s contains letters.
func NormalizeDigitsOnly(s string) string {
	return mapRunes(s, DigitMap)
}

func mapRunes(s string, table map[rune]rune) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if mapped, ok := table[r]; ok {
			out = append(out, mapped)
		}
	}
	return string(out)
}
