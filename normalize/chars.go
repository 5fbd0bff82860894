// Package normalize provides the character classes, digit/keypad tables and
// precompiled regex atoms shared by the parser, validator and formatter. It
// has no knowledge of regions or metadata — it only knows how to turn messy
// human-entered text into digits and how to recognize the shape of a phone
// number.
package normalize

// digitRange maps a contiguous block of Unicode digit runes onto ASCII '0'-'9'.
type digitRange struct {
	first rune
	last  rune
}

// Digit-variant blocks recognized everywhere a phone number may appear,
// per spec: fullwidth, Arabic-Indic, Eastern-Arabic.
var digitRanges = []digitRange{
	{'0', '9'},
	{'０', '９'}, // fullwidth digits
	{'٠', '٩'}, // Arabic-Indic digits
	{'۰', '۹'}, // Eastern-Arabic digits
}

// DigitMap maps every recognized digit-variant rune to its ASCII digit.
var DigitMap = buildDigitMap()

// KeypadMap maps A-Z to the digit on an ITU E.161 telephone keypad, plus
// every entry from DigitMap. Used only in alpha mode.
var KeypadMap = buildKeypadMap()

func buildDigitMap() map[rune]rune {
	m := make(map[rune]rune)
	for _, r := range digitRanges {
		for c, ascii := r.first, '0'; c <= r.last; c, ascii = c+1, ascii+1 {
			m[c] = ascii
		}
	}
	return m
}

// keypadLetters lists, in keypad order, the letters sharing a digit key as
// used by feature phones: 2=ABC 3=DEF 4=GHI 5=JKL 6=MNO 7=PQRS 8=TUV 9=WXYZ.
var keypadLetters = map[rune]rune{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

func buildKeypadMap() map[rune]rune {
	m := make(map[rune]rune, len(DigitMap)+len(keypadLetters))
	for k, v := range DigitMap {
		m[k] = v
	}
	for k, v := range keypadLetters {
		m[k] = v
		m[k+('a'-'A')] = v
	}
	return m
}

// PlusChars is the set of runes accepted as a leading international marker.
const PlusChars = "+＋"

// ValidDigits is every rune DigitMap accepts, expressed as a regex class body.
const ValidDigits = `0-9\x{FF10}-\x{FF19}\x{0660}-\x{0669}\x{06F0}-\x{06F9}`

// ValidPunctuation is every rune allowed to separate digit groups in a
// viable phone number, expressed as a regex class body.
const ValidPunctuation = `\-x\x{2010}-\x{2015}\x{2212}\x{30FC}\x{FF0D}-\x{FF0F} ` +
	`\x{00A0}\x{00AD}\x{200B}\x{2060}\x{3000}()\x{FF08}\x{FF09}\[\]/.~\x{2053}\x{223C}\x{FF5E}`
