package phonenumber

// CountryCodeSource tags how a PhoneNumber's CountryCode was determined,
// spec.md §3/§9 ("represent CountryCodeSource as a tagged sum; do not rely
// on nullability to distinguish states").
type CountryCodeSource byte

// CountryCodeSources are all known CountryCodeSource values, following the
// teacher's FooValues = struct{...}{} resolver-table convention (at.go's
// Encodings, opts.go's SimStates).
var CountryCodeSources = struct {
	FromNumberWithPlusSign    CountryCodeSource
	FromNumberWithIDD         CountryCodeSource
	FromNumberWithoutPlusSign CountryCodeSource
	FromDefaultCountry        CountryCodeSource
}{
	FromNumberWithPlusSign:    0,
	FromNumberWithIDD:         1,
	FromNumberWithoutPlusSign: 2,
	FromDefaultCountry:        3,
}

// PhoneNumberType classifies a validated number, spec.md §4.9.
type PhoneNumberType byte

// PhoneNumberTypes are all known PhoneNumberType values.
var PhoneNumberTypes = struct {
	FixedLine         PhoneNumberType
	Mobile            PhoneNumberType
	FixedLineOrMobile PhoneNumberType
	TollFree          PhoneNumberType
	PremiumRate       PhoneNumberType
	SharedCost        PhoneNumberType
	VoIP              PhoneNumberType
	PersonalNumber    PhoneNumberType
	Pager             PhoneNumberType
	UAN               PhoneNumberType
	Voicemail         PhoneNumberType
	Unknown           PhoneNumberType
}{
	FixedLine:         0,
	Mobile:            1,
	FixedLineOrMobile: 2,
	TollFree:          3,
	PremiumRate:       4,
	SharedCost:        5,
	VoIP:              6,
	PersonalNumber:    7,
	Pager:             8,
	UAN:               9,
	Voicemail:         10,
	Unknown:           11,
}

// Format selects a formatter rendering, spec.md §4.10.
type Format byte

// Formats are all known Format values.
var Formats = struct {
	E164          Format
	International Format
	National      Format
	RFC3966       Format
}{
	E164:          0,
	International: 1,
	National:      2,
	RFC3966:       3,
}

// PhoneNumber is the structured representation a successful Parse produces,
// spec.md §3.
type PhoneNumber struct {
	// CountryCode is the country calling code; 0 means "not determined".
	CountryCode int
	// NationalNumber is the NSN as an integer; any leading zeros are
	// represented separately (see ItalianLeadingZero) rather than folded
	// into this value.
	NationalNumber uint64
	// ItalianLeadingZero is true when the NSN's textual form begins with
	// '0' and has length > 1.
	ItalianLeadingZero bool
	// NumberOfLeadingZeros counts the leading zeros in the textual NSN when
	// ItalianLeadingZero holds; it defaults to 1 and is only raised for
	// multiple leading zeros.
	NumberOfLeadingZeros int
	Extension            string
	RawInput              string
	CountryCodeSource     CountryCodeSource
	PreferredDomesticCarrierCode string
}
