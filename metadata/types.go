// Package metadata holds the per-region dialing-rule model that drives the
// parser, validator and formatter, together with its loader. It mirrors the
// role the teacher's pdu package played for the 'at' framework: low-level,
// typed records decoded from an external representation, cached once built.
package metadata

import "regexp"

// NumberDescriptor describes one category of number within a region (fixed
// line, mobile, toll free, ...).
type NumberDescriptor struct {
	NationalNumberPattern *regexp.Regexp
	PossibleNumberPattern *regexp.Regexp
	ExampleNumber         string
}

// Matches reports whether nsn matches both of the descriptor's patterns in
// full. A nil pattern (produced from "NA" or a malformed regex) never
// matches, per spec.md §4.11/§7.
func (d *NumberDescriptor) Matches(nsn string) bool {
	if d == nil {
		return false
	}
	return matchesEntirely(d.PossibleNumberPattern, nsn) && matchesEntirely(d.NationalNumberPattern, nsn)
}

func matchesEntirely(re *regexp.Regexp, s string) bool {
	if re == nil {
		return false
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// NumberFormat describes one pattern -> template rule used to render an NSN.
type NumberFormat struct {
	Pattern                          *regexp.Regexp
	Format                           string
	LeadingDigitsPatterns            []*regexp.Regexp
	NationalPrefixFormattingRule     string
	NationalPrefixOptionalWhenFormat bool
	DomesticCarrierCodeFormattingRule string
}

// MatchesLeadingDigits reports whether nsn is accepted by this format's
// leading-digits discriminator: an empty list always matches, otherwise
// only the *last* (most discriminating) pattern is tested, per spec.md
// §4.10.
func (f *NumberFormat) MatchesLeadingDigits(nsn string) bool {
	if len(f.LeadingDigitsPatterns) == 0 {
		return true
	}
	last := f.LeadingDigitsPatterns[len(f.LeadingDigitsPatterns)-1]
	if last == nil {
		return false
	}
	loc := last.FindStringIndex(nsn)
	return loc != nil && loc[0] == 0
}

// RegionMetadata describes one region's (or the non-geographic "001"
// entity's) dialing rules and number descriptors.
type RegionMetadata struct {
	ID                     string
	CountryCode            int
	InternationalPrefix    *regexp.Regexp
	PreferredIntlPrefix    string
	NationalPrefix         string
	NationalPrefixForParsing  *regexp.Regexp
	NationalPrefixTransformRule string
	PreferredExtnPrefix    string
	LeadingDigits          *regexp.Regexp

	MainCountryForCode          bool
	LeadingZeroPossible         bool
	MobileNumberPortableRegion  bool
	SameMobileAndFixedLinePattern bool

	GeneralDesc     *NumberDescriptor
	FixedLine       *NumberDescriptor
	Mobile          *NumberDescriptor
	TollFree        *NumberDescriptor
	PremiumRate     *NumberDescriptor
	SharedCost      *NumberDescriptor
	VoIP            *NumberDescriptor
	PersonalNumber  *NumberDescriptor
	Pager           *NumberDescriptor
	UAN             *NumberDescriptor
	Voicemail       *NumberDescriptor
	NoIntlDialling  *NumberDescriptor
	Emergency       *NumberDescriptor
	StandardRate    *NumberDescriptor
	ShortCode       *NumberDescriptor
	CarrierSpecific *NumberDescriptor

	NumberFormats     []*NumberFormat
	IntlNumberFormats []*NumberFormat
}
