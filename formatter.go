package phonenumber

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/normalize"
)

// FormatNumber renders n in the requested style, implementing spec.md §4.10.
func FormatNumber(n PhoneNumber, f Format) string {
	if n.CountryCode == 0 {
		return n.RawInput
	}
	regions := cache().CountryCallingCodes()[n.CountryCode]
	if len(regions) == 0 {
		return GetNationalSignificantNumber(n)
	}

	region, err := cache().Region(GetRegionCodeForCountryCode(n.CountryCode))
	if err != nil {
		return GetNationalSignificantNumber(n)
	}

	nsn := GetNationalSignificantNumber(n)
	formatted := formatNSN(nsn, f, region, n.PreferredDomesticCarrierCode)
	ext := maybeGetFormattedExtension(n.Extension, f, region)
	cc := strconv.Itoa(n.CountryCode)

	switch f {
	case Formats.E164:
		return "+" + cc + formatted + ext
	case Formats.International:
		return "+" + cc + " " + formatted + ext
	case Formats.National:
		return formatted + ext
	case Formats.RFC3966:
		return rfc3966Prefix + "+" + cc + "-" + formatted + ext
	}
	return formatted + ext
}

// FormatOutOfCountry renders n the way a caller dialing from fromRegion
// would need to dial it, per spec.md §4.10's out-of-country rule.
func FormatOutOfCountry(n PhoneNumber, fromRegion string) string {
	from, err := cache().Region(fromRegion)
	if err != nil {
		return FormatNumber(n, Formats.International)
	}

	if n.CountryCode == NANPACountryCode && IsNANPACountry(fromRegion) {
		return strconv.Itoa(NANPACountryCode) + " " + FormatNumber(n, Formats.National)
	}
	if n.CountryCode == from.CountryCode {
		return FormatNumber(n, Formats.National)
	}

	region, err := cache().Region(GetRegionCodeForCountryCode(n.CountryCode))
	if err != nil {
		return FormatNumber(n, Formats.International)
	}
	nsn := GetNationalSignificantNumber(n)
	formatted := formatNSN(nsn, Formats.International, region, n.PreferredDomesticCarrierCode)
	ext := maybeGetFormattedExtension(n.Extension, Formats.International, region)

	prefix := from.PreferredIntlPrefix
	if prefix == "" && from.InternationalPrefix != nil {
		// Only a plain-digits prefix (no alternation/optional groups) can be
		// dialed verbatim; anything fancier has no single textual rendering.
		if plainDigitsPattern.MatchString(from.InternationalPrefix.String()) {
			prefix = from.InternationalPrefix.String()
		}
	}
	if prefix == "" {
		return FormatNumber(n, Formats.International)
	}
	return prefix + " " + strconv.Itoa(n.CountryCode) + " " + formatted + ext
}

var plainDigitsPattern = regexp.MustCompile(`^[0-9]+$`)

// formatNSN implements spec.md §4.10's format_nsn: choose a NumberFormat
// from intl_number_formats (for INTERNATIONAL, when non-empty) or
// number_formats otherwise, then substitute pattern -> format.
func formatNSN(nsn string, f Format, region *metadata.RegionMetadata, carrierCode string) string {
	formats := region.NumberFormats
	if f == Formats.International && len(region.IntlNumberFormats) > 0 {
		formats = region.IntlNumberFormats
	}

	chosen := selectFormat(formats, nsn)
	if chosen == nil {
		return nsn
	}

	idx := chosen.Pattern.FindStringSubmatchIndex(nsn)
	if idx == nil {
		return nsn
	}

	template := chosen.Format
	if f == Formats.National {
		if carrierCode != "" && chosen.DomesticCarrierCodeFormattingRule != "" {
			rule := strings.ReplaceAll(chosen.DomesticCarrierCodeFormattingRule, "$CC", carrierCode)
			template = substituteFirstGroup(template, rule)
		} else if chosen.NationalPrefixFormattingRule != "" {
			template = substituteFirstGroup(template, chosen.NationalPrefixFormattingRule)
		}
	}

	result := string(chosen.Pattern.ExpandString(nil, template, nsn, idx))

	if f == Formats.RFC3966 {
		result = collapsePunctuation(result)
	}
	return result
}

func selectFormat(formats []*metadata.NumberFormat, nsn string) *metadata.NumberFormat {
	for _, nf := range formats {
		if nf.Pattern == nil || !nf.MatchesLeadingDigits(nsn) {
			continue
		}
		loc := nf.Pattern.FindStringIndex(nsn)
		if loc != nil && loc[0] == 0 && loc[1] == len(nsn) {
			return nf
		}
	}
	return nil
}

// substituteFirstGroup replaces the first "$1" occurrence in template with
// rule, per spec.md §4.10's national-prefix/carrier-code slot substitution.
func substituteFirstGroup(template, rule string) string {
	return strings.Replace(template, "$1", rule, 1)
}

var punctuationRun = regexp.MustCompile(`[` + normalize.ValidPunctuation + `]+`)
var leadingPunctuation = regexp.MustCompile(`^[` + normalize.ValidPunctuation + `]+`)

func collapsePunctuation(s string) string {
	s = leadingPunctuation.ReplaceAllString(s, "")
	return punctuationRun.ReplaceAllString(s, "-")
}

// maybeGetFormattedExtension implements spec.md §4.10's extension rendering.
func maybeGetFormattedExtension(ext string, f Format, region *metadata.RegionMetadata) string {
	if ext == "" {
		return ""
	}
	if f == Formats.RFC3966 {
		return rfc3966ExtnPrefix + ext
	}
	if region != nil && region.PreferredExtnPrefix != "" {
		return region.PreferredExtnPrefix + ext
	}
	return DefaultExtnPrefix + ext
}
