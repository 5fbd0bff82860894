package phonenumber

import (
	"strconv"
	"strings"

	"github.com/xlab/phonenumber/metadata"
)

// GetNationalSignificantNumber renders n's NSN as text, re-prefixing any
// leading zeros spec.md §4.8 stripped into ItalianLeadingZero/
// NumberOfLeadingZeros.
func GetNationalSignificantNumber(n PhoneNumber) string {
	var sb strings.Builder
	if n.ItalianLeadingZero {
		zeros := n.NumberOfLeadingZeros
		if zeros < 1 {
			zeros = 1
		}
		sb.WriteString(strings.Repeat("0", zeros))
	}
	sb.WriteString(strconv.FormatUint(n.NationalNumber, 10))
	return sb.String()
}

// getNumberType classifies nsn against region, implementing spec.md §4.9.
func getNumberType(nsn string, region *metadata.RegionMetadata) PhoneNumberType {
	if region == nil || !region.GeneralDesc.Matches(nsn) {
		return PhoneNumberTypes.Unknown
	}

	switch {
	case region.PremiumRate.Matches(nsn):
		return PhoneNumberTypes.PremiumRate
	case region.TollFree.Matches(nsn):
		return PhoneNumberTypes.TollFree
	case region.SharedCost.Matches(nsn):
		return PhoneNumberTypes.SharedCost
	case region.VoIP.Matches(nsn):
		return PhoneNumberTypes.VoIP
	case region.PersonalNumber.Matches(nsn):
		return PhoneNumberTypes.PersonalNumber
	case region.Pager.Matches(nsn):
		return PhoneNumberTypes.Pager
	case region.UAN.Matches(nsn):
		return PhoneNumberTypes.UAN
	case region.Voicemail.Matches(nsn):
		return PhoneNumberTypes.Voicemail
	}

	if region.FixedLine.Matches(nsn) {
		if region.SameMobileAndFixedLinePattern || region.Mobile.Matches(nsn) {
			return PhoneNumberTypes.FixedLineOrMobile
		}
		return PhoneNumberTypes.FixedLine
	}
	if !region.SameMobileAndFixedLinePattern && region.Mobile.Matches(nsn) {
		return PhoneNumberTypes.Mobile
	}
	return PhoneNumberTypes.Unknown
}

// GetNumberType is the exported form of getNumberType: it looks up n's
// region from its country code and classifies it.
func GetNumberType(n PhoneNumber) PhoneNumberType {
	region := regionMetadataForNumber(n)
	if region == nil {
		return PhoneNumberTypes.Unknown
	}
	return getNumberType(GetNationalSignificantNumber(n), region)
}

// IsValidNumber reports whether n validates against the region
// GetRegionCodeForNumber selects for it, per spec.md §4.9.
func IsValidNumber(n PhoneNumber) bool {
	region := GetRegionCodeForNumber(n)
	if region == "" {
		return false
	}
	return IsValidNumberForRegion(n, region)
}

// IsValidNumberForRegion reports whether n is valid for regionCode
// specifically: its country code must match (or regionCode must be the
// non-geographic entity), and its classification must not be UNKNOWN.
func IsValidNumberForRegion(n PhoneNumber, regionCode string) bool {
	meta, err := cache().Region(regionCode)
	if err != nil {
		return false
	}
	if meta.CountryCode != n.CountryCode && regionCode != RegionCodeForNonGeoEntity {
		return false
	}
	return getNumberType(GetNationalSignificantNumber(n), meta) != PhoneNumberTypes.Unknown
}

func regionMetadataForNumber(n PhoneNumber) *metadata.RegionMetadata {
	code := GetRegionCodeForNumber(n)
	if code == "" {
		return nil
	}
	m, err := cache().Region(code)
	if err != nil {
		return nil
	}
	return m
}
