package phonenumber

import (
	"github.com/xlab/phonenumber/normalize"
)

// GetRegionCodeForNumber returns the region n most likely belongs to:
// among the regions sharing n.CountryCode, the first whose LeadingDigits
// matches the NSN, or failing that whose classification is not UNKNOWN
// (spec.md §4.9). A calling code with a single region returns that region
// without checking the NSN. Returns "" if n.CountryCode names no known
// region, or if none of the regions sharing it fits the NSN.
func GetRegionCodeForNumber(n PhoneNumber) string {
	regions := cache().CountryCallingCodes()[n.CountryCode]
	if len(regions) == 0 {
		return ""
	}
	if len(regions) == 1 {
		return regions[0]
	}

	nsn := GetNationalSignificantNumber(n)
	for _, r := range regions {
		meta, err := cache().Region(r)
		if err != nil {
			continue
		}
		if meta.LeadingDigits != nil {
			if loc := meta.LeadingDigits.FindStringIndex(nsn); loc != nil && loc[0] == 0 {
				return r
			}
			continue
		}
		if getNumberType(nsn, meta) != PhoneNumberTypes.Unknown {
			return r
		}
	}
	return ""
}

// GetRegionCodeForCountryCode returns the main/canonical region for cc, or
// UnknownRegion if cc names no known region.
func GetRegionCodeForCountryCode(cc int) string {
	regions := cache().CountryCallingCodes()[cc]
	if len(regions) == 0 {
		return UnknownRegion
	}
	return regions[0]
}

// GetNDDPrefixForRegion returns region's national-direct-dial prefix, or ""
// if region is unknown or has none. When stripNonDigits is true, any
// non-digit formatting characters in the prefix are removed.
func GetNDDPrefixForRegion(region string, stripNonDigits bool) string {
	meta, err := cache().Region(region)
	if err != nil || meta.NationalPrefix == "" {
		return ""
	}
	if !stripNonDigits {
		return meta.NationalPrefix
	}
	return normalize.NormalizeDigitsOnly(meta.NationalPrefix)
}

// IsLeadingZeroPossible reports whether cc's main region allows a leading
// zero in the NSN (spec.md §6).
func IsLeadingZeroPossible(cc int) bool {
	region := GetRegionCodeForCountryCode(cc)
	if region == UnknownRegion {
		return false
	}
	meta, err := cache().Region(region)
	if err != nil {
		return false
	}
	return meta.LeadingZeroPossible
}

// IsNANPACountry reports whether region belongs to the North American
// Numbering Plan.
func IsNANPACountry(region string) bool {
	meta, err := cache().Region(region)
	if err != nil {
		return false
	}
	return meta.CountryCode == NANPACountryCode
}

// IsViablePhoneNumber reports whether text could possibly be a phone
// number, ignoring region-specific validity.
func IsViablePhoneNumber(text string) bool {
	return normalize.IsViablePhoneNumber(text)
}
