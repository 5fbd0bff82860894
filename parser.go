package phonenumber

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/normalize"
)

// Parse extracts a PhoneNumber from text using defaultRegion whenever text
// carries no country code of its own. It is equivalent to
// ParseAndKeepRawInput with KeepRawInput false.
func Parse(text, defaultRegion string) (PhoneNumber, error) {
	return parse(text, ParseConfig{DefaultRegion: defaultRegion})
}

// ParseAndKeepRawInput behaves like Parse but additionally preserves
// RawInput and PreferredDomesticCarrierCode. CountryCodeSource is set by
// both.
func ParseAndKeepRawInput(text, defaultRegion string) (PhoneNumber, error) {
	return parse(text, ParseConfig{DefaultRegion: defaultRegion, KeepRawInput: true})
}

// ParseWithConfig is the fully configurable entry point.
func ParseWithConfig(text string, cfg ParseConfig) (PhoneNumber, error) {
	return parse(text, cfg)
}

func parse(text string, cfg ParseConfig) (PhoneNumber, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return PhoneNumber{}, err
	}

	if len(text) > MaxInputStringLength {
		return PhoneNumber{}, parseErr(ParseErrorKinds.TooLong, text)
	}
	if text == "" {
		return PhoneNumber{}, parseErr(ParseErrorKinds.NotANumber, text)
	}

	nationalNumber := buildNationalNumberForParsing(text)
	nationalNumber, extension := normalize.ExtractExtension(nationalNumber)

	if !normalize.IsViablePhoneNumber(nationalNumber) {
		return PhoneNumber{}, parseErr(ParseErrorKinds.NotANumber, text)
	}

	defaultMeta, metaErr := cache().Region(cfg.DefaultRegion)
	if metaErr != nil && cfg.CheckRegion {
		return PhoneNumber{}, metaErr
	}

	n := PhoneNumber{
		NumberOfLeadingZeros: 1,
		CountryCodeSource:    CountryCodeSources.FromNumberWithPlusSign,
	}

	source, normalized := maybeStripInternationalPrefix(nationalNumber, defaultMeta)
	n.CountryCodeSource = source

	cc, nsn, carrierCode, err := extractCountryCode(normalized, source, defaultMeta, cache().CountryCallingCodes())
	if err != nil {
		return PhoneNumber{}, err
	}
	n.CountryCode = cc

	if digitLen := len(nsn); digitLen > MaxLengthForNSN {
		return PhoneNumber{}, parseErr(ParseErrorKinds.TooLong, text)
	} else if digitLen < MinLengthForNSN {
		return PhoneNumber{}, parseErr(ParseErrorKinds.TooShortNSN, text)
	}

	applyLeadingZero(&n, nsn)
	num, convErr := strconv.ParseUint(nsn, 10, 64)
	if convErr != nil {
		return PhoneNumber{}, parseErr(ParseErrorKinds.NotANumber, text)
	}
	n.NationalNumber = num
	n.Extension = extension

	if cfg.KeepRawInput {
		n.RawInput = text
		n.PreferredDomesticCarrierCode = carrierCode
	}

	return n, nil
}

// buildNationalNumberForParsing implements spec.md §4.3: RFC 3966 unwrapping
// (tel: prefix, ;phone-context=, ;isub=) or plain extraction.
func buildNationalNumberForParsing(input string) string {
	var result string
	if idx := strings.Index(input, rfc3966PhoneContext); idx >= 0 {
		contextValue := input[idx+len(rfc3966PhoneContext):]
		if semi := strings.IndexByte(contextValue, ';'); semi >= 0 {
			contextValue = contextValue[:semi]
		}
		telStart := 0
		if p := strings.Index(input, rfc3966Prefix); p >= 0 && p < idx {
			telStart = p + len(rfc3966Prefix)
		}
		numberPart := input[telStart:idx]

		var sb strings.Builder
		if strings.HasPrefix(contextValue, "+") || strings.HasPrefix(contextValue, "＋") {
			sb.WriteString(contextValue)
		}
		sb.WriteString(numberPart)
		result = sb.String()
	} else {
		result = normalize.ExtractPossibleNumber(input)
	}

	if idx := strings.Index(result, rfc3966ISDNSubaddr); idx >= 0 {
		result = result[:idx]
	}
	return result
}

var plusRun = regexp.MustCompile(`^[` + normalize.PlusChars + `]+`)

// maybeStripInternationalPrefix implements spec.md §4.6.
func maybeStripInternationalPrefix(s string, region *metadata.RegionMetadata) (CountryCodeSource, string) {
	if loc := plusRun.FindStringIndex(s); loc != nil {
		return CountryCodeSources.FromNumberWithPlusSign, normalize.NormalizeDigitsOnly(s[loc[1]:])
	}

	normalized := normalize.NormalizeDigitsOnly(s)
	if region == nil || region.InternationalPrefix == nil {
		return CountryCodeSources.FromDefaultCountry, normalized
	}

	anchored := anchoredAtStart(region.InternationalPrefix)
	loc := anchored.FindStringIndex(normalized)
	if loc == nil || loc[0] != 0 {
		return CountryCodeSources.FromDefaultCountry, normalized
	}
	if loc[1] < len(normalized) && normalized[loc[1]] == '0' {
		// Ambiguous with a national prefix of "0" — spec.md §9 preserves
		// this suppression verbatim.
		return CountryCodeSources.FromDefaultCountry, normalized
	}
	return CountryCodeSources.FromNumberWithIDD, normalized[loc[1]:]
}

var anchorCache sync.Map // *regexp.Regexp -> *regexp.Regexp

// anchoredAtStart returns a variant of re that only matches at position 0,
// used for "looking at" style checks (international prefix, national
// prefix) where metadata regexes aren't guaranteed to carry their own ^.
// Cached by identity since RegionMetadata (and its regexes) are memoized
// singletons once loaded.
func anchoredAtStart(re *regexp.Regexp) *regexp.Regexp {
	if re == nil {
		return nil
	}
	if a, ok := anchorCache.Load(re); ok {
		return a.(*regexp.Regexp)
	}
	a := regexp.MustCompile(`^(?:` + re.String() + `)`)
	actual, _ := anchorCache.LoadOrStore(re, a)
	return actual.(*regexp.Regexp)
}

// extractCountryCode implements spec.md §4.7, including the one-shot retry
// from spec.md §7 when INVALID_COUNTRY_CODE lands on a still-plus-prefixed
// remainder.
func extractCountryCode(normalized string, source CountryCodeSource, defaultMeta *metadata.RegionMetadata, table map[int][]string) (cc int, nsn, carrierCode string, err error) {
	if source != CountryCodeSources.FromDefaultCountry {
		if len(normalized) <= MinLengthForNSN {
			return 0, "", "", parseErr(ParseErrorKinds.TooShortAfterIDD, normalized)
		}
		cc, nsn, ok := scanCountryCode(normalized, table)
		if ok {
			return cc, nsn, "", nil
		}
		if loc := plusRun.FindStringIndex(normalized); loc != nil {
			retry := normalized[loc[1]:]
			if cc, nsn, ok := scanCountryCode(retry, table); ok {
				return cc, nsn, "", nil
			}
		}
		return 0, "", "", parseErr(ParseErrorKinds.InvalidCountryCode, normalized)
	}

	if defaultMeta == nil {
		return 0, normalized, "", nil
	}

	defaultCC := strconv.Itoa(defaultMeta.CountryCode)
	if strings.HasPrefix(normalized, defaultCC) {
		candidate := normalized[len(defaultCC):]
		stripped, carrier := maybeStripNationalPrefix(candidate, defaultMeta)

		fullMatches := defaultMeta.GeneralDesc.Matches(normalized)
		strippedMatches := defaultMeta.GeneralDesc.Matches(stripped)
		tooLong := defaultMeta.GeneralDesc.PossibleNumberPattern != nil &&
			!matchesUpTo(defaultMeta.GeneralDesc.PossibleNumberPattern, normalized)

		if (!fullMatches && strippedMatches) || tooLong {
			return defaultMeta.CountryCode, stripped, carrier, nil
		}
	}

	return defaultMeta.CountryCode, normalized, "", nil
}

func matchesUpTo(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

func scanCountryCode(s string, table map[int][]string) (int, string, bool) {
	for length := 1; length <= MaxLengthCountryCode; length++ {
		if length > len(s) {
			break
		}
		prefix := s[:length]
		n, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		if _, ok := table[n]; ok {
			return n, s[length:], true
		}
	}
	return 0, "", false
}

// maybeStripNationalPrefix implements spec.md §4.5. It returns the (possibly
// unchanged) NSN and the domestic carrier code, if any.
func maybeStripNationalPrefix(nsn string, region *metadata.RegionMetadata) (string, string) {
	if region == nil || region.NationalPrefixForParsing == nil || nsn == "" {
		return nsn, ""
	}
	anchored := anchoredAtStart(region.NationalPrefixForParsing)
	idx := anchored.FindStringSubmatchIndex(nsn)
	if idx == nil {
		return nsn, ""
	}

	matchEnd := idx[1]
	var carrierCode string
	if len(idx) >= 4 && idx[2] >= 0 {
		carrierCode = nsn[idx[2]:idx[3]]
	}

	lastGroupEmpty := true
	if len(idx) > 2 {
		last := len(idx)/2 - 1
		if idx[2*last] >= 0 && idx[2*last+1] > idx[2*last] {
			lastGroupEmpty = false
		}
	}

	var candidate string
	if region.NationalPrefixTransformRule == "" || lastGroupEmpty {
		candidate = nsn[matchEnd:]
	} else {
		expanded := region.NationalPrefixForParsing.ExpandString(nil, region.NationalPrefixTransformRule, nsn, idx)
		candidate = string(expanded) + nsn[matchEnd:]
	}

	if region.GeneralDesc != nil && region.GeneralDesc.NationalNumberPattern != nil {
		fullMatches := matchesUpTo(region.GeneralDesc.NationalNumberPattern, nsn)
		if fullMatches && !matchesUpTo(region.GeneralDesc.NationalNumberPattern, candidate) {
			return nsn, ""
		}
	}
	return candidate, carrierCode
}

// applyLeadingZero implements spec.md §4.8.
func applyLeadingZero(n *PhoneNumber, nsn string) {
	if len(nsn) <= 1 || nsn[0] != '0' {
		return
	}
	n.ItalianLeadingZero = true
	count := 0
	for count < len(nsn)-1 && nsn[count] == '0' {
		count++
	}
	if count > 1 {
		n.NumberOfLeadingZeros = count
	}
}
