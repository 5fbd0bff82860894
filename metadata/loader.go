package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError reports a malformed metadata document or an unknown region,
// following the teacher's var-block sentinel-error convention (at.go).
type LoadError struct {
	Region string
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("metadata: %s: %s", e.Region, e.Reason)
}

var whitespaceCollapse = regexp.MustCompile(`\s+`)

// compileRegex validates and compiles a metadata-document regex. Per
// spec.md §4.11/§7, a syntactically invalid pattern (detected with the
// "|)" heuristic the source document family uses to flag corruption, or any
// pattern regexp itself rejects) never errors out of the loader — it
// becomes a nil *regexp.Regexp, which NumberDescriptor.Matches and
// NumberFormat.MatchesLeadingDigits already treat as "never matches".
func compileRegex(pattern string, log logger) *regexp.Regexp {
	if pattern == "" || pattern == "NA" {
		return nil
	}
	collapsed := whitespaceCollapse.ReplaceAllString(strings.TrimSpace(pattern), "")
	if strings.Contains(collapsed, "|)") {
		log.malformedPattern(pattern)
		return nil
	}
	re, err := regexp.Compile(collapsed)
	if err != nil {
		log.malformedPattern(pattern)
		return nil
	}
	return re
}

// loadDescriptor builds a descriptor from raw, taking any field raw leaves
// empty from general. A nil raw (the type is absent from the document)
// yields a descriptor that never matches.
func loadDescriptor(raw, general *rawDescriptor, log logger) *NumberDescriptor {
	if raw == nil {
		return &NumberDescriptor{}
	}
	nnp, pnp, ex := raw.NationalNumberPattern, raw.PossibleNumberPattern, raw.ExampleNumber
	if general != nil {
		if nnp == "" {
			nnp = general.NationalNumberPattern
		}
		if pnp == "" {
			pnp = general.PossibleNumberPattern
		}
		if ex == "" {
			ex = general.ExampleNumber
		}
	}
	if nnp == "" && pnp == "" {
		return &NumberDescriptor{}
	}
	return &NumberDescriptor{
		NationalNumberPattern: compileRegex(nnp, log),
		PossibleNumberPattern: compileRegex(pnp, log),
		ExampleNumber:         ex,
	}
}

// npFormattingRule substitutes $NP -> nationalPrefix and $FG -> the
// first-group backreference, as spec.md §3's NumberFormat entry describes.
func npFormattingRule(rule, nationalPrefix string) string {
	rule = strings.ReplaceAll(rule, "$NP", nationalPrefix)
	rule = strings.ReplaceAll(rule, "$FG", "$1")
	return rule
}

func loadFormats(territory *rawTerritory, log logger) (national, intl []*NumberFormat) {
	if territory.AvailableFormats == nil {
		return nil, nil
	}
	for _, raw := range territory.AvailableFormats.NumberFormat {
		npRule := raw.NationalPrefixFormattingRule
		if npRule != "" {
			npRule = npFormattingRule(npRule, territory.NationalPrefix)
		}
		ccRule := raw.CarrierCodeFormattingRule
		if ccRule != "" {
			ccRule = strings.ReplaceAll(ccRule, "$FG", "$1")
		}

		leading := make([]*regexp.Regexp, 0, len(raw.LeadingDigits))
		for _, ld := range raw.LeadingDigits {
			leading = append(leading, compileRegex(ld, log))
		}

		nf := &NumberFormat{
			Pattern:                           compileRegex(raw.Pattern, log),
			Format:                            raw.Format,
			LeadingDigitsPatterns:             leading,
			NationalPrefixFormattingRule:      npRule,
			NationalPrefixOptionalWhenFormat:  raw.NationalPrefixOptionalWhenFormatting,
			DomesticCarrierCodeFormattingRule: ccRule,
		}
		national = append(national, nf)

		// intlFormat == "" or "NA" both mean "no explicit intl rendering
		// for this entry": it still formats nationally, but contributes
		// nothing to IntlNumberFormats, per spec.md §4.11/§9's verbatim
		// quirk that intlNumberFormats is emptied absent an explicit,
		// different intl format.
		if raw.IntlFormat != "" && raw.IntlFormat != "NA" {
			intlNf := *nf
			intlNf.Pattern = compileRegex(raw.Pattern, log)
			intlNf.Format = raw.IntlFormat
			intl = append(intl, &intlNf)
		}
	}
	return national, intl
}

// Load parses doc and builds the RegionMetadata for region, matching the
// territory whose id equals region or, for non-geographic entities, whose
// countryCode equals region (spec.md §4.11).
func Load(doc []byte, region string, log logger) (*RegionMetadata, error) {
	var parsed rawDocument
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return nil, &LoadError{Region: region, Reason: "invalid document: " + err.Error()}
	}

	var territory *rawTerritory
	for i := range parsed.PhoneNumberMetadata.Territories.Territory {
		t := &parsed.PhoneNumberMetadata.Territories.Territory[i]
		if t.ID == region || t.CountryCode == region {
			territory = t
			break
		}
	}
	if territory == nil {
		return nil, &LoadError{Region: region, Reason: "unknown region"}
	}

	var cc int
	fmt.Sscanf(territory.CountryCode, "%d", &cc)

	general := loadDescriptor(territory.GeneralDesc, nil, log)
	var generalRaw *rawDescriptor
	if territory.GeneralDesc != nil {
		generalRaw = territory.GeneralDesc
	} else {
		generalRaw = &rawDescriptor{}
	}

	national, intl := loadFormats(territory, log)

	// fixedLine and mobile inherit generalDesc wholesale when absent; every
	// other type left out of the document never matches.
	fixedRaw, mobileRaw := territory.FixedLine, territory.Mobile
	if fixedRaw == nil {
		fixedRaw = &rawDescriptor{}
	}
	if mobileRaw == nil {
		mobileRaw = &rawDescriptor{}
	}
	fixedLine := loadDescriptor(fixedRaw, generalRaw, log)
	mobile := loadDescriptor(mobileRaw, generalRaw, log)

	m := &RegionMetadata{
		ID:                  territory.ID,
		CountryCode:         cc,
		InternationalPrefix: compileRegex(territory.InternationalPrefix, log),
		PreferredIntlPrefix: territory.PreferredInternationalPrefix,
		NationalPrefix:      territory.NationalPrefix,
		PreferredExtnPrefix: territory.PreferredExtnPrefix,
		LeadingDigits:       compileRegex(territory.LeadingDigits, log),

		MainCountryForCode:         territory.MainCountryForCode,
		LeadingZeroPossible:        territory.LeadingZeroPossible,
		MobileNumberPortableRegion: territory.MobileNumberPortableRegion,

		GeneralDesc:     general,
		FixedLine:       fixedLine,
		Mobile:          mobile,
		TollFree:        loadDescriptor(territory.TollFree, generalRaw, log),
		PremiumRate:     loadDescriptor(territory.PremiumRate, generalRaw, log),
		SharedCost:      loadDescriptor(territory.SharedCost, generalRaw, log),
		VoIP:            loadDescriptor(territory.VoIP, generalRaw, log),
		PersonalNumber:  loadDescriptor(territory.PersonalNumber, generalRaw, log),
		Pager:           loadDescriptor(territory.Pager, generalRaw, log),
		UAN:             loadDescriptor(territory.UAN, generalRaw, log),
		Voicemail:       loadDescriptor(territory.Voicemail, generalRaw, log),
		NoIntlDialling:  loadDescriptor(territory.NoIntlDialling, generalRaw, log),
		Emergency:       loadDescriptor(territory.Emergency, generalRaw, log),
		StandardRate:    loadDescriptor(territory.StandardRate, generalRaw, log),
		ShortCode:       loadDescriptor(territory.ShortCode, generalRaw, log),
		CarrierSpecific: loadDescriptor(territory.CarrierSpecific, generalRaw, log),

		NumberFormats:     national,
		IntlNumberFormats: intl,
	}

	nfp := territory.NationalPrefixForParsing
	if nfp == "" {
		nfp = territory.NationalPrefix
	}
	m.NationalPrefixForParsing = compileRegex(nfp, log)
	m.NationalPrefixTransformRule = territory.NationalPrefixTransformRule

	if fixedLine.NationalNumberPattern != nil && mobile.NationalNumberPattern != nil {
		m.SameMobileAndFixedLinePattern = fixedLine.NationalNumberPattern.String() == mobile.NationalNumberPattern.String()
	}

	return m, nil
}
