package metadata

// Source is the thin external adapter spec.md §1/§6 calls for: it supplies
// raw metadata-document bytes and the static country-calling-code -> region
// table. The core never does file I/O; it only consumes what Source hands
// it. Callers may implement Source themselves (e.g. to fetch a newer
// document from disk or a config service) or use DefaultSource.
type Source interface {
	// Document returns the raw bytes of a phoneNumberMetadata document
	// (see rawDocument for the expected shape).
	Document() ([]byte, error)
	// CountryCallingCodes returns, for every known country calling code,
	// the ordered list of region codes that share it. The first entry in
	// each list is the main/canonical region for that code.
	CountryCallingCodes() map[int][]string
}

// rawDocument is the YAML shape of a phoneNumberMetadata document, matching
// spec.md §4.11's phoneNumberMetadata.territories.territory[] path.
type rawDocument struct {
	PhoneNumberMetadata struct {
		Territories struct {
			Territory []rawTerritory `yaml:"territory"`
		} `yaml:"territories"`
	} `yaml:"phoneNumberMetadata"`
}

type rawDescriptor struct {
	NationalNumberPattern string `yaml:"nationalNumberPattern"`
	PossibleNumberPattern string `yaml:"possibleNumberPattern"`
	ExampleNumber         string `yaml:"exampleNumber"`
}

type rawNumberFormat struct {
	Pattern                              string   `yaml:"pattern"`
	Format                                string   `yaml:"format"`
	LeadingDigits                         []string `yaml:"leadingDigits"`
	NationalPrefixFormattingRule          string   `yaml:"nationalPrefixFormattingRule"`
	NationalPrefixOptionalWhenFormatting  bool     `yaml:"nationalPrefixOptionalWhenFormatting"`
	CarrierCodeFormattingRule             string   `yaml:"carrierCodeFormattingRule"`
	// IntlFormat, when set to the literal "NA", suppresses this format from
	// the international format list (spec.md §4.11 step 2). When unset, the
	// national format is reused for international rendering but is not
	// separately appended to IntlNumberFormats (spec.md §9's "intlNumberFormats
	// is emptied when no explicit intl format was declared" quirk).
	IntlFormat string `yaml:"intlFormat"`
}

type rawTerritory struct {
	ID                          string `yaml:"id"`
	CountryCode                 string `yaml:"countryCode"`
	InternationalPrefix         string `yaml:"internationalPrefix"`
	PreferredInternationalPrefix string `yaml:"preferredInternationalPrefix"`
	NationalPrefix              string `yaml:"nationalPrefix"`
	NationalPrefixForParsing    string `yaml:"nationalPrefixForParsing"`
	NationalPrefixTransformRule string `yaml:"nationalPrefixTransformRule"`
	PreferredExtnPrefix         string `yaml:"preferredExtnPrefix"`
	LeadingDigits               string `yaml:"leadingDigits"`

	MainCountryForCode         bool `yaml:"mainCountryForCode"`
	LeadingZeroPossible        bool `yaml:"leadingZeroPossible"`
	MobileNumberPortableRegion bool `yaml:"mobileNumberPortableRegion"`

	GeneralDesc     *rawDescriptor `yaml:"generalDesc"`
	FixedLine       *rawDescriptor `yaml:"fixedLine"`
	Mobile          *rawDescriptor `yaml:"mobile"`
	TollFree        *rawDescriptor `yaml:"tollFree"`
	PremiumRate     *rawDescriptor `yaml:"premiumRate"`
	SharedCost      *rawDescriptor `yaml:"sharedCost"`
	VoIP            *rawDescriptor `yaml:"voip"`
	PersonalNumber  *rawDescriptor `yaml:"personalNumber"`
	Pager           *rawDescriptor `yaml:"pager"`
	UAN             *rawDescriptor `yaml:"uan"`
	Voicemail       *rawDescriptor `yaml:"voicemail"`
	NoIntlDialling  *rawDescriptor `yaml:"noInternationalDialling"`
	Emergency       *rawDescriptor `yaml:"emergency"`
	StandardRate    *rawDescriptor `yaml:"standardRate"`
	ShortCode       *rawDescriptor `yaml:"shortCode"`
	CarrierSpecific *rawDescriptor `yaml:"carrierSpecific"`

	AvailableFormats *struct {
		NumberFormat []rawNumberFormat `yaml:"numberFormat"`
	} `yaml:"availableFormats"`
}
