package phonenumber

import "github.com/go-playground/validator/v10"

var configValidator = validator.New()

// ParseConfig is the explicit configuration struct spec.md §9 calls for in
// place of the source's option-bag constructors.
type ParseConfig struct {
	// DefaultRegion is used whenever the input carries no country code of
	// its own. Defaults to "US" when empty.
	DefaultRegion string `validate:"omitempty,len=2"`
	// KeepRawInput preserves RawInput and PreferredDomesticCarrierCode on
	// the returned PhoneNumber. CountryCodeSource is set with or without it.
	KeepRawInput bool
	// CheckRegion, when true, rejects a DefaultRegion that metadata has no
	// entry for instead of silently falling through to FromDefaultCountry
	// assignment with unusable metadata.
	CheckRegion bool
}

// NewParseConfig returns a ParseConfig defaulting to region "US".
func NewParseConfig() ParseConfig {
	return ParseConfig{DefaultRegion: "US"}
}

func (c ParseConfig) normalize() (ParseConfig, error) {
	if c.DefaultRegion == "" {
		c.DefaultRegion = "US"
	}
	if err := configValidator.Struct(c); err != nil {
		return c, err
	}
	return c, nil
}
