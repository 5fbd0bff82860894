package phonenumber

// Size and numbering-plan constants, spec.md §6.
const (
	MaxInputStringLength = 250
	MaxLengthCountryCode = 3
	MinLengthForNSN      = 2
	MaxLengthForNSN      = 17

	NANPACountryCode          = 1
	RegionCodeForNonGeoEntity = "001"
	UnknownRegion             = "ZZ"

	DefaultExtnPrefix = " ext. "
)

// RFC 3966 markers, spec.md §6.
const (
	rfc3966Prefix        = "tel:"
	rfc3966PhoneContext  = ";phone-context="
	rfc3966ISDNSubaddr   = ";isub="
	rfc3966ExtnPrefix    = ";ext="
)
