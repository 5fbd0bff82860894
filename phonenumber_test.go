package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNANPALocal(t *testing.T) {
	n, err := Parse("1-650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
	assert.False(t, n.ItalianLeadingZero)
}

func TestParseIDDToNonGeoEntity(t *testing.T) {
	n, err := Parse("011 800 1234 5678", "US")
	require.NoError(t, err)
	assert.Equal(t, 800, n.CountryCode)
	assert.Equal(t, uint64(12345678), n.NationalNumber)
	assert.Equal(t, CountryCodeSources.FromNumberWithIDD, n.CountryCodeSource)
}

func TestParseRFC3966WithNonNumericPhoneContext(t *testing.T) {
	n, err := Parse("tel:253-0000;phone-context=www.google.com", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(2530000), n.NationalNumber)
}

func TestParseRejectsEmptyAndOversizedInput(t *testing.T) {
	_, err := Parse("", "US")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ParseErrorKinds.NotANumber, perr.Kind)

	oversized := make([]byte, MaxInputStringLength+1)
	for i := range oversized {
		oversized[i] = '1'
	}
	_, err = Parse(string(oversized), "US")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ParseErrorKinds.TooLong, perr.Kind)
}

func TestFormatNational(t *testing.T) {
	n := PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}
	assert.Equal(t, "(650) 253-0000", FormatNumber(n, Formats.National))
}

func TestFormatE164AndInternational(t *testing.T) {
	n := PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}
	assert.Equal(t, "+1(650) 253-0000", FormatNumber(n, Formats.E164))
	assert.Equal(t, "+1 (650) 253-0000", FormatNumber(n, Formats.International))
}

func TestFormatRFC3966CollapsesPunctuation(t *testing.T) {
	n := PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}
	assert.Equal(t, "tel:+1-650-253-0000", FormatNumber(n, Formats.RFC3966))
}

func TestFormatAppliesNationalPrefixFormattingRule(t *testing.T) {
	n := PhoneNumber{CountryCode: 44, NationalNumber: 2079460018}
	assert.Equal(t, "020 7946 0018", FormatNumber(n, Formats.National))
}

func TestFormatZeroCountryCodeReturnsRawInput(t *testing.T) {
	n := PhoneNumber{RawInput: "not a number"}
	assert.Equal(t, "not a number", FormatNumber(n, Formats.E164))
}

func TestRoundTripParseFormat(t *testing.T) {
	original, err := Parse("+44 20 7946 0018", "GB")
	require.NoError(t, err)

	e164 := FormatNumber(original, Formats.E164)
	reparsed, err := Parse(e164, "US")
	require.NoError(t, err)

	assert.Equal(t, original.CountryCode, reparsed.CountryCode)
	assert.Equal(t, original.NationalNumber, reparsed.NationalNumber)
}

func TestGetRegionCodeForCountryCode(t *testing.T) {
	assert.Equal(t, "US", GetRegionCodeForCountryCode(1))
	assert.Equal(t, UnknownRegion, GetRegionCodeForCountryCode(999))
}

func TestIsLeadingZeroPossible(t *testing.T) {
	assert.True(t, IsLeadingZeroPossible(39))
	assert.False(t, IsLeadingZeroPossible(1))
}

func TestIsNANPACountry(t *testing.T) {
	assert.True(t, IsNANPACountry("US"))
	assert.True(t, IsNANPACountry("CA"))
	assert.False(t, IsNANPACountry("GB"))
}

func TestGetNationalSignificantNumberReprefixesLeadingZeros(t *testing.T) {
	n := PhoneNumber{
		CountryCode:          39,
		NationalNumber:       312345678,
		ItalianLeadingZero:   true,
		NumberOfLeadingZeros: 1,
	}
	assert.Equal(t, "0312345678", GetNationalSignificantNumber(n))
}

func TestGetNumberTypeAndValidity(t *testing.T) {
	mobile, err := Parse("7911123456", "GB")
	require.NoError(t, err)
	assert.Equal(t, PhoneNumberTypes.Mobile, GetNumberType(mobile))
	assert.True(t, IsValidNumber(mobile))

	tooShort := PhoneNumber{CountryCode: 1, NationalNumber: 5}
	assert.Equal(t, PhoneNumberTypes.Unknown, GetNumberType(tooShort))
	assert.False(t, IsValidNumber(tooShort))
}

func TestIsValidNumberForRegionRejectsMismatchedCountry(t *testing.T) {
	n := PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}
	assert.True(t, IsValidNumberForRegion(n, "US"))
	assert.False(t, IsValidNumberForRegion(n, "GB"))
}

func TestFormatOutOfCountryFromNANPASibling(t *testing.T) {
	n := PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}
	assert.Equal(t, "1 (650) 253-0000", FormatOutOfCountry(n, "CA"))
}

func TestFormatOutOfCountryUsesInternationalPrefix(t *testing.T) {
	n := PhoneNumber{CountryCode: 44, NationalNumber: 2079460018}
	assert.Equal(t, "011 44 20 7946 0018", FormatOutOfCountry(n, "US"))
}

func TestIsViablePhoneNumber(t *testing.T) {
	assert.True(t, IsViablePhoneNumber("+1 650-253-0000"))
	assert.False(t, IsViablePhoneNumber("abc"))
}
