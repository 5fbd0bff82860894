package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger() logger { return newLogger(zap.NewNop()) }

func TestLoadUS(t *testing.T) {
	doc, err := DefaultSource().Document()
	require.NoError(t, err)

	m, err := Load(doc, "US", testLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, m.CountryCode)
	assert.True(t, m.MainCountryForCode)
	assert.True(t, m.GeneralDesc.Matches("6502530000"))
	assert.False(t, m.GeneralDesc.Matches("650253000"))
	assert.True(t, m.SameMobileAndFixedLinePattern)
}

func TestLoadNonGeographic(t *testing.T) {
	doc, err := DefaultSource().Document()
	require.NoError(t, err)

	m, err := Load(doc, "001", testLogger())
	require.NoError(t, err)
	assert.Equal(t, 800, m.CountryCode)
	assert.True(t, m.LeadingZeroPossible)
	assert.True(t, m.TollFree.Matches("12345678"))
}

func TestLoadUnknownRegion(t *testing.T) {
	doc, err := DefaultSource().Document()
	require.NoError(t, err)

	_, err = Load(doc, "ZZ", testLogger())
	assert.Error(t, err)
}

func TestCompileRegexCoercesMalformed(t *testing.T) {
	re := compileRegex(`(\d{3}|)`, testLogger())
	assert.Nil(t, re)
}

func TestCacheMemoizes(t *testing.T) {
	c := NewCache(DefaultSource(), zap.NewNop())
	m1, err := c.Region("US")
	require.NoError(t, err)
	m2, err := c.Region("US")
	require.NoError(t, err)
	assert.Same(t, m1, m2)
}
