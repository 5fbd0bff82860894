package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "034426486479", Normalize("034-I-am-HUNGRY"))
	assert.Equal(t, "03456234", Normalize("034-56&+#2­34"))
	assert.Equal(t, "520", Normalize("۵2۰"))
}

func TestNormalizeIdempotent(t *testing.T) {
	cases := []string{"034-I-am-HUNGRY", "+1 (650) 253-0000", "۵2۰"}
	for _, c := range cases {
		once := Normalize(c)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestExtractPossibleNumber(t *testing.T) {
	assert.Equal(t, "0800 FOR PIZZA", ExtractPossibleNumber("Tel:0800 FOR PIZZA"))
	assert.Equal(t, "650) 253-0000", ExtractPossibleNumber("(650) 253-0000..- .."))
}

func TestIsViablePhoneNumber(t *testing.T) {
	assert.True(t, IsViablePhoneNumber("111"))
	assert.False(t, IsViablePhoneNumber("08-PIZZA"))
	assert.False(t, IsViablePhoneNumber("a"))
}

func TestExtractExtension(t *testing.T) {
	rest, ext := ExtractExtension("5103628154x1234")
	assert.Equal(t, "5103628154", rest)
	assert.Equal(t, "1234", ext)

	rest, ext = ExtractExtension("650-253-0000")
	assert.Equal(t, "650-253-0000", rest)
	assert.Equal(t, "", ext)
}
