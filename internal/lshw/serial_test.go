package lshw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeSerial(t *testing.T) {
	denied := []string{
		"unknown", "none", "n/a", "na", "null",
		"0", "0000000", "00000000", "000000000", "not specified",
	}
	for _, s := range denied {
		assert.False(t, LooksLikeSerial(s), s)
		assert.False(t, LooksLikeSerial(strings.ToUpper(s)), "deny list is case-insensitive: %s", s)
	}

	assert.False(t, LooksLikeSerial(""))
	assert.False(t, LooksLikeSerial("   "))
	assert.False(t, LooksLikeSerial("abc12"), "shorter than 6 chars after trimming")
	assert.False(t, LooksLikeSerial("  ab12  "))

	assert.True(t, LooksLikeSerial("95CS1108TBZW"))
	assert.True(t, LooksLikeSerial("  WD-WCC4N1234567  "))
	assert.True(t, LooksLikeSerial("abc123"))
}

func TestSyntheticSerialDeterminism(t *testing.T) {
	a := syntheticSerial("/dev/sda", float64(500107862016), "TOSHIBA THNSFJ25")
	b := syntheticSerial("/dev/sda", float64(500107862016), "TOSHIBA THNSFJ25")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, SyntheticPrefix))
	assert.Len(t, a, len(SyntheticPrefix)+12)

	c := syntheticSerial("/dev/sdb", float64(500107862016), "TOSHIBA THNSFJ25")
	assert.NotEqual(t, a, c)

	// nil fields still hash deterministically
	d := syntheticSerial(nil, nil, "")
	assert.Equal(t, d, syntheticSerial(nil, nil, ""))
}
