package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidClientCode(t *testing.T) {
	valid := []string{"TSV", "FNH", "KZLM", "ABC", "WXYZ"}
	for _, code := range valid {
		assert.True(t, IsValidClientCode(code), code)
	}

	invalid := []string{"", "TS", "TSVXX", "tsv", "T5V", "TS-", "ТСВ", " TSV"}
	for _, code := range invalid {
		assert.False(t, IsValidClientCode(code), code)
	}
}

func TestFormatDisplayID(t *testing.T) {
	assert.Equal(t, "T-TSV-001", FormatDisplayID(TicketIDLetter, "TSV", 1))
	assert.Equal(t, "V-FNH-042", FormatDisplayID(VulnerabilityIDLetter, "FNH", 42))
	assert.Equal(t, "T-TSV-999", FormatDisplayID(TicketIDLetter, "TSV", 999))

	// Padding grows past three digits instead of truncating
	assert.Equal(t, "T-TSV-1000", FormatDisplayID(TicketIDLetter, "TSV", 1000))
	assert.Equal(t, "V-KZLM-12345", FormatDisplayID(VulnerabilityIDLetter, "KZLM", 12345))
}

func TestDisplayIDPrefix(t *testing.T) {
	assert.Equal(t, "T-TSV-", DisplayIDPrefix(TicketIDLetter, "TSV"))
	assert.Equal(t, "V-FNH-", DisplayIDPrefix(VulnerabilityIDLetter, "FNH"))
}

func TestParseDisplayIDNumber(t *testing.T) {
	n, err := ParseDisplayIDNumber("T-TSV-001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = ParseDisplayIDNumber("V-KZLM-1000")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)

	for _, bad := range []string{"", "T-TSV-", "T-TSV-abc", "TTSV001"} {
		_, err := ParseDisplayIDNumber(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	// Numbering must parse back numerically: "9" never outranks "10"
	a, err := ParseDisplayIDNumber(FormatDisplayID(TicketIDLetter, "TSV", 9))
	require.NoError(t, err)
	b, err := ParseDisplayIDNumber(FormatDisplayID(TicketIDLetter, "TSV", 10))
	require.NoError(t, err)
	assert.Less(t, a, b)
}
