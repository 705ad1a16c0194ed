package billnumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	date := time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "INV/S1/20250101/001000", Format("S1", date, InitialSerial))
	assert.Equal(t, "INV/DHK/20251231/001057", Format("DHK", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 1057))
}

func TestParse(t *testing.T) {
	branch, date, serial, err := Parse("INV/S1/20250101/001000")
	require.NoError(t, err)

	assert.Equal(t, "S1", branch)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 1, date.Day())
	assert.Equal(t, 1000, serial)
}

func TestParseRoundTrip(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	branch, parsedDate, serial, err := Parse(Format("BR2", date, 1234))
	require.NoError(t, err)

	assert.Equal(t, "BR2", branch)
	assert.True(t, parsedDate.Equal(date))
	assert.Equal(t, 1234, serial)
}

func TestParseMalformed(t *testing.T) {
	cases := []string{
		"",
		"INV/S1/20250101",
		"XYZ/S1/20250101/001000",
		"INV/S1/2025-01-01/001000",
		"INV/S1/20250101/abc",
	}

	for _, c := range cases {
		_, _, _, err := Parse(c)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", c)
	}
}
