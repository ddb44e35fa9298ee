package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15.03.2026")
	assert.Error(t, err)
}

func TestParseDatePtr(t *testing.T) {
	d, err := ParseDatePtr(nil)
	require.NoError(t, err)
	assert.Nil(t, d)

	empty := ""
	d, err = ParseDatePtr(&empty)
	require.NoError(t, err)
	assert.Nil(t, d)

	value := "2026-01-02"
	d, err = ParseDatePtr(&value)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 2026, d.Year())

	bad := "not-a-date"
	_, err = ParseDatePtr(&bad)
	assert.Error(t, err)
}
