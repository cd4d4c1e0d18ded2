package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)

	_, err = ParseDate("2025-06")
	assert.Error(t, err)
}

func TestParseMonthOrDate(t *testing.T) {
	// A bare month normalizes to the first of the month.
	got, err := ParseMonthOrDate("2025-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseMonthOrDate("2025-06-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseMonthOrDate("2025-13")
	assert.Error(t, err)

	_, err = ParseMonthOrDate("06-2025")
	assert.Error(t, err)
}
