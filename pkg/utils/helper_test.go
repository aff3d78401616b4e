package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 7, ParseInt("7", 0, 0))
	assert.Equal(t, 3, ParseInt("", 3, 0))
	assert.Equal(t, 3, ParseInt("abc", 3, 0))
	assert.Equal(t, 3, ParseInt("-1", 3, 0))
	assert.Equal(t, 0, ParseInt("0", 3, 0))
}

func TestParseFloat(t *testing.T) {
	value, ok := ParseFloat("8.5")
	require.True(t, ok)
	assert.Equal(t, 8.5, value)

	_, ok = ParseFloat("")
	assert.False(t, ok)

	_, ok = ParseFloat("eight")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	value, ok := ParseDate("2010-07-16")
	require.True(t, ok)
	assert.Equal(t, time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC), value)

	_, ok = ParseDate("")
	assert.False(t, ok)

	_, ok = ParseDate("16/07/2010")
	assert.False(t, ok)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"Sci-Fi", "Crime"}, SplitCSV("Sci-Fi, Crime"))
	assert.Equal(t, []string{"Drama"}, SplitCSV("Drama"))
	assert.Nil(t, SplitCSV(" , ,"))
	assert.Nil(t, SplitCSV(""))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(5, 2))
	assert.Equal(t, 1, CalculateTotalPages(2, 2))
	assert.Equal(t, 0, CalculateTotalPages(0, 2))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}
