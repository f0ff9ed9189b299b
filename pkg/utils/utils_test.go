package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-09-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("  ")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("29/09/2025")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.Regexp(t, "^[A-Za-z0-9]+$", first)
	assert.NotEqual(t, first, second)
}
