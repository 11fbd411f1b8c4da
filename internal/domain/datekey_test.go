package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey_UsesWallClockDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	// 23:30 local is still the same local day even though UTC has rolled over.
	ts := time.Date(2025, 6, 15, 23, 30, 0, 0, loc)
	assert.Equal(t, "2025-06-15", DateKey(ts))
}

func TestParseDateKey_RoundTrip(t *testing.T) {
	day, err := ParseDateKey("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", DateKey(day))

	_, err = ParseDateKey("15.06.2025")
	assert.Error(t, err)
}

func TestMinutesOfDay(t *testing.T) {
	m, err := MinutesOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	_, err = MinutesOfDay("8 Uhr")
	assert.Error(t, err)
}
