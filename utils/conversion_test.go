package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToClock(0))
	assert.Equal(t, "09:05", MinutesToClock(545))
	assert.Equal(t, "17:00", MinutesToClock(1020))
	assert.Equal(t, "00:00", MinutesToClock(-10))
}

func TestClockToMinutes(t *testing.T) {
	mins, err := ClockToMinutes("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, mins)

	mins, err = ClockToMinutes("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, mins)

	_, err = ClockToMinutes("930")
	assert.Error(t, err)
	_, err = ClockToMinutes("24:00")
	assert.Error(t, err)
	_, err = ClockToMinutes("12:60")
	assert.Error(t, err)
}

func TestMinutesToLabel(t *testing.T) {
	assert.Equal(t, "12:00 AM", MinutesToLabel(0))
	assert.Equal(t, "9:00 AM", MinutesToLabel(540))
	assert.Equal(t, "12:00 PM", MinutesToLabel(720))
	assert.Equal(t, "5:30 PM", MinutesToLabel(1050))
}

func TestIntervalLabel(t *testing.T) {
	assert.Equal(t, "9:00 AM - 10:30 AM", IntervalLabel(540, 630))
}
