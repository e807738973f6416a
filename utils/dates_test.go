package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayRange(t *testing.T) {
	noon := time.Date(2024, 1, 15, 12, 34, 56, 789, time.Local)

	start, end := DayRange(noon)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), start)
	assert.True(t, end.After(noon))
	assert.True(t, end.Before(start.Add(24*time.Hour)))
	assert.True(t, SameDay(start, end))
}

func TestEndOfDayStaysOnShortDSTDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 2024-03-10 springs forward in New York; the day is only 23 hours
	noon := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
	end := EndOfDay(noon)

	assert.Equal(t, 10, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, SameDay(noon, end))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)
	night := time.Date(2024, 1, 15, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2024, 1, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}
