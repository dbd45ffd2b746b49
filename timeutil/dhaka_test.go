package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindowSpansDhakaDay(t *testing.T) {
	// 2025-06-10 01:30 Dhaka time is still 2025-06-09 19:30 UTC.
	utc := time.Date(2025, 6, 9, 19, 30, 0, 0, time.UTC)
	start, end := DayWindow(utc)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, Dhaka), start)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, Dhaka), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestDayWindowContainsInstant(t *testing.T) {
	now := time.Now()
	start, end := DayWindow(now)
	assert.False(t, now.Before(start))
	assert.True(t, now.Before(end))
}

func TestDateKeyUsesDhakaCalendar(t *testing.T) {
	// 23:30 UTC is already the next day in Dhaka.
	utc := time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-10", DateKey(utc))

	noon := time.Date(2025, 6, 9, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-09", DateKey(noon))
}
