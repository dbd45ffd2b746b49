package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/estiakahmed98/islami-dawa-production-sub001/timeutil"
)

func TestWeekBoundsMidweek(t *testing.T) {
	// Wednesday 2025-06-11.
	start, end := weekBounds(time.Date(2025, 6, 11, 12, 0, 0, 0, timeutil.Dhaka))
	assert.Equal(t, "2025-06-09", start)
	assert.Equal(t, "2025-06-15", end)
}

func TestWeekBoundsMondayIsItsOwnStart(t *testing.T) {
	start, end := weekBounds(time.Date(2025, 6, 9, 0, 0, 0, 0, timeutil.Dhaka))
	assert.Equal(t, "2025-06-09", start)
	assert.Equal(t, "2025-06-15", end)
}

func TestWeekBoundsSundayStaysInSameWeek(t *testing.T) {
	start, end := weekBounds(time.Date(2025, 6, 15, 23, 59, 0, 0, timeutil.Dhaka))
	assert.Equal(t, "2025-06-09", start)
	assert.Equal(t, "2025-06-15", end)
}

func TestWeekBoundsCrossesMonthBoundary(t *testing.T) {
	// Tuesday 2025-07-01 belongs to the week starting Monday 2025-06-30.
	start, end := weekBounds(time.Date(2025, 7, 1, 8, 0, 0, 0, timeutil.Dhaka))
	assert.Equal(t, "2025-06-30", start)
	assert.Equal(t, "2025-07-06", end)
}

func TestWeekBoundsAnchorsOnDhakaDay(t *testing.T) {
	// 2025-06-15 19:00 UTC is still Sunday in UTC but already Monday
	// 2025-06-16 01:00 in Dhaka, so the window must roll to the new week.
	utc := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)
	start, end := weekBounds(utc.In(timeutil.Dhaka))
	assert.Equal(t, "2025-06-16", start)
	assert.Equal(t, "2025-06-22", end)
}
