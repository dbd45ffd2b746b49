package timeutil

import "time"

// Dhaka is the reporting timezone. Bangladesh has no DST, so a fixed UTC+6
// offset is exact and avoids a tzdata dependency at runtime.
var Dhaka = time.FixedZone("Asia/Dhaka", 6*60*60)

// DayWindow returns the [start, end) bounds of t's calendar day in Dhaka
// time. Used by the one-submission-per-day gate.
func DayWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(Dhaka)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Dhaka)
	return start, start.AddDate(0, 0, 1)
}

// DateKey formats t as yyyy-mm-dd in Dhaka time.
func DateKey(t time.Time) string {
	return t.In(Dhaka).Format("2006-01-02")
}
