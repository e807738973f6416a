package utils

import "time"

// StartOfDay returns 00:00:00 on the given date, in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given date. AddDate keeps the
// result on the same calendar day across DST transitions, where the day is
// not 24 hours long.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DayRange returns the [start, end] window covering the given date.
func DayRange(t time.Time) (time.Time, time.Time) {
	return StartOfDay(t), EndOfDay(t)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
