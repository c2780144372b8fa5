package timeutil

import "time"

// Weekday returns the day of week as an int, 0=Sunday through 6=Saturday.
// Rule configs store day lists in this numbering.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// MinutesOfDay returns hour*60+minute for wall-clock comparisons.
// Seconds and smaller units are ignored.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates an instant to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AtTime returns the instant on t's calendar date at the given wall-clock
// hour and minute.
func AtTime(t time.Time, hour, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, t.Location())
}

// FirstMondayOfMonth reports whether t falls on the first Monday of its month.
func FirstMondayOfMonth(t time.Time) bool {
	return t.Weekday() == time.Monday && t.Day() <= 7
}
