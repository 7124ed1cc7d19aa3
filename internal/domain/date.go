package domain

import "time"

// DateLayout is the canonical calendar-date format used for derived ids,
// exception dates, and per-day log keys.
const DateLayout = "2006-01-02"

// DateString returns t's calendar date as YYYY-MM-DD in t's own location.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether two instants fall on the same calendar date when
// both are viewed in a's location.
func SameDay(a, b time.Time) bool {
	return DateString(a) == DateString(b.In(a.Location()))
}
