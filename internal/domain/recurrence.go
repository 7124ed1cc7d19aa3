package domain

import "time"

// RecurrenceRule defines a weekly recurring "fixed" appointment: a
// commitment that materializes on every matching weekday unless the date is
// listed as an exception. Rules are durable user-owned records; their
// concrete day instances are always derived, never stored.
type RecurrenceRule struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Location       string         `json:"location,omitempty"`
	DaysOfWeek     []time.Weekday `json:"daysOfWeek"`
	StartTimeOfDay string         `json:"startTimeOfDay"` // HH:MM
	EndTimeOfDay   string         `json:"endTimeOfDay"`   // HH:MM
	ExceptionDates []string       `json:"exceptionDates,omitempty"` // YYYY-MM-DD
}

// OnWeekday reports whether the rule is active on the given weekday.
func (r RecurrenceRule) OnWeekday(d time.Weekday) bool {
	for _, w := range r.DaysOfWeek {
		if w == d {
			return true
		}
	}
	return false
}

// ExceptsDate reports whether the given YYYY-MM-DD date is excluded.
func (r RecurrenceRule) ExceptsDate(date string) bool {
	for _, d := range r.ExceptionDates {
		if d == date {
			return true
		}
	}
	return false
}
