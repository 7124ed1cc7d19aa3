// Package agenda implements the daily timeline layout engine: recurrence
// expansion, day aggregation, overlap grouping, column packing, and
// coordinate mapping. Every function here is pure and safe to call once per
// render pass.
package agenda

import (
	"fmt"
	"time"

	"github.com/pbarbosa/vida/internal/domain"
)

// Expand materializes a recurrence rule for a single calendar date.
// It returns nil when the rule does not produce an instance on that date:
// the weekday is not covered, the date is listed as an exception, or the
// rule's clock times are malformed or yield a non-positive duration.
// Malformed rules fail closed rather than loud so one bad record can never
// take down the agenda.
//
// The result is deterministic: repeated calls for the same (rule, date)
// yield identical output, including the derived id "fixed:<ruleID>:<date>".
func Expand(rule domain.RecurrenceRule, date time.Time) *domain.TimeBoxedItem {
	if !rule.OnWeekday(date.Weekday()) {
		return nil
	}

	dateStr := domain.DateString(date)
	if rule.ExceptsDate(dateStr) {
		return nil
	}

	startMin, ok := parseClock(rule.StartTimeOfDay)
	if !ok {
		return nil
	}
	endMin, ok := parseClock(rule.EndTimeOfDay)
	if !ok {
		return nil
	}
	duration := endMin - startMin
	if duration <= 0 {
		return nil
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		startMin/60, startMin%60, 0, 0, date.Location())

	return &domain.TimeBoxedItem{
		ID:          fmt.Sprintf("fixed:%s:%s", rule.ID, dateStr),
		Title:       rule.Title,
		Start:       start,
		DurationMin: duration,
		Category:    domain.CategoryFixed,
		Source:      domain.SourceRecurrence,
	}
}

// parseClock parses an HH:MM clock time into minutes past midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// CombineDateAndClock anchors an HH:MM clock time onto the given date, in
// the date's location. Used for AI suggestion times and goal reminders.
func CombineDateAndClock(date time.Time, clock string) (time.Time, bool) {
	min, ok := parseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		min/60, min%60, 0, 0, date.Location()), true
}
