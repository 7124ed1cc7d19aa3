package importer

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/pbarbosa/vida/internal/domain"
)

// Cap on occurrences per recurring event so a runaway RRULE cannot flood
// the store.
const maxOccurrencesPerEvent = 1000

// Appointments expands parsed events into concrete appointments inside the
// [from, to] window. Recurring events honor their EXDATEs; all-day events
// are skipped (the agenda timeline holds timed entries only). Appointment
// ids derive from the event UID and occurrence start, so re-importing the
// same file yields the same ids.
func Appointments(events []Event, from, to time.Time) []domain.Appointment {
	out := []domain.Appointment{}
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		if ev.RawRRule == "" {
			if ev.Start.Before(from) || ev.Start.After(to) {
				continue
			}
			out = append(out, appointment(ev, ev.Start))
			continue
		}
		out = append(out, expandRecurring(ev, from, to)...)
	}
	return out
}

func expandRecurring(ev Event, from, to time.Time) []domain.Appointment {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		// Malformed rule: skip the event rather than failing the import.
		return nil
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	starts := set.Between(from.In(ev.Start.Location()), to.In(ev.Start.Location()), true)
	if len(starts) > maxOccurrencesPerEvent {
		starts = starts[:maxOccurrencesPerEvent]
	}

	out := make([]domain.Appointment, 0, len(starts))
	for _, start := range starts {
		out = append(out, appointment(ev, start))
	}
	return out
}

func appointment(ev Event, start time.Time) domain.Appointment {
	durationMin := int(ev.End.Sub(ev.Start).Minutes())
	if durationMin < 0 {
		durationMin = 0
	}
	return domain.Appointment{
		ID:          fmt.Sprintf("ics:%s:%s", ev.UID, start.UTC().Format(time.RFC3339)),
		Title:       ev.Summary,
		Start:       start,
		DurationMin: durationMin,
		Location:    ev.Location,
		Description: ev.Description,
	}
}
