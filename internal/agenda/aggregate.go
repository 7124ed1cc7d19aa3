package agenda

import (
	"sort"
	"time"

	"github.com/pbarbosa/vida/internal/domain"
)

// reminderClock is the canonical time of day for derived goal reminders.
const reminderClock = "09:00"

// ItemsForDay merges every source of agenda entries for one calendar date
// into a single list sorted ascending by start instant. Ties are broken by
// source order — appointments, then expanded fixed rules, then goal
// reminders, then due tasks, then AI items — which keeps rendering stable
// but has no bearing on overlap correctness.
//
// The aggregator trusts its inputs: validation happens at the record
// services, not here.
func ItemsForDay(
	date time.Time,
	appointments []domain.Appointment,
	rules []domain.RecurrenceRule,
	tasks []domain.Task,
	goals []domain.Goal,
	aiItems []domain.TimeBoxedItem,
) []domain.TimeBoxedItem {
	items := make([]domain.TimeBoxedItem, 0,
		len(appointments)+len(rules)+len(goals)+len(tasks)+len(aiItems))

	for _, a := range appointments {
		if !domain.SameDay(date, a.Start) {
			continue
		}
		items = append(items, domain.TimeBoxedItem{
			ID:          a.ID,
			Title:       a.Title,
			Start:       a.Start,
			DurationMin: a.DurationMin,
			Category:    domain.CategoryAppointment,
			Source:      domain.SourceUser,
		})
	}

	for _, r := range rules {
		if it := Expand(r, date); it != nil {
			items = append(items, *it)
		}
	}

	for _, g := range goals {
		if g.CurrentProgress >= g.TargetValue {
			continue
		}
		start, ok := CombineDateAndClock(date, reminderClock)
		if !ok {
			continue
		}
		items = append(items, domain.TimeBoxedItem{
			ID:       "goal-reminder:" + g.ID,
			Title:    "Reminder: " + g.Name,
			Start:    start,
			Category: domain.CategoryReminder,
			Source:   domain.SourceGoal,
		})
	}

	for _, t := range tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}
		if !domain.SameDay(date, *t.DueDate) {
			continue
		}
		items = append(items, domain.TimeBoxedItem{
			ID:       "task:" + t.ID,
			Title:    "Task due: " + t.Title,
			Start:    t.DueDate.In(date.Location()),
			Category: domain.CategoryTask,
			Source:   domain.SourceTask,
		})
	}

	items = append(items, aiItems...)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.Before(items[j].Start)
	})
	return items
}
