package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/pbarbosa/vida/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithCompleted(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
		t.CompletedAt = &at
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Priority:  domain.PriorityMedium,
		CreatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Habit options
type HabitOption func(*domain.Habit)

func WithDailyGoal(goal float64, unit string) HabitOption {
	return func(h *domain.Habit) {
		h.Kind = domain.HabitQuantitative
		h.DailyGoal = goal
		h.ProgressUnit = unit
	}
}

func WithFrequency(f domain.Frequency) HabitOption {
	return func(h *domain.Habit) {
		h.Frequency = f
	}
}

func NewTestHabit(name string, opts ...HabitOption) *domain.Habit {
	h := &domain.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Frequency: domain.FrequencyDaily,
		Kind:      domain.HabitConclusive,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Goal options
type GoalOption func(*domain.Goal)

func WithProgress(current float64) GoalOption {
	return func(g *domain.Goal) {
		g.CurrentProgress = current
	}
}

func WithDeadline(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Deadline = &d
	}
}

func NewTestGoal(name string, target float64, unit string, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		ID:           uuid.New().String(),
		Name:         name,
		TargetValue:  target,
		ProgressUnit: unit,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Appointment options
type AppointmentOption func(*domain.Appointment)

func WithLocation(loc string) AppointmentOption {
	return func(a *domain.Appointment) {
		a.Location = loc
	}
}

func NewTestAppointment(title string, start time.Time, durationMin int, opts ...AppointmentOption) *domain.Appointment {
	a := &domain.Appointment{
		ID:          uuid.New().String(),
		Title:       title,
		Start:       start,
		DurationMin: durationMin,
		CreatedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RecurrenceRule options
type RuleOption func(*domain.RecurrenceRule)

func WithExceptions(dates ...string) RuleOption {
	return func(r *domain.RecurrenceRule) {
		r.ExceptionDates = append(r.ExceptionDates, dates...)
	}
}

func NewTestRule(title string, days []time.Weekday, start, end string, opts ...RuleOption) *domain.RecurrenceRule {
	r := &domain.RecurrenceRule{
		ID:             uuid.New().String(),
		Title:          title,
		DaysOfWeek:     days,
		StartTimeOfDay: start,
		EndTimeOfDay:   end,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Weekdays is shorthand for a weekday slice literal.
func Weekdays(days ...time.Weekday) []time.Weekday {
	return days
}

// Workweek returns Monday through Friday.
func Workweek() []time.Weekday {
	return Weekdays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
}
