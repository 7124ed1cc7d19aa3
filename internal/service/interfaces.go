package service

import (
	"context"
	"errors"
	"time"

	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
)

// ErrNotFound is returned when an id resolves to no stored record.
var ErrNotFound = errors.New("record not found")

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type HabitService interface {
	Create(ctx context.Context, h *domain.Habit) error
	List(ctx context.Context) ([]domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Delete(ctx context.Context, id string) error

	// LogProgress records progress for a habit on a date. A second log for
	// the same (habit, date) replaces the first.
	LogProgress(ctx context.Context, habitID string, date time.Time, progress float64) error
	LogsForDate(ctx context.Context, date time.Time) ([]domain.HabitLog, error)
	WeeklyCompletion(ctx context.Context, weekStart time.Time) (map[string]float64, error)
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	List(ctx context.Context) ([]domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	UpdateProgress(ctx context.Context, id string, delta float64) error
	Delete(ctx context.Context, id string) error
}

type AppointmentService interface {
	Create(ctx context.Context, a *domain.Appointment) error
	ListForDay(ctx context.Context, date time.Time) ([]domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id string) error
}

type RuleService interface {
	Create(ctx context.Context, r *domain.RecurrenceRule) error
	List(ctx context.Context) ([]domain.RecurrenceRule, error)
	Update(ctx context.Context, r *domain.RecurrenceRule) error
	AddException(ctx context.Context, id string, date time.Time) error
	Delete(ctx context.Context, id string) error
}

// MonthlySummary aggregates one calendar month of transactions.
type MonthlySummary struct {
	Year       int
	Month      time.Month
	Income     float64
	Expenses   float64
	Net        float64
	ByCategory map[string]float64 // expenses only, absolute amounts
}

type FinanceService interface {
	Add(ctx context.Context, tx *domain.Transaction) error
	List(ctx context.Context) ([]domain.Transaction, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, year int, month time.Month) (*MonthlySummary, error)
}

type MoodService interface {
	// CheckIn records the mood for a date; a later check-in for the same
	// date wins.
	CheckIn(ctx context.Context, date time.Time, mood domain.Mood, notes string) error
	ForDate(ctx context.Context, date time.Time) (*domain.MoodLog, error)
	Recent(ctx context.Context, days int, from time.Time) ([]domain.MoodLog, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
}

// AgendaService assembles the laid-out day: deterministic records first,
// model suggestions folded in when available.
type AgendaService interface {
	Day(ctx context.Context, req contract.DayRequest) (*contract.DayResponse, error)
}

// ImportResult holds the outcome of a calendar import.
type ImportResult struct {
	Imported int
	Skipped  int // duplicates of already-imported occurrences
}

type ImportService interface {
	// ImportICS reads an .ics file and persists its occurrences within
	// [from, to] as appointments. Re-importing the same file is a no-op.
	ImportICS(ctx context.Context, path string, from, to time.Time) (*ImportResult, error)
}
