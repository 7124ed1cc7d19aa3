package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/store"
)

type habitService struct {
	kv store.KV
}

func NewHabitService(kv store.KV) HabitService {
	return &habitService{kv: kv}
}

func (s *habitService) Create(ctx context.Context, h *domain.Habit) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.Frequency == "" {
		h.Frequency = domain.FrequencyDaily
	}
	if h.Kind == "" {
		h.Kind = domain.HabitConclusive
	}

	habits, err := store.LoadSlice[domain.Habit](ctx, s.kv, store.KeyHabits)
	if err != nil {
		return err
	}
	habits = append(habits, *h)
	return store.SaveSlice(ctx, s.kv, store.KeyHabits, habits)
}

func (s *habitService) List(ctx context.Context) ([]domain.Habit, error) {
	return store.LoadSlice[domain.Habit](ctx, s.kv, store.KeyHabits)
}

func (s *habitService) Update(ctx context.Context, h *domain.Habit) error {
	habits, err := store.LoadSlice[domain.Habit](ctx, s.kv, store.KeyHabits)
	if err != nil {
		return err
	}
	for i := range habits {
		if habits[i].ID == h.ID {
			habits[i] = *h
			return store.SaveSlice(ctx, s.kv, store.KeyHabits, habits)
		}
	}
	return ErrNotFound
}

// Delete removes the habit and its logs.
func (s *habitService) Delete(ctx context.Context, id string) error {
	habits, err := store.LoadSlice[domain.Habit](ctx, s.kv, store.KeyHabits)
	if err != nil {
		return err
	}
	kept := habits[:0]
	found := false
	for _, h := range habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return ErrNotFound
	}
	if err := store.SaveSlice(ctx, s.kv, store.KeyHabits, kept); err != nil {
		return err
	}

	logs, err := store.LoadSlice[domain.HabitLog](ctx, s.kv, store.KeyHabitLogs)
	if err != nil {
		return err
	}
	keptLogs := logs[:0]
	for _, l := range logs {
		if l.HabitID != id {
			keptLogs = append(keptLogs, l)
		}
	}
	return store.SaveSlice(ctx, s.kv, store.KeyHabitLogs, keptLogs)
}

func (s *habitService) LogProgress(ctx context.Context, habitID string, date time.Time, progress float64) error {
	if _, err := s.findHabit(ctx, habitID); err != nil {
		return err
	}

	logs, err := store.LoadSlice[domain.HabitLog](ctx, s.kv, store.KeyHabitLogs)
	if err != nil {
		return err
	}
	dateStr := domain.DateString(date)
	for i := range logs {
		if logs[i].HabitID == habitID && logs[i].Date == dateStr {
			logs[i].Progress = progress
			return store.SaveSlice(ctx, s.kv, store.KeyHabitLogs, logs)
		}
	}
	logs = append(logs, domain.HabitLog{HabitID: habitID, Date: dateStr, Progress: progress})
	return store.SaveSlice(ctx, s.kv, store.KeyHabitLogs, logs)
}

func (s *habitService) LogsForDate(ctx context.Context, date time.Time) ([]domain.HabitLog, error) {
	logs, err := store.LoadSlice[domain.HabitLog](ctx, s.kv, store.KeyHabitLogs)
	if err != nil {
		return nil, err
	}
	dateStr := domain.DateString(date)
	out := []domain.HabitLog{}
	for _, l := range logs {
		if l.Date == dateStr {
			out = append(out, l)
		}
	}
	return out, nil
}

// WeeklyCompletion reports, per habit, the fraction of the seven days from
// weekStart with a log meeting the habit's daily goal (any positive
// progress for conclusive habits).
func (s *habitService) WeeklyCompletion(ctx context.Context, weekStart time.Time) (map[string]float64, error) {
	habits, err := store.LoadSlice[domain.Habit](ctx, s.kv, store.KeyHabits)
	if err != nil {
		return nil, err
	}
	logs, err := store.LoadSlice[domain.HabitLog](ctx, s.kv, store.KeyHabitLogs)
	if err != nil {
		return nil, err
	}

	days := make(map[string]bool, 7)
	for i := 0; i < 7; i++ {
		days[domain.DateString(weekStart.AddDate(0, 0, i))] = true
	}

	done := make(map[string]int, len(habits))
	for _, h := range habits {
		goal := h.DailyGoal
		if h.Kind == domain.HabitConclusive || goal <= 0 {
			goal = 1
		}
		for _, l := range logs {
			if l.HabitID == h.ID && days[l.Date] && l.Progress >= goal {
				done[h.ID]++
			}
		}
	}

	out := make(map[string]float64, len(habits))
	for _, h := range habits {
		out[h.ID] = float64(done[h.ID]) / 7
	}
	return out, nil
}

func (s *habitService) findHabit(ctx context.Context, id string) (*domain.Habit, error) {
	habits, err := store.LoadSlice[domain.Habit](ctx, s.kv, store.KeyHabits)
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID == id {
			return &habits[i], nil
		}
	}
	return nil, ErrNotFound
}
