package service

import (
	"context"
	"sort"
	"time"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/store"
)

type moodService struct {
	kv store.KV
}

func NewMoodService(kv store.KV) MoodService {
	return &moodService{kv: kv}
}

func (s *moodService) CheckIn(ctx context.Context, date time.Time, mood domain.Mood, notes string) error {
	logs, err := store.LoadSlice[domain.MoodLog](ctx, s.kv, store.KeyMoodLogs)
	if err != nil {
		return err
	}
	dateStr := domain.DateString(date)
	for i := range logs {
		if logs[i].Date == dateStr {
			logs[i].Mood = mood
			logs[i].Notes = notes
			return store.SaveSlice(ctx, s.kv, store.KeyMoodLogs, logs)
		}
	}
	logs = append(logs, domain.MoodLog{Date: dateStr, Mood: mood, Notes: notes})
	return store.SaveSlice(ctx, s.kv, store.KeyMoodLogs, logs)
}

func (s *moodService) ForDate(ctx context.Context, date time.Time) (*domain.MoodLog, error) {
	logs, err := store.LoadSlice[domain.MoodLog](ctx, s.kv, store.KeyMoodLogs)
	if err != nil {
		return nil, err
	}
	dateStr := domain.DateString(date)
	for i := range logs {
		if logs[i].Date == dateStr {
			return &logs[i], nil
		}
	}
	return nil, ErrNotFound
}

// Recent returns the check-ins from the `days` days ending at `from`,
// oldest first.
func (s *moodService) Recent(ctx context.Context, days int, from time.Time) ([]domain.MoodLog, error) {
	logs, err := store.LoadSlice[domain.MoodLog](ctx, s.kv, store.KeyMoodLogs)
	if err != nil {
		return nil, err
	}
	cutoff := domain.DateString(from.AddDate(0, 0, -(days - 1)))
	end := domain.DateString(from)

	out := []domain.MoodLog{}
	for _, l := range logs {
		if l.Date >= cutoff && l.Date <= end {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
