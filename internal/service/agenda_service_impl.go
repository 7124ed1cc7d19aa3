package service

import (
	"context"
	"time"

	"github.com/pbarbosa/vida/internal/agenda"
	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/intelligence"
	"github.com/pbarbosa/vida/internal/store"
)

type agendaService struct {
	kv      store.KV
	suggest intelligence.AgendaService // nil disables AI items
	cache   *intelligence.SuggestionCache
}

// NewAgendaService wires the day assembler. Pass a nil suggester when the
// model is disabled; the deterministic agenda is unaffected.
func NewAgendaService(kv store.KV, suggest intelligence.AgendaService, cache *intelligence.SuggestionCache) AgendaService {
	return &agendaService{kv: kv, suggest: suggest, cache: cache}
}

// Day assembles the full laid-out agenda for one date. The layout is a pure
// function of the date and the store snapshot; suggestions are folded in
// when available and silently absent when not.
func (s *agendaService) Day(ctx context.Context, req contract.DayRequest) (*contract.DayResponse, error) {
	if req.OriginHour < 0 || req.OriginHour > 23 {
		return nil, &contract.DayError{
			Code:    contract.DayErrInvalidOrigin,
			Message: "origin hour must be between 0 and 23",
		}
	}

	appts, err := store.LoadSlice[domain.Appointment](ctx, s.kv, store.KeyAppointments)
	if err != nil {
		return nil, s.storageErr(err)
	}
	rules, err := store.LoadSlice[domain.RecurrenceRule](ctx, s.kv, store.KeyRules)
	if err != nil {
		return nil, s.storageErr(err)
	}
	tasks, err := store.LoadSlice[domain.Task](ctx, s.kv, store.KeyTasks)
	if err != nil {
		return nil, s.storageErr(err)
	}
	goals, err := store.LoadSlice[domain.Goal](ctx, s.kv, store.KeyGoals)
	if err != nil {
		return nil, s.storageErr(err)
	}

	resp := &contract.DayResponse{
		GeneratedAt: time.Now().UTC(),
		Date:        req.Date,
	}

	var aiItems []domain.TimeBoxedItem
	if req.IncludeAI && s.suggest != nil {
		aiItems = s.suggestItems(ctx, req, appts, rules, tasks, goals, resp)
	}

	resp.Items = agenda.ItemsForDay(req.Date, appts, rules, tasks, goals, aiItems)
	resp.Layout = agenda.Layout(resp.Items, req.OriginHour)
	return resp, nil
}

// suggestItems runs the model against the deterministic day and normalizes
// its schedule. Failures annotate the response and yield no items; they
// never abort the day.
func (s *agendaService) suggestItems(
	ctx context.Context,
	req contract.DayRequest,
	appts []domain.Appointment,
	rules []domain.RecurrenceRule,
	tasks []domain.Task,
	goals []domain.Goal,
	resp *contract.DayResponse,
) []domain.TimeBoxedItem {
	sctx := contract.SuggestionContext{
		Date:     req.Date,
		Existing: agenda.ItemsForDay(req.Date, appts, rules, tasks, goals, nil),
		Habits:   s.dailyHabits(ctx),
		Goals:    goals,
	}
	for _, t := range tasks {
		if !t.Completed {
			sctx.PendingTasks = append(sctx.PendingTasks, t)
		}
	}
	if profile, err := store.LoadValue(ctx, s.kv, store.KeyProfile, domain.DefaultProfile()); err == nil {
		sctx.UserName = profile.Name
		sctx.Preferences = profile.Routine
	}
	if mood := s.latestMood(ctx, req.Date); mood != nil {
		sctx.LatestMood = mood.Mood
	}

	if req.RefreshAI && s.cache != nil {
		s.cache.Invalidate()
	}

	suggestions, err := s.suggest.Suggest(ctx, sctx)
	if err != nil {
		resp.AIWarning = "suggestions unavailable"
		return nil
	}

	resp.Highlights = suggestions.Highlights
	resp.Suggestion = suggestions.ProactiveSuggestion
	return intelligence.ScheduleItems(req.Date, suggestions.Schedule)
}

// dailyHabits returns the habits worth proposing on a single day's agenda;
// weekly habits stay out of the model's context.
func (s *agendaService) dailyHabits(ctx context.Context) []domain.Habit {
	habits, err := store.LoadSlice[domain.Habit](ctx, s.kv, store.KeyHabits)
	if err != nil {
		return nil
	}
	daily := habits[:0]
	for _, h := range habits {
		if h.Frequency == domain.FrequencyDaily {
			daily = append(daily, h)
		}
	}
	return daily
}

func (s *agendaService) latestMood(ctx context.Context, date time.Time) *domain.MoodLog {
	logs, err := store.LoadSlice[domain.MoodLog](ctx, s.kv, store.KeyMoodLogs)
	if err != nil {
		return nil
	}
	dateStr := domain.DateString(date)
	var latest *domain.MoodLog
	for i := range logs {
		if logs[i].Date > dateStr {
			continue
		}
		if latest == nil || logs[i].Date > latest.Date {
			latest = &logs[i]
		}
	}
	return latest
}

func (s *agendaService) storageErr(err error) error {
	return &contract.DayError{Code: contract.DayErrStorage, Message: err.Error()}
}
