package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pbarbosa/vida/internal/agenda"
	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/llm"
)

// AgendaService proposes time blocks for the free slots of a day.
//
// Failures never propagate as fatal: the caller renders the deterministic
// agenda either way and shows a "suggestions unavailable" note on error.
type AgendaService interface {
	// Suggest returns structured suggestions for the context's date. The
	// returned error marks the suggestions as unavailable; it is never a
	// reason to abort rendering.
	Suggest(ctx context.Context, sctx contract.SuggestionContext) (*contract.AgendaSuggestions, error)
}

type agendaService struct {
	client llm.Client
	cache  *SuggestionCache
}

// NewAgendaService creates an AgendaService backed by an LLM client. The
// cache may be shared with other services so record writes invalidate it
// in one place.
func NewAgendaService(client llm.Client, cache *SuggestionCache) AgendaService {
	return &agendaService{client: client, cache: cache}
}

func (s *agendaService) Suggest(ctx context.Context, sctx contract.SuggestionContext) (*contract.AgendaSuggestions, error) {
	if cached, ok := s.cache.Get(sctx.Date, sctx); ok {
		return cached, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAgenda,
		SystemPrompt: agendaSystemPrompt,
		UserPrompt:   buildAgendaUserPrompt(sctx),
	})
	if err != nil {
		return nil, fmt.Errorf("generating agenda suggestions: %w", err)
	}

	suggestions, err := llm.ExtractJSON[contract.AgendaSuggestions](resp.Text, validateAgendaSuggestions)
	if err != nil {
		return nil, fmt.Errorf("extracting agenda suggestions: %w", err)
	}

	s.cache.Put(sctx.Date, sctx, &suggestions)
	return &suggestions, nil
}

func buildAgendaUserPrompt(sctx contract.SuggestionContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s (%s)\n", domain.DateString(sctx.Date), sctx.Date.Weekday())
	if sctx.UserName != "" {
		fmt.Fprintf(&b, "User: %s\n", sctx.UserName)
	}
	fmt.Fprintf(&b, "Day window: %s to %s\n", sctx.Preferences.StartTime, sctx.Preferences.EndTime)
	if sctx.LatestMood != "" {
		fmt.Fprintf(&b, "Latest mood: %s\n", sctx.LatestMood)
	}

	b.WriteString("\nExisting schedule:\n")
	if len(sctx.Existing) == 0 {
		b.WriteString("(empty)\n")
	}
	for _, it := range sctx.Existing {
		fmt.Fprintf(&b, "- %s %s (%d min)\n", it.Start.Format("15:04"), it.Title, it.DurationMin)
	}

	b.WriteString("\nPending tasks:\n")
	for _, t := range sctx.PendingTasks {
		fmt.Fprintf(&b, "- %s (priority %s)\n", t.Title, t.Priority)
	}
	b.WriteString("\nHabits:\n")
	for _, h := range sctx.Habits {
		fmt.Fprintf(&b, "- %s\n", h.Name)
	}
	b.WriteString("\nGoals in progress:\n")
	for _, g := range sctx.Goals {
		fmt.Fprintf(&b, "- %s (%.0f/%.0f %s)\n", g.Name, g.CurrentProgress, g.TargetValue, g.ProgressUnit)
	}

	return b.String()
}

func validateAgendaSuggestions(s contract.AgendaSuggestions) error {
	for i, e := range s.Schedule {
		if e.Title == "" {
			return fmt.Errorf("schedule entry %d: title is required", i)
		}
		if e.DurationMin <= 0 {
			return fmt.Errorf("schedule entry %d: durationMin must be positive", i)
		}
	}
	return nil
}

// ScheduleItems converts model-proposed schedule entries into time-boxed
// items on the given date. Entries with an unparsable time or an unknown
// category are dropped rather than failing the whole batch. Ids are stable
// within one response but intentionally not across regenerations.
func ScheduleItems(date time.Time, entries []contract.ScheduleEntry) []domain.TimeBoxedItem {
	items := make([]domain.TimeBoxedItem, 0, len(entries))
	for i, e := range entries {
		start, ok := agenda.CombineDateAndClock(date, e.Time)
		if !ok {
			continue
		}
		cat := domain.Category(e.Category)
		if !domain.ValidCategories[cat] {
			cat = domain.CategoryFocus
		}
		items = append(items, domain.TimeBoxedItem{
			ID:          fmt.Sprintf("ai:%d:%s", i, e.Time),
			Title:       e.Title,
			Icon:        e.Icon,
			Start:       start,
			DurationMin: e.DurationMin,
			Category:    cat,
			Source:      domain.SourceAI,
		})
	}
	return items
}
