package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/llm"
)

// mockClient returns a fixed response for testing.
type mockClient struct {
	response string
	err      error
	calls    int
}

func (m *mockClient) Generate(_ context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "llama3.2"}, nil
}

func (m *mockClient) Available(_ context.Context) bool { return m.err == nil }

func suggestionContext() contract.SuggestionContext {
	return contract.SuggestionContext{
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		UserName:    "Ana",
		Preferences: domain.RoutinePreferences{StartTime: "07:00", EndTime: "22:00"},
	}
}

const goodSuggestionJSON = `{
  "schedule": [
    {"time": "12:30", "title": "Deep work: report", "durationMin": 60, "category": "focus", "icon": "🎯"},
    {"time": "15:00", "title": "Stretch break", "durationMin": 10, "category": "break"}
  ],
  "highlights": [{"title": "Client call", "reason": "Only hard commitment today"}],
  "proactiveSuggestion": "Block the morning for the report before meetings pile up."
}`

func TestAgendaService_Suggest_ParsesResponse(t *testing.T) {
	client := &mockClient{response: goodSuggestionJSON}
	svc := NewAgendaService(client, NewSuggestionCache())

	got, err := svc.Suggest(context.Background(), suggestionContext())

	require.NoError(t, err)
	require.Len(t, got.Schedule, 2)
	assert.Equal(t, "Deep work: report", got.Schedule[0].Title)
	assert.Equal(t, 60, got.Schedule[0].DurationMin)
	assert.Len(t, got.Highlights, 1)
	assert.NotEmpty(t, got.ProactiveSuggestion)
}

func TestAgendaService_Suggest_ClientErrorIsNonFatal(t *testing.T) {
	client := &mockClient{err: llm.ErrUnavailable}
	svc := NewAgendaService(client, NewSuggestionCache())

	got, err := svc.Suggest(context.Background(), suggestionContext())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestAgendaService_Suggest_RejectsNonPositiveDuration(t *testing.T) {
	client := &mockClient{response: `{"schedule":[{"time":"12:00","title":"x","durationMin":0,"category":"focus"}],"highlights":[],"proactiveSuggestion":""}`}
	svc := NewAgendaService(client, NewSuggestionCache())

	_, err := svc.Suggest(context.Background(), suggestionContext())

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestAgendaService_Suggest_SecondCallHitsCache(t *testing.T) {
	client := &mockClient{response: goodSuggestionJSON}
	svc := NewAgendaService(client, NewSuggestionCache())
	sctx := suggestionContext()

	_, err := svc.Suggest(context.Background(), sctx)
	require.NoError(t, err)
	_, err = svc.Suggest(context.Background(), sctx)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
}

func TestAgendaService_Suggest_InvalidationForcesRefetch(t *testing.T) {
	client := &mockClient{response: goodSuggestionJSON}
	cache := NewSuggestionCache()
	svc := NewAgendaService(client, cache)
	sctx := suggestionContext()

	_, err := svc.Suggest(context.Background(), sctx)
	require.NoError(t, err)

	cache.Invalidate()

	_, err = svc.Suggest(context.Background(), sctx)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestAgendaService_Suggest_ContextChangeMissesCache(t *testing.T) {
	client := &mockClient{response: goodSuggestionJSON}
	svc := NewAgendaService(client, NewSuggestionCache())
	sctx := suggestionContext()

	_, err := svc.Suggest(context.Background(), sctx)
	require.NoError(t, err)

	sctx.PendingTasks = []domain.Task{{ID: "t1", Title: "New task"}}
	_, err = svc.Suggest(context.Background(), sctx)
	require.NoError(t, err)

	assert.Equal(t, 2, client.calls)
}

func TestScheduleItems_NormalizesEntries(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	items := ScheduleItems(date, []contract.ScheduleEntry{
		{Time: "12:30", Title: "Deep work", DurationMin: 60, Category: "focus", Icon: "🎯"},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "ai:0:12:30", items[0].ID)
	assert.Equal(t, domain.SourceAI, items[0].Source)
	assert.Equal(t, domain.CategoryFocus, items[0].Category)
	assert.Equal(t, 12, items[0].Start.Hour())
	assert.Equal(t, 30, items[0].Start.Minute())
	assert.True(t, domain.SameDay(items[0].Start, date))
}

func TestScheduleItems_DropsUnparsableTimes(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	items := ScheduleItems(date, []contract.ScheduleEntry{
		{Time: "noonish", Title: "Lunch", DurationMin: 30, Category: "break"},
		{Time: "13:00", Title: "Walk", DurationMin: 20, Category: "break"},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "Walk", items[0].Title)
	// Index counts the original entry position, not the surviving one.
	assert.Equal(t, "ai:1:13:00", items[0].ID)
}

func TestScheduleItems_KeepsRecognizedCategories(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	items := ScheduleItems(date, []contract.ScheduleEntry{
		{Time: "18:00", Title: "Evening run", DurationMin: 45, Category: "habit"},
		{Time: "20:00", Title: "Wind down", DurationMin: 30, Category: "break"},
	})

	require.Len(t, items, 2)
	assert.Equal(t, domain.CategoryHabit, items[0].Category)
	assert.Equal(t, domain.CategoryBreak, items[1].Category)
}

func TestScheduleItems_UnknownCategoryFallsBackToFocus(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	items := ScheduleItems(date, []contract.ScheduleEntry{
		{Time: "09:00", Title: "Mystery", DurationMin: 15, Category: "sorcery"},
	})

	require.Len(t, items, 1)
	assert.Equal(t, domain.CategoryFocus, items[0].Category)
}
