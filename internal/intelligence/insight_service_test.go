package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/llm"
)

func moodHistory() []domain.MoodLog {
	return []domain.MoodLog{
		{Date: "2025-03-08", Mood: domain.MoodTired},
		{Date: "2025-03-09", Mood: domain.MoodTired},
		{Date: "2025-03-10", Mood: domain.MoodNeutral},
	}
}

func TestInsightService_MoodInsight_ParsesResponse(t *testing.T) {
	client := &mockClient{response: `{"summary": "Energy dipped over the weekend.", "suggestion": "Try an earlier wind-down."}`}
	svc := NewInsightService(client)

	insight, err := svc.MoodInsight(context.Background(), moodHistory())

	require.NoError(t, err)
	assert.Equal(t, "Energy dipped over the weekend.", insight.Summary)
	assert.NotEmpty(t, insight.Suggestion)
}

func TestInsightService_MoodInsight_NeedsThreeLogs(t *testing.T) {
	svc := NewInsightService(&mockClient{})

	_, err := svc.MoodInsight(context.Background(), moodHistory()[:2])

	assert.ErrorIs(t, err, ErrNotEnoughMoodData)
}

func TestInsightService_MoodInsight_RejectsEmptySummary(t *testing.T) {
	client := &mockClient{response: `{"summary": "", "suggestion": "x"}`}
	svc := NewInsightService(client)

	_, err := svc.MoodInsight(context.Background(), moodHistory())

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}
