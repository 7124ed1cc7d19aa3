package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/llm"
)

func TestRoutineService_Draft_ParsesArray(t *testing.T) {
	client := &mockClient{response: `[
		{"time": "07:00", "title": "Morning stretch", "duration": 15, "type": "habit", "icon": "🧘"},
		{"time": "07:30", "title": "Deep work", "duration": 90, "type": "focus"},
		{"time": "09:00", "title": "Break", "duration": 15, "type": "break"}
	]`}
	svc := NewRoutineService(client)

	prefs := domain.RoutinePreferences{StartTime: "07:00", EndTime: "22:00", Priorities: []string{"health"}}
	items, err := svc.Draft(context.Background(), prefs, domain.MoodNeutral)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Morning stretch", items[0].Title)
	assert.Equal(t, 90, items[1].Duration)
}

func TestRoutineService_Draft_RejectsEmptyRoutine(t *testing.T) {
	client := &mockClient{response: `[]`}
	svc := NewRoutineService(client)

	_, err := svc.Draft(context.Background(), domain.RoutinePreferences{}, "")

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestRoutineService_Draft_RejectsNonPositiveDuration(t *testing.T) {
	client := &mockClient{response: `[{"time": "07:00", "title": "x", "duration": 0, "type": "focus"}]`}
	svc := NewRoutineService(client)

	_, err := svc.Draft(context.Background(), domain.RoutinePreferences{}, "")

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestRoutineService_Draft_PropagatesClientError(t *testing.T) {
	client := &mockClient{err: llm.ErrTimeout}
	svc := NewRoutineService(client)

	_, err := svc.Draft(context.Background(), domain.RoutinePreferences{}, "")

	assert.ErrorIs(t, err, llm.ErrTimeout)
}
