package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
)

func TestHabitService_LogProgress_SameDayReplaces(t *testing.T) {
	svc := NewHabitService(setupKV())
	ctx := context.Background()

	habit := &domain.Habit{Name: "Read", Kind: domain.HabitQuantitative, DailyGoal: 20}
	require.NoError(t, svc.Create(ctx, habit))

	date := day(2025, time.March, 10)
	require.NoError(t, svc.LogProgress(ctx, habit.ID, date, 10))
	require.NoError(t, svc.LogProgress(ctx, habit.ID, date, 25))

	logs, err := svc.LogsForDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 25.0, logs[0].Progress)
}

func TestHabitService_LogProgress_UnknownHabit(t *testing.T) {
	svc := NewHabitService(setupKV())

	err := svc.LogProgress(context.Background(), "nope", day(2025, time.March, 10), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitService_WeeklyCompletion(t *testing.T) {
	svc := NewHabitService(setupKV())
	ctx := context.Background()

	run := &domain.Habit{Name: "Run", Kind: domain.HabitConclusive}
	read := &domain.Habit{Name: "Read", Kind: domain.HabitQuantitative, DailyGoal: 20}
	require.NoError(t, svc.Create(ctx, run))
	require.NoError(t, svc.Create(ctx, read))

	weekStart := day(2025, time.March, 10) // Monday
	// Run logged 7/7 days; Read hits its goal on 2 of 3 logged days.
	for i := 0; i < 7; i++ {
		require.NoError(t, svc.LogProgress(ctx, run.ID, weekStart.AddDate(0, 0, i), 1))
	}
	require.NoError(t, svc.LogProgress(ctx, read.ID, weekStart, 25))
	require.NoError(t, svc.LogProgress(ctx, read.ID, weekStart.AddDate(0, 0, 1), 5))
	require.NoError(t, svc.LogProgress(ctx, read.ID, weekStart.AddDate(0, 0, 2), 20))

	completion, err := svc.WeeklyCompletion(ctx, weekStart)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, completion[run.ID], 1e-9)
	assert.InDelta(t, 2.0/7, completion[read.ID], 1e-9)
}

func TestHabitService_Delete_RemovesLogs(t *testing.T) {
	svc := NewHabitService(setupKV())
	ctx := context.Background()

	habit := &domain.Habit{Name: "Run"}
	require.NoError(t, svc.Create(ctx, habit))
	date := day(2025, time.March, 10)
	require.NoError(t, svc.LogProgress(ctx, habit.ID, date, 1))

	require.NoError(t, svc.Delete(ctx, habit.ID))

	logs, err := svc.LogsForDate(ctx, date)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
