package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
)

func TestMoodService_CheckIn_LatestWinsForSameDay(t *testing.T) {
	svc := NewMoodService(setupKV())
	ctx := context.Background()
	date := day(2025, time.March, 10)

	require.NoError(t, svc.CheckIn(ctx, date, domain.MoodSad, "rough morning"))
	require.NoError(t, svc.CheckIn(ctx, date, domain.MoodHappy, "better after lunch"))

	log, err := svc.ForDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, domain.MoodHappy, log.Mood)
	assert.Equal(t, "better after lunch", log.Notes)

	// Still exactly one log for the date.
	logs, err := svc.Recent(ctx, 1, date)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestMoodService_Recent_WindowAndOrder(t *testing.T) {
	svc := NewMoodService(setupKV())
	ctx := context.Background()

	require.NoError(t, svc.CheckIn(ctx, day(2025, time.March, 7), domain.MoodTired, ""))
	require.NoError(t, svc.CheckIn(ctx, day(2025, time.March, 9), domain.MoodNeutral, ""))
	require.NoError(t, svc.CheckIn(ctx, day(2025, time.March, 10), domain.MoodHappy, ""))

	logs, err := svc.Recent(ctx, 3, day(2025, time.March, 10))
	require.NoError(t, err)
	require.Len(t, logs, 2, "March 7 falls outside a 3-day window ending March 10")
	assert.Equal(t, "2025-03-09", logs[0].Date)
	assert.Equal(t, "2025-03-10", logs[1].Date)
}

func TestMoodService_ForDate_Missing(t *testing.T) {
	svc := NewMoodService(setupKV())

	_, err := svc.ForDate(context.Background(), day(2025, time.March, 10))
	assert.ErrorIs(t, err, ErrNotFound)
}
