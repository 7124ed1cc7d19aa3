package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
)

func TestRuleService_AddException_IsIdempotent(t *testing.T) {
	svc := NewRuleService(setupKV())
	ctx := context.Background()

	rule := &domain.RecurrenceRule{
		Title:          "Work",
		DaysOfWeek:     []time.Weekday{time.Monday},
		StartTimeOfDay: "09:00",
		EndTimeOfDay:   "17:00",
	}
	require.NoError(t, svc.Create(ctx, rule))

	date := day(2025, time.March, 10)
	require.NoError(t, svc.AddException(ctx, rule.ID, date))
	require.NoError(t, svc.AddException(ctx, rule.ID, date))

	rules, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, []string{"2025-03-10"}, rules[0].ExceptionDates)
}

func TestRuleService_AddException_UnknownRule(t *testing.T) {
	svc := NewRuleService(setupKV())

	err := svc.AddException(context.Background(), "nope", day(2025, time.March, 10))
	assert.ErrorIs(t, err, ErrNotFound)
}
