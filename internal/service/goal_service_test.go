package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
)

func TestGoalService_UpdateProgress_ClampsToTarget(t *testing.T) {
	svc := NewGoalService(setupKV())
	ctx := context.Background()

	goal := &domain.Goal{Name: "Save money", TargetValue: 1000, CurrentProgress: 900}
	require.NoError(t, svc.Create(ctx, goal))

	require.NoError(t, svc.UpdateProgress(ctx, goal.ID, 500))

	goals, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 1000.0, goals[0].CurrentProgress)
}

func TestGoalService_UpdateProgress_ClampsToZero(t *testing.T) {
	svc := NewGoalService(setupKV())
	ctx := context.Background()

	goal := &domain.Goal{Name: "Save money", TargetValue: 1000, CurrentProgress: 100}
	require.NoError(t, svc.Create(ctx, goal))

	require.NoError(t, svc.UpdateProgress(ctx, goal.ID, -500))

	goals, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, goals[0].CurrentProgress)
}

func TestGoalService_UpdateProgress_UnknownID(t *testing.T) {
	svc := NewGoalService(setupKV())

	err := svc.UpdateProgress(context.Background(), "nope", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}
