package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/store"
)

type goalService struct {
	kv store.KV
}

func NewGoalService(kv store.KV) GoalService {
	return &goalService{kv: kv}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	goals, err := store.LoadSlice[domain.Goal](ctx, s.kv, store.KeyGoals)
	if err != nil {
		return err
	}
	goals = append(goals, *g)
	return store.SaveSlice(ctx, s.kv, store.KeyGoals, goals)
}

func (s *goalService) List(ctx context.Context) ([]domain.Goal, error) {
	return store.LoadSlice[domain.Goal](ctx, s.kv, store.KeyGoals)
}

func (s *goalService) Update(ctx context.Context, g *domain.Goal) error {
	goals, err := store.LoadSlice[domain.Goal](ctx, s.kv, store.KeyGoals)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == g.ID {
			goals[i] = *g
			return store.SaveSlice(ctx, s.kv, store.KeyGoals, goals)
		}
	}
	return ErrNotFound
}

// UpdateProgress adds delta to the goal's progress, clamped to
// [0, targetValue].
func (s *goalService) UpdateProgress(ctx context.Context, id string, delta float64) error {
	goals, err := store.LoadSlice[domain.Goal](ctx, s.kv, store.KeyGoals)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		p := goals[i].CurrentProgress + delta
		if p < 0 {
			p = 0
		}
		if p > goals[i].TargetValue {
			p = goals[i].TargetValue
		}
		goals[i].CurrentProgress = p
		return store.SaveSlice(ctx, s.kv, store.KeyGoals, goals)
	}
	return ErrNotFound
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	goals, err := store.LoadSlice[domain.Goal](ctx, s.kv, store.KeyGoals)
	if err != nil {
		return err
	}
	kept := goals[:0]
	found := false
	for _, g := range goals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return ErrNotFound
	}
	return store.SaveSlice(ctx, s.kv, store.KeyGoals, kept)
}
