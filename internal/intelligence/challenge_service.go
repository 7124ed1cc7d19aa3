package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/llm"
)

// ErrNoHabits signals a challenge request with nothing to challenge.
var ErrNoHabits = errors.New("no habits to build a challenge from")

// ChallengeService proposes a weekly challenge tied to one existing habit.
type ChallengeService interface {
	Weekly(ctx context.Context, habits []domain.Habit, completion map[string]float64) (*contract.HabitChallenge, error)
}

type challengeService struct {
	client llm.Client
}

func NewChallengeService(client llm.Client) ChallengeService {
	return &challengeService{client: client}
}

func (s *challengeService) Weekly(ctx context.Context, habits []domain.Habit, completion map[string]float64) (*contract.HabitChallenge, error) {
	if len(habits) == 0 {
		return nil, ErrNoHabits
	}

	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChallenge,
		SystemPrompt: challengeSystemPrompt,
		UserPrompt:   buildChallengeUserPrompt(habits, completion),
	})
	if err != nil {
		return nil, fmt.Errorf("generating habit challenge: %w", err)
	}

	challenge, err := llm.ExtractJSON[contract.HabitChallenge](resp.Text, func(c contract.HabitChallenge) error {
		if !known[c.HabitID] {
			return fmt.Errorf("unknown habit id %q", c.HabitID)
		}
		if c.Title == "" {
			return fmt.Errorf("title field is required")
		}
		if c.TargetPct < 1 || c.TargetPct > 100 {
			return fmt.Errorf("targetPct %d out of range", c.TargetPct)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("extracting habit challenge: %w", err)
	}
	return &challenge, nil
}

func buildChallengeUserPrompt(habits []domain.Habit, completion map[string]float64) string {
	type entry struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		Kind          string  `json:"kind"`
		CompletionPct float64 `json:"completionPct"`
	}
	entries := make([]entry, len(habits))
	for i, h := range habits {
		entries[i] = entry{
			ID:            h.ID,
			Name:          h.Name,
			Kind:          string(h.Kind),
			CompletionPct: completion[h.ID],
		}
	}
	data, _ := json.Marshal(entries)
	return "Habits with last week's completion rates:\n" + string(data)
}
