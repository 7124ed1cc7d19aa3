package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/llm"
)

// RoutineService drafts a full daily routine from the user's preferences.
type RoutineService interface {
	Draft(ctx context.Context, prefs domain.RoutinePreferences, mood domain.Mood) ([]contract.RoutineItem, error)
}

type routineService struct {
	client llm.Client
}

func NewRoutineService(client llm.Client) RoutineService {
	return &routineService{client: client}
}

func (s *routineService) Draft(ctx context.Context, prefs domain.RoutinePreferences, mood domain.Mood) ([]contract.RoutineItem, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRoutine,
		SystemPrompt: routineSystemPrompt,
		UserPrompt:   buildRoutineUserPrompt(prefs, mood),
	})
	if err != nil {
		return nil, fmt.Errorf("generating routine: %w", err)
	}

	items, err := llm.ExtractJSON[[]contract.RoutineItem](resp.Text, validateRoutine)
	if err != nil {
		return nil, fmt.Errorf("extracting routine: %w", err)
	}
	return items, nil
}

func buildRoutineUserPrompt(prefs domain.RoutinePreferences, mood domain.Mood) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day window: %s to %s\n", prefs.StartTime, prefs.EndTime)
	if len(prefs.Priorities) > 0 {
		fmt.Fprintf(&b, "Priorities: %s\n", strings.Join(prefs.Priorities, ", "))
	}
	if mood != "" {
		fmt.Fprintf(&b, "Latest mood: %s\n", mood)
	}
	return b.String()
}

func validateRoutine(items []contract.RoutineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("routine is empty")
	}
	for i, it := range items {
		if it.Title == "" {
			return fmt.Errorf("routine item %d: title is required", i)
		}
		if it.Duration <= 0 {
			return fmt.Errorf("routine item %d: duration must be positive", i)
		}
	}
	return nil
}
