package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/llm"
)

// ErrNotEnoughMoodData signals fewer check-ins than a pattern needs.
var ErrNotEnoughMoodData = errors.New("not enough mood check-ins for an insight")

const minMoodLogs = 3

// InsightService summarizes mood patterns over recent check-ins.
type InsightService interface {
	MoodInsight(ctx context.Context, logs []domain.MoodLog) (*contract.MoodInsight, error)
}

type insightService struct {
	client llm.Client
}

func NewInsightService(client llm.Client) InsightService {
	return &insightService{client: client}
}

func (s *insightService) MoodInsight(ctx context.Context, logs []domain.MoodLog) (*contract.MoodInsight, error) {
	if len(logs) < minMoodLogs {
		return nil, ErrNotEnoughMoodData
	}

	sorted := make([]domain.MoodLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	type entry struct {
		Date string `json:"date"`
		Mood string `json:"mood"`
	}
	entries := make([]entry, len(sorted))
	for i, l := range sorted {
		entries[i] = entry{Date: l.Date, Mood: string(l.Mood)}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("serializing mood history: %w", err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInsight,
		SystemPrompt: insightSystemPrompt,
		UserPrompt:   string(payload),
	})
	if err != nil {
		return nil, fmt.Errorf("generating mood insight: %w", err)
	}

	insight, err := llm.ExtractJSON[contract.MoodInsight](resp.Text, func(in contract.MoodInsight) error {
		if in.Summary == "" {
			return fmt.Errorf("summary field is required")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("extracting mood insight: %w", err)
	}
	return &insight, nil
}
