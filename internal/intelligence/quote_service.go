package intelligence

import (
	"context"
	"fmt"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/llm"
)

// Quote is a single motivational line with attribution.
type Quote struct {
	Text   string `json:"quote"`
	Author string `json:"author"`
	Source string // "llm" or "deterministic"
}

// QuoteService returns one motivational quote per call. It always answers:
// when the model is down or talks nonsense, a built-in quote is served.
type QuoteService interface {
	// Daily returns a quote, optionally tuned to the user's latest mood
	// (pass the empty mood when no check-in exists).
	Daily(ctx context.Context, mood domain.Mood) *Quote
}

type quoteService struct {
	client llm.Client
}

func NewQuoteService(client llm.Client) QuoteService {
	return &quoteService{client: client}
}

type quoteResponse struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

func (s *quoteService) Daily(ctx context.Context, mood domain.Mood) *Quote {
	if s.client == nil {
		return fallbackQuote()
	}

	prompt := "Give me today's quote."
	if mood != "" {
		prompt = fmt.Sprintf("The user is feeling %s today. Give me a fitting quote.", mood)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQuote,
		SystemPrompt: quoteSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return fallbackQuote()
	}

	parsed, err := llm.ExtractJSON[quoteResponse](resp.Text, func(q quoteResponse) error {
		if q.Quote == "" {
			return fmt.Errorf("quote field is required")
		}
		return nil
	})
	if err != nil {
		return fallbackQuote()
	}

	author := parsed.Author
	if author == "" {
		author = "Unknown"
	}
	return &Quote{Text: parsed.Quote, Author: author, Source: "llm"}
}
