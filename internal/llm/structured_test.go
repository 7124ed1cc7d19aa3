package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Time     string `json:"time"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	raw := `{"time":"10:00","title":"Coffee break","duration":15}`

	got, err := ExtractJSON[testPayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "Coffee break", got.Title)
	assert.Equal(t, 15, got.Duration)
}

func TestExtractJSON_CodeFencedWithProse(t *testing.T) {
	raw := "Here is your schedule:\n```json\n{\"time\":\"10:00\",\"title\":\"Walk\",\"duration\":20}\n```\nEnjoy!"

	got, err := ExtractJSON[testPayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "Walk", got.Title)
}

func TestExtractJSON_TopLevelArray(t *testing.T) {
	raw := "Sure!\n[{\"time\":\"09:00\",\"title\":\"Focus\",\"duration\":60},{\"time\":\"10:00\",\"title\":\"Break\",\"duration\":10}]"

	got, err := ExtractJSON[[]testPayload](raw, nil)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Break", got[1].Title)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		"time": "10:00", // start of the break
		"title": "Break",
		"duration": 15 /* minutes */
	}`

	got, err := ExtractJSON[testPayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "Break", got.Title)
}

func TestExtractJSON_NoJSONFound(t *testing.T) {
	_, err := ExtractJSON[testPayload]("no structured data here", nil)

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `{"time":"10:00","title":"","duration":15}`

	_, err := ExtractJSON[testPayload](raw, func(p testPayload) error {
		if p.Title == "" {
			return fmt.Errorf("title is required")
		}
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"time":"10:00","title":"Review {draft}","duration":30}`

	got, err := ExtractJSON[testPayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "Review {draft}", got.Title)
}

func TestExtractJSON_MalformedJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"time": "10:00", "title": }`, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}
