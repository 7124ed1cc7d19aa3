package contract

import (
	"time"

	"github.com/pbarbosa/vida/internal/domain"
)

// SuggestionContext carries everything the model is allowed to see when
// filling the free slots of a day.
type SuggestionContext struct {
	Date         time.Time
	UserName     string
	Existing     []domain.TimeBoxedItem
	PendingTasks []domain.Task
	Habits       []domain.Habit
	Goals        []domain.Goal
	LatestMood   domain.Mood
	Preferences  domain.RoutinePreferences
}

// ScheduleEntry is one model-proposed block, still in wire form.
type ScheduleEntry struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	DurationMin int    `json:"durationMin"`
	Category    string `json:"category"`
	Icon        string `json:"icon,omitempty"`
}

type Highlight struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// AgendaSuggestions is the full structured answer for one day.
type AgendaSuggestions struct {
	Schedule            []ScheduleEntry `json:"schedule"`
	Highlights          []Highlight     `json:"highlights"`
	ProactiveSuggestion string          `json:"proactiveSuggestion"`
}

// RoutineItem is one block of a generated daily routine.
type RoutineItem struct {
	Time     string `json:"time"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	Type     string `json:"type"`
	Icon     string `json:"icon,omitempty"`
}

type MoodInsight struct {
	Summary    string `json:"summary"`
	Suggestion string `json:"suggestion"`
}

type HabitChallenge struct {
	HabitID   string `json:"habitId"`
	Title     string `json:"title"`
	TargetPct int    `json:"targetPct"`
}
