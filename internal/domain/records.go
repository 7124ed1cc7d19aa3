package domain

import "time"

// Appointment is a one-off, user-created calendar entry with a concrete
// start instant.
type Appointment struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Start       time.Time  `json:"start"`
	DurationMin int        `json:"durationMin"`
	Location    string     `json:"location,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Habit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	Frequency    Frequency `json:"frequency"`
	Kind         HabitKind `json:"kind"`
	ProgressUnit string    `json:"progressUnit,omitempty"`
	DailyGoal    float64   `json:"dailyGoal,omitempty"`
}

// HabitLog records progress against a habit on a single calendar date.
type HabitLog struct {
	HabitID  string  `json:"habitId"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Progress float64 `json:"progress"`
}

type Goal struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Description     string     `json:"description,omitempty"`
	ProgressUnit    string     `json:"progressUnit"`
	TargetValue     float64    `json:"targetValue"`
	CurrentProgress float64    `json:"currentProgress"`
	Deadline        *time.Time `json:"deadline,omitempty"`
}

type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Kind        TransactionKind `json:"kind"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
}

// MoodLog is a single daily mood check-in. At most one log exists per date;
// a later check-in for the same date replaces the earlier one.
type MoodLog struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Mood  Mood   `json:"mood"`
	Notes string `json:"notes,omitempty"`
}

// RoutinePreferences shape the AI-generated daily routine.
type RoutinePreferences struct {
	StartTime  string   `json:"startTime"` // HH:MM
	EndTime    string   `json:"endTime"`   // HH:MM
	Priorities []string `json:"priorities,omitempty"`
}

type UserProfile struct {
	Name        string             `json:"name"`
	DateOfBirth string             `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Plan        Plan               `json:"plan"`
	Routine     RoutinePreferences `json:"routine"`
}

// DefaultProfile returns the profile used before the user configures one.
func DefaultProfile() UserProfile {
	return UserProfile{
		Plan: PlanFree,
		Routine: RoutinePreferences{
			StartTime: "07:00",
			EndTime:   "22:00",
		},
	}
}
