package domain

// Category classifies a time-boxed item for presentation. Layout logic
// never branches on it.
type Category string

const (
	CategoryAppointment Category = "appointment"
	CategoryTask        Category = "task"
	CategoryHabit       Category = "habit"
	CategoryGoal        Category = "goal"
	CategoryBreak       Category = "break"
	CategoryFocus       Category = "focus"
	CategoryReminder    Category = "reminder"
	CategoryTravel      Category = "travel"
	CategoryFixed       Category = "fixed"
)

// ValidCategories is the canonical set of accepted categories.
var ValidCategories = map[Category]bool{
	CategoryAppointment: true, CategoryTask: true, CategoryHabit: true,
	CategoryGoal: true, CategoryBreak: true, CategoryFocus: true,
	CategoryReminder: true, CategoryTravel: true, CategoryFixed: true,
}

// SourceKind records where a time-boxed item came from. Derived items
// (anything other than SourceUser) are never persisted; they are recomputed
// from their source records on every query.
type SourceKind string

const (
	SourceUser       SourceKind = "user"
	SourceRecurrence SourceKind = "recurrence"
	SourceAI         SourceKind = "ai"
	SourceTask       SourceKind = "task"
	SourceGoal       SourceKind = "goal"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// HabitKind distinguishes habits measured by an amount from habits that are
// simply done or not done.
type HabitKind string

const (
	HabitQuantitative HabitKind = "quantitative"
	HabitConclusive   HabitKind = "conclusive"
)

type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodTired    Mood = "tired"
	MoodStressed Mood = "stressed"
)

// Plan identifies the user's subscription tier. It is informational only;
// nothing in this module gates on it.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)
