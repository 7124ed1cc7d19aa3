package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
)

// monday is 2025-03-10, a Monday.
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

func workRule() domain.RecurrenceRule {
	return domain.RecurrenceRule{
		ID:    "rule-1",
		Title: "Work",
		DaysOfWeek: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		StartTimeOfDay: "09:00",
		EndTimeOfDay:   "17:00",
	}
}

func TestExpand_MaterializesOnMatchingWeekday(t *testing.T) {
	it := Expand(workRule(), monday)

	require.NotNil(t, it)
	assert.Equal(t, "fixed:rule-1:2025-03-10", it.ID)
	assert.Equal(t, "Work", it.Title)
	assert.Equal(t, 480, it.DurationMin)
	assert.Equal(t, 9, it.Start.Hour())
	assert.Equal(t, 0, it.Start.Minute())
	assert.Equal(t, domain.CategoryFixed, it.Category)
	assert.Equal(t, domain.SourceRecurrence, it.Source)
}

func TestExpand_SkipsNonMatchingWeekday(t *testing.T) {
	saturday := monday.AddDate(0, 0, 5)
	assert.Nil(t, Expand(workRule(), saturday))
}

func TestExpand_ExceptionDateWinsOverWeekday(t *testing.T) {
	rule := workRule()
	rule.ExceptionDates = []string{"2025-03-10"}

	assert.Nil(t, Expand(rule, monday), "an exception date must suppress a matching weekday")
}

func TestExpand_NonPositiveDurationMaterializesNothing(t *testing.T) {
	rule := workRule()
	rule.StartTimeOfDay = "17:00"
	rule.EndTimeOfDay = "17:00"
	assert.Nil(t, Expand(rule, monday))

	rule.EndTimeOfDay = "09:00"
	assert.Nil(t, Expand(rule, monday))
}

func TestExpand_MalformedClockFailsClosed(t *testing.T) {
	rule := workRule()
	rule.StartTimeOfDay = "not-a-time"

	assert.Nil(t, Expand(rule, monday))
}

func TestExpand_Idempotent(t *testing.T) {
	first := Expand(workRule(), monday)
	second := Expand(workRule(), monday)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second, "repeated expansion of the same (rule, date) must be byte-identical")
}

func TestCombineDateAndClock(t *testing.T) {
	got, ok := CombineDateAndClock(monday, "14:30")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local), got)

	_, ok = CombineDateAndClock(monday, "25:99")
	assert.False(t, ok)
}
