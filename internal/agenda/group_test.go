package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
)

func boxed(id, clock string, durationMin int) domain.TimeBoxedItem {
	return domain.TimeBoxedItem{ID: id, Start: at(clock), DurationMin: durationMin}
}

func TestGroup_EmptyInputYieldsNoGroups(t *testing.T) {
	assert.Nil(t, Group(nil))
	assert.Nil(t, Group([]domain.TimeBoxedItem{}))
}

func TestGroup_PartitionsOverlappingRuns(t *testing.T) {
	items := []domain.TimeBoxedItem{
		boxed("a", "09:00", 30),
		boxed("b", "09:15", 30),
		boxed("c", "10:00", 30),
	}

	groups := Group(items)

	require.Len(t, groups, 2)
	require.Len(t, groups[0], 2)
	assert.Equal(t, "a", groups[0][0].ID)
	assert.Equal(t, "b", groups[0][1].ID)
	require.Len(t, groups[1], 1)
	assert.Equal(t, "c", groups[1][0].ID)
}

func TestGroup_BackToBackItemsDoNotGroup(t *testing.T) {
	items := []domain.TimeBoxedItem{
		boxed("a", "10:00", 30),
		boxed("b", "10:30", 30),
	}

	groups := Group(items)

	require.Len(t, groups, 2, "an item starting exactly when another ends opens its own group")
}

func TestGroup_ChainedOverlapStaysInOneGroup(t *testing.T) {
	// b overlaps a, c overlaps b but not a: the chain keeps all three
	// together.
	items := []domain.TimeBoxedItem{
		boxed("a", "09:00", 30),
		boxed("b", "09:20", 30),
		boxed("c", "09:45", 30),
	}

	groups := Group(items)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 3)
}

func TestGroup_ZeroDurationJoinsSurroundingGroup(t *testing.T) {
	items := []domain.TimeBoxedItem{
		boxed("work", "09:00", 480),
		boxed("marker", "09:00", 0),
	}

	groups := Group(items)

	require.Len(t, groups, 1, "a marker starting inside an open interval joins its group")
	assert.Len(t, groups[0], 2)
}

func TestGroup_ZeroDurationDoesNotCollapseRunningEnd(t *testing.T) {
	// The marker must not shrink the group's running end: the 10:00 call
	// still falls inside the 09:00-17:00 block and stays in the group.
	items := []domain.TimeBoxedItem{
		boxed("work", "09:00", 480),
		boxed("marker", "09:00", 0),
		boxed("call", "10:00", 30),
	}

	groups := Group(items)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 3)
}

func TestGroup_SingleItem(t *testing.T) {
	groups := Group([]domain.TimeBoxedItem{boxed("only", "12:00", 60)})

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 1)
}

func TestGroup_PanicsOnUnsortedInput(t *testing.T) {
	items := []domain.TimeBoxedItem{
		boxed("late", "11:00", 30),
		boxed("early", "09:00", 30),
	}

	assert.Panics(t, func() { Group(items) })
}
