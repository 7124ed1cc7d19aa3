package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
)

func TestPack_EmptyGroup(t *testing.T) {
	assert.Nil(t, Pack(nil))
}

func TestPack_NonOverlappingChainReusesColumnZero(t *testing.T) {
	// item1 and item3 don't overlap each other but both overlap item2:
	// greedy packing must reuse column 0 for item3 instead of opening a
	// third column.
	group := []domain.TimeBoxedItem{
		boxed("item1", "09:00", 30),
		boxed("item2", "09:15", 30),
		boxed("item3", "09:30", 30),
	}

	packed := Pack(group)

	require.Len(t, packed, 3)
	byID := map[string]domain.LayoutItem{}
	for _, p := range packed {
		byID[p.ID] = p
	}

	assert.Equal(t, 0.5, byID["item1"].ColumnWidthFraction, "two columns total, not three")
	assert.Equal(t, 0.0, byID["item1"].ColumnLeftFraction)
	assert.Equal(t, 0.5, byID["item2"].ColumnLeftFraction)
	assert.Equal(t, 0.0, byID["item3"].ColumnLeftFraction, "item3 shares column 0 with item1")
}

func TestPack_SingleItemFillsFullWidth(t *testing.T) {
	packed := Pack([]domain.TimeBoxedItem{boxed("only", "09:00", 60)})

	require.Len(t, packed, 1)
	assert.Equal(t, 1.0, packed[0].ColumnWidthFraction)
	assert.Equal(t, 0.0, packed[0].ColumnLeftFraction)
}

func TestPack_ClosedBoundaryForColumnReuse(t *testing.T) {
	// b starts the instant a ends: the column frees up immediately.
	packed := Pack([]domain.TimeBoxedItem{
		boxed("a", "10:00", 30),
		boxed("b", "10:30", 30),
	})

	require.Len(t, packed, 2)
	assert.Equal(t, packed[0].ColumnLeftFraction, packed[1].ColumnLeftFraction)
	assert.Equal(t, 1.0, packed[0].ColumnWidthFraction)
}

func TestPack_ZeroDurationNeverBlocksColumnReuse(t *testing.T) {
	// The marker lands in a fresh column, but because its end equals its
	// start, a later item at or after the same instant takes that column
	// instead of opening a third.
	packed := Pack([]domain.TimeBoxedItem{
		boxed("work", "09:00", 480),
		boxed("marker", "09:00", 0),
		boxed("call", "10:00", 30),
	})

	require.Len(t, packed, 3)
	byID := map[string]domain.LayoutItem{}
	for _, p := range packed {
		byID[p.ID] = p
	}

	assert.Equal(t, 0.5, byID["work"].ColumnWidthFraction, "two columns total")
	assert.Equal(t, 0.0, byID["work"].ColumnLeftFraction)
	assert.Equal(t, 0.5, byID["marker"].ColumnLeftFraction)
	assert.Equal(t, 0.5, byID["call"].ColumnLeftFraction, "call reuses the marker's column")
}

func TestPack_ThreeWayOverlapNeedsThreeColumns(t *testing.T) {
	packed := Pack([]domain.TimeBoxedItem{
		boxed("a", "09:00", 60),
		boxed("b", "09:10", 60),
		boxed("c", "09:20", 60),
	})

	require.Len(t, packed, 3)
	lefts := map[float64]bool{}
	for _, p := range packed {
		assert.InDelta(t, 1.0/3.0, p.ColumnWidthFraction, 1e-9)
		lefts[p.ColumnLeftFraction] = true
	}
	assert.Len(t, lefts, 3, "each item occupies a distinct column")
}
