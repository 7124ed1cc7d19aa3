package agenda

import (
	"time"

	"github.com/pbarbosa/vida/internal/domain"
)

// Pack assigns every item of one overlap group to a display column. Items
// are scanned in the group's insertion (start-time) order and each goes to
// the leftmost column whose previous occupant has ended by the item's
// start; a column frees up the instant its occupant ends, so an item
// starting exactly when another ends may share its column. When no column
// is free a new one is appended.
//
// A zero-duration item therefore never blocks column reuse: its end equals
// its start, and any item starting at or after that instant can take the
// same column.
//
// Afterwards every item gets an equal share of the horizontal space,
// 1/totalColumns wide, offset by its column index. Greedy packing in start
// order is deterministic for a fixed input but makes no minimality claim
// for adversarial orderings.
func Pack(group []domain.TimeBoxedItem) []domain.LayoutItem {
	if len(group) == 0 {
		return nil
	}

	var colEnds []time.Time        // end of the last item placed per column
	colIndex := make([]int, len(group))

	for i, it := range group {
		placed := false
		for ci := range colEnds {
			if !colEnds[ci].After(it.Start) {
				colIndex[i] = ci
				colEnds[ci] = it.End()
				placed = true
				break
			}
		}
		if !placed {
			colIndex[i] = len(colEnds)
			colEnds = append(colEnds, it.End())
		}
	}

	total := float64(len(colEnds))
	out := make([]domain.LayoutItem, len(group))
	for i, it := range group {
		out[i] = domain.LayoutItem{
			TimeBoxedItem:       it,
			ColumnWidthFraction: 1 / total,
			ColumnLeftFraction:  float64(colIndex[i]) / total,
		}
	}
	return out
}
