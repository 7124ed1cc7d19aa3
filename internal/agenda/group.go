package agenda

import (
	"sort"
	"time"

	"github.com/pbarbosa/vida/internal/domain"
)

// Group partitions a start-sorted item list into overlap clusters. Each
// cluster tracks a running end time — the maximum end over its members —
// and a new item joins the open cluster when its start lies strictly before
// that running end; otherwise it closes the cluster and opens a new one.
//
// Because items arrive in start order, a single backward check against the
// most recently opened cluster is sufficient: once a cluster fails to admit
// an item, no later item can reach it either. A zero-duration item can join
// a cluster (its start sits inside the running interval) but never extends
// the running end.
//
// Group panics if the input is not sorted ascending by start instant; the
// aggregator is the only sanctioned producer of its input.
func Group(sorted []domain.TimeBoxedItem) [][]domain.TimeBoxedItem {
	if len(sorted) == 0 {
		return nil
	}
	if !sort.SliceIsSorted(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	}) {
		panic("agenda: Group requires items sorted by start instant")
	}

	var groups [][]domain.TimeBoxedItem
	var groupEnd time.Time // running max end of the last open group

	for _, it := range sorted {
		if len(groups) > 0 && it.Start.Before(groupEnd) {
			last := len(groups) - 1
			groups[last] = append(groups[last], it)
			if it.End().After(groupEnd) {
				groupEnd = it.End()
			}
			continue
		}
		groups = append(groups, []domain.TimeBoxedItem{it})
		groupEnd = it.End()
	}

	return groups
}
