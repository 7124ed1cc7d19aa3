package domain

import "time"

// TimeBoxedItem is the unifying shape every agenda entry is normalized into
// before layout: a start instant plus a non-negative duration in minutes.
// A zero duration means an instant marker (reminders, due tasks).
type TimeBoxedItem struct {
	ID          string
	Title       string
	Icon        string
	Start       time.Time
	DurationMin int
	Category    Category
	Source      SourceKind
}

// End returns the exclusive end instant of the item's interval.
func (it TimeBoxedItem) End() time.Time {
	return it.Start.Add(time.Duration(it.DurationMin) * time.Minute)
}

// Overlaps reports whether two items overlap under half-open interval
// semantics: an item ending exactly when another begins does not overlap
// it, and a zero-duration item overlaps nothing.
func (it TimeBoxedItem) Overlaps(other TimeBoxedItem) bool {
	latestStart := it.Start
	if other.Start.After(latestStart) {
		latestStart = other.Start
	}
	earliestEnd := it.End()
	if other.End().Before(earliestEnd) {
		earliestEnd = other.End()
	}
	return latestStart.Before(earliestEnd)
}

// LayoutItem is a render-time projection of a TimeBoxedItem annotated with
// timeline geometry. It is recomputed on every layout pass and never
// persisted.
type LayoutItem struct {
	TimeBoxedItem

	// VerticalOffset is minutes elapsed since the timeline's origin hour.
	// Negative when an item starts before the origin; clipping is the
	// renderer's concern.
	VerticalOffset int

	// PixelHeight equals the item's duration in minutes.
	PixelHeight int

	// ColumnWidthFraction and ColumnLeftFraction position the item
	// horizontally among its overlap group's columns, both in [0, 1].
	ColumnWidthFraction float64
	ColumnLeftFraction  float64
}
