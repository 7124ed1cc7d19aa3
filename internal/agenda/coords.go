package agenda

import "github.com/pbarbosa/vida/internal/domain"

// MapToCoordinates fills in an item's vertical geometry against a timeline
// whose origin sits at originHour and where one minute equals one unit.
// The offset may be negative for items starting before the origin; clamping
// and clipping are rendering decisions and must leave the offset untouched.
func MapToCoordinates(item domain.LayoutItem, originHour int) domain.LayoutItem {
	item.VerticalOffset = (item.Start.Hour()-originHour)*60 + item.Start.Minute()
	item.PixelHeight = item.DurationMin
	return item
}

// Layout runs the full pipeline over an aggregated, start-sorted day list:
// overlap grouping, per-group column packing, then coordinate mapping.
// Groups are flattened in the order they were opened.
func Layout(sorted []domain.TimeBoxedItem, originHour int) []domain.LayoutItem {
	var out []domain.LayoutItem
	for _, group := range Group(sorted) {
		for _, item := range Pack(group) {
			out = append(out, MapToCoordinates(item, originHour))
		}
	}
	return out
}
