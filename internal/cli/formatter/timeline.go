package formatter

import (
	"fmt"
	"strings"

	"github.com/pbarbosa/vida/internal/domain"
)

// laneWidth is the indentation budget one overlap group's columns share.
const laneWidth = 24

// barCap keeps very long blocks from flooding the terminal; the coordinate
// model itself never clamps, so this is purely a rendering concern.
const barCap = 8

// Timeline renders a laid-out day as an hour-gutter list. Items arrive in
// layout order (groups in start order, columns left to right); overlapping
// items are indented proportionally to their column position.
func Timeline(items []domain.LayoutItem, originHour int) string {
	if len(items) == 0 {
		return Dim("Nothing scheduled.")
	}

	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderItem(it, originHour))
	}
	return b.String()
}

func renderItem(it domain.LayoutItem, originHour int) string {
	style := CategoryStyle(it.Category)
	clock := clockFromOffset(it.VerticalOffset, originHour)
	indent := strings.Repeat(" ", int(it.ColumnLeftFraction*laneWidth))

	var b strings.Builder
	head := fmt.Sprintf("%s  %s%s %s", Dim(clock), indent, style.Render("▌"), titleLine(it))
	b.WriteString(head)

	for h := 0; h < barHeight(it.PixelHeight); h++ {
		b.WriteString(fmt.Sprintf("\n%s  %s%s", strings.Repeat(" ", 5), indent, style.Render("▌")))
	}
	return b.String()
}

func titleLine(it domain.LayoutItem) string {
	title := it.Title
	if it.Icon != "" {
		title = it.Icon + " " + title
	}
	if it.Source == domain.SourceAI {
		title += Dim(" (suggested)")
	}
	if it.DurationMin == 0 {
		return Dim(title)
	}
	return fmt.Sprintf("%s %s", title, Dim(fmt.Sprintf("(%d min)", it.DurationMin)))
}

// barHeight scales one rendered line per half hour, capped.
func barHeight(pixelHeight int) int {
	h := pixelHeight / 30
	if h > barCap {
		h = barCap
	}
	if h < 0 {
		h = 0
	}
	return h
}

// clockFromOffset converts a vertical offset back to its clock label.
// Offsets before the origin (negative) still render correctly.
func clockFromOffset(offset, originHour int) string {
	total := originHour*60 + offset
	hour := total / 60
	minute := total % 60
	if minute < 0 {
		hour--
		minute += 60
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// DayHeader renders the heading line above a day's timeline.
func DayHeader(date string, weekday string) string {
	line := fmt.Sprintf("%s · %s", weekday, date)
	return StyleHeader.Render(line) + "\n" + Dim(strings.Repeat("─", len(line)))
}
