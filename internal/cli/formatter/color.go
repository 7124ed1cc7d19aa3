package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pbarbosa/vida/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle maps an agenda category to its display style.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryFixed:
		return StyleBlue
	case domain.CategoryAppointment:
		return StylePurple
	case domain.CategoryTask:
		return StyleYellow
	case domain.CategoryHabit:
		return StyleGreen
	case domain.CategoryGoal, domain.CategoryReminder:
		return StyleRed
	case domain.CategoryBreak:
		return StyleAqua
	case domain.CategoryFocus:
		return StyleHeader
	default:
		return StyleFg
	}
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
