package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled turns all styles into plain passthroughs when false.
// Called once at startup based on terminal detection.
func SetColorEnabled(enabled bool) {
	if enabled {
		return
	}
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleRed = plain
	StyleBlue = plain
	StylePurple = plain
	StyleDim = plain
	StyleFg = plain
	StyleHeader = plain
	StyleBold = plain
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// PriorityStyle returns the style for a task priority.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityLow:
		return StyleDim
	default:
		return StyleYellow
	}
}

// UrgencyStyle returns the style for a task urgency.
func UrgencyStyle(u domain.Urgency) lipgloss.Style {
	switch u {
	case domain.UrgencyToday:
		return StyleRed
	case domain.UrgencyTomorrow:
		return StyleYellow
	case domain.UrgencySomeday:
		return StyleDim
	default:
		return StyleBlue
	}
}

// DueStyle returns the style for a due-state bucket.
func DueStyle(state dates.DueState) lipgloss.Style {
	switch state {
	case dates.DueOverdue:
		return StyleRed
	case dates.DueToday:
		return StyleYellow
	case dates.DueSoon:
		return StyleBlue
	default:
		return StyleDim
	}
}

// EntityColor renders a swatch in the project or category color, falling back
// to the default foreground for invalid or missing colors.
func EntityColor(hex string) lipgloss.Style {
	if !domain.ValidColor(hex) {
		return StyleFg
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
