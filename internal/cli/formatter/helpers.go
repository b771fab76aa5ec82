package formatter

import (
	"fmt"
	"time"

	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
)

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min float64) string {
	m := int(min)
	if m <= 0 {
		return "--"
	}
	h := m / 60
	r := m % 60
	if h > 0 && r > 0 {
		return fmt.Sprintf("%dh %dm", h, r)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", r)
}

// Checkbox renders the completion marker for a task.
func Checkbox(t *domain.Task) string {
	switch {
	case t.Completed:
		return StyleGreen.Render("[x]")
	case t.Archived:
		return StyleDim.Render("[~]")
	default:
		return StyleFg.Render("[ ]")
	}
}

// PriorityPill renders a colored priority label, or a dim placeholder when unset.
func PriorityPill(p domain.Priority) string {
	if p == "" {
		return StyleDim.Render("--")
	}
	return PriorityStyle(p).Render(string(p))
}

// UrgencyPill renders a colored urgency label, or a dim placeholder when unset.
func UrgencyPill(u domain.Urgency) string {
	if u == "" {
		return StyleDim.Render("--")
	}
	return UrgencyStyle(u).Render(string(u))
}

// EmotionPill renders the emotional weight, heavier weights in warmer colors.
func EmotionPill(w domain.EmotionalWeight) string {
	switch w {
	case domain.EmotionalDreading:
		return StyleRed.Render("dreading")
	case domain.EmotionalStressful:
		return StyleYellow.Render("stressful")
	case domain.EmotionalNeutral:
		return StyleFg.Render("neutral")
	case domain.EmotionalEasy:
		return StyleGreen.Render("easy")
	default:
		return StyleDim.Render("--")
	}
}

// EnergyPill renders the energy level a task asks for.
func EnergyPill(e domain.EnergyLevel) string {
	switch e {
	case domain.EnergyHigh:
		return StylePurple.Render("high")
	case domain.EnergyMedium:
		return StyleBlue.Render("medium")
	case domain.EnergyLow:
		return StyleGreen.Render("low")
	default:
		return StyleDim.Render("--")
	}
}

// DueLabel renders a due date as a colored relative label. Far-out dates use
// the weekend-anchored phrasing, which reads more concretely for planning.
func DueLabel(due *time.Time, now time.Time) string {
	if due == nil {
		return StyleDim.Render("--")
	}
	state := dates.DueUrgency(*due, now)
	return DueStyle(state).Render(dates.WeekendRelativeLabel(*due, now))
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time, now time.Time) string {
	if dates.SameDay(t, now) {
		return "Today"
	}
	if dates.SameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}
