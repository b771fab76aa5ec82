// Package planner ranks tasks: a deterministic scoring formula, the focus
// sort/filter modes built on it, and the metadata completeness analyzer.
package planner

import (
	"time"

	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
)

// Deadline and momentum modifiers applied on top of the base score.
const (
	overdueBonus  = 10.0
	dueTodayBonus = 5.0
	quickWinBonus = 2.0
)

// Score maps a task's attributes to a single comparable number; higher means
// more worth acting on now. Urgency and explicit priority dominate the base
// score, while emotional cost and required energy are inverted so that tasks
// which are easier to start rank higher. Pure function of (task, now).
func Score(t *domain.Task, now time.Time) float64 {
	score := domain.UrgencyRank(t.Urgency)*3 +
		domain.PriorityRank(t.Priority)*2 +
		(5 - domain.EmotionalRank(t.EmotionalWeight)) +
		(5 - domain.EnergyRank(t.EnergyRequired))

	if t.DueDate != nil {
		switch {
		case dates.IsPastDate(*t.DueDate, now):
			score += overdueBonus
		case dates.IsToday(*t.DueDate, now):
			score += dueTodayBonus
		}
	}

	if t.QuickWin() {
		score += quickWinBonus
	}

	return score
}
