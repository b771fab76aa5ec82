package planner

import (
	"sort"
	"time"

	"github.com/mlindqvist/focal/internal/domain"
)

// estimate used to position tasks with no estimate in quick-win ordering.
const unsetEstimateMin = 30.0

// FocusList returns the ordered, filtered view of tasks for the given sort
// mode. Completed and archived tasks are always excluded first. currentEnergy
// is only consulted by the energy-match mode. The input slice is never
// mutated.
func FocusList(tasks []*domain.Task, mode domain.SortMode, currentEnergy domain.EnergyLevel, now time.Time) []*domain.Task {
	active := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Active() {
			active = append(active, t)
		}
	}

	switch mode {
	case domain.SortEnergyMatch:
		return sortEnergyMatch(active, currentEnergy)
	case domain.SortQuickWins:
		return sortQuickWins(active)
	case domain.SortEatTheFrog:
		return sortEatTheFrog(active)
	case domain.SortDeadline:
		return sortDeadline(active)
	case domain.SortPriority:
		sort.SliceStable(active, func(i, j int) bool {
			return domain.PriorityRank(active[i].Priority) > domain.PriorityRank(active[j].Priority)
		})
		return active
	default: // smart
		return sortSmart(active, now)
	}
}

func sortSmart(tasks []*domain.Task, now time.Time) []*domain.Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Score(tasks[i], now) > Score(tasks[j], now)
	})
	return tasks
}

// sortEnergyMatch keeps tasks the user has the energy for right now, easiest
// emotional lift first.
func sortEnergyMatch(tasks []*domain.Task, currentEnergy domain.EnergyLevel) []*domain.Task {
	ceiling := domain.EnergyMatchRank(currentEnergy)
	var matched []*domain.Task
	for _, t := range tasks {
		if domain.EnergyMatchRank(t.EnergyRequired) <= ceiling {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return domain.EmotionalRank(matched[i].EmotionalWeight) < domain.EmotionalRank(matched[j].EmotionalWeight)
	})
	return matched
}

// sortQuickWins keeps short, emotionally light tasks, shortest first.
func sortQuickWins(tasks []*domain.Task) []*domain.Task {
	var wins []*domain.Task
	for _, t := range tasks {
		if (t.EstimatedMin == 0 || t.EstimatedMin <= 30) && domain.EmotionalRank(t.EmotionalWeight) <= 2 {
			wins = append(wins, t)
		}
	}
	sort.SliceStable(wins, func(i, j int) bool {
		return effectiveEstimate(wins[i]) < effectiveEstimate(wins[j])
	})
	return wins
}

// sortEatTheFrog keeps the hard stuff: dreaded or stressful tasks plus
// anything explicitly high priority, most urgent first.
func sortEatTheFrog(tasks []*domain.Task) []*domain.Task {
	var frogs []*domain.Task
	for _, t := range tasks {
		if domain.EmotionalRank(t.EmotionalWeight) >= 3 || t.Priority == domain.PriorityHigh {
			frogs = append(frogs, t)
		}
	}
	sort.SliceStable(frogs, func(i, j int) bool {
		return domain.UrgencyRank(frogs[i].Urgency) > domain.UrgencyRank(frogs[j].Urgency)
	})
	return frogs
}

// sortDeadline orders by urgency, then due date ascending with dateless tasks
// last.
func sortDeadline(tasks []*domain.Task) []*domain.Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		ua, ub := domain.UrgencyRank(a.Urgency), domain.UrgencyRank(b.Urgency)
		if ua != ub {
			return ua > ub
		}
		if (a.DueDate == nil) != (b.DueDate == nil) {
			return a.DueDate != nil // dated before dateless
		}
		if a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}
		return false
	})
	return tasks
}

func effectiveEstimate(t *domain.Task) float64 {
	if t.EstimatedMin == 0 {
		return unsetEstimateMin
	}
	return t.EstimatedMin
}
