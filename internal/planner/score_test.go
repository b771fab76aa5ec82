package planner

import (
	"testing"
	"time"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestScore_QuickWinScenario(t *testing.T) {
	// (3*3) + (2*2) + (5-2) + (5-2) + 0 + 2 = 21
	task := &domain.Task{
		Title:           "Reply to landlord",
		Urgency:         domain.UrgencyWeek,
		Priority:        domain.PriorityMedium,
		EmotionalWeight: domain.EmotionalNeutral,
		EnergyRequired:  domain.EnergyMedium,
		EstimatedMin:    10,
	}
	assert.Equal(t, 21.0, Score(task, now))
}

func TestScore_Deterministic(t *testing.T) {
	task := &domain.Task{
		Title:    "Stable",
		Urgency:  domain.UrgencyToday,
		Priority: domain.PriorityHigh,
		DueDate:  datePtr(2025, 6, 10),
	}
	assert.Equal(t, Score(task, now), Score(task, now))
}

func TestScore_DeadlineModifiers(t *testing.T) {
	base := &domain.Task{Title: "x"}
	overdue := &domain.Task{Title: "x", DueDate: datePtr(2025, 6, 9)}
	dueToday := &domain.Task{Title: "x", DueDate: datePtr(2025, 6, 10)}
	future := &domain.Task{Title: "x", DueDate: datePtr(2025, 6, 20)}

	assert.Equal(t, Score(base, now)+10, Score(overdue, now))
	assert.Equal(t, Score(base, now)+5, Score(dueToday, now))
	assert.Equal(t, Score(base, now), Score(future, now))
}

func TestScore_QuickWinBoundary(t *testing.T) {
	under := &domain.Task{Title: "x", EstimatedMin: 14.5}
	at := &domain.Task{Title: "x", EstimatedMin: 15}
	unset := &domain.Task{Title: "x"}

	assert.Equal(t, Score(unset, now)+2, Score(under, now))
	assert.Equal(t, Score(unset, now), Score(at, now), "15 minutes is not a quick win")
}

func TestScore_MonotonicInPriority(t *testing.T) {
	mk := func(p domain.Priority) *domain.Task {
		return &domain.Task{Title: "x", Priority: p, Urgency: domain.UrgencyWeek}
	}
	low := Score(mk(domain.PriorityLow), now)
	med := Score(mk(domain.PriorityMedium), now)
	high := Score(mk(domain.PriorityHigh), now)
	assert.Less(t, low, med)
	assert.Less(t, med, high)
}

func TestScore_MonotonicInUrgency(t *testing.T) {
	mk := func(u domain.Urgency) *domain.Task {
		return &domain.Task{Title: "x", Urgency: u}
	}
	prev := Score(mk(domain.UrgencySomeday), now)
	for _, u := range []domain.Urgency{domain.UrgencyMonth, domain.UrgencyWeek, domain.UrgencyTomorrow, domain.UrgencyToday} {
		s := Score(mk(u), now)
		assert.Greater(t, s, prev, "urgency %s should outrank the one below", u)
		prev = s
	}
}

func TestScore_EasierTasksRankHigher(t *testing.T) {
	easy := &domain.Task{Title: "x", EmotionalWeight: domain.EmotionalEasy, EnergyRequired: domain.EnergyLow}
	dread := &domain.Task{Title: "x", EmotionalWeight: domain.EmotionalDreading, EnergyRequired: domain.EnergyHigh}
	assert.Greater(t, Score(easy, now), Score(dread, now))
}
