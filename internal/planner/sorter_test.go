package planner

import (
	"testing"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusList_BaselineExcludesCompletedAndArchived(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "a", Title: "a"},
		{ID: "b", Title: "b", Completed: true},
		{ID: "c", Title: "c", Archived: true},
	}
	for mode := range domain.ValidSortModes {
		out := FocusList(tasks, domain.SortMode(mode), domain.EnergyHigh, now)
		for _, task := range out {
			assert.True(t, task.Active(), "mode %s leaked inactive task %s", mode, task.ID)
		}
	}
}

func TestFocusList_DoesNotMutateInput(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "a", Title: "a", Priority: domain.PriorityLow},
		{ID: "b", Title: "b", Priority: domain.PriorityHigh},
	}
	FocusList(tasks, domain.SortPriority, "", now)
	assert.Equal(t, "a", tasks[0].ID)
	assert.Equal(t, "b", tasks[1].ID)
}

func TestFocusList_Smart(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "low", Title: "low", Urgency: domain.UrgencySomeday},
		{ID: "high", Title: "high", Urgency: domain.UrgencyToday, Priority: domain.PriorityHigh},
		{ID: "mid", Title: "mid", Urgency: domain.UrgencyWeek},
	}
	out := FocusList(tasks, domain.SortSmart, "", now)
	require.Len(t, out, 3)
	assert.Equal(t, "high", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
	assert.Equal(t, "low", out[2].ID)
}

func TestFocusList_EnergyMatch(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "hi", Title: "hi", EnergyRequired: domain.EnergyHigh, EmotionalWeight: domain.EmotionalEasy},
		{ID: "lo-stress", Title: "ls", EnergyRequired: domain.EnergyLow, EmotionalWeight: domain.EmotionalStressful},
		{ID: "lo-easy", Title: "le", EnergyRequired: domain.EnergyLow, EmotionalWeight: domain.EmotionalEasy},
		{ID: "unset", Title: "u"}, // defaults to medium energy
	}

	out := FocusList(tasks, domain.SortEnergyMatch, domain.EnergyLow, now)
	require.Len(t, out, 2, "only low-energy tasks match low current energy")
	assert.Equal(t, "lo-easy", out[0].ID, "easiest emotional weight first")
	assert.Equal(t, "lo-stress", out[1].ID)

	out = FocusList(tasks, domain.SortEnergyMatch, domain.EnergyMedium, now)
	require.Len(t, out, 3, "medium energy admits unset-energy tasks")

	out = FocusList(tasks, domain.SortEnergyMatch, domain.EnergyHigh, now)
	assert.Len(t, out, 4)
}

func TestFocusList_QuickWins(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "long", Title: "l", EstimatedMin: 45},
		{ID: "short", Title: "s", EstimatedMin: 10},
		{ID: "dread", Title: "d", EstimatedMin: 5, EmotionalWeight: domain.EmotionalDreading},
		{ID: "unset", Title: "u"},
		{ID: "medium", Title: "m", EstimatedMin: 25},
	}

	out := FocusList(tasks, domain.SortQuickWins, "", now)
	require.Len(t, out, 3)
	assert.Equal(t, "short", out[0].ID)
	assert.Equal(t, "medium", out[1].ID)
	assert.Equal(t, "unset", out[2].ID, "unset estimate sorts as 30")

	for _, task := range out {
		assert.LessOrEqual(t, domain.EmotionalRank(task.EmotionalWeight), 2.0)
		if task.EstimatedMin != 0 {
			assert.LessOrEqual(t, task.EstimatedMin, 30.0)
		}
	}
}

func TestFocusList_EatTheFrog(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "easy", Title: "e", EmotionalWeight: domain.EmotionalEasy},
		{ID: "dread-someday", Title: "d", EmotionalWeight: domain.EmotionalDreading, Urgency: domain.UrgencySomeday},
		{ID: "high-today", Title: "h", Priority: domain.PriorityHigh, Urgency: domain.UrgencyToday},
		{ID: "stress-week", Title: "s", EmotionalWeight: domain.EmotionalStressful, Urgency: domain.UrgencyWeek},
	}

	out := FocusList(tasks, domain.SortEatTheFrog, "", now)
	require.Len(t, out, 3)
	assert.Equal(t, "high-today", out[0].ID)
	assert.Equal(t, "stress-week", out[1].ID)
	assert.Equal(t, "dread-someday", out[2].ID)

	for _, task := range out {
		frog := domain.EmotionalRank(task.EmotionalWeight) >= 3 || task.Priority == domain.PriorityHigh
		assert.True(t, frog, "task %s does not belong in eat-the-frog", task.ID)
	}
}

func TestFocusList_Deadline(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "week-late", Title: "wl", Urgency: domain.UrgencyWeek, DueDate: datePtr(2025, 6, 20)},
		{ID: "week-none", Title: "wn", Urgency: domain.UrgencyWeek},
		{ID: "week-soon", Title: "ws", Urgency: domain.UrgencyWeek, DueDate: datePtr(2025, 6, 12)},
		{ID: "today", Title: "t", Urgency: domain.UrgencyToday},
	}

	out := FocusList(tasks, domain.SortDeadline, "", now)
	require.Len(t, out, 4)
	assert.Equal(t, "today", out[0].ID, "urgency dominates")
	assert.Equal(t, "week-soon", out[1].ID, "earlier due date wins the tie")
	assert.Equal(t, "week-late", out[2].ID)
	assert.Equal(t, "week-none", out[3].ID, "dateless tasks sort last")
}

func TestFocusList_Priority(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "m1", Title: "m1"},
		{ID: "h", Title: "h", Priority: domain.PriorityHigh},
		{ID: "l", Title: "l", Priority: domain.PriorityLow},
		{ID: "m2", Title: "m2", Priority: domain.PriorityMedium},
	}
	out := FocusList(tasks, domain.SortPriority, "", now)
	require.Len(t, out, 4)
	assert.Equal(t, "h", out[0].ID)
	assert.Equal(t, "m1", out[1].ID, "stable sort preserves prior order on ties")
	assert.Equal(t, "m2", out[2].ID)
	assert.Equal(t, "l", out[3].ID)
}
