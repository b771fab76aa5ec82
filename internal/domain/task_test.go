package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskValidate_RequiresTitle(t *testing.T) {
	task := &Task{Title: "   "}
	assert.Error(t, task.Validate())

	task.Title = "Write report"
	assert.NoError(t, task.Validate())
}

func TestTaskValidate_ImportanceRange(t *testing.T) {
	task := &Task{Title: "x", Importance: 11}
	assert.Error(t, task.Validate())

	task.Importance = 10
	assert.NoError(t, task.Validate())

	task.Importance = 0 // unset is allowed
	assert.NoError(t, task.Validate())
}

func TestTaskValidate_NegativeEstimate(t *testing.T) {
	task := &Task{Title: "x", EstimatedMin: -5}
	assert.Error(t, task.Validate())
}

func TestTaskActive(t *testing.T) {
	now := time.Now()
	assert.True(t, (&Task{Title: "x"}).Active())
	assert.False(t, (&Task{Title: "x", Completed: true}).Active())
	assert.False(t, (&Task{Title: "x", Archived: true}).Active())
	assert.False(t, (&Task{Title: "x", DeletedAt: &now}).Active())
}

func TestTaskQuickWin(t *testing.T) {
	assert.True(t, (&Task{EstimatedMin: 10}).QuickWin())
	assert.False(t, (&Task{EstimatedMin: 15}).QuickWin())
	assert.False(t, (&Task{}).QuickWin(), "unset estimate is not a quick win")
}

func TestUrgencyRank_Monotonic(t *testing.T) {
	order := []Urgency{UrgencySomeday, UrgencyMonth, UrgencyWeek, UrgencyTomorrow, UrgencyToday}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, UrgencyRank(order[i]), UrgencyRank(order[i-1]))
	}
}

func TestRankDefaults(t *testing.T) {
	assert.Equal(t, 2.0, UrgencyRank(""), "unset urgency defaults to month")
	assert.Equal(t, 2.0, PriorityRank(""), "unset priority defaults to medium")
	assert.Equal(t, 2.0, EmotionalRank(""), "unset emotional weight defaults to neutral")
	assert.Equal(t, 2.0, EnergyRank(""), "unset energy defaults to medium")
	assert.Equal(t, 1, EnergyMatchRank(""), "unset energy matches as medium")
}

func TestProjectValidateColor(t *testing.T) {
	p := &Project{Name: "Home", Color: "#4a90d9"}
	assert.NoError(t, p.ValidateColor())

	p.Color = "blue"
	assert.Error(t, p.ValidateColor())

	p.Color = ""
	assert.NoError(t, p.ValidateColor())
}
