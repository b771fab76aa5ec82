package formatter

import (
	"testing"
	"time"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "--", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	assert.Equal(t, "2h", FormatMinutes(120))
}

func TestTruncID(t *testing.T) {
	out := TruncID("aaaaaaaa-1111-2222-3333-444444444444")
	assert.Contains(t, out, "aaaaaaaa")
	assert.NotContains(t, out, "1111")
}

func TestDueLabel(t *testing.T) {
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)

	assert.Contains(t, DueLabel(nil, now), "--")

	tomorrow := now.AddDate(0, 0, 1)
	assert.Contains(t, DueLabel(&tomorrow, now), "Tomorrow")

	past := now.AddDate(0, 0, -3)
	assert.Contains(t, DueLabel(&past, now), "days ago")
}

func TestDueLabel_FarDatesUseWeekendPhrasing(t *testing.T) {
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC) // Monday

	nextMonday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Contains(t, DueLabel(&nextMonday, now), "Monday after this weekend")

	saturday := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
	assert.Contains(t, DueLabel(&saturday, now), "Next weekend")
}

func TestCheckbox(t *testing.T) {
	assert.Contains(t, Checkbox(&domain.Task{Completed: true}), "[x]")
	assert.Contains(t, Checkbox(&domain.Task{Archived: true}), "[~]")
	assert.Contains(t, Checkbox(&domain.Task{}), "[ ]")
}

func TestHumanDate(t *testing.T) {
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", HumanDate(now, now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Jun 1, 2025", HumanDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), now))
}
