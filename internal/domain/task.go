package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTitle is returned when a task title is empty after trimming.
var ErrInvalidTitle = errors.New("task title is required")

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Tags        []string

	ProjectID    *string
	CategoryIDs  []string
	ParentTaskID *string

	Priority        Priority
	Urgency         Urgency
	EmotionalWeight EmotionalWeight
	EnergyRequired  EnergyLevel
	Importance      int // 1-10
	EstimatedMin    float64

	DueDate     *time.Time // date-only, no time component
	Completed   bool
	Archived    bool
	CompletedAt *time.Time
	DeletedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Derived fields, recomputed from the collection. Never authoritative,
	// never persisted.
	SubtaskIDs   []string
	DependsOn    []string
	DependedOnBy []string
}

// Validate checks the invariants a task must satisfy before it is stored.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrInvalidTitle
	}
	if t.Importance != 0 && (t.Importance < 1 || t.Importance > 10) {
		return fmt.Errorf("importance %d must be between 1 and 10", t.Importance)
	}
	if t.EstimatedMin < 0 {
		return fmt.Errorf("estimated minutes must not be negative")
	}
	return nil
}

// Active reports whether the task should appear in focus views.
func (t *Task) Active() bool {
	return !t.Completed && !t.Archived && t.DeletedAt == nil
}

// QuickWin reports whether the task carries a small, known estimate.
func (t *Task) QuickWin() bool {
	return t.EstimatedMin > 0 && t.EstimatedMin < 15
}

// HasCategory reports whether the task references the given category.
func (t *Task) HasCategory(categoryID string) bool {
	for _, id := range t.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
