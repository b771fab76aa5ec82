package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mlindqvist/focal/internal/domain"
)

// TestUser is the user id fixtures are created under.
const TestUser = "user-test"

// Task options
type TaskOption func(*domain.Task)

func WithParent(id string) TaskOption {
	return func(t *domain.Task) {
		t.ParentTaskID = &id
	}
}

func WithProject(id string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = &id
	}
}

func WithCategories(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.CategoryIDs = ids
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		t.DueDate = &day
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithUrgency(u domain.Urgency) TaskOption {
	return func(t *domain.Task) {
		t.Urgency = u
	}
}

func WithEstimate(min float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMin = min
	}
}

func Completed() TaskOption {
	return func(t *domain.Task) {
		now := time.Now().UTC()
		t.Completed = true
		t.CompletedAt = &now
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestProject(name string) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Project{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Name:      name,
		Color:     "#4a90d9",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestCategory(name string) *domain.Category {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Category{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Name:      name,
		Color:     "#e8a33d",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestJournalEntry(section domain.JournalSection, content string) *domain.JournalEntry {
	now := time.Now().UTC().Truncate(time.Second)
	week, year := domain.BucketFor(now)
	return &domain.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Week:      week,
		Year:      year,
		Section:   section,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
