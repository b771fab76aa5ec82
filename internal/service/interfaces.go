package service

import (
	"context"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/exchange"
	"github.com/mlindqvist/focal/internal/planner"
)

// Session identifies the acting user. Mutating services reject an empty
// UserID with ErrNotAuthenticated before touching the store.
type Session struct {
	UserID string
}

// Authenticated reports whether the session carries a user.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// BulkFailure records one failed item in a bulk operation.
type BulkFailure struct {
	ID  string
	Err error
}

// BulkReport is the per-item outcome of a bulk operation. Earlier successes
// stand regardless of later failures; the caller decides how to handle
// partial completion.
type BulkReport struct {
	Succeeded []string
	Failures  []BulkFailure
}

// AllSucceeded reports whether no item failed.
func (r BulkReport) AllSucceeded() bool {
	return len(r.Failures) == 0
}

type TaskService interface {
	Add(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns the user's tasks with derived subtask and dependency
	// views freshly rebuilt.
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Complete(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	// Delete removes the task and, first, all of its descendants, deepest
	// first. Deleted tasks are retained in the undo buffer for a short
	// window.
	Delete(ctx context.Context, id string) error
	Undo(ctx context.Context, id string) error
	CompleteMany(ctx context.Context, ids []string) (BulkReport, error)
	DeleteMany(ctx context.Context, ids []string) (BulkReport, error)
}

type DependencyService interface {
	AddDependency(ctx context.Context, taskID, dependsOnID string) error
	RemoveDependency(ctx context.Context, taskID, dependsOnID string) error
	// CanComplete is advisory: completing a blocked task is still allowed.
	CanComplete(ctx context.Context, taskID string) (bool, error)
}

type FocusService interface {
	Focus(ctx context.Context, mode domain.SortMode, currentEnergy domain.EnergyLevel) ([]*domain.Task, error)
	Analyze(ctx context.Context, taskID string) (planner.Completeness, error)
}

type ProjectService interface {
	Add(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	Add(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type JournalService interface {
	Add(ctx context.Context, e *domain.JournalEntry) error
	List(ctx context.Context) ([]*domain.JournalEntry, error)
	ListWeek(ctx context.Context, year, week int) ([]*domain.JournalEntry, error)
	Update(ctx context.Context, e *domain.JournalEntry) error
	Delete(ctx context.Context, id string) error
}

// ExchangeResult summarizes an import.
type ExchangeResult struct {
	TaskCount       int
	ProjectCount    int
	CategoryCount   int
	JournalCount    int
	DependencyCount int
}

type ExchangeService interface {
	Export(ctx context.Context) (*exchange.Document, error)
	// Import re-mints every id and remaps references before writing, inside
	// a single transaction.
	Import(ctx context.Context, doc *exchange.Document) (*ExchangeResult, error)
}
