package repository

import (
	"context"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/taskgraph"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type JournalRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.JournalEntry, error)
	ListByBucket(ctx context.Context, userID string, year, week int) ([]*domain.JournalEntry, error)
	Update(ctx context.Context, e *domain.JournalEntry) error
	Delete(ctx context.Context, id string) error
}

// DependencyRepo persists the directed dependency edge set.
type DependencyRepo interface {
	Create(ctx context.Context, e taskgraph.Edge) error
	Delete(ctx context.Context, taskID, dependsOnID string) error
	// ListForTasks is the bulk hydration read: all edges whose either end is
	// in ids.
	ListForTasks(ctx context.Context, ids []string) ([]taskgraph.Edge, error)
	ListByUser(ctx context.Context, userID string) ([]taskgraph.Edge, error)
}
