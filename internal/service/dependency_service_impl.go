package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/repository"
	"github.com/mlindqvist/focal/internal/taskgraph"
)

type dependencyService struct {
	tasks   repository.TaskRepo
	deps    repository.DependencyRepo
	session Session
}

func NewDependencyService(tasks repository.TaskRepo, deps repository.DependencyRepo, session Session) DependencyService {
	return &dependencyService{tasks: tasks, deps: deps, session: session}
}

// AddDependency records that taskID is blocked by dependsOnID. Self edges
// and edges that would close a cycle are rejected before anything is written.
func (s *dependencyService) AddDependency(ctx context.Context, taskID, dependsOnID string) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if _, err := s.ownedTask(ctx, taskID); err != nil {
		return err
	}
	if _, err := s.ownedTask(ctx, dependsOnID); err != nil {
		return err
	}

	edges, err := s.deps.ListByUser(ctx, s.session.UserID)
	if err != nil {
		return err
	}
	set := taskgraph.NewEdgeSet(edges...)
	if err := set.Add(taskID, dependsOnID); err != nil {
		return err
	}
	return s.deps.Create(ctx, taskgraph.Edge{TaskID: taskID, DependsOnID: dependsOnID})
}

func (s *dependencyService) RemoveDependency(ctx context.Context, taskID, dependsOnID string) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	return s.deps.Delete(ctx, taskID, dependsOnID)
}

// CanComplete reports whether every task this one depends on is completed.
// The answer is advisory; completion itself is never blocked.
func (s *dependencyService) CanComplete(ctx context.Context, taskID string) (bool, error) {
	if !s.session.Authenticated() {
		return false, ErrNotAuthenticated
	}
	if _, err := s.ownedTask(ctx, taskID); err != nil {
		return false, err
	}
	tasks, err := s.tasks.ListByUser(ctx, s.session.UserID)
	if err != nil {
		return false, err
	}
	edges, err := s.deps.ListByUser(ctx, s.session.UserID)
	if err != nil {
		return false, err
	}
	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	return taskgraph.NewEdgeSet(edges...).CanComplete(taskID, byID), nil
}

func (s *dependencyService) ownedTask(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if t.UserID != s.session.UserID {
		return nil, ErrNotFound
	}
	return t, nil
}
