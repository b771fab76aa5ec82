package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/repository"
	"github.com/mlindqvist/focal/internal/taskgraph"
)

type taskService struct {
	tasks   repository.TaskRepo
	deps    repository.DependencyRepo
	session Session
	undo    *UndoBuffer
	now     func() time.Time
}

func NewTaskService(tasks repository.TaskRepo, deps repository.DependencyRepo, session Session, undo *UndoBuffer) TaskService {
	return &taskService{
		tasks:   tasks,
		deps:    deps,
		session: session,
		undo:    undo,
		now:     time.Now,
	}
}

// Add creates the task. When no due date is set, the title is scanned for an
// inline date phrase ("call dentist tomorrow"); a match sets the due date and
// strips the phrase from the title.
func (s *taskService) Add(ctx context.Context, t *domain.Task) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if t.DueDate == nil {
		if cleaned, due, ok := dates.ExtractDateFromText(t.Title, s.now()); ok {
			t.Title = cleaned
			t.DueDate = &due
		}
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ParentTaskID != nil {
		if _, err := s.ownedTask(ctx, *t.ParentTaskID); err != nil {
			return err
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.UserID = s.session.UserID
	now := s.now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
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
	edges, err := s.deps.ListForTasks(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	hydrated := taskgraph.NewEdgeSet(edges...).Apply([]*domain.Task{t})
	return hydrated[0], nil
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	tasks, err := s.tasks.ListByUser(ctx, s.session.UserID)
	if err != nil {
		return nil, err
	}
	edges, err := s.deps.ListByUser(ctx, s.session.UserID)
	if err != nil {
		return nil, err
	}
	tasks = taskgraph.RebuildSubtasks(tasks)
	return taskgraph.NewEdgeSet(edges...).Apply(tasks), nil
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.ownedTask(ctx, t.ID); err != nil {
		return err
	}
	t.UserID = s.session.UserID
	t.UpdatedAt = s.now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Complete(ctx context.Context, id string) error {
	return s.setCompletion(ctx, id, true)
}

func (s *taskService) Reopen(ctx context.Context, id string) error {
	return s.setCompletion(ctx, id, false)
}

func (s *taskService) setCompletion(ctx context.Context, id string, done bool) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	t, err := s.ownedTask(ctx, id)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	t.Completed = done
	if done {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = now
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Archive(ctx context.Context, id string) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	t, err := s.ownedTask(ctx, id)
	if err != nil {
		return err
	}
	t.Archived = true
	t.UpdatedAt = s.now().UTC()
	return s.tasks.Update(ctx, t)
}

// Delete removes the task and all of its descendants, deepest first, and
// buffers the subtree for undo.
func (s *taskService) Delete(ctx context.Context, id string) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	root, err := s.ownedTask(ctx, id)
	if err != nil {
		return err
	}
	all, err := s.tasks.ListByUser(ctx, s.session.UserID)
	if err != nil {
		return err
	}

	descendants := taskgraph.Descendants(all, id)
	for _, d := range descendants {
		if err := s.tasks.Delete(ctx, d.ID); err != nil {
			return err
		}
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	// Snapshot in parent-first order so undo can re-create top down.
	snapshot := make([]domain.Task, 0, len(descendants)+1)
	snapshot = append(snapshot, *root)
	for i := len(descendants) - 1; i >= 0; i-- {
		snapshot = append(snapshot, *descendants[i])
	}
	s.undo.Put(id, snapshot)
	return nil
}

// Undo re-creates a recently deleted task subtree under its original ids.
func (s *taskService) Undo(ctx context.Context, id string) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	snapshot, ok := s.undo.Take(id)
	if !ok {
		return ErrNothingToUndo
	}
	for i := range snapshot {
		t := snapshot[i]
		if err := s.tasks.Create(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}

func (s *taskService) CompleteMany(ctx context.Context, ids []string) (BulkReport, error) {
	return s.bulk(ctx, ids, s.Complete)
}

func (s *taskService) DeleteMany(ctx context.Context, ids []string) (BulkReport, error) {
	return s.bulk(ctx, ids, s.Delete)
}

func (s *taskService) bulk(ctx context.Context, ids []string, op func(context.Context, string) error) (BulkReport, error) {
	if !s.session.Authenticated() {
		return BulkReport{}, ErrNotAuthenticated
	}
	var report BulkReport
	for _, id := range ids {
		if err := op(ctx, id); err != nil {
			report.Failures = append(report.Failures, BulkFailure{ID: id, Err: err})
			continue
		}
		report.Succeeded = append(report.Succeeded, id)
	}
	return report, nil
}

// ownedTask fetches the task and verifies it belongs to the session user.
func (s *taskService) ownedTask(ctx context.Context, id string) (*domain.Task, error) {
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
