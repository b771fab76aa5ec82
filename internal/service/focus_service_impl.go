package service

import (
	"context"
	"time"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/planner"
)

type focusService struct {
	tasks TaskService
	now   func() time.Time
}

func NewFocusService(tasks TaskService) FocusService {
	return &focusService{tasks: tasks, now: time.Now}
}

// Focus returns the user's active tasks ordered by the requested mode.
func (s *focusService) Focus(ctx context.Context, mode domain.SortMode, currentEnergy domain.EnergyLevel) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return planner.FocusList(tasks, mode, currentEnergy, s.now()), nil
}

// Analyze reports which prioritization fields the task is missing.
func (s *focusService) Analyze(ctx context.Context, taskID string) (planner.Completeness, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return planner.Completeness{}, err
	}
	return planner.AnalyzeCompleteness(t), nil
}
