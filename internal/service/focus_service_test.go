package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/planner"
	"github.com/mlindqvist/focal/internal/repository"
	"github.com/mlindqvist/focal/internal/testutil"
)

func setupFocusService(t *testing.T) (FocusService, TaskService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	tasks := NewTaskService(taskRepo, depRepo, Session{UserID: testutil.TestUser}, NewUndoBuffer())
	return NewFocusService(tasks), tasks
}

func TestFocusService_SmartOrdersByScore(t *testing.T) {
	focus, tasks := setupFocusService(t)
	ctx := context.Background()

	low := &domain.Task{Title: "Someday idea", Urgency: domain.UrgencySomeday, Priority: domain.PriorityLow}
	require.NoError(t, tasks.Add(ctx, low))
	high := &domain.Task{Title: "Deadline push", Urgency: domain.UrgencyToday, Priority: domain.PriorityHigh}
	require.NoError(t, tasks.Add(ctx, high))

	list, err := focus.Focus(ctx, domain.SortSmart, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Deadline push", list[0].Title)
}

func TestFocusService_ExcludesCompleted(t *testing.T) {
	focus, tasks := setupFocusService(t)
	ctx := context.Background()

	done := &domain.Task{Title: "Done already"}
	require.NoError(t, tasks.Add(ctx, done))
	require.NoError(t, tasks.Complete(ctx, done.ID))
	open := &domain.Task{Title: "Still open"}
	require.NoError(t, tasks.Add(ctx, open))

	list, err := focus.Focus(ctx, domain.SortSmart, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Still open", list[0].Title)
}

func TestFocusService_EnergyMatch(t *testing.T) {
	focus, tasks := setupFocusService(t)
	ctx := context.Background()

	heavy := &domain.Task{Title: "Deep work", EnergyRequired: domain.EnergyHigh}
	require.NoError(t, tasks.Add(ctx, heavy))
	light := &domain.Task{Title: "File receipts", EnergyRequired: domain.EnergyLow}
	require.NoError(t, tasks.Add(ctx, light))

	list, err := focus.Focus(ctx, domain.SortEnergyMatch, domain.EnergyLow)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, "File receipts", list[0].Title)
}

func TestFocusService_Analyze(t *testing.T) {
	focus, tasks := setupFocusService(t)
	ctx := context.Background()

	due := time.Now().UTC().AddDate(0, 0, 3)
	task := &domain.Task{
		Title:    "Well groomed",
		Priority: domain.PriorityMedium,
		DueDate:  &due,
	}
	require.NoError(t, tasks.Add(ctx, task))

	result, err := focus.Analyze(ctx, task.ID)
	require.NoError(t, err)
	assert.Contains(t, result.MissingFields, "description")
	assert.NotContains(t, result.MissingFields, "priority")
	assert.NotContains(t, result.MissingFields, "dueDate")
	expected := float64(len(planner.TrackedFields)-len(result.MissingFields)) / float64(len(planner.TrackedFields)) * 100
	assert.InDelta(t, expected, result.Score, 0.01)
}

func TestFocusService_AnalyzeUnknownTask(t *testing.T) {
	focus, _ := setupFocusService(t)
	_, err := focus.Analyze(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
