package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/repository"
	"github.com/mlindqvist/focal/internal/taskgraph"
	"github.com/mlindqvist/focal/internal/testutil"
)

func setupTaskService(t *testing.T) (TaskService, repository.TaskRepo, repository.DependencyRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	svc := NewTaskService(taskRepo, depRepo, Session{UserID: testutil.TestUser}, NewUndoBuffer())
	return svc, taskRepo, depRepo
}

func TestTaskService_Add(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Title: "Write report"}
	require.NoError(t, svc.Add(ctx, task))

	assert.NotEmpty(t, task.ID, "service should assign UUID")
	assert.Equal(t, testutil.TestUser, task.UserID)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestTaskService_Add_RejectsEmptyTitle(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	err := svc.Add(context.Background(), &domain.Task{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)
}

func TestTaskService_Add_RejectsUnknownParent(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	parentID := "no-such-task"
	err := svc.Add(context.Background(), &domain.Task{Title: "Orphan", ParentTaskID: &parentID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_Add_ExtractsInlineDate(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Title: "call dentist tomorrow"}
	require.NoError(t, svc.Add(ctx, task))

	assert.Equal(t, "call dentist", task.Title)
	require.NotNil(t, task.DueDate)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Format("2006-01-02"), task.DueDate.Format("2006-01-02"))
}

func TestTaskService_Add_ExplicitDueDateWinsOverInline(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	due := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{Title: "call dentist tomorrow", DueDate: &due}
	require.NoError(t, svc.Add(ctx, task))

	assert.Equal(t, "call dentist tomorrow", task.Title, "title untouched when due date is explicit")
	assert.Equal(t, due, *task.DueDate)
}

func TestTaskService_RequiresSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	svc := NewTaskService(taskRepo, depRepo, Session{}, NewUndoBuffer())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Add(ctx, &domain.Task{Title: "x"}), ErrNotAuthenticated)
	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Complete(ctx, "id"), ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Delete(ctx, "id"), ErrNotAuthenticated)
}

func TestTaskService_GetByID_OtherUserHidden(t *testing.T) {
	svc, taskRepo, _ := setupTaskService(t)
	ctx := context.Background()

	other := testutil.NewTestTask("Someone else's")
	other.UserID = "user-other"
	require.NoError(t, taskRepo.Create(ctx, other))

	_, err := svc.GetByID(ctx, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_CompleteAndReopen(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Title: "Finish chapter"}
	require.NoError(t, svc.Add(ctx, task))

	require.NoError(t, svc.Complete(ctx, task.ID))
	fetched, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Completed)
	assert.NotNil(t, fetched.CompletedAt)

	require.NoError(t, svc.Reopen(ctx, task.ID))
	fetched, err = svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Completed)
	assert.Nil(t, fetched.CompletedAt)
}

func TestTaskService_Archive(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Title: "Old idea"}
	require.NoError(t, svc.Add(ctx, task))
	require.NoError(t, svc.Archive(ctx, task.ID))

	fetched, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Archived)
}

func TestTaskService_List_HydratesSubtasksAndDependencies(t *testing.T) {
	svc, _, depRepo := setupTaskService(t)
	ctx := context.Background()

	parent := &domain.Task{Title: "Parent"}
	require.NoError(t, svc.Add(ctx, parent))
	child := &domain.Task{Title: "Child", ParentTaskID: &parent.ID}
	require.NoError(t, svc.Add(ctx, child))
	blocker := &domain.Task{Title: "Blocker"}
	require.NoError(t, svc.Add(ctx, blocker))

	require.NoError(t, depRepo.Create(ctx, taskgraph.Edge{TaskID: child.ID, DependsOnID: blocker.ID}))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	byID := make(map[string]*domain.Task)
	for _, task := range tasks {
		byID[task.ID] = task
	}
	assert.Equal(t, []string{child.ID}, byID[parent.ID].SubtaskIDs)
	assert.Equal(t, []string{blocker.ID}, byID[child.ID].DependsOn)
	assert.Equal(t, []string{child.ID}, byID[blocker.ID].DependedOnBy)
}

func TestTaskService_Delete_CascadesToDescendants(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	root := &domain.Task{Title: "Root"}
	require.NoError(t, svc.Add(ctx, root))
	mid := &domain.Task{Title: "Mid", ParentTaskID: &root.ID}
	require.NoError(t, svc.Add(ctx, mid))
	leaf := &domain.Task{Title: "Leaf", ParentTaskID: &mid.ID}
	require.NoError(t, svc.Add(ctx, leaf))
	unrelated := &domain.Task{Title: "Unrelated"}
	require.NoError(t, svc.Add(ctx, unrelated))

	require.NoError(t, svc.Delete(ctx, root.ID))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Unrelated", tasks[0].Title)
}

func TestTaskService_UndoRestoresSubtree(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	root := &domain.Task{Title: "Root"}
	require.NoError(t, svc.Add(ctx, root))
	child := &domain.Task{Title: "Child", ParentTaskID: &root.ID}
	require.NoError(t, svc.Add(ctx, child))

	require.NoError(t, svc.Delete(ctx, root.ID))
	require.NoError(t, svc.Undo(ctx, root.ID))

	restored, err := svc.GetByID(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, "Root", restored.Title)

	restoredChild, err := svc.GetByID(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, restoredChild.ParentTaskID)
	assert.Equal(t, root.ID, *restoredChild.ParentTaskID)
}

func TestTaskService_UndoWithoutDelete(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	err := svc.Undo(context.Background(), "never-deleted")
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestTaskService_CompleteMany_PartialFailure(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	a := &domain.Task{Title: "A"}
	b := &domain.Task{Title: "B"}
	require.NoError(t, svc.Add(ctx, a))
	require.NoError(t, svc.Add(ctx, b))

	report, err := svc.CompleteMany(ctx, []string{a.ID, "missing", b.ID})
	require.NoError(t, err)

	assert.Equal(t, []string{a.ID, b.ID}, report.Succeeded)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "missing", report.Failures[0].ID)
	assert.ErrorIs(t, report.Failures[0].Err, ErrNotFound)
	assert.False(t, report.AllSucceeded())

	done, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed, "earlier successes stand despite later failures")
}

func TestTaskService_DeleteMany(t *testing.T) {
	svc, _, _ := setupTaskService(t)
	ctx := context.Background()

	a := &domain.Task{Title: "A"}
	b := &domain.Task{Title: "B"}
	require.NoError(t, svc.Add(ctx, a))
	require.NoError(t, svc.Add(ctx, b))

	report, err := svc.DeleteMany(ctx, []string{a.ID, b.ID})
	require.NoError(t, err)
	assert.True(t, report.AllSucceeded())

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
