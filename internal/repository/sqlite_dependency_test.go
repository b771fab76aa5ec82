package repository

import (
	"context"
	"testing"

	"github.com/mlindqvist/focal/internal/taskgraph"
	"github.com/mlindqvist/focal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTasks(t *testing.T, repo *SQLiteTaskRepo, titles ...string) []string {
	t.Helper()
	ctx := context.Background()
	ids := make([]string, len(titles))
	for i, title := range titles {
		task := testutil.NewTestTask(title)
		require.NoError(t, repo.Create(ctx, task))
		ids[i] = task.ID
	}
	return ids
}

func TestDependencyRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	taskRepo := NewSQLiteTaskRepo(db)
	depRepo := NewSQLiteDependencyRepo(db)

	ids := seedTasks(t, taskRepo, "a", "b", "c")

	require.NoError(t, depRepo.Create(ctx, taskgraph.Edge{TaskID: ids[0], DependsOnID: ids[1]}))
	require.NoError(t, depRepo.Create(ctx, taskgraph.Edge{TaskID: ids[0], DependsOnID: ids[2]}))

	edges, err := depRepo.ListForTasks(ctx, []string{ids[0]})
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	// The bulk read also finds edges arriving at a task.
	edges, err = depRepo.ListForTasks(ctx, []string{ids[1]})
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, ids[0], edges[0].TaskID)
}

func TestDependencyRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	taskRepo := NewSQLiteTaskRepo(db)
	depRepo := NewSQLiteDependencyRepo(db)

	ids := seedTasks(t, taskRepo, "a", "b")
	require.NoError(t, depRepo.Create(ctx, taskgraph.Edge{TaskID: ids[0], DependsOnID: ids[1]}))
	require.NoError(t, depRepo.Delete(ctx, ids[0], ids[1]))

	edges, err := depRepo.ListForTasks(ctx, ids)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestDependencyRepo_CascadeOnTaskDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	taskRepo := NewSQLiteTaskRepo(db)
	depRepo := NewSQLiteDependencyRepo(db)

	ids := seedTasks(t, taskRepo, "a", "b")
	require.NoError(t, depRepo.Create(ctx, taskgraph.Edge{TaskID: ids[0], DependsOnID: ids[1]}))

	require.NoError(t, taskRepo.Delete(ctx, ids[1]))

	edges, err := depRepo.ListForTasks(ctx, ids)
	require.NoError(t, err)
	assert.Empty(t, edges, "edges die with either endpoint")
}

func TestDependencyRepo_ListByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	taskRepo := NewSQLiteTaskRepo(db)
	depRepo := NewSQLiteDependencyRepo(db)

	ids := seedTasks(t, taskRepo, "a", "b")
	require.NoError(t, depRepo.Create(ctx, taskgraph.Edge{TaskID: ids[0], DependsOnID: ids[1]}))

	edges, err := depRepo.ListByUser(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	edges, err = depRepo.ListByUser(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestDependencyRepo_ListForTasks_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	depRepo := NewSQLiteDependencyRepo(db)

	edges, err := depRepo.ListForTasks(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, edges)
}
