package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteTaskRepo(db)

	due := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("Write report",
		testutil.WithDueDate(due),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithUrgency(domain.UrgencyWeek),
		testutil.WithEstimate(45),
	)
	task.Description = "quarterly numbers"
	task.Tags = []string{"work", "writing"}

	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "quarterly numbers", got.Description)
	assert.Equal(t, []string{"work", "writing"}, got.Tags)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, domain.UrgencyWeek, got.Urgency)
	assert.Equal(t, 45.0, got.EstimatedMin)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2025-06-12", got.DueDate.Format(dateLayout))
}

func TestTaskRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.Error(t, err)
}

func TestTaskRepo_CategoriesRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	taskRepo := NewSQLiteTaskRepo(db)
	catRepo := NewSQLiteCategoryRepo(db)

	c1 := testutil.NewTestCategory("errands")
	c2 := testutil.NewTestCategory("health")
	require.NoError(t, catRepo.Create(ctx, c1))
	require.NoError(t, catRepo.Create(ctx, c2))

	task := testutil.NewTestTask("Book checkup", testutil.WithCategories(c1.ID, c2.ID))
	require.NoError(t, taskRepo.Create(ctx, task))

	got, err := taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{c1.ID, c2.ID}, got.CategoryIDs)

	// Update replaces the join rows wholesale.
	got.CategoryIDs = []string{c2.ID}
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, taskRepo.Update(ctx, got))

	again, err := taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c2.ID}, again.CategoryIDs)
}

func TestTaskRepo_ParentMustExist(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteTaskRepo(db)

	orphan := testutil.NewTestTask("child", testutil.WithParent("missing-parent"))
	assert.Error(t, repo.Create(ctx, orphan), "parent must exist at creation time")
}

func TestTaskRepo_ListByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteTaskRepo(db)

	t1 := testutil.NewTestTask("one")
	t2 := testutil.NewTestTask("two")
	other := testutil.NewTestTask("other")
	other.UserID = "someone-else"

	require.NoError(t, repo.Create(ctx, t1))
	require.NoError(t, repo.Create(ctx, t2))
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.ListByUser(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestTaskRepo_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)

	ghost := testutil.NewTestTask("ghost")
	assert.Error(t, repo.Update(context.Background(), ghost))
}

func TestTaskRepo_DeleteRemovesJoinRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	taskRepo := NewSQLiteTaskRepo(db)
	catRepo := NewSQLiteCategoryRepo(db)

	cat := testutil.NewTestCategory("home")
	require.NoError(t, catRepo.Create(ctx, cat))
	task := testutil.NewTestTask("mow lawn", testutil.WithCategories(cat.ID))
	require.NoError(t, taskRepo.Create(ctx, task))

	require.NoError(t, taskRepo.Delete(ctx, task.ID))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM task_categories WHERE task_id = ?`, task.ID).Scan(&count))
	assert.Zero(t, count)
}

func TestTaskRepo_SoftDeleteMarker(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteTaskRepo(db)

	task := testutil.NewTestTask("keep around")
	require.NoError(t, repo.Create(ctx, task))

	deletedAt := time.Now().UTC().Truncate(time.Second)
	task.DeletedAt = &deletedAt
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)
	assert.True(t, got.DeletedAt.Equal(deletedAt))
}
