package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/repository"
	"github.com/mlindqvist/focal/internal/testutil"
)

func setupJournalService(t *testing.T) JournalService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewJournalService(repository.NewSQLiteJournalRepo(database), Session{UserID: testutil.TestUser})
}

func TestJournalService_AddComputesBucket(t *testing.T) {
	svc := setupJournalService(t)
	ctx := context.Background()

	entry := &domain.JournalEntry{
		Date:    time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), // Monday, ISO week 24
		Section: domain.SectionWins,
		Content: "Finished the draft",
	}
	require.NoError(t, svc.Add(ctx, entry))

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 24, entry.Week)
	assert.Equal(t, 2025, entry.Year)
}

func TestJournalService_AddDefaultsDateToNow(t *testing.T) {
	svc := setupJournalService(t)
	entry := &domain.JournalEntry{Section: domain.SectionFreeform, Content: "Loose thought"}
	require.NoError(t, svc.Add(context.Background(), entry))
	assert.False(t, entry.Date.IsZero())
}

func TestJournalService_RejectsInvalidSection(t *testing.T) {
	svc := setupJournalService(t)
	entry := &domain.JournalEntry{Section: "brags", Content: "x"}
	assert.Error(t, svc.Add(context.Background(), entry))
}

func TestJournalService_RejectsEmptyContent(t *testing.T) {
	svc := setupJournalService(t)
	entry := &domain.JournalEntry{Section: domain.SectionWins}
	assert.Error(t, svc.Add(context.Background(), entry))
}

func TestJournalService_ListWeek(t *testing.T) {
	svc := setupJournalService(t)
	ctx := context.Background()

	inWeek := &domain.JournalEntry{
		Date:    time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Section: domain.SectionWins,
		Content: "This week",
	}
	otherWeek := &domain.JournalEntry{
		Date:    time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		Section: domain.SectionWins,
		Content: "Next week",
	}
	require.NoError(t, svc.Add(ctx, inWeek))
	require.NoError(t, svc.Add(ctx, otherWeek))

	entries, err := svc.ListWeek(ctx, 2025, 24)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "This week", entries[0].Content)
}

func TestJournalService_UpdateRecomputesBucket(t *testing.T) {
	svc := setupJournalService(t)
	ctx := context.Background()

	entry := &domain.JournalEntry{
		Date:    time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Section: domain.SectionWins,
		Content: "Original",
	}
	require.NoError(t, svc.Add(ctx, entry))

	entry.Date = time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	entry.Content = "Moved"
	require.NoError(t, svc.Update(ctx, entry))
	assert.Equal(t, 25, entry.Week)

	entries, err := svc.ListWeek(ctx, 2025, 25)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Moved", entries[0].Content)
}

func TestJournalService_Delete(t *testing.T) {
	svc := setupJournalService(t)
	ctx := context.Background()

	entry := &domain.JournalEntry{Section: domain.SectionGratitude, Content: "Sunshine"}
	require.NoError(t, svc.Add(ctx, entry))
	require.NoError(t, svc.Delete(ctx, entry.ID))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
