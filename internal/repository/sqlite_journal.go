package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mlindqvist/focal/internal/db"
	"github.com/mlindqvist/focal/internal/domain"
)

const journalColumns = `id, user_id, entry_date, week, year, section, prompt_index, content, mood, created_at, updated_at`

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(db db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: db}
}

func (r *SQLiteJournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (` + journalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Date.Format(dateLayout),
		e.Week,
		e.Year,
		string(e.Section),
		e.PromptIndex,
		e.Content,
		e.Mood,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE id = ?`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteJournalRepo) ListByUser(ctx context.Context, userID string) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE user_id = ? ORDER BY entry_date, prompt_index`
	return r.queryEntries(ctx, query, userID)
}

func (r *SQLiteJournalRepo) ListByBucket(ctx context.Context, userID string, year, week int) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries
		WHERE user_id = ? AND year = ? AND week = ? ORDER BY entry_date, prompt_index`
	return r.queryEntries(ctx, query, userID, year, week)
}

func (r *SQLiteJournalRepo) Update(ctx context.Context, e *domain.JournalEntry) error {
	query := `UPDATE journal_entries SET entry_date = ?, week = ?, year = ?, section = ?,
		prompt_index = ?, content = ?, mood = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Date.Format(dateLayout), e.Week, e.Year, string(e.Section),
		e.PromptIndex, e.Content, e.Mood, e.UpdatedAt.Format(time.RFC3339), e.ID)
	if err != nil {
		return fmt.Errorf("updating journal entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("journal entry %s not found", e.ID)
	}
	return nil
}

func (r *SQLiteJournalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteJournalRepo) scanEntry(row taskScanner) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var dateStr, sectionStr, createdAtStr, updatedAtStr string

	err := row.Scan(&e.ID, &e.UserID, &dateStr, &e.Week, &e.Year, &sectionStr,
		&e.PromptIndex, &e.Content, &e.Mood, &createdAtStr, &updatedAtStr)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("journal entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}

	e.Section = domain.JournalSection(sectionStr)
	if e.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing entry_date: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}
