package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mlindqvist/focal/internal/db"
	"github.com/mlindqvist/focal/internal/taskgraph"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(db db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: db}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, e taskgraph.Edge) error {
	query := `INSERT INTO task_dependencies (task_id, depends_on_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.TaskID, e.DependsOnID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, taskID, dependsOnID string) error {
	query := `DELETE FROM task_dependencies WHERE task_id = ? AND depends_on_id = ?`
	_, err := r.db.ExecContext(ctx, query, taskID, dependsOnID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListForTasks(ctx context.Context, ids []string) ([]taskgraph.Edge, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?, ", len(ids)-1) + "?"
	args := make([]any, 0, len(ids)*2)
	for _, id := range ids {
		args = append(args, id)
	}
	for _, id := range ids {
		args = append(args, id)
	}

	query := `SELECT task_id, depends_on_id FROM task_dependencies
		WHERE task_id IN (` + placeholders + `) OR depends_on_id IN (` + placeholders + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()
	return r.scanEdges(rows)
}

func (r *SQLiteDependencyRepo) ListByUser(ctx context.Context, userID string) ([]taskgraph.Edge, error) {
	query := `SELECT d.task_id, d.depends_on_id FROM task_dependencies d
		JOIN tasks t ON d.task_id = t.id
		WHERE t.user_id = ?`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies by user: %w", err)
	}
	defer rows.Close()
	return r.scanEdges(rows)
}

func (r *SQLiteDependencyRepo) scanEdges(rows *sql.Rows) ([]taskgraph.Edge, error) {
	var edges []taskgraph.Edge
	for rows.Next() {
		var e taskgraph.Edge
		if err := rows.Scan(&e.TaskID, &e.DependsOnID); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return edges, nil
}
