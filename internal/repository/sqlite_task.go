package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mlindqvist/focal/internal/db"
	"github.com/mlindqvist/focal/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, user_id, title, description, tags, project_id, parent_task_id,
		priority, urgency, emotional_weight, energy_required, importance, estimated_min,
		due_date, completed, archived, completed_at, deleted_at, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		tagsToJSON(t.Tags),
		nullableStringToValue(t.ProjectID),
		nullableStringToValue(t.ParentTaskID),
		string(t.Priority),
		string(t.Urgency),
		string(t.EmotionalWeight),
		string(t.EnergyRequired),
		t.Importance,
		t.EstimatedMin,
		nullableTimeToString(t.DueDate, dateLayout),
		boolToInt(t.Completed),
		boolToInt(t.Archived),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		nullableTimeToString(t.DeletedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return r.replaceCategories(ctx, t.ID, t.CategoryIDs)
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := r.scanTask(row)
	if err != nil {
		return nil, err
	}
	cats, err := r.categoriesFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	t.CategoryIDs = cats[id]
	return t, nil
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks, err := r.scanTasks(rows)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	cats, err := r.categoriesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		t.CategoryIDs = cats[t.ID]
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET
		title = ?, description = ?, tags = ?, project_id = ?, parent_task_id = ?,
		priority = ?, urgency = ?, emotional_weight = ?, energy_required = ?,
		importance = ?, estimated_min = ?, due_date = ?, completed = ?, archived = ?,
		completed_at = ?, deleted_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		tagsToJSON(t.Tags),
		nullableStringToValue(t.ProjectID),
		nullableStringToValue(t.ParentTaskID),
		string(t.Priority),
		string(t.Urgency),
		string(t.EmotionalWeight),
		string(t.EnergyRequired),
		t.Importance,
		t.EstimatedMin,
		nullableTimeToString(t.DueDate, dateLayout),
		boolToInt(t.Completed),
		boolToInt(t.Archived),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		nullableTimeToString(t.DeletedAt, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s not found", t.ID)
	}
	return r.replaceCategories(ctx, t.ID, t.CategoryIDs)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return nil
}

// replaceCategories rewrites the task_categories join rows for a task.
func (r *SQLiteTaskRepo) replaceCategories(ctx context.Context, taskID string, categoryIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_categories WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("clearing task categories: %w", err)
	}
	for _, catID := range categoryIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO task_categories (task_id, category_id) VALUES (?, ?)`, taskID, catID); err != nil {
			return fmt.Errorf("linking category %s: %w", catID, err)
		}
	}
	return nil
}

// categoriesFor loads category ids for the given tasks in one query.
func (r *SQLiteTaskRepo) categoriesFor(ctx context.Context, taskIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(taskIDs))
	if len(taskIDs) == 0 {
		return out, nil
	}

	placeholders := strings.Repeat("?, ", len(taskIDs)-1) + "?"
	args := make([]any, len(taskIDs))
	for i, id := range taskIDs {
		args[i] = id
	}

	query := `SELECT task_id, category_id FROM task_categories WHERE task_id IN (` + placeholders + `) ORDER BY category_id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing task categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, catID string
		if err := rows.Scan(&taskID, &catID); err != nil {
			return nil, fmt.Errorf("scanning task category: %w", err)
		}
		out[taskID] = append(out[taskID], catID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task categories: %w", err)
	}
	return out, nil
}

type taskScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTaskRepo) scanTask(row taskScanner) (*domain.Task, error) {
	var t domain.Task
	var tagsStr, priorityStr, urgencyStr, emotionalStr, energyStr string
	var projectID, parentTaskID sql.NullString
	var dueDateStr, completedAtStr, deletedAtStr sql.NullString
	var completedInt, archivedInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &tagsStr, &projectID, &parentTaskID,
		&priorityStr, &urgencyStr, &emotionalStr, &energyStr, &t.Importance, &t.EstimatedMin,
		&dueDateStr, &completedInt, &archivedInt, &completedAtStr, &deletedAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Tags = tagsFromJSON(tagsStr)
	if projectID.Valid {
		t.ProjectID = &projectID.String
	}
	if parentTaskID.Valid {
		t.ParentTaskID = &parentTaskID.String
	}
	t.Priority = domain.Priority(priorityStr)
	t.Urgency = domain.Urgency(urgencyStr)
	t.EmotionalWeight = domain.EmotionalWeight(emotionalStr)
	t.EnergyRequired = domain.EnergyLevel(energyStr)
	t.DueDate = parseNullableTime(dueDateStr, dateLayout)
	t.Completed = intToBool(completedInt)
	t.Archived = intToBool(archivedInt)
	t.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)
	t.DeletedAt = parseNullableTime(deletedAtStr, time.RFC3339)

	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
