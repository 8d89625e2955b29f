package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planora/backend/internal/model"
)

// TasksRepository persists and loads task rows.
type TasksRepository struct {
	db Querier
}

// NewTasksRepository constructs a TasksRepository on top of a pool.
func NewTasksRepository(db Querier) *TasksRepository {
	return &TasksRepository{db: db}
}

// Create inserts a new task row owned by task.UserID and fills in the
// generated identifier and creation timestamp. An unknown owner
// surfaces as a foreign key violation from the store.
func (r *TasksRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, frequency, due_date, due_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		task.UserID, task.Title, task.Description, task.Frequency, task.DueDate, task.DueTime,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	return task, nil
}

// ListByUser returns all tasks owned by userID, ordered by identifier
// so listings are deterministic.
func (r *TasksRepository) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	query := `
		SELECT id, user_id, title, description, frequency, due_date, due_time, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("selecting tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Frequency,
			&t.DueDate, &t.DueTime, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}

	return tasks, nil
}

// Delete removes the task with the given identifier. When no row
// matches it reports pgx.ErrNoRows so callers can map it to not found.
func (r *TasksRepository) Delete(ctx context.Context, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, taskID)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting task: %w", pgx.ErrNoRows)
	}

	return nil
}

// Update replaces all five mutable fields of the task with the given
// identifier in one statement. When no row matches it reports
// pgx.ErrNoRows.
func (r *TasksRepository) Update(ctx context.Context, task *model.Task) error {
	query := `
		UPDATE tasks
		SET title = $1,
		    description = $2,
		    frequency = $3,
		    due_date = $4,
		    due_time = $5
		WHERE id = $6`

	tag, err := r.db.Exec(ctx, query,
		task.Title, task.Description, task.Frequency, task.DueDate, task.DueTime, task.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating task: %w", pgx.ErrNoRows)
	}

	return nil
}
