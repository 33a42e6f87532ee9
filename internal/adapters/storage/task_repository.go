package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/ports"
	"github.com/sahilm/fuzzy"
)

// taskRepository implements ports.TaskRepository using SQLite.
type taskRepository struct {
	db *sql.DB
}

// newTaskRepository creates a new task repository.
func newTaskRepository(db *sql.DB) ports.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, text, priority, category, estimated_pomodoros, completed_pomodoros, completed, created_at, completed_at`

// Save persists a task to storage.
func (r *taskRepository) Save(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Text,
		string(task.Priority),
		task.Category,
		task.EstimatedPomodoros,
		task.CompletedPomodoros,
		task.Completed,
		task.CreatedAt,
		task.CompletedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return nil
}

// FindByID retrieves a task by its unique identifier.
func (r *taskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// FindAll retrieves all tasks in creation order.
func (r *taskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// Search does a fuzzy match over task text, best matches first.
func (r *taskRepository) Search(ctx context.Context, query string) ([]*domain.Task, error) {
	tasks, err := r.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for fuzzy search: %w", err)
	}

	texts := make([]string, len(tasks))
	for i, task := range tasks {
		texts[i] = task.Text
	}

	matches := fuzzy.Find(query, texts)

	var result []*domain.Task
	for _, match := range matches {
		if match.Score > 0 {
			result = append(result, tasks[match.Index])
		}
	}

	return result, nil
}

// Update modifies an existing task.
func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET text = ?, priority = ?, category = ?, estimated_pomodoros = ?,
		    completed_pomodoros = ?, completed = ?, completed_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		task.Text,
		string(task.Priority),
		task.Category,
		task.EstimatedPomodoros,
		task.CompletedPomodoros,
		task.Completed,
		task.CompletedAt,
		task.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task from storage. The active_task row cascades away when
// it references the deleted task, so the active pointer clears itself.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// SetActive marks a task as the active one. A nil id clears the pointer.
func (r *taskRepository) SetActive(ctx context.Context, id *string) error {
	if id == nil {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM active_task`); err != nil {
			return fmt.Errorf("failed to clear active task: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO active_task (slot, task_id) VALUES (1, ?)
		ON CONFLICT(slot) DO UPDATE SET task_id = excluded.task_id
	`
	if _, err := r.db.ExecContext(ctx, query, *id); err != nil {
		return fmt.Errorf("failed to set active task: %w", err)
	}

	return nil
}

// FindActive returns the id of the active task, or nil when none is set.
func (r *taskRepository) FindActive(ctx context.Context) (*string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT task_id FROM active_task WHERE slot = 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active task: %w", err)
	}

	return &id, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var completedAt sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.Text,
		&task.Priority,
		&task.Category,
		&task.EstimatedPomodoros,
		&task.CompletedPomodoros,
		&task.Completed,
		&task.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}

	return &task, nil
}
