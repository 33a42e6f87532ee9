package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/ports"
)

// TaskService handles task-ledger use cases. Per the UI-control contract,
// operations on unknown ids are silent no-ops rather than errors; only
// storage failures are reported.
type TaskService struct {
	storage ports.Storage
}

// NewTaskService creates a new task service.
func NewTaskService(storage ports.Storage) *TaskService {
	return &TaskService{storage: storage}
}

// AddTaskRequest contains the data needed to create a new task.
type AddTaskRequest struct {
	Text               string
	Priority           domain.Priority
	Category           string
	EstimatedPomodoros int
}

// AddTask creates a new task. The first task added while no task is active
// becomes the active one.
func (s *TaskService) AddTask(ctx context.Context, req AddTaskRequest) (*domain.Task, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, nil
	}

	task := domain.NewTask(text, req.Priority, req.Category, req.EstimatedPomodoros)
	if err := s.storage.Tasks().Save(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	active, err := s.storage.Tasks().FindActive(ctx)
	if err == nil && active == nil {
		if err := s.storage.Tasks().SetActive(ctx, &task.ID); err != nil {
			return nil, fmt.Errorf("failed to set active task: %w", err)
		}
	}

	return task, nil
}

// ListTasks retrieves all tasks in creation order.
func (s *TaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.storage.Tasks().FindAll(ctx)
}

// SearchTasks retrieves tasks whose text fuzzily matches query.
func (s *TaskService) SearchTasks(ctx context.Context, query string) ([]*domain.Task, error) {
	if strings.TrimSpace(query) == "" {
		return s.ListTasks(ctx)
	}
	return s.storage.Tasks().Search(ctx, query)
}

// ToggleTask flips a task's completed flag, stamping or clearing its
// completion time. Unknown ids are no-ops.
func (s *TaskService) ToggleTask(ctx context.Context, id string) error {
	task, err := s.storage.Tasks().FindByID(ctx, id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find task: %w", err)
	}

	task.Toggle()
	return s.storage.Tasks().Update(ctx, task)
}

// DeleteTask removes a task. Deleting the active task clears the active
// pointer; previously logged sessions keep their text snapshot. Unknown ids
// are no-ops.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	err := s.storage.Tasks().Delete(ctx, id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil
	}
	return err
}

// SetActiveTask points new focus sessions at the given task. A nil id clears
// the pointer; unknown ids are no-ops.
func (s *TaskService) SetActiveTask(ctx context.Context, id *string) error {
	if id != nil {
		_, err := s.storage.Tasks().FindByID(ctx, *id)
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find task: %w", err)
		}
	}
	return s.storage.Tasks().SetActive(ctx, id)
}

// ActiveTask resolves the active task, or nil when none is set.
func (s *TaskService) ActiveTask(ctx context.Context) (*domain.Task, error) {
	id, err := s.storage.Tasks().FindActive(ctx)
	if err != nil || id == nil {
		return nil, err
	}
	task, err := s.storage.Tasks().FindByID(ctx, *id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil, nil
	}
	return task, err
}
