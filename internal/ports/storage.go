// Package ports defines the interfaces between the core and external
// infrastructure: persistence, notification cues, and git context detection.
package ports

import (
	"context"
	"time"

	"github.com/hxlin/tomato-cli/internal/domain"
)

// TaskRepository defines the interface for task persistence.
// This is a driven port (implemented by adapters).
type TaskRepository interface {
	// Save persists a task to storage.
	Save(ctx context.Context, task *domain.Task) error

	// FindByID retrieves a task by its unique identifier.
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	// FindAll retrieves all tasks in creation order.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// Search returns tasks whose text fuzzily matches the query, best first.
	Search(ctx context.Context, query string) ([]*domain.Task, error)

	// Update modifies an existing task.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from storage. Deleting the active task clears
	// the active pointer.
	Delete(ctx context.Context, id string) error

	// SetActive marks a task as the active one (nil id clears it).
	SetActive(ctx context.Context, id *string) error

	// FindActive returns the id of the active task, or nil.
	FindActive(ctx context.Context) (*string, error)
}

// SessionRepository defines the interface for session-log persistence.
// Sessions are append-only: there is no update or delete.
type SessionRepository interface {
	// Append persists a completed focus session.
	Append(ctx context.Context, session *domain.Session) error

	// FindAll retrieves the full log in append order.
	FindAll(ctx context.Context) ([]*domain.Session, error)

	// FindSince retrieves sessions with timestamps at or after t, in
	// append order.
	FindSince(ctx context.Context, t time.Time) ([]*domain.Session, error)
}

// AchievementRepository persists the unlocked achievement set, preserving
// qualification order.
type AchievementRepository interface {
	// Unlock records newly unlocked achievements, in order.
	Unlock(ctx context.Context, ids []domain.AchievementID) error

	// FindUnlocked returns the unlocked set in qualification order.
	FindUnlocked(ctx context.Context) ([]domain.AchievementID, error)
}

// Storage is the combined repository interface.
type Storage interface {
	// Tasks provides access to task operations.
	Tasks() TaskRepository

	// Sessions provides access to session-log operations.
	Sessions() SessionRepository

	// Achievements provides access to the unlocked set.
	Achievements() AchievementRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
