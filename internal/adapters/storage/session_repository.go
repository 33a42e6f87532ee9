package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/ports"
)

// sessionRepository implements ports.SessionRepository using SQLite. The log
// is append-only; the seq column records append order.
type sessionRepository struct {
	db *sql.DB
}

// newSessionRepository creates a new session repository.
func newSessionRepository(db *sql.DB) ports.SessionRepository {
	return &sessionRepository{db: db}
}

// Append persists a completed focus session.
func (r *sessionRepository) Append(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, task_id, task_text, duration_minutes, git_branch, git_commit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.TaskID,
		session.TaskText,
		session.DurationMinutes,
		session.GitBranch,
		session.GitCommit,
		session.Timestamp,
	)

	if err != nil {
		return fmt.Errorf("failed to append session: %w", err)
	}

	return nil
}

// FindAll retrieves the full log in append order.
func (r *sessionRepository) FindAll(ctx context.Context) ([]*domain.Session, error) {
	query := `
		SELECT id, task_id, task_text, duration_minutes, git_branch, git_commit, created_at
		FROM sessions
		ORDER BY seq
	`
	return r.query(ctx, query)
}

// FindSince retrieves sessions with timestamps at or after t, in append order.
func (r *sessionRepository) FindSince(ctx context.Context, t time.Time) ([]*domain.Session, error) {
	query := `
		SELECT id, task_id, task_text, duration_minutes, git_branch, git_commit, created_at
		FROM sessions
		WHERE created_at >= ?
		ORDER BY seq
	`
	return r.query(ctx, query, t)
}

func (r *sessionRepository) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var session domain.Session
		var taskID sql.NullString

		err := rows.Scan(
			&session.ID,
			&taskID,
			&session.TaskText,
			&session.DurationMinutes,
			&session.GitBranch,
			&session.GitCommit,
			&session.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		if taskID.Valid {
			session.TaskID = &taskID.String
		}

		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}
