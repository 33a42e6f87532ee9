package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/ports"
)

// achievementRepository implements ports.AchievementRepository using SQLite.
// The seq column preserves qualification order across restarts.
type achievementRepository struct {
	db *sql.DB
}

// newAchievementRepository creates a new achievement repository.
func newAchievementRepository(db *sql.DB) ports.AchievementRepository {
	return &achievementRepository{db: db}
}

// Unlock records newly unlocked achievements, in order. Already-recorded ids
// are left untouched so unlocks stay permanent.
func (r *achievementRepository) Unlock(ctx context.Context, ids []domain.AchievementID) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR IGNORE INTO achievements (id, unlocked_at) VALUES (?, ?)`
	now := time.Now()
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, query, string(id), now); err != nil {
			return fmt.Errorf("failed to unlock achievement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit unlocks: %w", err)
	}

	return nil
}

// FindUnlocked returns the unlocked set in qualification order.
func (r *achievementRepository) FindUnlocked(ctx context.Context) ([]domain.AchievementID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM achievements ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var ids []domain.AchievementID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		ids = append(ids, domain.AchievementID(id))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate achievements: %w", err)
	}

	return ids, nil
}
