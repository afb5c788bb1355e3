package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/account-service/internal/domain"
)

// ActivityEntry is one audit row.
type ActivityEntry struct {
	ID        int64
	UserID    domain.Identity
	Action    string
	CreatedAt time.Time
}

// ActivityRepository persists the account activity trail.
type ActivityRepository interface {
	Record(ctx context.Context, userID domain.Identity, action string) error
	Recent(ctx context.Context, limit int) ([]ActivityEntry, error)
}

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository constructs repository.
func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Record(ctx context.Context, userID domain.Identity, action string) error {
	const query = `
        INSERT INTO activity_logs (user_id, user_action)
        VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, int64(userID), action)
	return err
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]ActivityEntry, error) {
	const query = `
        SELECT id, user_id, user_action, created_at
        FROM activity_logs
        ORDER BY id DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ActivityEntry
	for rows.Next() {
		var entry ActivityEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
