package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RewindUsageRepo owns the append-only rewind usage ledger. Rows are
// inserted once per consumed rewind and never updated or deleted.
type RewindUsageRepo struct {
	pool *pgxpool.Pool
}

func NewRewindUsageRepo(pool *pgxpool.Pool) *RewindUsageRepo {
	return &RewindUsageRepo{pool: pool}
}

func (r *RewindUsageRepo) CountForDay(ctx context.Context, actorUserID int64, dayKey string) (int, error) {
	if actorUserID <= 0 || strings.TrimSpace(dayKey) == "" {
		return 0, fmt.Errorf("invalid rewind usage lookup payload")
	}
	if r.pool == nil {
		return 0, fmt.Errorf("postgres pool is nil")
	}

	var count int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM rewind_usages
WHERE actor_user_id = $1 AND day_key = $2::date
`, actorUserID, dayKey).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rewind usages: %w", err)
	}

	return count, nil
}

func (r *RewindUsageRepo) Insert(ctx context.Context, actorUserID int64, dayKey string, usedAt time.Time) error {
	if actorUserID <= 0 || strings.TrimSpace(dayKey) == "" {
		return fmt.Errorf("invalid rewind usage payload")
	}
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if usedAt.IsZero() {
		usedAt = time.Now().UTC()
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO rewind_usages (
	id,
	actor_user_id,
	day_key,
	used_at
) VALUES ($1, $2, $3::date, $4)
`, uuid.NewString(), actorUserID, dayKey, usedAt.UTC()); err != nil {
		return fmt.Errorf("insert rewind usage: %w", err)
	}

	return nil
}
