package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SwipeRepo struct {
	pool *pgxpool.Pool
}

func NewSwipeRepo(pool *pgxpool.Pool) *SwipeRepo {
	return &SwipeRepo{pool: pool}
}

type SwipeRecord struct {
	ID           int64
	ActorUserID  int64
	TargetUserID int64
	Kind         string
	CreatedAt    time.Time
}

func (r *SwipeRepo) Create(ctx context.Context, tx pgx.Tx, actorUserID, targetUserID int64, kind string, now time.Time) (SwipeRecord, error) {
	if actorUserID <= 0 || targetUserID <= 0 || strings.TrimSpace(kind) == "" {
		return SwipeRecord{}, fmt.Errorf("invalid swipe payload")
	}
	if tx == nil {
		return SwipeRecord{}, fmt.Errorf("transaction is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var rec SwipeRecord
	err := tx.QueryRow(ctx, `
INSERT INTO swipes (
	actor_user_id,
	target_user_id,
	kind,
	created_at
) VALUES ($1, $2, $3, $4)
RETURNING id, actor_user_id, target_user_id, kind, created_at
`, actorUserID, targetUserID, strings.ToUpper(strings.TrimSpace(kind)), now.UTC()).Scan(
		&rec.ID,
		&rec.ActorUserID,
		&rec.TargetUserID,
		&rec.Kind,
		&rec.CreatedAt,
	)
	if err != nil {
		return SwipeRecord{}, fmt.Errorf("create swipe: %w", err)
	}

	return rec, nil
}

// DeleteByActorTarget removes the swipe row for the pair. Deleting an
// already-absent row is a no-op so a retried compensation stays safe.
func (r *SwipeRepo) DeleteByActorTarget(ctx context.Context, actorUserID, targetUserID int64) error {
	if actorUserID <= 0 || targetUserID <= 0 {
		return fmt.Errorf("invalid swipe delete payload")
	}
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	if _, err := r.pool.Exec(ctx, `
DELETE FROM swipes
WHERE actor_user_id = $1 AND target_user_id = $2
`, actorUserID, targetUserID); err != nil {
		return fmt.Errorf("delete swipe: %w", err)
	}

	return nil
}
