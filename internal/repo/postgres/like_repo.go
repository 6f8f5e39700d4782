package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

func (r *LikeRepo) Upsert(ctx context.Context, tx pgx.Tx, fromUserID, toUserID int64, isSuperLike bool) error {
	if fromUserID <= 0 || toUserID <= 0 {
		return fmt.Errorf("invalid like payload")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO likes (
	from_user_id,
	to_user_id,
	is_super_like,
	created_at
) VALUES ($1, $2, $3, NOW())
ON CONFLICT (from_user_id, to_user_id) DO UPDATE SET
	is_super_like = likes.is_super_like OR EXCLUDED.is_super_like,
	created_at = NOW()
`, fromUserID, toUserID, isSuperLike); err != nil {
		return fmt.Errorf("upsert like: %w", err)
	}

	return nil
}

// Delete is idempotent: removing an absent like succeeds.
func (r *LikeRepo) Delete(ctx context.Context, fromUserID, toUserID int64) error {
	if fromUserID <= 0 || toUserID <= 0 {
		return fmt.Errorf("invalid like delete payload")
	}
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	if _, err := r.pool.Exec(ctx, `
DELETE FROM likes
WHERE from_user_id = $1 AND to_user_id = $2
`, fromUserID, toUserID); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}

	return nil
}
