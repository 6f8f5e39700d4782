package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MatchRepo struct {
	pool *pgxpool.Pool
}

func NewMatchRepo(pool *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{pool: pool}
}

func (r *MatchRepo) CreateIfMutualLike(ctx context.Context, tx pgx.Tx, userID, targetID int64) (bool, error) {
	if userID <= 0 || targetID <= 0 {
		return false, fmt.Errorf("invalid match payload")
	}
	if tx == nil {
		return false, fmt.Errorf("transaction is required")
	}

	var one int
	err := tx.QueryRow(ctx, `
SELECT 1
FROM likes
WHERE from_user_id = $1 AND to_user_id = $2
LIMIT 1
`, targetID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup reciprocal like: %w", err)
	}

	userA, userB := orderPair(userID, targetID)

	var matchID int64
	err = tx.QueryRow(ctx, `
INSERT INTO matches (
	user_a_id,
	user_b_id,
	status,
	created_at
) VALUES ($1, $2, 'active', NOW())
ON CONFLICT (user_a_id, user_b_id) DO NOTHING
RETURNING id
`, userA, userB).Scan(&matchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("create match: %w", err)
	}

	return matchID > 0, nil
}

// DeleteByUsers clears the match for the pair regardless of which
// orientation it was stored in. Returns whether a row existed.
func (r *MatchRepo) DeleteByUsers(ctx context.Context, userID, targetID int64) (bool, error) {
	if userID <= 0 || targetID <= 0 {
		return false, fmt.Errorf("invalid match delete payload")
	}
	if r.pool == nil {
		return false, fmt.Errorf("postgres pool is nil")
	}

	result, err := r.pool.Exec(ctx, `
DELETE FROM matches
WHERE (user_a_id = $1 AND user_b_id = $2)
	OR (user_a_id = $2 AND user_b_id = $1)
`, userID, targetID)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func orderPair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}
