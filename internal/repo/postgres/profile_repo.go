package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepo struct {
	pool *pgxpool.Pool
}

// ProfileCard is the public-display projection of a profile, the shape
// handed back to the client when a swiped card is restored.
type ProfileCard struct {
	UserID      int64
	DisplayName string
	Age         int
	CityID      string
	City        string
	Bio         string
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) GetCardByUserID(ctx context.Context, userID int64) (ProfileCard, error) {
	if userID <= 0 {
		return ProfileCard{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return ProfileCard{}, fmt.Errorf("postgres pool is nil")
	}

	var card ProfileCard
	err := r.pool.QueryRow(ctx, `
SELECT
	user_id,
	COALESCE(display_name, ''),
	COALESCE(DATE_PART('year', AGE(NOW(), birthdate::timestamp))::int, 0),
	COALESCE(city_id, ''),
	COALESCE(city, ''),
	COALESCE(bio, '')
FROM profiles
WHERE user_id = $1
`, userID).Scan(
		&card.UserID,
		&card.DisplayName,
		&card.Age,
		&card.CityID,
		&card.City,
		&card.Bio,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileCard{}, ErrProfileNotFound
		}
		return ProfileCard{}, fmt.Errorf("get profile card: %w", err)
	}

	return card, nil
}
