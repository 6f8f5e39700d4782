package rewind

import (
	"context"
	"fmt"

	"github.com/akravets/sparkle/backend/internal/domain/enums"
	"github.com/akravets/sparkle/backend/internal/repo/memory"
	pgrepo "github.com/akravets/sparkle/backend/internal/repo/postgres"
)

type SwipeStore interface {
	DeleteByActorTarget(ctx context.Context, actorUserID, targetUserID int64) error
}

type LikeStore interface {
	Delete(ctx context.Context, fromUserID, toUserID int64) error
}

type MatchStore interface {
	DeleteByUsers(ctx context.Context, userID, targetID int64) (bool, error)
}

type ProfileStore interface {
	GetCardByUserID(ctx context.Context, userID int64) (pgrepo.ProfileCard, error)
}

// CompensationEngine reverses the durable effects of a swipe. The store
// does not give us a transaction spanning the swipe and match rows, so
// each delete is individually idempotent and a retry after a partial
// failure is safe.
type CompensationEngine struct {
	swipes   SwipeStore
	likes    LikeStore
	matches  MatchStore
	profiles ProfileStore
}

func NewCompensationEngine(swipes SwipeStore, likes LikeStore, matches MatchStore, profiles ProfileStore) *CompensationEngine {
	return &CompensationEngine{
		swipes:   swipes,
		likes:    likes,
		matches:  matches,
		profiles: profiles,
	}
}

// Reverse deletes the swipe row, clears the like and match rows when the
// kind could have formed a match, and returns the target's public card
// for re-display.
func (e *CompensationEngine) Reverse(ctx context.Context, action memory.SwipeAction) (pgrepo.ProfileCard, error) {
	if action.ActorID <= 0 || action.TargetID <= 0 {
		return pgrepo.ProfileCard{}, fmt.Errorf("invalid action to reverse")
	}
	if e.swipes == nil || e.likes == nil || e.matches == nil || e.profiles == nil {
		return pgrepo.ProfileCard{}, fmt.Errorf("compensation dependencies are not configured")
	}

	if err := e.swipes.DeleteByActorTarget(ctx, action.ActorID, action.TargetID); err != nil {
		return pgrepo.ProfileCard{}, fmt.Errorf("delete swipe row: %w", err)
	}

	if enums.SwipeKind(action.Kind).FormsMatch() {
		if err := e.likes.Delete(ctx, action.ActorID, action.TargetID); err != nil {
			return pgrepo.ProfileCard{}, fmt.Errorf("delete like row: %w", err)
		}
		if _, err := e.matches.DeleteByUsers(ctx, action.ActorID, action.TargetID); err != nil {
			return pgrepo.ProfileCard{}, fmt.Errorf("delete match row: %w", err)
		}
	}

	card, err := e.profiles.GetCardByUserID(ctx, action.TargetID)
	if err != nil {
		return pgrepo.ProfileCard{}, fmt.Errorf("fetch restored profile: %w", err)
	}

	return card, nil
}
