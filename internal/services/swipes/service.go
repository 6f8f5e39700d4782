package swipes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akravets/sparkle/backend/internal/domain/enums"
	pgrepo "github.com/akravets/sparkle/backend/internal/repo/postgres"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrUnsupportedKind = errors.New("unsupported swipe kind")
)

// TooFastError is returned when the burst limiter rejects a like.
type TooFastError struct {
	RetryAfterSec int64
}

func (e TooFastError) Error() string {
	return "too many swipes, slow down"
}

type SwipeStore interface {
	Create(ctx context.Context, tx pgx.Tx, actorUserID, targetUserID int64, kind string, now time.Time) (pgrepo.SwipeRecord, error)
}

type LikeStore interface {
	Upsert(ctx context.Context, tx pgx.Tx, fromUserID, toUserID int64, isSuperLike bool) error
}

type MatchStore interface {
	CreateIfMutualLike(ctx context.Context, tx pgx.Tx, userID, targetID int64) (bool, error)
}

type RateLimiter interface {
	AllowSwipe(ctx context.Context, userID int64) (int64, bool, error)
}

// HistoryRecorder receives every committed swipe so the rewind engine
// can find it later. Best effort by contract: it cannot fail.
type HistoryRecorder interface {
	Record(actorID, targetID int64, kind string)
}

type Service struct {
	pool        *pgxpool.Pool
	swipeStore  SwipeStore
	likeStore   LikeStore
	matchStore  MatchStore
	history     HistoryRecorder
	rateLimiter RateLimiter
	now         func() time.Time
}

type Dependencies struct {
	Pool        *pgxpool.Pool
	SwipeStore  SwipeStore
	LikeStore   LikeStore
	MatchStore  MatchStore
	History     HistoryRecorder
	RateLimiter RateLimiter
}

type Result struct {
	Kind         enums.SwipeKind
	MatchCreated bool
}

func NewService(deps Dependencies) *Service {
	return &Service{
		pool:        deps.Pool,
		swipeStore:  deps.SwipeStore,
		likeStore:   deps.LikeStore,
		matchStore:  deps.MatchStore,
		history:     deps.History,
		rateLimiter: deps.RateLimiter,
		now:         time.Now,
	}
}

func (s *Service) Swipe(ctx context.Context, userID, targetID int64, kind string) (Result, error) {
	if userID <= 0 || targetID <= 0 || userID == targetID {
		return Result{}, ErrValidation
	}

	normalized, ok := enums.NormalizeSwipeKind(kind)
	if !ok {
		return Result{}, ErrUnsupportedKind
	}

	if normalized.FormsMatch() && s.rateLimiter != nil {
		retryAfter, allowed, err := s.rateLimiter.AllowSwipe(ctx, userID)
		if err != nil {
			return Result{}, fmt.Errorf("apply swipe rate limiter: %w", err)
		}
		if !allowed {
			return Result{}, TooFastError{RetryAfterSec: retryAfter}
		}
	}

	if s.pool == nil || s.swipeStore == nil || s.likeStore == nil || s.matchStore == nil {
		return Result{}, fmt.Errorf("swipe dependencies are not configured")
	}

	now := s.now().UTC()

	matchCreated := false
	if err := pgrepo.WithTx(ctx, s.pool, func(txCtx context.Context, tx pgx.Tx) error {
		if _, err := s.swipeStore.Create(txCtx, tx, userID, targetID, string(normalized), now); err != nil {
			return err
		}
		if !normalized.FormsMatch() {
			return nil
		}

		if err := s.likeStore.Upsert(txCtx, tx, userID, targetID, normalized == enums.SwipeKindSuperLike); err != nil {
			return err
		}
		created, err := s.matchStore.CreateIfMutualLike(txCtx, tx, userID, targetID)
		if err != nil {
			return err
		}
		matchCreated = created
		return nil
	}); err != nil {
		return Result{}, err
	}

	// Recorded only after the durable write committed, so the history
	// never holds a swipe the store does not.
	if s.history != nil {
		s.history.Record(userID, targetID, string(normalized))
	}

	return Result{
		Kind:         normalized,
		MatchCreated: matchCreated,
	}, nil
}
