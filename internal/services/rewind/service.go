package rewind

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/akravets/sparkle/backend/internal/repo/memory"
	pgrepo "github.com/akravets/sparkle/backend/internal/repo/postgres"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNoActionsToRewind  = errors.New("no swipes to undo")
	ErrRewindLimitReached = errors.New("daily rewind limit reached")
)

type History interface {
	PeekMostRecent(actorID int64) (memory.SwipeAction, bool)
	Remove(actorID int64, action memory.SwipeAction) bool
}

type QuotaGate interface {
	RemainingToday(ctx context.Context, actorUserID int64, isPremium bool) (bool, error)
	RecordUsage(ctx context.Context, actorUserID int64) error
}

type Compensator interface {
	Reverse(ctx context.Context, action memory.SwipeAction) (pgrepo.ProfileCard, error)
}

// Service undoes an actor's most recent swipe: quota gate, compensating
// deletes against the durable store, then removal from the local history.
type Service struct {
	history    History
	quota      QuotaGate
	compensate Compensator
	log        *zap.Logger

	// one mutex per actor so concurrent undos for the same actor cannot
	// consume the same entry, while other actors proceed in parallel
	actorLocks sync.Map
}

type Dependencies struct {
	History      History
	Quota        QuotaGate
	Compensation Compensator
	Logger       *zap.Logger
}

type Result struct {
	Undone  memory.SwipeAction
	Profile pgrepo.ProfileCard
}

func NewService(deps Dependencies) *Service {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		history:    deps.History,
		quota:      deps.Quota,
		compensate: deps.Compensation,
		log:        log,
	}
}

func (s *Service) Undo(ctx context.Context, actorID int64, isPremium bool) (Result, error) {
	if actorID <= 0 {
		return Result{}, ErrValidation
	}
	if s.history == nil || s.quota == nil || s.compensate == nil {
		return Result{}, fmt.Errorf("rewind dependencies are not configured")
	}

	unlock := s.lockActor(actorID)
	defer unlock()

	action, ok := s.history.PeekMostRecent(actorID)
	if !ok {
		return Result{}, ErrNoActionsToRewind
	}

	// Quota is re-checked on every call, never cached. A store failure
	// fails closed: no allowance confirmed means no undo.
	if !isPremium {
		allowed, err := s.quota.RemainingToday(ctx, actorID, false)
		if err != nil {
			s.log.Error("rewind quota check failed",
				zap.Int64("actor_id", actorID),
				zap.Error(err),
			)
			return Result{}, fmt.Errorf("check rewind quota: %w", err)
		}
		if !allowed {
			return Result{}, ErrRewindLimitReached
		}
	}

	// From here the operation must run to completion even if the request
	// context is cancelled mid-flight, otherwise the durable store and
	// the history could be abandoned halfway through.
	opCtx := context.WithoutCancel(ctx)

	profile, err := s.compensate.Reverse(opCtx, action)
	if err != nil {
		s.log.Error("swipe compensation failed",
			zap.Int64("actor_id", actorID),
			zap.Int64("target_id", action.TargetID),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("compensate swipe: %w", err)
	}

	// Compensation committed first, removal second: a crash between the
	// two leaves the entry in place and a retried undo re-issues deletes
	// that are idempotent. Removal matches the compensated entry itself,
	// not whatever is on top, because a swipe recorded for this actor
	// mid-undo may have changed the head.
	if !s.history.Remove(actorID, action) {
		// Peek succeeded under the actor lock, so a missing entry means
		// something outside this service mutated the history.
		s.log.Warn("undone swipe already gone from history",
			zap.Int64("actor_id", actorID),
			zap.Int64("target_id", action.TargetID),
		)
	}

	if !isPremium {
		if err := s.quota.RecordUsage(opCtx, actorID); err != nil {
			// The deletes already committed, so the undo is reported as
			// a success; the missed ledger row is an operator concern.
			s.log.Error("rewind usage not recorded",
				zap.Int64("actor_id", actorID),
				zap.Error(err),
			)
		}
	}

	return Result{
		Undone:  action,
		Profile: profile,
	}, nil
}

func (s *Service) lockActor(actorID int64) func() {
	v, _ := s.actorLocks.LoadOrStore(actorID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
