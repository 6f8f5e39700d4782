package rewind

import (
	"context"
	"fmt"
	"time"

	"github.com/akravets/sparkle/backend/internal/domain/rules"
)

type UsageStore interface {
	CountForDay(ctx context.Context, actorUserID int64, dayKey string) (int, error)
	Insert(ctx context.Context, actorUserID int64, dayKey string, usedAt time.Time) error
}

// QuotaTracker gates free-tier rewinds against the durable usage ledger.
// Premium actors are never gated and never touch the store.
type QuotaTracker struct {
	store      UsageStore
	dailyLimit int
	now        func() time.Time
}

func NewQuotaTracker(store UsageStore, dailyLimit int) *QuotaTracker {
	if dailyLimit <= 0 {
		dailyLimit = rules.FreeRewindsPerDay
	}
	return &QuotaTracker{
		store:      store,
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

func (t *QuotaTracker) RemainingToday(ctx context.Context, actorUserID int64, isPremium bool) (bool, error) {
	if isPremium {
		return true, nil
	}
	if t.store == nil {
		return false, fmt.Errorf("rewind usage store is nil")
	}

	count, err := t.store.CountForDay(ctx, actorUserID, rules.DayKey(t.now()))
	if err != nil {
		return false, fmt.Errorf("count rewind usage: %w", err)
	}

	return count < t.dailyLimit, nil
}

// RecordUsage appends one ledger row for today. Errors propagate to the
// caller; swallowing them here would let an actor bypass the quota.
func (t *QuotaTracker) RecordUsage(ctx context.Context, actorUserID int64) error {
	if t.store == nil {
		return fmt.Errorf("rewind usage store is nil")
	}

	now := t.now().UTC()
	if err := t.store.Insert(ctx, actorUserID, rules.DayKey(now), now); err != nil {
		return fmt.Errorf("record rewind usage: %w", err)
	}

	return nil
}
