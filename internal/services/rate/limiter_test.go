package rate

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	redrepo "github.com/akravets/sparkle/backend/internal/repo/redis"
)

func newMiniredisLimiter(t *testing.T, perMinute, per10Sec int) *Limiter {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewLimiter(redrepo.NewRateRepo(client), perMinute, per10Sec)
}

func TestAllowSwipeUnderLimits(t *testing.T) {
	limiter := newMiniredisLimiter(t, 60, 15)

	for i := 0; i < 5; i++ {
		retryAfter, allowed, err := limiter.AllowSwipe(context.Background(), 101)
		if err != nil {
			t.Fatalf("allow swipe %d: %v", i+1, err)
		}
		if !allowed {
			t.Fatalf("swipe %d unexpectedly denied", i+1)
		}
		if retryAfter != 0 {
			t.Fatalf("unexpected retry after under limit: %d", retryAfter)
		}
	}
}

func TestAllowSwipeDeniesBurstOver10SecWindow(t *testing.T) {
	limiter := newMiniredisLimiter(t, 60, 2)

	for i := 0; i < 2; i++ {
		if _, allowed, err := limiter.AllowSwipe(context.Background(), 101); err != nil || !allowed {
			t.Fatalf("warmup swipe %d: allowed=%v err=%v", i+1, allowed, err)
		}
	}

	retryAfter, allowed, err := limiter.AllowSwipe(context.Background(), 101)
	if err != nil {
		t.Fatalf("allow swipe: %v", err)
	}
	if allowed {
		t.Fatalf("third burst swipe unexpectedly allowed")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry after, got %d", retryAfter)
	}
}

func TestAllowSwipeIsolatesUsers(t *testing.T) {
	limiter := newMiniredisLimiter(t, 60, 1)

	if _, allowed, err := limiter.AllowSwipe(context.Background(), 101); err != nil || !allowed {
		t.Fatalf("first user denied: allowed=%v err=%v", allowed, err)
	}
	if _, allowed, err := limiter.AllowSwipe(context.Background(), 202); err != nil || !allowed {
		t.Fatalf("second user throttled by first user's window: allowed=%v err=%v", allowed, err)
	}
}

func TestAllowSwipeRejectsInvalidUser(t *testing.T) {
	limiter := newMiniredisLimiter(t, 60, 15)

	if _, _, err := limiter.AllowSwipe(context.Background(), 0); err == nil {
		t.Fatalf("expected error for invalid user id")
	}
}

func TestZeroLimitsDisableWindows(t *testing.T) {
	limiter := newMiniredisLimiter(t, 0, 0)

	for i := 0; i < 50; i++ {
		if _, allowed, err := limiter.AllowSwipe(context.Background(), 101); err != nil || !allowed {
			t.Fatalf("swipe %d denied with windows disabled: allowed=%v err=%v", i+1, allowed, err)
		}
	}
}
