package swipes

import (
	"context"
	"errors"
	"testing"
)

type rateLimiterStub struct {
	retryAfter int64
	allowed    bool
	err        error
	calls      int
}

func (s *rateLimiterStub) AllowSwipe(context.Context, int64) (int64, bool, error) {
	s.calls++
	return s.retryAfter, s.allowed, s.err
}

func TestSwipeValidatesIdentifiers(t *testing.T) {
	svc := NewService(Dependencies{})

	cases := []struct {
		name     string
		userID   int64
		targetID int64
	}{
		{"zero user", 0, 2},
		{"zero target", 1, 0},
		{"self swipe", 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Swipe(context.Background(), tc.userID, tc.targetID, "LIKE"); !errors.Is(err, ErrValidation) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSwipeRejectsUnknownKind(t *testing.T) {
	svc := NewService(Dependencies{})

	if _, err := svc.Swipe(context.Background(), 1, 2, "WINK"); !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSwipeAcceptsUnderscoredSuperLike(t *testing.T) {
	limiter := &rateLimiterStub{allowed: true}
	svc := NewService(Dependencies{RateLimiter: limiter})

	_, err := svc.Swipe(context.Background(), 1, 2, "super_like")
	if errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("SUPER_LIKE spelling rejected: %v", err)
	}
	if limiter.calls != 1 {
		t.Fatalf("expected rate limiter consultation for superlike, got %d", limiter.calls)
	}
}

func TestSwipeReturnsTooFastWhenLimiterDenies(t *testing.T) {
	limiter := &rateLimiterStub{retryAfter: 7, allowed: false}
	svc := NewService(Dependencies{RateLimiter: limiter})

	_, err := svc.Swipe(context.Background(), 1, 2, "LIKE")
	var tooFast TooFastError
	if !errors.As(err, &tooFast) {
		t.Fatalf("expected TooFastError, got %v", err)
	}
	if tooFast.RetryAfterSec != 7 {
		t.Fatalf("unexpected retry after: %d", tooFast.RetryAfterSec)
	}
}

func TestSwipeRateLimiterErrorPropagates(t *testing.T) {
	limiterErr := errors.New("redis down")
	svc := NewService(Dependencies{RateLimiter: &rateLimiterStub{err: limiterErr}})

	if _, err := svc.Swipe(context.Background(), 1, 2, "LIKE"); !errors.Is(err, limiterErr) {
		t.Fatalf("expected wrapped limiter error, got %v", err)
	}
}

func TestPassSkipsRateLimiter(t *testing.T) {
	limiter := &rateLimiterStub{allowed: false}
	svc := NewService(Dependencies{RateLimiter: limiter})

	_, err := svc.Swipe(context.Background(), 1, 2, "PASS")
	var tooFast TooFastError
	if errors.As(err, &tooFast) {
		t.Fatalf("pass swipe hit the burst limiter")
	}
	if limiter.calls != 0 {
		t.Fatalf("limiter consulted for pass: %d calls", limiter.calls)
	}
}
