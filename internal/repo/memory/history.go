package memory

import (
	"sync"
	"time"
)

const DefaultHistorySize = 10

// SwipeAction is one recorded swipe, as kept in the per-process history.
// The history is a best-effort projection of recent durable swipe rows;
// it is never the source of truth and is empty after a restart.
type SwipeAction struct {
	ActorID    int64
	TargetID   int64
	Kind       string
	RecordedAt time.Time
}

// HistoryCache keeps a bounded, recency-ordered swipe history per actor.
// Mutations for one actor are serialized by that actor's entry lock;
// different actors never contend with each other beyond the map lookup.
type HistoryCache struct {
	mu       sync.RWMutex
	byActor  map[int64]*actorHistory
	capacity int
	now      func() time.Time
}

type actorHistory struct {
	mu      sync.Mutex
	actions []SwipeAction
}

func NewHistoryCache(capacity int) *HistoryCache {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &HistoryCache{
		byActor:  make(map[int64]*actorHistory),
		capacity: capacity,
		now:      time.Now,
	}
}

// Record appends a swipe to the actor's history, evicting the oldest
// entry once capacity is exceeded. Never fails.
func (c *HistoryCache) Record(actorID, targetID int64, kind string) {
	if actorID <= 0 || targetID <= 0 || actorID == targetID {
		return
	}

	h := c.historyFor(actorID, true)
	h.mu.Lock()
	defer h.mu.Unlock()

	h.actions = append(h.actions, SwipeAction{
		ActorID:    actorID,
		TargetID:   targetID,
		Kind:       kind,
		RecordedAt: c.now().UTC(),
	})
	if len(h.actions) > c.capacity {
		h.actions = h.actions[len(h.actions)-c.capacity:]
	}
}

func (c *HistoryCache) PeekMostRecent(actorID int64) (SwipeAction, bool) {
	h := c.historyFor(actorID, false)
	if h == nil {
		return SwipeAction{}, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.actions) == 0 {
		return SwipeAction{}, false
	}
	return h.actions[len(h.actions)-1], true
}

// Remove deletes the given entry from the actor's history, scanning from
// the most recent. Matching by value rather than popping the head keeps a
// swipe recorded after the caller's peek from being consumed in the
// peeked entry's place. Under a race for the same entry exactly one
// caller wins; the loser observes false.
func (c *HistoryCache) Remove(actorID int64, action SwipeAction) bool {
	h := c.historyFor(actorID, false)
	if h == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.actions) - 1; i >= 0; i-- {
		if h.actions[i] == action {
			h.actions = append(h.actions[:i], h.actions[i+1:]...)
			return true
		}
	}
	return false
}

func (c *HistoryCache) Len(actorID int64) int {
	h := c.historyFor(actorID, false)
	if h == nil {
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.actions)
}

func (c *HistoryCache) historyFor(actorID int64, create bool) *actorHistory {
	c.mu.RLock()
	h := c.byActor[actorID]
	c.mu.RUnlock()
	if h != nil || !create {
		return h
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if h = c.byActor[actorID]; h == nil {
		h = &actorHistory{}
		c.byActor[actorID] = h
	}
	return h
}
