package feed

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/console-service/internal/domain"
)

// CollectionFeatureFlags is the only collection currently pushed to
// subscribers.
const CollectionFeatureFlags = "featureFlags"

// Snapshot carries the full current state of a collection. Every write
// publishes complete state rather than a delta, so a subscriber that
// misses an intermediate message still converges on the next one.
type Snapshot struct {
	Collection  string               `json:"collection"`
	Flags       []domain.FeatureFlag `json:"flags"`
	PublishedAt time.Time            `json:"published_at"`
}

// Feed is the realtime change feed: one-way push from store writes to
// many subscribers. Subscribers may join or leave at any time; a late
// joiner receives the current snapshot, not historical toggles.
type Feed interface {
	Publish(ctx context.Context, snapshot Snapshot) error
	Subscribe(ctx context.Context, collection string) (*Subscription, error)
}

// Subscription is a cancellable handle over a lazy, infinite sequence of
// snapshots. Close stops delivery and releases the underlying connection.
type Subscription struct {
	ch      chan Snapshot
	stop    func()
	once    sync.Once
	stopped chan struct{}
}

func newSubscription(buffer int, stop func()) *Subscription {
	return &Subscription{
		ch:      make(chan Snapshot, buffer),
		stop:    stop,
		stopped: make(chan struct{}),
	}
}

// Snapshots returns the delivery channel. It is closed after Close.
func (s *Subscription) Snapshots() <-chan Snapshot {
	return s.ch
}

// Close stops delivery. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		close(s.stopped)
		if s.stop != nil {
			s.stop()
		}
	})
}

// deliver pushes a snapshot without blocking the publisher. A subscriber
// that is not draining misses the message; snapshots are full state, so
// the next write makes it whole again.
func (s *Subscription) deliver(snapshot Snapshot) {
	select {
	case <-s.stopped:
	case s.ch <- snapshot:
	default:
	}
}
