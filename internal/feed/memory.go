package feed

import (
	"context"
	"sync"
)

// MemoryFeed is an in-process broker implementing the same contract as
// the redis feed. Used in tests and single-node setups.
type MemoryFeed struct {
	mu          sync.Mutex
	subscribers map[string]map[*Subscription]struct{}
	last        map[string]Snapshot
	hasLast     map[string]bool
}

// NewMemoryFeed creates an empty broker.
func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{
		subscribers: make(map[string]map[*Subscription]struct{}),
		last:        make(map[string]Snapshot),
		hasLast:     make(map[string]bool),
	}
}

// Publish records the snapshot as current state and fans it out to every
// live subscriber of the collection, in write order. Delivery happens
// under the broker lock so it cannot race a concurrent Close; deliver
// never blocks, so the lock is held only briefly.
func (f *MemoryFeed) Publish(_ context.Context, snapshot Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last[snapshot.Collection] = snapshot
	f.hasLast[snapshot.Collection] = true
	for sub := range f.subscribers[snapshot.Collection] {
		sub.deliver(snapshot)
	}
	return nil
}

// Subscribe registers a subscriber. A late joiner is seeded with the
// current snapshot before receiving updates.
func (f *MemoryFeed) Subscribe(_ context.Context, collection string) (*Subscription, error) {
	var sub *Subscription
	sub = newSubscription(16, func() {
		f.mu.Lock()
		delete(f.subscribers[collection], sub)
		f.mu.Unlock()
		close(sub.ch)
	})

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribers[collection] == nil {
		f.subscribers[collection] = make(map[*Subscription]struct{})
	}
	if f.hasLast[collection] {
		sub.deliver(f.last[collection])
	}
	f.subscribers[collection][sub] = struct{}{}
	return sub, nil
}
