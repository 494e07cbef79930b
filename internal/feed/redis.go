package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "feed:"

// SeedFunc loads the current snapshot of a collection so a late-joining
// subscriber starts from present state instead of waiting for the next
// write.
type SeedFunc func(ctx context.Context, collection string) (Snapshot, error)

// RedisFeed implements Feed over redis pub/sub.
type RedisFeed struct {
	client *redis.Client
	seed   SeedFunc
	logger *zap.Logger
}

// NewRedisFeed builds a feed on an existing client. seed may be nil.
func NewRedisFeed(client *redis.Client, seed SeedFunc, logger *zap.Logger) *RedisFeed {
	return &RedisFeed{client: client, seed: seed, logger: logger}
}

// Publish serializes the snapshot and pushes it to the collection channel.
func (f *RedisFeed) Publish(ctx context.Context, snapshot Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := f.client.Publish(ctx, channelPrefix+snapshot.Collection, payload).Err(); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}

// Subscribe opens a pub/sub channel for the collection. Closing the
// returned subscription closes the underlying pub/sub connection; the
// delivery goroutine drains and exits without leaking it.
func (f *RedisFeed) Subscribe(ctx context.Context, collection string) (*Subscription, error) {
	pubsub := f.client.Subscribe(ctx, channelPrefix+collection)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", collection, err)
	}

	sub := newSubscription(16, func() {
		_ = pubsub.Close()
	})

	if f.seed != nil {
		seed, err := f.seed(ctx, collection)
		if err != nil {
			f.logger.Warn("feed seed failed", zap.String("collection", collection), zap.Error(err))
		} else {
			sub.deliver(seed)
		}
	}

	go func() {
		defer close(sub.ch)
		for msg := range pubsub.Channel() {
			var snapshot Snapshot
			if err := json.Unmarshal([]byte(msg.Payload), &snapshot); err != nil {
				f.logger.Warn("feed payload decode failed", zap.String("collection", collection), zap.Error(err))
				continue
			}
			sub.deliver(snapshot)
		}
	}()

	return sub, nil
}
