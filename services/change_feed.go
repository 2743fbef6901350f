package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"main/config"
	"main/model"

	"github.com/redis/go-redis/v9"
)

// RedisChangeFeed carries row-level bookmark change events over a per-user
// pub/sub channel. It stands in for a hosted change-data-capture stream:
// delivery is roughly publish-ordered, duplicates are possible, and nothing
// is replayed after a disconnect. Consumers must apply events idempotently.
type RedisChangeFeed struct {
	Client *redis.Client
}

// ChangeFeed is the global instance
var ChangeFeed *RedisChangeFeed

// NewChangeFeed creates a Redis-backed change feed
func NewChangeFeed(cfg config.RedisConfig) (*RedisChangeFeed, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisChangeFeed{Client: client}, nil
}

func feedChannel(userID string) string {
	return fmt.Sprintf("bookmarks:feed:%s", userID)
}

// Publish emits a change event on the user's channel
func (f *RedisChangeFeed) Publish(ctx context.Context, userID string, event model.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %v", err)
	}

	if err := f.Client.Publish(ctx, feedChannel(userID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %v", err)
	}

	return nil
}

// FeedSubscription is a live per-user subscription. Close must be called
// exactly once when the owning session is torn down; leaving it open leaks
// the connection and keeps delivering to a stale handler.
type FeedSubscription struct {
	pubsub    *redis.PubSub
	closeOnce sync.Once
	closeErr  error
}

func (s *FeedSubscription) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.pubsub.Close()
	})
	return s.closeErr
}

// Subscribe opens one subscription on the user's channel and dispatches
// events to the supplied callbacks from a dedicated goroutine. go-redis
// reconnects the subscription itself after a transient drop; no error is
// surfaced here for that, sync simply resumes.
func (f *RedisChangeFeed) Subscribe(ctx context.Context, userID string, onInsert func(*model.Bookmark), onDelete func(bookmarkID string)) (*FeedSubscription, error) {
	pubsub := f.Client.Subscribe(ctx, feedChannel(userID))

	// Wait for the subscription to be confirmed before returning, so no
	// event published after this call can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to change feed: %v", err)
	}

	go func() {
		for msg := range pubsub.Channel() {
			dispatchEvent(msg.Payload, onInsert, onDelete)
		}
	}()

	return &FeedSubscription{pubsub: pubsub}, nil
}

// dispatchEvent decodes one feed payload and invokes the matching callback.
// Malformed payloads are dropped: a bad event should never take down a
// session's subscription.
func dispatchEvent(payload string, onInsert func(*model.Bookmark), onDelete func(bookmarkID string)) {
	var event model.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		log.Printf("Dropping malformed change event: %v", err)
		return
	}

	switch event.Type {
	case model.ChangeEventInsert:
		if event.Bookmark != nil && onInsert != nil {
			onInsert(event.Bookmark)
		}
	case model.ChangeEventDelete:
		if event.BookmarkID != "" && onDelete != nil {
			onDelete(event.BookmarkID)
		}
	default:
		log.Printf("Dropping change event with unknown type %q", event.Type)
	}
}
