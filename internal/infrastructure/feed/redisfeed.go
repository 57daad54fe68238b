package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"aircast/internal/domain/notification"
	"aircast/internal/shared/logger"
)

const (
	channelPrefix = "aircast:notifications:"

	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// feedEnvelope is the wire format published on the per-recipient
// channel. DeliveryID identifies one delivery attempt, not the
// notification itself; redeliveries carry fresh delivery IDs.
type feedEnvelope struct {
	DeliveryID  string             `json:"deliveryId"`
	Event       notification.Event `json:"event"`
	PublishedAt time.Time          `json:"publishedAt"`
}

// RedisFeed delivers raw notification insert events over Redis pub/sub,
// one channel per recipient. Messages are at-least-once: consumers are
// expected to deduplicate by notification ID.
type RedisFeed struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisFeed(client *redis.Client, log logger.Interface) *RedisFeed {
	return &RedisFeed{
		client: client,
		logger: log,
	}
}

func channelFor(recipientID string) string {
	return channelPrefix + recipientID
}

// Publish emits one event on the recipient's channel. Used by the
// ingestion side when a notification row has been inserted.
func (f *RedisFeed) Publish(ctx context.Context, ev notification.Event) error {
	envelope := feedEnvelope{
		DeliveryID:  uuid.New().String(),
		Event:       ev,
		PublishedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal feed envelope: %w", err)
	}

	if err := f.client.Publish(ctx, channelFor(ev.RecipientID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	f.logger.Debugw("notification event published",
		"notification_id", ev.ID,
		"recipient_id", ev.RecipientID,
		"delivery_id", envelope.DeliveryID,
	)
	return nil
}

// Subscribe blocks until ctx is cancelled, invoking handler for each
// event on the recipient's channel. The handler runs synchronously in
// the subscription loop, so one event is fully processed before the
// next is dispatched. Transient channel failures trigger an internal
// reconnect with exponential backoff.
func (f *RedisFeed) Subscribe(ctx context.Context, recipientID string, handler func(ev notification.Event)) error {
	if recipientID == "" {
		return fmt.Errorf("recipient ID is required")
	}

	backoff := initialBackoff
	for {
		err := f.consume(ctx, recipientID, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		f.logger.Warnw("notification feed connection lost, reconnecting",
			"recipient_id", recipientID,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// consume runs one subscription until the channel closes or ctx ends.
func (f *RedisFeed) consume(ctx context.Context, recipientID string, handler func(ev notification.Event)) error {
	sub := f.client.Subscribe(ctx, channelFor(recipientID))
	defer sub.Close()

	// Force the subscribe round trip so connection errors surface here
	// instead of as a silently empty channel.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to notification channel: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("notification channel closed")
			}
			f.dispatch(recipientID, msg.Payload, handler)
		}
	}
}

func (f *RedisFeed) dispatch(recipientID, payload string, handler func(ev notification.Event)) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Errorw("panic in notification feed handler",
				"recipient_id", recipientID,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	var envelope feedEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		f.logger.Warnw("discarding malformed feed message",
			"recipient_id", recipientID,
			"error", err,
		)
		return
	}

	handler(envelope.Event)
}
