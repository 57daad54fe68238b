package notification

import (
	"context"
	"fmt"
	"sync"

	domain "aircast/internal/domain/notification"
	"aircast/internal/shared/goroutine"
	"aircast/internal/shared/logger"
)

// Feed is the inbound change feed: a push stream of raw notification
// insert events filtered server-side to one recipient. Subscribe blocks
// until ctx is cancelled and is expected to reconnect internally on
// transient channel errors. Delivery is at least once.
type Feed interface {
	Subscribe(ctx context.Context, recipientID string, handler func(ev domain.Event)) error
}

const defaultPageSize = 20

// Center owns one recipient's notification session: it performs the
// initial bulk load, then activates the realtime subscription, enriches
// and maps incoming events, merges them into the per-session Store and
// forwards fresh entries to the Sink.
//
// The realtime subscription is never activated before the bulk load has
// completed; starting it earlier could insert an event that the
// wholesale LoadInitial replace would silently drop.
type Center struct {
	repo     domain.Repository
	enricher *Enricher
	feed     Feed
	sink     Sink
	pageSize int
	logger   logger.Interface

	mu      sync.Mutex
	store   *Store
	cancel  context.CancelFunc
	running bool
}

func NewCenter(
	repo domain.Repository,
	enricher *Enricher,
	feed Feed,
	sink Sink,
	pageSize int,
	log logger.Interface,
) *Center {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if sink == nil {
		sink = NewLogSink(log)
	}
	return &Center{
		repo:     repo,
		enricher: enricher,
		feed:     feed,
		sink:     sink,
		pageSize: pageSize,
		logger:   log,
	}
}

// Start loads the initial page for the recipient and then activates the
// realtime subscription. A bulk-load failure is surfaced to the caller;
// without it the store cannot be safely initialized. At most one
// subscription runs per Center at a time.
func (c *Center) Start(ctx context.Context, recipientID string) error {
	if recipientID == "" {
		return fmt.Errorf("recipient ID is required")
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("notification center already started for recipient %s", c.store.RecipientID())
	}
	c.mu.Unlock()

	store := NewStore(recipientID)

	events, _, err := c.repo.ListByRecipient(ctx, recipientID, c.pageSize, 0)
	if err != nil {
		return fmt.Errorf("initial notification load failed: %w", err)
	}

	displays := make([]*domain.Display, 0, len(events))
	for _, ev := range events {
		ectx := c.enricher.Enrich(ctx, ev)
		displays = append(displays, MapDisplay(ev, ectx))
	}
	store.LoadInitial(displays)

	subCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		cancel()
		return fmt.Errorf("notification center already started for recipient %s", recipientID)
	}
	c.store = store
	c.cancel = cancel
	c.running = true
	c.mu.Unlock()

	goroutine.SafeGo(c.logger, "notification-feed-"+recipientID, func() {
		err := c.feed.Subscribe(subCtx, recipientID, func(ev domain.Event) {
			c.handleFeedEvent(subCtx, store, ev)
		})
		if err != nil && subCtx.Err() == nil {
			c.logger.Warnw("notification feed subscription ended",
				"recipient_id", recipientID,
				"error", err,
			)
		}
	})

	c.logger.Infow("notification center started",
		"recipient_id", recipientID,
		"initial_count", store.Len(),
	)
	return nil
}

// handleFeedEvent runs the realtime path for one raw event: combined
// enrichment lookup first, partial-payload fallback on any failure.
// The event is never dropped for enrichment reasons.
func (c *Center) handleFeedEvent(ctx context.Context, store *Store, ev domain.Event) {
	if err := ev.Validate(); err != nil {
		c.logger.Warnw("discarding malformed feed event", "error", err)
		return
	}
	if ev.RecipientID != store.RecipientID() {
		// The feed is filtered server-side; a mismatch here means a
		// misrouted delivery and must not leak across recipients.
		c.logger.Warnw("discarding feed event for foreign recipient",
			"notification_id", ev.ID,
			"recipient_id", ev.RecipientID,
		)
		return
	}

	full := &ev
	enriched, err := c.repo.FindEnriched(ctx, ev.ID)
	if err != nil {
		c.logger.Warnw("combined enrichment lookup failed, mapping from feed payload",
			"notification_id", ev.ID,
			"error", err,
		)
	} else if enriched != nil {
		full = enriched
	}

	ectx := c.enricher.Enrich(ctx, full)

	// A lookup that resolves after teardown must not mutate a store
	// that may have been rebuilt for another recipient.
	if ctx.Err() != nil {
		return
	}

	display := MapDisplay(full, ectx)
	if store.InsertRealtime(display) {
		c.sink.Deliver(*display)
	}
}

// MarkRead persists the read flag and mirrors it into the live store.
// On persistence failure the in-memory state is left unchanged.
func (c *Center) MarkRead(ctx context.Context, id string) error {
	c.mu.Lock()
	store := c.store
	c.mu.Unlock()

	if store == nil {
		return fmt.Errorf("notification center not started")
	}

	if err := c.repo.MarkAsRead(ctx, store.RecipientID(), id); err != nil {
		return err
	}
	store.MarkRead(id)
	return nil
}

// MarkAllRead persists the bulk read flip and mirrors it into the live
// store.
func (c *Center) MarkAllRead(ctx context.Context) error {
	c.mu.Lock()
	store := c.store
	c.mu.Unlock()

	if store == nil {
		return fmt.Errorf("notification center not started")
	}

	if err := c.repo.MarkAllAsRead(ctx, store.RecipientID()); err != nil {
		return err
	}
	store.MarkAllRead()
	return nil
}

// Store returns the live store for the current session, or nil before
// Start.
func (c *Center) Store() *Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store
}

// Stop releases the realtime subscription. The store is detached so a
// later Start builds a fresh one; late enrichment results from the old
// session are discarded by their cancelled context.
func (c *Center) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	recipientID := ""
	if c.store != nil {
		recipientID = c.store.RecipientID()
	}
	c.store = nil
	c.running = false

	c.logger.Infow("notification center stopped", "recipient_id", recipientID)
}
