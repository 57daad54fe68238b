package notification

import "context"

// Repository is the read/mutate surface over the notifications table.
// All reads are scoped to one recipient and ordered newest first.
type Repository interface {
	// ListByRecipient returns a page of events with the actor profile
	// pre-joined where available.
	ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*Event, int64, error)

	// FindEnriched fetches one event joined with actor, topic and
	// category in a single round trip. Missing rows are (nil, nil).
	FindEnriched(ctx context.Context, id string) (*Event, error)

	// MarkAsRead flips the read flag. Idempotent: marking an already
	// read notification succeeds without effect.
	MarkAsRead(ctx context.Context, recipientID, id string) error

	// MarkAllAsRead flips every unread notification for the recipient.
	MarkAllAsRead(ctx context.Context, recipientID string) error

	CountUnread(ctx context.Context, recipientID string) (int64, error)
}
