package notification

import (
	"fmt"
	"time"

	"aircast/internal/domain/forum"
)

// Details is the free-form structured payload attached to a notification
// row at write time. Every field is optional; any present value
// short-circuits the corresponding enrichment lookup.
type Details struct {
	// TrueType overrides the row's kind for template selection when set.
	TrueType     *string `json:"true_type,omitempty"`
	QuotedPostID *string `json:"quoted_post_id,omitempty"`
	TopicTitle   *string `json:"topic_title,omitempty"`
	TopicSlug    *string `json:"topic_slug,omitempty"`
	CategorySlug *string `json:"category_slug,omitempty"`
	// LinkURL is an explicit link override carried by partially migrated
	// rows that predate slug-based links.
	LinkURL *string `json:"link_url,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

// Event is one notification row as delivered by the bulk query or the
// realtime change feed. The shape is uniform across kinds; kind-specific
// behavior lives in the display mapper, not here.
type Event struct {
	ID             string     `json:"id"`
	RecipientID    string     `json:"recipient_id"`
	ActorID        *string    `json:"actor_id,omitempty"`
	Kind           Kind       `json:"kind"`
	TopicID        *string    `json:"topic_id,omitempty"`
	PostID         *string    `json:"post_id,omitempty"`
	ContentPreview *string    `json:"content_preview,omitempty"`
	Read           bool       `json:"read"`
	Details        *Details  `json:"details,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// Actor is the pre-joined actor profile when the source query joined
	// the users table; nil on bare feed payloads.
	Actor *forum.Profile `json:"-"`
}

// EffectiveKind returns Details.TrueType when present, else the row kind.
func (e *Event) EffectiveKind() Kind {
	if e.Details != nil && e.Details.TrueType != nil && *e.Details.TrueType != "" {
		return Kind(*e.Details.TrueType)
	}
	return e.Kind
}

// TargetPostID returns the post the notification should link to:
// a quote links to the quoted post, not the wrapping reply.
func (e *Event) TargetPostID() *string {
	if e.Details != nil && e.Details.QuotedPostID != nil && *e.Details.QuotedPostID != "" {
		return e.Details.QuotedPostID
	}
	return e.PostID
}

// Validate checks the invariants every event must satisfy before it
// enters the pipeline.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("notification ID is required")
	}
	if e.RecipientID == "" {
		return fmt.Errorf("recipient ID is required")
	}
	return nil
}
