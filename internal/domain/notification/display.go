package notification

import "time"

// Actor is the display form of the member who triggered a notification.
type Actor struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

// Display is the UI-ready form of a notification: templated content,
// a resolved relative link, and the passthrough fields consumers filter on.
type Display struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"kind"`
	Read           bool      `json:"read"`
	Actor          *Actor    `json:"actor,omitempty"`
	Content        string    `json:"content"`
	Link           string    `json:"link"`
	CreatedAt      time.Time `json:"created_at"`
	TopicID        *string   `json:"topic_id,omitempty"`
	PostID         *string   `json:"post_id,omitempty"`
	ContentPreview *string   `json:"content_preview,omitempty"`
	TopicTitle     *string   `json:"topic_title,omitempty"`
	TopicSlug      *string   `json:"topic_slug,omitempty"`
	CategorySlug   *string   `json:"category_slug,omitempty"`
	Details        *Details  `json:"details,omitempty"`
}
