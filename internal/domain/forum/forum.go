// Package forum holds the content context a notification refers to:
// member profiles, topics and their categories.
package forum

import "context"

// Profile is a member profile as stored by the forum.
// DisplayName and Username are both optional; callers pick the first
// one present when a human-readable name is needed.
type Profile struct {
	ID          string
	DisplayName *string
	Username    *string
	AvatarURL   *string
}

// Name returns the best available human-readable name, falling back to
// the literal "User" when the profile carries neither display name nor
// username.
func (p *Profile) Name() string {
	if p != nil && p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	if p != nil && p.Username != nil && *p.Username != "" {
		return *p.Username
	}
	return "User"
}

// TopicContext is the slice of a topic needed to render a notification:
// the title for message text and the slugs for link derivation.
// CategorySlug is absent when the category join did not resolve.
type TopicContext struct {
	ID           string
	Title        string
	Slug         string
	CategoryID   *string
	CategorySlug *string
}

// ProfileLookup resolves a member profile by ID. A missing profile is
// reported as (nil, nil), not as an error.
type ProfileLookup interface {
	FindProfile(ctx context.Context, userID string) (*Profile, error)
}

// TopicLookup resolves topic context. FindTopicContext joins the topic
// with its category in one query; FindCategorySlug is the fallback used
// when that join leaves the category unresolved. Missing rows are
// reported as (nil, nil).
type TopicLookup interface {
	FindTopicContext(ctx context.Context, topicID string) (*TopicContext, error)
	FindCategorySlug(ctx context.Context, categoryID string) (*string, error)
}
