package notification

import (
	"context"

	"aircast/internal/domain/forum"
	domain "aircast/internal/domain/notification"
	"aircast/internal/shared/logger"
)

// Context is the enrichment result: everything a raw event lacks that
// the display mapper needs. Every field may be absent; enrichment
// degrades field by field and never fails as a whole.
type Context struct {
	Actor        *domain.Actor
	TopicTitle   *string
	TopicSlug    *string
	CategorySlug *string
	TargetPostID *string
}

// Enricher resolves actor and topic context for raw notification events.
// Lookups are independent: a failed actor lookup does not abort the
// topic lookup and vice versa. Worst case it issues three queries
// (actor, topic joined with category, category-only fallback).
type Enricher struct {
	profiles forum.ProfileLookup
	topics   forum.TopicLookup
	logger   logger.Interface
}

func NewEnricher(profiles forum.ProfileLookup, topics forum.TopicLookup, log logger.Interface) *Enricher {
	return &Enricher{
		profiles: profiles,
		topics:   topics,
		logger:   log,
	}
}

// Enrich derives display context for the event. Individual lookup
// failures degrade the affected field to its default and are logged at
// warning level; the returned Context is always usable.
func (e *Enricher) Enrich(ctx context.Context, ev *domain.Event) Context {
	out := Context{
		TargetPostID: ev.TargetPostID(),
	}

	out.Actor = e.resolveActor(ctx, ev)
	e.resolveTopic(ctx, ev, &out)

	return out
}

func (e *Enricher) resolveActor(ctx context.Context, ev *domain.Event) *domain.Actor {
	// Pre-joined profile from the bulk query wins; no lookup needed.
	if ev.Actor != nil {
		return &domain.Actor{
			ID:     ev.Actor.ID,
			Name:   ev.Actor.Name(),
			Avatar: ev.Actor.AvatarURL,
		}
	}

	if ev.ActorID == nil || *ev.ActorID == "" {
		return nil
	}

	fallback := &domain.Actor{ID: *ev.ActorID, Name: "User"}

	profile, err := e.profiles.FindProfile(ctx, *ev.ActorID)
	if err != nil {
		e.logger.Warnw("actor profile lookup failed",
			"notification_id", ev.ID,
			"actor_id", *ev.ActorID,
			"error", err,
		)
		return fallback
	}
	if profile == nil {
		return fallback
	}

	return &domain.Actor{
		ID:     profile.ID,
		Name:   profile.Name(),
		Avatar: profile.AvatarURL,
	}
}

func (e *Enricher) resolveTopic(ctx context.Context, ev *domain.Event, out *Context) {
	// Details carrying both title and slug are the cheapest path.
	if d := ev.Details; d != nil &&
		d.TopicTitle != nil && *d.TopicTitle != "" &&
		d.TopicSlug != nil && *d.TopicSlug != "" {
		out.TopicTitle = d.TopicTitle
		out.TopicSlug = d.TopicSlug
		out.CategorySlug = d.CategorySlug
		return
	}

	if ev.TopicID == nil || *ev.TopicID == "" {
		return
	}

	tc, err := e.topics.FindTopicContext(ctx, *ev.TopicID)
	if err != nil {
		e.logger.Warnw("topic context lookup failed",
			"notification_id", ev.ID,
			"topic_id", *ev.TopicID,
			"error", err,
		)
		return
	}
	if tc == nil {
		return
	}

	out.TopicTitle = &tc.Title
	out.TopicSlug = &tc.Slug

	if tc.CategorySlug != nil {
		out.CategorySlug = tc.CategorySlug
		return
	}

	// Category join did not resolve; one fallback lookup, then give up.
	if tc.CategoryID == nil || *tc.CategoryID == "" {
		return
	}
	slug, err := e.topics.FindCategorySlug(ctx, *tc.CategoryID)
	if err != nil {
		e.logger.Warnw("category slug lookup failed",
			"notification_id", ev.ID,
			"category_id", *tc.CategoryID,
			"error", err,
		)
		return
	}
	out.CategorySlug = slug
}
