package notification

import (
	"fmt"

	domain "aircast/internal/domain/notification"
)

// messageTemplate holds the tiered message variants for one kind:
// the full form when both actor and topic title resolved, and the
// actor-only form when the topic title is missing.
type messageTemplate struct {
	withTopic string
	actorOnly string
}

var messageTemplates = map[domain.Kind]messageTemplate{
	domain.KindReply: {
		withTopic: `%s replied to your topic: "%s"`,
		actorOnly: `%s replied to a topic.`,
	},
	domain.KindLike: {
		withTopic: `%s liked your post in: "%s"`,
		actorOnly: `%s liked a post.`,
	},
	domain.KindMentionReply: {
		withTopic: `%s mentioned you in a reply on topic: "%s"`,
		actorOnly: `%s mentioned you in a reply.`,
	},
	domain.KindMentionPost: {
		withTopic: `%s mentioned you in a post on topic: "%s"`,
		actorOnly: `%s mentioned you in a post.`,
	},
	domain.KindQuote: {
		withTopic: `%s quoted your post in: "%s"`,
		actorOnly: `%s quoted your post.`,
	},
}

// MapDisplay converts a raw event plus enrichment context into its
// display form. Pure function: no I/O, no failure mode.
func MapDisplay(ev *domain.Event, c Context) *domain.Display {
	kind := ev.EffectiveKind()

	return &domain.Display{
		ID:             ev.ID,
		Kind:           kind,
		Read:           ev.Read,
		Actor:          c.Actor,
		Content:        renderContent(kind, ev, c),
		Link:           buildLink(ev, c),
		CreatedAt:      ev.CreatedAt,
		TopicID:        ev.TopicID,
		PostID:         ev.PostID,
		ContentPreview: ev.ContentPreview,
		TopicTitle:     c.TopicTitle,
		TopicSlug:      c.TopicSlug,
		CategorySlug:   c.CategorySlug,
		Details:        ev.Details,
	}
}

func renderContent(kind domain.Kind, ev *domain.Event, c Context) string {
	if kind == domain.KindSystem {
		if s := previewOrSummary(ev); s != "" {
			return s
		}
		return "System notification"
	}

	tpl, known := messageTemplates[kind]
	if !known {
		if s := previewOrSummary(ev); s != "" {
			return s
		}
		return fmt.Sprintf("Notification: %s", kind)
	}

	switch {
	case c.Actor != nil && c.TopicTitle != nil && *c.TopicTitle != "":
		return fmt.Sprintf(tpl.withTopic, c.Actor.Name, *c.TopicTitle)
	case c.Actor != nil:
		return fmt.Sprintf(tpl.actorOnly, c.Actor.Name)
	case kind == domain.KindQuote:
		return "Someone quoted your post."
	default:
		return fmt.Sprintf("Notification type: %s", kind)
	}
}

func previewOrSummary(ev *domain.Event) string {
	if ev.ContentPreview != nil && *ev.ContentPreview != "" {
		return *ev.ContentPreview
	}
	if ev.Details != nil && ev.Details.Summary != nil && *ev.Details.Summary != "" {
		return *ev.Details.Summary
	}
	return ""
}

// buildLink derives the navigation target. Precedence: the canonical
// category-qualified path, then the flatter topic-only path, then an
// explicit link_url override, then the forum root. link_url never
// outranks a fully resolved slug pair; several partially migrated rows
// only populate link_url and depend on this exact ordering.
func buildLink(ev *domain.Event, c Context) string {
	postSuffix := ""
	if c.TargetPostID != nil && *c.TargetPostID != "" {
		postSuffix = "/" + *c.TargetPostID
	}

	hasTopicSlug := c.TopicSlug != nil && *c.TopicSlug != ""
	hasCategorySlug := c.CategorySlug != nil && *c.CategorySlug != ""

	if hasCategorySlug && hasTopicSlug {
		return fmt.Sprintf("/members/forum/%s/%s%s", *c.CategorySlug, *c.TopicSlug, postSuffix)
	}
	if hasTopicSlug {
		return fmt.Sprintf("/members/forum/topic/%s%s", *c.TopicSlug, postSuffix)
	}
	if ev.Details != nil && ev.Details.LinkURL != nil && *ev.Details.LinkURL != "" {
		return *ev.Details.LinkURL
	}
	return "/members/forum"
}
