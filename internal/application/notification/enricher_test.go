package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aircast/internal/domain/forum"
	domain "aircast/internal/domain/notification"
)

// =============================================================================
// Actor Resolution Tests
// =============================================================================

func TestEnricher_PrejoinedActorSkipsLookup(t *testing.T) {
	profiles := &mockProfileLookup{}
	topics := &mockTopicLookup{}
	enricher := NewEnricher(profiles, topics, testLogger())

	ev := &domain.Event{
		ID:          "ntf_1",
		RecipientID: "usr_r",
		ActorID:     sp("usr_a"),
		Kind:        domain.KindReply,
		Actor: &forum.Profile{
			ID:          "usr_a",
			DisplayName: sp("Ann"),
			AvatarURL:   sp("https://cdn.example/a.png"),
		},
	}

	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.Actor)
	assert.Equal(t, "Ann", ectx.Actor.Name)
	assert.Equal(t, "usr_a", ectx.Actor.ID)
	assert.Equal(t, 0, profiles.calls)
}

func TestEnricher_ActorLookupFailureDegrades(t *testing.T) {
	profiles := &mockProfileLookup{
		findProfileFn: func(ctx context.Context, userID string) (*forum.Profile, error) {
			return nil, errors.New("connection refused")
		},
	}
	enricher := NewEnricher(profiles, &mockTopicLookup{}, testLogger())

	ev := &domain.Event{ID: "ntf_1", RecipientID: "usr_r", ActorID: sp("usr_a"), Kind: domain.KindLike}
	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.Actor)
	assert.Equal(t, "usr_a", ectx.Actor.ID)
	assert.Equal(t, "User", ectx.Actor.Name)
	assert.Nil(t, ectx.Actor.Avatar)
}

func TestEnricher_MissingProfileDegrades(t *testing.T) {
	enricher := NewEnricher(&mockProfileLookup{}, &mockTopicLookup{}, testLogger())

	ev := &domain.Event{ID: "ntf_1", RecipientID: "usr_r", ActorID: sp("usr_gone"), Kind: domain.KindLike}
	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.Actor)
	assert.Equal(t, "User", ectx.Actor.Name)
}

func TestEnricher_NoActorID(t *testing.T) {
	profiles := &mockProfileLookup{}
	enricher := NewEnricher(profiles, &mockTopicLookup{}, testLogger())

	ev := &domain.Event{ID: "ntf_1", RecipientID: "usr_r", Kind: domain.KindSystem}
	ectx := enricher.Enrich(context.Background(), ev)

	assert.Nil(t, ectx.Actor)
	assert.Equal(t, 0, profiles.calls)
}

// =============================================================================
// Topic Resolution Tests
// =============================================================================

func TestEnricher_DetailsShortCircuitTopicLookup(t *testing.T) {
	topics := &mockTopicLookup{}
	enricher := NewEnricher(&mockProfileLookup{}, topics, testLogger())

	ev := &domain.Event{
		ID:          "ntf_1",
		RecipientID: "usr_r",
		Kind:        domain.KindReply,
		TopicID:     sp("tpc_1"),
		Details: &domain.Details{
			TopicTitle:   sp("Show Times"),
			TopicSlug:    sp("show-times"),
			CategorySlug: sp("schedule"),
		},
	}

	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.TopicTitle)
	assert.Equal(t, "Show Times", *ectx.TopicTitle)
	assert.Equal(t, "show-times", *ectx.TopicSlug)
	assert.Equal(t, "schedule", *ectx.CategorySlug)
	assert.Equal(t, 0, topics.topicCalls)
}

func TestEnricher_TopicJoinResolvesCategory(t *testing.T) {
	topics := &mockTopicLookup{
		findTopicContextFn: func(ctx context.Context, topicID string) (*forum.TopicContext, error) {
			return &forum.TopicContext{
				ID:           topicID,
				Title:        "Show Times",
				Slug:         "show-times",
				CategoryID:   sp("cat_1"),
				CategorySlug: sp("schedule"),
			}, nil
		},
	}
	enricher := NewEnricher(&mockProfileLookup{}, topics, testLogger())

	ev := &domain.Event{ID: "ntf_1", RecipientID: "usr_r", Kind: domain.KindReply, TopicID: sp("tpc_1")}
	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.CategorySlug)
	assert.Equal(t, "schedule", *ectx.CategorySlug)
	assert.Equal(t, 1, topics.topicCalls)
	assert.Equal(t, 0, topics.categoryCalls)
}

func TestEnricher_CategoryFallbackLookup(t *testing.T) {
	topics := &mockTopicLookup{
		findTopicContextFn: func(ctx context.Context, topicID string) (*forum.TopicContext, error) {
			return &forum.TopicContext{
				ID:         topicID,
				Title:      "Show Times",
				Slug:       "show-times",
				CategoryID: sp("cat_1"),
			}, nil
		},
		findCategorySlugFn: func(ctx context.Context, categoryID string) (*string, error) {
			return sp("schedule"), nil
		},
	}
	enricher := NewEnricher(&mockProfileLookup{}, topics, testLogger())

	ev := &domain.Event{ID: "ntf_1", RecipientID: "usr_r", Kind: domain.KindReply, TopicID: sp("tpc_1")}
	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.CategorySlug)
	assert.Equal(t, "schedule", *ectx.CategorySlug)
	assert.Equal(t, 1, topics.categoryCalls)
}

func TestEnricher_CategoryFallbackFailureKeepsTopic(t *testing.T) {
	topics := &mockTopicLookup{
		findTopicContextFn: func(ctx context.Context, topicID string) (*forum.TopicContext, error) {
			return &forum.TopicContext{
				ID:         topicID,
				Title:      "Show Times",
				Slug:       "show-times",
				CategoryID: sp("cat_1"),
			}, nil
		},
		findCategorySlugFn: func(ctx context.Context, categoryID string) (*string, error) {
			return nil, errors.New("timeout")
		},
	}
	enricher := NewEnricher(&mockProfileLookup{}, topics, testLogger())

	ev := &domain.Event{ID: "ntf_1", RecipientID: "usr_r", Kind: domain.KindReply, TopicID: sp("tpc_1")}
	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.TopicTitle)
	assert.Equal(t, "Show Times", *ectx.TopicTitle)
	assert.Nil(t, ectx.CategorySlug)
}

func TestEnricher_TopicLookupFailureDegrades(t *testing.T) {
	topics := &mockTopicLookup{
		findTopicContextFn: func(ctx context.Context, topicID string) (*forum.TopicContext, error) {
			return nil, errors.New("timeout")
		},
	}
	enricher := NewEnricher(&mockProfileLookup{}, topics, testLogger())

	ev := &domain.Event{
		ID:          "ntf_1",
		RecipientID: "usr_r",
		Kind:        domain.KindReply,
		TopicID:     sp("tpc_1"),
		PostID:      sp("pst_1"),
	}
	ectx := enricher.Enrich(context.Background(), ev)

	assert.Nil(t, ectx.TopicTitle)
	assert.Nil(t, ectx.TopicSlug)
	require.NotNil(t, ectx.TargetPostID)
	assert.Equal(t, "pst_1", *ectx.TargetPostID)
}

func TestEnricher_LookupFailuresAreIndependent(t *testing.T) {
	profiles := &mockProfileLookup{
		findProfileFn: func(ctx context.Context, userID string) (*forum.Profile, error) {
			return nil, errors.New("connection refused")
		},
	}
	topics := &mockTopicLookup{
		findTopicContextFn: func(ctx context.Context, topicID string) (*forum.TopicContext, error) {
			return &forum.TopicContext{ID: topicID, Title: "Show Times", Slug: "show-times"}, nil
		},
	}
	enricher := NewEnricher(profiles, topics, testLogger())

	ev := &domain.Event{
		ID:          "ntf_1",
		RecipientID: "usr_r",
		ActorID:     sp("usr_a"),
		Kind:        domain.KindReply,
		TopicID:     sp("tpc_1"),
	}
	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.Actor)
	assert.Equal(t, "User", ectx.Actor.Name)
	require.NotNil(t, ectx.TopicTitle)
	assert.Equal(t, "Show Times", *ectx.TopicTitle)
}

func TestEnricher_QuotedPostWinsAsTarget(t *testing.T) {
	enricher := NewEnricher(&mockProfileLookup{}, &mockTopicLookup{}, testLogger())

	ev := &domain.Event{
		ID:          "ntf_1",
		RecipientID: "usr_r",
		Kind:        domain.KindQuote,
		PostID:      sp("pst_reply"),
		Details:     &domain.Details{QuotedPostID: sp("pst_quoted")},
	}
	ectx := enricher.Enrich(context.Background(), ev)

	require.NotNil(t, ectx.TargetPostID)
	assert.Equal(t, "pst_quoted", *ectx.TargetPostID)
}
