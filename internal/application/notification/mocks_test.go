package notification

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"aircast/internal/domain/forum"
	domain "aircast/internal/domain/notification"
	"aircast/internal/shared/logger"
)

func sp(s string) *string { return &s }

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockProfileLookup struct {
	findProfileFn func(ctx context.Context, userID string) (*forum.Profile, error)
	calls         int
}

func (m *mockProfileLookup) FindProfile(ctx context.Context, userID string) (*forum.Profile, error) {
	m.calls++
	if m.findProfileFn != nil {
		return m.findProfileFn(ctx, userID)
	}
	return nil, nil
}

type mockTopicLookup struct {
	findTopicContextFn func(ctx context.Context, topicID string) (*forum.TopicContext, error)
	findCategorySlugFn func(ctx context.Context, categoryID string) (*string, error)
	topicCalls         int
	categoryCalls      int
}

func (m *mockTopicLookup) FindTopicContext(ctx context.Context, topicID string) (*forum.TopicContext, error) {
	m.topicCalls++
	if m.findTopicContextFn != nil {
		return m.findTopicContextFn(ctx, topicID)
	}
	return nil, nil
}

func (m *mockTopicLookup) FindCategorySlug(ctx context.Context, categoryID string) (*string, error) {
	m.categoryCalls++
	if m.findCategorySlugFn != nil {
		return m.findCategorySlugFn(ctx, categoryID)
	}
	return nil, nil
}

type mockRepository struct {
	listByRecipientFn func(ctx context.Context, recipientID string, limit, offset int) ([]*domain.Event, int64, error)
	findEnrichedFn    func(ctx context.Context, id string) (*domain.Event, error)
	markAsReadFn      func(ctx context.Context, recipientID, id string) error
	markAllAsReadFn   func(ctx context.Context, recipientID string) error
	countUnreadFn     func(ctx context.Context, recipientID string) (int64, error)
}

func (m *mockRepository) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*domain.Event, int64, error) {
	if m.listByRecipientFn != nil {
		return m.listByRecipientFn(ctx, recipientID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockRepository) FindEnriched(ctx context.Context, id string) (*domain.Event, error) {
	if m.findEnrichedFn != nil {
		return m.findEnrichedFn(ctx, id)
	}
	return nil, nil
}

func (m *mockRepository) MarkAsRead(ctx context.Context, recipientID, id string) error {
	if m.markAsReadFn != nil {
		return m.markAsReadFn(ctx, recipientID, id)
	}
	return nil
}

func (m *mockRepository) MarkAllAsRead(ctx context.Context, recipientID string) error {
	if m.markAllAsReadFn != nil {
		return m.markAllAsReadFn(ctx, recipientID)
	}
	return nil
}

func (m *mockRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	if m.countUnreadFn != nil {
		return m.countUnreadFn(ctx, recipientID)
	}
	return 0, nil
}

// mockFeed captures the subscription handler so tests can push events
// synchronously, and blocks like a real subscription until cancelled.
type mockFeed struct {
	mu      sync.Mutex
	handler func(ev domain.Event)
	started chan struct{}
	onSub   func()
}

func newMockFeed() *mockFeed {
	return &mockFeed{started: make(chan struct{})}
}

func (m *mockFeed) Subscribe(ctx context.Context, recipientID string, handler func(ev domain.Event)) error {
	m.mu.Lock()
	m.handler = handler
	m.mu.Unlock()
	if m.onSub != nil {
		m.onSub()
	}
	close(m.started)
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockFeed) deliver(ev domain.Event) {
	m.mu.Lock()
	h := m.handler
	m.mu.Unlock()
	if h != nil {
		h(ev)
	}
}

type recordingSink struct {
	mu        sync.Mutex
	delivered []domain.Display
}

func (s *recordingSink) Deliver(n domain.Display) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, n)
}

func (s *recordingSink) items() []domain.Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Display, len(s.delivered))
	copy(out, s.delivered)
	return out
}
