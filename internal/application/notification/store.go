package notification

import (
	"sync"

	domain "aircast/internal/domain/notification"
)

// Store is the per-recipient merge/dedup state: an ordered collection
// of display notifications, newest first, merged from the initial bulk
// load and the realtime feed with at-most-once insertion per ID.
//
// A Store is owned by exactly one session and torn down with it; it is
// never shared across recipients. The mutex exists because the feed
// consumer and HTTP readers touch it concurrently, but there is only
// one logical writer (the feed consumer serializes mutations).
type Store struct {
	mu          sync.RWMutex
	recipientID string
	items       []*domain.Display
	byID        map[string]*domain.Display
}

func NewStore(recipientID string) *Store {
	return &Store{
		recipientID: recipientID,
		byID:        make(map[string]*domain.Display),
	}
}

func (s *Store) RecipientID() string {
	return s.recipientID
}

// LoadInitial replaces the store contents wholesale with the bulk-fetch
// result. Order of the batch is preserved (callers fetch newest first).
// Duplicate IDs within the batch keep the first occurrence.
func (s *Store) LoadInitial(batch []*domain.Display) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items[:0]
	s.byID = make(map[string]*domain.Display, len(batch))

	for _, n := range batch {
		if n == nil {
			continue
		}
		if _, exists := s.byID[n.ID]; exists {
			continue
		}
		s.items = append(s.items, n)
		s.byID[n.ID] = n
	}
}

// InsertRealtime prepends the notification if no entry shares its ID,
// and reports whether it was inserted. The no-op on duplicates is the
// idempotence guarantee needed when a realtime delivery races a
// concurrent bulk refetch.
func (s *Store) InsertRealtime(n *domain.Display) bool {
	if n == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[n.ID]; exists {
		return false
	}

	s.items = append([]*domain.Display{n}, s.items...)
	s.byID[n.ID] = n
	return true
}

// MarkRead flips the read flag on the matching entry; no-op if absent.
// Reports whether an entry was updated.
func (s *Store) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.byID[id]
	if !ok {
		return false
	}
	n.Read = true
	return true
}

// MarkAllRead flips every entry to read.
func (s *Store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.items {
		n.Read = true
	}
}

// Snapshot returns a copy of the current contents, newest first.
func (s *Store) Snapshot() []domain.Display {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Display, 0, len(s.items))
	for _, n := range s.items {
		out = append(out, *n)
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}
