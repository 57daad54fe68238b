package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "aircast/internal/domain/notification"
)

func display(id string) *domain.Display {
	return &domain.Display{ID: id}
}

// =============================================================================
// Initial Load Tests
// =============================================================================

func TestStore_LoadInitialReplacesWholesale(t *testing.T) {
	store := NewStore("usr_r")
	store.LoadInitial([]*domain.Display{display("ntf_1"), display("ntf_2")})
	require.Equal(t, 2, store.Len())

	store.LoadInitial([]*domain.Display{display("ntf_3")})

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "ntf_3", snapshot[0].ID)
}

func TestStore_LoadInitialDedupesKeepFirst(t *testing.T) {
	store := NewStore("usr_r")

	first := display("ntf_1")
	first.Content = "first"
	second := display("ntf_1")
	second.Content = "second"

	store.LoadInitial([]*domain.Display{first, second, display("ntf_2")})

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "first", snapshot[0].Content)
}

func TestStore_LoadInitialPreservesOrder(t *testing.T) {
	store := NewStore("usr_r")
	store.LoadInitial([]*domain.Display{display("ntf_3"), display("ntf_2"), display("ntf_1")})

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "ntf_3", snapshot[0].ID)
	assert.Equal(t, "ntf_1", snapshot[2].ID)
}

// =============================================================================
// Realtime Insert Tests
// =============================================================================

func TestStore_InsertRealtimePrepends(t *testing.T) {
	store := NewStore("usr_r")
	store.LoadInitial([]*domain.Display{display("ntf_1")})

	inserted := store.InsertRealtime(display("ntf_2"))

	assert.True(t, inserted)
	snapshot := store.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "ntf_2", snapshot[0].ID)
	assert.Equal(t, "ntf_1", snapshot[1].ID)
}

func TestStore_InsertRealtimeIsIdempotent(t *testing.T) {
	store := NewStore("usr_r")
	store.LoadInitial([]*domain.Display{display("ntf_1")})

	assert.False(t, store.InsertRealtime(display("ntf_1")))
	assert.Equal(t, 1, store.Len())

	assert.True(t, store.InsertRealtime(display("ntf_2")))
	assert.False(t, store.InsertRealtime(display("ntf_2")))
	assert.Equal(t, 2, store.Len())
}

func TestStore_InsertRealtimeNil(t *testing.T) {
	store := NewStore("usr_r")
	assert.False(t, store.InsertRealtime(nil))
	assert.Equal(t, 0, store.Len())
}

// =============================================================================
// Read State Tests
// =============================================================================

func TestStore_MarkRead(t *testing.T) {
	store := NewStore("usr_r")
	store.LoadInitial([]*domain.Display{display("ntf_1"), display("ntf_2")})

	assert.True(t, store.MarkRead("ntf_1"))
	assert.False(t, store.MarkRead("ntf_missing"))

	snapshot := store.Snapshot()
	assert.True(t, snapshot[0].Read)
	assert.False(t, snapshot[1].Read)
	assert.Equal(t, 1, store.UnreadCount())
}

func TestStore_MarkAllRead(t *testing.T) {
	store := NewStore("usr_r")
	store.LoadInitial([]*domain.Display{display("ntf_1"), display("ntf_2"), display("ntf_3")})

	store.MarkAllRead()

	assert.Equal(t, 0, store.UnreadCount())
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	store := NewStore("usr_r")
	store.LoadInitial([]*domain.Display{display("ntf_1")})

	snapshot := store.Snapshot()
	snapshot[0].Read = true

	assert.Equal(t, 1, store.UnreadCount())
}
