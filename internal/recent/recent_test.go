package recent

import (
	"fmt"
	"testing"
	"time"

	"github.com/romashorodok/room-directory/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var tick int
	return func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
}

func TestStoreAdd(t *testing.T) {
	store := NewStore()
	store.now = fixedClock()

	a := store.Add(protocol.RoomEntry{Title: "Room A", URL: "a"})
	b := store.Add(protocol.RoomEntry{Title: "Room B", URL: "b"})
	require.NotEqual(t, a.ID, b.ID)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].URL)
	assert.Equal(t, "a", list[1].URL)

	again := store.Add(protocol.RoomEntry{Title: "Room A", URL: "a"})
	assert.Equal(t, a.ID, again.ID)
	assert.True(t, again.JoinedAt.After(a.JoinedAt))

	list = store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].URL)
}

func TestStoreLimit(t *testing.T) {
	store := NewStore()
	store.limit = 3

	for i := 0; i < 5; i++ {
		store.Add(protocol.RoomEntry{Title: fmt.Sprint(i), URL: fmt.Sprint(i)})
	}

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "4", list[0].URL)
	assert.Equal(t, "2", list[2].URL)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	entry := store.Add(protocol.RoomEntry{Title: "Room A", URL: "a"})

	got, err := store.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	require.NoError(t, store.Delete(entry.ID))
	assert.Empty(t, store.List())

	assert.ErrorIs(t, store.Delete(entry.ID), ErrEntryNotExist)
	_, err = store.Get(entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotExist)
}

func TestBridge(t *testing.T) {
	var deleted, dialIn []string
	bridge := NewBridge(
		func(id string) { deleted = append(deleted, id) },
		func(url string) { dialIn = append(dialIn, url) },
	)

	bridge.DeleteEntry("entry-1")
	bridge.RequestDialInSummary(Entry{ID: "entry-2", RoomEntry: protocol.RoomEntry{Title: "Room B", URL: "b"}})

	assert.Equal(t, []string{"entry-1"}, deleted)
	assert.Equal(t, []string{"b"}, dialIn)
}
