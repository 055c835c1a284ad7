package recent

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/romashorodok/room-directory/pkg/protocol"
)

var ErrEntryNotExist = errors.New("recent entry not exist")

// Entry is a room the user joined, keyed by an opaque id.
type Entry struct {
	ID       string    `json:"id"`
	JoinedAt time.Time `json:"joinedAt"`
	protocol.RoomEntry
}

// Store keeps the recent list most recent first, one entry per url.
type Store struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
	now     func() time.Time
}

const DefaultLimit = 30

func NewStore() *Store {
	return &Store{
		limit: DefaultLimit,
		now:   time.Now,
	}
}

// Add records a join. Joining a url already on the list moves it to the top
// and keeps its id.
func (s *Store) Add(room protocol.RoomEntry) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{ID: uuid.NewString(), RoomEntry: room, JoinedAt: s.now()}
	if idx := slices.IndexFunc(s.entries, func(e Entry) bool { return e.URL == room.URL }); idx >= 0 {
		entry.ID = s.entries[idx].ID
		s.entries = slices.Delete(s.entries, idx, idx+1)
	}

	s.entries = slices.Insert(s.entries, 0, entry)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
	return entry
}

func (s *Store) Get(id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Entry{}, ErrEntryNotExist
	}
	return s.entries[idx], nil
}

func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrEntryNotExist
	}
	s.entries = slices.Delete(s.entries, idx, idx+1)
	return nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.ID == id })
}
