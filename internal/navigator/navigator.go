package navigator

import (
	"strings"

	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/pkg/protocol"
	"go.uber.org/atomic"
)

// Next returns the entry following the first one titled currentRoom, wrapping
// to the first entry when currentRoom is last or absent. ok is false only for
// an empty directory.
func Next(dir *directory.Directory, currentRoom string) (next protocol.RoomEntry, ok bool) {
	entries := dir.Entries()
	if len(entries) == 0 {
		return protocol.RoomEntry{}, false
	}

	isNext := false
	for _, entry := range entries {
		if entry.Title == currentRoom {
			// Entries sharing the current title are never a target.
			isNext = true
		} else if isNext {
			return entry, true
		}
	}
	return entries[0], true
}

// JoinOrigin builds the absolute navigation target for a room url.
func JoinOrigin(origin, roomURL string) string {
	if origin == "" {
		return roomURL
	}
	return strings.TrimSuffix(origin, "/") + "/" + strings.TrimPrefix(roomURL, "/")
}

// State is the inspectable state of one switch-room control.
type State struct {
	Activated bool   `json:"activated"`
	Target    string `json:"target,omitempty"`
}

// Navigator backs a single switch-room control. The first Activate resolves
// and dispatches the next room; every later call is a no-op.
type Navigator struct {
	directory *directory.Directory
	origin    string
	navigate  protocol.NavigateFunc

	activated *atomic.Bool
	target    *atomic.String
}

type Params struct {
	Directory *directory.Directory
	Origin    string
	Navigate  protocol.NavigateFunc
}

func New(params Params) (*Navigator, error) {
	if params.Directory == nil {
		return nil, ErrNoDirectory
	}
	if params.Navigate == nil {
		return nil, ErrNoNavigate
	}
	return &Navigator{
		directory: params.Directory,
		origin:    params.Origin,
		navigate:  params.Navigate,
		activated: atomic.NewBool(false),
		target:    atomic.NewString(""),
	}, nil
}

// Activate reports whether this call dispatched a navigation.
func (n *Navigator) Activate(currentRoom string) bool {
	if !n.activated.CompareAndSwap(false, true) {
		return false
	}

	entry, ok := Next(n.directory, currentRoom)
	if !ok {
		return false
	}

	target := JoinOrigin(n.origin, entry.URL)
	n.target.Store(target)
	n.navigate(target)
	return true
}

func (n *Navigator) State() State {
	return State{
		Activated: n.activated.Load(),
		Target:    n.target.Load(),
	}
}
