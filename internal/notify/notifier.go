package notify

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/romashorodok/room-directory/pkg/executils"
)

const (
	// Broadcast reaches every listener of the room directory page.
	Broadcast = "*"

	EventNavigate      = "navigate"
	EventUpdateRecent  = "update-recent"
	EventDialInSummary = "dial-in-summary"

	parallelThreshold uint64 = 1000
	parallelStep      uint64 = 2
)

// Listener receives pushed events; *wsutils.ThreadSafeWriter satisfies it.
type Listener interface {
	WriteEvent(event, data string) error
}

// Notifier fans events out to listeners grouped by channel. A switch-room
// control listens on its own id, the directory page on Broadcast.
type Notifier struct {
	mu        sync.Mutex
	listeners map[string]map[string]Listener
	logger    *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{
		listeners: make(map[string]map[string]Listener),
		logger:    logger,
	}
}

func (n *Notifier) Listen(channel, id string, l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exist := n.listeners[channel]; !exist {
		n.listeners[channel] = make(map[string]Listener)
	}
	n.listeners[channel][id] = l
}

func (n *Notifier) Stop(channel, id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.listeners[channel], id)
	if len(n.listeners[channel]) == 0 {
		delete(n.listeners, channel)
	}
}

func (n *Notifier) Count(channel string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners[channel])
}

func (n *Notifier) getListeners(channel string) (result []Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, listener := range n.listeners[channel] {
		result = append(result, listener)
	}
	return
}

// Dispatch pushes one event to every listener of channel. A channel nobody
// listens on is not an error.
func (n *Notifier) Dispatch(channel, event, data string) error {
	err := executils.ParallelExec(n.getListeners(channel), parallelThreshold, parallelStep, func(l Listener) error {
		return l.WriteEvent(event, data)
	})
	if err != nil {
		n.logger.Error(fmt.Sprintf("dispatch %s on %s. Err: %s", event, channel, err))
	}
	return err
}
