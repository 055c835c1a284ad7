package room

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/internal/locale"
	"github.com/romashorodok/room-directory/internal/materializer"
	"github.com/romashorodok/room-directory/internal/navigator"
	"github.com/romashorodok/room-directory/internal/notify"
	"github.com/romashorodok/room-directory/internal/recent"
	"github.com/romashorodok/room-directory/pkg/protocol"
	"go.uber.org/fx"
)

var (
	ErrRoomNotExist     = errors.New("room not exist")
	ErrRoomNotPressable = errors.New("room is not open")
)

// ListOption selects how the recommended list is rendered.
type ListOption struct {
	HideURL   bool
	Disabled  bool
	Languages []string
}

// ActivateResult reports one activation of a switch-room control.
type ActivateResult struct {
	navigator.State
	Dispatched bool `json:"dispatched"`
}

type RoomService struct {
	directory *directory.Directory
	origin    string
	controls  *navigator.Registry
	recent    *recent.Store
	bridge    *recent.Bridge
	notifier  *notify.Notifier
	bundle    *locale.Bundle
	logger    *slog.Logger
}

func (s *RoomService) List(option ListOption) []protocol.DisplayEntry {
	return materializer.Materialize(s.directory, materializer.Options{
		HideURL:  option.HideURL,
		Disabled: option.Disabled,
		Localize: s.bundle.Translator(option.Languages...),
	})
}

func (s *RoomService) Sections(option ListOption) []protocol.Section {
	return materializer.Sections(s.List(option))
}

func (s *RoomService) Translate(key string, languages ...string) string {
	return s.bundle.Translator(languages...)(key)
}

// Join navigates to the entry at position, refusing entries the list would
// render without a press handler.
func (s *RoomService) Join(position int, option ListOption) (string, error) {
	entries := s.List(option)
	if position < 0 || position >= len(entries) {
		return "", ErrRoomNotExist
	}
	if !entries[position].Pressable {
		return "", ErrRoomNotPressable
	}

	entry, _ := s.directory.At(position)
	target := navigator.JoinOrigin(s.origin, entry.URL)
	s.navigateFor(notify.Broadcast)(target)
	return target, nil
}

func (s *RoomService) CreateControl() (string, error) {
	id, _, err := s.controls.Create(s.navigateFor)
	if err != nil {
		return "", err
	}
	s.logger.Debug("switch-room control created", slog.String("control", id))
	return id, nil
}

func (s *RoomService) ActivateControl(id, currentRoom string) (*ActivateResult, error) {
	nav, err := s.controls.Get(id)
	if err != nil {
		return nil, err
	}
	dispatched := nav.Activate(currentRoom)
	return &ActivateResult{State: nav.State(), Dispatched: dispatched}, nil
}

func (s *RoomService) ControlState(id string) (navigator.State, error) {
	nav, err := s.controls.Get(id)
	if err != nil {
		return navigator.State{}, err
	}
	return nav.State(), nil
}

func (s *RoomService) RemoveControl(id string) error {
	return s.controls.Remove(id)
}

func (s *RoomService) Recent() []recent.Entry {
	return s.recent.List()
}

func (s *RoomService) DeleteRecent(id string) error {
	if _, err := s.recent.Get(id); err != nil {
		return err
	}
	s.bridge.DeleteEntry(id)
	return nil
}

func (s *RoomService) RequestDialIn(id string) error {
	entry, err := s.recent.Get(id)
	if err != nil {
		return err
	}
	s.bridge.RequestDialInSummary(entry)
	return nil
}

// navigateFor is the navigate collaborator: the target is recorded in the
// recent list and pushed to whoever listens on channel.
func (s *RoomService) navigateFor(channel string) protocol.NavigateFunc {
	return func(target string) {
		s.logger.Info("navigate", slog.String("channel", channel), slog.String("target", target))

		if entry, ok := s.entryForTarget(target); ok {
			s.recent.Add(entry)
			_ = s.notifier.Dispatch(notify.Broadcast, notify.EventUpdateRecent, "")
		}
		_ = s.notifier.Dispatch(channel, notify.EventNavigate, target)
	}
}

func (s *RoomService) entryForTarget(target string) (protocol.RoomEntry, bool) {
	for _, entry := range s.directory.Entries() {
		if navigator.JoinOrigin(s.origin, entry.URL) == target {
			return entry, true
		}
	}
	return protocol.RoomEntry{}, false
}

func (s *RoomService) deleteRecentEntry(id string) {
	if err := s.recent.Delete(id); err != nil {
		s.logger.Error(fmt.Sprintf("delete recent entry %s. Err: %s", id, err))
		return
	}
	_ = s.notifier.Dispatch(notify.Broadcast, notify.EventUpdateRecent, "")
}

func (s *RoomService) showDialInSummary(url string) {
	s.logger.Debug("dial-in summary", slog.String("url", url))
	_ = s.notifier.Dispatch(notify.Broadcast, notify.EventDialInSummary, url)
}

type NewRoomServiceParams struct {
	fx.In

	Directory *directory.Directory
	Origin    string `name:"navigate.origin"`
	Recent    *recent.Store
	Notifier  *notify.Notifier
	Bundle    *locale.Bundle
	Logger    *slog.Logger
}

func NewRoomService(params NewRoomServiceParams) *RoomService {
	s := &RoomService{
		directory: params.Directory,
		origin:    params.Origin,
		controls:  navigator.NewRegistry(params.Directory, params.Origin),
		recent:    params.Recent,
		notifier:  params.Notifier,
		bundle:    params.Bundle,
		logger:    params.Logger,
	}
	s.bridge = recent.NewBridge(s.deleteRecentEntry, s.showDialInSummary)
	return s
}
