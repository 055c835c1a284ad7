// Package materializer projects a room directory into render-ready entries.
package materializer

import (
	"fmt"

	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/pkg/protocol"
)

const (
	NotYetOpenKey = "recommendedList.notYetOpen"

	watchURLPrefix = "https://youtube.com/watch?v="
)

var builtinMessages = map[string]string{
	NotYetOpenKey: "Not yet open",
}

// Options are the display flags of one list rendering.
type Options struct {
	HideURL  bool
	Disabled bool
	Localize protocol.LocalizeFunc
}

func (o Options) localize(key string) string {
	if o.Localize != nil {
		return o.Localize(key)
	}
	if msg, ok := builtinMessages[key]; ok {
		return msg
	}
	return key
}

// Materialize returns a fresh entry per room, in directory order.
func Materialize(dir *directory.Directory, opts Options) []protocol.DisplayEntry {
	if dir == nil {
		return []protocol.DisplayEntry{}
	}

	entries := dir.Entries()
	result := make([]protocol.DisplayEntry, 0, len(entries))
	for position, entry := range entries {
		result = append(result, materializeEntry(position, entry, opts))
	}
	return result
}

func materializeEntry(position int, entry protocol.RoomEntry, opts Options) protocol.DisplayEntry {
	disabled := opts.Disabled || entry.Disabled

	display := protocol.DisplayEntry{
		Title:        entry.Title,
		ThumbnailRef: entry.YtURL,
		Position:     position,
		Pressable:    !disabled && entry.URL != "",
	}
	if !opts.HideURL {
		display.URL = entry.URL
	}
	if disabled {
		display.DisabledLabel = DisabledLabel(entry.Hint, opts)
	}
	return display
}

// DisabledLabel renders "Not yet open — {hint}". Only the prefix is looked
// up; the hint is interpolated as configured.
func DisabledLabel(hint string, opts Options) string {
	label := opts.localize(NotYetOpenKey)
	if hint == "" {
		return label
	}
	return fmt.Sprintf("%s — %s", label, hint)
}

// Sections wraps a flat list into the single implicit section form.
func Sections(flat []protocol.DisplayEntry) []protocol.Section {
	return []protocol.Section{{Data: flat}}
}

// WatchURL expands a thumbnail reference into its video page. The reference
// is appended verbatim so extra query parameters (t=42s) survive.
func WatchURL(thumbnailRef string) string {
	if thumbnailRef == "" {
		return ""
	}
	return watchURLPrefix + thumbnailRef
}
