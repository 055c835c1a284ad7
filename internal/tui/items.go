package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/romashorodok/room-directory/internal/materializer"
	"github.com/romashorodok/room-directory/pkg/protocol"
)

// roomItem adapts a DisplayEntry to the bubbles list primitive.
type roomItem struct {
	entry protocol.DisplayEntry
	watch string
}

func (i roomItem) Title() string {
	if i.entry.HasThumbnail() {
		return "▶ " + i.entry.Title
	}
	return i.entry.Title
}

func (i roomItem) Description() string {
	switch {
	case i.entry.IsDisabled():
		return disabledStyle.Render(i.entry.DisabledLabel)
	case i.entry.HasThumbnail():
		return i.watch + " " + materializer.WatchURL(i.entry.ThumbnailRef)
	case i.entry.HasURL():
		return i.entry.URL
	}
	return ""
}

func (i roomItem) FilterValue() string { return i.entry.Title }

// Items converts a flat materialized list into list items, keeping order.
func Items(entries []protocol.DisplayEntry, watchLabel string) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, roomItem{entry: entry, watch: watchLabel})
	}
	return items
}
