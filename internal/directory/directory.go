package directory

import (
	"fmt"
	"os"
	"slices"

	"github.com/romashorodok/room-directory/pkg/protocol"
	"gopkg.in/yaml.v3"
)

// Directory is the ordered, read-only set of recommended rooms. Order is the
// cyclic successor order used by the switch-room navigator.
type Directory struct {
	entries []protocol.RoomEntry
}

// New builds a directory from already validated entries.
func New(entries ...protocol.RoomEntry) *Directory {
	return &Directory{entries: slices.Clone(entries)}
}

// Entries returns the rooms in configuration order.
func (d *Directory) Entries() []protocol.RoomEntry {
	return slices.Clone(d.entries)
}

func (d *Directory) Len() int { return len(d.entries) }

func (d *Directory) At(index int) (protocol.RoomEntry, bool) {
	if index < 0 || index >= len(d.entries) {
		return protocol.RoomEntry{}, false
	}
	return d.entries[index], true
}

// FindIndexByTitle returns the index of the first entry with the given title.
func (d *Directory) FindIndexByTitle(title string) (int, bool) {
	idx := slices.IndexFunc(d.entries, func(e protocol.RoomEntry) bool {
		return e.Title == title
	})
	return idx, idx >= 0
}

type configFile struct {
	RecommendedRooms yaml.Node `yaml:"recommendedRooms"`
}

// Load parses a YAML (or JSON) document whose recommendedRooms key holds the
// ordered room descriptors. Every failure is a *ConfigurationError.
func Load(source string, data []byte) (*Directory, error) {
	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, configurationError(source, fmt.Errorf("parsing YAML: %w", err))
	}

	node := &file.RecommendedRooms
	switch node.Kind {
	case 0:
		return nil, configurationError(source, errRoomsAbsent)
	case yaml.SequenceNode:
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, configurationError(source, errRoomsAbsent)
		}
		return nil, configurationError(source, errRoomsNotSequence)
	default:
		return nil, configurationError(source, errRoomsNotSequence)
	}

	entries := make([]protocol.RoomEntry, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, configurationError(source, fmt.Errorf("room %d: %w", i, errRoomNotMapping))
		}

		var entry protocol.RoomEntry
		if err := item.Decode(&entry); err != nil {
			return nil, configurationError(source, fmt.Errorf("room %d: %w", i, err))
		}
		if entry.Title == "" {
			return nil, configurationError(source, fmt.Errorf("room %d: %w", i, errRoomNoTitle))
		}
		if entry.URL == "" && !entry.Disabled {
			return nil, configurationError(source, fmt.Errorf("room %d %q: %w", i, entry.Title, errRoomNoURL))
		}
		entries = append(entries, entry)
	}

	return &Directory{entries: entries}, nil
}

func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configurationError(path, err)
	}
	return Load(path, data)
}
