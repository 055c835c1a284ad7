package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T, current string) Model {
	t.Helper()
	m, err := NewModel(Params{
		Directory: directory.New(
			protocol.RoomEntry{Title: "Room A", URL: "a", YtURL: "dQw4w9WgXcQ"},
			protocol.RoomEntry{Title: "Room B", URL: "b"},
			protocol.RoomEntry{Title: "Room C", URL: "c", Disabled: true, Hint: "soon"},
		),
		Origin:      "//meet.example.org",
		CurrentRoom: current,
	})
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(key)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

var (
	keySwitch = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
)

func TestSwitchOnce(t *testing.T) {
	m := testModel(t, "Room B")

	m = press(t, m, keySwitch)
	assert.Equal(t, "//meet.example.org/c", m.Target())
	assert.Equal(t, 1, m.Dispatches())

	m = press(t, m, keySwitch)
	assert.Equal(t, 1, m.Dispatches())
}

func TestJoinMountsNewSwitcher(t *testing.T) {
	m := testModel(t, "Room Z")

	m = press(t, m, keyEnter)
	assert.Equal(t, "//meet.example.org/a", m.Target())
	assert.Equal(t, "Room A", m.CurrentRoom())

	m = press(t, m, keySwitch)
	assert.Equal(t, "//meet.example.org/b", m.Target())
	assert.Equal(t, 2, m.Dispatches())
}

func TestJoinSkipsClosedRooms(t *testing.T) {
	m := testModel(t, "Room A")

	m = press(t, m, keyDown)
	m = press(t, m, keyDown)
	m = press(t, m, keyEnter)

	assert.Empty(t, m.Target())
	assert.Equal(t, 0, m.Dispatches())
}

func TestQuit(t *testing.T) {
	m := testModel(t, "Room A")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewEmptyDirectory(t *testing.T) {
	m, err := NewModel(Params{Directory: directory.New()})
	require.NoError(t, err)
	assert.Contains(t, m.View(), "recommendedList.empty")
}

func TestItems(t *testing.T) {
	items := Items([]protocol.DisplayEntry{
		{Title: "Room A", ThumbnailRef: "dQw4w9WgXcQ", Pressable: true},
		{Title: "Room B", URL: "b", Pressable: true, Position: 1},
		{Title: "Room C", DisabledLabel: "Not yet open — soon", Position: 2},
	}, "Watch")
	require.Len(t, items, 3)

	a := items[0].(roomItem)
	assert.Equal(t, "▶ Room A", a.Title())
	assert.Equal(t, "Watch https://youtube.com/watch?v=dQw4w9WgXcQ", a.Description())
	assert.Equal(t, "Room A", a.FilterValue())

	assert.Equal(t, "b", items[1].(roomItem).Description())
	assert.Contains(t, items[2].(roomItem).Description(), "Not yet open — soon")
}
