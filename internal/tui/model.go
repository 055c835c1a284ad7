package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/internal/materializer"
	"github.com/romashorodok/room-directory/internal/navigator"
	"github.com/romashorodok/room-directory/pkg/protocol"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// session is shared by every copy of the Model so the navigate callback
// handed to a Navigator can record where the user went.
type session struct {
	current    string
	target     string
	dispatches int
	switcher   *navigator.Navigator
}

type Model struct {
	list      list.Model
	directory *directory.Directory
	origin    string
	translate protocol.LocalizeFunc
	session   *session
	err       error
}

type Params struct {
	Directory   *directory.Directory
	Origin      string
	CurrentRoom string
	Localize    protocol.LocalizeFunc
}

func NewModel(params Params) (Model, error) {
	translate := params.Localize
	if translate == nil {
		translate = func(key string) string { return key }
	}

	entries := materializer.Materialize(params.Directory, materializer.Options{
		HideURL:  true,
		Localize: translate,
	})

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	l := list.New(Items(entries, translate("recommendedList.watch")), delegate, 60, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := Model{
		list:      l,
		directory: params.Directory,
		origin:    params.Origin,
		translate: translate,
		session:   &session{current: params.CurrentRoom},
	}
	if err := m.newSwitcher(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newSwitcher mounts a fresh switch-room control for the current room.
func (m Model) newSwitcher() error {
	switcher, err := navigator.New(navigator.Params{
		Directory: m.directory,
		Origin:    m.origin,
		Navigate:  m.navigate,
	})
	if err != nil {
		return err
	}
	m.session.switcher = switcher
	return nil
}

func (m Model) navigate(target string) {
	m.session.target = target
	m.session.dispatches++
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			m.session.switcher.Activate(m.session.current)
			return m, nil
		case "enter":
			m.join()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) join() {
	item, ok := m.list.SelectedItem().(roomItem)
	if !ok || !item.entry.Pressable {
		return
	}
	entry, ok := m.directory.At(item.entry.Position)
	if !ok {
		return
	}

	m.navigate(navigator.JoinOrigin(m.origin, entry.URL))
	m.session.current = entry.Title
	m.err = m.newSwitcher()
}

func (m Model) View() string {
	header := titleStyle.Render(m.translate("toolbar.switchRoom"))
	if len(m.list.Items()) == 0 {
		return header + "\n" + m.translate("recommendedList.empty") + "\n"
	}

	status := ""
	if m.session.target != "" {
		status = statusStyle.Render(fmt.Sprintf("→ %s", m.session.target))
	}
	if m.err != nil {
		status = m.err.Error()
	}
	help := helpStyle.Render("enter: join • s: switch room • q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), status, help)
}

// Target is the last navigation target, empty when none happened.
func (m Model) Target() string { return m.session.target }

func (m Model) CurrentRoom() string { return m.session.current }

func (m Model) Dispatches() int { return m.session.dispatches }
