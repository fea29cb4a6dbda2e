// Package tui shows the two view regions in a terminal and maps keys to the
// action triggers.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davidroman0O/firm-inout/logging"
	"github.com/davidroman0O/firm-inout/view"
)

var log = logging.NewLogger("tui")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7E9CD8"))
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98BB6C"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DCD7BA"))
	regionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#363646")).
			Padding(0, 1).
			MarginRight(1)
)

// Model is the bubbletea model around a view.App
type Model struct {
	app    *view.App
	screen view.Screen
	keys   KeyMap
	help   help.Model
}

// New starts app and wraps it
func New(app *view.App) Model {
	return Model{
		app:    app,
		screen: app.Start(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.app.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.AddParent):
			m.screen = m.app.Press(view.AddToParent)
		case key.Matches(msg, m.keys.AddChild):
			m.screen = m.app.Press(view.AddToChild)
		case key.Matches(msg, m.keys.Rebuild):
			m.screen = m.app.Reconstruct()
		default:
			log.WithField("key", msg.String()).Trace("unbound key")
		}
	}
	return m, nil
}

func (m Model) View() string {
	regions := lipgloss.JoinHorizontal(lipgloss.Top,
		renderRegion(m.screen.Parent),
		renderRegion(m.screen.Child),
	)
	return regions + "\n" + m.help.View(m.keys) + "\n"
}

// Screen returns what the model currently shows
func (m Model) Screen() view.Screen {
	return m.screen
}

func renderRegion(frame view.Frame) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(frame.Title))
	b.WriteString("\n")
	b.WriteString(actionStyle.Render("[" + frame.Action + "]"))
	for _, label := range frame.Labels {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(label))
	}
	return regionStyle.Render(b.String())
}

// Run drives the program until the user quits
func Run(app *view.App, opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(New(app), opts...).Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}
