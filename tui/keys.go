package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the demo's key bindings
type KeyMap struct {
	AddParent key.Binding
	AddChild  key.Binding
	Rebuild   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap binds p/c to the two action triggers
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddParent: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add to parent"),
		),
		AddChild: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add to child"),
		),
		Rebuild: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rebuild views"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddParent, k.AddChild, k.Rebuild, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
