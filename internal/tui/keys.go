package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo's keyboard bindings.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Recenter key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last page"),
		),
		Recenter: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recentre"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.First, k.Last, k.Recenter},
		{k.Help, k.Quit},
	}
}
