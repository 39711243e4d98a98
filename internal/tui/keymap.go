package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the root model's keyboard shortcuts. Navigation and
// disclosure keys live with the funnel list component.
type KeyMap struct {
	// Actions
	Filter      key.Binding
	ClearFilter key.Binding
	Refresh     key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Filter: key.NewBinding(
			key.WithKeys("f", "/"),
			key.WithHelp("f", "filtros"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "limpar filtros"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recarregar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "sair"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "sair"),
		),
	}
}
