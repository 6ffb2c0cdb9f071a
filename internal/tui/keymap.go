package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Quit  key.Binding
	Pause key.Binding
	Rerun key.Binding

	// Suite list navigation.
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	First       key.Binding
	Last        key.Binding
	NextFailure key.Binding
}

func binding(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        binding("q", "quit", "q", "ctrl+c"),
		Pause:       binding("space", "pause", " ", "p"),
		Rerun:       binding("r", "rerun", "r"),
		Up:          binding("↑/k", "up", "up", "k"),
		Down:        binding("↓/j", "down", "down", "j"),
		PageUp:      binding("pgup", "page up", "pgup"),
		PageDown:    binding("pgdn", "page down", "pgdown"),
		First:       binding("g", "first suite", "home", "g"),
		Last:        binding("G", "last suite", "end", "G"),
		NextFailure: binding("f", "next failure", "f"),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Pause, k.Rerun, k.NextFailure, k.Up, k.Down}
}
