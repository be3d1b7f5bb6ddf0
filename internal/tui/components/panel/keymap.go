package panel

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for moving focus between sliders.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap returns the default focus bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "j"),
			key.WithHelp("tab", "next parameter"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "k"),
			key.WithHelp("shift+tab", "previous parameter"),
		),
	}
}

// ShortHelp returns the short help bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev}
}

// FullHelp returns the full help bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
	}
}
