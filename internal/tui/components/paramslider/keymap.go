package paramslider

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of a focused parameter slider.
type KeyMap struct {
	Increase     key.Binding
	Decrease     key.Binding
	FineIncrease key.Binding
	FineDecrease key.Binding
	Reset        key.Binding
	Edit         key.Binding
	Submit       key.Binding
	Cancel       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(
			key.WithKeys("right", "up", "l"),
			key.WithHelp("→/↑", "step up"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "down", "h"),
			key.WithHelp("←/↓", "step down"),
		),
		FineIncrease: key.NewBinding(
			key.WithKeys("shift+right", "shift+up", "L"),
			key.WithHelp("shift+→", "fine up"),
		),
		FineDecrease: key.NewBinding(
			key.WithKeys("shift+left", "shift+down", "H"),
			key.WithHelp("shift+←", "fine down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("del", "reset"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "type value"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns the short help bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Edit, k.Reset}
}

// FullHelp returns the full help bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease, k.FineIncrease, k.FineDecrease},
		{k.Edit, k.Submit, k.Cancel, k.Reset},
	}
}
