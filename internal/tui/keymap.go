package tui

import (
	"github.com/alkime/paramctl/internal/tui/components/panel"
	"github.com/alkime/paramctl/internal/tui/components/paramslider"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the global key bindings.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	panel  panel.KeyMap
	slider paramslider.KeyMap
}

// DefaultKeyMap returns the default global key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		panel:  panel.DefaultKeyMap(),
		slider: paramslider.DefaultKeyMap(),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.panel.Next, k.slider.Increase, k.slider.Decrease, k.slider.Edit, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.panel.Next, k.panel.Prev},
		{k.slider.Increase, k.slider.Decrease, k.slider.FineIncrease, k.slider.FineDecrease},
		{k.slider.Reset, k.slider.Edit, k.slider.Cancel},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
