// Package panel stacks parameter sliders vertically and routes keyboard
// focus and mouse events between them.
package panel

import (
	"strings"

	"github.com/alkime/paramctl/internal/tui/components/paramslider"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NextFocusMsg moves focus to the next slider.
type NextFocusMsg struct{}

// PrevFocusMsg moves focus to the previous slider.
type PrevFocusMsg struct{}

// Model is a column of sliders with exactly one focused.
type Model struct {
	items   []paramslider.Model
	curr    int
	keys    KeyMap
	originX int
	originY int
}

// New lays the sliders out top to bottom and focuses the first.
func New(items []paramslider.Model) Model {
	m := Model{
		items: append([]paramslider.Model(nil), items...),
		keys:  DefaultKeyMap(),
	}

	m.layout()

	if len(m.items) > 0 {
		m.items[0] = m.items[0].Focus()
	}

	return m
}

// SetOrigin places the panel's first line at terminal cell (x, y).
func (m Model) SetOrigin(x, y int) Model {
	m.originX, m.originY = x, y
	m.items = append([]paramslider.Model(nil), m.items...)
	m.layout()

	return m
}

func (m *Model) layout() {
	y := m.originY
	for i := range m.items {
		m.items[i] = m.items[i].SetOrigin(m.originX, y)
		y += m.items[i].Height()
	}
}

// Keys returns the focus bindings.
func (m Model) Keys() KeyMap { return m.keys }

// Len returns the number of sliders.
func (m Model) Len() int { return len(m.items) }

// Focused returns the focused slider. ok is false for an empty panel.
func (m Model) Focused() (paramslider.Model, bool) {
	if len(m.items) == 0 {
		return paramslider.Model{}, false
	}

	return m.items[m.curr], true
}

// FocusedIndex returns the position of the focused slider.
func (m Model) FocusedIndex() int { return m.curr }

// Editing reports whether the focused slider has text entry open.
func (m Model) Editing() bool {
	item, ok := m.Focused()

	return ok && item.Slider().Editing()
}

// Dragging reports whether any slider is being dragged.
func (m Model) Dragging() bool {
	for _, item := range m.items {
		if item.Slider().Dragging() {
			return true
		}
	}

	return false
}

// Height is the number of lines View renders.
func (m Model) Height() int {
	h := 0
	for _, item := range m.items {
		h += item.Height()
	}

	return h
}

// Close ends any open gesture on every slider.
func (m Model) Close() {
	for _, item := range m.items {
		item.Close()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}

	switch msg := teaMsg.(type) {
	case NextFocusMsg:
		return m.focus((m.curr + 1) % len(m.items)), nil

	case PrevFocusMsg:
		return m.focus((m.curr - 1 + len(m.items)) % len(m.items)), nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m.broadcast(teaMsg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.Editing() && !m.Dragging() {
		switch {
		case key.Matches(msg, m.keys.Next):
			return m.focus((m.curr + 1) % len(m.items)), nil
		case key.Matches(msg, m.keys.Prev):
			return m.focus((m.curr - 1 + len(m.items)) % len(m.items)), nil
		}
	}

	m.items = append([]paramslider.Model(nil), m.items...)

	var cmd tea.Cmd
	m.items[m.curr], cmd = m.items[m.curr].Update(msg)

	return m, cmd
}

// updateMouse focuses the slider under a primary press before every
// slider sees the event; each one filters by its own bar and drag state.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.Dragging() {
		for i, item := range m.items {
			if item.Contains(msg.X, msg.Y) && i != m.curr {
				m = m.focus(i)

				break
			}
		}
	}

	return m.broadcast(msg)
}

func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.items = append([]paramslider.Model(nil), m.items...)
	cmds := make([]tea.Cmd, 0, len(m.items))

	for i := range m.items {
		var cmd tea.Cmd
		m.items[i], cmd = m.items[i].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// focus moves focus to slider i, closing text entry on the previous one.
func (m Model) focus(i int) Model {
	if i == m.curr {
		return m
	}

	m.items = append([]paramslider.Model(nil), m.items...)
	m.items[m.curr] = m.items[m.curr].Blur()
	m.items[i] = m.items[i].Focus()
	m.curr = i

	return m
}

func (m Model) View() string {
	views := make([]string, len(m.items))
	for i, item := range m.items {
		views[i] = item.View()
	}

	return strings.Join(views, "\n")
}
