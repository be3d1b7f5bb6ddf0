// Package paramslider provides a TUI component that edits a normalized
// parameter by mouse drag, scroll wheel, arrow keys or typed text.
package paramslider

import (
	"fmt"
	"strings"
	"time"

	"github.com/alkime/paramctl/internal/slider"
	"github.com/alkime/paramctl/internal/tui/style"
	"github.com/alkime/paramctl/pkg/collections"
	"github.com/alkime/paramctl/pkg/uictl"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	markerWidth = 2
	nameWidth   = 10

	DefaultWidth               = 40
	DefaultDoubleClickInterval = 400 * time.Millisecond
)

// Config configures a parameter slider component.
type Config struct {
	Name   string
	Slider slider.Config

	// Width of the bar in cells.
	Width int

	DoubleClickInterval time.Duration

	// Scale is the display density applied to granular drags.
	Scale float32

	// Now is the clock used for double click detection.
	Now func() time.Time
}

// Model is a one-line slider bar with an optional tick row below it.
type Model struct {
	slider *slider.Slider
	name   string
	keys   KeyMap
	input  textinput.Model

	width   int
	originX int
	originY int
	focused bool

	scale       float32
	doubleClick time.Duration
	now         func() time.Time

	lastPress    time.Time
	lastPressCol int
}

// New creates a slider component for p. Labeled step styles get a tick per
// step unless ticks are configured explicitly.
func New(p uictl.NormalizedParameter, cfg Config) Model {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}

	if cfg.DoubleClickInterval <= 0 {
		cfg.DoubleClickInterval = DefaultDoubleClickInterval
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if cfg.Slider.Ticks == nil && cfg.Slider.Style.Labeled() {
		cfg.Slider.Ticks = slider.StepTicks(cfg.Slider.Style, p)
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 32

	return Model{
		slider:      slider.New(p, cfg.Slider),
		name:        cfg.Name,
		keys:        DefaultKeyMap(),
		input:       ti,
		width:       cfg.Width,
		scale:       cfg.Scale,
		doubleClick: cfg.DoubleClickInterval,
		now:         cfg.Now,
	}
}

// Slider exposes the interaction core.
func (m Model) Slider() *slider.Slider { return m.slider }

// Keys returns the key bindings.
func (m Model) Keys() KeyMap { return m.keys }

// Name returns the display name.
func (m Model) Name() string { return m.name }

// SetOrigin places the component's first line at terminal cell (x, y).
func (m Model) SetOrigin(x, y int) Model {
	m.originX, m.originY = x, y

	return m
}

// Focus makes the component receive key messages.
func (m Model) Focus() Model {
	m.focused = true

	return m
}

// Blur removes focus and closes any open text entry.
func (m Model) Blur() Model {
	m.focused = false
	m.slider.Blur()
	m.input.Blur()

	return m
}

// Focused reports whether the component has focus.
func (m Model) Focused() bool { return m.focused }

// Height is the number of lines View renders.
func (m Model) Height() int {
	ticks := m.slider.Ticks()
	if ticks.Len() == 0 {
		return 1
	}

	if collections.Any(ticks.Ticks(), func(t slider.Tick) bool { return t.Label != "" }) {
		return 3
	}

	return 2
}

// Contains reports whether terminal cell (x, y) is on the bar.
func (m Model) Contains(x, y int) bool {
	return y == m.originY && x >= m.barX() && x < m.barX()+m.width
}

// Close ends any open gesture.
func (m Model) Close() {
	m.slider.Close()
	m.input.Blur()
}

func (m Model) barX() int {
	return m.originX + markerWidth + nameWidth + 1
}

// track maps cell centers so the first cell is 0 and the last is 1.
func (m Model) track() slider.Track {
	return slider.Track{
		X:     float32(m.barX()) + 0.5,
		Width: float32(max(m.width-1, 0)),
		Scale: m.scale,
	}
}

// Init implements tea.Model-style initialization.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key messages when focused and mouse messages on the bar.
func (m Model) Update(teaMsg tea.Msg) (Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}

		if m.slider.Editing() {
			return m.updateEditing(msg)
		}

		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.BlurMsg:
		m.slider.CancelDrag()
		m.slider.Blur()
		m.input.Blur()
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		if m.slider.StartEditing() {
			cmd := m.openInput()

			return m, cmd
		}
	case key.Matches(msg, m.keys.FineIncrease):
		m.slider.Step(slider.Next, slider.ModShift)
	case key.Matches(msg, m.keys.FineDecrease):
		m.slider.Step(slider.Previous, slider.ModShift)
	case key.Matches(msg, m.keys.Increase):
		m.slider.Step(slider.Next, 0)
	case key.Matches(msg, m.keys.Decrease):
		m.slider.Step(slider.Previous, 0)
	case key.Matches(msg, m.keys.Reset):
		m.slider.Reset()
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.slider.SetEditText(m.input.Value())
		m.slider.SubmitEdit()
		m.input.Blur()

		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.slider.CancelEditing()
		m.input.Blur()

		return m, nil
	}

	// the whole value is selected on entry; typing or deleting replaces it
	if _, selected := m.slider.EditText(); selected {
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m.slider.TypeText(string(msg.Runes))
			m.syncInput()

			return m, nil
		case tea.KeyBackspace, tea.KeyDelete:
			m.slider.SetEditText("")
			m.syncInput()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.slider.SetEditText(m.input.Value())

	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	mods := mouseModifiers(msg)
	x := float32(msg.X) + 0.5

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.press(msg, x, mods)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelRight:
			if m.Contains(msg.X, msg.Y) {
				m.slider.Scroll(1, mods)
			}
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft:
			if m.Contains(msg.X, msg.Y) {
				m.slider.Scroll(-1, mods)
			}
		}

	case tea.MouseActionMotion:
		if m.slider.Dragging() {
			m.slider.Move(m.track(), x, mods)
		}

	case tea.MouseActionRelease:
		m.slider.Release()
	}

	return m, nil
}

func (m Model) press(msg tea.MouseMsg, x float32, mods slider.Modifiers) (Model, tea.Cmd) {
	if !m.Contains(msg.X, msg.Y) {
		if m.slider.Editing() {
			m.slider.Blur()
			m.input.Blur()
		}

		return m, nil
	}

	now := m.now()
	double := !m.lastPress.IsZero() &&
		now.Sub(m.lastPress) <= m.doubleClick &&
		msg.X == m.lastPressCol

	m.lastPress, m.lastPressCol = now, msg.X

	if double {
		m.lastPress = time.Time{}

		if m.slider.DoubleClick() {
			cmd := m.openInput()

			return m, cmd
		}
	}

	m.slider.Press(x, mods)

	return m, nil
}

func (m *Model) openInput() tea.Cmd {
	m.syncInput()

	return m.input.Focus()
}

func (m *Model) syncInput() {
	text, _ := m.slider.EditText()
	m.input.SetValue(text)
	m.input.CursorEnd()
}

// View renders the name, the bar, the value and the tick rows.
func (m Model) View() string {
	var sb strings.Builder

	if m.focused {
		sb.WriteString(style.Focus.Render("> "))
	} else {
		sb.WriteString("  ")
	}

	sb.WriteString(style.Label.Render(fmt.Sprintf("%-*s", nameWidth, truncate(m.name, nameWidth))))
	sb.WriteString(" ")
	sb.WriteString(renderBar(m.slider.Fill(), m.width))
	sb.WriteString(" ")

	if m.slider.Editing() {
		sb.WriteString(style.Editing.Render(m.input.View()))
	} else {
		sb.WriteString(style.Value.Render(m.slider.DisplayText()))
	}

	if m.slider.Ticks().Len() == 0 {
		return sb.String()
	}

	marks := m.slider.Ticks().Project(m.track())
	cols := make([]int, len(marks))

	for i, mark := range marks {
		cols[i] = int(mark.Offset) - m.barX()
	}

	indent := strings.Repeat(" ", markerWidth+nameWidth+1)
	row, labels := renderTicks(marks, cols, m.width)

	sb.WriteString("\n")
	sb.WriteString(indent + style.Muted.Render(row))

	if m.Height() == 3 {
		sb.WriteString("\n")
		sb.WriteString(indent + style.Muted.Render(labels))
	}

	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}

func mouseModifiers(msg tea.MouseMsg) slider.Modifiers {
	var mods slider.Modifiers

	if msg.Shift {
		mods |= slider.ModShift
	}

	if msg.Alt {
		mods |= slider.ModAlt
	}

	if msg.Ctrl {
		mods |= slider.ModCtrl
	}

	return mods
}
