// Package tui is the terminal front end: a panel of parameter sliders, a
// log of the gestures they produce and a help line.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/alkime/paramctl/internal/param"
	"github.com/alkime/paramctl/internal/slider"
	"github.com/alkime/paramctl/internal/tui/components/history"
	"github.com/alkime/paramctl/internal/tui/components/panel"
	"github.com/alkime/paramctl/internal/tui/components/paramslider"
	"github.com/alkime/paramctl/internal/tui/style"
	"github.com/alkime/paramctl/pkg/collections"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// headerHeight is the title line plus a blank line above the panel.
	headerHeight = 2

	defaultLogSize = 5
	defaultRefresh = 100 * time.Millisecond

	historyWidth  = 40
	historyHeight = 2
)

// Config configures the TUI.
type Config struct {
	Title  string
	Params []param.Param

	Style               slider.Style
	Width               int
	DisableDoubleClick  bool
	DoubleClickInterval time.Duration
	Scale               float32

	// Events feeds the gesture log. It may be nil.
	Events <-chan param.Event
	// LogSize is the number of gesture events shown.
	LogSize int
	// Refresh is how often values changed outside the TUI are redrawn.
	Refresh time.Duration

	Cancel context.CancelFunc
}

// eventMsg carries one gesture event from the host.
type eventMsg param.Event

// eventsClosedMsg reports that the event channel was closed.
type eventsClosedMsg struct{}

// refreshMsg redraws values that may have been automated.
type refreshMsg time.Time

type model struct {
	config  Config
	keys    KeyMap
	panel   panel.Model
	history history.Model
	help    help.Model
	log     []string

	windowWidth  int
	windowHeight int
}

// New creates the TUI model.
func New(config Config) tea.Model {
	if config.LogSize <= 0 {
		config.LogSize = defaultLogSize
	}

	if config.Refresh <= 0 {
		config.Refresh = defaultRefresh
	}

	items := collections.Apply(config.Params, func(p param.Param) paramslider.Model {
		return paramslider.New(p, paramslider.Config{
			Name: p.Name(),
			Slider: slider.Config{
				Style:              config.Style,
				DisableDoubleClick: config.DisableDoubleClick,
			},
			Width:               config.Width,
			DoubleClickInterval: config.DoubleClickInterval,
			Scale:               config.Scale,
		})
	})

	m := &model{
		config:       config,
		keys:         DefaultKeyMap(),
		panel:        panel.New(items).SetOrigin(0, headerHeight),
		history:      history.New(nil, historyWidth, historyHeight),
		help:         help.New(),
		windowWidth:  80,
		windowHeight: 24,
	}
	m.followFocus()

	return m
}

// followFocus points the history plot at the focused parameter.
func (m *model) followFocus() {
	if item, ok := m.panel.Focused(); ok {
		m.history = m.history.SetSource(item.Slider().Param())
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		m.panel.Init(),
		m.history.Init(),
		waitForEvent(m.config.Events),
		refresh(m.config.Refresh),
	)
}

func (m *model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, m.quit()

		case m.panel.Editing():
			// everything else is text while typing

		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

			return m, nil
		}

	case eventMsg:
		m.log = append(m.log, param.Event(msg).String())
		if over := len(m.log) - m.config.LogSize; over > 0 {
			m.log = m.log[over:]
		}

		return m, waitForEvent(m.config.Events)

	case eventsClosedMsg:
		return m, nil

	case refreshMsg:
		return m, refresh(m.config.Refresh)

	case history.TickMsg:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)

		return m, cmd
	}

	focused := m.panel.FocusedIndex()

	updated, cmd := m.panel.Update(teaMsg)
	m.panel = updated.(panel.Model) //nolint:forcetypeassert // panel.Model always returns panel.Model

	if m.panel.FocusedIndex() != focused {
		m.followFocus()
	}

	return m, cmd
}

// quit ends any open gesture before the program exits.
func (m *model) quit() tea.Cmd {
	m.panel.Close()

	if m.config.Cancel != nil {
		m.config.Cancel()
	}

	return tea.Quit
}

func (m *model) View() string {
	var sb strings.Builder

	title := m.config.Title
	if title == "" {
		title = "paramctl"
	}

	sb.WriteString(style.Title.Render(title))
	sb.WriteString(" ")
	sb.WriteString(style.Subtitle.Render(m.config.Style.String()))
	sb.WriteString("\n\n")

	if m.panel.Len() == 0 {
		sb.WriteString(style.Error.Render("no parameters"))
	} else {
		sb.WriteString(m.panel.View())
	}

	sb.WriteString("\n\n")

	if item, ok := m.panel.Focused(); ok {
		sb.WriteString(style.Subtitle.Render(item.Name() + " history"))
		sb.WriteString("\n")
		sb.WriteString(m.history.View())
		sb.WriteString("\n\n")
	}

	for _, line := range m.log {
		sb.WriteString(style.Muted.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(style.Help.Render(m.help.View(m.keys)))

	return sb.String()
}

func waitForEvent(events <-chan param.Event) tea.Cmd {
	if events == nil {
		return nil
	}

	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}

		return eventMsg(e)
	}
}

func refresh(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}
