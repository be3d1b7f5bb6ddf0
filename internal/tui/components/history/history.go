// Package history provides a TUI component that plots a parameter's recent
// normalized values, so automation written from outside is visible.
package history

import (
	"strings"
	"time"

	"github.com/alkime/paramctl/internal/tui/style"
	"github.com/alkime/paramctl/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chewxy/math32"
)

// Block characters for value levels (8 per row, bottom to top).
// Index 0 = empty (space), 1-8 = increasing fill levels.
const blockChars = " ▁▂▃▄▅▆▇█"

// DefaultInterval is the sampling period.
const DefaultInterval = 50 * time.Millisecond

// TickMsg triggers a sample and a redraw.
type TickMsg struct{}

// Model samples a normalized value and renders one column per sample
// (left=older, right=newer).
type Model struct {
	source   uictl.Dial[float32]
	samples  []float32
	width    int
	height   int
	interval time.Duration
}

// New creates a history plot width columns wide and height rows tall.
func New(source uictl.Dial[float32], width, height int) Model {
	return Model{
		source:   source,
		width:    max(width, 1),
		height:   max(height, 1),
		interval: DefaultInterval,
	}
}

// SetSource switches the sampled value and clears the plot.
func (m Model) SetSource(source uictl.Dial[float32]) Model {
	m.source = source
	m.samples = nil

	return m
}

// Samples returns the retained samples, oldest first.
func (m Model) Samples() []float32 {
	return append([]float32(nil), m.samples...)
}

// Init returns the initial tick command.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update samples the source on every tick.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		m = m.sample()

		return m, m.tick()
	}

	return m, nil
}

func (m Model) sample() Model {
	if m.source == nil {
		return m
	}

	keep := m.samples
	if len(keep) >= m.width {
		keep = keep[len(keep)-m.width+1:]
	}

	// copy so earlier Model values keep their own samples
	m.samples = append(append(make([]float32, 0, m.width), keep...), m.source.Read())

	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the samples right-aligned as vertical bars.
func (m Model) View() string {
	if len(m.samples) == 0 {
		return m.renderEmpty()
	}

	levels := m.calculateLevels()
	runes := []rune(blockChars)

	var sb strings.Builder

	// Render row by row, from top to bottom
	for row := range m.height {
		if row > 0 {
			sb.WriteString("\n")
		}

		var rowSB strings.Builder

		for _, level := range levels {
			rowSB.WriteRune(runes[m.blockIndexForRow(level, row)])
		}

		sb.WriteString(style.Fill.Render(rowSB.String()))
	}

	return sb.String()
}

// calculateLevels maps each column to a level from 0 to height*8. Columns
// without a sample yet are 0.
func (m Model) calculateLevels() []int {
	levels := make([]int, m.width)
	offset := m.width - len(m.samples)
	maxLevel := float32(m.height * 8)

	for i, v := range m.samples {
		if math32.IsNaN(v) {
			continue
		}

		levels[offset+i] = int(math32.Round(uictl.Clamp(v, 0, 1) * maxLevel))
	}

	return levels
}

// blockIndexForRow returns the block character index (0-8) for a column
// level at a row. Row 0 is the top.
func (m Model) blockIndexForRow(level, row int) int {
	fill := level - (m.height-1-row)*8

	return uictl.Clamp(fill, 0, 8)
}

// renderEmpty draws a baseline when nothing has been sampled.
func (m Model) renderEmpty() string {
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", m.width)
	}

	rows[m.height-1] = strings.Repeat("▁", m.width)

	return style.Muted.Render(strings.Join(rows, "\n"))
}
