package paramslider_test

import (
	"strings"
	"testing"
	"time"

	"github.com/alkime/paramctl/internal/param"
	"github.com/alkime/paramctl/internal/slider"
	"github.com/alkime/paramctl/internal/tui/components/paramslider"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// The bar starts after the focus marker, the padded name and a space.
const (
	barStart = 13
	barEnd   = barStart + 10
	barMid   = barStart + 5
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newModel(t *testing.T, style slider.Style) (paramslider.Model, *param.FloatParam, *param.Recorder, *clock) {
	t.Helper()

	rec := param.NewRecorder(nil)
	p := param.NewFloat("amount", "Amount", param.Linear{Min: 0, Max: 1}, 0, param.WithHost(rec))
	clk := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	m := paramslider.New(p, paramslider.Config{
		Name:   "Amount",
		Slider: slider.Config{Style: style},
		Width:  11,
		Now:    clk.Now,
	}).SetOrigin(0, 0).Focus()

	return m, p, rec, clk
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func press(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y)
}

func motion(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionMotion, tea.MouseButtonNone, x, y)
}

func release(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionRelease, tea.MouseButtonLeft, x, y)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m paramslider.Model, msgs ...tea.Msg) paramslider.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}

	return m
}

func TestParamSlider_Drag(t *testing.T) {
	t.Parallel()

	m, p, rec, _ := newModel(t, slider.Style{Kind: slider.FromLeft})

	m = update(m, press(barMid, 0))
	assert.True(t, m.Slider().Dragging())
	assert.Equal(t, float32(0), p.Read(), "press alone keeps the value")

	m = update(m, motion(barMid, 0))
	assert.InDelta(t, 0.5, p.Read(), 1e-6)

	// pointer capture: motion outside the bar still drags
	m = update(m, motion(barEnd+20, 4))
	assert.Equal(t, float32(1), p.Read())

	m = update(m, motion(barStart, 0), release(barStart, 0))
	assert.False(t, m.Slider().Dragging())
	assert.Equal(t, float32(0), p.Read())
	require.NoError(t, param.CheckPairing(rec.Events()))
}

func TestParamSlider_GranularDrag(t *testing.T) {
	t.Parallel()

	m, p, _, _ := newModel(t, slider.Style{Kind: slider.FromLeft})
	p.Automate(0.5)

	shiftPress := press(barMid, 0)
	shiftPress.Shift = true
	shiftMove := motion(barEnd, 0)
	shiftMove.Shift = true

	m = update(m, shiftPress, shiftMove)
	assert.True(t, m.Slider().GranularDrag())
	assert.InDelta(t, 0.55, p.Read(), 1e-5)

	update(m, release(barEnd, 0))
}

func TestParamSlider_ResetClick(t *testing.T) {
	t.Parallel()

	m, p, rec, _ := newModel(t, slider.Style{Kind: slider.FromLeft})
	p.Automate(0.8)

	altPress := press(barMid, 0)
	altPress.Alt = true

	m = update(m, altPress)
	assert.False(t, m.Slider().Dragging())
	assert.Equal(t, float32(0), p.Read())
	assert.Len(t, rec.Events(), 3)
}

func TestParamSlider_IgnoresPressOffBar(t *testing.T) {
	t.Parallel()

	m, _, rec, _ := newModel(t, slider.Style{Kind: slider.FromLeft})

	m = update(m, press(3, 0), press(barMid, 1), release(barMid, 1))
	assert.False(t, m.Slider().Dragging())
	assert.Empty(t, rec.Events())
}

func TestParamSlider_Wheel(t *testing.T) {
	t.Parallel()

	m, p, rec, _ := newModel(t, slider.Style{Kind: slider.FromLeft})

	m = update(m,
		mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, barMid, 0),
		mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, barMid, 0),
		mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, barMid, 0),
		mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, barMid, 5),
	)

	assert.InDelta(t, 0.02, p.Read(), 1e-6)
	assert.Len(t, rec.Events(), 9)
	require.NoError(t, param.CheckPairing(rec.Events()))
	assert.False(t, m.Slider().Dragging())
}

func TestParamSlider_Keys(t *testing.T) {
	t.Parallel()

	m, p, _, _ := newModel(t, slider.Style{Kind: slider.FromLeft})

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, 0.02, p.Read(), 1e-6)

	m = update(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	assert.InDelta(t, 0.025, p.Read(), 1e-6)

	m = update(m, tea.KeyMsg{Type: tea.KeyLeft}, runes("h"))
	assert.Equal(t, float32(0), p.Read())

	m = update(m, runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, float32(0), p.Read(), "backspace resets to default")

	t.Run("unfocused ignores keys", func(t *testing.T) {
		m = update(m.Blur(), tea.KeyMsg{Type: tea.KeyRight})
		assert.Equal(t, float32(0), p.Read())
	})
}

func TestParamSlider_TextEntry(t *testing.T) {
	t.Parallel()

	m, p, rec, _ := newModel(t, slider.Style{Kind: slider.FromLeft})

	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Slider().Editing())
	assert.Contains(t, m.View(), "0.00")

	// first keystroke replaces the preselected text
	m = update(m, runes("0"), runes(".75"))
	text, _ := m.Slider().EditText()
	assert.Equal(t, "0.75", text)

	// pointer and wheel are blocked while typing
	m = update(m, mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, barMid, 0))
	assert.Empty(t, rec.Events())

	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Slider().Editing())
	assert.InDelta(t, 0.75, p.Read(), 1e-6)
	assert.Len(t, rec.Events(), 3)

	t.Run("escape discards", func(t *testing.T) {
		m = update(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("1"), tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, m.Slider().Editing())
		assert.InDelta(t, 0.75, p.Read(), 1e-6)
	})

	t.Run("invalid text discards", func(t *testing.T) {
		m = update(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("abc"), tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, m.Slider().Editing())
		assert.InDelta(t, 0.75, p.Read(), 1e-6)
	})

	t.Run("clicking elsewhere blurs", func(t *testing.T) {
		m = update(m, tea.KeyMsg{Type: tea.KeyEnter}, press(0, 9))
		assert.False(t, m.Slider().Editing())
	})

	require.NoError(t, param.CheckPairing(rec.Events()))
}

func TestParamSlider_DoubleClick(t *testing.T) {
	t.Parallel()

	t.Run("opens text entry", func(t *testing.T) {
		m, _, rec, clk := newModel(t, slider.Style{Kind: slider.FromLeft})

		m = update(m, press(barMid, 0), release(barMid, 0))
		clk.advance(100 * time.Millisecond)
		m = update(m, press(barMid, 0))

		assert.True(t, m.Slider().Editing())
		assert.False(t, m.Slider().Dragging())
		require.NoError(t, param.CheckPairing(rec.Events()))
	})

	t.Run("too slow is two drags", func(t *testing.T) {
		m, _, _, clk := newModel(t, slider.Style{Kind: slider.FromLeft})

		m = update(m, press(barMid, 0), release(barMid, 0))
		clk.advance(time.Second)
		m = update(m, press(barMid, 0))

		assert.False(t, m.Slider().Editing())
		assert.True(t, m.Slider().Dragging())
		m.Close()
		assert.False(t, m.Slider().Dragging())
	})

	t.Run("different column is two drags", func(t *testing.T) {
		m, _, _, clk := newModel(t, slider.Style{Kind: slider.FromLeft})

		m = update(m, press(barMid, 0), release(barMid, 0))
		clk.advance(50 * time.Millisecond)
		m = update(m, press(barMid+1, 0))

		assert.False(t, m.Slider().Editing())
	})
}

func TestParamSlider_BlurMsgCancelsDrag(t *testing.T) {
	t.Parallel()

	m, _, rec, _ := newModel(t, slider.Style{Kind: slider.FromLeft})

	m = update(m, press(barMid, 0), tea.BlurMsg{})
	assert.False(t, m.Slider().Dragging())
	require.NoError(t, param.CheckPairing(rec.Events()))
}

func TestParamSlider_View(t *testing.T) {
	t.Parallel()

	m, p, _, _ := newModel(t, slider.Style{Kind: slider.FromLeft})

	v := m.View()
	assert.True(t, strings.HasPrefix(v, "> Amount"))
	assert.Contains(t, v, strings.Repeat("░", 11))
	assert.Contains(t, v, "0.00")
	assert.Equal(t, 1, m.Height())

	p.Automate(1)
	assert.Contains(t, m.View(), strings.Repeat("█", 11))
	assert.Contains(t, m.View(), "1.00")

	p.Automate(0.5)
	assert.Contains(t, m.View(), "█████▌░░░░░")

	assert.True(t, strings.HasPrefix(m.Blur().View(), "  Amount"))
}

func TestParamSlider_CenteredView(t *testing.T) {
	t.Parallel()

	p := param.NewFloat("pan", "Pan", param.Linear{Min: -1, Max: 1}, 0)
	m := paramslider.New(p, paramslider.Config{
		Name:   "Pan",
		Slider: slider.Config{Style: slider.Style{Kind: slider.Centered}},
		Width:  10,
	})

	assert.Contains(t, m.View(), strings.Repeat("░", 10), "no sliver at the default")

	p.Automate(1)
	assert.Contains(t, m.View(), "░░░░░█████")
}

func TestParamSlider_LabeledSteps(t *testing.T) {
	t.Parallel()

	p := param.NewEnum("mode", "Mode", []string{"A", "B", "C"}, 1)
	m := paramslider.New(p, paramslider.Config{
		Name:   "Mode",
		Slider: slider.Config{Style: slider.Style{Kind: slider.CurrentStepLabeled, Even: true}},
		Width:  12,
	})

	require.Equal(t, 3, m.Height())

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "░░░░████░░░░")
	assert.Equal(t, 3, strings.Count(lines[1], "|"))
	assert.Contains(t, lines[2], "A")
	assert.Contains(t, lines[2], "C")
}
