package slider

import (
	"log/slog"

	"github.com/alkime/paramctl/pkg/uictl"
)

// Config configures a Slider. Style is fixed for the slider's lifetime.
type Config struct {
	Style Style

	// DisableDoubleClick stops double clicks from opening text entry.
	DisableDoubleClick bool

	// Label replaces the formatted value in the display text.
	Label string

	Ticks []Tick
}

// Slider binds the drag, step and text controllers to one parameter and
// keeps them from interleaving: while text entry is open pointer and step
// input is ignored, and text entry cannot open during a drag.
type Slider struct {
	param uictl.NormalizedParameter
	cfg   Config

	drag  *DragController
	steps *StepController
	text  *TextEditor
	ticks TickOverlay
}

// New creates a slider for p.
func New(p uictl.NormalizedParameter, cfg Config) *Slider {
	return &Slider{
		param: p,
		cfg:   cfg,
		drag:  NewDragController(p, cfg.Style),
		steps: NewStepController(p),
		text:  NewTextEditor(p),
		ticks: NewTickOverlay(cfg.Ticks...),
	}
}

// Param returns the bound parameter.
func (s *Slider) Param() uictl.NormalizedParameter { return s.param }

// Style returns the display style.
func (s *Slider) Style() Style { return s.cfg.Style }

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.drag.Active() }

// GranularDrag reports whether the drag is in granular mode.
func (s *Slider) GranularDrag() bool { return s.drag.Granular() }

// Editing reports whether text entry is open.
func (s *Slider) Editing() bool { return s.text.Editing() }

// Press handles a primary button press.
func (s *Slider) Press(x float32, mods Modifiers) bool {
	if s.text.Editing() {
		return false
	}

	return s.drag.Press(x, mods)
}

// Move handles pointer motion.
func (s *Slider) Move(t Track, x float32, mods Modifiers) {
	s.drag.Move(t, x, mods)
}

// Release handles a primary button release.
func (s *Slider) Release() {
	s.drag.Release()
}

// CancelDrag ends a drag whose pointer capture was lost.
func (s *Slider) CancelDrag() {
	if s.drag.Active() {
		slog.Debug("drag cancelled")
	}

	s.drag.Cancel()
}

// DoubleClick opens text entry unless double clicks are disabled.
func (s *Slider) DoubleClick() bool {
	if s.cfg.DisableDoubleClick {
		return false
	}

	return s.StartEditing()
}

// Reset sets the parameter back to its default in one gesture. It is
// ignored while dragging or editing, or while another editor holds the
// gesture.
func (s *Slider) Reset() bool {
	if s.text.Editing() || s.drag.Active() {
		return false
	}

	return commit(s.param, s.param.DefaultNormalizedValue())
}

// Scroll steps by whole accumulated scroll lines.
func (s *Slider) Scroll(lines float32, mods Modifiers) int {
	if s.text.Editing() {
		return 0
	}

	return s.steps.Scroll(lines, mods, s.drag.Active())
}

// ScrollAccumulated returns the pending fractional scroll lines.
func (s *Slider) ScrollAccumulated() float32 { return s.steps.Accumulated() }

// Step takes one keyboard step. It is ignored while dragging or editing, or
// while another editor holds the gesture.
func (s *Slider) Step(dir Direction, mods Modifiers) bool {
	if s.text.Editing() || s.drag.Active() {
		return false
	}

	return s.steps.Key(dir, mods)
}

// StartEditing opens text entry. It is rejected during a drag or when
// already editing.
func (s *Slider) StartEditing() bool {
	if s.drag.Active() {
		return false
	}

	return s.text.Begin()
}

// EditText returns the text being edited and whether it is fully selected.
func (s *Slider) EditText() (string, bool) {
	return s.text.Text(), s.text.Selected()
}

// TypeText inserts text into the open entry.
func (s *Slider) TypeText(str string) { s.text.Type(str) }

// SetEditText replaces the text of the open entry.
func (s *Slider) SetEditText(str string) { s.text.SetText(str) }

// SubmitEdit commits the entered text if it parses.
func (s *Slider) SubmitEdit() bool {
	committed := s.text.Submit()
	if !committed {
		slog.Debug("text entry discarded")
	}

	return committed
}

// CancelEditing discards text entry.
func (s *Slider) CancelEditing() { s.text.Cancel() }

// Blur closes text entry without committing.
func (s *Slider) Blur() { s.text.Cancel() }

// Fill computes the fill from the parameter's current value.
func (s *Slider) Fill() Fill { return FillFor(s.cfg.Style, s.param) }

// DisplayText is the text shown on the bar.
func (s *Slider) DisplayText() string {
	if s.text.Editing() {
		return s.text.Text()
	}

	if s.cfg.Label != "" {
		return s.cfg.Label
	}

	return s.param.Format(s.param.Read(), true)
}

// Ticks returns the tick overlay.
func (s *Slider) Ticks() TickOverlay { return s.ticks }

// Close tears the slider down, ending any open drag gesture.
func (s *Slider) Close() {
	s.CancelDrag()
	s.text.Cancel()
}
