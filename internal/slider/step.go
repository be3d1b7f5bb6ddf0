package slider

import (
	"github.com/alkime/paramctl/pkg/uictl"
	"github.com/chewxy/math32"
)

// Direction of a single step.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// StepController turns scroll wheel deltas and arrow keys into steps.
type StepController struct {
	param uictl.NormalizedParameter

	// scrolled accumulates fractional scroll lines; |scrolled| < 1 after
	// every Scroll.
	scrolled float32
}

// NewStepController binds a step controller to p.
func NewStepController(p uictl.NormalizedParameter) *StepController {
	return &StepController{param: p}
}

// Accumulated returns the pending fractional scroll lines.
func (s *StepController) Accumulated() float32 { return s.scrolled }

// Scroll adds lines to the accumulator and takes one step per whole line.
// The steps share one gesture, or reuse the drag's gesture when gestureOpen
// is set. Whole lines are dropped when the gesture is held elsewhere. It
// returns the signed number of steps taken.
func (s *StepController) Scroll(lines float32, mods Modifiers, gestureOpen bool) int {
	if math32.IsNaN(lines) || math32.IsInf(lines, 0) {
		return 0
	}

	s.scrolled += lines
	if math32.Abs(s.scrolled) < 1 {
		return 0
	}

	if !gestureOpen && !s.param.BeginGesture() {
		s.scrolled -= math32.Trunc(s.scrolled)

		return 0
	}

	fine := mods.Fine()
	value := s.param.Read()
	taken := 0

	for s.scrolled >= 1 {
		value = unit(s.param.NextStep(value, fine))
		s.param.Set(value)
		s.scrolled--
		taken++
	}

	for s.scrolled <= -1 {
		value = unit(s.param.PreviousStep(value, fine))
		s.param.Set(value)
		s.scrolled++
		taken--
	}

	if !gestureOpen {
		s.param.EndGesture()
	}

	return taken
}

// Key takes a single step in its own gesture. It returns false when another
// editor holds the parameter's gesture.
func (s *StepController) Key(dir Direction, mods Modifiers) bool {
	value := s.param.Read()
	if dir == Previous {
		value = s.param.PreviousStep(value, mods.Fine())
	} else {
		value = s.param.NextStep(value, mods.Fine())
	}

	return commit(s.param, unit(value))
}

// commit sets p to normalized in a gesture of its own. It returns false
// without touching p when another editor holds the gesture.
func commit(p uictl.Gesture, normalized float32) bool {
	if !p.BeginGesture() {
		return false
	}

	p.Set(normalized)
	p.EndGesture()

	return true
}
