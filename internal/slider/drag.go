package slider

import (
	"github.com/alkime/paramctl/pkg/uictl"
	"github.com/chewxy/math32"
)

// GranularMultiplier scales pointer movement during a granular drag.
const GranularMultiplier = 0.1

// granularAnchor is where a granular drag started.
type granularAnchor struct {
	x     float32
	value float32
}

// DragController turns pointer press, move and release into one gesture.
// While active it always owns exactly one open gesture on the parameter.
type DragController struct {
	param uictl.NormalizedParameter
	style Style

	active   bool
	granular *granularAnchor
}

// NewDragController binds a drag controller to p.
func NewDragController(p uictl.NormalizedParameter, style Style) *DragController {
	return &DragController{param: p, style: style}
}

// Active reports whether a drag is in progress.
func (d *DragController) Active() bool { return d.active }

// Granular reports whether the drag currently has a granular anchor.
func (d *DragController) Granular() bool { return d.granular != nil }

// Press handles a primary button press at x. With the reset modifier the
// parameter is set back to its default in a single gesture and no drag
// starts. Otherwise the gesture opens and values follow on Move. It returns
// whether a drag started, which it does not while another editor holds the
// gesture.
func (d *DragController) Press(x float32, mods Modifiers) bool {
	if d.active {
		return false
	}

	if mods.Reset() {
		commit(d.param, d.param.DefaultNormalizedValue())

		return false
	}

	if !d.param.BeginGesture() {
		return false
	}

	d.active = true
	d.granular = nil

	if mods.Granular() {
		d.granular = &granularAnchor{x: x, value: d.param.Read()}
	}

	return true
}

// Move handles pointer motion. The granular anchor is taken lazily on the
// first move with the modifier held and dropped on the first move without.
func (d *DragController) Move(t Track, x float32, mods Modifiers) {
	if !d.active {
		return
	}

	if !mods.Granular() {
		d.granular = nil
		d.set(t, t.Normalize(x))

		return
	}

	if d.granular == nil {
		d.granular = &granularAnchor{x: x, value: d.param.Read()}
	}

	deltaX := (x - d.granular.x) * GranularMultiplier * t.scale()
	d.set(t, t.Normalize(t.Pixel(d.granular.value)+deltaX))
}

// Release ends the drag and its gesture.
func (d *DragController) Release() {
	if !d.active {
		return
	}

	d.active = false
	d.granular = nil
	d.param.EndGesture()
}

// Cancel ends the drag without further sets, e.g. when pointer capture is
// lost. Values already committed stay committed.
func (d *DragController) Cancel() { d.Release() }

func (d *DragController) set(t Track, normalized float32) {
	if !t.Valid() {
		return
	}

	d.param.Set(unit(snapToSlot(d.style, d.param, normalized)))
}

// snapToSlot maps a position onto the equally sized slots drawn by even
// step styles so the value under the pointer matches the highlighted slot.
func snapToSlot(style Style, p uictl.NormalizedParameter, normalized float32) float32 {
	if !style.Even || !style.stepStyle() {
		return normalized
	}

	count, ok := p.StepCount()
	if !ok || count == 0 {
		return normalized
	}

	slot := min(math32.Floor(normalized*(float32(count)+1)), float32(count))

	return slot / float32(count)
}
