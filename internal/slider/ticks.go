package slider

import (
	"github.com/alkime/paramctl/pkg/collections"
	"github.com/alkime/paramctl/pkg/uictl"
)

// Tick is a reference mark on the bar. Label is empty for unlabeled ticks.
type Tick struct {
	Pos   float32
	Label string
	Short bool
}

// Mark is a tick positioned on a track.
type Mark struct {
	Tick
	Offset float32
}

// TickOverlay is an ordered, read-only set of ticks.
type TickOverlay struct {
	ticks []Tick
}

// NewTickOverlay keeps the ticks in the order given.
func NewTickOverlay(ticks ...Tick) TickOverlay {
	return TickOverlay{ticks: append([]Tick(nil), ticks...)}
}

// Ticks returns a copy of the ticks.
func (o TickOverlay) Ticks() []Tick {
	return append([]Tick(nil), o.ticks...)
}

// Len returns the number of ticks.
func (o TickOverlay) Len() int { return len(o.ticks) }

// Project positions each tick with the same mapping the fill uses.
func (o TickOverlay) Project(t Track) []Mark {
	return collections.Apply(o.ticks, func(tick Tick) Mark {
		return Mark{Tick: tick, Offset: t.Pixel(tick.Pos)}
	})
}

// StepTicks builds one labeled tick per step of a stepped parameter,
// centered in its slot for even styles. Continuous parameters get none.
func StepTicks(style Style, p uictl.NormalizedParameter) []Tick {
	count, ok := p.StepCount()
	if !ok {
		return nil
	}

	ticks := make([]Tick, 0, count+1)

	for i := range count + 1 {
		var value float32
		if count > 0 {
			value = float32(i) / float32(count)
		}

		pos := value
		if style.Even && style.stepStyle() {
			pos = (float32(i) + 0.5) / (float32(count) + 1)
		}

		ticks = append(ticks, Tick{Pos: pos, Label: p.Format(value, false)})
	}

	return ticks
}
