package slider

import (
	"github.com/alkime/paramctl/pkg/uictl"
	"github.com/chewxy/math32"
)

const (
	// sliverThreshold suppresses default-relative fills too thin to see.
	sliverThreshold = 1e-3

	centeredLow  = 0.45
	centeredHigh = 0.55
)

// Fill is the filled segment of the bar as fractions of its width.
type Fill struct {
	Start float32
	Delta float32
}

// End returns the far edge of the fill.
func (f Fill) End() float32 { return f.Start + math32.Abs(f.Delta) }

// Stepper provides the neighbouring steps of a value.
type Stepper interface {
	NextStep(from float32, fine bool) float32
	PreviousStep(from float32, fine bool) float32
}

// FillInput is everything ComputeFill needs to know about a parameter.
type FillInput struct {
	Current   float32
	Default   float32
	StepCount uint32
	Stepped   bool
	Stepper   Stepper
}

// FillFor reads the parameter afresh and computes its fill.
func FillFor(style Style, p uictl.NormalizedParameter) Fill {
	count, stepped := p.StepCount()

	return ComputeFill(style, FillInput{
		Current:   p.Read(),
		Default:   p.DefaultNormalizedValue(),
		StepCount: count,
		Stepped:   stepped,
		Stepper:   p,
	})
}

// ComputeFill derives the fill geometry for a style. Start is always in
// [0, 1] and Start+|Delta| never exceeds 1.
func ComputeFill(style Style, in FillInput) Fill {
	current := unit(in.Current)

	var f Fill

	switch style.Kind {
	case Centered:
		def := unit(in.Default)
		if !in.Stepped && def >= centeredLow && def <= centeredHigh {
			f = relativeFill(def, current)
		} else {
			f = Fill{Start: 0, Delta: current}
		}
	case FromMidPoint:
		f = relativeFill(0.5, current)
	case CurrentStep, CurrentStepLabeled:
		if style.Even && in.Stepped {
			f = evenStepFill(current, in.StepCount)
		} else {
			f = unevenStepFill(current, in.Stepper)
		}
	default:
		f = Fill{Start: 0, Delta: current}
	}

	return f.clamped()
}

func relativeFill(origin, current float32) Fill {
	delta := math32.Abs(origin - current)
	if delta < sliverThreshold {
		delta = 0
	}

	return Fill{Start: min(origin, current), Delta: delta}
}

// evenStepFill treats the bar as count+1 equal slots. A zero count is a
// single full-width slot.
func evenStepFill(current float32, count uint32) Fill {
	if count == 0 {
		return Fill{Start: 0, Delta: 1}
	}

	discrete := float32(count) + 1

	return Fill{
		Start: current * float32(count) / discrete,
		Delta: 1 / discrete,
	}
}

// unevenStepFill spans halfway to each neighbouring step.
func unevenStepFill(current float32, s Stepper) Fill {
	if s == nil {
		return Fill{Start: 0, Delta: current}
	}

	prev := unit(s.PreviousStep(current, false))
	next := unit(s.NextStep(current, false))

	return Fill{
		Start: (prev + current) / 2,
		Delta: ((next - current) + (current - prev)) / 2,
	}
}

func (f Fill) clamped() Fill {
	f.Start = unit(f.Start)
	room := 1 - f.Start

	if f.Delta > room {
		f.Delta = room
	} else if f.Delta < -1 {
		f.Delta = -1
	}

	return f
}

func unit(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}

	return uictl.Clamp(v, 0, 1)
}
