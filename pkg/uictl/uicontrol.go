package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[N Number](v, lo, hi N) N {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// Dial is a control that can read some value.
type Dial[N Number] interface {
	Read() N
}

// Gesture brackets a logically atomic user edit. Set may be called any
// number of times between BeginGesture and EndGesture. BeginGesture reports
// whether the caller now owns the gesture; only the owner may Set or End.
type Gesture interface {
	BeginGesture() bool
	Set(normalized float32)
	EndGesture()
}

// NormalizedParameter is the capability surface a slider binds to. Values
// are always normalized to [0, 1] regardless of the underlying plain range.
type NormalizedParameter interface {
	Dial[float32]
	Gesture

	DefaultNormalizedValue() float32

	// StepCount reports the number of discrete increments. ok is false for
	// continuous parameters.
	StepCount() (count uint32, ok bool)

	NextStep(from float32, fine bool) float32
	PreviousStep(from float32, fine bool) float32

	Format(normalized float32, includeUnit bool) string
	Parse(text string) (normalized float32, ok bool)
}
