package param

import (
	"github.com/alkime/paramctl/pkg/uictl"
	"github.com/chewxy/math32"
)

// Range maps a plain value onto the normalized [0, 1] interval and back.
type Range interface {
	Normalize(plain float32) float32
	Unnormalize(normalized float32) float32
	Bounds() (lo, hi float32)
}

// Linear is an evenly distributed range.
type Linear struct {
	Min float32
	Max float32
}

// Normalize maps plain into [0, 1]. A degenerate range maps everything to 0.
func (r Linear) Normalize(plain float32) float32 {
	if r.Max <= r.Min {
		return 0
	}

	return clamp01((plain - r.Min) / (r.Max - r.Min))
}

// Unnormalize maps a normalized value back into [Min, Max].
func (r Linear) Unnormalize(normalized float32) float32 {
	return r.Min + clamp01(normalized)*(r.Max-r.Min)
}

// Bounds returns the plain range limits.
func (r Linear) Bounds() (lo, hi float32) {
	return r.Min, r.Max
}

// Skewed distributes the range with a power curve. Factors below 1 give
// more resolution to the low end, as is usual for frequencies and gains.
type Skewed struct {
	Min    float32
	Max    float32
	Factor float32
}

func (r Skewed) factor() float32 {
	if r.Factor <= 0 {
		return 1
	}

	return r.Factor
}

// Normalize maps plain into [0, 1] through the skew curve.
func (r Skewed) Normalize(plain float32) float32 {
	lin := Linear{Min: r.Min, Max: r.Max}.Normalize(plain)

	return clamp01(math32.Pow(lin, r.factor()))
}

// Unnormalize inverts Normalize.
func (r Skewed) Unnormalize(normalized float32) float32 {
	lin := math32.Pow(clamp01(normalized), 1/r.factor())

	return Linear{Min: r.Min, Max: r.Max}.Unnormalize(lin)
}

// Bounds returns the plain range limits.
func (r Skewed) Bounds() (lo, hi float32) {
	return r.Min, r.Max
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}

	return uictl.Clamp(v, 0, 1)
}
