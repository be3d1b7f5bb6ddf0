package param

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

const (
	coarseStep = 0.02
	fineStep   = 0.005
)

// FloatParam is a continuous parameter over a plain Range. With a step size
// it is quantized but still reports no step count, matching how hosts treat
// finely quantized floats.
type FloatParam struct {
	base

	rng       Range
	stepSize  float32
	precision int
}

var _ Param = (*FloatParam)(nil)

// NewFloat creates a float parameter. def is a plain value.
func NewFloat(id, name string, rng Range, def float32, opts ...Option) *FloatParam {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &FloatParam{
		rng:       rng,
		stepSize:  max(o.stepSize, 0),
		precision: o.precision,
	}
	p.init(id, name, p.quantize(rng.Normalize(def)), o)

	return p
}

// Range returns the plain range.
func (p *FloatParam) Range() Range { return p.rng }

// Plain returns the current plain value.
func (p *FloatParam) Plain() float32 { return p.rng.Unnormalize(p.Read()) }

// StepCount is always absent for floats.
func (p *FloatParam) StepCount() (uint32, bool) { return 0, false }

// Set stores a normalized value inside an open gesture.
func (p *FloatParam) Set(normalized float32) {
	p.set(p.quantize(normalized))
}

// Automate stores a host-side value.
func (p *FloatParam) Automate(normalized float32) {
	p.store(p.quantize(normalized))
}

// NextStep moves up by a fixed normalized increment, or by at least one
// quantization step when a step size is set.
func (p *FloatParam) NextStep(from float32, fine bool) float32 {
	return p.step(from, fine, 1)
}

// PreviousStep is the inverse of NextStep.
func (p *FloatParam) PreviousStep(from float32, fine bool) float32 {
	return p.step(from, fine, -1)
}

func (p *FloatParam) step(from float32, fine bool, dir float32) float32 {
	inc := float32(coarseStep)
	if fine {
		inc = fineStep
	}

	naive := clamp01(from + dir*inc)
	if p.stepSize <= 0 {
		return naive
	}

	fromPlain := p.rng.Unnormalize(from)
	naivePlain := p.rng.Unnormalize(naive)

	var plain float32
	if p.stepSize >= math32.Abs(naivePlain-fromPlain) {
		plain = p.snapPlain(fromPlain) + dir*p.stepSize
	} else {
		plain = p.snapPlain(naivePlain)
	}

	return p.rng.Normalize(plain)
}

// Format renders the plain value with the configured precision.
func (p *FloatParam) Format(normalized float32, includeUnit bool) string {
	plain := p.rng.Unnormalize(p.quantize(normalized))
	s := strconv.FormatFloat(float64(plain), 'f', p.precision, 32)

	if s == "-"+strconv.FormatFloat(0, 'f', p.precision, 32) {
		s = s[1:]
	}

	return p.withUnit(s, includeUnit)
}

// Parse reads a plain value, optionally followed by the unit. Values
// outside the range are clamped.
func (p *FloatParam) Parse(text string) (float32, bool) {
	s := trimUnit(text, p.unit)

	v, err := strconv.ParseFloat(s, 32)
	if err != nil || math32.IsNaN(float32(v)) {
		return 0, false
	}

	return p.quantize(p.rng.Normalize(float32(v))), true
}

func (p *FloatParam) quantize(normalized float32) float32 {
	normalized = clamp01(normalized)
	if p.stepSize <= 0 {
		return normalized
	}

	return p.rng.Normalize(p.snapPlain(p.rng.Unnormalize(normalized)))
}

func (p *FloatParam) snapPlain(plain float32) float32 {
	lo, hi := p.rng.Bounds()
	snapped := lo + math32.Round((plain-lo)/p.stepSize)*p.stepSize

	return min(max(snapped, lo), hi)
}

func trimUnit(text, unit string) string {
	s := strings.TrimSpace(text)
	if unit != "" && len(s) >= len(unit) && strings.EqualFold(s[len(s)-len(unit):], unit) {
		s = strings.TrimSpace(s[:len(s)-len(unit)])
	}

	return s
}
