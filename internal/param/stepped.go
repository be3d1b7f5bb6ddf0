package param

import (
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// stepped maps the normalized range onto count+1 evenly spaced positions.
type stepped struct {
	count uint32
}

func (s stepped) index(normalized float32) uint32 {
	if s.count == 0 {
		return 0
	}

	// float64 keeps counts above 2^24 exact
	return uint32(math.Round(float64(clamp01(normalized)) * float64(s.count)))
}

func (s stepped) normalized(index uint32) float32 {
	if s.count == 0 {
		return 0
	}

	return float32(min(index, s.count)) / float32(s.count)
}

func (s stepped) snap(normalized float32) float32 {
	return s.normalized(s.index(normalized))
}

func (s stepped) next(from float32) float32 {
	i := s.index(from)
	if i < s.count {
		i++
	}

	return s.normalized(i)
}

func (s stepped) previous(from float32) float32 {
	i := s.index(from)
	if i > 0 {
		i--
	}

	return s.normalized(i)
}

// IntParam is an integer parameter over [Min, Max].
type IntParam struct {
	base
	stepped

	lo int32
	hi int32
}

var _ Param = (*IntParam)(nil)

// NewInt creates an integer parameter. hi below lo is treated as lo.
func NewInt(id, name string, lo, hi, def int32, opts ...Option) *IntParam {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hi = max(hi, lo)
	p := &IntParam{
		stepped: stepped{count: uint32(int64(hi) - int64(lo))},
		lo:      lo,
		hi:      hi,
	}
	p.init(id, name, p.normalize(def), o)

	return p
}

// Plain returns the current integer value.
func (p *IntParam) Plain() int32 { return p.plain(p.Read()) }

func (p *IntParam) plain(normalized float32) int32 {
	return int32(int64(p.lo) + int64(p.index(normalized)))
}

func (p *IntParam) normalize(v int32) float32 {
	v = min(max(v, p.lo), p.hi)

	return p.normalized(uint32(int64(v) - int64(p.lo)))
}

// StepCount is hi - lo.
func (p *IntParam) StepCount() (uint32, bool) { return p.count, true }

func (p *IntParam) Set(normalized float32)      { p.set(p.snap(normalized)) }
func (p *IntParam) Automate(normalized float32) { p.store(p.snap(normalized)) }

// NextStep ignores fine; integers have no finer step.
func (p *IntParam) NextStep(from float32, _ bool) float32 { return p.next(from) }

func (p *IntParam) PreviousStep(from float32, _ bool) float32 { return p.previous(from) }

func (p *IntParam) Format(normalized float32, includeUnit bool) string {
	v := p.plain(normalized)

	return p.withUnit(strconv.Itoa(int(v)), includeUnit)
}

// Parse accepts integers and rounds decimals.
func (p *IntParam) Parse(text string) (float32, bool) {
	s := trimUnit(text, p.unit)

	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return p.normalize(int32(v)), true
	}

	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math32.IsNaN(float32(f)) {
		return 0, false
	}

	f = min(max(math.Round(f), float64(p.lo)), float64(p.hi))

	return p.normalize(int32(f)), true
}

// BoolParam is an on/off parameter.
type BoolParam struct {
	base
	stepped
}

var _ Param = (*BoolParam)(nil)

// NewBool creates a boolean parameter.
func NewBool(id, name string, def bool, opts ...Option) *BoolParam {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &BoolParam{stepped: stepped{count: 1}}
	p.init(id, name, boolNormalized(def), o)

	return p
}

func boolNormalized(b bool) float32 {
	if b {
		return 1
	}

	return 0
}

// On reports the current state.
func (p *BoolParam) On() bool { return p.index(p.Read()) == 1 }

func (p *BoolParam) StepCount() (uint32, bool)                 { return 1, true }
func (p *BoolParam) Set(normalized float32)                    { p.set(p.snap(normalized)) }
func (p *BoolParam) Automate(normalized float32)               { p.store(p.snap(normalized)) }
func (p *BoolParam) NextStep(from float32, _ bool) float32     { return p.next(from) }
func (p *BoolParam) PreviousStep(from float32, _ bool) float32 { return p.previous(from) }

func (p *BoolParam) Format(normalized float32, _ bool) string {
	if p.index(normalized) == 1 {
		return "On"
	}

	return "Off"
}

func (p *BoolParam) Parse(text string) (float32, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "on", "true", "yes", "1":
		return 1, true
	case "off", "false", "no", "0":
		return 0, true
	default:
		return 0, false
	}
}

// EnumParam selects one of a fixed list of variants.
type EnumParam struct {
	base
	stepped

	variants []string
}

var _ Param = (*EnumParam)(nil)

// NewEnum creates an enum parameter; def is a variant index.
func NewEnum(id, name string, variants []string, def int, opts ...Option) *EnumParam {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &EnumParam{variants: variants}
	if len(variants) > 1 {
		p.count = uint32(len(variants) - 1)
	}
	p.init(id, name, p.normalized(uint32(max(def, 0))), o)

	return p
}

// Variant returns the selected variant name.
func (p *EnumParam) Variant() string { return p.Format(p.Read(), false) }

func (p *EnumParam) StepCount() (uint32, bool)                 { return p.count, true }
func (p *EnumParam) Set(normalized float32)                    { p.set(p.snap(normalized)) }
func (p *EnumParam) Automate(normalized float32)               { p.store(p.snap(normalized)) }
func (p *EnumParam) NextStep(from float32, _ bool) float32     { return p.next(from) }
func (p *EnumParam) PreviousStep(from float32, _ bool) float32 { return p.previous(from) }

func (p *EnumParam) Format(normalized float32, _ bool) string {
	if len(p.variants) == 0 {
		return ""
	}

	return p.variants[p.index(normalized)]
}

// Parse accepts a variant name (case-insensitive) or its index.
func (p *EnumParam) Parse(text string) (float32, bool) {
	s := strings.TrimSpace(text)

	for i, v := range p.variants {
		if strings.EqualFold(v, s) {
			return p.normalized(uint32(i)), true
		}
	}

	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i >= len(p.variants) {
		return 0, false
	}

	return p.normalized(uint32(i)), true
}
