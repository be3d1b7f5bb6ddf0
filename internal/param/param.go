// Package param provides concrete normalized parameters and the gesture
// host they report user edits to.
package param

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/alkime/paramctl/pkg/uictl"
	"github.com/chewxy/math32"
)

var (
	ErrUnknownParam = errors.New("unknown parameter")
	ErrInvalidKind  = errors.New("invalid parameter kind")
	ErrParse        = errors.New("unparseable parameter value")
	ErrGestureOpen  = errors.New("parameter is being edited")
)

// Param is a normalized parameter with a stable identity.
type Param interface {
	uictl.NormalizedParameter

	ID() string
	Name() string

	// Automate stores a value coming from the host side (automation,
	// remote control) without opening a gesture.
	Automate(normalized float32)

	GestureOpen() bool
}

// Commit sets p to normalized in a single gesture of its own. It fails with
// ErrGestureOpen while another editor holds a gesture on p.
func Commit(p Param, normalized float32) error {
	if !p.BeginGesture() {
		return fmt.Errorf("%s: %w", p.ID(), ErrGestureOpen)
	}

	p.Set(normalized)
	p.EndGesture()

	return nil
}

// Option configures a parameter at construction.
type Option func(*options)

type options struct {
	host      Host
	unit      string
	stepSize  float32
	precision int
}

func defaultOptions() options {
	return options{
		host:      NopHost{},
		precision: 2,
	}
}

// WithHost reports gestures to h.
func WithHost(h Host) Option {
	return func(o *options) {
		if h != nil {
			o.host = h
		}
	}
}

// WithUnit sets the unit suffix used when formatting with units.
func WithUnit(unit string) Option {
	return func(o *options) { o.unit = unit }
}

// WithStepSize quantizes a float parameter to multiples of step.
func WithStepSize(step float32) Option {
	return func(o *options) { o.stepSize = step }
}

// WithPrecision sets the number of decimals a float parameter formats with.
func WithPrecision(digits int) Option {
	return func(o *options) {
		if digits >= 0 {
			o.precision = digits
		}
	}
}

// base holds the identity, the shared atomic value and the gesture guard
// common to all parameter kinds.
type base struct {
	id   string
	name string
	unit string
	def  float32
	host Host

	value atomic.Uint32 // normalized float32 bits
	open  atomic.Bool
}

func (b *base) init(id, name string, def float32, o options) {
	b.id = id
	b.name = name
	b.unit = o.unit
	b.def = clamp01(def)
	b.host = o.host
	b.store(b.def)
}

// ID returns the parameter identifier.
func (b *base) ID() string { return b.id }

// Name returns the human readable name.
func (b *base) Name() string { return b.name }

// Read returns the current normalized value. It is re-read on every call
// since the host may change it concurrently.
func (b *base) Read() float32 {
	return math32.Float32frombits(b.value.Load())
}

// DefaultNormalizedValue returns the normalized default.
func (b *base) DefaultNormalizedValue() float32 { return b.def }

// BeginGesture opens a gesture and reports whether it did. A begin while
// another gesture is open is refused.
func (b *base) BeginGesture() bool {
	if !b.open.CompareAndSwap(false, true) {
		slog.Debug("gesture already open", "param", b.id)

		return false
	}

	b.host.BeginGesture(b.id)

	return true
}

// EndGesture closes the open gesture. Ending without a begin is ignored.
func (b *base) EndGesture() {
	if !b.open.CompareAndSwap(true, false) {
		slog.Warn("gesture end without begin", "param", b.id)

		return
	}

	b.host.EndGesture(b.id)
}

// GestureOpen reports whether a gesture is in progress.
func (b *base) GestureOpen() bool { return b.open.Load() }

func (b *base) set(v float32) {
	if !b.open.Load() {
		slog.Warn("set without open gesture", "param", b.id, "value", v)

		return
	}

	b.store(v)
	b.host.SetValue(b.id, v)
}

func (b *base) store(v float32) {
	b.value.Store(math32.Float32bits(clamp01(v)))
}

func (b *base) withUnit(s string, includeUnit bool) string {
	if !includeUnit || b.unit == "" {
		return s
	}

	return s + " " + b.unit
}
