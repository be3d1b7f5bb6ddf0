package param_test

import (
	"math"
	"testing"

	"github.com/alkime/paramctl/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRange(t *testing.T) {
	t.Parallel()

	r := param.Linear{Min: -1, Max: 1}
	assert.InDelta(t, 0.5, r.Normalize(0), 1e-6)
	assert.InDelta(t, 0, r.Normalize(-5), 1e-6)
	assert.InDelta(t, 1, r.Normalize(5), 1e-6)
	assert.InDelta(t, -1, r.Unnormalize(0), 1e-6)

	degenerate := param.Linear{Min: 3, Max: 3}
	assert.Equal(t, float32(0), degenerate.Normalize(3))
}

func TestSkewedRangeRoundTrip(t *testing.T) {
	t.Parallel()

	r := param.Skewed{Min: 20, Max: 20000, Factor: 0.25}
	for _, plain := range []float32{20, 100, 1000, 5000, 20000} {
		assert.InDelta(t, plain, r.Unnormalize(r.Normalize(plain)), plain*1e-3)
	}
	// low end gets more of the normalized range
	assert.Greater(t, r.Normalize(1000), float32(0.5))
}

func TestFloatParam(t *testing.T) {
	t.Parallel()

	p := param.NewFloat("gain", "Gain", param.Linear{Min: -30, Max: 30}, 0,
		param.WithUnit("dB"), param.WithPrecision(1))

	t.Run("defaults", func(t *testing.T) {
		assert.InDelta(t, 0.5, p.Read(), 1e-6)
		assert.InDelta(t, 0.5, p.DefaultNormalizedValue(), 1e-6)
		_, ok := p.StepCount()
		assert.False(t, ok)
	})

	t.Run("format", func(t *testing.T) {
		assert.Equal(t, "0.0 dB", p.Format(0.5, true))
		assert.Equal(t, "0.0", p.Format(0.5, false))
		assert.Equal(t, "30.0 dB", p.Format(1, true))
	})

	t.Run("parse", func(t *testing.T) {
		v, ok := p.Parse("15 dB")
		require.True(t, ok)
		assert.InDelta(t, 0.75, v, 1e-6)

		v, ok = p.Parse("  -15 ")
		require.True(t, ok)
		assert.InDelta(t, 0.25, v, 1e-6)

		v, ok = p.Parse("999")
		require.True(t, ok)
		assert.Equal(t, float32(1), v)

		_, ok = p.Parse("loud")
		assert.False(t, ok)
	})

	t.Run("steps", func(t *testing.T) {
		assert.InDelta(t, 0.52, p.NextStep(0.5, false), 1e-6)
		assert.InDelta(t, 0.505, p.NextStep(0.5, true), 1e-6)
		assert.InDelta(t, 0.48, p.PreviousStep(0.5, false), 1e-6)
		assert.Equal(t, float32(1), p.NextStep(0.99, false))
		assert.Equal(t, float32(0), p.PreviousStep(0.01, false))
	})
}

func TestFloatParamStepSize(t *testing.T) {
	t.Parallel()

	p := param.NewFloat("pan", "Pan", param.Linear{Min: -1, Max: 1}, 0, param.WithStepSize(0.25))

	// naive increment (0.04 plain) is smaller than a step, so move one step
	next := p.NextStep(0.5, false)
	assert.InDelta(t, 0.625, next, 1e-6)
	assert.InDelta(t, 0.375, p.PreviousStep(0.5, false), 1e-6)

	assert.Equal(t, "0.25", p.Format(next, false))
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	params := []param.Param{
		param.NewFloat("gain", "Gain", param.Linear{Min: -30, Max: 30}, 0,
			param.WithUnit("dB"), param.WithPrecision(1)),
		param.NewFloat("cutoff", "Cutoff", param.Skewed{Min: 20, Max: 20000, Factor: 0.25}, 1000,
			param.WithUnit("Hz"), param.WithPrecision(0)),
		param.NewInt("voices", "Voices", 1, 8, 4),
		param.NewEnum("mode", "Mode", []string{"Clean", "Warm", "Crunch"}, 0),
		param.NewBool("bypass", "Bypass", false),
	}

	for _, p := range params {
		t.Run(p.ID(), func(t *testing.T) {
			v := p.Read()
			for range 10 {
				v = p.NextStep(v, false)

				first := p.Format(v, true)
				parsed, ok := p.Parse(first)
				require.True(t, ok, "parse %q", first)
				assert.Equal(t, first, p.Format(parsed, true))
			}
		})
	}
}

func TestIntParam(t *testing.T) {
	t.Parallel()

	p := param.NewInt("voices", "Voices", 1, 8, 4)

	n, ok := p.StepCount()
	require.True(t, ok)
	assert.Equal(t, uint32(7), n)
	assert.Equal(t, int32(4), p.Plain())
	assert.Equal(t, "5", p.Format(p.NextStep(p.Read(), false), false))
	assert.Equal(t, "1", p.Format(p.PreviousStep(0, true), false))

	v, ok := p.Parse("6.4")
	require.True(t, ok)
	assert.Equal(t, "6", p.Format(v, false))

	_, ok = p.Parse("six")
	assert.False(t, ok)

	t.Run("full int32 range", func(t *testing.T) {
		wide := param.NewInt("wide", "Wide", math.MinInt32, math.MaxInt32, 0)

		n, _ := wide.StepCount()
		assert.Equal(t, uint32(math.MaxUint32), n)

		wide.Automate(1)
		assert.Equal(t, int32(math.MaxInt32), wide.Plain())

		wide.Automate(0)
		assert.Equal(t, int32(math.MinInt32), wide.Plain())

		v, ok := wide.Parse("1e12")
		require.True(t, ok)
		assert.Equal(t, float32(1), v)
	})
}

func TestBoolParam(t *testing.T) {
	t.Parallel()

	p := param.NewBool("bypass", "Bypass", true)
	assert.True(t, p.On())
	assert.Equal(t, "On", p.Format(1, true))

	v, ok := p.Parse("off")
	require.True(t, ok)
	assert.Equal(t, float32(0), v)

	_, ok = p.Parse("maybe")
	assert.False(t, ok)
}

func TestEnumParam(t *testing.T) {
	t.Parallel()

	p := param.NewEnum("mode", "Mode", []string{"Clean", "Warm", "Crunch"}, 1)
	assert.Equal(t, "Warm", p.Variant())

	n, ok := p.StepCount()
	require.True(t, ok)
	assert.Equal(t, uint32(2), n)

	v, ok := p.Parse("crunch")
	require.True(t, ok)
	assert.Equal(t, float32(1), v)

	v, ok = p.Parse("0")
	require.True(t, ok)
	assert.Equal(t, float32(0), v)

	_, ok = p.Parse("7")
	assert.False(t, ok)
}

func TestGestureGuard(t *testing.T) {
	t.Parallel()

	rec := param.NewRecorder(nil)
	p := param.NewInt("voices", "Voices", 1, 8, 4, param.WithHost(rec))

	t.Run("set without begin is ignored", func(t *testing.T) {
		p.Set(1)
		assert.Equal(t, int32(4), p.Plain())
		assert.Empty(t, rec.Events())
	})

	t.Run("double begin and stray end are ignored", func(t *testing.T) {
		require.True(t, p.BeginGesture())
		assert.False(t, p.BeginGesture(), "second begin is refused")
		p.Set(1)
		p.EndGesture()
		p.EndGesture()

		events := rec.Events()
		require.Len(t, events, 3)
		assert.Equal(t, param.EventBegin, events[0].Kind)
		assert.Equal(t, param.EventSet, events[1].Kind)
		assert.Equal(t, param.EventEnd, events[2].Kind)
		require.NoError(t, param.CheckPairing(events))
		assert.Equal(t, int32(8), p.Plain())
	})

	t.Run("automation bypasses gestures", func(t *testing.T) {
		rec.Reset()
		p.Automate(0)
		assert.Equal(t, int32(1), p.Plain())
		assert.Empty(t, rec.Events())
	})
}

func TestCheckPairing(t *testing.T) {
	t.Parallel()

	begin := param.Event{Kind: param.EventBegin, ParamID: "a"}
	set := param.Event{Kind: param.EventSet, ParamID: "a", Value: 0.5}
	end := param.Event{Kind: param.EventEnd, ParamID: "a"}

	require.NoError(t, param.CheckPairing([]param.Event{begin, set, set, end, begin, end}))
	assert.Error(t, param.CheckPairing([]param.Event{set}))
	assert.Error(t, param.CheckPairing([]param.Event{begin, begin, end}))
	assert.Error(t, param.CheckPairing([]param.Event{end}))
	assert.Error(t, param.CheckPairing([]param.Event{begin, set}))
}

func TestRecorderSink(t *testing.T) {
	t.Parallel()

	sink := make(chan param.Event, 1)
	rec := param.NewRecorder(sink)

	rec.BeginGesture("a")
	rec.EndGesture("a") // sink full, dropped but still recorded

	assert.Len(t, rec.Events(), 2)
	assert.Equal(t, param.EventBegin, (<-sink).Kind)
	assert.Equal(t, "end a", rec.Events()[1].String())
}

func TestCommit(t *testing.T) {
	t.Parallel()

	rec := param.NewRecorder(nil)
	p := param.NewFloat("mix", "Mix", param.Linear{Min: 0, Max: 100}, 100, param.WithHost(rec))

	require.NoError(t, param.Commit(p, 0.25))
	assert.InDelta(t, 25, p.Plain(), 1e-4)
	assert.Len(t, rec.Events(), 3)

	t.Run("refused while another gesture is open", func(t *testing.T) {
		require.True(t, p.BeginGesture())
		defer p.EndGesture()

		err := param.Commit(p, 1)
		require.ErrorIs(t, err, param.ErrGestureOpen)
		assert.InDelta(t, 25, p.Plain(), 1e-4)
		assert.True(t, p.GestureOpen())
	})

	require.NoError(t, param.CheckPairing(rec.Events()))
}

func TestPublisher(t *testing.T) {
	t.Parallel()

	sink := make(chan param.Event, 4)
	p := param.NewBool("bypass", "Bypass", false, param.WithHost(param.NewPublisher(sink)))

	require.NoError(t, param.Commit(p, 1))
	close(sink)

	var kinds []param.EventKind
	for e := range sink {
		kinds = append(kinds, e.Kind)
	}

	assert.Equal(t, []param.EventKind{param.EventBegin, param.EventSet, param.EventEnd}, kinds)
	assert.True(t, p.On())

	t.Run("nil sink discards", func(t *testing.T) {
		q := param.NewBool("mute", "Mute", false, param.WithHost(param.NewPublisher(nil)))
		require.NoError(t, param.Commit(q, 1))
		assert.True(t, q.On())
	})
}
