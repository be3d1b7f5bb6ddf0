package slider_test

import (
	"testing"

	"github.com/alkime/paramctl/internal/param"
	"github.com/stretchr/testify/require"
)

func newUnitParam(rec *param.Recorder) *param.FloatParam {
	return param.NewFloat("amount", "Amount", param.Linear{Min: 0, Max: 1}, 0.5, param.WithHost(rec))
}

func eventKinds(events []param.Event) []param.EventKind {
	kinds := make([]param.EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}

	return kinds
}

func setValues(events []param.Event) []float32 {
	var values []float32

	for _, e := range events {
		if e.Kind == param.EventSet {
			values = append(values, e.Value)
		}
	}

	return values
}

func requirePaired(t *testing.T, rec *param.Recorder) {
	t.Helper()
	require.NoError(t, param.CheckPairing(rec.Events()))
}

var (
	begin = param.EventBegin
	set   = param.EventSet
	end   = param.EventEnd
)
