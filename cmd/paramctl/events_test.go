package main

import (
	"context"
	"testing"
	"time"

	"github.com/alkime/paramctl/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// receiveEvents reads n events from ch or fails after a second.
func receiveEvents(t *testing.T, ch <-chan param.Event, n int) []param.Event {
	t.Helper()

	got := make([]param.Event, 0, n)
	timeout := time.After(time.Second)

	for len(got) < n {
		select {
		case e := <-ch:
			got = append(got, e)
		case <-timeout:
			t.Fatalf("received %d of %d events", len(got), n)
		}
	}

	return got
}

func TestStartEvents(t *testing.T) {
	t.Run("commit reaches the ui log", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ev, err := startEvents(ctx, true)
		require.NoError(t, err)

		p := param.NewBool("bypass", "Bypass", false, param.WithHost(ev.host))
		require.NoError(t, param.Commit(p, 1))

		got := receiveEvents(t, ev.ui, 3)
		require.NoError(t, param.CheckPairing(got))
		assert.Equal(t, "set bypass 1.0000", got[1].String())

		cancel()
		assert.Zero(t, ev.wait())
	})

	t.Run("log only without ui", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		ev, err := startEvents(ctx, false)
		require.NoError(t, err)
		assert.Nil(t, ev.ui)

		p := param.NewInt("voices", "Voices", 1, 8, 4, param.WithHost(ev.host))
		require.NoError(t, param.Commit(p, 1))

		cancel()
		ev.wait()
		assert.Equal(t, int32(8), p.Plain())
	})

	t.Run("unread ui drops without blocking the log", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		ev, err := startEvents(ctx, true)
		require.NoError(t, err)

		p := param.NewFloat("gain", "Gain", param.Linear{Min: 0, Max: 1}, 0, param.WithHost(ev.host))

		// fill the ui buffer and then some, pacing sends so the
		// publisher never outruns the broadcaster input
		for i := range eventBuffer + 2 {
			require.NoError(t, param.Commit(p, float32(i%2)))
			time.Sleep(time.Millisecond)
		}

		cancel()
		assert.Positive(t, ev.wait())
		assert.Len(t, ev.ui, eventBuffer)
	})
}
