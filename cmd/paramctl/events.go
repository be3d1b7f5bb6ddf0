package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alkime/paramctl/internal/param"
	"github.com/alkime/paramctl/pkg/channels"
)

const (
	eventBuffer     = 64
	logEventTimeout = 10 * time.Millisecond
)

// events fans gesture events out to the TUI and to the log.
type events struct {
	broadcaster *channels.Broadcaster[param.Event]
	host        param.Host
	ui          chan param.Event
}

// startEvents runs the broadcaster until ctx is done. withUI adds a
// subscriber for the TUI event log.
func startEvents(ctx context.Context, withUI bool) (*events, error) {
	e := &events{broadcaster: channels.NewBroadcaster[param.Event]()}

	if withUI {
		e.ui = make(chan param.Event, eventBuffer)
		if err := e.broadcaster.Subscribe(e.ui); err != nil {
			return nil, fmt.Errorf("failed to subscribe ui: %w", err)
		}
	}

	logC := make(chan param.Event, eventBuffer)
	if err := e.broadcaster.SubscribeWithTimeout(logC, logEventTimeout); err != nil {
		return nil, fmt.Errorf("failed to subscribe log: %w", err)
	}

	input, err := e.broadcaster.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start event broadcaster: %w", err)
	}

	e.host = param.NewPublisher(input)

	go logEvents(ctx, logC)

	return e, nil
}

// wait blocks until buffered events are delivered and returns how many
// were dropped across subscribers.
func (e *events) wait() int {
	e.broadcaster.Wait()

	dropped := 0

	for i, st := range e.broadcaster.Stats() {
		if st.Dropped > 0 || st.Inactive {
			slog.Debug("gesture events dropped", "subscriber", i, "dropped", st.Dropped, "inactive", st.Inactive)
		}

		dropped += st.Dropped
	}

	return dropped
}

func logEvents(ctx context.Context, c <-chan param.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-c:
			slog.Debug("gesture", "kind", e.Kind.String(), "param", e.ParamID, "value", e.Value)
		}
	}
}
