package param

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/alkime/paramctl/pkg/channels"
)

// Host receives the gestures parameters report. It stands in for the
// plugin host's automation and undo recording.
type Host interface {
	BeginGesture(id string)
	SetValue(id string, normalized float32)
	EndGesture(id string)
}

// NopHost discards gestures.
type NopHost struct{}

func (NopHost) BeginGesture(string)      {}
func (NopHost) SetValue(string, float32) {}
func (NopHost) EndGesture(string)        {}

// EventKind identifies a gesture event.
type EventKind int

const (
	EventBegin EventKind = iota
	EventSet
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "begin"
	case EventSet:
		return "set"
	case EventEnd:
		return "end"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single gesture notification.
type Event struct {
	Kind    EventKind
	ParamID string
	Value   float32
}

func (e Event) String() string {
	if e.Kind == EventSet {
		return fmt.Sprintf("%s %s %.4f", e.Kind, e.ParamID, e.Value)
	}

	return fmt.Sprintf("%s %s", e.Kind, e.ParamID)
}

// Publisher is a Host that forwards every gesture event to a channel
// without blocking. Events that do not fit are dropped.
type Publisher struct {
	sink chan<- Event
}

// NewPublisher creates a publisher. A nil sink discards everything.
func NewPublisher(sink chan<- Event) *Publisher {
	return &Publisher{sink: sink}
}

func (p *Publisher) BeginGesture(id string) {
	p.publish(Event{Kind: EventBegin, ParamID: id})
}

func (p *Publisher) SetValue(id string, normalized float32) {
	p.publish(Event{Kind: EventSet, ParamID: id, Value: normalized})
}

func (p *Publisher) EndGesture(id string) {
	p.publish(Event{Kind: EventEnd, ParamID: id})
}

func (p *Publisher) publish(e Event) {
	if p.sink == nil {
		return
	}

	if err := channels.SendNonBlock(p.sink, e); err != nil {
		slog.Debug("gesture event dropped", "event", e.String(), "error", err)
	}
}

// Recorder is a Host that keeps a trace of every gesture event and
// optionally publishes each one as well.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	pub    *Publisher
}

// NewRecorder creates a recorder. sink may be nil.
func NewRecorder(sink chan<- Event) *Recorder {
	return &Recorder{pub: NewPublisher(sink)}
}

func (r *Recorder) BeginGesture(id string) {
	r.record(Event{Kind: EventBegin, ParamID: id})
}

func (r *Recorder) SetValue(id string, normalized float32) {
	r.record(Event{Kind: EventSet, ParamID: id, Value: normalized})
}

func (r *Recorder) EndGesture(id string) {
	r.record(Event{Kind: EventEnd, ParamID: id})
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()

	r.pub.publish(e)
}

// Events returns a copy of the recorded trace.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}

// Reset clears the recorded trace.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// CheckPairing verifies that, per parameter, every begin is matched by
// exactly one end and that sets only occur between them.
func CheckPairing(events []Event) error {
	open := map[string]bool{}

	for i, e := range events {
		switch e.Kind {
		case EventBegin:
			if open[e.ParamID] {
				return fmt.Errorf("event %d: nested begin for %q", i, e.ParamID)
			}
			open[e.ParamID] = true
		case EventSet:
			if !open[e.ParamID] {
				return fmt.Errorf("event %d: set outside gesture for %q", i, e.ParamID)
			}
		case EventEnd:
			if !open[e.ParamID] {
				return fmt.Errorf("event %d: end without begin for %q", i, e.ParamID)
			}
			open[e.ParamID] = false
		}
	}

	for id, isOpen := range open {
		if isOpen {
			return fmt.Errorf("gesture left open for %q", id)
		}
	}

	return nil
}
