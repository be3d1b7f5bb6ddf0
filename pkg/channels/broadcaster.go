package channels

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrNilChannel     = errors.New("subscriber channel cannot be nil")
	ErrInvalidTimeout = errors.New("send timeout must be positive")
	ErrAlreadyStarted = errors.New("broadcaster already started")
	ErrNoSubscribers  = errors.New("no subscribers available")
)

// subscriber holds a channel and its send timeout configuration.
type subscriber[T any] struct {
	ch       chan<- T
	timeout  time.Duration // zero means non-blocking
	inactive atomic.Bool
	dropped  atomic.Int32
}

func (s *subscriber[T]) send(msg T) {
	if s.inactive.Load() {
		s.dropped.Add(1)

		return
	}

	var err error
	if s.timeout > 0 {
		err = SendWithTimeout(s.ch, msg, s.timeout)
	} else {
		err = SendNonBlock(s.ch, msg)
	}

	if err != nil {
		// a closed channel never recovers; anything else is a single drop
		s.dropped.Add(1)
		if errors.Is(err, ErrChannelClosed) {
			s.inactive.Store(true)
		}
	}
}

// Broadcaster copies every message from its input channel to each
// subscriber. Gesture events use it to reach the TUI log, the slog sink
// and anything else observing a bank.
//
// Subscribers are either non-blocking (a full channel drops the message)
// or bounded by a send timeout. A closed subscriber channel is marked
// inactive and skipped from then on.
//
// On context cancellation the input channel is closed and whatever is
// buffered is still delivered before Wait returns.
type Broadcaster[T any] struct {
	subscribers []*subscriber[T]
	input       chan T
	started     atomic.Bool
	wg          sync.WaitGroup
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{}
}

// Subscribe adds a non-blocking subscriber.
// Must be called before Run. Not safe for concurrent use with Run.
func (b *Broadcaster[T]) Subscribe(ch chan<- T) error {
	if ch == nil {
		return ErrNilChannel
	}

	b.subscribers = append(b.subscribers, &subscriber[T]{ch: ch})

	return nil
}

// SubscribeWithTimeout adds a subscriber that may block each send for up
// to timeout.
// Must be called before Run. Not safe for concurrent use with Run.
func (b *Broadcaster[T]) SubscribeWithTimeout(ch chan<- T, timeout time.Duration) error {
	if ch == nil {
		return ErrNilChannel
	}

	if timeout <= 0 {
		return ErrInvalidTimeout
	}

	b.subscribers = append(b.subscribers, &subscriber[T]{ch: ch, timeout: timeout})

	return nil
}

// Run starts delivery and returns the input channel. The channel is owned
// by the Broadcaster and closed when ctx is done.
func (b *Broadcaster[T]) Run(ctx context.Context) (chan<- T, error) {
	if len(b.subscribers) == 0 {
		return nil, ErrNoSubscribers
	}

	if !b.started.CompareAndSwap(false, true) {
		return nil, ErrAlreadyStarted
	}

	b.input = make(chan T, len(b.subscribers)*2)

	b.wg.Go(func() {
		for msg := range b.input {
			for _, s := range b.subscribers {
				s.send(msg)
			}
		}
	})

	// Shutdown handler: close input so the loop above drains and exits
	go func() {
		<-ctx.Done()
		close(b.input)
	}()

	return b.input, nil
}

// Wait blocks until delivery has stopped after cancellation. Multiple
// goroutines can safely call Wait.
func (b *Broadcaster[T]) Wait() {
	b.wg.Wait()
}

// SubscriberStats reports delivery problems for one subscriber.
type SubscriberStats struct {
	Dropped  int
	Inactive bool
}

// Stats returns per-subscriber statistics in subscription order.
func (b *Broadcaster[T]) Stats() []SubscriberStats {
	stats := make([]SubscriberStats, 0, len(b.subscribers))
	for _, s := range b.subscribers {
		stats = append(stats, SubscriberStats{
			Dropped:  int(s.dropped.Load()),
			Inactive: s.inactive.Load(),
		})
	}

	return stats
}
