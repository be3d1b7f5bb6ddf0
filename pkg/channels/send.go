package channels

import (
	"errors"
	"time"
)

var (
	ErrChannelClosed  = errors.New("channel closed")
	ErrChannelTimeout = errors.New("send timeout")
	ErrChannelFull    = errors.New("channel full")
)

// SendNonBlock delivers msg if ch has room right now. A full channel
// yields ErrChannelFull and a closed one ErrChannelClosed.
func SendNonBlock[T any](ch chan<- T, msg T) (err error) {
	defer recoverClosed(&err)

	select {
	case ch <- msg:
		return nil
	default:
		return ErrChannelFull
	}
}

// SendWithTimeout waits up to timeout for ch to accept msg.
func SendWithTimeout[T any](ch chan<- T, msg T, timeout time.Duration) (err error) {
	defer recoverClosed(&err)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ch <- msg:
		return nil
	case <-timer.C:
		return ErrChannelTimeout
	}
}

// recoverClosed turns the panic of a send on a closed channel into
// ErrChannelClosed.
func recoverClosed(err *error) {
	if r := recover(); r != nil {
		*err = ErrChannelClosed
	}
}
