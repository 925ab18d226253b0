package typewriter

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// QueueLength is the fixed capacity of the event channel.
	QueueLength = 32

	// DefaultSendTimeout bounds how long the producer waits on a full channel.
	DefaultSendTimeout = 10 * time.Millisecond
)

// EventChannel is the bounded FIFO between the scanner side and the pipeline.
// Any number of goroutines may Send; exactly one should Receive.
type EventChannel struct {
	ch          chan KeyEvent
	done        chan struct{}
	closeOnce   sync.Once
	sendTimeout time.Duration
	dropped     atomic.Uint64
}

// NewEventChannel creates a channel holding QueueLength events.
// A sendTimeout of zero makes Send fail immediately when full.
func NewEventChannel(sendTimeout time.Duration) *EventChannel {
	return &EventChannel{
		ch:          make(chan KeyEvent, QueueLength),
		done:        make(chan struct{}),
		sendTimeout: sendTimeout,
	}
}

// Send queues ev, waiting at most the send timeout for room.
// When the channel stays full the event is dropped and ErrChannelFull is returned.
func (c *EventChannel) Send(ev KeyEvent) error {
	select {
	case <-c.done:
		return ErrChannelClosed
	default:
	}
	select {
	case c.ch <- ev:
		return nil
	default:
	}
	if c.sendTimeout <= 0 {
		c.dropped.Add(1)
		return fmt.Errorf("%w: dropped %s", ErrChannelFull, ev)
	}
	t := time.NewTimer(c.sendTimeout)
	defer t.Stop()
	select {
	case c.ch <- ev:
		return nil
	case <-c.done:
		return ErrChannelClosed
	case <-t.C:
		c.dropped.Add(1)
		return fmt.Errorf("%w: dropped %s", ErrChannelFull, ev)
	}
}

// Receive blocks until an event is available.
// It only returns early when ctx is cancelled or the channel is closed and empty.
func (c *EventChannel) Receive(ctx context.Context) (KeyEvent, error) {
	select {
	case ev := <-c.ch:
		return ev, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-c.done:
		return c.drain()
	}
}

// ReceiveTimeout is like Receive, but gives up with ErrChannelTimeout after d.
func (c *EventChannel) ReceiveTimeout(ctx context.Context, d time.Duration) (KeyEvent, error) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case ev := <-c.ch:
		return ev, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-c.done:
		return c.drain()
	case <-t.C:
		return 0, ErrChannelTimeout
	}
}

func (c *EventChannel) drain() (KeyEvent, error) {
	select {
	case ev := <-c.ch:
		return ev, nil
	default:
		return 0, ErrChannelClosed
	}
}

// Close stops further sends. Events already queued can still be received.
func (c *EventChannel) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Len returns the number of queued events.
func (c *EventChannel) Len() int {
	return len(c.ch)
}

// Dropped returns how many events were discarded because the channel was full.
func (c *EventChannel) Dropped() uint64 {
	return c.dropped.Load()
}
