package typewriter

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
)

// Produce reads transitions from s and queues them on ch until the scanner is
// exhausted or ctx is done. Events that do not fit in the channel are dropped and
// logged. The channel is closed when Produce returns.
func Produce(ctx context.Context, s Scanner, ch *EventChannel, logger *log.Logger) error {
	defer ch.Close()
	for {
		t, err := s.Scan(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case ctx.Err() != nil:
			return nil
		case err != nil:
			return err
		}
		if err := ch.Send(t.Event()); err != nil {
			if errors.Is(err, ErrChannelClosed) {
				return nil
			}
			logger.Printf("scanner: %v", err)
		}
	}
}

// Consume feeds events from ch to d until the channel is closed and drained, ctx
// is done, or a fatal error happens. Other errors are logged and skipped.
func Consume(ctx context.Context, ch *EventChannel, d *Device, repeat RepeatPolicy) error {
	repeating := false
	for {
		var (
			ev  KeyEvent
			err error
		)
		held, holding := d.Resolver.Held()
		switch {
		case !repeat.Enabled() || !holding:
			ev, err = ch.Receive(ctx)
		case repeating:
			ev, err = ch.ReceiveTimeout(ctx, repeat.Interval)
		default:
			ev, err = ch.ReceiveTimeout(ctx, repeat.Delay)
		}
		switch {
		case errors.Is(err, ErrChannelTimeout):
			ev, repeating = held, true
		case errors.Is(err, ErrChannelClosed), ctx.Err() != nil:
			return nil
		case err != nil:
			return err
		default:
			repeating = false
		}
		if err := d.Handle(ev); err != nil {
			if Fatal(err) {
				return err
			}
			d.logf("%v", err)
		}
	}
}

// Pipeline runs the scanner, the device and the VCOM heartbeat together.
type Pipeline struct {
	Scanner   Scanner
	Device    *Device
	Events    *EventChannel
	Repeat    RepeatPolicy
	Heartbeat *Heartbeat
	Logger    *log.Logger
}

// NewPipeline connects s to d with the channel, repeat policy and heartbeat in cfg.
func NewPipeline(cfg Config, s Scanner, d *Device) *Pipeline {
	p := &Pipeline{
		Scanner: s,
		Device:  d,
		Events:  NewEventChannel(cfg.SendTimeout),
		Repeat:  cfg.Repeat,
		Logger:  cfg.logger(),
	}
	if cfg.VCOMHalfPeriod > 0 {
		p.Heartbeat = &Heartbeat{Panel: d.Panel, HalfPeriod: cfg.VCOMHalfPeriod}
	}
	return p
}

// Run starts the device and blocks until the scanner is exhausted and every
// queued event is handled, ctx is cancelled, or a fatal error stops the device.
// The first error from any part is returned.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.Device.Start(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		if err == nil {
			return
		}
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	if p.Heartbeat != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fail(p.Heartbeat.Run(ctx))
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		fail(Produce(ctx, p.Scanner, p.Events, p.Logger))
	}()

	err := Consume(ctx, p.Events, p.Device, p.Repeat)
	fail(err)
	cancel()
	p.Events.Close()
	wg.Wait()
	if p.Events.Dropped() > 0 {
		p.Logger.Printf("%d key events dropped", p.Events.Dropped())
	}
	return firstErr
}
