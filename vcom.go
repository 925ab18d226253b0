package typewriter

import (
	"context"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// VCOMHalfPeriod is the time between VCOM polarity flips.
const VCOMHalfPeriod = 500 * time.Millisecond

// Heartbeat keeps flipping the panel's VCOM polarity, which the panel needs to
// avoid DC bias. With Pins set the lines are driven directly (extra pins mirror
// the first, e.g. a status LED). With no pins the state is sent in-band through Panel.
type Heartbeat struct {
	Pins       []Pin
	Panel      *Panel
	HalfPeriod time.Duration
}

// Run toggles VCOM until ctx is done. It returns nil on cancellation.
func (h *Heartbeat) Run(ctx context.Context) error {
	period := h.HalfPeriod
	if period <= 0 {
		period = VCOMHalfPeriod
	}
	if len(h.Pins) == 0 && h.Panel != nil {
		h.Panel.SetInBandVCOM(true)
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	level := gpio.Low
	for {
		if err := h.flip(level); err != nil {
			return err
		}
		level = !level
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (h *Heartbeat) flip(level gpio.Level) error {
	if len(h.Pins) == 0 {
		if h.Panel == nil {
			return nil
		}
		return h.Panel.ToggleVCOM()
	}
	for _, p := range h.Pins {
		if err := p.Out(level); err != nil {
			return wrapTransport("vcom pin", err)
		}
	}
	return nil
}
