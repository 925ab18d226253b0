package typewriter

import (
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Chip select timing of the Sharp memory LCD.
const (
	ChipSelectSetup = 6 * time.Microsecond
	ChipSelectHold  = 2 * time.Microsecond
)

// Pin is an output line, such as chip select or VCOM.
// gpio.PinOut from periph.io satisfies it.
type Pin interface {
	Out(l gpio.Level) error
}

// SPITransport writes frames to an SPI connection, driving an active high chip
// select around each frame. Frames larger than the connection's transfer limit
// are split without releasing chip select.
type SPITransport struct {
	Conn  spi.Conn
	CS    Pin
	Setup time.Duration
	Hold  time.Duration
}

// NewSPITransport returns a transport with the panel's chip select timing.
// cs may be nil when the SPI controller drives chip select itself.
func NewSPITransport(c spi.Conn, cs Pin) *SPITransport {
	return &SPITransport{Conn: c, CS: cs, Setup: ChipSelectSetup, Hold: ChipSelectHold}
}

func (s *SPITransport) maxTx() int {
	if l, ok := s.Conn.(conn.Limits); ok {
		if n := l.MaxTxSize(); n > 0 {
			return n
		}
	}
	return 4096
}

// Transfer sends frame inside one chip select window.
func (s *SPITransport) Transfer(frame []byte) (err error) {
	if s.CS != nil {
		if err := s.CS.Out(gpio.High); err != nil {
			return wrapTransport("chip select", err)
		}
		time.Sleep(s.Setup)
		defer func() {
			cerr := s.CS.Out(gpio.Low)
			time.Sleep(s.Hold)
			if err == nil {
				err = wrapTransport("chip select", cerr)
			}
		}()
	}
	limit := s.maxTx()
	for len(frame) > 0 {
		n := min(len(frame), limit)
		if err := s.Conn.Tx(frame[:n], nil); err != nil {
			return wrapTransport("spi tx", err)
		}
		frame = frame[n:]
	}
	return nil
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(frame []byte) error

// Transfer calls f.
func (f TransportFunc) Transfer(frame []byte) error {
	return f(frame)
}

// Discard is a Transport that drops every frame.
var Discard Transport = TransportFunc(func([]byte) error { return nil })

// Tee returns a transport that sends each frame to every transport in order,
// stopping at the first error.
func Tee(ts ...Transport) Transport {
	return TransportFunc(func(frame []byte) error {
		for _, t := range ts {
			if err := t.Transfer(frame); err != nil {
				return err
			}
		}
		return nil
	})
}
