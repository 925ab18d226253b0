package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"github.com/xyproto/typewriter"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// panelLink is an opened transport with the VCOM pins that belong to it.
type panelLink struct {
	transport typewriter.Transport
	preview   *typewriter.Preview
	vcomPins  []typewriter.Pin
	closers   []io.Closer
}

func (l *panelLink) Close() error {
	var errs []error
	for i := len(l.closers) - 1; i >= 0; i-- {
		errs = append(errs, l.closers[i].Close())
	}
	if l.preview != nil {
		l.preview.End()
	}
	return errors.Join(errs...)
}

func openLink(kind string) (*panelLink, error) {
	switch kind {
	case "preview":
		p := typewriter.NewPreview(os.Stdout, 0)
		p.Begin()
		return &panelLink{transport: p, preview: p}, nil
	case "null":
		return &panelLink{transport: typewriter.Discard}, nil
	case "serial":
		s, err := typewriter.OpenSerial(viper.GetString("serial"), viper.GetInt("baud"))
		if err != nil {
			return nil, err
		}
		return &panelLink{transport: s, closers: []io.Closer{s}}, nil
	case "spi":
		return openSPI()
	}
	return nil, fmt.Errorf("unknown transport %q", kind)
}

func openSPI() (*panelLink, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	link := &panelLink{}
	port, err := spireg.Open(viper.GetString("spi_port"))
	if err != nil {
		return nil, fmt.Errorf("open spi port: %w", err)
	}
	link.closers = append(link.closers, port)

	cs, vcom, err := openPins(link)
	if err != nil {
		link.Close()
		return nil, err
	}
	mode := spi.Mode0 | spi.LSBFirst
	if cs != nil {
		mode |= spi.NoCS
	}
	conn, err := port.Connect(physic.Frequency(viper.GetInt("spi_hz"))*physic.Hertz, mode, 8)
	if err != nil {
		link.Close()
		return nil, fmt.Errorf("connect spi: %w", err)
	}
	link.transport = typewriter.NewSPITransport(conn, cs)
	if vcom != nil {
		link.vcomPins = []typewriter.Pin{vcom}
	}
	return link, nil
}

// openPins finds the chip select and VCOM pins, from the GPIO character device
// when --gpio-chip is set and from the periph registry otherwise.
func openPins(link *panelLink) (cs, vcom typewriter.Pin, err error) {
	if chip := viper.GetString("gpio_chip"); chip != "" {
		return openChipPins(link, chip)
	}
	byName := func(flag string) (typewriter.Pin, error) {
		name := viper.GetString(flag)
		if name == "" {
			return nil, nil
		}
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("no GPIO named %q", name)
		}
		return p, nil
	}
	if cs, err = byName("cs_pin"); err != nil {
		return nil, nil, err
	}
	if vcom, err = byName("vcom_pin"); err != nil {
		return nil, nil, err
	}
	return cs, vcom, nil
}
