//go:build linux

package typewriter

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
)

// GPIOLine is an output Pin on a GPIO character device line.
type GPIOLine struct {
	line *gpiocdev.Line
	name string
}

// RequestGPIOLine claims offset on chip (e.g. "gpiochip0") as an output driven low.
func RequestGPIOLine(chip string, offset int) (*GPIOLine, error) {
	l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer("typewriter"))
	if err != nil {
		return nil, fmt.Errorf("request %s line %d: %w", chip, offset, err)
	}
	return &GPIOLine{line: l, name: fmt.Sprintf("%s:%d", chip, offset)}, nil
}

// Out drives the line.
func (g *GPIOLine) Out(l gpio.Level) error {
	v := 0
	if l == gpio.High {
		v = 1
	}
	if err := g.line.SetValue(v); err != nil {
		return fmt.Errorf("%s: %w", g.name, err)
	}
	return nil
}

// Close releases the line.
func (g *GPIOLine) Close() error {
	return g.line.Close()
}

func (g *GPIOLine) String() string {
	return g.name
}
