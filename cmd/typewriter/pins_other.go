//go:build !linux

package main

import (
	"fmt"

	"github.com/xyproto/typewriter"
)

func openChipPins(_ *panelLink, chip string) (cs, vcom typewriter.Pin, err error) {
	return nil, nil, fmt.Errorf("GPIO character device %s needs Linux", chip)
}
