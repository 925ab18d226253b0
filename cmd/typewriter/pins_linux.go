//go:build linux

package main

import (
	"github.com/spf13/viper"
	"github.com/xyproto/typewriter"
)

func openChipPins(link *panelLink, chip string) (cs, vcom typewriter.Pin, err error) {
	if off := viper.GetInt("cs_line"); off >= 0 {
		l, err := typewriter.RequestGPIOLine(chip, off)
		if err != nil {
			return nil, nil, err
		}
		link.closers = append(link.closers, l)
		cs = l
	}
	if off := viper.GetInt("vcom_line"); off >= 0 {
		l, err := typewriter.RequestGPIOLine(chip, off)
		if err != nil {
			return nil, nil, err
		}
		link.closers = append(link.closers, l)
		vcom = l
	}
	return cs, vcom, nil
}
