package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xyproto/typewriter"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "draw the panel self test",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := deviceConfig()
		if err != nil {
			return err
		}
		link, err := openLink(viper.GetString("transport"))
		if err != nil {
			return err
		}
		defer link.Close()
		d, err := typewriter.NewDevice(cfg, link.transport)
		if err != nil {
			return err
		}
		if err := d.Start(); err != nil {
			return err
		}
		return typewriter.Hello(d)
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
