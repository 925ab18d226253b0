package main

import (
	"bufio"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xyproto/typewriter"
)

var textFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "type on the panel using this terminal as the keyboard",
	Long: `
Read keys from the terminal, send them through the key matrix wiring and
draw them on the panel. Ctrl-C stops.
`,
	Args: cobra.NoArgs,
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
		d.Controls = typewriter.EditControls
		if textFile != "" {
			f, err := os.Create(textFile)
			if err != nil {
				return err
			}
			defer f.Close()
			w := bufio.NewWriter(f)
			defer w.Flush()
			d.Sink = w
		}

		layout, err := cfg.LoadLayout()
		if err != nil {
			return err
		}
		scanner, err := typewriter.NewTTYScanner(cfg.TTY, layout)
		if err != nil {
			return err
		}
		defer scanner.Close()

		p := typewriter.NewPipeline(cfg, scanner, d)
		if len(link.vcomPins) > 0 && p.Heartbeat != nil {
			p.Heartbeat.Pins = link.vcomPins
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if link.preview != nil {
			go link.preview.WatchResize(ctx)
		}
		return p.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&textFile, "output", "o", "", "also write the typed text to this file")
}
