package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xyproto/typewriter"
)

var (
	frameText string
	frameRow  int
	frameRaw  bool
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "print the wire frame that refreshes one text row",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := deviceConfig()
		if err != nil {
			return err
		}
		frame, err := textFrame(cfg, frameText, frameRow)
		if err != nil {
			return err
		}
		return writeFrame(cmd.OutOrStdout(), frame, frameRaw)
	},
}

func init() {
	rootCmd.AddCommand(frameCmd)
	frameCmd.Flags().StringVar(&frameText, "text", typewriter.HelloText, "text drawn from the start of the row")
	frameCmd.Flags().IntVar(&frameRow, "row", 0, "text row to draw and encode")
	frameCmd.Flags().BoolVar(&frameRaw, "raw", false, "write raw bytes instead of a hex dump")
}

// textFrame draws text at the start of row and encodes that row's pixel lines.
func textFrame(cfg typewriter.Config, text string, row int) ([]byte, error) {
	if row < 0 || row >= typewriter.Rows {
		return nil, fmt.Errorf("row %d is outside 0..%d", row, typewriter.Rows-1)
	}
	d, err := typewriter.NewDevice(cfg, typewriter.Discard)
	if err != nil {
		return nil, err
	}
	d.Renderer.SetCursor(typewriter.Cursor{Row: row})
	if err := d.WriteString(text); err != nil {
		return nil, err
	}
	lines := typewriter.CellLines(row)
	return typewriter.EncodeFrame(d.Framebuffer, lines.From, lines.To)
}

func writeFrame(out io.Writer, frame []byte, raw bool) error {
	if raw {
		_, err := out.Write(frame)
		return err
	}
	d := hex.Dumper(out)
	if _, err := d.Write(frame); err != nil {
		return err
	}
	return d.Close()
}
