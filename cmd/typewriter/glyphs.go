package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xyproto/typewriter"
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "list the printable keys with their code points and glyph cells",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := deviceConfig()
		if err != nil {
			return err
		}
		layout, err := cfg.LoadLayout()
		if err != nil {
			return err
		}
		return writeGlyphTable(cmd.OutOrStdout(), layout)
	},
}

func init() {
	rootCmd.AddCommand(glyphsCmd)
}

func writeGlyphTable(out io.Writer, layout *typewriter.Layout) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VK\tCHAR\tCODE POINT\tGLYPH\tKEY CODE")
	for _, vk := range typewriter.PrintableKeys() {
		r, glyph, err := typewriter.Translate(vk)
		if err != nil {
			return err
		}
		code := "-"
		if c, ok := layout.Code(vk); ok {
			code = fmt.Sprint(c)
		}
		fmt.Fprintf(w, "%d\t%s\tU+%04X\t%#02x\t%s\n", vk, vk, r, glyph, code)
	}
	return w.Flush()
}
