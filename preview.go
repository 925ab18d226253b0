package typewriter

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/mgutz/ansi"
	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

const (
	cursorHomeTemplate = "\033[%d;%dH"
	eraseScreen        = "\033[2J"
	hideTermCursor     = "\033[?25l"
	showTermCursor     = "\033[?25h"
	upperHalfBlock     = '▀'
)

// Preview is a Transport that shows the panel in a terminal. Every terminal cell
// holds two pixel lines as a half block. Columns are subsampled when the terminal
// is narrower than the panel.
type Preview struct {
	mu     sync.Mutex
	out    io.Writer
	fb     *Framebuffer
	step   int
	rows   []string
	frames int
}

// NewPreview draws to out, subsampling to fit width terminal columns.
// A width of 0 uses the width of the current terminal.
func NewPreview(out io.Writer, width uint) *Preview {
	p := &Preview{
		out:  out,
		fb:   NewFramebuffer(),
		rows: make([]string, Height/2),
	}
	p.step = previewStep(width)
	return p
}

// previewStep is the column subsampling that fits the panel in width terminal
// columns. A width of 0 asks the terminal on stdout, then $COLUMNS.
func previewStep(width uint) int {
	if width == 0 {
		width = 80
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = uint(w)
			}
		} else if cols := env.Int("COLUMNS", 0); cols > 0 {
			width = uint(cols)
		}
	}
	step := 1
	for Width/step > int(width) {
		step++
	}
	return step
}

// Resize fits the preview to width columns and redraws it.
// A width of 0 uses the width of the current terminal.
func (p *Preview) Resize(width uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.step = previewStep(width)
	var sb strings.Builder
	sb.WriteString(eraseScreen + hideTermCursor)
	for row := range p.rows {
		p.rows[row] = p.renderRow(row)
		fmt.Fprintf(&sb, cursorHomeTemplate, row+1, 1)
		sb.WriteString(p.rows[row])
	}
	sb.WriteString(ansi.Reset)
	_, err := io.WriteString(p.out, sb.String())
	return err
}

// WatchResize refits the preview every time the terminal is resized, until ctx is done.
func (p *Preview) WatchResize(ctx context.Context) {
	sigChan := make(chan os.Signal, 1)
	notifyResize(sigChan)
	defer signal.Stop(sigChan)
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigChan:
			p.Resize(0)
		}
	}
}

// Framebuffer returns the mirror of the panel built from the frames received.
func (p *Preview) Framebuffer() *Framebuffer {
	return p.fb
}

// Frames returns the number of frames received.
func (p *Preview) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// Transfer decodes a frame, applies it to the mirror and redraws the changed rows.
func (p *Preview) Transfer(frame []byte) error {
	f, err := ParseFrame(frame)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames++
	p.fb.MarkClean()
	f.Apply(p.fb)
	r, ok := p.fb.Dirty()
	if !ok {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(hideTermCursor)
	for row := r.From / 2; row <= r.To/2; row++ {
		s := p.renderRow(row)
		if s == p.rows[row] {
			continue
		}
		p.rows[row] = s
		fmt.Fprintf(&sb, cursorHomeTemplate, row+1, 1)
		sb.WriteString(s)
	}
	sb.WriteString(ansi.Reset)
	_, err = io.WriteString(p.out, sb.String())
	return err
}

// renderRow draws pixel lines 2*row and 2*row+1.
func (p *Preview) renderRow(row int) string {
	var sb strings.Builder
	y := row * 2
	last := ""
	for x := 0; x < Width; x += p.step {
		style := pixelColor(p.fb.GetPixel(x, y)) + ":" + pixelColor(p.fb.GetPixel(x, y+1))
		if style != last {
			sb.WriteString(ansi.ColorCode(style))
			last = style
		}
		sb.WriteRune(upperHalfBlock)
	}
	return sb.String()
}

func pixelColor(on bool) string {
	if on {
		return "white"
	}
	return "black"
}

// Begin clears the terminal and hides its cursor.
func (p *Preview) Begin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.rows {
		p.rows[i] = ""
	}
	io.WriteString(p.out, eraseScreen+hideTermCursor)
}

// End moves below the preview and shows the terminal cursor again.
func (p *Preview) End() {
	fmt.Fprintf(p.out, cursorHomeTemplate+"%s%s\n", Height/2+1, 1, ansi.Reset, showTermCursor)
}
