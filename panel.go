package typewriter

import (
	"fmt"
	"sync"
)

// Command bytes of the panel wire protocol.
const (
	CmdWrite byte = 0x01
	CmdVCOM  byte = 0x02
	CmdClear byte = 0x04
)

// lineFrameSize is the wire size of one line: address, pixels, trailer.
const lineFrameSize = 1 + BytesPerLine + 1

// Transport moves one frame to the panel inside a single chip select window.
type Transport interface {
	Transfer(frame []byte) error
}

// EncodeFrame serializes pixel lines from..to (inclusive) into a write frame:
// the write command, each line as [y+1][pixels][0x00], and a final 0x00.
func EncodeFrame(fb *Framebuffer, from, to int) ([]byte, error) {
	return AppendFrame(nil, fb, CmdWrite, from, to)
}

// AppendFrame is EncodeFrame with an explicit command byte, appending to dst.
func AppendFrame(dst []byte, fb *Framebuffer, cmd byte, from, to int) ([]byte, error) {
	if from < 0 || to >= Height || from > to {
		return dst, fmt.Errorf("%w: %d..%d", ErrBadRange, from, to)
	}
	dst = append(dst, cmd)
	for y := from; y <= to; y++ {
		dst = append(dst, byte(y+1))
		dst = append(dst, fb.Line(y)...)
		dst = append(dst, 0x00)
	}
	return append(dst, 0x00), nil
}

// FrameLine is one decoded line of a write frame.
type FrameLine struct {
	Y      int
	Pixels []byte
}

// Frame is a decoded wire frame.
type Frame struct {
	Command byte
	Lines   []FrameLine
}

// Write reports whether the frame carries pixel lines.
func (f Frame) Write() bool {
	return f.Command&CmdWrite != 0
}

// Clear reports whether the frame is an all-clear command.
func (f Frame) Clear() bool {
	return f.Command&CmdClear != 0
}

// VCOM returns the state of the in-band VCOM bit.
func (f Frame) VCOM() bool {
	return f.Command&CmdVCOM != 0
}

// Apply copies the frame's lines into fb. A clear frame whitens fb.
func (f Frame) Apply(fb *Framebuffer) {
	if f.Clear() {
		fb.Clear()
		return
	}
	for _, l := range f.Lines {
		copy(fb.Line(l.Y), l.Pixels)
		fb.touch(l.Y, l.Y)
	}
}

// ParseFrame decodes a frame produced by the Panel. The line pixels alias frame.
func ParseFrame(frame []byte) (Frame, error) {
	if len(frame) < 2 {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrBadFrame, len(frame))
	}
	f := Frame{Command: frame[0]}
	if !f.Write() {
		if len(frame) != 2 || frame[1] != 0x00 {
			return Frame{}, fmt.Errorf("%w: command %#02x has %d trailing bytes", ErrBadFrame, f.Command, len(frame)-1)
		}
		return f, nil
	}
	body := frame[1:]
	for len(body) >= lineFrameSize {
		addr := int(body[0])
		if addr < 1 || addr > Height {
			return Frame{}, fmt.Errorf("%w: line address %d", ErrBadFrame, addr)
		}
		if body[lineFrameSize-1] != 0x00 {
			return Frame{}, fmt.Errorf("%w: line %d has no trailer", ErrBadFrame, addr)
		}
		f.Lines = append(f.Lines, FrameLine{Y: addr - 1, Pixels: body[1 : 1+BytesPerLine]})
		body = body[lineFrameSize:]
	}
	if len(body) != 1 || body[0] != 0x00 {
		return Frame{}, fmt.Errorf("%w: %d bytes after the last line", ErrBadFrame, len(body))
	}
	return f, nil
}

// Panel sends framebuffer contents to the display. Its methods are safe to call
// from the pipeline and the VCOM heartbeat at the same time.
type Panel struct {
	mu     sync.Mutex
	t      Transport
	fb     *Framebuffer
	inBand bool
	vcom   bool
	buf    []byte
}

// NewPanel returns a panel that refreshes from fb over t.
func NewPanel(t Transport, fb *Framebuffer) *Panel {
	return &Panel{t: t, fb: fb, buf: make([]byte, 0, 2+Height*lineFrameSize)}
}

// SetInBandVCOM selects whether the VCOM state travels in the command byte.
func (p *Panel) SetInBandVCOM(on bool) {
	p.mu.Lock()
	p.inBand = on
	p.mu.Unlock()
}

func (p *Panel) command(cmd byte) byte {
	if p.inBand && p.vcom {
		cmd |= CmdVCOM
	}
	return cmd
}

// RefreshAll sends every line of the framebuffer.
func (p *Panel) RefreshAll() error {
	return p.RefreshRange(0, Height-1)
}

// RefreshRange sends pixel lines from..to, inclusive. The framebuffer is only read.
func (p *Panel) RefreshRange(from, to int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	frame, err := AppendFrame(p.buf[:0], p.fb, p.command(CmdWrite), from, to)
	if err != nil {
		return err
	}
	p.buf = frame
	return wrapTransport("refresh", p.t.Transfer(frame))
}

// Refresh sends the given range.
func (p *Panel) Refresh(r LineRange) error {
	return p.RefreshRange(r.From, r.To)
}

// Flush sends the lines changed since the last flush.
func (p *Panel) Flush() error {
	r, ok := p.fb.Dirty()
	if !ok {
		return nil
	}
	if err := p.Refresh(r); err != nil {
		return err
	}
	p.fb.MarkClean()
	return nil
}

// Clear blanks the panel. The framebuffer is left as it is.
func (p *Panel) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return wrapTransport("clear", p.t.Transfer([]byte{p.command(CmdClear), 0x00}))
}

// ToggleVCOM flips the in-band VCOM state and sends it with a no-op frame.
func (p *Panel) ToggleVCOM() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vcom = !p.vcom
	if !p.inBand {
		return nil
	}
	return wrapTransport("vcom", p.t.Transfer([]byte{p.command(0), 0x00}))
}
