//go:build !windows && !plan9

package typewriter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
)

// ttyPollInterval is how often a waiting TTYScanner checks for cancellation.
const ttyPollInterval = 20 * time.Millisecond

// Escape sequences for the control keys, by length.
var (
	seq3Keys = map[[3]byte]VirtualKey{
		{27, 91, 65}:  VKUp,
		{27, 91, 66}:  VKDown,
		{27, 91, 67}:  VKRight,
		{27, 91, 68}:  VKLeft,
		{27, 91, 'H'}: VKHome,
		{27, 91, 'F'}: VKEnd,
		{27, 79, 'P'}: VKF1,
		{27, 79, 'Q'}: VKF2,
		{27, 79, 'R'}: VKF3,
		{27, 79, 'S'}: VKF4,
	}
	seq4Keys = map[[4]byte]VirtualKey{
		{27, 91, 49, 126}: VKHome,
		{27, 91, 50, 126}: VKInsert,
		{27, 91, 51, 126}: VKDelete,
		{27, 91, 52, 126}: VKEnd,
		{27, 91, 53, 126}: VKPageUp,
		{27, 91, 54, 126}: VKPageDown,
	}
	seq5Keys = map[[5]byte]VirtualKey{
		{27, 91, 49, 49, 126}: VKF1,
		{27, 91, 49, 50, 126}: VKF2,
		{27, 91, 49, 51, 126}: VKF3,
		{27, 91, 49, 52, 126}: VKF4,
		{27, 91, 49, 53, 126}: VKF5,
		{27, 91, 49, 55, 126}: VKF6,
		{27, 91, 49, 56, 126}: VKF7,
		{27, 91, 49, 57, 126}: VKF8,
		{27, 91, 50, 48, 126}: VKF9,
		{27, 91, 50, 49, 126}: VKF10,
	}
	byteKeys = map[byte]VirtualKey{
		8:   VKBackspace,
		9:   VKTab,
		10:  VKEnter,
		13:  VKEnter,
		27:  VKEsc,
		127: VKBackspace,
	}
)

// TTYPath returns the terminal to read keys from: the tmux pane or SSH
// terminal when set, then /dev/tty, then stdin.
func TTYPath() string {
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}
	const defaultTTY = "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}
	return "/dev/stdin"
}

// TTYScanner turns keys typed in a terminal into the transitions the key matrix
// would produce on the given layout. Capital letters are sent as the lower case
// key with left Shift held.
type TTYScanner struct {
	t       *term.Term
	layout  *Layout
	pending []Transition
	// Ctrl-C ends the scan with io.EOF when set.
	QuitOnInterrupt bool
}

// NewTTYScanner opens path in raw mode. An empty path means TTYPath().
func NewTTYScanner(path string, layout *Layout) (*TTYScanner, error) {
	if path == "" {
		path = TTYPath()
	}
	t, err := term.Open(path, term.RawMode, term.ReadTimeout(ttyPollInterval))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &TTYScanner{t: t, layout: layout, QuitOnInterrupt: true}, nil
}

// Close restores and closes the terminal.
func (s *TTYScanner) Close() error {
	s.t.Restore()
	return s.t.Close()
}

// Scan waits for the next key transition.
func (s *TTYScanner) Scan(ctx context.Context) (Transition, error) {
	for len(s.pending) == 0 {
		if err := ctx.Err(); err != nil {
			return Transition{}, err
		}
		buf := make([]byte, 6)
		n, err := s.t.Read(buf)
		if errors.Is(err, io.EOF) || n == 0 {
			continue
		}
		if err != nil {
			return Transition{}, fmt.Errorf("read tty: %w", err)
		}
		if s.QuitOnInterrupt && n == 1 && buf[0] == 3 {
			return Transition{}, io.EOF
		}
		s.pending = s.strokes(buf[:n])
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	return t, nil
}

// strokes decodes one read from the terminal.
func (s *TTYScanner) strokes(b []byte) []Transition {
	if vk, ok := sequenceKey(b); ok {
		return s.keyStrokes(vk, false)
	}
	var ts []Transition
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if vk, ok := byteKeys[byte(r)]; ok && r < utf8.RuneSelf {
			ts = append(ts, s.keyStrokes(vk, false)...)
			continue
		}
		if !unicode.IsPrint(r) {
			continue
		}
		if vk, ok := LookupRune(r); ok {
			if _, onLayout := s.layout.Code(vk); onLayout {
				ts = append(ts, s.keyStrokes(vk, false)...)
				continue
			}
		}
		if vk, ok := LookupRune(unicode.ToLower(r)); ok && unicode.IsUpper(r) {
			ts = append(ts, s.keyStrokes(vk, true)...)
		}
	}
	return ts
}

func sequenceKey(b []byte) (VirtualKey, bool) {
	var vk VirtualKey
	var ok bool
	switch len(b) {
	case 3:
		vk, ok = seq3Keys[[3]byte(b)]
	case 4:
		vk, ok = seq4Keys[[4]byte(b)]
	case 5:
		vk, ok = seq5Keys[[5]byte(b)]
	}
	return vk, ok
}

func (s *TTYScanner) keyStrokes(vk VirtualKey, shift bool) []Transition {
	code, ok := s.layout.Code(vk)
	if !ok {
		return nil
	}
	ts := []Transition{{Code: code, Press: true}, {Code: code}}
	if shift {
		ts = append([]Transition{{Code: CodeLeftShift, Press: true, Modifier: true}}, ts...)
		ts = append(ts, Transition{Code: CodeLeftShift, Modifier: true})
	}
	return ts
}

// SerialTransport writes frames to a serial port, for panels behind a USB to
// SPI bridge that frames each write as one chip select window.
type SerialTransport struct {
	t *term.Term
}

// OpenSerial opens a serial device in raw mode at the given baud rate.
func OpenSerial(path string, baud int) (*SerialTransport, error) {
	t, err := term.Open(path, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, &TransportError{Op: "open " + path, Err: err}
	}
	return &SerialTransport{t: t}, nil
}

// Transfer writes frame to the port.
func (s *SerialTransport) Transfer(frame []byte) error {
	for len(frame) > 0 {
		n, err := s.t.Write(frame)
		if err != nil {
			return wrapTransport("serial write", err)
		}
		frame = frame[n:]
	}
	return nil
}

// Close closes the port.
func (s *SerialTransport) Close() error {
	return s.t.Close()
}
