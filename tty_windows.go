//go:build windows || plan9

package typewriter

import (
	"context"
	"errors"
	"io"
)

var errNoTTY = errors.New("raw terminal access is not supported on this platform")

// TTYPath returns the console input device.
func TTYPath() string {
	return "CONIN$"
}

// TTYScanner is not available on Windows.
type TTYScanner struct {
	QuitOnInterrupt bool
}

// NewTTYScanner always fails on Windows.
func NewTTYScanner(path string, layout *Layout) (*TTYScanner, error) {
	return nil, errNoTTY
}

// Close does nothing.
func (s *TTYScanner) Close() error {
	return nil
}

// Scan returns io.EOF.
func (s *TTYScanner) Scan(ctx context.Context) (Transition, error) {
	return Transition{}, io.EOF
}

// SerialTransport is not available on Windows.
type SerialTransport struct{}

// OpenSerial always fails on Windows.
func OpenSerial(path string, baud int) (*SerialTransport, error) {
	return nil, &TransportError{Op: "open " + path, Err: errNoTTY}
}

// Transfer fails.
func (s *SerialTransport) Transfer(frame []byte) error {
	return &TransportError{Op: "serial write", Err: errNoTTY}
}

// Close does nothing.
func (s *SerialTransport) Close() error {
	return nil
}
