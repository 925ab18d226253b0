package typewriter

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelFull is returned by Send when the event could not be queued in time.
	ErrChannelFull = errors.New("event channel full")

	// ErrChannelTimeout is returned by ReceiveTimeout when no event arrived in time.
	ErrChannelTimeout = errors.New("event channel receive timed out")

	// ErrChannelClosed is returned once the channel has been closed and drained.
	ErrChannelClosed = errors.New("event channel closed")

	// ErrOutOfRangeKey means a code or virtual key does not index the layout tables.
	// It points at a table mismatch and stops the pipeline.
	ErrOutOfRangeKey = errors.New("key out of table range")

	// ErrTransport is wrapped by every TransportError.
	ErrTransport = errors.New("transport failure")

	// ErrBadFrame is returned by ParseFrame for malformed wire data.
	ErrBadFrame = errors.New("malformed panel frame")

	// ErrBadFont is returned when a font asset can not be used.
	ErrBadFont = errors.New("unusable font asset")

	// ErrBadRange is returned for a refresh of lines outside the panel.
	ErrBadRange = errors.New("line range outside panel")
)

// TransportError describes a failed transfer to the panel.
// The panel state can not be trusted after one of these.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrTransport, e.Op, e.Err)
}

// Unwrap makes errors.Is match both ErrTransport and the cause.
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// Fatal reports whether err must stop forward progress of the pipeline.
func Fatal(err error) bool {
	return errors.Is(err, ErrOutOfRangeKey) || errors.Is(err, ErrTransport)
}

func wrapTransport(op string, err error) error {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: op, Err: err}
}

func keyRangeError(what string, v, limit int) error {
	return fmt.Errorf("%w: %s %d is not below %d", ErrOutOfRangeKey, what, v, limit)
}
