package typewriter

import "fmt"

// Bit layout of an encoded key event:
//
//	MSB [ PRESS | MODIFIER | code (6 bits) ] LSB
const (
	pressMask    = 1 << 7
	modifierMask = 1 << 6
	codeMask     = modifierMask - 1

	// MaxCode is the largest code that fits in a KeyEvent.
	MaxCode = codeMask
)

// KeyEvent is one key transition packed into a single byte.
type KeyEvent byte

// Transition is what a Scanner reports for one debounced key change.
// Code is already permuted through the wiring table.
type Transition struct {
	Code     uint8
	Press    bool
	Modifier bool
}

// Encode packs a transition into a KeyEvent.
// Only the low 6 bits of code are kept; the scanner guarantees code <= MaxCode.
func Encode(code uint8, press, modifier bool) KeyEvent {
	ev := KeyEvent(code & codeMask)
	if press {
		ev |= pressMask
	}
	if modifier {
		ev |= modifierMask
	}
	return ev
}

// Decode unpacks a KeyEvent into its three fields.
func Decode(ev KeyEvent) (code uint8, press, modifier bool) {
	return ev.Code(), ev.Pressed(), ev.Modifier()
}

// Code returns the 6-bit key or modifier code.
func (ev KeyEvent) Code() uint8 {
	return uint8(ev) & codeMask
}

// Pressed is true for a key-down transition.
func (ev KeyEvent) Pressed() bool {
	return ev&pressMask != 0
}

// Modifier is true when the code indexes the modifier table instead of the keymap.
func (ev KeyEvent) Modifier() bool {
	return ev&modifierMask != 0
}

// Transition returns the decoded form of ev.
func (ev KeyEvent) Transition() Transition {
	return Transition{Code: ev.Code(), Press: ev.Pressed(), Modifier: ev.Modifier()}
}

// Event encodes the transition.
func (t Transition) Event() KeyEvent {
	return Encode(t.Code, t.Press, t.Modifier)
}

func (ev KeyEvent) String() string {
	dir := "up"
	if ev.Pressed() {
		dir = "down"
	}
	if ev.Modifier() {
		return fmt.Sprintf("mod %d %s", ev.Code(), dir)
	}
	return fmt.Sprintf("key %d %s", ev.Code(), dir)
}
