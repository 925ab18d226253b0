package typewriter

import (
	"fmt"
	"time"
)

// ActionKind says what a resolved key event asks the device to do.
type ActionKind uint8

const (
	// ActionNone is a release of an ordinary key. Nothing happens.
	ActionNone ActionKind = iota
	// ActionModifier updated the modifier register.
	ActionModifier
	// ActionControl is a control key press.
	ActionControl
	// ActionPrintable is a printable key press.
	ActionPrintable
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionModifier:
		return "modifier"
	case ActionControl:
		return "control"
	case ActionPrintable:
		return "printable"
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action is the outcome of resolving one KeyEvent.
type Action struct {
	Kind ActionKind
	Key  VirtualKey
	Mods Modifiers
}

// Resolver owns the modifier register and turns key events into actions.
type Resolver struct {
	keymap  Keymap
	mods    Modifiers
	held    KeyEvent
	holding bool
}

// NewResolver returns a resolver with no modifiers held.
func NewResolver(km Keymap) *Resolver {
	return &Resolver{keymap: km}
}

// Modifiers returns the modifiers currently held.
func (r *Resolver) Modifiers() Modifiers {
	return r.mods
}

// Resolve applies ev. Modifier events only update the register, releases of
// other keys are ignored, and presses are looked up in the keymap.
func (r *Resolver) Resolve(ev KeyEvent) (Action, error) {
	code, press, modifier := Decode(ev)
	if modifier {
		if err := r.mods.Apply(code, press); err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionModifier, Mods: r.mods}, nil
	}
	if !press {
		if r.holding && r.held.Code() == code {
			r.holding = false
		}
		return Action{Kind: ActionNone, Mods: r.mods}, nil
	}
	vk, err := r.keymap.Lookup(code, r.mods)
	if err != nil {
		return Action{}, err
	}
	r.held, r.holding = ev, true
	kind := ActionPrintable
	if vk.Control() {
		kind = ActionControl
	}
	return Action{Kind: kind, Key: vk, Mods: r.mods}, nil
}

// Held returns the press event of the ordinary key still held down, if any.
func (r *Resolver) Held() (KeyEvent, bool) {
	return r.held, r.holding
}

// RepeatPolicy controls what happens while an ordinary key is held down.
// The zero value acts once per press, like a typewriter.
type RepeatPolicy struct {
	Delay    time.Duration
	Interval time.Duration
}

// RepeatOneShot acts on the down stroke only.
var RepeatOneShot = RepeatPolicy{}

// RepeatOnHold repeats the held key after delay, then every interval.
func RepeatOnHold(delay, interval time.Duration) RepeatPolicy {
	return RepeatPolicy{Delay: delay, Interval: interval}
}

// Enabled reports whether held keys repeat.
func (p RepeatPolicy) Enabled() bool {
	return p.Delay > 0 && p.Interval > 0
}

func (p RepeatPolicy) String() string {
	if !p.Enabled() {
		return "oneshot"
	}
	return fmt.Sprintf("hold %v/%v", p.Delay, p.Interval)
}
