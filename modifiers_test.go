package typewriter

import (
	"errors"
	"testing"
)

var modifierCodes = []uint8{
	CodeLeftShift, CodeLeftCtrl, CodeCmd, CodeLeftAlt, CodeRightAlt, CodeRightShift, CodeRightCtrl,
}

func TestModifierIdempotent(t *testing.T) {
	for _, code := range modifierCodes {
		var m Modifiers
		m.Apply(code, true)
		once := m
		m.Apply(code, true)
		if m != once {
			t.Fatalf("second press of %d changed %s to %s", code, once, m)
		}
		m.Apply(code, false)
		m.Apply(code, false)
		if m != ModNone {
			t.Fatalf("release of %d left %s", code, m)
		}
	}
}

func TestModifiersIndependent(t *testing.T) {
	var m Modifiers
	for _, code := range modifierCodes {
		if err := m.Apply(code, true); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Apply(CodeRightShift, false); err != nil {
		t.Fatal(err)
	}
	if !m.Has(ModLeftShift) || m.Has(ModRightShift) {
		t.Fatalf("releasing right shift touched left shift: %s", m)
	}
	if !m.Has(ModShift) {
		t.Fatalf("left shift should still count as shift")
	}
}

func TestModifierOutOfRange(t *testing.T) {
	var m Modifiers
	for _, code := range []uint8{1, 3, 33, MaxCode} {
		if err := m.Apply(code, true); !errors.Is(err, ErrOutOfRangeKey) {
			t.Fatalf("code %d: expected ErrOutOfRangeKey, got %v", code, err)
		}
	}
	if m != ModNone {
		t.Fatalf("failed apply changed the register to %s", m)
	}
}

func TestModifiersString(t *testing.T) {
	if s := (ModLeftCtrl | ModRightAlt).String(); s != "lctrl+ralt" {
		t.Fatalf("got %q", s)
	}
	if s := ModNone.String(); s != "none" {
		t.Fatalf("got %q", s)
	}
}

func TestWiringModifiers(t *testing.T) {
	seen := map[uint8]bool{}
	for pos := uint8(0); pos < 64; pos++ {
		tr, ok := WireTransition(pos, true)
		if !ok || !tr.Modifier {
			continue
		}
		if _, err := ModifierBit(tr.Code); err != nil {
			t.Fatalf("wired modifier at %d has code %d: %v", pos, tr.Code, err)
		}
		seen[tr.Code] = true
	}
	if len(seen) != len(modifierCodes) {
		t.Fatalf("wiring has %d modifiers, want %d", len(seen), len(modifierCodes))
	}
}
