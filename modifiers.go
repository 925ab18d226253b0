package typewriter

import "strings"

// Modifiers is the register of currently held modifier keys.
type Modifiers uint8

// One bit per physical modifier key.
const (
	ModLeftShift Modifiers = 1 << iota
	ModLeftCtrl
	ModCmd
	ModLeftAlt
	ModRightAlt
	ModRightShift
	ModRightCtrl

	ModNone Modifiers = 0

	ModShift = ModLeftShift | ModRightShift
	ModCtrl  = ModLeftCtrl | ModRightCtrl
)

// Modifier codes as emitted by the wiring table. Bit 5 is the "right" flag,
// so the right Shift and Ctrl reuse the left code plus 32.
const (
	CodeLeftShift  uint8 = 0
	CodeLeftCtrl   uint8 = 2
	CodeCmd        uint8 = 4
	CodeLeftAlt    uint8 = 8
	CodeRightAlt   uint8 = 16
	CodeRightFlag  uint8 = 32
	CodeRightShift       = CodeLeftShift | CodeRightFlag
	CodeRightCtrl        = CodeLeftCtrl | CodeRightFlag
)

// modifierBits maps a modifier-class code to its register bit.
// Codes that map to ModNone are not wired to any modifier.
var modifierBits = [MaxCode + 1]Modifiers{
	CodeLeftShift:  ModLeftShift,
	CodeLeftCtrl:   ModLeftCtrl,
	CodeCmd:        ModCmd,
	CodeLeftAlt:    ModLeftAlt,
	CodeRightAlt:   ModRightAlt,
	CodeRightShift: ModRightShift,
	CodeRightCtrl:  ModRightCtrl,
}

// ModifierBit returns the register bit for a modifier-class code.
func ModifierBit(code uint8) (Modifiers, error) {
	if int(code) >= len(modifierBits) || modifierBits[code] == ModNone {
		return ModNone, keyRangeError("modifier code", int(code), len(modifierBits))
	}
	return modifierBits[code], nil
}

// Apply updates the register for one modifier transition.
// Repeated presses or releases leave the register unchanged.
func (m *Modifiers) Apply(code uint8, press bool) error {
	bit, err := ModifierBit(code)
	if err != nil {
		return err
	}
	if press {
		*m |= bit
	} else {
		*m &^= bit
	}
	return nil
}

// Has reports whether any of the bits in mask are held.
func (m Modifiers) Has(mask Modifiers) bool {
	return m&mask != 0
}

var modifierNames = []struct {
	bit  Modifiers
	name string
}{
	{ModLeftShift, "lshift"},
	{ModLeftCtrl, "lctrl"},
	{ModCmd, "cmd"},
	{ModLeftAlt, "lalt"},
	{ModRightAlt, "ralt"},
	{ModRightShift, "rshift"},
	{ModRightCtrl, "rctrl"},
}

func (m Modifiers) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	for _, mn := range modifierNames {
		if m&mn.bit != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}
