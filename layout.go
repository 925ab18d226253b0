package typewriter

// Keymap turns a logical key code into a VirtualKey.
type Keymap interface {
	Lookup(code uint8, mods Modifiers) (VirtualKey, error)
}

// Layer overrides part of a base table while any modifier in Mask is held.
// A VKNone entry falls through to the base table.
type Layer struct {
	Mask Modifiers
	Keys []VirtualKey
}

// Layout is a table-driven Keymap. Layers are tried in order.
type Layout struct {
	Name   string
	Base   []VirtualKey
	Layers []Layer
}

// Lookup returns the key for code. Codes outside the base table are an error.
func (l *Layout) Lookup(code uint8, mods Modifiers) (VirtualKey, error) {
	if int(code) >= len(l.Base) {
		return VKNone, keyRangeError("key code", int(code), len(l.Base))
	}
	for _, layer := range l.Layers {
		if !mods.Has(layer.Mask) || int(code) >= len(layer.Keys) {
			continue
		}
		if vk := layer.Keys[code]; vk != VKNone {
			return vk, nil
		}
	}
	return l.Base[code], nil
}

// Code finds the first code that maps to vk on the base table.
func (l *Layout) Code(vk VirtualKey) (uint8, bool) {
	for code, v := range l.Base {
		if v == vk && code != 0 {
			return uint8(code), true
		}
	}
	return 0, false
}

// usKeys is indexed by the codes emitted by the wiring table.
var usKeys = []VirtualKey{
	VKNone, VKEsc, VK1, VK2, VK3, VK4, VK5, VK6,
	VK7, VK8, VK9, VK0, VKMinus, VKEqual, VKBackspace, VKTab,
	VKSmallQ, VKSmallW, VKSmallE, VKSmallR, VKSmallT, VKSmallY, VKSmallU, VKSmallI,
	VKSmallO, VKSmallP, VKLeftBracket, VKRightBracket, VKEnter, VKCapsLock, VKSmallA, VKSmallS,
	VKSmallD, VKSmallF, VKSmallG, VKSmallH, VKSmallJ, VKSmallK, VKSmallL, VKSemicolon,
	VKApostrophe, VKBackslash, VKLess, VKSmallZ, VKSmallX, VKSmallC, VKSmallV, VKSmallB,
	VKSmallN, VKSmallM, VKComma, VKDot, VKSlash, VKSpace, VKSys, VKLang,
}

// US returns the US layout. It has no modifier layers, so Shift does not
// change the produced key.
func US() *Layout {
	return &Layout{Name: "us", Base: usKeys}
}

// Layouts lists the layouts known by name.
var Layouts = map[string]func() *Layout{
	"us": US,
}
