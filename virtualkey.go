package typewriter

import (
	"fmt"
	"sync"
)

// VirtualKey identifies a logical key, independent of where it sits in the matrix.
type VirtualKey uint8

// PrintableOffset is the first printable VirtualKey. Everything below it is a control key.
const PrintableOffset = 28

// Printable reports whether vk produces a character.
func (vk VirtualKey) Printable() bool {
	return vk >= PrintableOffset && int(vk) < vkCount
}

// Control reports whether vk is a control key such as Enter or Backspace.
func (vk VirtualKey) Control() bool {
	return vk < PrintableOffset
}

func (vk VirtualKey) String() string {
	switch {
	case vk.Control():
		return controlNames[vk]
	case vk.Printable():
		r := codePoints[vk-PrintableOffset]
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	return fmt.Sprintf("VirtualKey(%d)", uint8(vk))
}

// Translate returns the Unicode code point and the font glyph index of a printable key.
func Translate(vk VirtualKey) (rune, uint8, error) {
	if !vk.Printable() {
		return 0, 0, keyRangeError("virtual key", int(vk), vkCount)
	}
	i := vk - PrintableOffset
	return codePoints[i], glyphIndices[i], nil
}

var (
	runeIndex     map[rune]VirtualKey
	runeIndexOnce sync.Once
)

// LookupRune finds the printable key that produces r.
func LookupRune(r rune) (VirtualKey, bool) {
	runeIndexOnce.Do(func() {
		runeIndex = make(map[rune]VirtualKey, len(codePoints))
		for i, cp := range codePoints {
			runeIndex[cp] = VirtualKey(i + PrintableOffset)
		}
	})
	vk, ok := runeIndex[r]
	return vk, ok
}

// PrintableKeys returns every printable key in table order.
func PrintableKeys() []VirtualKey {
	keys := make([]VirtualKey, 0, len(codePoints))
	for vk := VirtualKey(PrintableOffset); int(vk) < vkCount; vk++ {
		keys = append(keys, vk)
	}
	return keys
}
