package typewriter

import (
	"errors"
	"testing"
)

func TestTablesParallel(t *testing.T) {
	if len(codePoints) != len(glyphIndices) {
		t.Fatalf("%d code points but %d glyphs", len(codePoints), len(glyphIndices))
	}
	if n := vkCount - PrintableOffset; n != len(codePoints) {
		t.Fatalf("%d printable keys but %d table entries", n, len(codePoints))
	}
	if vkCount != 250 {
		t.Fatalf("vkCount is %d", vkCount)
	}
}

func TestTranslate(t *testing.T) {
	for _, tc := range []struct {
		vk    VirtualKey
		r     rune
		glyph uint8
	}{
		{VKSpace, ' ', 0x20},
		{VKSmallH, 'h', 'h'},
		{VKCapitalA, 'A', 'A'},
		{VKEuro, '€', 0},
		{VKReplacement, '�', 0},
	} {
		r, g, err := Translate(tc.vk)
		if err != nil {
			t.Fatalf("%s: %v", tc.vk, err)
		}
		if r != tc.r {
			t.Fatalf("%s: rune %U, want %U", tc.vk, r, tc.r)
		}
		if tc.glyph != 0 && g != tc.glyph {
			t.Fatalf("%s: glyph %#02x, want %#02x", tc.vk, g, tc.glyph)
		}
	}
}

func TestTranslateControlKey(t *testing.T) {
	for _, vk := range []VirtualKey{VKNone, VKEnter, VKLang, VirtualKey(vkCount), 255} {
		if _, _, err := Translate(vk); !errors.Is(err, ErrOutOfRangeKey) {
			t.Fatalf("%s: expected ErrOutOfRangeKey, got %v", vk, err)
		}
	}
}

func TestLookupRune(t *testing.T) {
	for _, vk := range PrintableKeys() {
		r, _, _ := Translate(vk)
		got, ok := LookupRune(r)
		if !ok || got != vk {
			t.Fatalf("LookupRune(%q) = %s, %v; want %s", r, got, ok, vk)
		}
	}
	if _, ok := LookupRune('中'); ok {
		t.Fatalf("found a key for a rune not in the tables")
	}
}

func TestVirtualKeyString(t *testing.T) {
	for vk, want := range map[VirtualKey]string{
		VKEnter:         "enter",
		VKSpace:         "space",
		VKSmallQ:        "q",
		VKEuro:          "€",
		VirtualKey(250): "VirtualKey(250)",
	} {
		if s := vk.String(); s != want {
			t.Fatalf("got %q, want %q", s, want)
		}
	}
}
