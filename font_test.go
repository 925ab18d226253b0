package typewriter

import (
	"bytes"
	"errors"
	"testing"
)

func psfBytes(mode byte, count int) []byte {
	data := []byte{psf1Magic0, psf1Magic1, mode, GlyphHeight}
	for i := 0; i < count*GlyphHeight; i++ {
		data = append(data, byte(i))
	}
	return data
}

func TestParsePSF(t *testing.T) {
	f, err := ParsePSF(psfBytes(0, GlyphCount))
	if err != nil {
		t.Fatal(err)
	}
	if f.Glyphs[1][0] != GlyphHeight || f.Glyphs[255][15] != 0xFF {
		t.Fatalf("glyphs are not laid out in 16 byte cells")
	}
	if f.Prepared() {
		t.Fatalf("a parsed font is raw")
	}
}

func TestParsePSF512(t *testing.T) {
	if _, err := LoadPSF(bytes.NewReader(psfBytes(psf1Mode512, 2*GlyphCount))); err != nil {
		t.Fatal(err)
	}
	if _, err := ParsePSF(psfBytes(psf1Mode512, GlyphCount)); !errors.Is(err, ErrBadFont) {
		t.Fatalf("short 512 glyph font: %v", err)
	}
}

func TestParsePSFErrors(t *testing.T) {
	bad := psfBytes(0, GlyphCount)
	bad[0] = 0x72
	tall := psfBytes(0, GlyphCount)
	tall[3] = 14
	for name, data := range map[string][]byte{
		"short":  {psf1Magic0},
		"magic":  bad,
		"height": tall,
		"body":   psfBytes(0, 10),
	} {
		if _, err := ParsePSF(data); !errors.Is(err, ErrBadFont) {
			t.Fatalf("%s: got %v", name, err)
		}
	}
}

func TestPrepare(t *testing.T) {
	f := &Font{}
	f.Glyphs[7][3] = 0x80
	f.Glyphs[7][4] = 0x0F
	p := f.Prepare()
	if !p.Prepared() || f.Prepared() {
		t.Fatalf("prepare should return a new prepared font")
	}
	if p.Glyphs[7][3] != 0xFE || p.Glyphs[7][4] != 0x0F {
		t.Fatalf("got %#02x %#02x", p.Glyphs[7][3], p.Glyphs[7][4])
	}
	if p.Glyphs[0][0] != 0xFF {
		t.Fatalf("empty glyph rows should prepare to white")
	}
	if p.Prepare() != p {
		t.Fatalf("preparing twice should be a no-op")
	}
}

func TestBuiltinFont(t *testing.T) {
	f := BuiltinFont()
	ink := func(g [GlyphHeight]byte) (n int) {
		for _, b := range g {
			for ; b != 0; b &= b - 1 {
				n++
			}
		}
		return n
	}
	if ink(f.Glyph(' ')) != 0 {
		t.Fatalf("space has ink")
	}
	for _, r := range "Hhw!0" {
		if ink(f.Glyph(byte(r))) == 0 {
			t.Fatalf("%q has no ink", r)
		}
	}
	if ink(f.Glyph(CursorGlyph)) != 2*GlyphWidth {
		t.Fatalf("cursor glyph is not an underline")
	}
}

func TestBurnFont(t *testing.T) {
	basic, burn := BuiltinFont(), BurnFont()
	a := burn.Glyph('A')
	if a[burnTop] != 0x18 || a[burnTop+3] != 0x7E {
		t.Fatalf("unexpected burnfont A: % x", a)
	}
	if a == basic.Glyph('A') {
		t.Fatalf("A was not redrawn")
	}
	if burn.Glyph('#') != basic.Glyph('#') {
		t.Fatalf("# should fall back to the basic face")
	}
	if burn.Glyph(CursorGlyph) != basic.Glyph(CursorGlyph) {
		t.Fatalf("cursor glyph changed")
	}
}
