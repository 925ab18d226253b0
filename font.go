package typewriter

import (
	"fmt"
	"image"
	"io"
	"math/bits"

	"github.com/xyproto/burnfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PSF1 header layout.
const (
	psf1Magic0     = 0x36
	psf1Magic1     = 0x04
	psf1HeaderSize = 4
	psf1Mode512    = 0x01
)

const (
	// GlyphCount is the number of glyphs in a font table.
	GlyphCount = 256

	// CursorGlyph is the font cell used as the insert cursor pattern.
	CursorGlyph = 0xCF

	// burnTop is the first pixel line of a burnfont glyph inside its cell.
	burnTop = 5
)

// Faces are the built in fonts by name.
var Faces = map[string]func() *Font{
	"basic": BuiltinFont,
	"burn":  BurnFont,
}

// Font is a table of 8x16 glyphs.
// Raw fonts store ink as 1 with the leftmost pixel in the top bit, like PSF files.
// Prepared fonts are in panel order: leftmost pixel in bit 0 and ink as 0.
type Font struct {
	Glyphs   [GlyphCount][GlyphHeight]byte
	prepared bool
}

// ParsePSF reads a PSF1 font with 16 line glyphs.
// Fonts with 512 glyphs are accepted and truncated to the first 256.
func ParsePSF(data []byte) (*Font, error) {
	if len(data) < psf1HeaderSize {
		return nil, fmt.Errorf("%w: %d byte file is too short for a PSF header", ErrBadFont, len(data))
	}
	if data[0] != psf1Magic0 || data[1] != psf1Magic1 {
		return nil, fmt.Errorf("%w: bad PSF1 magic %#02x %#02x", ErrBadFont, data[0], data[1])
	}
	if charsize := int(data[3]); charsize != GlyphHeight {
		return nil, fmt.Errorf("%w: glyph height is %d, need %d", ErrBadFont, charsize, GlyphHeight)
	}
	count := GlyphCount
	if data[2]&psf1Mode512 != 0 {
		count = 2 * GlyphCount
	}
	body := data[psf1HeaderSize:]
	if len(body) < count*GlyphHeight {
		return nil, fmt.Errorf("%w: %d glyph bytes, need %d", ErrBadFont, len(body), count*GlyphHeight)
	}
	f := &Font{}
	for i := range f.Glyphs {
		copy(f.Glyphs[i][:], body[i*GlyphHeight:])
	}
	return f, nil
}

// LoadPSF reads a whole PSF1 font from r.
func LoadPSF(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParsePSF(data)
}

// Prepared reports whether the glyphs are already in panel order.
func (f *Font) Prepared() bool {
	return f.prepared
}

// Prepare returns a copy of the font converted to panel order.
// A font that is already prepared is returned as is.
func (f *Font) Prepare() *Font {
	if f.prepared {
		return f
	}
	p := &Font{prepared: true}
	for i := range f.Glyphs {
		for m, b := range f.Glyphs[i] {
			p.Glyphs[i][m] = ^bits.Reverse8(b)
		}
	}
	return p
}

// Glyph returns the cell for glyph index i.
func (f *Font) Glyph(i uint8) [GlyphHeight]byte {
	return f.Glyphs[i]
}

// BuiltinFont rasterizes basicfont.Face7x13 into a raw font. Every printable key
// is drawn at the glyph index the tables assign to it, and the cursor cell gets an
// underline bar.
func BuiltinFont() *Font {
	f := &Font{}
	face := basicfont.Face7x13
	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	baseline := (GlyphHeight-face.Height)/2 + face.Ascent
	for i, r := range codePoints {
		clear(img.Pix)
		d.Dot = fixed.P(0, baseline)
		d.DrawString(string(r))
		f.Glyphs[glyphIndices[i]] = rasterCell(img)
	}
	f.Glyphs[CursorGlyph][GlyphHeight-2] = 0xFF
	f.Glyphs[CursorGlyph][GlyphHeight-1] = 0xFF
	return f
}

// BurnFont is BuiltinFont with the glyphs burnfont has replaced by its small
// bold shapes. Keys burnfont can not draw keep the basicfont glyph.
func BurnFont() *Font {
	f := BuiltinFont()
	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))
	for i, r := range codePoints {
		clear(img.Pix)
		if err := burnfont.Draw(img, r, 1, burnTop, 0xFF, 0xFF, 0xFF); err != nil {
			continue
		}
		f.Glyphs[glyphIndices[i]] = rasterCell(img)
	}
	return f
}

func rasterCell(img *image.Alpha) (cell [GlyphHeight]byte) {
	for y := 0; y < GlyphHeight; y++ {
		var b byte
		for x := 0; x < GlyphWidth; x++ {
			b <<= 1
			if img.AlphaAt(x, y).A >= 0x80 {
				b |= 1
			}
		}
		cell[y] = b
	}
	return cell
}
