package typewriter

// Panel geometry.
const (
	Width        = 320
	Height       = 240
	BytesPerLine = Width / 8
	FrameSize    = Width * Height / 8

	GlyphWidth  = 8
	GlyphHeight = 16
	Columns     = Width / GlyphWidth
	Rows        = Height / GlyphHeight
)

// White is the byte value of eight unlit pixels. The panel shows a set bit as white.
const White = 0xFF

// LineRange is an inclusive range of pixel lines.
type LineRange struct {
	From, To int
}

// Len returns the number of lines in the range.
func (r LineRange) Len() int {
	if r.To < r.From {
		return 0
	}
	return r.To - r.From + 1
}

// CellLines returns the pixel lines covered by text row row.
func CellLines(row int) LineRange {
	return LineRange{From: row * GlyphHeight, To: row*GlyphHeight + GlyphHeight - 1}
}

// Framebuffer is the packed 1 bit per pixel image of the panel.
// Pixel x of a line is bit x&7 of byte x/8, least significant bit first.
type Framebuffer struct {
	buf       [FrameSize]byte
	dirtyFrom int
	dirtyTo   int
}

// NewFramebuffer returns a cleared (all white) framebuffer.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{}
	fb.Clear()
	return fb
}

func pixelAddr(x, y int) (int, byte) {
	return (y*Width + x) / 8, 1 << (x & 7)
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// SetPixel sets or clears one pixel bit. Coordinates outside the panel are ignored.
func (fb *Framebuffer) SetPixel(x, y int, on bool) {
	if !inBounds(x, y) {
		return
	}
	i, mask := pixelAddr(x, y)
	if on {
		fb.buf[i] |= mask
	} else {
		fb.buf[i] &^= mask
	}
	fb.touch(y, y)
}

// GetPixel returns the pixel bit, or false outside the panel.
func (fb *Framebuffer) GetPixel(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	i, mask := pixelAddr(x, y)
	return fb.buf[i]&mask != 0
}

// Line returns the bytes of pixel line y. The slice aliases the framebuffer.
func (fb *Framebuffer) Line(y int) []byte {
	return fb.buf[y*BytesPerLine : (y+1)*BytesPerLine]
}

// Bytes returns the whole framebuffer. The slice aliases the framebuffer.
func (fb *Framebuffer) Bytes() []byte {
	return fb.buf[:]
}

// Fill sets every byte to b.
func (fb *Framebuffer) Fill(b byte) {
	for i := range fb.buf {
		fb.buf[i] = b
	}
	fb.touch(0, Height-1)
}

// Clear fills the framebuffer with white.
func (fb *Framebuffer) Clear() {
	fb.Fill(White)
}

// Cell returns the 16 bytes of the text cell at col, row.
func (fb *Framebuffer) Cell(col, row int) (cell [GlyphHeight]byte) {
	for m := range cell {
		cell[m] = fb.buf[(row*GlyphHeight+m)*BytesPerLine+col]
	}
	return cell
}

// SetCell overwrites the text cell at col, row.
func (fb *Framebuffer) SetCell(col, row int, cell [GlyphHeight]byte) {
	for m, b := range cell {
		fb.buf[(row*GlyphHeight+m)*BytesPerLine+col] = b
	}
	lines := CellLines(row)
	fb.touch(lines.From, lines.To)
}

func (fb *Framebuffer) touch(from, to int) {
	if fb.dirtyTo < fb.dirtyFrom {
		fb.dirtyFrom, fb.dirtyTo = from, to
		return
	}
	fb.dirtyFrom = min(fb.dirtyFrom, from)
	fb.dirtyTo = max(fb.dirtyTo, to)
}

// Dirty returns the lines changed since the last call to MarkClean.
func (fb *Framebuffer) Dirty() (LineRange, bool) {
	r := LineRange{From: fb.dirtyFrom, To: fb.dirtyTo}
	return r, r.Len() > 0
}

// MarkClean forgets the changed lines.
func (fb *Framebuffer) MarkClean() {
	fb.dirtyFrom, fb.dirtyTo = 0, -1
}
