package typewriter

import "fmt"

// Cursor is the text cell the next glyph is drawn into.
type Cursor struct {
	Row, Col int
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Advance moves one cell right, carrying into the next row.
// Rows wrap from the bottom of the panel back to the top.
func (c Cursor) Advance() Cursor {
	c.Col++
	if c.Col >= Columns {
		c.Col = 0
		c.Row = (c.Row + 1) % Rows
	}
	return c
}

// Retreat is the inverse of Advance.
func (c Cursor) Retreat() Cursor {
	c.Col--
	if c.Col < 0 {
		c.Col = Columns - 1
		c.Row = (c.Row + Rows - 1) % Rows
	}
	return c
}

// CursorMode selects how the cursor is drawn over a cell.
type CursorMode int

const (
	// CursorInsert ORs the cursor glyph into the cell.
	CursorInsert CursorMode = iota
	// CursorReplace inverts the cell.
	CursorReplace
	// CursorNormal draws no cursor.
	CursorNormal
)

var cursorModeNames = [...]string{"insert", "replace", "normal"}

func (m CursorMode) String() string {
	if m < 0 || int(m) >= len(cursorModeNames) {
		return fmt.Sprintf("CursorMode(%d)", int(m))
	}
	return cursorModeNames[m]
}

// ParseCursorMode is the inverse of CursorMode.String.
func ParseCursorMode(s string) (CursorMode, error) {
	for i, name := range cursorModeNames {
		if name == s {
			return CursorMode(i), nil
		}
	}
	return CursorNormal, fmt.Errorf("unknown cursor mode %q", s)
}

// Renderer draws glyphs from a prepared font into a framebuffer and owns the cursor.
type Renderer struct {
	fb     *Framebuffer
	font   *Font
	cursor Cursor
}

// NewRenderer returns a renderer with the cursor at the top left cell.
// The font is prepared for the panel if it is not already.
func NewRenderer(fb *Framebuffer, f *Font) *Renderer {
	return &Renderer{fb: fb, font: f.Prepare()}
}

// Cursor returns the current cursor position.
func (r *Renderer) Cursor() Cursor {
	return r.cursor
}

// SetCursor moves the cursor. Positions outside the panel wrap around.
func (r *Renderer) SetCursor(c Cursor) {
	c.Col = ((c.Col % Columns) + Columns) % Columns
	c.Row = ((c.Row % Rows) + Rows) % Rows
	r.cursor = c
}

// Home moves the cursor to the top left cell.
func (r *Renderer) Home() {
	r.cursor = Cursor{}
}

// Render draws glyph at the cursor, advances the cursor and returns the new
// position together with the pixel lines that changed.
func (r *Renderer) Render(glyph uint8) (Cursor, LineRange) {
	at := r.cursor
	r.fb.SetCell(at.Col, at.Row, r.font.Glyph(glyph))
	r.cursor = at.Advance()
	return r.cursor, CellLines(at.Row)
}

// ClearCell blanks the cell at c.
func (r *Renderer) ClearCell(c Cursor) LineRange {
	var blank [GlyphHeight]byte
	for m := range blank {
		blank[m] = White
	}
	r.fb.SetCell(c.Col, c.Row, blank)
	return CellLines(c.Row)
}

// DrawCursor overlays the cursor on the cell at the cursor position.
func (r *Renderer) DrawCursor(mode CursorMode) LineRange {
	return r.DrawCursorAt(r.cursor, mode)
}

// DrawCursorAt overlays the cursor on the cell at c.
func (r *Renderer) DrawCursorAt(c Cursor, mode CursorMode) LineRange {
	if mode == CursorNormal {
		return LineRange{From: 0, To: -1}
	}
	cell := r.fb.Cell(c.Col, c.Row)
	pattern := r.font.Glyph(CursorGlyph)
	for m := range cell {
		if mode == CursorInsert {
			cell[m] |= ^pattern[m]
		} else {
			cell[m] = ^cell[m]
		}
	}
	r.fb.SetCell(c.Col, c.Row, cell)
	return CellLines(c.Row)
}
