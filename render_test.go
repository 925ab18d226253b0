package typewriter

import "testing"

func newTestRenderer() (*Renderer, *Framebuffer) {
	fb := NewFramebuffer()
	return NewRenderer(fb, BuiltinFont()), fb
}

func TestCursorWraparound(t *testing.T) {
	r, _ := newTestRenderer()
	r.SetCursor(Cursor{Row: 3})
	for i := 0; i < Columns; i++ {
		r.Render('x')
	}
	if c := r.Cursor(); c != (Cursor{Row: 4, Col: 0}) {
		t.Fatalf("cursor after a full row is %s", c)
	}
}

func TestCursorWrapsToTop(t *testing.T) {
	r, _ := newTestRenderer()
	r.SetCursor(Cursor{Row: Rows - 1, Col: Columns - 1})
	c, lines := r.Render('x')
	if c != (Cursor{}) {
		t.Fatalf("cursor after the last cell is %s", c)
	}
	if lines != CellLines(Rows-1) {
		t.Fatalf("render reported lines %+v", lines)
	}
	if c.Retreat() != (Cursor{Row: Rows - 1, Col: Columns - 1}) {
		t.Fatalf("retreat does not undo advance")
	}
}

func TestRenderCopiesGlyph(t *testing.T) {
	r, fb := newTestRenderer()
	r.SetCursor(Cursor{Row: 2, Col: 5})
	r.Render('A')
	want := BuiltinFont().Prepare().Glyph('A')
	if got := fb.Cell(5, 2); got != want {
		t.Fatalf("cell holds %v, want %v", got, want)
	}
	if fb.Cell(6, 2) != fb.Cell(7, 2) {
		t.Fatalf("render touched the next cell")
	}
}

func TestHelloWorldScenario(t *testing.T) {
	r, fb := newTestRenderer()
	res := NewResolver(US())
	for _, code := range []uint8{35, 18, 38, 38, 24, 53, 17, 24, 19, 38, 32} {
		act, err := res.Resolve(Encode(code, true, false))
		if err != nil {
			t.Fatal(err)
		}
		if act.Kind != ActionPrintable {
			t.Fatalf("code %d resolved to %+v", code, act)
		}
		_, glyph, err := Translate(act.Key)
		if err != nil {
			t.Fatal(err)
		}
		r.Render(glyph)
	}
	if c := r.Cursor(); c != (Cursor{Row: 0, Col: 11}) {
		t.Fatalf("cursor ended at %s", c)
	}
	font := BuiltinFont().Prepare()
	for col, ch := range "hello world" {
		vk, _ := LookupRune(ch)
		_, glyph, _ := Translate(vk)
		if fb.Cell(col, 0) != font.Glyph(glyph) {
			t.Fatalf("column %d does not hold %q", col, ch)
		}
	}
}

func TestCursorOverlay(t *testing.T) {
	r, fb := newTestRenderer()
	r.SetCursor(Cursor{Row: 1, Col: 1})
	r.Render('M')
	at := Cursor{Row: 1, Col: 1}
	before := fb.Cell(1, 1)

	r.DrawCursorAt(at, CursorReplace)
	after := fb.Cell(1, 1)
	for m := range before {
		if after[m] != ^before[m] {
			t.Fatalf("replace cursor did not invert row %d", m)
		}
	}
	r.DrawCursorAt(at, CursorReplace)
	if fb.Cell(1, 1) != before {
		t.Fatalf("inverting twice is not the identity")
	}

	pattern := r.font.Glyph(CursorGlyph)
	r.DrawCursorAt(at, CursorInsert)
	got := fb.Cell(1, 1)
	for m := range got {
		if got[m] != before[m]|^pattern[m] {
			t.Fatalf("insert cursor row %d is %#02x", m, got[m])
		}
	}

	if lines := r.DrawCursorAt(at, CursorNormal); lines.Len() != 0 {
		t.Fatalf("normal cursor reported lines %+v", lines)
	}
}

func TestSetCursorWraps(t *testing.T) {
	r, _ := newTestRenderer()
	r.SetCursor(Cursor{Row: -1, Col: Columns})
	if c := r.Cursor(); c != (Cursor{Row: Rows - 1, Col: 0}) {
		t.Fatalf("got %s", c)
	}
}

func TestParseCursorMode(t *testing.T) {
	for _, m := range []CursorMode{CursorInsert, CursorReplace, CursorNormal} {
		got, err := ParseCursorMode(m.String())
		if err != nil || got != m {
			t.Fatalf("%s: got %s, %v", m, got, err)
		}
	}
	if _, err := ParseCursorMode("blink"); err == nil {
		t.Fatalf("expected an error")
	}
}
