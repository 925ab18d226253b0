package typewriter

import "testing"

func TestHello(t *testing.T) {
	d, rec := newTestDevice(t)
	if err := Hello(d); err != nil {
		t.Fatal(err)
	}
	last, err := ParseFrame(rec.frames[len(rec.frames)-1])
	if err != nil {
		t.Fatal(err)
	}
	if len(last.Lines) != Height {
		t.Fatalf("hello did not end with a full refresh")
	}
	font := d.Renderer.font
	if d.Framebuffer.Cell(0, 0) != font.Glyph('H') {
		t.Fatalf("greeting missing from the top row")
	}
	if d.Framebuffer.Cell(Columns-1, Rows-1) != font.Glyph('!') {
		t.Fatalf("greeting not right aligned on the bottom row")
	}
	fb := d.Framebuffer
	if fb.GetPixel(50, 20) || fb.GetPixel(100, 50) || !fb.GetPixel(50, 21) {
		t.Fatalf("test lines missing")
	}
}
