package typewriter

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Logger = log.New(io.Discard, "", 0)
	cfg.VCOMHalfPeriod = 0
	return cfg
}

func newTestDevice(t *testing.T) (*Device, *recorder) {
	rec := &recorder{}
	d, err := NewDevice(testConfig(), rec)
	if err != nil {
		t.Fatal(err)
	}
	return d, rec
}

func press(code uint8) KeyEvent {
	return Encode(code, true, false)
}

func TestDeviceRefreshesOneRow(t *testing.T) {
	d, rec := newTestDevice(t)
	if err := d.Handle(press(35)); err != nil {
		t.Fatal(err)
	}
	if len(rec.frames) != 1 {
		t.Fatalf("one key sent %d frames", len(rec.frames))
	}
	f, err := ParseFrame(rec.frames[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Lines) != GlyphHeight || f.Lines[0].Y != 0 {
		t.Fatalf("refresh covered %d lines from %d", len(f.Lines), f.Lines[0].Y)
	}
}

func TestDeviceIgnoresReleaseAndModifiers(t *testing.T) {
	d, rec := newTestDevice(t)
	for _, ev := range []KeyEvent{Encode(35, false, false), Encode(CodeLeftShift, true, true), Encode(CodeLeftShift, false, true)} {
		if err := d.Handle(ev); err != nil {
			t.Fatal(err)
		}
	}
	if len(rec.frames) != 0 {
		t.Fatalf("sent %d frames for events that draw nothing", len(rec.frames))
	}
	if d.Renderer.Cursor() != (Cursor{}) {
		t.Fatalf("cursor moved")
	}
}

func TestDeviceSink(t *testing.T) {
	d, _ := newTestDevice(t)
	var sb strings.Builder
	d.Sink = &sb
	d.Controls = EditControls
	layout := US()
	strokes, err := Strokes(layout, "hi\nyo")
	if err != nil {
		t.Fatal(err)
	}
	for _, tr := range strokes {
		if err := d.Handle(tr.Event()); err != nil {
			t.Fatal(err)
		}
	}
	if sb.String() != "hi\nyo" {
		t.Fatalf("sink got %q", sb.String())
	}
	if c := d.Renderer.Cursor(); c != (Cursor{Row: 1, Col: 2}) {
		t.Fatalf("cursor at %s", c)
	}
}

func TestDeviceFatalKey(t *testing.T) {
	d, _ := newTestDevice(t)
	if err := d.Handle(press(63)); !Fatal(err) {
		t.Fatalf("expected a fatal error, got %v", err)
	}
}

func TestEditBackspace(t *testing.T) {
	d, _ := newTestDevice(t)
	d.Controls = EditControls
	d.Handle(press(35))
	d.Handle(press(14))
	if d.Renderer.Cursor() != (Cursor{}) {
		t.Fatalf("backspace left the cursor at %s", d.Renderer.Cursor())
	}
	if d.Framebuffer.Cell(0, 0) != NewFramebuffer().Cell(0, 0) {
		t.Fatalf("backspace did not blank the cell")
	}
}

func TestEditTab(t *testing.T) {
	d, _ := newTestDevice(t)
	d.Controls = EditControls
	tab, ok := US().Code(VKTab)
	if !ok {
		t.Fatalf("no tab key")
	}
	for _, tc := range []struct{ from, want Cursor }{
		{Cursor{Row: 3, Col: 10}, Cursor{Row: 3, Col: 16}},
		{Cursor{Row: 3, Col: 35}, Cursor{Row: 4}},
		{Cursor{Row: 3, Col: 32}, Cursor{Row: 4}},
		{Cursor{Row: Rows - 1, Col: 39}, Cursor{}},
	} {
		d.Renderer.SetCursor(tc.from)
		if err := d.Handle(press(tab)); err != nil {
			t.Fatal(err)
		}
		if c := d.Renderer.Cursor(); c != tc.want {
			t.Fatalf("tab from %s went to %s, want %s", tc.from, c, tc.want)
		}
	}
}

type failingSink struct{}

func (failingSink) WriteRune(rune) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestEditEnterSinkError(t *testing.T) {
	var logged bytes.Buffer
	cfg := testConfig()
	cfg.Logger = log.New(&logged, "", 0)
	d, err := NewDevice(cfg, &recorder{})
	if err != nil {
		t.Fatal(err)
	}
	d.Controls = EditControls
	d.Sink = failingSink{}
	enter, _ := US().Code(VKEnter)
	if err := d.Handle(press(enter)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logged.String(), "text sink") {
		t.Fatalf("sink error not logged: %q", logged.String())
	}
	if d.Renderer.Cursor() != (Cursor{Row: 1}) {
		t.Fatalf("enter left the cursor at %s", d.Renderer.Cursor())
	}
}

func TestCursorOverlayRestored(t *testing.T) {
	d, _ := newTestDevice(t)
	d.CursorMode = CursorReplace
	d.Start()
	if d.Framebuffer.Cell(0, 0) == NewFramebuffer().Cell(0, 0) {
		t.Fatalf("no cursor drawn at start")
	}
	d.Handle(press(35))
	want := d.Renderer.font.Glyph('h')
	if d.Framebuffer.Cell(0, 0) != want {
		t.Fatalf("cursor left marks on the typed cell")
	}
	if d.Framebuffer.Cell(1, 0) == NewFramebuffer().Cell(1, 0) {
		t.Fatalf("cursor did not follow")
	}
}

func TestPipelineRun(t *testing.T) {
	rec := &recorder{}
	cfg := testConfig()
	d, err := NewDevice(cfg, rec)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	d.Sink = &sb
	strokes, _ := Strokes(US(), "hello world")
	p := NewPipeline(cfg, &ScriptScanner{Transitions: strokes}, d)
	p.Events = NewEventChannel(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "hello world" {
		t.Fatalf("typed %q", sb.String())
	}
	if c := d.Renderer.Cursor(); c != (Cursor{Col: 11}) {
		t.Fatalf("cursor at %s", c)
	}
	if !bytes.Equal(rec.frames[0], []byte{CmdClear, 0}) {
		t.Fatalf("run did not start with a clear")
	}
}

func TestPipelineStopsOnFatal(t *testing.T) {
	cfg := testConfig()
	d, _ := NewDevice(cfg, &recorder{})
	script := &ScriptScanner{Transitions: []Transition{{Code: 60, Press: true}, {Code: 35, Press: true}}}
	p := NewPipeline(cfg, script, d)
	if err := p.Run(context.Background()); !Fatal(err) {
		t.Fatalf("expected a fatal error, got %v", err)
	}
}

func TestPipelineRepeat(t *testing.T) {
	cfg := testConfig()
	cfg.Repeat = RepeatOnHold(5*time.Millisecond, 5*time.Millisecond)
	d, _ := NewDevice(cfg, &recorder{})
	ch := NewEventChannel(DefaultSendTimeout)
	ch.Send(press(35))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Consume(ctx, ch, d, cfg.Repeat) }()
	time.Sleep(60 * time.Millisecond)
	ch.Send(Encode(35, false, false))
	time.Sleep(20 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if col := d.Renderer.Cursor().Col; col < 3 {
		t.Fatalf("held key only printed %d times", col)
	}
}
