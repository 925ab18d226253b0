package typewriter

import (
	"fmt"
	"log"
)

// TextSink receives the characters typed on the device.
// *bufio.Writer, *strings.Builder and *bytes.Buffer all satisfy it.
type TextSink interface {
	WriteRune(r rune) (int, error)
}

// ControlHandler acts on control keys. It returns the pixel lines it changed so
// they can be refreshed.
type ControlHandler interface {
	HandleControl(d *Device, vk VirtualKey, mods Modifiers) ([]LineRange, error)
}

// ControlFunc adapts a function to the ControlHandler interface.
type ControlFunc func(d *Device, vk VirtualKey, mods Modifiers) ([]LineRange, error)

// HandleControl calls f.
func (f ControlFunc) HandleControl(d *Device, vk VirtualKey, mods Modifiers) ([]LineRange, error) {
	return f(d, vk, mods)
}

// Device is the state owned by the consuming side of the pipeline: the modifier
// register, the cursor and the framebuffer. It must be used from one goroutine.
type Device struct {
	Resolver    *Resolver
	Renderer    *Renderer
	Framebuffer *Framebuffer
	Panel       *Panel

	// Controls handles control keys. Nil means they are logged and dropped.
	Controls ControlHandler
	// Sink, if set, receives every printed character.
	Sink TextSink

	CursorMode CursorMode

	logger  *log.Logger
	verbose bool
	overlay struct {
		shown bool
		at    Cursor
		under [GlyphHeight]byte
	}
}

// NewDevice wires a device to a transport using the layout, font and cursor mode in cfg.
func NewDevice(cfg Config, t Transport) (*Device, error) {
	km, err := cfg.LoadLayout()
	if err != nil {
		return nil, err
	}
	f, err := cfg.LoadFont()
	if err != nil {
		return nil, err
	}
	fb := NewFramebuffer()
	return &Device{
		Resolver:    NewResolver(km),
		Renderer:    NewRenderer(fb, f),
		Framebuffer: fb,
		Panel:       NewPanel(t, fb),
		CursorMode:  cfg.CursorMode,
		logger:      cfg.logger(),
		verbose:     cfg.Verbose,
	}, nil
}

func (d *Device) logf(format string, args ...any) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}

func (d *Device) debugf(format string, args ...any) {
	if d.verbose {
		d.logf(format, args...)
	}
}

// Start clears the panel and the framebuffer and shows the cursor.
func (d *Device) Start() error {
	d.Framebuffer.Clear()
	d.overlay.shown = false
	if err := d.Panel.Clear(); err != nil {
		return err
	}
	d.Framebuffer.MarkClean()
	return d.refresh(d.showCursor())
}

// Handle runs one key event through the resolver, translator, renderer and panel.
func (d *Device) Handle(ev KeyEvent) error {
	act, err := d.Resolver.Resolve(ev)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", ev, err)
	}
	d.debugf("%s: %s %s mods=%s", ev, act.Kind, act.Key, act.Mods)
	switch act.Kind {
	case ActionPrintable:
		return d.print(act.Key)
	case ActionControl:
		return d.control(act.Key, act.Mods)
	}
	return nil
}

func (d *Device) print(vk VirtualKey) error {
	r, glyph, err := Translate(vk)
	if err != nil {
		return fmt.Errorf("translate %s: %w", vk, err)
	}
	lines := []LineRange{d.hideCursor()}
	_, drawn := d.Renderer.Render(glyph)
	lines = append(lines, drawn, d.showCursor())
	if d.Sink != nil {
		if _, err := d.Sink.WriteRune(r); err != nil {
			d.logf("text sink: %v", err)
		}
	}
	return d.refresh(lines...)
}

func (d *Device) control(vk VirtualKey, mods Modifiers) error {
	if d.Controls == nil {
		d.debugf("control key %s ignored", vk)
		return nil
	}
	lines := []LineRange{d.hideCursor()}
	changed, err := d.Controls.HandleControl(d, vk, mods)
	if err != nil {
		return err
	}
	lines = append(lines, changed...)
	lines = append(lines, d.showCursor())
	return d.refresh(lines...)
}

// WriteString draws s through the renderer, skipping characters the tables can not show.
func (d *Device) WriteString(s string) error {
	lines := []LineRange{d.hideCursor()}
	for _, r := range s {
		vk, ok := LookupRune(r)
		if !ok {
			d.debugf("no key for %q", r)
			continue
		}
		_, glyph, err := Translate(vk)
		if err != nil {
			return err
		}
		_, drawn := d.Renderer.Render(glyph)
		lines = append(lines, drawn)
	}
	lines = append(lines, d.showCursor())
	return d.refresh(lines...)
}

func (d *Device) hideCursor() LineRange {
	if !d.overlay.shown {
		return LineRange{From: 0, To: -1}
	}
	d.overlay.shown = false
	d.Framebuffer.SetCell(d.overlay.at.Col, d.overlay.at.Row, d.overlay.under)
	return CellLines(d.overlay.at.Row)
}

func (d *Device) showCursor() LineRange {
	if d.CursorMode == CursorNormal {
		return LineRange{From: 0, To: -1}
	}
	at := d.Renderer.Cursor()
	d.overlay.at = at
	d.overlay.under = d.Framebuffer.Cell(at.Col, at.Row)
	d.overlay.shown = true
	return d.Renderer.DrawCursor(d.CursorMode)
}

// refresh sends each distinct non-empty range once.
func (d *Device) refresh(lines ...LineRange) error {
	sent := make(map[LineRange]bool, len(lines))
	for _, r := range lines {
		if r.Len() == 0 || sent[r] {
			continue
		}
		sent[r] = true
		if err := d.Panel.Refresh(r); err != nil {
			return err
		}
	}
	d.Framebuffer.MarkClean()
	return nil
}

// EditControls is a ControlHandler for plain text entry: Enter starts a new line,
// Backspace and Delete erase, Home and the arrow keys move the cursor, and
// Insert switches between the insert and replace cursors.
var EditControls ControlHandler = ControlFunc(editControl)

func editControl(d *Device, vk VirtualKey, _ Modifiers) ([]LineRange, error) {
	r := d.Renderer
	c := r.Cursor()
	switch vk {
	case VKEnter:
		r.SetCursor(Cursor{Row: (c.Row + 1) % Rows})
		if d.Sink != nil {
			if _, err := d.Sink.WriteRune('\n'); err != nil {
				d.logf("text sink: %v", err)
			}
		}
	case VKBackspace:
		c = c.Retreat()
		r.SetCursor(c)
		return []LineRange{r.ClearCell(c)}, nil
	case VKDelete:
		return []LineRange{r.ClearCell(c)}, nil
	case VKHome:
		r.SetCursor(Cursor{Row: c.Row})
	case VKEnd:
		r.SetCursor(Cursor{Row: c.Row, Col: Columns - 1})
	case VKLeft:
		r.SetCursor(c.Retreat())
	case VKRight:
		r.SetCursor(c.Advance())
	case VKUp:
		r.SetCursor(Cursor{Row: c.Row - 1, Col: c.Col})
	case VKDown:
		r.SetCursor(Cursor{Row: c.Row + 1, Col: c.Col})
	case VKPageUp:
		r.SetCursor(Cursor{Col: c.Col})
	case VKPageDown:
		r.SetCursor(Cursor{Row: Rows - 1, Col: c.Col})
	case VKTab:
		next := Cursor{Row: c.Row, Col: (c.Col/8 + 1) * 8}
		if next.Col >= Columns {
			next = Cursor{Row: (c.Row + 1) % Rows}
		}
		r.SetCursor(next)
	case VKInsert:
		switch d.CursorMode {
		case CursorInsert:
			d.CursorMode = CursorReplace
		case CursorReplace:
			d.CursorMode = CursorInsert
		}
	default:
		d.debugf("control key %s has no edit action", vk)
	}
	return nil, nil
}
