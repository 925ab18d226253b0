package typewriter

// HelloText is the greeting drawn by Hello.
const HelloText = "Hello world!"

// Hello draws the panel self test: three pixel lines, the greeting at the top
// left and right aligned on the bottom row, a replace cursor on the third cell and
// an insert cursor after the greeting. The whole panel is then refreshed.
func Hello(d *Device) error {
	fb := d.Framebuffer
	for x := 0; x < 80; x++ {
		fb.SetPixel(x, 10, true)
	}
	for x := 20; x < 100; x++ {
		fb.SetPixel(x, 20, false)
	}
	for y := 20; y < 100; y++ {
		fb.SetPixel(100, y, false)
	}

	r := d.Renderer
	n := len([]rune(HelloText))
	r.Home()
	if err := d.WriteString(HelloText); err != nil {
		return err
	}
	r.SetCursor(Cursor{Row: Rows - 1, Col: Columns - n})
	if err := d.WriteString(HelloText); err != nil {
		return err
	}
	r.DrawCursorAt(Cursor{Row: 0, Col: 2}, CursorReplace)
	r.DrawCursorAt(Cursor{Row: 0, Col: n - 1}, CursorInsert)
	r.Home()
	if err := d.Panel.RefreshAll(); err != nil {
		return err
	}
	fb.MarkClean()
	return nil
}
