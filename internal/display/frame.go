package display

import "strconv"

// Frame is a monochrome frame buffer laid out the way page-addressed LCD
// controllers expect: one byte per (band, column) pair, where bit n of the
// byte is pixel line n of the band, counted from the top. It implements
// Driver; Flush is a no-op because consumers read the pixels directly.
type Frame struct {
	geo Geometry
	buf []byte

	transPrev   []byte
	transMotion Motion
}

// NewFrame allocates a cleared frame for the given geometry. Band height
// must not exceed eight pixel lines.
func NewFrame(geo Geometry) *Frame {
	if geo.RowHeight > 8 {
		geo.RowHeight = 8
	}
	return &Frame{
		geo: geo,
		buf: make([]byte, geo.Rows*geo.Cols),
	}
}

// Geometry returns the frame's pixel grid description.
func (f *Frame) Geometry() Geometry {
	return f.geo
}

// Pixel reports whether the pixel at (x, y) is set.
func (f *Frame) Pixel(x, y int) bool {
	if x < 0 || x >= f.geo.Cols || y < 0 || y >= f.geo.Height() {
		return false
	}
	row := y / f.geo.RowHeight
	bit := uint(y % f.geo.RowHeight)
	return f.buf[row*f.geo.Cols+x]&(1<<bit) != 0
}

// ClearAll blanks the whole frame.
func (f *Frame) ClearAll() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// TextWidth measures a string at the fixed glyph advance.
func (f *Frame) TextWidth(s string) int {
	return len([]rune(s)) * f.geo.CharWidth
}

// IntWidth measures a formatted integer.
func (f *Frame) IntWidth(v int) int {
	return f.TextWidth(strconv.Itoa(v))
}

// FloatWidth measures a float formatted with the given decimal count.
func (f *Frame) FloatWidth(v float64, decimals int) int {
	return f.TextWidth(strconv.FormatFloat(v, 'f', decimals, 64))
}

// ClearRow blanks one row band.
func (f *Frame) ClearRow(row int) {
	if row < 0 || row >= f.geo.Rows {
		return
	}
	base := row * f.geo.Cols
	for x := 0; x < f.geo.Cols; x++ {
		f.buf[base+x] = 0
	}
}

// ClearRowSegment blanks the columns x0..x1 of one row band.
func (f *Frame) ClearRowSegment(row, x0, x1 int) {
	if row < 0 || row >= f.geo.Rows {
		return
	}
	x0, x1 = f.clampSpan(x0, x1)
	base := row * f.geo.Cols
	for x := x0; x <= x1; x++ {
		f.buf[base+x] = 0
	}
}

// SetHLine draws a horizontal pixel line from x0 to x1 at pixel line y.
func (f *Frame) SetHLine(x0, x1, y int) {
	if y < 0 || y >= f.geo.Height() {
		return
	}
	x0, x1 = f.clampSpan(x0, x1)
	base := (y / f.geo.RowHeight) * f.geo.Cols
	mask := byte(1) << uint(y%f.geo.RowHeight)
	for x := x0; x <= x1; x++ {
		f.buf[base+x] |= mask
	}
}

// ClearHLine erases a horizontal pixel line from x0 to x1 at pixel line y.
func (f *Frame) ClearHLine(x0, x1, y int) {
	if y < 0 || y >= f.geo.Height() {
		return
	}
	x0, x1 = f.clampSpan(x0, x1)
	base := (y / f.geo.RowHeight) * f.geo.Cols
	mask := ^(byte(1) << uint(y%f.geo.RowHeight))
	for x := x0; x <= x1; x++ {
		f.buf[base+x] &= mask
	}
}

// DrawText draws a string into one row band starting at pixel column x.
// Glyphs falling outside the panel are clipped.
func (f *Frame) DrawText(s string, x, row int) {
	if row < 0 || row >= f.geo.Rows {
		return
	}
	base := row * f.geo.Cols
	for _, r := range s {
		g := glyph(r)
		for col := 0; col < len(g); col++ {
			gx := x + col
			if gx >= 0 && gx < f.geo.Cols {
				f.buf[base+gx] |= g[col]
			}
		}
		x += f.geo.CharWidth
	}
}

// DrawTextCentered draws a string centered within the panel width.
func (f *Frame) DrawTextCentered(s string, row int) {
	f.DrawText(s, (f.geo.Cols-f.TextWidth(s))/2, row)
}

// DrawInt draws a formatted integer.
func (f *Frame) DrawInt(v int, x, row int) {
	f.DrawText(strconv.Itoa(v), x, row)
}

// DrawFloat draws a float with the given decimal count.
func (f *Frame) DrawFloat(v float64, decimals, x, row int) {
	f.DrawText(strconv.FormatFloat(v, 'f', decimals, 64), x, row)
}

// Invert toggles every pixel in the rectangle spanned by the two corners,
// inclusive. The rectangle may cross band boundaries.
func (f *Frame) Invert(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := max(y0, 0); y <= y1 && y < f.geo.Height(); y++ {
		base := (y / f.geo.RowHeight) * f.geo.Cols
		mask := byte(1) << uint(y%f.geo.RowHeight)
		for x := max(x0, 0); x <= x1 && x < f.geo.Cols; x++ {
			f.buf[base+x] ^= mask
		}
	}
}

// InvertRow toggles the full height of one row band between the columns.
func (f *Frame) InvertRow(x0, x1, row int) {
	if row < 0 || row >= f.geo.Rows {
		return
	}
	x0, x1 = f.clampSpan(x0, x1)
	base := row * f.geo.Cols
	mask := byte(1<<uint(f.geo.RowHeight)) - 1
	for x := x0; x <= x1; x++ {
		f.buf[base+x] ^= mask
	}
}

// Flush is a no-op; the frame is its own presentation target.
func (f *Frame) Flush() {}

// FlushAnimated records the outgoing frame and the requested motion. The
// buffer already holds the final frame; the presentation layer picks up
// the transition via TakeTransition and plays the slide itself.
func (f *Frame) FlushAnimated(prev []byte, motion Motion) {
	f.transPrev = prev
	f.transMotion = motion
}

// TakeTransition returns and clears the pending slide transition recorded
// by FlushAnimated.
func (f *Frame) TakeTransition() ([]byte, Motion) {
	prev, motion := f.transPrev, f.transMotion
	f.transPrev = nil
	f.transMotion = MotionNone
	return prev, motion
}

// SnapshotPixel reads the pixel at (x, y) from a snapshot previously taken
// from this frame.
func (f *Frame) SnapshotPixel(snap []byte, x, y int) bool {
	if len(snap) != len(f.buf) {
		return false
	}
	if x < 0 || x >= f.geo.Cols || y < 0 || y >= f.geo.Height() {
		return false
	}
	row := y / f.geo.RowHeight
	bit := uint(y % f.geo.RowHeight)
	return snap[row*f.geo.Cols+x]&(1<<bit) != 0
}

// Snapshot copies the raw buffer, for transition animations.
func (f *Frame) Snapshot() []byte {
	return append([]byte(nil), f.buf...)
}

// Restore overwrites the buffer from a snapshot taken on a frame with the
// same geometry.
func (f *Frame) Restore(snap []byte) {
	if len(snap) == len(f.buf) {
		copy(f.buf, snap)
	}
}

func (f *Frame) clampSpan(x0, x1 int) (int, int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= f.geo.Cols {
		x1 = f.geo.Cols - 1
	}
	return x0, x1
}
