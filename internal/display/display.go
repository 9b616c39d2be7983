// Package display defines the narrow drawing and measurement surface the
// menu renderer consumes, plus an in-memory monochrome frame buffer
// implementing it. The coordinate model follows small page-addressed LCDs:
// the panel is divided into fixed-height horizontal row bands, and text is
// drawn into one band at a pixel column.
package display

// Geometry describes the pixel grid of the target display. Row count is
// fixed at eight bands by the menu model; column and font metrics are
// configurable per panel.
type Geometry struct {
	// Cols is the panel width in pixels.
	Cols int
	// Rows is the number of row bands.
	Rows int
	// RowHeight is the pixel height of one band.
	RowHeight int
	// CharWidth is the fixed glyph advance, including inter-glyph spacing.
	CharWidth int
	// FontWidth is the inked width of a glyph.
	FontWidth int
}

// DOGM128 is the geometry of the reference 128x64 panel.
var DOGM128 = Geometry{Cols: 128, Rows: 8, RowHeight: 8, CharWidth: 6, FontWidth: 5}

// Height returns the panel height in pixels.
func (g Geometry) Height() int {
	return g.Rows * g.RowHeight
}

// Motion selects the slide animation used when presenting a frame.
type Motion int

const (
	MotionNone Motion = iota
	// MotionSlideLeft slides the new frame in from the right, used when
	// descending into a submenu.
	MotionSlideLeft
	// MotionSlideRight slides the new frame in from the left, used when
	// navigating back to a parent.
	MotionSlideRight
)

// Driver is the drawing and measurement interface consumed by the
// renderer. Row arguments address bands, x/y arguments address pixels.
// Implementations clip out-of-range coordinates rather than fault.
type Driver interface {
	Geometry() Geometry

	// TextWidth returns the pixel width of a string at the fixed advance.
	TextWidth(s string) int
	// IntWidth returns the pixel width of a formatted integer.
	IntWidth(v int) int
	// FloatWidth returns the pixel width of a float formatted with the
	// given decimal count.
	FloatWidth(v float64, decimals int) int

	ClearRow(row int)
	ClearRowSegment(row, x0, x1 int)
	SetHLine(x0, x1, y int)
	ClearHLine(x0, x1, y int)

	DrawText(s string, x, row int)
	DrawTextCentered(s string, row int)
	DrawInt(v int, x, row int)
	DrawFloat(v float64, decimals, x, row int)

	Invert(x0, y0, x1, y1 int)
	InvertRow(x0, x1, row int)

	// Flush presents the buffered frame.
	Flush()
}

// Animator is implemented by drivers that can present a frame as a slide
// transition from a previously captured snapshot. The snapshot's lifetime
// is exactly one present call.
type Animator interface {
	Snapshot() []byte
	FlushAnimated(prev []byte, motion Motion)
}
