// Package testutil provides a recording display driver for asserting the
// draw call sequence a renderer emits.
package testutil

import (
	"fmt"
	"strconv"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
)

// RecordingDriver implements display.Driver by appending one formatted
// line per call to Ops. Width measurements use the same fixed-advance
// arithmetic as the frame buffer, so layouts match real rendering.
type RecordingDriver struct {
	Geo display.Geometry
	Ops []string
}

// NewRecordingDriver records against the reference panel geometry.
func NewRecordingDriver() *RecordingDriver {
	return &RecordingDriver{Geo: display.DOGM128}
}

func (d *RecordingDriver) record(format string, args ...interface{}) {
	d.Ops = append(d.Ops, fmt.Sprintf(format, args...))
}

// Reset discards the recorded operations.
func (d *RecordingDriver) Reset() {
	d.Ops = nil
}

func (d *RecordingDriver) Geometry() display.Geometry { return d.Geo }

func (d *RecordingDriver) TextWidth(s string) int {
	return len([]rune(s)) * d.Geo.CharWidth
}

func (d *RecordingDriver) IntWidth(v int) int {
	return d.TextWidth(strconv.Itoa(v))
}

func (d *RecordingDriver) FloatWidth(v float64, decimals int) int {
	return d.TextWidth(strconv.FormatFloat(v, 'f', decimals, 64))
}

func (d *RecordingDriver) ClearRow(row int) {
	d.record("clear-row %d", row)
}

func (d *RecordingDriver) ClearRowSegment(row, x0, x1 int) {
	d.record("clear-row-segment %d %d..%d", row, x0, x1)
}

func (d *RecordingDriver) SetHLine(x0, x1, y int) {
	d.record("set-hline %d..%d y=%d", x0, x1, y)
}

func (d *RecordingDriver) ClearHLine(x0, x1, y int) {
	d.record("clear-hline %d..%d y=%d", x0, x1, y)
}

func (d *RecordingDriver) DrawText(s string, x, row int) {
	if s == "" {
		return
	}
	d.record("text %q x=%d row=%d", s, x, row)
}

func (d *RecordingDriver) DrawTextCentered(s string, row int) {
	d.record("text-centered %q row=%d", s, row)
}

func (d *RecordingDriver) DrawInt(v int, x, row int) {
	d.record("int %d x=%d row=%d", v, x, row)
}

func (d *RecordingDriver) DrawFloat(v float64, decimals, x, row int) {
	d.record("float %s x=%d row=%d", strconv.FormatFloat(v, 'f', decimals, 64), x, row)
}

func (d *RecordingDriver) Invert(x0, y0, x1, y1 int) {
	d.record("invert %d,%d..%d,%d", x0, y0, x1, y1)
}

func (d *RecordingDriver) InvertRow(x0, x1, row int) {
	d.record("invert-row %d..%d row=%d", x0, x1, row)
}

func (d *RecordingDriver) Flush() {
	d.record("flush")
}
