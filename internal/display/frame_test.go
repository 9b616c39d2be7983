package display

import "testing"

func TestFrameStartsBlank(t *testing.T) {
	f := NewFrame(DOGM128)
	for _, p := range [][2]int{{0, 0}, {127, 63}, {64, 32}} {
		if f.Pixel(p[0], p[1]) {
			t.Fatalf("expected pixel (%d,%d) clear on a new frame", p[0], p[1])
		}
	}
}

func TestSetHLine(t *testing.T) {
	f := NewFrame(DOGM128)
	f.SetHLine(10, 20, 7)
	if !f.Pixel(10, 7) || !f.Pixel(20, 7) {
		t.Fatalf("expected the line endpoints set")
	}
	if f.Pixel(9, 7) || f.Pixel(21, 7) || f.Pixel(15, 6) {
		t.Fatalf("expected pixels outside the line untouched")
	}

	f.ClearHLine(10, 20, 7)
	if f.Pixel(10, 7) || f.Pixel(20, 7) {
		t.Fatalf("expected the line cleared")
	}
}

func TestHLineSpanNormalisationAndClipping(t *testing.T) {
	f := NewFrame(DOGM128)
	f.SetHLine(500, -3, 0)
	if !f.Pixel(0, 0) || !f.Pixel(127, 0) {
		t.Fatalf("expected the clipped full-width line set")
	}
	f.SetHLine(0, 127, -1)
	f.SetHLine(0, 127, 64)
}

func TestInvertIsInvolutive(t *testing.T) {
	f := NewFrame(DOGM128)
	f.DrawText("Radio", 3, 2)
	before := f.Snapshot()

	f.Invert(0, 12, 127, 27)
	f.Invert(0, 12, 127, 27)

	after := f.Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("expected double inversion to restore the frame, byte %d differs", i)
		}
	}
}

func TestInvertRowTogglesWholeBand(t *testing.T) {
	f := NewFrame(DOGM128)
	f.InvertRow(0, 127, 3)
	for y := 24; y < 32; y++ {
		if !f.Pixel(0, y) || !f.Pixel(127, y) {
			t.Fatalf("expected pixel line %d fully set", y)
		}
	}
	if f.Pixel(0, 23) || f.Pixel(0, 32) {
		t.Fatalf("expected neighbouring bands untouched")
	}
}

func TestInvertCrossesBandBoundaries(t *testing.T) {
	f := NewFrame(DOGM128)
	f.Invert(0, 7, 0, 8)
	if !f.Pixel(0, 7) || !f.Pixel(0, 8) {
		t.Fatalf("expected pixels on both sides of the band boundary set")
	}
	if f.Pixel(0, 6) || f.Pixel(0, 9) {
		t.Fatalf("expected the rectangle bounds respected")
	}
}

func TestClearRowSegment(t *testing.T) {
	f := NewFrame(DOGM128)
	f.InvertRow(0, 127, 1)
	f.ClearRowSegment(1, 10, 20)
	if f.Pixel(10, 8) || f.Pixel(20, 15) {
		t.Fatalf("expected the segment cleared")
	}
	if !f.Pixel(9, 8) || !f.Pixel(21, 8) {
		t.Fatalf("expected pixels outside the segment kept")
	}
}

func TestDrawTextInksGlyphWithSpacing(t *testing.T) {
	f := NewFrame(DOGM128)
	f.DrawText("A", 0, 0)

	inked := false
	for x := 0; x < 5 && !inked; x++ {
		for y := 0; y < 8; y++ {
			if f.Pixel(x, y) {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Fatalf("expected the glyph to ink pixels")
	}
	for y := 0; y < 8; y++ {
		if f.Pixel(5, y) {
			t.Fatalf("expected the spacing column blank")
		}
	}
}

func TestDrawTextClipsAtPanelEdge(t *testing.T) {
	f := NewFrame(DOGM128)
	f.DrawText("密码", 120, 0) // unknown runes fall back to '?'
	f.DrawText("end", 126, 7)
	f.DrawText("off", -4, 3)
}

func TestWidths(t *testing.T) {
	f := NewFrame(DOGM128)
	if got := f.TextWidth("abc"); got != 18 {
		t.Fatalf("expected text width 18, got %d", got)
	}
	if got := f.IntWidth(-12); got != 18 {
		t.Fatalf("expected int width 18, got %d", got)
	}
	if got := f.FloatWidth(1.5, 2); got != 24 {
		t.Fatalf("expected float width 24 for 1.50, got %d", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	f := NewFrame(DOGM128)
	f.DrawText("Main Menu", 30, 0)
	snap := f.Snapshot()

	f.ClearAll()
	f.Restore(snap)
	after := f.Snapshot()
	for i := range snap {
		if snap[i] != after[i] {
			t.Fatalf("expected restore to reproduce the snapshot, byte %d differs", i)
		}
	}
}

func TestSnapshotPixelMatchesFrame(t *testing.T) {
	f := NewFrame(DOGM128)
	f.SetHLine(0, 127, 31)
	snap := f.Snapshot()
	f.ClearAll()

	if !f.SnapshotPixel(snap, 64, 31) {
		t.Fatalf("expected the snapshot to keep the line")
	}
	if f.SnapshotPixel(snap, 64, 30) {
		t.Fatalf("expected a clear pixel in the snapshot")
	}
	if f.SnapshotPixel(snap[:4], 0, 0) {
		t.Fatalf("expected a short snapshot to read as blank")
	}
}

func TestTakeTransition(t *testing.T) {
	f := NewFrame(DOGM128)
	snap := f.Snapshot()
	f.FlushAnimated(snap, MotionSlideLeft)

	prev, motion := f.TakeTransition()
	if motion != MotionSlideLeft || prev == nil {
		t.Fatalf("expected the recorded transition, got motion %v", motion)
	}
	if _, motion := f.TakeTransition(); motion != MotionNone {
		t.Fatalf("expected the transition consumed, got motion %v", motion)
	}
}

func TestClearRow(t *testing.T) {
	f := NewFrame(DOGM128)
	f.InvertRow(0, 127, 2)
	f.ClearRow(2)
	for y := 16; y < 24; y++ {
		if f.Pixel(0, y) || f.Pixel(127, y) {
			t.Fatalf("expected row band 2 blank after ClearRow")
		}
	}
}
