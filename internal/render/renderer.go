// Package render turns a menu node and its cursor state into draw calls on
// a display driver. It owns the row walk, selection highlighting, header
// and navigation counter, and the per-row field layout.
package render

import (
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging/events"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
)

// DefaultTitle is the header title of a root menu without an override.
const DefaultTitle = "Main Menu"

// Renderer draws menus through a display driver. It remembers the
// previously displayed menu so transitions can pick a slide direction by
// comparing parent links.
type Renderer struct {
	d       display.Driver
	prev    *menu.Menu
	animate bool
}

// New creates a renderer over the given driver.
func New(d display.Driver) *Renderer {
	return &Renderer{d: d}
}

// SetAnimated enables slide transitions, provided the driver supports
// animated presentation.
func (r *Renderer) SetAnimated(on bool) {
	r.animate = on
}

// Reset forgets the previously displayed menu. The next Display presents
// without animation.
func (r *Renderer) Reset() {
	r.prev = nil
}

// Display writes the menu into the driver's buffer and presents it,
// sliding left on submenu descent and right on back-navigation when
// animation is available.
func (r *Renderer) Display(m *menu.Menu) {
	motion := display.MotionNone
	anim, canAnimate := r.d.(display.Animator)
	if r.animate && canAnimate && r.prev != nil {
		switch {
		case m.Parent() == r.prev:
			motion = display.MotionSlideLeft
		case r.prev.Parent() == m:
			motion = display.MotionSlideRight
		}
	}

	var snap []byte
	if motion != display.MotionNone {
		snap = anim.Snapshot()
	}

	r.writeBuffer(m)

	if motion != display.MotionNone {
		anim.FlushAnimated(snap, motion)
	} else {
		r.d.Flush()
	}
	events.Render.Frame(m.Header, m.Screen, int(motion))
	r.prev = m
}

// writeBuffer draws the header and the visible slice of items, walking the
// non-reserved rows in display order.
func (r *Renderer) writeBuffer(m *menu.Menu) {
	geo := r.d.Geometry()

	if !m.Reserved.Reserved(0) {
		r.d.ClearRow(0)
		r.drawHeader(m)
	}

	item := m.Screen * m.ItemsPerScreen()

	row := nextRow(m.Reserved, 0)
	for item < len(m.Items) && row != 0 {
		r.d.ClearRow(row)
		drawItem(r.d, m, item, row, 0)

		if item == m.CurrentItem {
			// separator above the row, then highlight the full row
			r.d.SetHLine(0, geo.Cols-1, row*geo.RowHeight-1)
			r.d.InvertRow(0, geo.Cols-1, row)
		} else if m.Reserved.Reserved(row - 1) {
			// the band above is reserved; keep a stale separator from
			// bleeding out of it
			r.d.ClearHLine(0, geo.Cols-1, row*geo.RowHeight-1)
		}

		if m.Items[item].Extend {
			master := item - 1
			for master > 0 && m.Items[master].Extend {
				master--
			}
			if master == m.CurrentItem {
				// merge the highlight across the continuation row
				r.d.Invert(0, row*geo.RowHeight, geo.Cols-1, (row+1)*geo.RowHeight-1)
			}
		}

		row = nextRow(m.Reserved, row)
		item++
	}

	// blank leftover rows so a previously larger screen cannot linger
	for row != 0 {
		r.d.ClearRow(row)
		if m.Reserved.Reserved(row - 1) {
			r.d.ClearHLine(0, geo.Cols-1, row*geo.RowHeight-1)
		}
		row = nextRow(m.Reserved, row)
	}
}

// ClearReserved blanks every reserved row band. The last pixel line of a
// reserved band stays untouched when the band below holds items, because
// the selection highlight of an item steals that line.
func (r *Renderer) ClearReserved(m *menu.Menu) {
	geo := r.d.Geometry()
	for row := 1; row < menu.Rows; row++ {
		if !m.Reserved.Reserved(row) {
			continue
		}
		if m.Reserved.Reserved(row + 1) {
			r.d.ClearRow(row)
		} else {
			for y := 0; y < geo.RowHeight-1; y++ {
				r.d.ClearHLine(0, geo.Cols-1, row*geo.RowHeight+y)
			}
		}
	}
}

// nextRow returns the first non-reserved row after the given one, or 0
// when no drawable row remains. Row 0 is the header and never drawable for
// items.
func nextRow(mask menu.RowMask, row int) int {
	for {
		row++
		if row >= menu.Rows {
			return 0
		}
		if !mask.Reserved(row) {
			return row
		}
	}
}
