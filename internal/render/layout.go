package render

import (
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
)

// Margin is the fixed pixel margin kept between the row content and the
// panel edges.
const Margin = 3

// markerGlyph marks the persistently selected item of an option menu. The
// reference LCD font renders it as a small arrow.
const markerGlyph = "~"

// Layout holds the resolved pixel positions for one item row. An item row
// consists of three fields plus a marker slot:
//
//	+----------+-------------------------+------------+
//	| index    | description             | value      |
//	+----------+-------------------------+------------+
//
// The whole block is placed by the item's alignment; Swap exchanges
// description and value; split alignment keeps the trailing field flush
// against the right margin.
type Layout struct {
	// Index, Desc, Value are the x positions of the three fields.
	Index int
	Desc  int
	Value int
	// Marker is the x position of the selection-marker slot, directly
	// after the index field.
	Marker int
	// Decimals is the decimal count resolved for a float value.
	Decimals int
}

// layoutItem computes the pixel layout for one item. indexWidth forces a
// fixed index column width in pixels; zero lets the field use only the
// space its text needs.
func layoutItem(d display.Driver, m *menu.Menu, it *menu.Item, indexWidth int) Layout {
	geo := d.Geometry()
	char := geo.CharWidth

	if indexWidth == 0 {
		indexWidth = d.TextWidth(it.Index)
	}
	descWidth := d.TextWidth(it.Description)

	// The marker slot exists whenever the menu keeps a persistent
	// selection, even while it is frozen.
	markerWidth := 0
	if m.SelectedItem != menu.NoSelection {
		markerWidth = char
	}

	decimals := 0
	valueWidth := 0
	switch it.Value.Kind() {
	case menu.ValueText:
		valueWidth = d.TextWidth(it.Value.Text())
	case menu.ValueInt:
		valueWidth = d.IntWidth(it.Value.Int())
	case menu.ValueFloat:
		decimals = it.Value.Decimals()
		if decimals == menu.AutoDecimals {
			decimals = determineDecimals(it.Value.Float())
		}
		valueWidth = d.FloatWidth(it.Value.Float(), decimals)
	}

	// One inter-field margin per adjacent pair of non-empty fields.
	margins := -1
	if indexWidth > 0 {
		margins++
	}
	if descWidth > 0 {
		margins++
	}
	if valueWidth > 0 {
		margins++
	}
	total := indexWidth + descWidth + valueWidth + margins*char

	l := Layout{Decimals: decimals}
	switch it.Align {
	case menu.AlignRight:
		l.Index = geo.Cols - Margin - total
	case menu.AlignCenter:
		l.Index = (geo.Cols - Margin - total) / 2
	default:
		// left and split both keep the leading field at the left margin
		l.Index = Margin
	}
	l.Marker = l.Index + indexWidth

	if it.Swap {
		l.Value = l.Index + indexWidth
		if indexWidth > 0 || markerWidth > 0 {
			l.Value += char
		}
		if it.Align == menu.AlignSplit {
			l.Desc = geo.Cols - Margin - descWidth
		} else {
			l.Desc = l.Value + valueWidth
			if valueWidth > 0 {
				l.Desc += char
			}
		}
	} else {
		l.Desc = l.Index + indexWidth
		if indexWidth > 0 || markerWidth > 0 {
			l.Desc += char
		}
		if it.Align == menu.AlignSplit {
			l.Value = geo.Cols - Margin - valueWidth
		} else {
			l.Value = l.Desc + descWidth
			if descWidth > 0 {
				l.Value += char
			}
		}
	}
	return l
}

// drawItem lays out and draws one item on the given row band.
func drawItem(d display.Driver, m *menu.Menu, index, row, indexWidth int) {
	it := &m.Items[index]
	l := layoutItem(d, m, it, indexWidth)

	d.DrawText(it.Index, l.Index, row)
	d.DrawText(it.Description, l.Desc, row)
	if index == m.SelectedItem {
		d.DrawText(markerGlyph, l.Marker, row)
	}
	switch it.Value.Kind() {
	case menu.ValueText:
		d.DrawText(it.Value.Text(), l.Value, row)
	case menu.ValueInt:
		d.DrawInt(it.Value.Int(), l.Value, row)
	case menu.ValueFloat:
		d.DrawFloat(it.Value.Float(), l.Decimals, l.Value, row)
	}
}

// determineDecimals picks the number of decimals needed to print a float:
// 1.500 needs one, 1.503 needs three. Precision caps at five decimals, so
// 1.2000000008 needs only one since five decimals cannot reach the final
// digit anyway. The arithmetic deliberately runs through 32-bit float
// truncation to keep values that merely approximate a short decimal at the
// short form.
func determineDecimals(number float64) int {
	f := float32(number)
	if f < 0 {
		f = -f
	}
	f -= float32(int32(f)) // fractional part only
	n := float64(f)

	d5 := int32(100000 * n)
	d4 := int32(10000 * n)
	d3 := int32(1000 * n)
	d2 := int32(100 * n)
	d1 := int32(10 * n)
	d0 := int32(1 * n)

	// round-half-up correction against floating error
	if 100000*n-float64(d5) > 0.5 {
		d5++
	}
	if 10000*n-float64(d4) > 0.5 {
		d4++
	}
	if 1000*n-float64(d3) > 0.5 {
		d3++
	}
	if 100*n-float64(d2) > 0.5 {
		d2++
	}
	if 10*n-float64(d1) > 0.5 {
		d1++
	}
	if 1*n-float64(d0) > 0.5 {
		d0++
	}

	d4 *= 10
	d3 *= 100
	d2 *= 1000
	d1 *= 10000
	d0 *= 100000

	switch {
	case d5 != d4:
		return 5
	case d4 != d3:
		return 4
	case d3 != d2:
		return 3
	case d2 != d1:
		return 2
	case d1 == d0:
		return 0
	default:
		return 1
	}
}
