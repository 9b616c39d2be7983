package render

import "github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"

// drawHeader writes the title row: navigation counter in the right corner,
// then the title centered in the remaining space, or skewed against the
// counter when too wide, and finally a rule under the whole row.
func (r *Renderer) drawHeader(m *menu.Menu) {
	geo := r.d.Geometry()
	char := geo.CharWidth

	occupied := r.drawNavCounter(m)

	// preferred title: explicit override, else the description of the item
	// entered in the top menu, else the default root title
	var title string
	switch {
	case m.Header != "":
		title = m.Header
	case m.Parent() != nil:
		top := m.Top()
		if cur := top.CurrentItem; cur >= 0 && cur < len(top.Items) {
			title = top.Items[cur].Description
		}
	default:
		title = DefaultTitle
	}

	// maximum title width and the threshold beyond which a centered title
	// would collide with the counter, both in characters
	maxWidth := (geo.Cols-occupied)/char - 1
	skewThreshold := (geo.Cols-2*occupied)/char - 2

	runes := []rune(title)
	width := len(runes)
	if width > maxWidth {
		width = maxWidth
	}
	if width < 0 {
		width = 0
	}
	title = string(runes[:width])

	if width <= skewThreshold {
		r.d.DrawTextCentered(title, 0)
	} else {
		r.d.DrawText(title, geo.Cols-occupied-char-width*char, 0)
	}

	r.d.SetHLine(0, geo.Cols-1, geo.RowHeight-1)
}

// drawNavCounter writes the {current}/{total} indicator in the top right
// corner and returns the pixel width it claims. The width is derived from
// the total text twice rather than the current item's index so the header
// layout stays put while the user navigates.
func (r *Renderer) drawNavCounter(m *menu.Menu) int {
	if m.TotalText == "" {
		return 0
	}
	geo := r.d.Geometry()

	current := ""
	if cur := m.CurrentItem; cur >= 0 && cur < len(m.Items) {
		current = m.Items[cur].Index
	}

	margin := Margin - (geo.CharWidth - geo.FontWidth)
	totalWidth := r.d.TextWidth(m.TotalText)

	totalX := geo.Cols - margin - totalWidth
	slashX := totalX - geo.CharWidth
	currentX := slashX - r.d.TextWidth(current)

	r.d.DrawText(m.TotalText, totalX, 0)
	r.d.DrawText("/", slashX, 0)
	r.d.DrawText(current, currentX, 0)

	return margin + 2*totalWidth + geo.CharWidth + 1
}
