package ui

import (
	"strings"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// View renders the frame buffer as terminal half-blocks. Each terminal
// cell carries two pixel rows, so a 128x64 panel fits in 32 lines.
func (m *Model) View() string {
	screen := styles.Screen.Render(m.lcdLines())
	bezel := styles.Bezel.Render(screen)

	title := styles.Title.Render("LCD Menu Simulator")
	footer := m.footer()
	if m.width > 0 {
		footer = truncate.String(footer, uint(m.width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, bezel, footer)
}

func (m *Model) lcdLines() string {
	geom := m.frame.Geometry()
	height := geom.Height()

	var b strings.Builder
	for y := 0; y < height; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < geom.Cols; x++ {
			upper := m.pixel(x, y)
			lower := y+1 < height && m.pixel(x, y+1)
			switch {
			case upper && lower:
				b.WriteRune('█')
			case upper:
				b.WriteRune('▀')
			case lower:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// pixel resolves one display pixel, compositing the outgoing snapshot
// against the new frame while a slide transition is in flight. transOffset
// is the remaining travel, so the outgoing frame sits Cols-transOffset
// columns off-centre.
func (m *Model) pixel(x, y int) bool {
	if m.transMotion == display.MotionNone {
		return m.frame.Pixel(x, y)
	}
	cols := m.frame.Geometry().Cols
	shift := cols - m.transOffset
	switch m.transMotion {
	case display.MotionSlideLeft:
		// outgoing frame exits left, new frame enters from the right
		if x < m.transOffset {
			return m.frame.SnapshotPixel(m.transPrev, x+shift, y)
		}
		return m.frame.Pixel(x-m.transOffset, y)
	case display.MotionSlideRight:
		// outgoing frame exits right, new frame enters from the left
		if x >= shift {
			return m.frame.SnapshotPixel(m.transPrev, x-shift, y)
		}
		return m.frame.Pixel(x+m.transOffset, y)
	}
	return m.frame.Pixel(x, y)
}

func (m *Model) footer() string {
	if m.filtering {
		return styles.FilterPrompt.Render("/") + styles.Filter.Render(m.filter)
	}
	switch {
	case m.errMsg != "":
		return styles.Error.Render(m.errMsg)
	case m.infoMsg != "":
		return styles.Info.Render(m.infoMsg)
	}
	hints := "↑/↓ move · enter select · esc back · / find · q quit"
	if m.reload != nil {
		hints += " · r reload"
	}
	return styles.Footer.Render(hints)
}
