package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	m := newTestModel(false)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Fatalf("expected 100x40, got %dx%d", m.width, m.height)
	}
}

func TestViewShowsFramePixels(t *testing.T) {
	m := newTestModel(false)
	view := m.View()
	if view == "" {
		t.Fatalf("expected a non-empty view")
	}
	// the header underline occupies the lower pixel of a half-block line
	if !strings.Contains(view, "▄") && !strings.Contains(view, "█") {
		t.Fatalf("expected rendered pixels in the view")
	}
	if !strings.Contains(view, "q quit") {
		t.Fatalf("expected the key hints in the footer")
	}
}

func TestViewShowsFilterPrompt(t *testing.T) {
	m := newTestModel(false)
	m.Update(runeKey('/'))
	m.Update(runeKey('r'))
	if !strings.Contains(m.View(), "r") {
		t.Fatalf("expected the filter text in the footer")
	}
}

func TestReloadKeySwapsTree(t *testing.T) {
	m := newTestModel(false)
	replacement := &menu.Menu{
		SelectedItem: menu.NoSelection,
		Items:        []menu.Item{{Description: "Reloaded"}},
	}
	m.reload = func() (*menu.Menu, error) { return replacement, nil }

	m.Update(runeKey('r'))
	if m.root != replacement || m.current != replacement {
		t.Fatalf("expected the reloaded tree active")
	}
	if m.infoMsg == "" {
		t.Fatalf("expected a reload notice")
	}
}

func TestReloadFailureKeepsTree(t *testing.T) {
	m := newTestModel(false)
	original := m.root
	m.reload = func() (*menu.Menu, error) { return nil, errors.New("bad yaml") }

	m.Update(runeKey('r'))
	if m.root != original {
		t.Fatalf("expected the original tree kept on a failed reload")
	}
	if m.errMsg != "bad yaml" {
		t.Fatalf("expected the reload error surfaced, got %q", m.errMsg)
	}
}

func TestSlideTransitionPlayback(t *testing.T) {
	m := newTestModel(true)

	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a tick command starting the slide")
	}
	if m.transMotion != display.MotionSlideLeft {
		t.Fatalf("expected a slide-left transition, got %v", m.transMotion)
	}
	if m.transOffset != display.DOGM128.Cols {
		t.Fatalf("expected full travel remaining, got %d", m.transOffset)
	}

	for i := 0; m.transMotion != display.MotionNone; i++ {
		if i > 100 {
			t.Fatalf("expected the transition to finish")
		}
		m.Update(animTickMsg{})
	}
	if m.transPrev != nil {
		t.Fatalf("expected the snapshot released after playback")
	}
}

func TestCompositePixelDuringSlide(t *testing.T) {
	m := newTestModel(true)
	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	// full travel remaining: the view still shows the outgoing frame
	prev := m.transPrev
	for x := 0; x < 8; x++ {
		for y := 0; y < 16; y++ {
			if m.pixel(x, y) != m.frame.SnapshotPixel(prev, x, y) {
				t.Fatalf("expected the outgoing frame at full offset, pixel (%d,%d)", x, y)
			}
		}
	}

	// no travel left: the view shows the new frame
	m.transOffset = 0
	m.transMotion = display.MotionNone
	for x := 0; x < 8; x++ {
		if m.pixel(x, 7) != m.frame.Pixel(x, 7) {
			t.Fatalf("expected the new frame after the slide")
		}
	}
}

func TestInitWithoutWatcher(t *testing.T) {
	m := newTestModel(false)
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("expected no initial command without a watcher")
	}
}
