package ui

import (
	"testing"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(animate bool) *Model {
	sub := &menu.Menu{
		SelectedItem: menu.NoSelection,
		Items: []menu.Item{
			{Description: "Channel"},
			{Description: "Freq MHz"},
		},
	}
	root := &menu.Menu{
		SelectedItem: menu.NoSelection,
		Items: []menu.Item{
			{Index: "1", Description: "Radio", Submenu: sub},
			{Index: "2", Description: "Status"},
			{Index: "3", Description: "About"},
		},
	}
	frame := display.NewFrame(display.DOGM128)
	r := render.New(frame)
	r.SetAnimated(animate)
	return NewModel(root, frame, r, nil, nil, false)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyDownMovesCursor(t *testing.T) {
	m := newTestModel(false)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.current.CurrentItem != 1 {
		t.Fatalf("expected cursor on item 1, got %d", m.current.CurrentItem)
	}
	m.Update(runeKey('j'))
	if m.current.CurrentItem != 2 {
		t.Fatalf("expected cursor on item 2, got %d", m.current.CurrentItem)
	}
	m.Update(runeKey('k'))
	if m.current.CurrentItem != 1 {
		t.Fatalf("expected cursor back on item 1, got %d", m.current.CurrentItem)
	}
}

func TestKeyEnterDescendsAndBackReturns(t *testing.T) {
	m := newTestModel(false)
	root := m.root

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.current == root {
		t.Fatalf("expected Enter to descend into the submenu")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != root {
		t.Fatalf("expected Esc to return to the root")
	}
}

func TestKeyEscAtRootQuits(t *testing.T) {
	m := newTestModel(false)
	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected Esc at the root to quit")
	}
}

func TestKeyQQuits(t *testing.T) {
	m := newTestModel(false)
	cmd := m.handleKey(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected q to quit")
	}
}

func TestKeyHomePositionsTop(t *testing.T) {
	m := newTestModel(false)
	m.current.CurrentItem = 2
	m.Update(runeKey('g'))
	if m.current.CurrentItem != 0 {
		t.Fatalf("expected the cursor on the first item, got %d", m.current.CurrentItem)
	}
}

func TestKeyTReturnsToRoot(t *testing.T) {
	m := newTestModel(false)
	root := m.root
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(runeKey('t'))
	if m.current != root {
		t.Fatalf("expected t to ascend to the root")
	}
}

func TestFilterJumpsToMatch(t *testing.T) {
	m := newTestModel(false)
	m.Update(runeKey('/'))
	if !m.filtering {
		t.Fatalf("expected filter mode after /")
	}
	for _, r := range "abo" {
		m.Update(runeKey(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filtering {
		t.Fatalf("expected filter mode to end on enter")
	}
	if m.current.CurrentItem != 2 {
		t.Fatalf("expected the cursor jumped to About, got %d", m.current.CurrentItem)
	}
}

func TestFilterEscCancels(t *testing.T) {
	m := newTestModel(false)
	m.Update(runeKey('/'))
	m.Update(runeKey('x'))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.filtering || m.filter != "" {
		t.Fatalf("expected filter mode cancelled")
	}
	if m.current.CurrentItem != 0 {
		t.Fatalf("expected the cursor unchanged, got %d", m.current.CurrentItem)
	}
}

func TestFilterBackspaceEdits(t *testing.T) {
	m := newTestModel(false)
	m.Update(runeKey('/'))
	m.Update(runeKey('a'))
	m.Update(runeKey('b'))
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.filter != "a" {
		t.Fatalf("expected filter %q, got %q", "a", m.filter)
	}
}

func TestFilterSkipsDisabledItems(t *testing.T) {
	m := newTestModel(false)
	m.current.Items[2].Disabled = true
	m.Update(runeKey('/'))
	for _, r := range "abo" {
		m.Update(runeKey(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.current.CurrentItem == 2 {
		t.Fatalf("expected the filter to skip a disabled item")
	}
}
