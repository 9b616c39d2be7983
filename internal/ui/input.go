package ui

import (
	"sort"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	m.infoMsg = ""
	m.errMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit

	case "up", "k":
		changed := m.current.Up()
		events.Nav.Move("up", m.current.CurrentItem, m.current.Screen, changed)
		if changed {
			return m.redraw()
		}

	case "down", "j":
		changed := m.current.Down()
		events.Nav.Move("down", m.current.CurrentItem, m.current.Screen, changed)
		if changed {
			return m.redraw()
		}

	case "enter", "right", "l":
		item := m.current.CurrentItem
		next := m.current.Enter()
		events.Nav.Enter(item, next != m.current)
		if m.verbose && item >= 0 && item < len(m.current.Items) {
			m.infoMsg = m.current.Items[item].Description
		}
		m.current = next
		// Actions may have rewritten bound values, so redraw even when
		// the active menu did not change.
		return m.redraw()

	case "esc", "backspace", "left", "h":
		next := m.current.Back()
		if next == m.current {
			if msg.String() == "esc" {
				return tea.Quit
			}
			return nil
		}
		events.Nav.Back(true)
		m.current = next
		return m.redraw()

	case "home", "g":
		m.current.PositionTop()
		return m.redraw()

	case "t":
		if m.jumpToRoot() {
			return m.redraw()
		}

	case "/":
		m.filtering = true
		m.filter = ""

	case "r":
		if m.reload != nil {
			m.applyReload()
		}
	}
	return nil
}

// jumpToRoot ascends to the root menu one level at a time so that each
// parent restores its cursor the same way a plain back keypress would.
func (m *Model) jumpToRoot() bool {
	moved := false
	for {
		next := m.current.Back()
		if next == m.current {
			return moved
		}
		m.current = next
		moved = true
	}
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.filtering = false
		m.filter = ""
	case "enter":
		m.filtering = false
		var cmd tea.Cmd
		if item, ok := m.filterMatch(); ok {
			if m.current.JumpTo(item) {
				events.Nav.Jump(item)
				cmd = m.redraw()
			}
		}
		m.filter = ""
		return cmd
	case "backspace":
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.filter += string(msg.Runes)
		}
	}
	return nil
}

// filterMatch fuzzy-ranks the selectable items of the active menu against
// the current filter text and returns the best match.
func (m *Model) filterMatch() (int, bool) {
	if m.filter == "" {
		return 0, false
	}
	var targets []string
	var indices []int
	for i, it := range m.current.Items {
		if it.Disabled || it.Extend {
			continue
		}
		targets = append(targets, it.Description)
		indices = append(indices, i)
	}
	ranks := fuzzy.RankFindNormalizedFold(m.filter, targets)
	if len(ranks) == 0 {
		return 0, false
	}
	sort.Sort(ranks)
	return indices[ranks[0].OriginalIndex], true
}
