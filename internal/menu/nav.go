package menu

// Up moves the cursor to the nearest enabled item above the current one.
// When no such item exists the visible screen is scrolled up instead, if
// possible. It reports whether item or screen changed.
func (m *Menu) Up() bool {
	attempted := m.CurrentItem - 1
	found := false
	for attempted >= 0 && !found {
		if m.Items[attempted].Disabled {
			attempted--
		} else {
			found = true
		}
	}

	// New item on this screen with the cursor on it too: move the item.
	// New item one screen up: move item and screen together.
	// Otherwise scroll up a screen if one exists.
	currentItemScreen := m.ScreenOf(m.CurrentItem)
	switch {
	case found && m.ScreenOf(attempted) == m.Screen && currentItemScreen == m.Screen:
		m.CurrentItem = attempted
		return true
	case found && m.ScreenOf(attempted) == m.Screen-1 && currentItemScreen >= m.Screen:
		m.CurrentItem = attempted
		m.Screen--
		return true
	case m.Screen > 0:
		m.Screen--
		return true
	default:
		return false
	}
}

// Down moves the cursor to the nearest enabled item below the current one,
// scrolling the screen down when no item is available but screens remain.
// It reports whether item or screen changed.
func (m *Menu) Down() bool {
	attempted := m.CurrentItem + 1
	found := false
	for attempted < len(m.Items) && !found {
		if m.Items[attempted].Disabled {
			attempted++
		} else {
			found = true
		}
	}

	currentItemScreen := m.ScreenOf(m.CurrentItem)
	switch {
	case found && m.ScreenOf(attempted) == m.Screen && currentItemScreen == m.Screen:
		m.CurrentItem = attempted
		return true
	case found && m.ScreenOf(attempted) == m.Screen+1 && currentItemScreen <= m.Screen:
		m.CurrentItem = attempted
		m.Screen++
		return true
	case m.Screen < m.LastScreen():
		m.Screen++
		return true
	default:
		return false
	}
}

// PositionTop drives the cursor to the first enabled item on the first
// screen. On a menu with no enabled items only the screen is reset.
func (m *Menu) PositionTop() {
	for m.Up() {
	}
}

// JumpTo places the cursor directly on the given item, keeping the screen
// in step. It refuses disabled and extend items and reports whether the
// cursor moved.
func (m *Menu) JumpTo(index int) bool {
	if index < 0 || index >= len(m.Items) {
		return false
	}
	if m.Items[index].Disabled || m.Items[index].Extend {
		return false
	}
	if index == m.CurrentItem && m.ScreenOf(index) == m.Screen {
		return false
	}
	m.CurrentItem = index
	m.Screen = m.ScreenOf(index)
	return true
}

// Enter activates the current item and returns the menu to display next.
// Nothing happens when the cursor's item is not on the visible screen,
// which is the case on a screen holding only disabled items. Activation
// records the selection if the menu keeps one, runs the item action, and
// descends into the submenu unless the action reported the activation as
// handled.
func (m *Menu) Enter() *Menu {
	cur := m.CurrentItem
	if cur < 0 || cur >= len(m.Items) {
		return m
	}
	if m.ScreenOf(cur) != m.Screen {
		return m
	}

	item := &m.Items[cur]
	if m.SelectedItem > NoSelection {
		m.SelectedItem = cur
	}
	if item.Action != nil {
		if item.Action(item.Args) {
			return m
		}
	}
	if item.Submenu != nil {
		item.Submenu.parent = m
		return item.Submenu
	}
	return m
}

// Back leaves the menu for its parent, resetting the cursor first: menus
// without a selection concept return to the top, frozen menus keep their
// cursor, and option menus return to the selected item. The root menu is
// returned unchanged.
func (m *Menu) Back() *Menu {
	if m.parent == nil {
		return m
	}
	switch m.SelectedItem {
	case NoSelection:
		m.PositionTop()
	case FrozenSelection:
		// keep the cursor where the user left it
	default:
		m.CurrentItem = m.SelectedItem
		m.Screen = m.ScreenOf(m.SelectedItem)
	}
	return m.parent
}

// Top follows parent references to the root of the tree. It never mutates
// cursor state.
func (m *Menu) Top() *Menu {
	top := m
	for top.parent != nil {
		top = top.parent
	}
	return top
}
