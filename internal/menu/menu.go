// Package menu holds the menu tree model and the navigation state machine.
// It is a pure in-memory core: menus and items are built and owned by the
// embedding application, and the only state mutated here is the cursor
// triple (current item, current screen, selected item) of each node.
package menu

// Rows is the fixed number of display row bands. Row 0 is the header row;
// the remaining rows carry items. The reserved-row mask is eight bits wide,
// so the capacity cannot exceed this.
const Rows = 8

// maxItemsPerScreen is the item capacity of a screen with nothing reserved.
const maxItemsPerScreen = Rows - 1

// Sentinels for Menu.SelectedItem.
const (
	// NoSelection disables the persistent selection concept entirely.
	NoSelection = -1
	// FrozenSelection keeps the cursor untouched on back-navigation while
	// still suppressing select-on-enter.
	FrozenSelection = -2
)

// RowMask marks display rows the menu system must not draw into. Bit 0 is
// the header row; reserving it removes the header completely.
type RowMask uint8

// Reserved reports whether the given row is off-limits. Rows outside the
// display are never reserved.
func (m RowMask) Reserved(row int) bool {
	return row >= 0 && row < Rows && m&(1<<uint(row)) != 0
}

// Menu is one node of the menu tree: an ordered item list plus per-node
// cursor state. The parent back-reference is established lazily when the
// node is entered, so item/submenu wiring may be shared between parents.
type Menu struct {
	Items []Item

	// Header overrides the default title. When empty, submenus title
	// themselves after the item entered in the top menu, and the root
	// falls back to a default.
	Header string

	// TotalText is the preformatted item count shown as the denominator of
	// the navigation counter. An empty string disables the counter.
	TotalText string

	// CurrentItem is the cursor position. It always refers to an enabled
	// item unless the menu has no enabled items at all.
	CurrentItem int

	// Screen is the index of the visible item group. It always names the
	// screen containing CurrentItem.
	Screen int

	// SelectedItem is the persisted choice of an option-style menu, or one
	// of the NoSelection/FrozenSelection sentinels.
	SelectedItem int

	// Reserved marks rows carved out for externally managed content.
	// At least one item row must remain available.
	Reserved RowMask

	// Graphics optionally references menu-level imagery for external
	// rendering.
	Graphics *Graphics

	parent *Menu
}

// Parent returns the menu this node was last entered from, or nil at the
// root.
func (m *Menu) Parent() *Menu {
	return m.parent
}

// ItemsPerScreen derives the item capacity of one screen from the reserved
// rows. The header row does not count against the capacity. Reserving every
// item row violates the caller contract; the result is clamped to one so
// screen arithmetic stays defined.
func (m *Menu) ItemsPerScreen() int {
	n := maxItemsPerScreen
	for row := 1; row < Rows; row++ {
		if m.Reserved.Reserved(row) {
			n--
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ScreenOf returns the screen holding the given item index. The derivation
// must be recomputed whenever the reserved mask changes.
func (m *Menu) ScreenOf(index int) int {
	if index < 0 {
		return 0
	}
	return index / m.ItemsPerScreen()
}

// LastScreen returns the screen of the final item, or 0 for an empty menu.
func (m *Menu) LastScreen() int {
	if len(m.Items) == 0 {
		return 0
	}
	return m.ScreenOf(len(m.Items) - 1)
}
