// Package menudef builds menu trees from YAML definition files. The file
// owns the tree the same way an embedding application would: values
// declared here are allocated by the loader and stay alive as long as the
// returned menus. Actions are referenced by name and bound against a
// handler map supplied by the caller.
package menudef

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
)

// MenuDef describes one menu node.
type MenuDef struct {
	// Title overrides the derived header title.
	Title string `yaml:"title"`
	// Total is the preformatted item count for the navigation counter.
	Total string `yaml:"total"`
	// Reserved lists row bands (0..7) carved out for external content.
	Reserved []int `yaml:"reserved"`
	// Selection turns the node into an option menu with the given item
	// pre-selected.
	Selection *int `yaml:"selection"`
	// Frozen keeps the cursor untouched on back-navigation.
	Frozen bool      `yaml:"frozen"`
	Items  []ItemDef `yaml:"items"`
}

// ItemDef describes one item. At most one of int/float/text may be set.
type ItemDef struct {
	Index       string `yaml:"index"`
	Description string `yaml:"description"`

	Int   *int     `yaml:"int"`
	Float *float64 `yaml:"float"`
	Text  *string  `yaml:"text"`
	// Decimals fixes the float precision to 1..5; zero selects automatic
	// precision.
	Decimals int `yaml:"decimals"`

	Align    string `yaml:"align"`
	Swap     bool   `yaml:"swap"`
	Disabled bool   `yaml:"disabled"`
	Extend   bool   `yaml:"extend"`
	Category uint8  `yaml:"category"`

	// Action names a handler in the caller's action map.
	Action string `yaml:"action"`
	// Menu nests a submenu under this item.
	Menu *MenuDef `yaml:"menu"`
}

// Load reads and builds a menu tree from a YAML file.
func Load(path string, actions map[string]menu.Action) (*menu.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu definition: %w", err)
	}
	m, err := Parse(data, actions)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Parse builds a menu tree from YAML bytes.
func Parse(data []byte, actions map[string]menu.Action) (*menu.Menu, error) {
	var def MenuDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("unmarshal menu definition: %w", err)
	}
	return Build(&def, actions)
}

// Build turns a definition into a linked menu tree. Parent references are
// not wired here; the navigation machine establishes them on descent.
func Build(def *MenuDef, actions map[string]menu.Action) (*menu.Menu, error) {
	return build(def, actions, "menu")
}

func build(def *MenuDef, actions map[string]menu.Action, path string) (*menu.Menu, error) {
	m := &menu.Menu{
		Header:       def.Title,
		TotalText:    def.Total,
		SelectedItem: menu.NoSelection,
	}

	switch {
	case def.Selection != nil && def.Frozen:
		return nil, fmt.Errorf("%s: selection and frozen are mutually exclusive", path)
	case def.Frozen:
		m.SelectedItem = menu.FrozenSelection
	case def.Selection != nil:
		if *def.Selection < 0 || *def.Selection >= len(def.Items) {
			return nil, fmt.Errorf("%s: selection %d out of range", path, *def.Selection)
		}
		m.SelectedItem = *def.Selection
	}

	itemRows := menu.Rows - 1
	for _, row := range def.Reserved {
		if row < 0 || row >= menu.Rows {
			return nil, fmt.Errorf("%s: reserved row %d out of range", path, row)
		}
		if row > 0 && !m.Reserved.Reserved(row) {
			itemRows--
		}
		m.Reserved |= 1 << uint(row)
	}
	if itemRows < 1 {
		return nil, fmt.Errorf("%s: no item row left unreserved", path)
	}

	for i := range def.Items {
		it, err := buildItem(&def.Items[i], actions, fmt.Sprintf("%s.items[%d]", path, i))
		if err != nil {
			return nil, err
		}
		m.Items = append(m.Items, it)
	}
	if len(m.Items) > 0 && m.Items[0].Extend {
		return nil, fmt.Errorf("%s: first item cannot extend a previous one", path)
	}
	return m, nil
}

func buildItem(def *ItemDef, actions map[string]menu.Action, path string) (menu.Item, error) {
	it := menu.Item{
		Index:       def.Index,
		Description: def.Description,
		Value:       menu.NoValue(),
		// continuation rows are never a cursor target
		Disabled:    def.Disabled || def.Extend,
		Extend:      def.Extend,
		Swap:        def.Swap,
		Category:    def.Category,
	}

	switch def.Align {
	case "", "left":
		it.Align = menu.AlignLeft
	case "right":
		it.Align = menu.AlignRight
	case "center":
		it.Align = menu.AlignCenter
	case "split":
		it.Align = menu.AlignSplit
	default:
		return it, fmt.Errorf("%s: unknown alignment %q", path, def.Align)
	}

	set := 0
	if def.Int != nil {
		set++
	}
	if def.Float != nil {
		set++
	}
	if def.Text != nil {
		set++
	}
	if set > 1 {
		return it, fmt.Errorf("%s: multiple value kinds set", path)
	}
	switch {
	case def.Int != nil:
		v := *def.Int
		it.Value = menu.IntValue(&v)
	case def.Float != nil:
		v := *def.Float
		if def.Decimals < 0 || def.Decimals > 5 {
			return it, fmt.Errorf("%s: decimals %d out of range", path, def.Decimals)
		}
		if def.Decimals == 0 {
			it.Value = menu.AutoFloatValue(&v)
		} else {
			it.Value = menu.FloatValue(&v, def.Decimals)
		}
	case def.Text != nil:
		v := *def.Text
		it.Value = menu.TextValue(&v)
	}

	if def.Action != "" {
		action, ok := actions[def.Action]
		if !ok {
			return it, fmt.Errorf("%s: unknown action %q", path, def.Action)
		}
		it.Action = action
		it.Args = def.Action
	}

	if def.Menu != nil {
		sub, err := build(def.Menu, actions, path+".menu")
		if err != nil {
			return it, err
		}
		it.Submenu = sub
	}
	return it, nil
}
