package menu

// Align places an item row horizontally within the display width.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
	// AlignSplit pins the leading field to the left margin and the
	// trailing field to the right margin.
	AlignSplit
)

// ValueKind tags the live value attached to an item.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueFloat
	ValueText
)

// AutoDecimals asks the renderer to derive the decimal count from the
// float value itself.
const AutoDecimals = -1

// Value binds an item to external data by pointer, so the display always
// shows the current state without the menu tree being rebuilt.
type Value struct {
	kind     ValueKind
	intp     *int
	floatp   *float64
	textp    *string
	decimals int
}

// NoValue returns the zero Value; the item shows no value field.
func NoValue() Value {
	return Value{}
}

// IntValue binds an integer.
func IntValue(p *int) Value {
	return Value{kind: ValueInt, intp: p}
}

// FloatValue binds a float rendered with a fixed number of decimals,
// clamped to 1..5.
func FloatValue(p *float64, decimals int) Value {
	if decimals < 1 {
		decimals = 1
	}
	if decimals > 5 {
		decimals = 5
	}
	return Value{kind: ValueFloat, floatp: p, decimals: decimals}
}

// AutoFloatValue binds a float whose decimal count is derived from the
// value at draw time.
func AutoFloatValue(p *float64) Value {
	return Value{kind: ValueFloat, floatp: p, decimals: AutoDecimals}
}

// TextValue binds a string.
func TextValue(p *string) Value {
	return Value{kind: ValueText, textp: p}
}

// Kind reports the value kind. A binding whose pointer is nil degrades to
// ValueNone.
func (v Value) Kind() ValueKind {
	switch v.kind {
	case ValueInt:
		if v.intp == nil {
			return ValueNone
		}
	case ValueFloat:
		if v.floatp == nil {
			return ValueNone
		}
	case ValueText:
		if v.textp == nil {
			return ValueNone
		}
	}
	return v.kind
}

func (v Value) Int() int {
	return *v.intp
}

func (v Value) Float() float64 {
	return *v.floatp
}

func (v Value) Text() string {
	return *v.textp
}

// Decimals returns the configured decimal count, or AutoDecimals.
func (v Value) Decimals() int {
	return v.decimals
}

// Action runs when its item is entered. Returning true marks the event
// handled and suppresses descent into the item's submenu.
type Action func(args any) (handled bool)

// Graphics references an image block drawn outside the row grid, with
// inclusive pixel bounds.
type Graphics struct {
	Image          []byte
	X0, Y0, X1, Y1 int
}

// Item is a single menu entry. All fields are owned by the embedding
// application; the menu system only reads them.
type Item struct {
	// Index is the short leading label, usually a number. An empty index
	// takes no row space.
	Index string

	// Description is the item text.
	Description string

	// Value optionally shows live data next to the description.
	Value Value

	// Submenu is entered when the item is activated, unless the action
	// reports the activation handled.
	Submenu *Menu

	// Action is invoked with Args on activation.
	Action Action
	Args   any

	// Graphics optionally attaches imagery to the item for external
	// rendering.
	Graphics *Graphics

	// Disabled items are skipped by cursor movement.
	Disabled bool

	// Extend marks this row as a continuation of the previous item,
	// highlighted together with its master row. Builders set Disabled
	// alongside it; cursor movement skips only disabled items.
	Extend bool

	// Swap draws the value before the description.
	Swap bool

	Align Align

	// Category is free for application grouping; the menu system ignores
	// it.
	Category uint8
}
