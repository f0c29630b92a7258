package input

import "torus-life/internal/core"

// Editor applies serialized edits to a grid. *sim.Simulator satisfies it.
type Editor interface {
	Edit(fn func(g *core.Grid))
}

// Brush turns pointer strokes in screen space into cell toggles. A stroke
// toggles the cell under the pointer on press and each newly entered cell
// while dragging; re-entering the same cell without leaving it does nothing.
type Brush struct {
	CellW, CellH     int
	OffsetX, OffsetY int

	painting bool
	last     core.Cell
}

// NewBrush returns a Brush for square cells of the given pixel size.
func NewBrush(scale int) *Brush {
	if scale <= 0 {
		scale = 1
	}
	return &Brush{CellW: scale, CellH: scale}
}

// CellAt maps a screen position to grid coordinates. Positions left of or
// above the grid map to negative coordinates.
func (b *Brush) CellAt(x, y int) core.Cell {
	return core.Cell{Row: floorDiv(y-b.OffsetY, b.CellH), Col: floorDiv(x-b.OffsetX, b.CellW)}
}

// Down starts a stroke and toggles the cell under (x, y).
func (b *Brush) Down(e Editor, x, y int) {
	b.painting = true
	b.last = b.CellAt(x, y)
	toggle(e, b.last)
}

// Move continues a stroke. It reports whether a cell was toggled.
func (b *Brush) Move(e Editor, x, y int) bool {
	if !b.painting {
		return false
	}
	c := b.CellAt(x, y)
	if c == b.last {
		return false
	}
	b.last = c
	toggle(e, c)
	return true
}

// Up ends the current stroke.
func (b *Brush) Up() { b.painting = false }

// Painting reports whether a stroke is in progress.
func (b *Brush) Painting() bool { return b.painting }

func toggle(e Editor, c core.Cell) {
	e.Edit(func(g *core.Grid) { g.ToggleCell(c.Row, c.Col) })
}

func floorDiv(a, b int) int {
	if b <= 0 {
		b = 1
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
