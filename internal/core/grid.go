package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a grid is requested with a
// non-positive number of rows or columns.
var ErrInvalidDimension = errors.New("core: invalid grid dimension")

// MaxCells bounds rows*cols for a single grid.
const MaxCells = 1 << 28

// Cell addresses a single grid position.
type Cell struct {
	Row, Col int
}

// Grid stores a fixed-size toroidal grid of 0/1 cells in row-major order.
// The next buffer is scratch space for Step and is never exposed.
type Grid struct {
	rows, cols int
	cur        []uint8
	nxt        []uint8
	generation uint64
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > MaxCells/cols {
		return nil, fmt.Errorf("new grid %dx%d: %w", rows, cols, ErrInvalidDimension)
	}
	total := rows * cols
	return &Grid{rows: rows, cols: cols, cur: make([]uint8, total), nxt: make([]uint8, total)}, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Generation returns the number of completed steps since creation or the
// last Clear.
func (g *Grid) Generation() uint64 { return g.generation }

// Cells exposes the current generation in row-major order. Callers must treat
// it as read-only and must not retain it across a Step.
func (g *Grid) Cells() []uint8 { return g.cur }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the value at (row, col), or 0 when out of range.
func (g *Grid) Cell(row, col int) uint8 {
	if !g.Contains(row, col) {
		return 0
	}
	return g.cur[g.Index(row, col)]
}

// SetCell writes value at (row, col). Coordinates outside the grid and values
// other than 0 or 1 are ignored.
func (g *Grid) SetCell(row, col int, value uint8) {
	if !g.Contains(row, col) || value > 1 {
		return
	}
	g.cur[g.Index(row, col)] = value
}

// ToggleCell flips the cell at (row, col). Coordinates outside the grid are
// ignored.
func (g *Grid) ToggleCell(row, col int) {
	if !g.Contains(row, col) {
		return
	}
	idx := g.Index(row, col)
	g.cur[idx] = 1 - g.cur[idx]
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
	g.generation = 0
}

// Randomize sets each cell alive with the default seeding density. The
// generation counter is left alone.
func (g *Grid) Randomize(r *RNG) {
	for i := range g.cur {
		g.cur[i] = r.seedCell()
	}
}

// LiveNeighborCount sums the eight wrapped neighbors of (row, col). Positions
// outside the grid have no neighbors.
func (g *Grid) LiveNeighborCount(row, col int) int {
	if !g.Contains(row, col) {
		return 0
	}
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := g.Wrap(row+dr, col+dc)
			count += int(g.cur[nr*g.cols+nc])
		}
	}
	return count
}

// Step computes the next generation from the current one, swaps the buffers
// and increments the generation counter. Every cell is computed from the same
// snapshot.
func (g *Grid) Step(rule Rule) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			if rule(g.cur[idx], g.LiveNeighborCount(row, col)) == 1 {
				g.nxt[idx] = 1
			} else {
				g.nxt[idx] = 0
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// Alive lists live cells in row-major order.
func (g *Grid) Alive() []Cell {
	var cells []Cell
	for i, c := range g.cur {
		if c == 1 {
			cells = append(cells, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return cells
}

// Snapshot returns a copy of the current generation.
func (g *Grid) Snapshot() []uint8 {
	return append([]uint8(nil), g.cur...)
}

// RandomizeDensity sets each cell alive with probability p.
func (g *Grid) RandomizeDensity(r *RNG, p float64) {
	r.FillDensity(g.cur, p)
}
