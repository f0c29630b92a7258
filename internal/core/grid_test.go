package core

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

func TestNewGridAllDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {4, 7}, {16, 2}} {
		g := mustGrid(t, dims[0], dims[1])
		if g.Rows() != dims[0] || g.Cols() != dims[1] {
			t.Fatalf("grid size %dx%d, expected %dx%d", g.Rows(), g.Cols(), dims[0], dims[1])
		}
		if g.Generation() != 0 {
			t.Fatalf("new grid generation = %d", g.Generation())
		}
		if len(g.Cells()) != dims[0]*dims[1] {
			t.Fatalf("cells len = %d, expected %d", len(g.Cells()), dims[0]*dims[1])
		}
		for i, c := range g.Cells() {
			if c != 0 {
				t.Fatalf("cell %d = %d on a new %dx%d grid", i, c, dims[0], dims[1])
			}
		}
	}
}

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 5}, {5, -2}, {0, 0}, {1 << 20, 1 << 20}, {math.MaxInt, 2}, {MaxCells + 1, 1}} {
		g, err := NewGrid(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d, %d) err = %v, expected ErrInvalidDimension", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d, %d) returned a grid alongside the error", dims[0], dims[1])
		}
	}
}

func TestToggleCellFlipsExactlyOneCell(t *testing.T) {
	g := mustGrid(t, 4, 5)
	g.SetCell(2, 3, 1)
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			before := g.Snapshot()
			g.ToggleCell(row, col)
			after := g.Cells()
			for i := range before {
				changed := before[i] != after[i]
				if changed != (i == g.Index(row, col)) {
					t.Fatalf("toggle (%d,%d) changed index %d=%v", row, col, i, changed)
				}
			}
			g.ToggleCell(row, col)
			if !slices.Equal(before, g.Cells()) {
				t.Fatalf("double toggle at (%d,%d) did not restore the grid", row, col)
			}
		}
	}
}

func TestSetCellValues(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.SetCell(0, 0, 1)
	if g.Cell(0, 0) != 1 {
		t.Fatal("SetCell(0,0,1) did not set the cell")
	}
	g.SetCell(0, 0, 1)
	if g.Cell(0, 0) != 1 {
		t.Fatal("SetCell with explicit value must not flip")
	}
	g.SetCell(0, 0, 0)
	if g.Cell(0, 0) != 0 {
		t.Fatal("SetCell(0,0,0) did not clear the cell")
	}

	g.SetCell(1, 1, 1)
	before := g.Snapshot()
	for _, v := range []uint8{2, 7, 255} {
		g.SetCell(1, 1, v)
		g.SetCell(2, 2, v)
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("SetCell with a value other than 0/1 must be a no-op")
	}
}

func TestOutOfRangeWritesAreIgnored(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.SetCell(1, 2, 1)
	before := g.Snapshot()
	for _, rc := range [][2]int{{10, 10}, {-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-5, 9}} {
		g.ToggleCell(rc[0], rc[1])
		g.SetCell(rc[0], rc[1], 1)
		g.SetCell(rc[0], rc[1], 0)
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatalf("out-of-range writes changed the grid: %v -> %v", before, g.Cells())
	}
}

func TestClearResetsGeneration(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Stamp(mustPattern(t, "blinker"), 1, 0)
	g.Step(Conway)
	g.Step(Conway)
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", g.Generation())
	}
	g.Clear()
	if g.Generation() != 0 {
		t.Fatalf("generation after Clear = %d", g.Generation())
	}
	if g.Population() != 0 {
		t.Fatalf("population after Clear = %d", g.Population())
	}
}

func TestRandomizeBinaryAndDeterministic(t *testing.T) {
	a := mustGrid(t, 32, 32)
	b := mustGrid(t, 32, 32)
	a.Step(Conway)
	a.Randomize(NewRNG(7))
	b.Randomize(NewRNG(7))

	if a.Generation() != 1 {
		t.Fatalf("Randomize touched the generation counter: %d", a.Generation())
	}
	for i, c := range a.Cells() {
		if c != 0 && c != 1 {
			t.Fatalf("cell %d = %d after Randomize", i, c)
		}
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Randomize with the same seed produced different grids")
	}

	// round(u*10) < 2 holds for u < 0.15.
	pop := a.Population()
	if pop < 80 || pop > 240 {
		t.Fatalf("population %d of 1024 is far from the expected ~15%% density", pop)
	}
}

func TestLiveNeighborCountSmallTorus(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.SetCell(0, 0, 1)
	if got := g.LiveNeighborCount(1, 1); got != 1 {
		t.Fatalf("count at (1,1) = %d, expected 1", got)
	}
	if got := g.LiveNeighborCount(2, 2); got != 1 {
		t.Fatalf("count at (2,2) = %d, expected 1 through the wrapped corner", got)
	}

	g.Clear()
	for _, rc := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}} {
		g.ToggleCell(rc[0], rc[1])
	}
	for _, rc := range [][2]int{{1, 1}, {0, 1}, {0, 0}} {
		if got := g.LiveNeighborCount(rc[0], rc[1]); got != 5 {
			t.Fatalf("count at (%d,%d) = %d, expected 5", rc[0], rc[1], got)
		}
	}
	if got := g.LiveNeighborCount(10, 10); got != 0 {
		t.Fatalf("out-of-range count = %d, expected 0", got)
	}
}

func TestLiveNeighborCountWrapInvariant(t *testing.T) {
	g := mustGrid(t, 6, 9)
	g.Randomize(NewRNG(3))
	rows, cols := g.Rows(), g.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			want := g.LiveNeighborCount(row, col)
			wr, wc := g.Wrap(row+rows, col+cols)
			if got := g.LiveNeighborCount(wr, wc); got != want {
				t.Fatalf("count at wrapped (%d,%d) = %d, expected %d", row+rows, col+cols, got, want)
			}
			wr, wc = g.Wrap(row-rows, col-2*cols)
			if got := g.LiveNeighborCount(wr, wc); got != want {
				t.Fatalf("count at negative wrap of (%d,%d) = %d, expected %d", row, col, got, want)
			}
			if got := g.LiveNeighborCount(row+rows, col+cols); got != 0 {
				t.Fatalf("unwrapped out-of-range count at (%d,%d) = %d, expected 0", row+rows, col+cols, got)
			}
		}
	}
}

func TestLiveNeighborCountCornerWraps(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.SetCell(4, 4, 1)
	g.SetCell(0, 4, 1)
	g.SetCell(4, 0, 1)
	if got := g.LiveNeighborCount(0, 0); got != 3 {
		t.Fatalf("corner count = %d, expected 3", got)
	}
	for i := 0; i < 5; i++ {
		if got := g.LiveNeighborCount(2, i); got != 0 {
			t.Fatalf("middle row count at col %d = %d, expected 0", i, got)
		}
	}
}

func TestStepUsesSingleSnapshot(t *testing.T) {
	g := mustGrid(t, 1, 4)
	g.SetCell(0, 0, 1)

	// A cell is born next to any live neighbor. Reading partially updated
	// state would let the birth ripple along the row in a single step.
	spread := func(alive uint8, neighbors int) uint8 {
		if alive == 1 || neighbors > 0 {
			return 1
		}
		return 0
	}
	g.Step(spread)

	// On a 1x4 torus (0,0)'s neighbors are columns 1 and 3 (each counted
	// three times through the vertical wrap).
	want := []uint8{1, 1, 0, 1}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells after one step = %v, expected %v", g.Cells(), want)
	}
	if g.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", g.Generation())
	}
}

func TestStepNormalizesRuleOutput(t *testing.T) {
	g := mustGrid(t, 2, 2)
	g.Step(func(uint8, int) uint8 { return 9 })
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d = %d, rule outputs other than 1 must produce dead cells", i, c)
		}
	}
}

func TestAliveRowMajor(t *testing.T) {
	g := mustGrid(t, 3, 4)
	g.SetCell(2, 1, 1)
	g.SetCell(0, 3, 1)
	g.SetCell(1, 0, 1)
	want := []Cell{{Row: 0, Col: 3}, {Row: 1, Col: 0}, {Row: 2, Col: 1}}
	if got := g.Alive(); !slices.Equal(got, want) {
		t.Fatalf("Alive() = %v, expected %v", got, want)
	}
	if g.Population() != 3 {
		t.Fatalf("Population() = %d, expected 3", g.Population())
	}
}
