package core

import (
	"slices"
	"testing"
)

func mustPattern(t *testing.T, name string) Pattern {
	t.Helper()
	p, ok := LookupPattern(name)
	if !ok {
		t.Fatalf("pattern %q not found", name)
	}
	return p
}

func TestStampWrapsAroundEdges(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Stamp(mustPattern(t, "block"), 3, 3)
	want := []Cell{{0, 0}, {0, 3}, {3, 0}, {3, 3}}
	if got := g.Alive(); !slices.Equal(got, want) {
		t.Fatalf("stamped block at corner = %v, expected %v", got, want)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Stamp(Pattern{Rows: []string{"O", "O", "O"}}, 1, 2)

	g.Step(Conway)
	want := []Cell{{2, 1}, {2, 2}, {2, 3}}
	if got := g.Alive(); !slices.Equal(got, want) {
		t.Fatalf("after first step alive = %v, expected %v", got, want)
	}

	g.Step(Conway)
	want = []Cell{{1, 2}, {2, 2}, {3, 2}}
	if got := g.Alive(); !slices.Equal(got, want) {
		t.Fatalf("after second step alive = %v, expected %v", got, want)
	}
}

func TestStillLifesAndPeriods(t *testing.T) {
	cases := []struct {
		name   string
		period int
	}{
		{"block", 1},
		{"blinker", 2},
		{"toad", 2},
		{"beacon", 2},
		{"pulsar", 3},
	}
	for _, tc := range cases {
		g := mustGrid(t, 20, 20)
		g.Stamp(mustPattern(t, tc.name), 3, 3)
		start := g.Snapshot()
		for i := 0; i < tc.period; i++ {
			g.Step(Conway)
		}
		if !slices.Equal(start, g.Cells()) {
			t.Fatalf("%s did not return to its start after %d steps", tc.name, tc.period)
		}
	}
}

func TestGliderTranslatesOnTorus(t *testing.T) {
	g := mustGrid(t, 8, 8)
	g.Stamp(mustPattern(t, "glider"), 0, 0)
	start := g.Alive()
	// A glider moves one cell down and right every four generations; after
	// 32 it has crossed the whole 8x8 torus.
	for i := 0; i < 32; i++ {
		g.Step(Conway)
	}
	if got := g.Alive(); !slices.Equal(got, start) {
		t.Fatalf("glider after 32 steps = %v, expected %v", got, start)
	}
	if g.Population() != 5 {
		t.Fatalf("glider population = %d", g.Population())
	}
}

func TestPatternNamesAndSize(t *testing.T) {
	names := PatternNames()
	if !slices.IsSorted(names) || len(names) != 6 {
		t.Fatalf("PatternNames() = %v", names)
	}
	if s := mustPattern(t, "pulsar").Size(); s.W != 13 || s.H != 13 {
		t.Fatalf("pulsar size = %+v", s)
	}
	if s := mustPattern(t, "toad").Size(); s.W != 4 || s.H != 2 {
		t.Fatalf("toad size = %+v", s)
	}
}
