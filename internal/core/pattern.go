package core

import "sort"

// Pattern is a small named seed. Rows use 'O' for live cells; any other
// byte is dead.
type Pattern struct {
	Name string
	Rows []string
}

// Size returns the pattern's bounding box.
func (p Pattern) Size() Size {
	w := 0
	for _, row := range p.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return Size{W: w, H: len(p.Rows)}
}

// Stamp sets the pattern's live cells alive with its top-left corner at
// (row, col). Placement wraps around the grid edges.
func (g *Grid) Stamp(p Pattern, row, col int) {
	for dr, line := range p.Rows {
		for dc := 0; dc < len(line); dc++ {
			if line[dc] != 'O' {
				continue
			}
			r, c := g.Wrap(row+dr, col+dc)
			g.cur[g.Index(r, c)] = 1
		}
	}
}

var patterns = map[string]Pattern{
	"glider":  {Name: "glider", Rows: []string{".O.", "..O", "OOO"}},
	"blinker": {Name: "blinker", Rows: []string{"OOO"}},
	"block":   {Name: "block", Rows: []string{"OO", "OO"}},
	"beacon":  {Name: "beacon", Rows: []string{"OO..", "OO..", "..OO", "..OO"}},
	"toad":    {Name: "toad", Rows: []string{".OOO", "OOO."}},
	"pulsar": {Name: "pulsar", Rows: []string{
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	}},
}

// LookupPattern returns the built-in pattern with the given name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the built-in pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
