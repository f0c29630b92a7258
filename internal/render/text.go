package render

import (
	"strings"

	"torus-life/internal/core"
)

// Glyphs used by Text. They match the pattern syntax accepted by core.Pattern.
const (
	AliveGlyph = 'O'
	DeadGlyph  = '.'
)

// Text renders the current generation one row per line.
func Text(g *core.Grid) string {
	var b strings.Builder
	b.Grow((g.Cols() + 1) * g.Rows())
	cells := g.Cells()
	for row := 0; row < g.Rows(); row++ {
		for _, c := range cells[row*g.Cols() : (row+1)*g.Cols()] {
			if c != 0 {
				b.WriteByte(AliveGlyph)
			} else {
				b.WriteByte(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Status formats a parameter snapshot as a single line of label/value pairs.
func Status(snap core.ParameterSnapshot) string {
	parts := make([]string, 0, len(snap.Params))
	for _, p := range snap.Params {
		parts = append(parts, p.Label+": "+p.Value)
	}
	return strings.Join(parts, "  ")
}
