package render

import "image/color"

// Palette holds the colors for live and dead cells.
type Palette struct {
	Alive color.Color
	Dead  color.Color
}

// DefaultPalette draws black cells on white.
func DefaultPalette() Palette {
	return Palette{Alive: color.Black, Dead: color.White}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, p Palette) {
	rOn, gOn, bOn, aOn := p.Alive.RGBA()
	rOff, gOff, bOff, aOff := p.Dead.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
