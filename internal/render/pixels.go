package render

import (
	"image/color"

	"lifepaint/internal/core"
)

// fillBinaryRGBA converts cell data into RGBA pixels in buf, one pixel per cell.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, alive := range cells {
		base := i * 4
		if alive {
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

// cellSpan is a half-open range of rows and columns.
type cellSpan struct {
	row0, row1 int
	col0, col1 int
}

func (s cellSpan) empty() bool { return s.row0 >= s.row1 || s.col0 >= s.col1 }

// visibleRange returns the cells of g that intersect a vw×vh viewport.
func visibleRange(g *core.Grid, vw, vh int) cellSpan {
	cs := g.View.CellSize
	if cs <= 0 || g.Rows == 0 || g.Cols == 0 {
		return cellSpan{}
	}
	span := cellSpan{
		col0: floorDiv(-g.View.OffsetX, cs),
		col1: floorDiv(vw-g.View.OffsetX+cs-1, cs),
		row0: floorDiv(-g.View.OffsetY, cs),
		row1: floorDiv(vh-g.View.OffsetY+cs-1, cs),
	}
	span.col0 = clampInt(span.col0, 0, g.Cols)
	span.col1 = clampInt(span.col1, 0, g.Cols)
	span.row0 = clampInt(span.row0, 0, g.Rows)
	span.row1 = clampInt(span.row1, 0, g.Rows)
	return span
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// minimapScale picks an integer pixels-per-cell so that a rows×cols minimap
// fits within maxW×maxH; 0 means it does not fit even at one pixel per cell.
func minimapScale(rows, cols, maxW, maxH int) int {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	s := min(maxW/cols, maxH/rows)
	if s > 4 {
		s = 4
	}
	return s
}
