//go:build ebiten

package render

import (
	"image/color"

	"lifepaint/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minLineCellSize is the smallest cell size at which grid lines are drawn.
const minLineCellSize = 4

// GridPainter draws a grid at its current view transform.
type GridPainter struct {
	OnColor   color.Color
	LineColor color.Color
	BgColor   color.Color

	mini    *ebiten.Image
	miniBuf []byte
}

// NewGridPainter returns a painter with the default palette.
func NewGridPainter() *GridPainter {
	return &GridPainter{
		OnColor:   color.White,
		LineColor: color.RGBA{R: 70, G: 70, B: 80, A: 255},
		BgColor:   color.Black,
	}
}

// Draw paints live cells and, if lines is set, the cell borders.
func (gp *GridPainter) Draw(dst *ebiten.Image, g *core.Grid, lines bool) {
	dst.Fill(gp.BgColor)
	vw, vh := dst.Bounds().Dx(), dst.Bounds().Dy()
	span := visibleRange(g, vw, vh)
	if span.empty() {
		return
	}
	cs := float32(g.View.CellSize)
	for row := span.row0; row < span.row1; row++ {
		for col := span.col0; col < span.col1; col++ {
			if !g.At(row, col) {
				continue
			}
			r := g.CellRect(row, col)
			vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), cs, cs, gp.OnColor, false)
		}
	}
	if !lines || g.View.CellSize < minLineCellSize {
		return
	}
	ox, oy := float32(g.View.OffsetX), float32(g.View.OffsetY)
	w, h := g.Extent()
	top := oy + float32(span.row0)*cs
	bottom := min(oy+float32(span.row1)*cs, oy+float32(h))
	left := ox + float32(span.col0)*cs
	right := min(ox+float32(span.col1)*cs, ox+float32(w))
	for col := span.col0; col <= span.col1; col++ {
		x := ox + float32(col)*cs
		vector.StrokeLine(dst, x, top, x, bottom, 1, gp.LineColor, false)
	}
	for row := span.row0; row <= span.row1; row++ {
		y := oy + float32(row)*cs
		vector.StrokeLine(dst, left, y, right, y, 1, gp.LineColor, false)
	}
}

// DrawMinimap blits a one-texel-per-cell thumbnail of g at (x, y) scaled to
// fit within maxW×maxH. Grids too large for the box are skipped.
func (gp *GridPainter) DrawMinimap(dst *ebiten.Image, g *core.Grid, x, y, maxW, maxH int) {
	scale := minimapScale(g.Rows, g.Cols, maxW, maxH)
	if scale == 0 {
		return
	}
	if gp.mini == nil || gp.mini.Bounds().Dx() != g.Cols || gp.mini.Bounds().Dy() != g.Rows {
		gp.mini = ebiten.NewImage(g.Cols, g.Rows)
		gp.miniBuf = make([]byte, 4*g.Rows*g.Cols)
	}
	fillBinaryRGBA(gp.miniBuf, g.Cells(), gp.OnColor, color.RGBA{R: 24, G: 24, B: 32, A: 220})
	gp.mini.WritePixels(gp.miniBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.mini, op)
	vector.StrokeRect(dst, float32(x), float32(y), float32(g.Cols*scale), float32(g.Rows*scale), 1, gp.LineColor, false)
}
