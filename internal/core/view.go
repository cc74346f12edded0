package core

import (
	"image"
	"math"
)

// Limits bounds the zoom range of a View and the size below which painting is
// disabled.
type Limits struct {
	MinCellSize   int
	MaxCellSize   int
	MinToggleSize int
}

// DefaultLimits returns the standard zoom bounds.
func DefaultLimits() Limits {
	return Limits{MinCellSize: 2, MaxCellSize: 100, MinToggleSize: 5}
}

// DefaultCellSize is the cell edge in pixels a fresh grid starts with.
const DefaultCellSize = 20

// View maps cells to screen pixels: screenX = col*CellSize + OffsetX.
type View struct {
	CellSize int
	OffsetX  int
	OffsetY  int

	// precise accumulates fractional zoom so that repeated small factors do
	// not stall at integer truncation.
	precise float64
	limits  Limits
}

// NewView builds a view with the given cell size clamped to limits.
func NewView(cellSize int, limits Limits) View {
	if limits.MinCellSize <= 0 {
		limits.MinCellSize = 1
	}
	if limits.MaxCellSize < limits.MinCellSize {
		limits.MaxCellSize = limits.MinCellSize
	}
	v := View{limits: limits}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	v.SetCellSize(cellSize)
	return v
}

// Limits returns the bounds the view was created with.
func (v *View) Limits() Limits { return v.limits }

// SetCellSize sets the cell size directly, clamped to the configured range.
func (v *View) SetCellSize(size int) {
	if size < v.limits.MinCellSize {
		size = v.limits.MinCellSize
	}
	if size > v.limits.MaxCellSize {
		size = v.limits.MaxCellSize
	}
	v.CellSize = size
	v.precise = float64(size)
}

// CanToggle reports whether the current zoom level allows painting cells.
func (v *View) CanToggle() bool { return v.CellSize >= v.limits.MinToggleSize }

// CellAt converts a point already adjusted for the offset into (row, col).
// ok is false for negative coordinates; bounds are checked by the caller.
func (v *View) CellAt(worldX, worldY int) (row, col int, ok bool) {
	if worldX < 0 || worldY < 0 || v.CellSize <= 0 {
		return 0, 0, false
	}
	return worldY / v.CellSize, worldX / v.CellSize, true
}

// ToggleAt flips the cell under a world-pixel position. Positions outside the
// grid, or a cell size below the toggle threshold, leave the grid untouched.
func (g *Grid) ToggleAt(worldX, worldY int) bool {
	if !g.View.CanToggle() {
		return false
	}
	row, col, ok := g.View.CellAt(worldX, worldY)
	if !ok || !g.InBounds(row, col) {
		return false
	}
	g.Toggle(row, col)
	return true
}

// ScreenToCell maps a screen pixel to the cell beneath it.
func (g *Grid) ScreenToCell(sx, sy int) (row, col int, ok bool) {
	row, col, ok = g.View.CellAt(sx-g.View.OffsetX, sy-g.View.OffsetY)
	if !ok || !g.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// ToggleScreen flips the cell under a screen pixel.
func (g *Grid) ToggleScreen(sx, sy int) bool {
	return g.ToggleAt(sx-g.View.OffsetX, sy-g.View.OffsetY)
}

// CellRect returns the screen rectangle covered by (row, col).
func (g *Grid) CellRect(row, col int) image.Rectangle {
	cs := g.View.CellSize
	x := col*cs + g.View.OffsetX
	y := row*cs + g.View.OffsetY
	return image.Rect(x, y, x+cs, y+cs)
}

// Extent returns the grid size in pixels at the current zoom.
func (g *Grid) Extent() (w, h int) {
	return g.Cols * g.View.CellSize, g.Rows * g.View.CellSize
}

// Pan moves the grid by (dx, dy) pixels and clamps the result. An axis whose
// extent is smaller than the viewport is centered and ignores the delta;
// otherwise at least one cell stays visible at each edge.
func (g *Grid) Pan(dx, dy, viewportW, viewportH int) {
	extentW, extentH := g.Extent()
	g.View.OffsetX = clampAxis(g.View.OffsetX+dx, extentW, viewportW, g.View.CellSize)
	g.View.OffsetY = clampAxis(g.View.OffsetY+dy, extentH, viewportH, g.View.CellSize)
}

func clampAxis(offset, extent, viewport, cellSize int) int {
	if extent < viewport {
		return (viewport - extent) / 2
	}
	lo := -extent + cellSize
	hi := viewport - cellSize
	if offset < lo {
		return lo
	}
	if offset > hi {
		return hi
	}
	return offset
}

// Zoom scales the cell size by factor, keeping the world point under
// (pivotX, pivotY) fixed on screen. It reports whether the integer cell size
// changed.
func (g *Grid) Zoom(factor float64, pivotX, pivotY int) bool {
	v := &g.View
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return false
	}
	v.precise *= factor
	v.precise = clamp(v.precise, float64(v.limits.MinCellSize), float64(v.limits.MaxCellSize))
	// Tolerate float error so that reciprocal factors land back on the same size.
	size := int(math.Floor(v.precise + 1e-9))
	if size == v.CellSize {
		return false
	}
	old := float64(v.CellSize)
	worldX := float64(pivotX-v.OffsetX) / old
	worldY := float64(pivotY-v.OffsetY) / old
	v.CellSize = size
	v.OffsetX = pivotX - int(math.Round(worldX*float64(size)))
	v.OffsetY = pivotY - int(math.Round(worldY*float64(size)))
	return true
}

// JumpToCenter places the grid's middle cell at the center of the viewport.
func (g *Grid) JumpToCenter(viewportW, viewportH int) {
	g.View.OffsetX = viewportW/2 - (g.Cols/2)*g.View.CellSize
	g.View.OffsetY = viewportH/2 - (g.Rows/2)*g.View.CellSize
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
