package core

// Grid stores a rows×cols field of live/dead cells in row-major order together
// with the view transform used to map cells onto the screen.
type Grid struct {
	Rows, Cols int
	View       View

	cells []bool
}

// NewGrid allocates an all-dead grid. Non-positive dimensions produce an empty
// board rather than an error.
func NewGrid(rows, cols, cellSize int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		View:  NewView(cellSize, DefaultLimits()),
		cells: make([]bool, rows*cols),
	}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At reports whether the cell is alive. Coordinates outside the grid are dead.
func (g *Grid) At(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[g.Index(row, col)]
}

// Set updates a single cell; out of range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[g.Index(row, col)] = alive
}

// Toggle flips a cell and returns its new state.
func (g *Grid) Toggle(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	idx := g.Index(row, col)
	g.cells[idx] = !g.cells[idx]
	return g.cells[idx]
}

// Clear kills every cell. Dimensions are unchanged.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy including the view.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = append([]bool(nil), g.cells...)
	return &c
}

// Replace swaps in a new cell matrix, resizing the grid. The view is kept.
// cells must hold exactly rows*cols entries.
func (g *Grid) Replace(rows, cols int, cells []bool) {
	if rows < 0 || cols < 0 || len(cells) != rows*cols {
		return
	}
	g.Rows = rows
	g.Cols = cols
	g.cells = cells
}

// Swap exchanges the cell buffer with next, which must have the same length,
// and returns the previous buffer for reuse.
func (g *Grid) Swap(next []bool) []bool {
	if len(next) != len(g.cells) {
		return next
	}
	prev := g.cells
	g.cells = next
	return prev
}
