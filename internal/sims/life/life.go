package life

import "lifepaint/internal/core"

// Life advances a grid one generation at a time under a life-like rule,
// keeping a reusable back buffer between steps.
type Life struct {
	grid *core.Grid
	rule core.Rule
	nxt  []bool
	gen  int
}

// New returns a stepper bound to g using rule.
func New(g *core.Grid, rule core.Rule) *Life {
	return &Life{grid: g, rule: rule}
}

// Rule returns the active rule.
func (l *Life) Rule() core.Rule { return l.rule }

// SetRule changes the rule used by subsequent steps.
func (l *Life) SetRule(r core.Rule) { l.rule = r }

// Generation returns the number of steps taken since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Reset zeroes the generation counter, e.g. after the grid was edited or
// replaced.
func (l *Life) Reset() { l.gen = 0 }

// Step advances the grid by one generation.
func (l *Life) Step() {
	g := l.grid
	if g.Rows == 0 || g.Cols == 0 {
		return
	}
	if len(l.nxt) != len(g.Cells()) {
		l.nxt = make([]bool, len(g.Cells()))
	}
	next(g, l.rule, l.nxt)
	l.nxt = g.Swap(l.nxt)
	l.gen++
}

// Step advances g by one generation under Conway's rule.
func Step(g *core.Grid) {
	if g.Rows == 0 || g.Cols == 0 {
		return
	}
	buf := make([]bool, len(g.Cells()))
	next(g, core.Conway, buf)
	g.Swap(buf)
}

// next writes the successor of g into dst. g is only read.
func next(g *core.Grid, rule core.Rule, dst []bool) {
	cur := g.Cells()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			idx := row*g.Cols + col
			dst[idx] = rule.Next(cur[idx], CountNeighbors(g, row, col))
		}
	}
}

// CountNeighbors counts live cells in the Moore neighborhood of (row, col).
// Cells beyond the edge count as dead.
func CountNeighbors(g *core.Grid, row, col int) int {
	cur := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		y := row + dy
		if y < 0 || y >= g.Rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x := col + dx
			if x < 0 || x >= g.Cols {
				continue
			}
			if cur[y*g.Cols+x] {
				n++
			}
		}
	}
	return n
}
