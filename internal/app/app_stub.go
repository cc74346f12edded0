//go:build !ebiten

package app

import "fmt"

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{ state *State }

// NewGame returns a Game that cannot run without the 'ebiten' build tag.
func NewGame(s *State) *Game { return &Game{state: s} }

// State exposes the wrapped application state.
func (g *Game) State() *State { return g.state }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
