//go:build ebiten

package app

import (
	"fmt"
	"time"

	"lifepaint/internal/input"
	"lifepaint/internal/render"
	"lifepaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the application state to the ebiten.Game interface.
type Game struct {
	state   *State
	painter *render.GridPainter
	overlay *ui.Overlay

	mouse   input.Mouse
	touches *input.Touches
	mode    Mode

	touchIDs []ebiten.TouchID
	samples  []input.Touch
}

// NewGame constructs a Game around s.
func NewGame(s *State) *Game {
	return &Game{
		state:   s,
		painter: render.NewGridPainter(),
		overlay: ui.NewOverlay(),
		touches: input.NewTouches(input.NewGesture()),
	}
}

// State exposes the wrapped application state.
func (g *Game) State() *State { return g.state }

// Update polls input, applies it in arrival order and advances the simulation.
func (g *Game) Update() error {
	s := g.state
	if err := g.handleKeys(); err != nil {
		return err
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.apply(g.mouse.LeftPress(mx, my))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.mouse.RightPress(mx, my)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.mouse.RightRelease()
	}
	g.apply(g.mouse.Move(mx, my))
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.apply(g.mouse.Wheel(wy, mx, my, s.Settings.InvertScroll))
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	g.samples = g.samples[:0]
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.samples = append(g.samples, input.Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	vw, vh := s.Viewport()
	g.apply(g.touches.Update(g.samples, vw, vh))
	g.syncMode()

	s.Tick(time.Now())
	return nil
}

func (g *Game) apply(actions []input.Action) {
	for _, a := range actions {
		g.state.Apply(a)
		g.syncMode()
	}
}

// syncMode drops a half-finished touch gesture once the screen changes under
// it.
func (g *Game) syncMode() {
	if m := g.state.Mode(); m != g.mode {
		g.mode = m
		g.touches.Cancel()
	}
}

func (g *Game) handleKeys() error {
	s := g.state
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.Mode() == ModeSettings {
			s.Execute(ui.CmdBack)
			return nil
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.Execute(ui.CmdStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Execute(ui.CmdCenter)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Execute(ui.CmdRandom)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		s.Execute(ui.CmdClear)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if s.Mode() == ModeSettings {
			s.Execute(ui.CmdBack)
		} else {
			s.Execute(ui.CmdSettings)
		}
	}
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.state
	if s.Mode() == ModeSettings {
		ui.DrawSettingsBackground(screen)
		ui.DrawBar(screen, s.Bar())
		g.overlay.Draw(screen, nil, s.Status())
		return
	}

	g.painter.Draw(screen, s.Grid, s.Settings.GridLines)
	ui.DrawBar(screen, s.Bar())

	var lines []string
	if s.Settings.ShowStats {
		w := screen.Bounds().Dx()
		g.painter.DrawMinimap(screen, s.Grid, w-170, 10, 160, 160)
		lines = []string{
			fmt.Sprintf("%s  gen %d  pop %d", s.Mode(), s.Life.Generation(), s.Grid.Population()),
			fmt.Sprintf("%dx%d  cell %dpx  rule %s", s.Grid.Rows, s.Grid.Cols, s.Grid.View.CellSize, s.Life.Rule()),
		}
		if hover, ok := s.Hover(ebiten.CursorPosition()); ok {
			lines = append(lines, hover)
		}
		if !s.Grid.View.CanToggle() && s.Mode() == ModeEditing {
			lines = append(lines, fmt.Sprintf("zoom to %dpx to paint", s.Grid.View.Limits().MinToggleSize))
		}
	}
	g.overlay.Draw(screen, lines, s.Status())
}

// Layout tracks the window size as the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.state.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
