package app

import (
	"fmt"
	"log"
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/gridio"
	"lifepaint/internal/input"
	"lifepaint/internal/sims/life"
	"lifepaint/internal/ui"
)

// Mode is the top-level screen the application is in.
type Mode int

const (
	// ModeEditing freezes the simulation and allows painting cells.
	ModeEditing Mode = iota
	// ModeRunning advances one generation per tick; painting is disabled.
	ModeRunning
	// ModeSettings hides the grid and shows toggles and file actions.
	ModeSettings
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeRunning:
		return "running"
	case ModeSettings:
		return "settings"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// StatusTTL is how long a status message stays on screen.
const StatusTTL = 3 * time.Second

// State is the complete application state, independent of any graphics
// backend.
type State struct {
	Grid     *core.Grid
	Life     *life.Life
	Settings core.Settings

	// Clock supplies the current time for status expiry and tick gating.
	Clock     func() time.Time
	Clipboard Clipboard

	mode     Mode
	prevMode Mode
	step     *core.FixedStep

	status      string
	statusUntil time.Time

	viewportW, viewportH int
	centered             bool

	file    string
	seed    int64
	density float64
}

// New builds the initial state from cfg.
func New(cfg *Config) (*State, error) {
	rule, err := core.LookupRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	g := core.NewGrid(cfg.Rows, cfg.Cols, cfg.CellSize)
	settings := core.DefaultSettings()
	settings.InvertScroll = cfg.InvertScroll
	settings.GridLines = cfg.GridLines
	return &State{
		Grid:      g,
		Life:      life.New(g, rule),
		Settings:  settings,
		Clock:     time.Now,
		Clipboard: SystemClipboard{},
		mode:      ModeEditing,
		prevMode:  ModeEditing,
		step:      core.NewFixedStep(cfg.Tick()),
		file:      cfg.File,
		seed:      cfg.Seed,
		density:   cfg.Density,
	}, nil
}

// Mode returns the current mode.
func (s *State) Mode() Mode { return s.mode }

// File returns the path used by import/export.
func (s *State) File() string { return s.file }

// Viewport returns the last known drawable size.
func (s *State) Viewport() (int, int) { return s.viewportW, s.viewportH }

// SetViewport records the drawable size. The first call centers the grid;
// later calls re-clamp the offsets to the new size.
func (s *State) SetViewport(w, h int) {
	if w <= 0 || h <= 0 || (w == s.viewportW && h == s.viewportH) {
		return
	}
	s.viewportW, s.viewportH = w, h
	if !s.centered {
		s.Grid.JumpToCenter(w, h)
		s.centered = true
		return
	}
	s.Grid.Pan(0, 0, w, h)
}

// Status returns the transient status message, or "" once it has expired.
func (s *State) Status() string { return s.status }

// SetStatus shows msg for StatusTTL.
func (s *State) SetStatus(msg string) {
	s.status = msg
	s.statusUntil = s.Clock().Add(StatusTTL)
}

// Allowed reports whether cmd is available in the current mode.
func (s *State) Allowed(cmd ui.Command) bool {
	switch cmd {
	case ui.CmdStart, ui.CmdStep, ui.CmdClear, ui.CmdRandom:
		return s.mode == ModeEditing
	case ui.CmdPause:
		return s.mode == ModeRunning
	case ui.CmdCenter:
		return s.mode != ModeSettings
	case ui.CmdSettings:
		return s.mode != ModeSettings
	case ui.CmdBack, ui.CmdImport, ui.CmdExport, ui.CmdCopy, ui.CmdToggleSetting, ui.CmdNextRule:
		return s.mode == ModeSettings
	case ui.CmdNone:
		return false
	default:
		return false
	}
}

// Execute performs cmd if it is allowed in the current mode.
func (s *State) Execute(cmd ui.Command) bool {
	if !s.Allowed(cmd) {
		return false
	}
	switch cmd {
	case ui.CmdStart:
		s.mode = ModeRunning
		s.step.Reset(s.Clock())
	case ui.CmdPause:
		s.mode = ModeEditing
	case ui.CmdStep:
		s.Life.Step()
	case ui.CmdClear:
		s.Grid.Clear()
		s.Life.Reset()
	case ui.CmdCenter:
		s.Grid.JumpToCenter(s.viewportW, s.viewportH)
	case ui.CmdRandom:
		core.FillRandom(s.Grid, s.seed, s.density)
		s.seed++
		s.Life.Reset()
	case ui.CmdSettings:
		s.prevMode = s.mode
		s.mode = ModeSettings
	case ui.CmdBack:
		s.mode = s.prevMode
		if s.mode == ModeRunning {
			s.step.Reset(s.Clock())
		}
	case ui.CmdImport:
		s.importGrid()
	case ui.CmdExport:
		s.exportGrid()
	case ui.CmdCopy:
		s.copyGrid()
	case ui.CmdNextRule:
		s.nextRule()
	}
	return true
}

// ToggleSetting flips a settings checkbox. Only available in settings mode.
func (s *State) ToggleSetting(key core.SettingKey) bool {
	if !s.Allowed(ui.CmdToggleSetting) {
		return false
	}
	return s.Settings.Flip(key)
}

// TogglePlay starts or pauses the simulation.
func (s *State) TogglePlay() bool {
	if s.mode == ModeRunning {
		return s.Execute(ui.CmdPause)
	}
	return s.Execute(ui.CmdStart)
}

// nextRule switches to the registered rule after the current one.
func (s *State) nextRule() {
	names := core.Rules()
	if len(names) == 0 {
		return
	}
	cur := s.Life.Rule().Name
	next := names[0]
	for i, name := range names {
		if name == cur {
			next = names[(i+1)%len(names)]
			break
		}
	}
	rule, err := core.LookupRule(next)
	if err != nil {
		s.SetStatus("Rule change failed: " + err.Error())
		return
	}
	s.Life.SetRule(rule)
	s.SetStatus(fmt.Sprintf("Rule %s (%s)", rule.Name, rule))
}

// Hover describes the cell under screen pixel (x, y) for the stats overlay.
func (s *State) Hover(x, y int) (string, bool) {
	if s.mode == ModeSettings {
		return "", false
	}
	row, col, ok := s.Grid.ScreenToCell(x, y)
	if !ok {
		return "", false
	}
	state := "dead"
	if s.Grid.At(row, col) {
		state = "alive"
	}
	return fmt.Sprintf("cell %d,%d %s  neighbors %d", row, col, state, life.CountNeighbors(s.Grid, row, col)), true
}

func (s *State) importGrid() {
	if err := gridio.ImportFile(s.file, s.Grid); err != nil {
		log.Printf("import failed: %v", err)
		s.SetStatus("Import failed: " + err.Error())
		return
	}
	s.Life.Reset()
	s.Grid.JumpToCenter(s.viewportW, s.viewportH)
	log.Printf("grid imported from %s (%dx%d)", s.file, s.Grid.Rows, s.Grid.Cols)
	s.SetStatus(fmt.Sprintf("Imported %dx%d grid from %s", s.Grid.Rows, s.Grid.Cols, s.file))
}

func (s *State) exportGrid() {
	if err := gridio.ExportFile(s.file, s.Grid); err != nil {
		log.Printf("export failed: %v", err)
		s.SetStatus("Export failed: " + err.Error())
		return
	}
	log.Printf("grid exported to %s", s.file)
	s.SetStatus("Exported grid to " + s.file)
}

func (s *State) copyGrid() {
	if s.Clipboard == nil {
		s.SetStatus("Copy failed: no clipboard")
		return
	}
	if err := s.Clipboard.WriteAll(gridio.Encode(s.Grid)); err != nil {
		log.Printf("copy failed: %v", err)
		s.SetStatus("Copy failed: " + err.Error())
		return
	}
	s.SetStatus("Copied grid to clipboard")
}

// Bar lays out the buttons for the current mode.
func (s *State) Bar() ui.Bar {
	if s.mode == ModeSettings {
		specs := []ui.Spec{}
		for _, t := range s.Settings.Toggles() {
			specs = append(specs, ui.Spec{
				Label:   ui.CheckboxLabel(t.Label, t.Value),
				Command: ui.CmdToggleSetting,
				Setting: t.Key,
				Enabled: true,
			})
		}
		specs = append(specs, ui.Spec{
			Label:   "Rule: " + s.Life.Rule().Name,
			Command: ui.CmdNextRule,
			Enabled: true,
		})
		for _, c := range []struct {
			label string
			cmd   ui.Command
		}{
			{"Import " + s.file, ui.CmdImport},
			{"Export " + s.file, ui.CmdExport},
			{"Copy to Clipboard", ui.CmdCopy},
			{"Back", ui.CmdBack},
		} {
			specs = append(specs, ui.Spec{Label: c.label, Command: c.cmd, Enabled: s.Allowed(c.cmd)})
		}
		return ui.LayoutColumn(specs, toolbarMargin*4, toolbarMargin*4)
	}

	play := ui.Spec{Label: "Start", Command: ui.CmdStart}
	if s.mode == ModeRunning {
		play = ui.Spec{Label: "Pause", Command: ui.CmdPause}
	}
	specs := []ui.Spec{
		play,
		{Label: "Step", Command: ui.CmdStep},
		{Label: "Clear", Command: ui.CmdClear},
		{Label: "Random", Command: ui.CmdRandom},
		{Label: "Center", Command: ui.CmdCenter},
		{Label: "Settings", Command: ui.CmdSettings},
	}
	for i := range specs {
		specs[i].Enabled = s.Allowed(specs[i].Command)
	}
	return ui.LayoutRow(specs, toolbarMargin, toolbarMargin, s.viewportW-2*toolbarMargin)
}

const toolbarMargin = 10

// Click routes a primary-button press at (x, y) to the toolbar. It reports
// whether the press landed on a button and must not reach the grid.
func (s *State) Click(x, y int) bool {
	bar := s.Bar()
	if btn, ok := bar.HitTest(x, y); ok {
		if btn.Command == ui.CmdToggleSetting {
			s.ToggleSetting(btn.Setting)
		} else {
			s.Execute(btn.Command)
		}
		return true
	}
	return bar.Covers(x, y) || s.mode == ModeSettings
}

// Apply routes an input action to the grid according to the current mode.
func (s *State) Apply(a input.Action) {
	switch a.Kind {
	case input.ActionTap:
		if s.Click(a.X, a.Y) {
			return
		}
		if s.mode == ModeEditing {
			s.Grid.ToggleScreen(a.X, a.Y)
		}
	case input.ActionPan:
		if s.mode == ModeSettings {
			return
		}
		s.pan(a.DX, a.DY)
	case input.ActionZoom:
		if s.mode == ModeSettings {
			return
		}
		if s.Grid.Zoom(a.Factor, a.X, a.Y) {
			s.pan(0, 0)
		}
	}
}

// pan clamps against the viewport once its size is known.
func (s *State) pan(dx, dy int) {
	if s.viewportW <= 0 || s.viewportH <= 0 {
		s.Grid.View.OffsetX += dx
		s.Grid.View.OffsetY += dy
		return
	}
	s.Grid.Pan(dx, dy, s.viewportW, s.viewportH)
}

// Tick advances the simulation by one generation when running and the
// interval has elapsed, and expires the status message. It reports whether a
// generation was computed.
func (s *State) Tick(now time.Time) bool {
	if s.status != "" && !now.Before(s.statusUntil) {
		s.status = ""
	}
	if s.mode != ModeRunning {
		return false
	}
	if !s.step.Due(now) {
		return false
	}
	s.Life.Step()
	return true
}
