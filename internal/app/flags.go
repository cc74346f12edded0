package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifepaint/internal/core"
)

// Config represents the command-line parameters for the application. Values
// may also come from a JSON file named by -config; flags given on the command
// line take precedence over the file.
type Config struct {
	ConfigPath string `json:"-"`

	Rows         int     `json:"rows"`
	Cols         int     `json:"cols"`
	CellSize     int     `json:"cell_size"`
	TickMS       int     `json:"tick_ms"`
	Rule         string  `json:"rule"`
	File         string  `json:"file"`
	InvertScroll bool    `json:"invert_scroll"`
	GridLines    bool    `json:"show_grid_lines"`
	Seed         int64   `json:"seed"`
	Density      float64 `json:"density"`
	Width        int     `json:"window_width"`
	Height       int     `json:"window_height"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:      100,
		Cols:      100,
		CellSize:  core.DefaultCellSize,
		TickMS:    int(core.DefaultInterval / time.Millisecond),
		Rule:      "conway",
		File:      "grid.txt",
		GridLines: true,
		Seed:      42,
		Density:   0.25,
		Width:     800,
		Height:    600,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional JSON settings file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "initial cell size in pixels")
	fs.IntVar(&c.TickMS, "tick", c.TickMS, "milliseconds between generations")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S notation (e.g. B3/S23)")
	fs.StringVar(&c.File, "file", c.File, "grid file used by import/export")
	fs.BoolVar(&c.InvertScroll, "invert-scroll", c.InvertScroll, "invert mouse wheel zoom")
	fs.BoolVar(&c.GridLines, "grid-lines", c.GridLines, "draw cell borders")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density for the random fill")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
}

// Parse binds c to fs and parses args. When -config names a file, the file
// is applied and args are parsed again so explicit flags win.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath == "" {
		return c.Validate()
	}
	if err := c.LoadFile(c.ConfigPath); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.Validate()
}

// LoadFile overlays the JSON object stored at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", path)
	}
	return nil
}

// Validate checks ranges that would otherwise produce a useless session.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.TickMS <= 0 {
		return errors.Errorf("tick must be positive, got %dms", c.TickMS)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be within [0,1], got %g", c.Density)
	}
	if _, err := core.LookupRule(c.Rule); err != nil {
		return err
	}
	return nil
}

// Tick returns the generation interval.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}
