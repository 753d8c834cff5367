package config

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	File     string  `json:"-"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	CellSize int     `json:"cell_size"`
	TPS      int     `json:"tps"`
	GPS      int     `json:"gps"`
	Seed     int64   `json:"seed"`
	Density  float64 `json:"density"`
	Paused   bool    `json:"paused"`
	ShowHUD  bool    `json:"show_hud"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    80,
		Height:   80,
		CellSize: 10,
		TPS:      60,
		Density:  0.5,
		Paused:   true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file, overridden by flags")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (multiple of 8)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second, 0 steps every frame")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")
	fs.Float64Var(&c.Density, "density", c.Density, "live probability used by random fill")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.BoolVar(&c.ShowHUD, "hud", c.ShowHUD, "show the status overlay")
}

// Parse binds the flags and parses args. When -config names a file, the file
// replaces the defaults and flags given in args still take precedence.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Parse] failed to parse flags")
	}
	if c.File != "" {
		file, err := Load(c.File)
		if err != nil {
			return err
		}
		*c = *file
		if err := fs.Parse(args); err != nil {
			return errors.Wrap(err, "[Parse] failed to parse flags")
		}
	}
	return c.Validate()
}

// Load reads a JSON config file. Fields missing from the file keep their
// defaults.
func Load(filename string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}
	cfg.File = filename
	return cfg, nil
}

// Validate reports the first setting the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	case c.Width%8 != 0:
		return errors.Errorf("grid width %d must be a multiple of 8", c.Width)
	case c.CellSize <= 0:
		return errors.Errorf("cell size %d must be positive", c.CellSize)
	case c.TPS <= 0:
		return errors.Errorf("tps %d must be positive", c.TPS)
	case c.GPS < 0:
		return errors.Errorf("gps %d must not be negative", c.GPS)
	case c.Density <= 0 || c.Density > 1:
		return errors.Errorf("density %v must be in (0, 1]", c.Density)
	}
	return nil
}
