// Package config provides configuration loading for the board and its front ends.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Autoplay  AutoplayConfig  `yaml:"autoplay"`
	View      ViewConfig      `yaml:"view"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`
}

// BoardConfig holds the initial board size and the bounds offered for resets.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	UndoDepth int `yaml:"undo_depth"`
	MinSize   int `yaml:"min_size"` // Smallest size the reset spinners allow
	MaxSize   int `yaml:"max_size"` // Largest size the reset spinners allow
}

// AutoplayConfig controls the auto-step timer.
type AutoplayConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the auto-step period.
func (a AutoplayConfig) Interval() time.Duration {
	return time.Duration(a.IntervalMS) * time.Millisecond
}

// ViewConfig holds window layout settings.
type ViewConfig struct {
	Scale     int `yaml:"scale"`      // Pixels per cell, excluding grid lines
	LineWidth int `yaml:"line_width"` // Grid line thickness in pixels
	Margin    int `yaml:"margin"`     // Blank border around the board
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TelemetryConfig holds CSV event log settings.
type TelemetryConfig struct {
	Path string `yaml:"path"` // Empty disables telemetry
}

// HeadlessConfig controls batch runs without a window.
type HeadlessConfig struct {
	Generations int     `yaml:"generations"`
	Seed        int64   `yaml:"seed"`
	Density     float64 `yaml:"density"` // Probability that a seeded cell starts alive
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges.
func (c *Config) Validate() error {
	b := c.Board
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, b.Width, b.Height)
	}
	if b.UndoDepth < 0 {
		return fmt.Errorf("%w: undo_depth %d", ErrInvalid, b.UndoDepth)
	}
	if b.MinSize <= 0 || b.MaxSize < b.MinSize {
		return fmt.Errorf("%w: size bounds [%d, %d]", ErrInvalid, b.MinSize, b.MaxSize)
	}
	if c.Autoplay.IntervalMS <= 0 {
		return fmt.Errorf("%w: autoplay interval_ms %d", ErrInvalid, c.Autoplay.IntervalMS)
	}
	if c.View.Scale <= 0 || c.View.LineWidth < 0 || c.View.Margin < 0 {
		return fmt.Errorf("%w: view scale=%d line_width=%d margin=%d", ErrInvalid, c.View.Scale, c.View.LineWidth, c.View.Margin)
	}
	if c.Headless.Generations < 0 {
		return fmt.Errorf("%w: headless generations %d", ErrInvalid, c.Headless.Generations)
	}
	if c.Headless.Density < 0 || c.Headless.Density > 1 {
		return fmt.Errorf("%w: headless density %g", ErrInvalid, c.Headless.Density)
	}
	return nil
}

// Bind attaches the most commonly overridden values to the provided FlagSet.
// Flag defaults are the loaded values, so unset flags keep them.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Board.Width, "cols", c.Board.Width, "initial board columns")
	fs.IntVar(&c.Board.Height, "rows", c.Board.Height, "initial board rows")
	fs.IntVar(&c.Board.UndoDepth, "undo", c.Board.UndoDepth, "maximum undo depth")
	fs.IntVar(&c.Autoplay.IntervalMS, "interval", c.Autoplay.IntervalMS, "auto-play step interval in milliseconds")
	fs.IntVar(&c.View.Scale, "scale", c.View.Scale, "pixels per cell")
	fs.StringVar(&c.Log.Level, "log", c.Log.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Telemetry.Path, "telemetry", c.Telemetry.Path, "CSV event log path (empty disables)")
	fs.IntVar(&c.Headless.Generations, "generations", c.Headless.Generations, "generations to run headless")
	fs.Int64Var(&c.Headless.Seed, "seed", c.Headless.Seed, "seed for the headless random fill")
	fs.Float64Var(&c.Headless.Density, "density", c.Headless.Density, "initial live-cell probability for headless runs")
}

// Parse registers -config plus the Bind flags on fs and parses args. Values
// are layered: embedded defaults, then the -config file, then explicitly set
// flags.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg, err := Load("")
	if err != nil {
		return nil, err
	}
	var path string
	fs.StringVar(&path, "config", "", "YAML config file merged over the embedded defaults")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, cfg.Validate()
	}

	fromFile, err := Load(path)
	if err != nil {
		return nil, err
	}
	overrides := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	fromFile.Bind(overrides)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		// Flags registered by the caller are not part of Config.
		if setErr != nil || overrides.Lookup(f.Name) == nil {
			return
		}
		if err := overrides.Set(f.Name, f.Value.String()); err != nil {
			setErr = fmt.Errorf("applying -%s: %w", f.Name, err)
		}
	})
	if setErr != nil {
		return nil, setErr
	}
	return fromFile, fromFile.Validate()
}
