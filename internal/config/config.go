package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/trackline/internal/timeline"
)

// Config holds user-level settings loaded from the config file. Zero values
// fall back to engine defaults via Normalize.
type Config struct {
	// DBPath overrides the default database location. The TRACKLINE_DB
	// environment variable wins over both.
	DBPath string `yaml:"db_path"`

	View      ViewConfig      `yaml:"view"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Resize    ResizeConfig    `yaml:"resize"`
}

type ViewConfig struct {
	Mode       string `yaml:"mode"`
	SnapToGrid *bool  `yaml:"snap_to_grid"`
}

type OptimizerConfig struct {
	Compaction       *bool   `yaml:"compaction"`
	GapFill          *bool   `yaml:"gap_fill"`
	Balancing        *bool   `yaml:"balancing"`
	MaxPasses        int     `yaml:"max_passes"`
	TargetEfficiency float64 `yaml:"target_efficiency"`
}

type ResizeConfig struct {
	MinDurationDays int `yaml:"min_duration_days"`
	MaxDurationDays int `yaml:"max_duration_days"`
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".trackline", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error; the
// zero Config is returned so defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.View.Mode {
	case "", string(timeline.ViewWeekly), string(timeline.ViewMonthly), string(timeline.ViewQuarterly):
	default:
		return fmt.Errorf("unknown view mode %q", c.View.Mode)
	}
	if c.Optimizer.MaxPasses < 0 {
		return errors.New("optimizer.max_passes cannot be negative")
	}
	if c.Resize.MinDurationDays < 0 || c.Resize.MaxDurationDays < 0 {
		return errors.New("resize durations cannot be negative")
	}
	return nil
}

// ViewMode resolves the configured view mode, defaulting to monthly.
func (c *Config) ViewMode() timeline.ViewMode {
	if c.View.Mode == "" {
		return timeline.ViewMonthly
	}
	return timeline.ViewMode(c.View.Mode)
}

// TimelineConfig resolves the optimizer settings over engine defaults.
func (c *Config) TimelineConfig() timeline.Config {
	cfg := timeline.DefaultConfig()
	if c.Optimizer.Compaction != nil {
		cfg.Compaction = *c.Optimizer.Compaction
	}
	if c.Optimizer.GapFill != nil {
		cfg.GapFill = *c.Optimizer.GapFill
	}
	if c.Optimizer.Balancing != nil {
		cfg.Balancing = *c.Optimizer.Balancing
	}
	if c.Optimizer.MaxPasses > 0 {
		cfg.MaxPasses = c.Optimizer.MaxPasses
	}
	if c.Optimizer.TargetEfficiency > 0 {
		cfg.TargetEfficiency = c.Optimizer.TargetEfficiency
	}
	return cfg
}

// Constraints resolves resize constraints over engine defaults, honoring the
// configured snap preference.
func (c *Config) Constraints() timeline.Constraints {
	con := timeline.DefaultConstraints()
	if c.Resize.MinDurationDays > 0 {
		con.MinDurationDays = c.Resize.MinDurationDays
	}
	if c.Resize.MaxDurationDays > 0 {
		con.MaxDurationDays = c.Resize.MaxDurationDays
	}
	if c.View.SnapToGrid != nil {
		con.SnapToGrid = *c.View.SnapToGrid
	}
	return con
}
