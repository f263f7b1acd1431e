// Package config loads floodzone settings from an optional YAML file and
// FLOODZONE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/floodzone/export"
	"github.com/katalvlaran/floodzone/floodgrid"
	"github.com/katalvlaran/floodzone/internal/logging"
)

// envPrefix prefixes every environment override, e.g. FLOODZONE_GRID_ROWS.
const envPrefix = "FLOODZONE"

// Export backends.
const (
	BackendDir    = "dir"
	BackendObject = "object"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Grid    GridConfig        `mapstructure:"grid"`
	Export  ExportConfig      `mapstructure:"export"`
	Log     logging.LogConfig `mapstructure:"log"`
	Metrics MetricsConfig     `mapstructure:"metrics"`
	Limits  LimitsConfig      `mapstructure:"limits"`
}

// GridConfig controls random grid generation.
type GridConfig struct {
	Rows             int     `mapstructure:"rows"`
	Cols             int     `mapstructure:"cols"`
	Seed             int64   `mapstructure:"seed"` // 0 means "derive from the clock"
	FloodProbability float64 `mapstructure:"flood_probability"`
	MinElevation     int     `mapstructure:"min_elevation"`
	MaxElevation     int     `mapstructure:"max_elevation"`
}

// ExportConfig selects where zone and elevation grids are written.
type ExportConfig struct {
	Enabled       bool                `mapstructure:"enabled"`
	Backend       string              `mapstructure:"backend"`
	Dir           string              `mapstructure:"dir"`
	ZoneMapName   string              `mapstructure:"zone_map_name"`
	ElevationName string              `mapstructure:"elevation_name"`
	Object        export.ObjectConfig `mapstructure:"object"`
}

// MetricsConfig controls the metrics dump written after each run.
type MetricsConfig struct {
	// Output is a file path for the Prometheus text exposition; empty disables it.
	Output string `mapstructure:"output"`
}

// LimitsConfig bounds resource usage.
type LimitsConfig struct {
	// MaxCells rejects grids with more than this many cells before they are
	// allocated; 0 selects floodgrid.DefaultMaxCells.
	MaxCells int `mapstructure:"max_cells"`
}

// newViper returns a viper instance with env binding and all defaults set.
// Every key needs a default: AutomaticEnv only resolves keys viper knows.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.rows", 10)
	v.SetDefault("grid.cols", 10)
	v.SetDefault("grid.seed", 0)
	v.SetDefault("grid.flood_probability", 0.5)
	v.SetDefault("grid.min_elevation", 1)
	v.SetDefault("grid.max_elevation", 100)

	v.SetDefault("export.enabled", true)
	v.SetDefault("export.backend", BackendDir)
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.zone_map_name", export.DefaultZoneMapName)
	v.SetDefault("export.elevation_name", export.DefaultElevationName)
	v.SetDefault("export.object.endpoint", "")
	v.SetDefault("export.object.access_key_id", "")
	v.SetDefault("export.object.secret_access_key", "")
	v.SetDefault("export.object.use_ssl", false)
	v.SetDefault("export.object.region", "us-east-1")
	v.SetDefault("export.object.bucket", "floodzone")
	v.SetDefault("export.object.prefix", "runs")

	v.SetDefault("log.level", logging.LevelInfo)
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_paths", []string{"stderr"})

	v.SetDefault("metrics.output", "")
	v.SetDefault("limits.max_cells", floodgrid.DefaultMaxCells)
}

// Load reads configPath (skipped when empty), applies FLOODZONE_* overrides
// and defaults, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without consulting files or
// the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// EffectiveMaxCells resolves a zero limit to floodgrid.DefaultMaxCells.
func (c *Config) EffectiveMaxCells() int {
	if c.Limits.MaxCells <= 0 {
		return floodgrid.DefaultMaxCells
	}
	return c.Limits.MaxCells
}

// Validate checks value ranges and cross-field constraints.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Rows < 0 || c.Grid.Cols < 0:
		return fmt.Errorf("%w: grid dimensions %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	case c.Grid.FloodProbability < 0 || c.Grid.FloodProbability > 1:
		return fmt.Errorf("%w: flood_probability %v not in [0,1]", ErrInvalidConfig, c.Grid.FloodProbability)
	case c.Grid.MinElevation > c.Grid.MaxElevation:
		return fmt.Errorf("%w: elevation range [%d,%d]", ErrInvalidConfig, c.Grid.MinElevation, c.Grid.MaxElevation)
	case c.Limits.MaxCells < 0:
		return fmt.Errorf("%w: max_cells %d", ErrInvalidConfig, c.Limits.MaxCells)
	}
	if err := floodgrid.CheckSize(c.Grid.Rows, c.Grid.Cols, c.EffectiveMaxCells()); err != nil {
		return fmt.Errorf("%w: grid size: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !c.Export.Enabled {
		return nil
	}
	switch c.Export.Backend {
	case BackendDir:
	case BackendObject:
		if c.Export.Object.Endpoint == "" || c.Export.Object.Bucket == "" {
			return fmt.Errorf("%w: object export needs endpoint and bucket", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown export backend %q", ErrInvalidConfig, c.Export.Backend)
	}
	return nil
}
