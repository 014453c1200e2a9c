// Package config provides YAML-based simulation configuration loading,
// validation and named presets.
package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/fire"
	"github.com/vovakirdan/wildfire/internal/terrain"
)

// Config is the full wildfire configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Wind       WindConfig       `yaml:"wind"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Output     OutputConfig     `yaml:"output"`
	Storage    StorageConfig    `yaml:"storage"`
}

// SimulationConfig defines the forest and step parameters.
type SimulationConfig struct {
	GridSize    int     `yaml:"grid_size"`
	TreeDensity float64 `yaml:"tree_density"`
	BurnProb    float64 `yaml:"burn_prob"`
	Steps       int     `yaml:"steps"`
	Seed        uint64  `yaml:"seed"`    // 0 picks a random seed per run
	Workers     int     `yaml:"workers"` // >1 enables the banded parallel step
}

// WindConfig defines the wind vector.
type WindConfig struct {
	Direction string  `yaml:"direction"` // N, S, E, W, NE, NW, SE, SW or none
	Speed     float64 `yaml:"speed"`     // 0..100
}

// TerrainConfig selects the slope source.
type TerrainConfig struct {
	Image    string          `yaml:"image"` // empty means generate
	Palette  []PaletteConfig `yaml:"palette"`
	Generate GenerateConfig  `yaml:"generate"`
}

// PaletteConfig is one slope class.
type PaletteConfig struct {
	Color string  `yaml:"color"` // #rrggbb
	Slope float64 `yaml:"slope"`
}

// GenerateConfig controls the synthetic terrain used when no image is set.
type GenerateConfig struct {
	Scale   float64 `yaml:"scale"`
	Octaves int     `yaml:"octaves"`
	Seed    int64   `yaml:"seed"`
}

// OutputConfig controls exporters.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	FPS      int    `yaml:"fps"`
	CellSize int    `yaml:"cell_size"` // pixels per cell in image exports
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DB string `yaml:"db"` // empty uses ~/.wildfire/runs.db
}

// Validate checks every field range.
func (c Config) Validate() error {
	s := c.Simulation
	if s.GridSize < 3 {
		return invalidf("simulation.grid_size must be at least 3, got %d", s.GridSize)
	}
	if !core.InUnit(s.TreeDensity) {
		return invalidf("simulation.tree_density must be in [0,1], got %v", s.TreeDensity)
	}
	if !core.InUnit(s.BurnProb) {
		return invalidf("simulation.burn_prob must be in [0,1], got %v", s.BurnProb)
	}
	if s.Steps < 0 {
		return invalidf("simulation.steps must not be negative, got %d", s.Steps)
	}
	if s.Workers < 0 {
		return invalidf("simulation.workers must not be negative, got %d", s.Workers)
	}
	if math.IsNaN(c.Wind.Speed) || c.Wind.Speed < 0 || c.Wind.Speed > 100 {
		return invalidf("wind.speed must be in [0,100], got %v", c.Wind.Speed)
	}
	if _, err := fire.ParseDirection(c.Wind.Direction); err != nil {
		return fmt.Errorf("config: wind.direction: %w", err)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.Output.FPS <= 0 {
		return invalidf("output.fps must be positive, got %d", c.Output.FPS)
	}
	if c.Output.CellSize <= 0 {
		return invalidf("output.cell_size must be positive, got %d", c.Output.CellSize)
	}
	return nil
}

// WindVector converts the wind section.
func (c Config) WindVector() (fire.Wind, error) {
	d, err := fire.ParseDirection(c.Wind.Direction)
	if err != nil {
		return fire.Wind{}, fmt.Errorf("config: wind.direction: %w", err)
	}
	return fire.Wind{Direction: d, Speed: c.Wind.Speed}, nil
}

// Palette converts the palette section. An empty section yields the default palette.
func (c Config) Palette() (terrain.Palette, error) {
	if len(c.Terrain.Palette) == 0 {
		return terrain.DefaultPalette(), nil
	}
	p := make(terrain.Palette, 0, len(c.Terrain.Palette))
	for i, e := range c.Terrain.Palette {
		rgb, err := terrain.ParseRGB(e.Color)
		if err != nil {
			return nil, fmt.Errorf("config: terrain.palette[%d]: %w", i, err)
		}
		p = append(p, terrain.PaletteEntry{Color: rgb, Slope: e.Slope})
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("config: terrain.palette: %w", err)
	}
	return p, nil
}

// GenerateOptions returns the synthetic terrain options sized to the grid.
func (c Config) GenerateOptions() terrain.GenerateOptions {
	g := c.Terrain.Generate
	return terrain.GenerateOptions{
		Width:   c.Simulation.GridSize,
		Height:  c.Simulation.GridSize,
		Scale:   g.Scale,
		Octaves: g.Octaves,
		Seed:    g.Seed,
	}
}

// invalidf reports a bad config value. It matches core.ErrInvalidParameter.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("config: %w", core.Invalidf(format, args...))
}
