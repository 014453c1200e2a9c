package config

import (
	_ "embed"

	"github.com/vovakirdan/wildfire/internal/terrain"
)

//go:embed defaults/wildfire.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/wildfire.yaml.
func Default() Config {
	palette := make([]PaletteConfig, 0, 5)
	for _, e := range terrain.DefaultPalette() {
		palette = append(palette, PaletteConfig{Color: e.Color.String(), Slope: e.Slope})
	}
	return Config{
		Simulation: SimulationConfig{
			GridSize:    500,
			TreeDensity: 0.8,
			BurnProb:    0.6,
			Steps:       100,
		},
		Wind: WindConfig{
			Direction: "N",
			Speed:     30,
		},
		Terrain: TerrainConfig{
			Palette: palette,
			Generate: GenerateConfig{
				Scale:   0.02,
				Octaves: 3,
				Seed:    1,
			},
		},
		Output: OutputConfig{
			Dir:      "out",
			FPS:      5,
			CellSize: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
