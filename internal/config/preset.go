package config

import "fmt"

// Preset is a named weather scenario.
type Preset string

const (
	PresetCalm    Preset = "calm"
	PresetNormal  Preset = "normal"
	PresetWindy   Preset = "windy"
	PresetDrought Preset = "drought"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetCalm, PresetNormal, PresetWindy, PresetDrought}
}

// ApplyPreset overrides the wind and fuel settings for a scenario.
// Wind direction is kept unless the preset has none.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case PresetCalm:
		cfg.Wind.Direction = "none"
		cfg.Wind.Speed = 0
		cfg.Simulation.BurnProb = 0.4
	case PresetNormal:
		cfg.Wind.Speed = 30
		cfg.Simulation.BurnProb = 0.6
	case PresetWindy:
		cfg.Wind.Speed = 80
		cfg.Simulation.BurnProb = 0.5
	case PresetDrought:
		cfg.Wind.Speed = 20
		cfg.Simulation.BurnProb = 0.9
		cfg.Simulation.TreeDensity = 0.9
	case "":
		return nil
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	if cfg.Wind.Direction == "none" && preset != PresetCalm {
		cfg.Wind.Direction = "N"
	}
	return nil
}
