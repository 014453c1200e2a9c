package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/fire"
	"github.com/vovakirdan/wildfire/internal/terrain"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := Default()
	if cfg.Simulation != def.Simulation || cfg.Wind != def.Wind || cfg.Output != def.Output || cfg.Terrain.Generate != def.Terrain.Generate {
		t.Errorf("embedded yaml differs from Default():\n%+v\n%+v", cfg, def)
	}
	if len(cfg.Terrain.Palette) != len(def.Terrain.Palette) {
		t.Fatalf("palette length %d", len(cfg.Terrain.Palette))
	}
	for i := range def.Terrain.Palette {
		if cfg.Terrain.Palette[i] != def.Terrain.Palette[i] {
			t.Errorf("palette[%d] = %+v, want %+v", i, cfg.Terrain.Palette[i], def.Terrain.Palette[i])
		}
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := []byte("simulation:\n  grid_size: 64\n  seed: 9\nwind:\n  direction: sw\n  speed: 55\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.GridSize != 64 || cfg.Simulation.Seed != 9 {
		t.Errorf("simulation = %+v", cfg.Simulation)
	}
	if cfg.Simulation.TreeDensity != 0.8 || cfg.Simulation.Steps != 100 {
		t.Errorf("unset keys lost their defaults: %+v", cfg.Simulation)
	}
	w, err := cfg.WindVector()
	if err != nil || w != (fire.Wind{Direction: fire.SouthWest, Speed: 55}) {
		t.Errorf("wind = %v, %v", w, err)
	}
	if len(cfg.Terrain.Palette) != 5 {
		t.Errorf("palette not defaulted: %v", cfg.Terrain.Palette)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("simulation: [1, 2"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("malformed yaml: expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("wind:\n  speed: 150\n"), 0o644)
	if _, err := Load(invalid); err == nil {
		t.Error("out-of-range wind: expected error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(wd) })
	os.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.GridSize != 500 || cfg.Wind.Direction != "N" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	os.MkdirAll(filepath.Join(home, ".wildfire"), 0o755)
	os.WriteFile(filepath.Join(home, ".wildfire", "config.yaml"), []byte("simulation:\n  steps: 7\n"), 0o644)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Steps != 7 {
		t.Errorf("steps = %d, want 7", cfg.Simulation.Steps)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.yaml")
	cfg := Default()
	cfg.Simulation.GridSize = 33
	cfg.Wind.Direction = "none"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Simulation.GridSize != 33 || got.Wind.Direction != "none" {
		t.Errorf("got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"small grid", func(c *Config) { c.Simulation.GridSize = 2 }},
		{"density", func(c *Config) { c.Simulation.TreeDensity = 1.2 }},
		{"burn prob", func(c *Config) { c.Simulation.BurnProb = -0.1 }},
		{"steps", func(c *Config) { c.Simulation.Steps = -1 }},
		{"workers", func(c *Config) { c.Simulation.Workers = -2 }},
		{"wind speed", func(c *Config) { c.Wind.Speed = 101 }},
		{"wind speed nan", func(c *Config) { c.Wind.Speed = math.NaN() }},
		{"wind direction", func(c *Config) { c.Wind.Direction = "NNW" }},
		{"palette color", func(c *Config) { c.Terrain.Palette = []PaletteConfig{{Color: "green", Slope: 5}} }},
		{"palette slope", func(c *Config) { c.Terrain.Palette = []PaletteConfig{{Color: "#00ff00", Slope: 0}} }},
		{"fps", func(c *Config) { c.Output.FPS = 0 }},
		{"cell size", func(c *Config) { c.Output.CellSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Errorf("err = %v, want core.ErrInvalidParameter", err)
			}
		})
	}
}

func TestPaletteFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Terrain.Palette = []PaletteConfig{{Color: "#000000", Slope: 10}, {Color: "255,255,255", Slope: 90}}
	p, err := cfg.Palette()
	if err != nil {
		t.Fatal(err)
	}
	want := terrain.Palette{{Color: terrain.RGB{}, Slope: 10}, {Color: terrain.RGB{R: 255, G: 255, B: 255}, Slope: 90}}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("palette[%d] = %+v, want %+v", i, p[i], want[i])
		}
	}

	cfg.Terrain.Palette = []PaletteConfig{{Color: "#000000", Slope: 200}}
	if _, err := cfg.Palette(); !errors.Is(err, terrain.ErrInvalidParameter) {
		t.Errorf("err = %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    Preset
		wantDir   string
		wantSpeed float64
		wantBurn  float64
	}{
		{PresetCalm, "none", 0, 0.4},
		{PresetNormal, "N", 30, 0.6},
		{PresetWindy, "N", 80, 0.5},
		{PresetDrought, "N", 20, 0.9},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			if err := ApplyPreset(&cfg, tt.preset); err != nil {
				t.Fatal(err)
			}
			if cfg.Wind.Direction != tt.wantDir || cfg.Wind.Speed != tt.wantSpeed || cfg.Simulation.BurnProb != tt.wantBurn {
				t.Errorf("got wind %+v burn %v", cfg.Wind, cfg.Simulation.BurnProb)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	cfg := Default()
	cfg.Wind.Direction = "none"
	ApplyPreset(&cfg, PresetWindy)
	if cfg.Wind.Direction != "N" {
		t.Errorf("windy preset left direction %q", cfg.Wind.Direction)
	}
	if err := ApplyPreset(&cfg, "hurricane"); err == nil {
		t.Error("unknown preset accepted")
	}
}
