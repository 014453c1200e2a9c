package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/config"
	"github.com/vovakirdan/wildfire/internal/fire"
	"github.com/vovakirdan/wildfire/internal/logging"
	"github.com/vovakirdan/wildfire/internal/terrain"
)

// simFlags are the per-command overrides shared by simulate, watch, view and serve.
type simFlags struct {
	size      int
	steps     int
	density   float64
	burnProb  float64
	wind      string
	windSpeed float64
	workers   int
	image     string
}

func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.size, "size", 0, "Grid side length in cells")
	cmd.Flags().IntVar(&f.steps, "steps", 0, "Number of steps to simulate")
	cmd.Flags().Float64Var(&f.density, "density", 0, "Initial tree density 0..1")
	cmd.Flags().Float64Var(&f.burnProb, "burn-prob", 0, "Base ignition probability 0..1")
	cmd.Flags().StringVar(&f.wind, "wind", "", "Wind direction: N, S, E, W, NE, NW, SE, SW or none")
	cmd.Flags().Float64Var(&f.windSpeed, "wind-speed", 0, "Wind speed 0..100")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Row bands per step (>1 runs them in parallel)")
	cmd.Flags().StringVar(&f.image, "image", "", "Terrain image (PNG/JPEG); empty generates one")
}

// apply copies every flag the user set onto cfg.
func (f *simFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("size") {
		cfg.Simulation.GridSize = f.size
	}
	if set("steps") {
		cfg.Simulation.Steps = f.steps
	}
	if set("density") {
		cfg.Simulation.TreeDensity = f.density
	}
	if set("burn-prob") {
		cfg.Simulation.BurnProb = f.burnProb
	}
	if set("wind") {
		cfg.Wind.Direction = f.wind
	}
	if set("wind-speed") {
		cfg.Wind.Speed = f.windSpeed
	}
	if set("workers") {
		cfg.Simulation.Workers = f.workers
	}
	if set("image") {
		cfg.Terrain.Image = f.image
	}
}

// loadConfig resolves the config file, the preset and the global overrides.
// overrides may be nil.
func loadConfig(cmd *cobra.Command, overrides *simFlags) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return cfg, err
	}
	if overrides != nil {
		overrides.apply(cmd, &cfg)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = flagSeed
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	return cfg, cfg.Validate()
}

func newLogger() (*log.Logger, error) {
	return logging.New(os.Stderr, flagLogLevel, "wildfire")
}

// resolveSeed turns the "0 means random" convention into a concrete seed.
func resolveSeed(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

// terrainSource names the slope input for logs and the run history.
func terrainSource(cfg config.Config) string {
	if cfg.Terrain.Image == "" {
		return "generated"
	}
	return cfg.Terrain.Image
}

// loadTerrain reads the configured image or generates one, at its native size.
func loadTerrain(cfg config.Config, p terrain.Palette) (terrain.Image, error) {
	if cfg.Terrain.Image != "" {
		return terrain.Load(cfg.Terrain.Image)
	}
	return terrain.Generate(cfg.GenerateOptions(), p)
}

// buildSlope produces the slope grid matching the simulation grid.
func buildSlope(cfg config.Config, logger *log.Logger) (*terrain.SlopeGrid, error) {
	p, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	img, err := loadTerrain(cfg, p)
	if err != nil {
		return nil, err
	}
	n := cfg.Simulation.GridSize
	if img.W != n || img.H != n {
		logger.Debug("resizing terrain", "from", fmt.Sprintf("%dx%d", img.W, img.H), "to", n)
		img = img.Resize(n, n)
	}
	return terrain.Classify(img, p)
}

// simulation is everything one run produced.
type simulation struct {
	cfg   config.Config
	seed  uint64
	trace *fire.Trace
	took  time.Duration
}

// runSimulation builds the terrain, seeds the forest and runs every step.
// The forest and the spread share one random source seeded from seed.
func runSimulation(ctx context.Context, cfg config.Config, seed uint64, slope *terrain.SlopeGrid, logger *log.Logger) (*simulation, error) {
	wind, err := cfg.WindVector()
	if err != nil {
		return nil, err
	}
	started := time.Now()
	rng := fire.NewSource(seed)
	grid, err := fire.Initialize(cfg.Simulation.GridSize, cfg.Simulation.TreeDensity, rng)
	if err != nil {
		return nil, err
	}
	tr, err := fire.Simulate(ctx, grid, slope, cfg.Simulation.Steps, fire.Params{
		Wind:     wind,
		BurnProb: cfg.Simulation.BurnProb,
		Workers:  cfg.Simulation.Workers,
		Logger:   logger,
	}, rng)
	if err != nil {
		return nil, err
	}
	return &simulation{cfg: cfg, seed: seed, trace: tr, took: time.Since(started)}, nil
}

// generator returns a tui.Generator style closure over a fixed terrain.
// A cancelled ctx stops the run at the next step boundary.
func generator(cfg config.Config, slope *terrain.SlopeGrid, logger *log.Logger) func(ctx context.Context, seed uint64) (*fire.Trace, error) {
	return func(ctx context.Context, seed uint64) (*fire.Trace, error) {
		sim, err := runSimulation(ctx, cfg, seed, slope, logger)
		if err != nil {
			return nil, err
		}
		return sim.trace, nil
	}
}
