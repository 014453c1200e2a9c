package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/config"
	_ "github.com/vovakirdan/wildfire/internal/export" // register exporters
	"github.com/vovakirdan/wildfire/internal/registry"
	"github.com/vovakirdan/wildfire/internal/storage"
)

var (
	simulateFlags simFlags
	flagExport    []string
	flagOutDir    string
	flagCellSize  int
	flagFPS       int
	flagLabel     bool
	flagNoHistory bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation and export the trace",
	Long: `Run a fire simulation and write the trace with one or more exporters.

The slope of every cell comes from a terrain image classified against the
palette in the config. Without --image a Perlin terrain is generated.
The image is resized to the grid with nearest-neighbour sampling.

Each run is recorded in the run history unless --no-history is given.

Examples:
  wildfire simulate
  wildfire simulate --image terrain.png --size 300 --steps 150
  wildfire simulate --wind SW --wind-speed 70 --export video,chart,final
  wildfire simulate --seed 42 --export text --out ./run42`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateFlags.register(simulateCmd)
	simulateCmd.Flags().StringSliceVar(&flagExport, "export", []string{"video"}, "Exporters to run (see 'wildfire exporters')")
	simulateCmd.Flags().StringVar(&flagOutDir, "out", "", "Output directory (default from config)")
	simulateCmd.Flags().IntVar(&flagCellSize, "cell-size", 0, "Pixels per cell in image exports")
	simulateCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second in the video")
	simulateCmd.Flags().BoolVar(&flagLabel, "label", true, "Draw \"Step N\" on image frames")
	simulateCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the run")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &simulateFlags)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = flagOutDir
	}
	if cmd.Flags().Changed("cell-size") {
		cfg.Output.CellSize = flagCellSize
	}
	if cmd.Flags().Changed("fps") {
		cfg.Output.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Check exporters before spending time on the run
	var ids []string
	for _, id := range flagExport {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if !registry.Exists(id) {
			return fmt.Errorf("unknown exporter %q (run 'wildfire exporters')", id)
		}
		ids = append(ids, id)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slope, err := buildSlope(cfg, logger)
	if err != nil {
		return err
	}
	seed := resolveSeed(cfg.Simulation.Seed)
	logger.Info("simulating",
		"size", cfg.Simulation.GridSize,
		"steps", cfg.Simulation.Steps,
		"terrain", terrainSource(cfg),
		"seed", seed,
	)
	sim, err := runSimulation(ctx, cfg, seed, slope, logger)
	if err != nil {
		return err
	}

	opts := registry.Options{FPS: cfg.Output.FPS, CellSize: cfg.Output.CellSize, Label: flagLabel}
	for _, id := range ids {
		exp, err := registry.Create(id)
		if err != nil {
			return err
		}
		files, err := exp.Export(ctx, sim.trace, cfg.Output.Dir, opts)
		if err != nil {
			return fmt.Errorf("export %s: %w", id, err)
		}
		if len(files) > 3 {
			logger.Info("exported", "exporter", id, "files", len(files), "dir", filepath.Dir(files[0]))
			continue
		}
		for _, f := range files {
			logger.Info("exported", "exporter", id, "file", f)
		}
	}

	if !flagNoHistory {
		recordRun(cfg, sim, logger)
	}
	printSummary(sim)
	return nil
}

// recordRun appends the run to the history. Failures only warn; the
// exports are already on disk.
func recordRun(cfg config.Config, sim *simulation, logger *log.Logger) {
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
		return
	}
	defer store.Close()

	s := sim.trace.Summary()
	id, err := store.SaveRun(storage.Run{
		Seed:           sim.seed,
		GridSize:       cfg.Simulation.GridSize,
		TreeDensity:    cfg.Simulation.TreeDensity,
		BurnProb:       cfg.Simulation.BurnProb,
		WindDir:        cfg.Wind.Direction,
		WindSpeed:      cfg.Wind.Speed,
		Steps:          cfg.Simulation.Steps,
		Workers:        cfg.Simulation.Workers,
		Terrain:        terrainSource(cfg),
		InitialTrees:   s.InitialTrees,
		FinalTrees:     s.FinalTrees,
		PeakBurning:    s.PeakBurning,
		PeakStep:       s.PeakStep,
		BurnedFraction: s.BurnedFraction,
		Duration:       sim.took,
	})
	if err != nil {
		logger.Warn("could not record run", "err", err)
		return
	}
	logger.Debug("run recorded", "id", id)
}

func printSummary(sim *simulation) {
	s := sim.trace.Summary()
	fmt.Printf("Seed:          %d\n", sim.seed)
	fmt.Printf("Steps:         %d\n", s.Steps)
	fmt.Printf("Trees:         %d -> %d\n", s.InitialTrees, s.FinalTrees)
	fmt.Printf("Burned:        %.1f%%\n", s.BurnedFraction*100)
	fmt.Printf("Peak burning:  %d at step %d\n", s.PeakBurning, s.PeakStep)
	if s.BurntOutStep >= 0 {
		fmt.Printf("Burnt out at:  step %d\n", s.BurntOutStep)
	}
	fmt.Printf("Took:          %s\n", sim.took.Round(time.Millisecond))
}
