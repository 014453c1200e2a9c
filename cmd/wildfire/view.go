package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/platform/desktop"
)

var (
	viewFlags     simFlags
	flagViewScale int
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Play a simulation in a desktop window",
	Long: `Simulate and play the trace in a window.

This command needs a binary built with the ebiten tag:
  go build -tags ebiten ./cmd/wildfire

Controls:
  Space      - Pause / resume
  Left/Right - Step back / forward
  R          - Restart playback
  +/-        - Faster / slower
  Q/Esc      - Quit

Examples:
  wildfire view --size 200 --scale 3`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewFlags.register(viewCmd)
	viewCmd.Flags().IntVar(&flagViewScale, "scale", 2, "Window pixels per cell")
}

func runView(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &viewFlags)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	slope, err := buildSlope(cfg, logger)
	if err != nil {
		return err
	}
	sim, err := runSimulation(context.Background(), cfg, resolveSeed(cfg.Simulation.Seed), slope, logger)
	if err != nil {
		return err
	}
	return desktop.Run(sim.trace, desktop.Options{
		Scale: flagViewScale,
		FPS:   cfg.Output.FPS,
		Title: "wildfire - " + terrainSource(cfg),
	})
}
