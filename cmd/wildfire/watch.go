package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/logging"
	"github.com/vovakirdan/wildfire/internal/platform/tui"
)

var (
	watchFlags    simFlags
	flagWatchRate int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Play a simulation in the terminal",
	Long: `Simulate and play the trace in the terminal. Grids larger than the
terminal are drawn in blocks; a block shows fire if any cell in it burns.

Controls:
  Space/P    - Pause / resume
  Left/Right - Step back / forward
  R          - Restart playback
  +/-        - Faster / slower
  N          - New run with the next seed
  Q/Ctrl+C   - Quit

Examples:
  wildfire watch
  wildfire watch --size 80 --wind E --wind-speed 60
  wildfire watch --rate 10`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchFlags.register(watchCmd)
	watchCmd.Flags().IntVar(&flagWatchRate, "rate", 0, "Snapshots per second (default from config fps)")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &watchFlags)
	if err != nil {
		return err
	}

	// Logs would corrupt the alternate screen
	quiet := logging.Discard()
	slope, err := buildSlope(cfg, quiet)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rate := cfg.Output.FPS
	if flagWatchRate > 0 {
		rate = flagWatchRate
	}
	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: rate,
		Seed:      resolveSeed(cfg.Simulation.Seed),
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return tui.Run(ctx, nil, generator(cfg, slope, quiet), rc)
}
