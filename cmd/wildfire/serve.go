package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/logging"
	"github.com/vovakirdan/wildfire/internal/platform/tui"
)

var (
	serveFlags      simFlags
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wildfire SSH server",
	Long: `Start an SSH server where every session watches a fresh simulation.

All sessions share the terrain; each one starts from its own seed (--seed N gives
session k the seed N+k) and can
roll a new run with N.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wildfire/host_key

Examples:
  wildfire serve                           # Listen on :23234 with auto-generated key
  wildfire serve --ssh :2222               # Listen on port 2222
  wildfire serve --size 100 --wind E       # Smaller, faster runs

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 16, "Concurrent sessions (0 = unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &serveFlags)
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

	sc := tui.DefaultSSHServerConfig()
	sc.Address = flagSSHAddr
	sc.HostKeyPath = flagHostKey
	sc.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sc.MaxSessions = flagMaxSessions
	sc.FrameRate = cfg.Output.FPS
	sc.BaseSeed = cfg.Simulation.Seed
	// sessions simulate quietly; the server logs connections only
	sc.Generate = generator(cfg, slope, logging.Discard())
	sc.Logger = logger

	server, err := tui.NewSSHServer(sc)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting wildfire SSH server on %s\n", sc.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
