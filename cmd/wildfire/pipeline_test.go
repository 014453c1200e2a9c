package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/config"
	"github.com/vovakirdan/wildfire/internal/logging"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Simulation.GridSize = 24
	cfg.Simulation.Steps = 6
	return cfg
}

func TestSimFlagsApplyOnlyChanged(t *testing.T) {
	var f simFlags
	cmd := &cobra.Command{Use: "x"}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--size", "40", "--wind", "SE"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	f.apply(cmd, &cfg)
	if cfg.Simulation.GridSize != 40 || cfg.Wind.Direction != "SE" {
		t.Errorf("overrides not applied: %+v %+v", cfg.Simulation, cfg.Wind)
	}
	def := config.Default()
	if cfg.Simulation.Steps != def.Simulation.Steps || cfg.Wind.Speed != def.Wind.Speed {
		t.Error("unset flags overwrote config values")
	}
}

func TestResolveSeed(t *testing.T) {
	if resolveSeed(7) != 7 {
		t.Error("explicit seed changed")
	}
	if resolveSeed(0) == 0 {
		t.Error("zero seed not replaced")
	}
}

func TestBuildSlopeMatchesGrid(t *testing.T) {
	cfg := smallConfig()
	slope, err := buildSlope(cfg, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if slope.W != 24 || slope.H != 24 {
		t.Errorf("slope grid %dx%d, want 24x24", slope.W, slope.H)
	}
	if terrainSource(cfg) != "generated" {
		t.Errorf("terrain source = %q", terrainSource(cfg))
	}
}

func TestRunSimulationDeterministic(t *testing.T) {
	cfg := smallConfig()
	slope, err := buildSlope(cfg, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}

	a, err := runSimulation(context.Background(), cfg, 99, slope, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := generator(cfg, slope, nil)(context.Background(), 99)
	if err != nil {
		t.Fatal(err)
	}
	if a.trace.Len() != 7 || b.Len() != 7 {
		t.Fatalf("trace lengths %d and %d, want 7", a.trace.Len(), b.Len())
	}
	for i := range a.trace.Len() {
		if !a.trace.At(i).Equal(b.At(i)) {
			t.Fatalf("snapshot %d differs for the same seed", i)
		}
	}
}

func TestGeneratorStopsOnCancel(t *testing.T) {
	cfg := smallConfig()
	slope, err := buildSlope(cfg, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, err := generator(cfg, slope, nil)(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if tr != nil {
		t.Error("cancelled run returned a trace")
	}
}
