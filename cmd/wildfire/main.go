// wildfire simulates fire spreading through a forest on sloped terrain.
//
// Usage:
//
//	wildfire simulate          - Run a simulation and export the trace
//	wildfire watch             - Simulate and play back in the terminal
//	wildfire view              - Simulate and play back in a window (-tags ebiten)
//	wildfire classify          - Turn a terrain image into a slope map
//	wildfire terrain           - Generate a synthetic terrain image
//	wildfire runs              - Show the run history
//	wildfire exporters         - List available exporters
//	wildfire serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>   - Config YAML (default search: ~/.wildfire, ./configs, embedded)
//	--preset <name>   - Weather preset: calm, normal, windy, drought
//	--seed <value>    - RNG seed (0 = random based on time)
//	--db <path>       - Run history database (default: ~/.wildfire/runs.db)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     uint64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wildfire",
	Short: "Wildfire - forest fire spread on sloped terrain",
	Long: `Wildfire is a cellular automaton of a forest fire. Each step a burning
cell burns out and may ignite its eight neighbours, with odds raised by the
terrain slope under the neighbour and by the wind.

Available commands:
  simulate   - Run a simulation and export the trace
  watch      - Play a simulation in the terminal
  view       - Play a simulation in a desktop window
  classify   - Convert a terrain image into a slope map
  terrain    - Generate a synthetic terrain image
  runs       - Show recorded runs
  exporters  - List available exporters
  serve      - Start SSH server for remote viewing

Examples:
  wildfire simulate --image terrain.png --export video,chart
  wildfire simulate --preset windy --wind NE --steps 200
  wildfire watch --size 120
  wildfire classify --image terrain.png --out slope.png
  wildfire serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Weather preset: calm, normal, windy, drought")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default ~/.wildfire/runs.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(terrainCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(exportersCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
