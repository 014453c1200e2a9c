package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wildfire/internal/platform/tui"
	"github.com/vovakirdan/wildfire/internal/storage"
)

var (
	flagRunsPlain bool
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display the run history recorded by 'wildfire simulate'.

Examples:
  wildfire runs
  wildfire runs --plain --limit 5
  wildfire runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain text table")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs in --plain output")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the whole history")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if !flagRunsPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wildfire simulate' to record the first one!")
		return nil
	}

	rows := tui.RunRows(runs)
	widths := make([]int, len(tui.RunColumns))
	for i, h := range tui.RunColumns {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	printRow := func(cells []string) {
		for i, c := range cells {
			fmt.Printf("  %-*s", widths[i], c)
		}
		fmt.Println()
	}
	printRow(tui.RunColumns)
	for _, row := range rows {
		printRow(row)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("%d runs, mean burned %.1f%%, max burned %.1f%%\n",
			stats.Count, stats.MeanBurned*100, stats.MaxBurned*100)
	}
	return nil
}
