package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/registry"
)

var exportersCmd = &cobra.Command{
	Use:   "exporters",
	Short: "List available exporters",
	Long:  `Shows every exporter usable with 'wildfire simulate --export'.`,
	Args:  cobra.NoArgs,
	Run:   runExporters,
}

func runExporters(_ *cobra.Command, _ []string) {
	exporters := registry.List()

	if len(exporters) == 0 {
		fmt.Println("No exporters available.")
		return
	}

	fmt.Println("Available exporters:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range exporters {
		maxIDLen = max(maxIDLen, len(e.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Output")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "------")
	for _, e := range exporters {
		fmt.Printf("  %-*s  %s\n", maxIDLen, e.ID, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wildfire simulate --export <id>,<id>' to use them.")
}
