package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/terrain"
)

var (
	flagClassifyImage string
	flagClassifyOut   string
	flagClassifySize  int
	flagClassifyCell  int
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Convert a terrain image into a slope map",
	Long: `Classify every pixel of a terrain image against the slope palette and
print how many cells fall into each class.

Each pixel takes the slope of the nearest palette color by squared RGB
distance. On a tie the earlier palette entry wins.

Examples:
  wildfire classify --image terrain.png
  wildfire classify --image terrain.png --out slope.png --cell-size 2
  wildfire classify --image terrain.png --size 200`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&flagClassifyImage, "image", "", "Terrain image (default from config; empty generates one)")
	classifyCmd.Flags().StringVar(&flagClassifyOut, "out", "", "Write the slope map as PNG")
	classifyCmd.Flags().IntVar(&flagClassifySize, "size", 0, "Resize to this side length first (0 keeps the image size)")
	classifyCmd.Flags().IntVar(&flagClassifyCell, "cell-size", 1, "Pixels per cell in the slope map")
}

func runClassify(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("image") {
		cfg.Terrain.Image = flagClassifyImage
	}
	p, err := cfg.Palette()
	if err != nil {
		return err
	}
	img, err := loadTerrain(cfg, p)
	if err != nil {
		return err
	}
	if flagClassifySize > 0 {
		img = img.Resize(flagClassifySize, flagClassifySize)
	}

	slope, err := terrain.Classify(img, p)
	if err != nil {
		return err
	}

	fmt.Printf("Terrain: %s (%dx%d)\n", terrainSource(cfg), slope.W, slope.H)
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-9s  %s\n", "Color", "Slope", "Cells", "Share")
	fmt.Printf("  %-8s  %-6s  %-9s  %s\n", "-----", "-----", "-----", "-----")
	for i, n := range slope.Histogram(p) {
		share := float64(n) / float64(slope.Len()) * 100
		fmt.Printf("  %-8s  %-6g  %-9d  %.1f%%\n", p[i].Color, p[i].Slope, n, share)
	}

	if flagClassifyOut != "" {
		if err := slope.SaveMap(flagClassifyOut, flagClassifyCell); err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Slope map written to %s\n", flagClassifyOut)
	}
	return nil
}
