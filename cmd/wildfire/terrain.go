package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/terrain"
)

var (
	flagTerrainOut     string
	flagTerrainSize    int
	flagTerrainScale   float64
	flagTerrainOctaves int
	flagTerrainSeed    int64
)

var terrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Generate a synthetic terrain image",
	Long: `Paint a terrain image from Perlin noise using only palette colors, so it
classifies without loss. Feed it back with 'wildfire simulate --image'.

Examples:
  wildfire terrain --out terrain.png
  wildfire terrain --size 300 --scale 0.01 --terrain-seed 7 --out hills.png`,
	Args: cobra.NoArgs,
	RunE: runTerrain,
}

func init() {
	terrainCmd.Flags().StringVar(&flagTerrainOut, "out", "terrain.png", "Output PNG path")
	terrainCmd.Flags().IntVar(&flagTerrainSize, "size", 0, "Side length in pixels (default grid size)")
	terrainCmd.Flags().Float64Var(&flagTerrainScale, "scale", 0, "Noise scale; smaller gives broader features")
	terrainCmd.Flags().IntVar(&flagTerrainOctaves, "octaves", 0, "Noise octaves")
	terrainCmd.Flags().Int64Var(&flagTerrainSeed, "terrain-seed", 0, "Noise seed")
}

func runTerrain(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("size") {
		cfg.Simulation.GridSize = flagTerrainSize
	}
	if cmd.Flags().Changed("scale") {
		cfg.Terrain.Generate.Scale = flagTerrainScale
	}
	if cmd.Flags().Changed("octaves") {
		cfg.Terrain.Generate.Octaves = flagTerrainOctaves
	}
	if cmd.Flags().Changed("terrain-seed") {
		cfg.Terrain.Generate.Seed = flagTerrainSeed
	}

	p, err := cfg.Palette()
	if err != nil {
		return err
	}
	img, err := terrain.Generate(cfg.GenerateOptions(), p)
	if err != nil {
		return err
	}
	if err := img.Save(flagTerrainOut); err != nil {
		return err
	}
	fmt.Printf("Terrain %dx%d written to %s\n", img.W, img.H, flagTerrainOut)
	return nil
}
