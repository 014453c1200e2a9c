package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/config"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file, --preset and --seed are
applied. With --write the result is saved as YAML instead.

Examples:
  wildfire config
  wildfire config --preset drought
  wildfire config --write ~/.wildfire/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Save the configuration to this path")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if flagConfigWrite != "" {
		if err := config.Save(flagConfigWrite, cfg); err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", flagConfigWrite)
		return nil
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
