package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minerun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, as YAML.

Search order: --config, ~/.minerun/configs/minerun.yaml,
./configs/minerun.yaml, then the built-in defaults. --difficulty is
applied on top.

Examples:
  minerun config > configs/minerun.yaml
  minerun config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	loaded, err := config.Locate(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	cfg := loaded.Config
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fail("%v", err)
		}
		config.ApplyPreset(&cfg, preset)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("# source: %s\n", loaded.Source)
	fmt.Print(string(out))
}
