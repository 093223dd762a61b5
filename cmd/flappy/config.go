package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in configuration as YAML.

Config files are looked up in this order:
  1. --config <path>
  2. ~/.flappy/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Any field left out of a file keeps its default.

Examples:
  flappy config > my-flappy.yaml
  flappy config --write`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the defaults to ~/.flappy/configs/flappy.yaml if it does not exist")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigWrite {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	path := config.UserConfigPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
		os.Exit(1)
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
