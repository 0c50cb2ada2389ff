package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hoppy/internal/config"
)

var (
	flagDefaults bool
	flagInit     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML, after applying the search order:
  1. --config <path>
  2. ~/.hoppy/configs/hoppy.yaml
  3. ./configs/hoppy.yaml
  4. built-in defaults

Examples:
  hoppy config               # Effective config
  hoppy config --defaults    # Built-in defaults with comments
  hoppy config --init        # Write defaults to ~/.hoppy/configs/hoppy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the defaults to the user config path if it does not exist")
}

func runConfig(_ *cobra.Command, _ []string) {
	switch {
	case flagInit:
		initUserConfig()
		return
	case flagDefaults:
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadHoppy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := config.ResolvePath(flagConfig)
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}

func initUserConfig() {
	path := config.UserConfigPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
		os.Exit(1)
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config already exists at %s\n", path)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}
