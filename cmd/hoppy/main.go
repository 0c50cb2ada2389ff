// hoppy is an endless side-scroller for the terminal: hop through the gaps,
// avoid the barriers and the ground.
//
// Usage:
//
//	hoppy play      - Play in this terminal
//	hoppy serve     - Start SSH server for remote play
//	hoppy config    - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a specific config file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hoppy/internal/config"
	"github.com/vovakirdan/tui-hoppy/internal/core"
	"github.com/vovakirdan/tui-hoppy/internal/platform/tui"
	"github.com/vovakirdan/tui-hoppy/internal/session"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoppy",
	Short: "Hoppy - an endless side-scroller in your terminal",
	Long: `Hoppy is a one-button reflex game. Gravity pulls you down, each hop
pushes you up. Pass through the gaps between barriers to score; touching a
barrier or the ground ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  hoppy play
  hoppy play --seed 42 --config ./hoppy.yaml --watch
  hoppy serve --ssh :2222
  hoppy config > ~/.hoppy/configs/hoppy.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, io.Closer(nopCloser{})
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// runtimeConfig returns the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameFactory builds sessions from a loaded config.
func gameFactory(cfg config.HoppyConfig, reload session.Reloader) tui.GameFactory {
	return func(rt core.RuntimeConfig, logger *log.Logger) (tui.Game, error) {
		game, err := session.New(session.Options{
			Config:  cfg,
			Runtime: rt,
			Logger:  logger,
			Reload:  reload,
		})
		if err != nil {
			return nil, err
		}
		return game, nil
	}
}
