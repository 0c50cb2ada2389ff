package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hoppy/internal/config"
	"github.com/vovakirdan/tui-hoppy/internal/platform/tui"
	"github.com/vovakirdan/tui-hoppy/internal/session"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  Space/Up   - Hop
  P/Esc      - Pause
  R/Enter    - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

With --watch, edits to the config file are picked up on the next restart.

Examples:
  hoppy play
  hoppy play --seed 42
  hoppy play --config ./hoppy.yaml --watch --log-file hoppy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file on restart when it changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closer, err := newLogger(io.Discard, "hoppy")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := config.LoadHoppy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var reload session.Reloader
	if flagWatch {
		watcher, err := newConfigWatcher(logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if watcher != nil {
			defer watcher.Close()
			reload = watchReloader(watcher, logger)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := runtimeConfig(width, height)

	game, err := gameFactory(cfg, reload)(rt, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newConfigWatcher watches the config file in effect. It returns nil when
// the embedded default is used, since there is no file to watch.
func newConfigWatcher(logger *log.Logger) (*config.Watcher, error) {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file in use")
		return nil, nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	logger.Info("watching config", "path", w.Path())
	return w, nil
}

// watchReloader reloads the config on restart after the watched file changed.
func watchReloader(w *config.Watcher, logger *log.Logger) session.Reloader {
	return func() (config.HoppyConfig, bool) {
		if !w.Changed() {
			return config.HoppyConfig{}, false
		}
		cfg, err := config.LoadHoppy(w.Path())
		if err != nil {
			logger.Warn("config changed but cannot be loaded", "err", err)
			return config.HoppyConfig{}, false
		}
		return cfg, true
	}
}
