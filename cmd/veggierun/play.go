package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/veggie-run/internal/audio"
	"github.com/vovakirdan/veggie-run/internal/core"
	"github.com/vovakirdan/veggie-run/internal/games/veggierun"
	"github.com/vovakirdan/veggie-run/internal/platform/tui"
	"github.com/vovakirdan/veggie-run/internal/registry"
	"github.com/vovakirdan/veggie-run/internal/storage"
)

// musicVolume is the master volume handed to the audio manager.
const musicVolume = 0.6

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Veggie Run session. When you quit, a summary of every run
in the session is printed.

Controls:
  Space/Up/W - Jump (or try again after running out of energy)
  P/Esc      - Hold/resume
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  veggierun play
  veggierun play --seed 42 --fps 30
  veggierun play --log run.log --verbose`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger(flagLogPath, flagVerbose)
	if err != nil {
		return err
	}
	defer closeLog()

	// Warn early when the tuning file is broken; the game falls back to defaults
	veggierun.SetConfigPath(flagConfig)
	if flagConfig != "" {
		if _, cfgErr := loadConfig(flagConfig); cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", cfgErr)
			logger.Warn("config rejected, using defaults", "error", cfgErr)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var sink core.AudioSink = core.NopAudio{}
	if !flagMute {
		mgr := audio.NewManager(musicVolume)
		if initErr := mgr.Initialize(); initErr != nil {
			// Continue without sound - game still works
			logger.Warn("audio unavailable, playing silent", "error", initErr)
		}
		if mgr.Enabled() {
			defer mgr.Close()
			sink = mgr
		}
		logger.Info("audio", "enabled", mgr.Enabled())
	}

	game, err := registry.Create(veggierun.GameID, tui.NewLoggingSink(sink, logger))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open the session ledger
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run ledger: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if runErr := tui.Run(game, store, logger, cfg); runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	summary, err := tui.RenderSummary(store, veggierun.GameID, flagFPS)
	if err != nil {
		logger.Warn("could not build run summary", "error", err)
		return nil
	}
	fmt.Print(summary)
	return nil
}

// newLogger writes to path when set and discards otherwise. The alt screen
// owns the terminal during play, so nothing goes to stderr.
func newLogger(path string, verbose bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "veggierun",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
