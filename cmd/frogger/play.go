package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: frogger).

Controls:
  W/A/S/D, arrows, h/j/k/l - Hop
  I/E                      - Get into a nearby friendly car
  O/X                      - Get out of the car
  R                        - Restart (after game over)
  Ctrl+S                   - Save a screenshot
  Q/Ctrl+C                 - Quit

Difficulty options:
  easy    - Slower cars, no stork
  normal  - The loaded config as is
  hard    - Faster cars, fewer friendly cars, a faster stork
  classic - Every car hostile, no stork

Examples:
  frogger play
  frogger play frogger_classic
  frogger play --difficulty easy
  frogger play --config ./my-board.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := frogger.ModeStandard
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'frogger list' to see available modes.")
		os.Exit(1)
	}

	preset, err := parseDifficulty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := loadConfig(preset)
	if err != nil {
		exitConfigError(err)
	}

	game, err := registry.Create(gameID, gameCfg)
	if err != nil {
		exitConfigError(err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, logCloser := openLogger()
	defer logCloser.Close()

	store := openStore(logger)

	runErr := tui.Run(game, store, logger, runtimeConfig(width, height), flagName)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logCloser.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// exitConfigError reports a configuration problem and exits with status 1.
func exitConfigError(err error) {
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", cfgErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
