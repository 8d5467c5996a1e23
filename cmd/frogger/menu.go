package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty picker",
	Long: `Start frogger in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty
and Enter to play. Quitting a game (Q) returns you to the menu.

Controls:
  Up/Down/j/k     - Pick mode
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Leaderboard
  Q               - Quit

Examples:
  frogger menu
  frogger menu --fps 30
  frogger menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := parseDifficulty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset == config.DifficultyClassic {
		// classic has its own mode entry
		preset = config.DifficultyNormal
	}

	logger, logCloser := openLogger()
	defer logCloser.Close()

	store := openStore(logger)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		gameCfg, err := loadConfig(preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
			logger.Error("cannot load config", "err", err)
			waitForUser()
			continue
		}

		game, err := registry.Create(gameID, gameCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
			logger.Error("cannot start game", "mode", gameID, "err", err)
			waitForUser()
			continue
		}

		// Fresh seed for each game unless pinned by --seed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, logger, cfg, flagName); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}

// waitForUser keeps an error on screen until Enter is pressed, since the
// menu redraws the alternate screen immediately.
func waitForUser() {
	fmt.Fprintln(os.Stderr, "Press Enter to return to the menu.")
	var discard string
	//nolint:errcheck // Any input, including EOF, continues
	fmt.Scanln(&discard)
}
