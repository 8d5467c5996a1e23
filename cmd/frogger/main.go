// frogger is a real-time terminal game: hop the frog across a road of
// cars, hitch rides in friendly ones and keep clear of the stork.
//
// Usage:
//
//	frogger list              - List available modes
//	frogger play [mode]       - Play a mode (default: frogger)
//	frogger menu              - Pick modes and difficulty interactively
//	frogger scores <mode>     - Show the leaderboard for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 25)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.frogger/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <preset> - easy, normal, hard or classic
//	--name <player>       - Save wins under this name without asking
//	--log-file <path>     - Write the session log to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road in your terminal",
	Long: `Frogger is a real-time terminal game. Hop the frog from the bottom of
the board to the top row without being run over.

Blue cars are friendly and will give you a ride, yellow cars wait for
you, red cars do not stop. In the standard mode a stork hunts the frog.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  scores   - View the leaderboard

Examples:
  frogger play
  frogger play frogger_classic
  frogger play --difficulty hard --name ann
  frogger menu --config ./my-board.yaml
  frogger scores frogger`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 25, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogger/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name for the leaderboard (skips the prompt)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the session log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig(preset config.DifficultyPreset) (config.FroggerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// parseDifficulty validates --difficulty.
func parseDifficulty() (config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or classic)", flagDifficulty)
	}
	return preset, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openLogger creates the session logger from --log-file and --log-level.
func openLogger() (*log.Logger, io.Closer) {
	logger, closer, err := tui.NewLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closer, _ = tui.NewLogger("", "")
	}
	return logger, closer
}

// openStore opens the leaderboard, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}
