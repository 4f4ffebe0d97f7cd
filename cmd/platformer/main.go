// platformer is a side-scrolling platform game for the terminal.
//
// Usage:
//
//	platformer play          - Play in the current terminal
//	platformer serve         - Start SSH server for remote play
//	platformer scores        - Show high scores and recent sessions
//	platformer sim           - Run a scripted game headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.platformer/scores.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Stomp enemies in your terminal",
	Long: `TUI Platformer is a terminal platform game. Run and jump along the
ground, stomp snakes and mushrooms from above for points, and avoid touching
them from the side. Fill the progress bar to win; lose all lives and it is
game over.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a scripted game without a terminal

Examples:
  platformer play
  platformer play --difficulty easy
  platformer serve --ssh :2222
  platformer scores --browse
  platformer sim --script ./run.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// loadGameConfig resolves the game config from --config and --difficulty.
func loadGameConfig() (config.PlatformerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PlatformerConfig{}, err
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyPlatformerPreset(&cfg, preset)
	return cfg, nil
}

// newLogger creates a logger writing to w at the level chosen by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
