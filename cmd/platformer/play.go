package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLogFile    string
	flagPlayerName string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up         - Jump (stomp enemies by landing on them)
  Esc/X            - Back to the menu
  M / S            - Toggle music / sound
  Enter            - Select menu item
  Q/Ctrl+C         - Quit

The mouse works too: click menu buttons or the [X] in the corner.

Difficulty options:
  easy   - 5 lives, longer invulnerability, slower enemy respawn
  normal - values from the config
  hard   - 2 lives, short invulnerability, fast enemy respawn

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --config ./my-level.yaml --log-file /tmp/platformer.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy with the game)")
	playCmd.Flags().StringVar(&flagPlayerName, "name", "", "Player name for the scoreboard (default: $USER)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with music and sound off")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one local game. Deferred closes must run before runPlay exits.
func play() error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "platformer")
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	opts := []game.Option{
		game.WithLogger(logger),
		game.WithToggles(!flagMute, !flagMute),
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, game.WithRecorder(store, playerName()))
		if best, bestErr := store.HighScore(); bestErr == nil {
			opts = append(opts, game.WithBestScore(best))
		} else {
			logger.Warn("could not read high score", "error", bestErr)
		}
	}

	session := game.NewSession(gameCfg, opts...)
	if err := tui.Run(session, cfg,
		tui.WithBell(os.Stdout),
		tui.WithModelLogger(logger),
	); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playerName() string {
	if flagPlayerName != "" {
		return flagPlayerName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
