package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/asteroidmania/internal/game"
	"github.com/vovakirdan/asteroidmania/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. The terminal must support mouse input.

Controls:
  Click Start/Stop  - Start or pause the solar system
  Click asteroid    - Destroy it (+1 point)
  Click Try Again   - Restart after game over
  Ctrl+S            - Save a text screenshot
  Q/Esc/Ctrl+C      - Quit

Examples:
  asteroidmania play
  asteroidmania play --seed 42
  asteroidmania play --config ./my-asteroidmania.yaml
  asteroidmania play --redis localhost:6379 --player ada`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Startup failures go to stderr before the alt screen takes over
	errLog := newLogger(os.Stderr)

	logger, closeLog, err := playLogger()
	if err != nil {
		errLog.Fatal("cannot start", "error", err)
	}
	defer closeLog()

	cfg, sprites, err := loadGame(logger)
	if err != nil {
		errLog.Fatal("cannot start", "error", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openScores(logger)

	g := game.New(cfg, game.WithAssets(sprites), game.WithSeed(flagSeed))
	runErr := tui.Run(g, tui.ModelOptions{
		Store:     store,
		Logger:    logger,
		Cursor:    sprites.Cursor,
		Player:    flagPlayer,
		SessionID: uuid.NewString(),
		Tick:      tickFor(cfg),
		ScreenW:   width,
		ScreenH:   height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		errLog.Fatal("game stopped", "error", runErr)
	}
}
