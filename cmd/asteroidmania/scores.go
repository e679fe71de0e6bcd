package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/asteroidmania/internal/platform/tui"
	"github.com/vovakirdan/asteroidmania/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagMine  bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high score table.

In a terminal the table is interactive; use --plain (or pipe the output)
for a text listing.

Examples:
  asteroidmania scores
  asteroidmania scores --plain --limit 5
  asteroidmania scores --plain --mine --player ada
  asteroidmania scores --redis localhost:6379
  asteroidmania scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultTopLimit, "Number of scores to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagMine, "mine", false, "Only --player's scores (SQLite only, plain mode)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

// clearer is implemented by both score backends.
type clearer interface {
	ClearScores() error
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	store := openScores(logger)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		c, ok := store.(clearer)
		if !ok {
			logger.Error("this score store cannot be cleared")
			store.Close()
			os.Exit(1)
		}
		if err := c.ClearScores(); err != nil {
			logger.Error("cannot clear scores", "error", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("All scores deleted.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			logger.Error("scoreboard failed", "error", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printScores(store); err != nil {
		logger.Error("cannot list scores", "error", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store storage.Scores) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	local, isLocal := store.(*storage.Store)
	switch {
	case flagMine && isLocal:
		scores, err = local.PlayerScores(flagPlayer, flagLimit)
	case flagMine:
		return errors.New("--mine needs the SQLite store")
	default:
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println("AsteroidMania High Scores")
	fmt.Println()
	if err := tui.WriteScores(os.Stdout, scores); err != nil {
		return err
	}

	if !isLocal {
		return nil
	}
	stats, err := local.Stats()
	if err != nil {
		return err
	}
	if stats.Games > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Players: %d  Best: %d  Average: %.1f  Last played: %s\n",
			stats.Games, stats.Players, stats.HighScore, stats.AvgScore,
			stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
