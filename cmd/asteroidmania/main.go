// asteroidmania is a solar-system arcade game for the terminal: click the
// asteroids away before one of them hits the sun or a planet.
//
// Usage:
//
//	asteroidmania               - Play in this terminal (same as play)
//	asteroidmania play          - Play in this terminal
//	asteroidmania serve         - Start SSH server for remote play
//	asteroidmania scores        - Show the high score table
//
// Global flags:
//
//	--tick <dur>      - Fixed delay between ticks (default: from config, 30ms)
//	--seed <value>    - Set RNG seed for reproducible asteroid spawns
//	--db <path>       - Set database path (default: ~/.asteroidmania/scores.db)
//	--redis <addr>    - Keep scores in Redis instead of SQLite
//	--config <path>   - Game tuning YAML
//	--assets <dir>    - Directory overriding the embedded art
//	--log-level <lvl> - debug, info, warn, error
//	--log-file <path> - Where play logs go (default: discarded)
//	--player <name>   - Name stored with local scores (default: $USER)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTick     time.Duration
	flagSeed     int64
	flagDBPath   string
	flagRedis    string
	flagConfig   string
	flagAssets   string
	flagLogLevel string
	flagLogFile  string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroidmania",
	Short: "AsteroidMania - defend the solar system in your terminal",
	Long: `AsteroidMania puts the solar system in your terminal. Planets orbit
the sun while asteroids drift in from the dark. Click an asteroid to
destroy it before it hits the sun or a planet.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  asteroidmania
  asteroidmania play --seed 42
  asteroidmania serve --ssh :2222
  asteroidmania scores --plain`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.DurationVar(&flagTick, "tick", 0, "Fixed delay between ticks (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.asteroidmania/scores.db", "Path to scores database")
	pf.StringVar(&flagRedis, "redis", "", "Redis address for a shared leaderboard (host:port)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagAssets, "assets", "", "Directory with background.txt, crosshair.txt and asteroid.txt")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Append play logs to this file")
	pf.StringVar(&flagPlayer, "player", defaultPlayer(), "Player name stored with scores")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
