package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asteroidmania/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AsteroidMania SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Scores are stored per server
(all users share the same leaderboard), under their SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.asteroidmania/host_key

Examples:
  asteroidmania serve                           # Listen on :23234 with auto-generated key
  asteroidmania serve --ssh :2222               # Listen on port 2222
  asteroidmania serve --host-key ./my_host_key  # Use specific host key
  asteroidmania serve --redis localhost:6379    # Share the leaderboard across servers

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, sprites, err := loadGame(logger)
	if err != nil {
		logger.Fatal("cannot start", "error", err)
	}

	store := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.Tick = tickFor(cfg)

	server, err := tui.NewSSHServer(sshCfg, cfg, sprites, store, logger)
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	logger.Info("press Ctrl+C to stop", "address", server.Addr())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
