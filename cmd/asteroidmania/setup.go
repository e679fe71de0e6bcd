package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asteroidmania/internal/assets"
	"github.com/vovakirdan/asteroidmania/internal/config"
	"github.com/vovakirdan/asteroidmania/internal/storage"
)

// newLogger builds the logger for w at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroidmania",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// playLogger returns a logger that stays off the terminal while the game
// owns it. The returned func releases the log file.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// loadGame loads the tuning config and the sprites. Both are required.
func loadGame(logger *log.Logger) (config.Config, *assets.Set, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger.Debug("config loaded", "source", source)

	dir := flagAssets
	if dir == "" {
		dir = cfg.Assets.Dir
	}
	sprites, err := assets.Load(dir, cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	if dir == "" {
		dir = "embedded"
	}
	logger.Debug("assets loaded", "source", dir)

	return cfg, sprites, nil
}

// tickFor returns --tick when set, otherwise the configured delay.
func tickFor(cfg config.Config) time.Duration {
	if flagTick > 0 {
		return flagTick
	}
	return cfg.Display.Tick()
}

// openScores opens the score backend picked by the flags. A failure is
// logged and play continues without scores.
func openScores(logger *log.Logger) storage.Scores {
	if flagRedis != "" {
		store, err := storage.OpenRedis(flagRedis, storage.DefaultRedisPrefix)
		if err != nil {
			logger.Warn("could not connect to redis", "addr", flagRedis, "error", err)
			return nil
		}
		return store
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
