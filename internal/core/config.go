package core

import "time"

// Logical display resolution. All scene coordinates use this space
// regardless of the terminal size.
const (
	LogicalWidth  = 1280
	LogicalHeight = 720
)

// DefaultTick is the fixed delay between loop iterations.
const DefaultTick = 30 * time.Millisecond

// RuntimeConfig contains configuration passed from the platform to the game loop.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Fixed delay between ticks
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    DefaultTick,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is a snapshot of the simulation flags and counters.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Asteroids destroyed in the current game
	Moving    bool // Whether the simulation advances
	GameOver  bool // Whether an asteroid hit a body
	Running   bool // False once a quit event was observed
	Asteroids int  // Number of live asteroids
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
