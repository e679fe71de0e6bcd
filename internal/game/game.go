// Package game implements AsteroidMania: planets orbit a sun at the center
// of the display while asteroids spawn around it. The player clicks the
// asteroids away before one of them hits a body.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/asteroidmania/internal/assets"
	"github.com/vovakirdan/asteroidmania/internal/config"
	"github.com/vovakirdan/asteroidmania/internal/core"
)

// Button geometry in logical pixels.
const (
	ButtonW = 100
	ButtonH = 50
)

// Game holds the whole simulation. It is owned by a single loop and is not
// safe for concurrent use.
type Game struct {
	cfg     config.Config
	center  core.Point
	sprites *assets.Set

	planets   []Planet
	asteroids []Asteroid
	score     int
	moving    bool // Whether the simulation advances
	gameOver  bool // Set by a collision, cleared only by Restart
	running   bool // Cleared by a quit event
	lastSpawn time.Time

	rng   Rand
	clock core.Clock
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used for spawning.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSeed seeds a new math/rand source. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock sets the clock used for spawn timing.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithAssets sets the sprites used for rendering. Without them the
// background is left blank and asteroids are drawn as circles.
func WithAssets(s *assets.Set) Option {
	return func(g *Game) {
		g.sprites = s
	}
}

// New creates an idle game from cfg.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		center: core.Pt(float64(cfg.Display.Width/2), float64(cfg.Display.Height/2)),
		clock:  core.SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.planets = make([]Planet, len(cfg.Planets))
	for i, pc := range cfg.Planets {
		g.planets[i] = newPlanet(pc)
	}
	g.running = true
	g.lastSpawn = g.clock.Now()
	return g
}

// Restart returns to the idle state: no asteroids, zero score, every
// planet back at angle 0 and the spawn timer restarted.
func (g *Game) Restart() {
	g.asteroids = g.asteroids[:0]
	g.score = 0
	g.gameOver = false
	g.moving = false
	g.lastSpawn = g.clock.Now()
	for i := range g.planets {
		g.planets[i].Angle = 0
	}
}

// Step drains the queued input events in order, then advances the
// simulation by one tick if it is moving.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, ev := range in.Events() {
		switch ev.Kind {
		case core.EventQuit:
			g.running = false
		case core.EventPress:
			g.PressArea(ev.Pos, ev.Reach)
		}
	}

	if g.running {
		g.Update()
	}
	return core.StepResult{State: g.State()}
}

// Press handles a pointer press. The start/stop button is checked first,
// then the restart button and finally the asteroids. Only the restart
// button reacts once the game is over.
func (g *Game) Press(p core.Point) {
	g.PressArea(p, core.Point{})
}

// PressArea is Press for a press covering the box centered on p with
// half-extents reach. Buttons are hit tested at p; asteroids are measured
// from the nearest point of the box.
func (g *Game) PressArea(p, reach core.Point) {
	if !g.gameOver && g.StartButton().Contains(p) {
		g.Toggle()
	}
	if g.gameOver {
		if g.RestartButton().Contains(p) {
			g.Restart()
		}
		return
	}
	g.destroyWithin(p, reach)
}

// Toggle flips between idle and running.
func (g *Game) Toggle() {
	g.moving = !g.moving
}

// Destroy removes every asteroid closer than the destroy radius to p
// and scores one point for each. It returns the number removed.
func (g *Game) Destroy(p core.Point) int {
	return g.destroyWithin(p, core.Point{})
}

func (g *Game) destroyWithin(p, reach core.Point) int {
	kept := g.asteroids[:0]
	hits := 0
	for _, a := range g.asteroids {
		if a.Pos.Dist(p.Nearest(a.Pos, reach.X, reach.Y)) < g.cfg.Asteroids.DestroyRadius {
			hits++
			continue
		}
		kept = append(kept, a)
	}
	g.asteroids = kept
	g.score += hits
	return hits
}

// Update advances one tick: planets move, an asteroid may spawn, asteroids
// move and then every asteroid is tested against every body. Nothing
// happens while idle or after game over.
func (g *Game) Update() {
	if !g.moving || g.gameOver {
		return
	}

	for i := range g.planets {
		g.planets[i].Advance()
	}

	now := g.clock.Now()
	if now.Sub(g.lastSpawn) > g.cfg.Asteroids.SpawnInterval() {
		ac := g.cfg.Asteroids
		g.asteroids = append(g.asteroids, spawnAsteroid(g.rng, g.center, ac.SpawnMinRadius, ac.SpawnMaxRadius, ac.Speed))
		g.lastSpawn = now
	}

	for i := range g.asteroids {
		g.asteroids[i].Advance()
	}

	if g.collided() {
		g.gameOver = true
	}
}

// collided reports whether any asteroid is inside any body.
func (g *Game) collided() bool {
	bodies := g.bodies()
	for _, a := range g.asteroids {
		for _, b := range bodies {
			if a.Pos.Dist(b.pos) < b.radius {
				return true
			}
		}
	}
	return false
}

// State returns a snapshot of the flags and counters.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Moving:    g.moving,
		GameOver:  g.gameOver,
		Running:   g.running,
		Asteroids: len(g.asteroids),
	}
}

// Size returns the logical display size.
func (g *Game) Size() (w, h int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
}

// Center returns the display center all orbits revolve around.
func (g *Game) Center() core.Point {
	return g.center
}

// Planets returns a copy of the planets.
func (g *Game) Planets() []Planet {
	out := make([]Planet, len(g.planets))
	copy(out, g.planets)
	return out
}

// Asteroids returns a copy of the live asteroids.
func (g *Game) Asteroids() []Asteroid {
	out := make([]Asteroid, len(g.asteroids))
	copy(out, g.asteroids)
	return out
}

// AddAsteroid places an asteroid directly, bypassing the spawn timer.
func (g *Game) AddAsteroid(a Asteroid) {
	g.asteroids = append(g.asteroids, a)
}

// StartButton returns the start/stop button rect, centered near the bottom.
func (g *Game) StartButton() core.Rect {
	return core.NewRect(g.cfg.Display.Width/2-ButtonW/2, g.cfg.Display.Height-100, ButtonW, ButtonH)
}

// RestartButton returns the "Try Again" button rect shown on game over.
func (g *Game) RestartButton() core.Rect {
	return core.NewRect(g.cfg.Display.Width/2-ButtonW/2, g.cfg.Display.Height/2, ButtonW, ButtonH)
}
