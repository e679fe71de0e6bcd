package game

import (
	"math"

	"github.com/vovakirdan/asteroidmania/internal/core"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Asteroid drifts in a straight line at a fixed velocity until it is
// clicked, hits a body, or the game restarts.
type Asteroid struct {
	Pos core.Point
	Vel core.Point // Pixels per tick
}

// NewAsteroid creates an asteroid at pos heading towards angle at speed.
func NewAsteroid(pos core.Point, angle, speed float64) Asteroid {
	return Asteroid{
		Pos: pos,
		Vel: core.Pt(speed*math.Cos(angle), speed*math.Sin(angle)),
	}
}

// Advance moves the asteroid by one tick of velocity.
func (a *Asteroid) Advance() {
	a.Pos = a.Pos.Add(a.Vel.X, a.Vel.Y)
}

// spawnAsteroid places an asteroid on a random ring position between
// minR and maxR pixels from center, heading in a random direction.
func spawnAsteroid(rng Rand, center core.Point, minR, maxR int, speed float64) Asteroid {
	theta := rng.Float64() * 2 * math.Pi
	r := float64(minR + rng.Intn(maxR-minR+1))
	heading := rng.Float64() * 2 * math.Pi
	return NewAsteroid(core.Polar(center, r, theta), heading, speed)
}
