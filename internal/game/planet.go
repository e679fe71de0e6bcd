package game

import (
	"github.com/vovakirdan/asteroidmania/internal/config"
	"github.com/vovakirdan/asteroidmania/internal/core"
)

// Planet is a body on a circular orbit around the display center.
// Its position is derived from Angle on demand and never stored.
type Planet struct {
	Name     string
	Color    core.Color
	Radius   float64 // Collision and draw radius
	Speed    float64 // Radians per tick
	Distance float64 // Orbit radius
	Angle    float64 // Accumulated, never wrapped
}

func newPlanet(pc config.PlanetConfig) Planet {
	return Planet{
		Name:     pc.Name,
		Color:    toColor(pc.Color),
		Radius:   pc.Radius,
		Speed:    pc.Speed,
		Distance: pc.Distance,
	}
}

// Advance moves the planet one tick along its orbit.
func (p *Planet) Advance() {
	p.Angle += p.Speed
}

// Position returns the planet's current position around center.
func (p Planet) Position(center core.Point) core.Point {
	return core.Polar(center, p.Distance, p.Angle)
}

// body is anything an asteroid can crash into.
type body struct {
	pos    core.Point
	radius float64
}

// bodies returns the sun followed by every planet at its current position.
func (g *Game) bodies() []body {
	out := make([]body, 0, len(g.planets)+1)
	out = append(out, body{pos: g.center, radius: g.cfg.Sun.Radius})
	for _, p := range g.planets {
		out = append(out, body{pos: p.Position(g.center), radius: p.Radius})
	}
	return out
}

func toColor(c config.RGB) core.Color {
	return core.RGB(c[0], c[1], c[2])
}
