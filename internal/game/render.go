package game

import (
	"fmt"

	"github.com/vovakirdan/asteroidmania/internal/assets"
	"github.com/vovakirdan/asteroidmania/internal/core"
)

// Text shown on the display.
const (
	LabelStart    = "Start"
	LabelStop     = "Stop"
	LabelRestart  = "Try Again"
	TextGameOver  = "Game Over!"
	TextHowToPlay = "Click on asteroids to destroy them!"
)

// orbitAlpha is the opacity of orbit rings over a black sky.
const orbitAlpha = 50.0 / 255

var orbitColor = core.ColorWhite.Blend(core.ColorBlack, orbitAlpha)

// Render draws the scene. The result depends only on the game state and
// the sprites, so it can be called any number of times per tick.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()
	if g.sprites != nil && g.sprites.Background != nil {
		dst.Blit(g.sprites.Background, core.Pt(0, 0))
	}

	for _, p := range g.planets {
		dst.StrokeCircle(g.center, p.Distance, orbitColor)
	}
	dst.FillCircle(g.center, g.cfg.Sun.Radius, toColor(g.cfg.Sun.Color))
	for _, p := range g.planets {
		dst.FillCircle(p.Position(g.center), p.Radius, p.Color)
	}
	for _, a := range g.asteroids {
		g.drawAsteroid(dst, a)
	}

	g.drawHUD(dst)
	if g.gameOver {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawAsteroid(dst core.Canvas, a Asteroid) {
	if g.sprites == nil || g.sprites.Asteroid == nil {
		dst.FillCircle(a.Pos, g.cfg.Asteroids.SpriteSize/2, assets.AsteroidColor)
		return
	}
	s := g.sprites.Asteroid
	dst.Blit(s, a.Pos.Add(-s.W/2, -s.H/2))
}

func (g *Game) drawHUD(dst core.Canvas) {
	label := LabelStart
	if g.moving {
		label = LabelStop
	}
	btn := g.StartButton()
	dst.FillRect(btn, core.ColorGreen)
	dst.DrawTextCentered(btn, label, core.ColorBlack)

	dst.DrawText(core.Pt(10, 10), fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawText(core.Pt(10, float64(g.cfg.Display.Height-50)), TextHowToPlay, core.ColorWhite)
}

func (g *Game) drawGameOver(dst core.Canvas) {
	dst.DrawText(g.center.Add(-80, -50), TextGameOver, core.ColorWhite)
	btn := g.RestartButton()
	dst.FillRect(btn, core.ColorRed)
	dst.DrawTextCentered(btn, LabelRestart, core.ColorBlack)
}
