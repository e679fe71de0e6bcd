// Package config provides YAML-based game configuration loading
// for AsteroidMania.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunable constants of the game.
// The rules themselves are fixed in code; only magnitudes live here.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Sun       SunConfig       `yaml:"sun"`
	Planets   []PlanetConfig  `yaml:"planets"`
	Asteroids AsteroidsConfig `yaml:"asteroids"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// DisplayConfig defines the logical display and loop timing.
type DisplayConfig struct {
	Width  int `yaml:"width"`   // Logical width in pixels
	Height int `yaml:"height"`  // Logical height in pixels
	TickMS int `yaml:"tick_ms"` // Fixed delay between ticks
}

// Tick returns the loop delay as a duration.
func (d DisplayConfig) Tick() time.Duration {
	return time.Duration(d.TickMS) * time.Millisecond
}

// SunConfig defines the body at the center of the display.
type SunConfig struct {
	Radius float64 `yaml:"radius"`
	Color  RGB     `yaml:"color"`
}

// PlanetConfig defines one orbiting planet.
type PlanetConfig struct {
	Name     string  `yaml:"name"`
	Color    RGB     `yaml:"color"`
	Radius   float64 `yaml:"radius"`   // Collision and draw radius in pixels
	Speed    float64 `yaml:"speed"`    // Radians per tick
	Distance float64 `yaml:"distance"` // Orbit radius in pixels
}

// AsteroidsConfig defines spawning, motion and the click hit test.
type AsteroidsConfig struct {
	Speed           float64 `yaml:"speed"`             // Pixels per tick
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Minimum real time between spawns
	SpawnMinRadius  int     `yaml:"spawn_min_radius"`  // Inclusive
	SpawnMaxRadius  int     `yaml:"spawn_max_radius"`  // Inclusive
	DestroyRadius   float64 `yaml:"destroy_radius"`    // Click hit distance in pixels
	SpriteSize      float64 `yaml:"sprite_size"`       // Drawn size in pixels
}

// SpawnInterval returns the spawn interval as a duration.
func (a AsteroidsConfig) SpawnInterval() time.Duration {
	return time.Duration(a.SpawnIntervalMS) * time.Millisecond
}

// AssetsConfig defines where bitmaps come from and how large they are drawn.
type AssetsConfig struct {
	Dir        string  `yaml:"dir"`         // Override directory; empty uses embedded art
	CursorSize float64 `yaml:"cursor_size"` // Crosshair size in pixels
}

// RGB is a color written as a three-element YAML list.
type RGB [3]uint8

// Validate checks that every magnitude is usable.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Display.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_ms must be positive, got %d", c.Display.TickMS))
	}
	if c.Sun.Radius < 0 {
		errs = append(errs, fmt.Errorf("sun.radius must not be negative, got %g", c.Sun.Radius))
	}

	seen := make(map[string]bool, len(c.Planets))
	for i, p := range c.Planets {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("planets[%d]: name is required", i))
		} else if seen[p.Name] {
			errs = append(errs, fmt.Errorf("planets[%d]: duplicate name %q", i, p.Name))
		}
		seen[p.Name] = true
		if p.Radius <= 0 {
			errs = append(errs, fmt.Errorf("planets[%d]: radius must be positive, got %g", i, p.Radius))
		}
		if p.Speed <= 0 {
			errs = append(errs, fmt.Errorf("planets[%d]: speed must be positive, got %g", i, p.Speed))
		}
		if p.Distance <= 0 {
			errs = append(errs, fmt.Errorf("planets[%d]: distance must be positive, got %g", i, p.Distance))
		}
	}

	a := c.Asteroids
	if a.Speed <= 0 {
		errs = append(errs, fmt.Errorf("asteroids.speed must be positive, got %g", a.Speed))
	}
	if a.SpawnIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("asteroids.spawn_interval_ms must be positive, got %d", a.SpawnIntervalMS))
	}
	if a.SpawnMinRadius < 0 || a.SpawnMaxRadius < a.SpawnMinRadius {
		errs = append(errs, fmt.Errorf("asteroids spawn radius range [%d, %d] is invalid", a.SpawnMinRadius, a.SpawnMaxRadius))
	}
	if a.DestroyRadius <= 0 {
		errs = append(errs, fmt.Errorf("asteroids.destroy_radius must be positive, got %g", a.DestroyRadius))
	}
	if a.SpriteSize <= 0 {
		errs = append(errs, fmt.Errorf("asteroids.sprite_size must be positive, got %g", a.SpriteSize))
	}
	if c.Assets.CursorSize <= 0 {
		errs = append(errs, fmt.Errorf("assets.cursor_size must be positive, got %g", c.Assets.CursorSize))
	}

	return errors.Join(errs...)
}
