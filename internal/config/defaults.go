package config

import (
	_ "embed"
)

//go:embed defaults/asteroidmania.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// YAML and is used when that fails to parse.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:  1280,
			Height: 720,
			TickMS: 30,
		},
		Sun: SunConfig{
			Radius: 20,
			Color:  RGB{255, 204, 0},
		},
		Planets: []PlanetConfig{
			{Name: "Mercury", Color: RGB{169, 169, 169}, Radius: 5, Speed: 0.04787, Distance: 40},
			{Name: "Venus", Color: RGB{255, 228, 196}, Radius: 7, Speed: 0.03502, Distance: 75},
			{Name: "Earth", Color: RGB{0, 191, 255}, Radius: 7, Speed: 0.02978, Distance: 105},
			{Name: "Mars", Color: RGB{255, 99, 71}, Radius: 6, Speed: 0.02407, Distance: 145},
			{Name: "Jupiter", Color: RGB{255, 165, 0}, Radius: 12, Speed: 0.01307, Distance: 240},
			{Name: "Saturn", Color: RGB{255, 228, 181}, Radius: 11, Speed: 0.00969, Distance: 340},
			{Name: "Uranus", Color: RGB{135, 206, 235}, Radius: 8, Speed: 0.00681, Distance: 480},
			{Name: "Neptune", Color: RGB{0, 0, 128}, Radius: 8, Speed: 0.00543, Distance: 600},
		},
		Asteroids: AsteroidsConfig{
			Speed:           2,
			SpawnIntervalMS: 1200,
			SpawnMinRadius:  200,
			SpawnMaxRadius:  400,
			DestroyRadius:   15,
			SpriteSize:      30,
		},
		Assets: AssetsConfig{
			CursorSize: 40,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
