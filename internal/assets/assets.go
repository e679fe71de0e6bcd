// Package assets loads the three bitmaps the game draws: the background,
// the crosshair cursor and the asteroid sprite. The art is embedded in the
// binary and can be replaced file by file from a directory.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/vovakirdan/asteroidmania/internal/config"
	"github.com/vovakirdan/asteroidmania/internal/core"
)

// Asset file names.
const (
	BackgroundFile = "background.txt"
	CursorFile     = "crosshair.txt"
	AsteroidFile   = "asteroid.txt"
)

//go:embed art/*.txt
var embedded embed.FS

// Colors the art is drawn with.
var (
	BackgroundColor = core.ColorStar
	CursorColor     = core.RGB(255, 64, 64)
	AsteroidColor   = core.RGB(176, 148, 120)
)

// Set holds the loaded sprites, already scaled to their drawn sizes.
type Set struct {
	Background *core.Sprite // Full display
	Cursor     *core.Sprite // Drawn centered on the pointer
	Asteroid   *core.Sprite // Drawn centered on each asteroid
}

// Load reads and scales all sprites. Files are read from dir when it is
// non-empty, otherwise from the embedded art. Any missing or empty file
// is an error; callers treat it as fatal.
func Load(dir string, cfg config.Config) (*Set, error) {
	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(embedded, "art")
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		fsys = sub
	}
	return LoadFS(fsys, cfg)
}

// LoadFS reads and scales all sprites from fsys.
func LoadFS(fsys fs.FS, cfg config.Config) (*Set, error) {
	background, err := loadSprite(fsys, BackgroundFile, BackgroundColor)
	if err != nil {
		return nil, err
	}
	cursor, err := loadSprite(fsys, CursorFile, CursorColor)
	if err != nil {
		return nil, err
	}
	asteroid, err := loadSprite(fsys, AsteroidFile, AsteroidColor)
	if err != nil {
		return nil, err
	}

	size := cfg.Asteroids.SpriteSize
	return &Set{
		Background: background.Scaled(float64(cfg.Display.Width), float64(cfg.Display.Height)),
		Cursor:     cursor.Scaled(cfg.Assets.CursorSize, cfg.Assets.CursorSize),
		Asteroid:   asteroid.Scaled(size, size),
	}, nil
}

func loadSprite(fsys fs.FS, name string, color core.Color) (*core.Sprite, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot load %s: %w", name, err)
	}
	s, err := core.NewSprite(string(data), color)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	return s, nil
}
