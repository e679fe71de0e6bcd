package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroidmania/internal/config"
	"github.com/vovakirdan/asteroidmania/internal/core"
	"github.com/vovakirdan/asteroidmania/internal/game"
	"github.com/vovakirdan/asteroidmania/internal/storage"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// memStore records saved scores.
type memStore struct {
	saved []storage.ScoreEntry
	err   error
}

func (s *memStore) SaveScore(e storage.ScoreEntry) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, e)
	return int64(len(s.saved)), nil
}

func (s *memStore) TopScores(limit int) ([]storage.ScoreEntry, error) {
	return s.saved, s.err
}

func (s *memStore) HighScore() (int, error) { return 0, nil }

func (s *memStore) Close() error { return nil }

// newTestModel builds a model on a 128x72 screen, ten logical pixels per cell.
func newTestModel(t *testing.T, store storage.Scores) (Model, *game.Game) {
	t.Helper()
	cfg := config.Default()
	cfg.Planets = nil
	g := game.New(cfg, game.WithClock(fixedClock{t: time.Now()}), game.WithSeed(1))
	m := NewModel(g, ModelOptions{
		Store:         store,
		Player:        "ada",
		SessionID:     "sess-1",
		ScreenW:       128,
		ScreenH:       72,
		ScreenshotDir: t.TempDir(),
	})
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelClickStartsGame(t *testing.T) {
	m, g := newTestModel(t, nil)

	// Start button spans cells 59..68 x 62..66
	m, _ = update(t, m, leftClick(64, 64))
	if g.State().Moving {
		t.Fatal("presses should wait for the next tick")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if !m.State().Moving {
		t.Error("click on the start button should start the game")
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("tick should re-arm the loop")
	}
}

func TestModelClickDestroysAsteroid(t *testing.T) {
	m, g := newTestModel(t, nil)
	g.AddAsteroid(game.Asteroid{Pos: core.Pt(100, 100)})

	// Cell (10,10) maps to logical (105,105)
	m, _ = update(t, m, leftClick(10, 10))
	m, _ = update(t, m, TickMsg(time.Now()))

	if m.State().Score != 1 || m.State().Asteroids != 0 {
		t.Errorf("expected asteroid destroyed, got %+v", m.State())
	}
}

func TestModelClickCoversWholeCell(t *testing.T) {
	cfg := config.Default()
	cfg.Planets = nil
	g := game.New(cfg, game.WithClock(fixedClock{t: time.Now()}), game.WithSeed(1))
	m := NewModel(g, ModelOptions{ScreenW: 80, ScreenH: 24, ScreenshotDir: t.TempDir()})

	// Cells are 16x30; (320, 180) is a cell corner, 17 from every
	// neighbouring cell center
	g.AddAsteroid(game.Asteroid{Pos: core.Pt(320, 180)})

	m, _ = update(t, m, leftClick(22, 6))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.State().Asteroids != 1 {
		t.Fatal("a click two cells away should miss")
	}

	m, _ = update(t, m, leftClick(20, 6))
	m, _ = update(t, m, TickMsg(time.Now()))
	if state := m.State(); state.Score != 1 || state.Asteroids != 0 {
		t.Errorf("click on a cell touching the asteroid should destroy it, got %+v", state)
	}
}

func TestModelIgnoresRightClick(t *testing.T) {
	m, _ := newTestModel(t, nil)

	msg := leftClick(64, 64)
	msg.Button = tea.MouseButtonRight
	m, _ = update(t, m, msg)
	m, _ = update(t, m, TickMsg(time.Now()))

	if m.State().Moving {
		t.Error("right click should not press the button")
	}
}

func TestModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if isQuit(cmd) {
		t.Fatal("quit is observed on the next tick")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Error("tick after q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := &memStore{}
	m, g := newTestModel(t, store)
	g.AddAsteroid(game.Asteroid{Pos: core.Pt(100, 100)})
	g.AddAsteroid(game.Asteroid{Pos: g.Center()})
	g.Toggle()

	m, _ = update(t, m, leftClick(10, 10))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.State().GameOver {
		t.Fatal("asteroid on the sun should end the game")
	}
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	if len(store.saved) != 1 {
		t.Fatalf("expected one saved score, got %d", len(store.saved))
	}
	e := store.saved[0]
	if e.Score != 1 || e.Player != "ada" || e.SessionID != "sess-1" {
		t.Errorf("saved entry = %+v", e)
	}

	// Restart then lose again: a second game gets its own entry
	m, _ = update(t, m, leftClick(64, 38))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.State().GameOver {
		t.Fatal("restart button should reset the game")
	}
	g.AddAsteroid(game.Asteroid{Pos: core.Pt(100, 100)})
	g.AddAsteroid(game.Asteroid{Pos: g.Center()})
	g.Toggle()
	m, _ = update(t, m, leftClick(10, 10))
	_, _ = update(t, m, TickMsg(time.Now()))

	if len(store.saved) != 2 {
		t.Errorf("expected a score per game, got %d", len(store.saved))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := &memStore{}
	m, g := newTestModel(t, store)
	g.AddAsteroid(game.Asteroid{Pos: g.Center()})
	g.Toggle()

	_, _ = update(t, m, TickMsg(time.Now()))
	if len(store.saved) != 0 {
		t.Error("zero scores are not saved")
	}
}

func TestModelSaveFailureKeepsPlaying(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	m, g := newTestModel(t, store)
	g.AddAsteroid(game.Asteroid{Pos: core.Pt(100, 100)})
	g.AddAsteroid(game.Asteroid{Pos: g.Center()})
	g.Toggle()

	m, _ = update(t, m, leftClick(10, 10))
	_, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil || isQuit(cmd) {
		t.Error("a failed save should not stop the loop")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, nil)
	g.Toggle()
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 64, Height: 36})
	if !m.State().Moving {
		t.Error("resize should not reset the game")
	}

	// The button now spans cells 29..33 x 31..32
	m, _ = update(t, m, leftClick(32, 32))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.State().Moving {
		t.Error("click should map through the new scale")
	}
}

func TestModelViewShowsScene(t *testing.T) {
	m, _ := newTestModel(t, nil)
	view := m.View()

	for _, want := range []string{"Score: 0", game.LabelStart, game.TextHowToPlay} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestModelCursorFollowsMouse(t *testing.T) {
	cursor, err := core.NewSprite("+", core.ColorRed)
	if err != nil {
		t.Fatal(err)
	}
	m, _ := newTestModel(t, nil)
	m.opts.Cursor = cursor.Scaled(10, 10)

	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 20, Action: tea.MouseActionMotion})
	m.View()

	if got := m.screen.Get(20, 20).Rune; got != '+' {
		t.Errorf("cursor cell = %q, expected '+'", got)
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot should contain the scene text")
	}
}
