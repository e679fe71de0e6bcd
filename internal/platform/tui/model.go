package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asteroidmania/internal/core"
	"github.com/vovakirdan/asteroidmania/internal/game"
	"github.com/vovakirdan/asteroidmania/internal/storage"
)

// ModelOptions configures a Model. Only Game is required.
type ModelOptions struct {
	Store         storage.Scores     // Nil disables score saving
	Logger        *log.Logger        // Nil discards
	Renderer      *lipgloss.Renderer // Nil uses stdout's
	Cursor        *core.Sprite       // Drawn at the pointer; nil hides it
	Player        string
	SessionID     string
	Tick          time.Duration // Zero uses core.DefaultTick
	ScreenW       int
	ScreenH       int
	ScreenshotDir string // Empty uses ~/.asteroidmania/screenshots
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	styler     *ScreenRenderer
	opts       ModelOptions
	logger     *log.Logger
	keys       GameKeyMap
	inputFrame *core.InputFrame
	gameState  core.GameState
	cursor     *core.Point // Last pointer position, nil until the mouse moves
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for g.
func NewModel(g *game.Game, opts ModelOptions) Model {
	if opts.Tick <= 0 {
		opts.Tick = core.DefaultTick
	}
	if opts.ScreenW <= 0 || opts.ScreenH <= 0 {
		cfg := core.DefaultConfig()
		opts.ScreenW, opts.ScreenH = cfg.ScreenW, cfg.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.ScreenW, opts.ScreenH)
	screen.SetLogicalSize(g.Size())

	frame := core.NewInputFrame()
	return Model{
		game:       g,
		screen:     screen,
		styler:     NewScreenRenderer(opts.Renderer),
		opts:       opts,
		logger:     logger,
		keys:       DefaultGameKeyMap(),
		inputFrame: &frame,
		gameState:  g.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if pos, ok := MapMouse(msg, m.screen, m.inputFrame); ok {
			m.cursor = &pos
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Logical coordinates are unaffected; only the scale changes
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys never reach the game except as
// a quit event.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.inputFrame.Quit()
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}
	return m, nil
}

// handleTick drains the queued input into one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	in := m.inputFrame.Clone()
	m.inputFrame.Clear()
	if in.HasQuit() {
		m.logger.Debug("quit requested", "session", m.opts.SessionID)
	}
	result := m.game.Step(in)
	m.gameState = result.State

	if !m.gameState.Running {
		m.quitting = true
		return m, tea.Quit
	}

	// A new game started from the restart button
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.saveScore()
	}

	return m, tickCmd(m.opts.Tick)
}

func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		Player:    m.opts.Player,
		SessionID: m.opts.SessionID,
		Score:     m.gameState.Score,
		CreatedAt: time.Now(),
	}
	id, err := m.opts.Store.SaveScore(entry)
	if err != nil {
		m.logger.Warn("could not save score", "player", entry.Player, "score", entry.Score, "error", err)
		return
	}
	m.logger.Debug("score saved", "id", id, "player", entry.Player, "score", entry.Score)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".asteroidmania", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("asteroidmania_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// draw renders the scene and the cursor into the screen buffer.
func (m Model) draw() {
	m.game.Render(m.screen)
	if m.opts.Cursor != nil && m.cursor != nil {
		c := m.opts.Cursor
		m.screen.Blit(c, m.cursor.Add(-c.W/2, -c.H/2))
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return m.styler.Render(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for g and blocks until the player quits.
func Run(g *game.Game, opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(g, opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Track the pointer for the crosshair
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
