package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroidmania/internal/core"
)

// GameKeyMap defines the few keys the game reacts to. Everything else is
// played with the mouse.
type GameKeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Screenshot}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MapMouse translates a mouse message into game input. A left press is
// queued on frame as the whole cell under the pointer, centered on the
// cell's logical midpoint. It returns the pointer position and whether the
// message carried one worth tracking.
func MapMouse(msg tea.MouseMsg, screen *core.Screen, frame *core.InputFrame) (core.Point, bool) {
	pos := screen.ToLogical(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			cw, ch := screen.CellSize()
			frame.PressArea(pos.X, pos.Y, cw/2, ch/2)
		}
		return pos, true
	case tea.MouseActionMotion, tea.MouseActionRelease:
		return pos, true
	}
	return core.Point{}, false
}
