package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-lanecrosser/internal/game"
)

// frameMsg carries a new snapshot from the engine loop.
type frameMsg game.Snapshot

// errMsg carries an error.
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// Engine is the part of the game engine the TUI talks to.
type Engine interface {
	EnqueueAction(game.Action)
}

// Model is the Bubbletea model for the game.
type Model struct {
	engine   Engine
	frames   <-chan game.Snapshot
	snap     *game.Snapshot
	err      error
	quitting bool
}

// NewModel creates a TUI model that sends input to engine and renders the
// snapshots arriving on frames.
func NewModel(engine Engine, frames <-chan game.Snapshot) Model {
	return Model{
		engine: engine,
		frames: frames,
	}
}

// Init starts listening for frames from the engine.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

// Update handles incoming messages (key presses, frames).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		snap := game.Snapshot(msg)
		m.snap = &snap
		return m, waitForFrame(m.frames)

	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye! 👋\n"
	}

	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Render("Error: "+m.err.Error()) + "\n"
	}

	if m.snap == nil {
		return "Starting...\n"
	}

	if m.snap.Screen == game.ScreenHome {
		return RenderHome(m.snap.HomeSubScreen) + "\n"
	}

	board := RenderBoard(m.snap)
	hud := RenderHUD(m.snap)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey maps keys to engine actions for the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if key == "esc" {
		m.engine.EnqueueAction(game.Action{Type: game.ActionEscape})
		return m, nil
	}
	if key == "g" {
		m.engine.EnqueueAction(game.Action{Type: game.ActionToggleDebug})
		return m, nil
	}
	if m.snap == nil {
		return m, nil
	}

	switch m.snap.Screen {
	case game.ScreenHome:
		return m.handleHomeKey(key)

	case game.ScreenPlaying:
		switch key {
		case "up", "w":
			m.move(game.DirForward)
		case "down", "s":
			m.move(game.DirBackward)
		case "left", "a":
			m.move(game.DirLeft)
		case "right", "d":
			m.move(game.DirRight)
		case "p", " ":
			m.engine.EnqueueAction(game.Action{Type: game.ActionTogglePause})
		}

	case game.ScreenPaused:
		switch key {
		case "p", " ", "enter":
			m.engine.EnqueueAction(game.Action{Type: game.ActionTogglePause})
		case "m", "q":
			m.engine.EnqueueAction(game.Action{Type: game.ActionQuit})
		}

	case game.ScreenGameOver:
		switch key {
		case "r", "enter":
			m.engine.EnqueueAction(game.Action{Type: game.ActionRetry})
		case "q", "m":
			m.engine.EnqueueAction(game.Action{Type: game.ActionQuit})
		}
	}

	return m, nil
}

func (m Model) handleHomeKey(key string) (tea.Model, tea.Cmd) {
	if m.snap.HomeSubScreen != game.SubScreenMain {
		if key == "b" || key == "backspace" {
			m.engine.EnqueueAction(game.Action{Type: game.ActionSubScreen, Sub: game.SubScreenMain})
		}
		return m, nil
	}

	switch key {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.engine.EnqueueAction(game.Action{Type: game.ActionStart})
	case "o":
		m.engine.EnqueueAction(game.Action{Type: game.ActionSubScreen, Sub: game.SubScreenSettings})
	case "c":
		m.engine.EnqueueAction(game.Action{Type: game.ActionSubScreen, Sub: game.SubScreenCredits})
	}
	return m, nil
}

func (m Model) move(dir game.Direction) {
	m.engine.EnqueueAction(game.Action{Type: game.ActionMove, Dir: dir})
}

// waitForFrame returns a Cmd that waits for the next snapshot from the engine.
func waitForFrame(frames <-chan game.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-frames
		if !ok {
			return errMsg{err: fmt.Errorf("engine stopped")}
		}
		return frameMsg(snap)
	}
}
