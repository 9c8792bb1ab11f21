package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game"
)

// KeyMap defines the key bindings for a run.
type KeyMap struct {
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Pause},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump/start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key press into an intent for the given game state.
// The jump key starts a fresh game and restarts a finished one.
func (k KeyMap) MapKey(msg tea.KeyMsg, state game.State) (intent core.Intent, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.IntentNone, true

	case key.Matches(msg, k.Jump):
		switch state {
		case game.StateReady:
			return core.IntentStart, false
		case game.StateGameOver:
			return core.IntentRestart, false
		case game.StatePaused:
			return core.IntentResume, false
		}
		return core.IntentJump, false

	case key.Matches(msg, k.Pause):
		return core.IntentTogglePause, false

	case key.Matches(msg, k.Restart):
		if state == game.StateGameOver {
			return core.IntentRestart, false
		}
	}

	return core.IntentNone, false
}
