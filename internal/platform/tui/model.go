package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game"
	"github.com/vovakirdan/neon-runner/internal/session"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// How long a notice from another player stays on screen, in seconds.
const noticeSeconds = 3

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.Run) (string, error)
}

// Options configures a Model.
type Options struct {
	FPS      int
	Recorder RunRecorder // May be nil
	Logger   *log.Logger
	Width    int
	Height   int
	Seed     int64 // Non-zero replays the same obstacles on every restart

	// Session receives events from other players on a shared server.
	// OnRecord is called once when this player sets a new best. Both may be nil.
	Session  *session.Handle
	OnRecord func(score int)
}

// sessionEventMsg wraps an event from another session.
type sessionEventMsg struct {
	evt session.Event
}

// Model is the Bubble Tea model for one player's session.
type Model struct {
	game     *game.Game
	opts     Options
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	canvas   *Canvas
	frame    core.InputFrame
	snap     game.Snapshot
	recorded bool // Whether the current game over has been saved
	quitting bool

	notice      string
	noticeTicks int
}

// NewModel creates a model around an existing game.
func NewModel(g *game.Game, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		game:   g,
		opts:   opts,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
		canvas: NewCanvas(opts.Width, opts.Height-1),
		frame:  core.NewInputFrame(),
		snap:   g.Snapshot(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.FPS), waitForEvent(m.opts.Session))
}

// waitForEvent blocks until the session has an event or ends.
func waitForEvent(h *session.Handle) tea.Cmd {
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case evt := <-h.Events():
			return sessionEventMsg{evt: evt}
		case <-h.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case sessionEventMsg:
		m.handleEvent(msg.evt)
		return m, waitForEvent(m.opts.Session)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent, isQuit := m.keys.MapKey(msg, m.snap.State)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.frame.Set(intent)
	return m, nil
}

// handleTick advances the game by one frame. Terminals report no key
// releases, so a frame without a jump press counts as the key being let go.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.frame.Has(core.IntentJump) {
		m.frame.Set(core.IntentReleaseJump)
	}
	if m.opts.Seed != 0 && m.snap.State == game.StateGameOver &&
		(m.frame.Has(core.IntentRestart) || m.frame.Has(core.IntentStart)) {
		m.game.Reseed(m.opts.Seed)
	}

	m.snap = m.game.Step(m.frame)
	m.frame.Clear()

	if m.snap.State == game.StateGameOver {
		if !m.recorded {
			m.recordRun()
			if m.snap.NewRecord && m.opts.OnRecord != nil {
				m.opts.OnRecord(m.snap.Score)
			}
			m.recorded = true
		}
	} else {
		m.recorded = false
	}

	if m.noticeTicks > 0 {
		m.noticeTicks--
	}

	return m, tickCmd(m.opts.FPS)
}

func (m *Model) handleEvent(evt session.Event) {
	switch e := evt.(type) {
	case session.RecordEvent:
		m.game.ObserveHighScore(e.Score)
		m.snap.HighScore = max(m.snap.HighScore, e.Score)
		m.notice = fmt.Sprintf("%s set a new best: %d", e.User, e.Score)
		m.noticeTicks = noticeSeconds * m.opts.FPS
	}
}

func (m Model) recordRun() {
	if m.opts.Recorder == nil {
		return
	}
	sum := m.game.Summary()
	if sum.Score <= 0 {
		return
	}
	id, err := m.opts.Recorder.SaveRun(RunFromSummary(sum))
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id, "score", sum.Score)
}

// RunFromSummary converts a game summary into a history record.
func RunFromSummary(sum game.Summary) storage.Run {
	return storage.Run{
		Total:        sum.Score,
		Distance:     sum.Distance,
		Bonus:        sum.Bonus,
		MaxStreak:    sum.MaxStreak,
		Level:        sum.Level,
		DurationMS:   sum.DurationMS,
		PerfectJumps: sum.PerfectJumps,
	}
}

// Snapshot returns the last frame the model rendered from.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.canvas, m.snap)
	if m.noticeTicks > 0 && m.canvas.Height() > 1 {
		m.canvas.DrawTextCentered(1, m.notice, ColorNeonYellow)
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderCanvas(m.canvas) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts an interactive game in the local terminal.
func Run(g *game.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(g, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
