package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/input"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

// DefaultBoard is the score board used when none is given.
const DefaultBoard = "dungeon"

// Options configures one dungeon session.
type Options struct {
	Config  config.DungeonConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; finished runs are recorded when set
	Board   string         // Score board name, defaults to DefaultBoard
	Player  string         // Name recorded with each run
	Trace   *log.Logger    // Optional per-frame debug trace
	Clock   *core.Clock    // Optional; defaults to a wall clock
}

// Model is the Bubble Tea model running one dungeon session.
type Model struct {
	game      *dungeon.Game
	cfg       config.DungeonConfig
	runtime   core.RuntimeConfig
	fixedSeed bool

	tracker *input.Tracker
	hold    *keyHold
	clock   *core.Clock
	canvas  *Canvas
	keys    *KeyMapper

	store  *storage.Store
	board  string
	player string
	trace  *log.Logger

	now       uint64
	width     int
	height    int
	paused    bool
	recorded  bool
	runID     string
	highScore int
	notice    string
	quitting  bool
	interrupt bool
}

// NewModel creates a session and starts its first run.
func NewModel(opts Options) (Model, error) {
	runtime := opts.Runtime
	fixedSeed := runtime.Seed != 0
	if !fixedSeed {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	clock := opts.Clock
	if clock == nil {
		clock = core.NewClock()
	}

	now := clock.Ticks()
	game, err := dungeon.New(opts.Config, runtime, now)
	if err != nil {
		return Model{}, err
	}
	game.SetLogger(opts.Trace)

	board := opts.Board
	if board == "" {
		board = DefaultBoard
	}

	m := Model{
		game:      game,
		cfg:       opts.Config,
		runtime:   runtime,
		fixedSeed: fixedSeed,
		tracker:   input.NewTracker(),
		hold:      newKeyHold(time.Duration(opts.Config.Input.KeyHoldMs) * time.Millisecond),
		clock:     clock,
		canvas:    NewCanvas(opts.Config.Arena.Width, opts.Config.Arena.Height),
		keys:      NewKeyMapper(),
		store:     opts.Store,
		board:     board,
		player:    opts.Player,
		trace:     opts.Trace,
		now:       now,
	}
	m.canvas.Apply(game.Start())

	if m.store != nil {
		if high, err := m.store.HighScore(board); err == nil {
			m.highScore = high
		}
	}

	return m, nil
}

// Game returns the running simulation.
func (m Model) Game() *dungeon.Game { return m.game }

// Paused reports whether the session is paused.
func (m Model) Paused() bool { return m.paused }

// RunID returns the identifier of the last recorded run, if any.
func (m Model) RunID() string { return m.runID }

// Done reports whether the session has ended.
func (m Model) Done() bool { return m.quitting }

// Interrupted reports whether the session ended with Ctrl+C.
func (m Model) Interrupted() bool { return m.interrupt }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("tui-dungeon"),
		tickCmd(m.runtime.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		for _, e := range m.keys.MapMouse(msg, m.tracker.Held) {
			m.tracker.RegisterEvent(e)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvas.Redraw(m.game)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input received at time at.
func (m Model) handleKey(msg tea.KeyMsg, at time.Time) (tea.Model, tea.Cmd) {
	over := m.game.Outcome() != dungeon.Running

	switch m.keys.MapControl(msg) {
	case ControlInterrupt:
		m.quitting = true
		m.interrupt = true
		return m, tea.Quit
	case ControlScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.notice = "screenshot failed: " + err.Error()
		} else {
			m.notice = "screenshot saved to " + path
		}
		return m, nil
	case ControlPause:
		if !over {
			m.paused = m.clock.Toggle()
			if m.trace != nil {
				m.trace.Debug("pause", "paused", m.paused, "tick", m.clock.Ticks(), "paused_total", m.clock.PausedFor())
			}
		}
		return m, nil
	case ControlRestart:
		if over {
			m.restart()
		}
		return m, nil
	}

	if over {
		switch msg.String() {
		case "esc", "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	k, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}
	m.tracker.RegisterEvent(input.KeyPressEvent(k))
	m.hold.touch(k, at)
	return m, nil
}

// handleTick runs one frame at wall time at.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.hold.expired(at) {
		m.tracker.RegisterEvent(input.KeyReleaseEvent(k))
	}

	// The tracker is drained every frame so input queued while paused or
	// after the run ended does not replay later.
	states, pointer := m.tracker.CalculateState()
	if m.paused || m.game.Outcome() != dungeon.Running {
		return m, tickCmd(m.runtime.TickRate)
	}

	m.now = m.clock.Ticks()
	if m.trace != nil && states.Len() > 0 {
		m.trace.Debug("input", "tick", m.now, "states", states.Sorted())
	}

	res := m.game.Step(states, m.canvas.ArenaPoint(pointer), m.now)
	m.canvas.Apply(res.Events)
	if m.trace != nil {
		for _, e := range res.Events {
			m.trace.Debug("render", "tick", m.now, "event", e)
		}
	}

	if res.Outcome == dungeon.Running {
		return m, tickCmd(m.runtime.TickRate)
	}

	m.recordRun()
	if res.Outcome == dungeon.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// recordRun stores the finished run once.
func (m *Model) recordRun() {
	if m.recorded {
		return
	}
	m.recorded = true

	state := m.game.State()
	if state.Score > m.highScore {
		m.highScore = state.Score
	}
	if m.store == nil {
		return
	}

	if state.Score > 0 {
		if _, err := m.store.SaveScore(m.board, state.Score); err != nil {
			m.reportError("save score", err)
		}
	}

	id, err := m.store.SaveRun(storage.RunRecord{
		Board:      m.board,
		Player:     m.player,
		Outcome:    m.game.Outcome().String(),
		Score:      state.Score,
		Kills:      state.Kills,
		DurationMs: int64(m.game.Elapsed()), //#nosec G115 -- run durations are far below 2^63 ms
		Seed:       m.runtime.Seed,
	})
	if err != nil {
		m.reportError("save run", err)
		return
	}
	m.runID = id
}

func (m *Model) reportError(what string, err error) {
	m.notice = fmt.Sprintf("could not %s: %v", what, err)
	if m.trace != nil {
		m.trace.Warn("storage error", "op", what, "err", err)
	}
}

// restart begins a new run after the previous one ended.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.runtime.Seed = time.Now().UnixNano()
	}
	if m.paused {
		m.paused = m.clock.Toggle()
	}

	m.now = m.clock.Ticks()
	if err := m.game.Reset(m.cfg, m.runtime, m.now); err != nil {
		m.notice = "restart failed: " + err.Error()
		return
	}

	m.canvas.Reset()
	m.canvas.Apply(m.game.Start())
	m.recorded = false
	m.runID = ""
	m.notice = ""
}

// saveScreenshot writes the arena as plain text under ~/.dungeon/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.canvas.Redraw(m.game)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".dungeon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.board, timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()+"\n"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// View renders the arena, HUD and status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.canvas.Screen()
	if m.width > 0 && (m.width < screen.Width() || m.height < screen.Height()+4) {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			screen.Width(), screen.Height()+4, m.width, m.height,
		))
	}

	var b strings.Builder
	b.WriteString(RenderScreen(screen))
	b.WriteString("\n")
	b.WriteString(renderHUD(m.game, m.now, m.highScore))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	var line string
	switch m.game.Outcome() {
	case dungeon.Won:
		line = bannerStyle.Render(fmt.Sprintf("You escaped with %d points!", m.game.Score())) +
			hudHelpStyle.Render("  r restart · esc quit")
	case dungeon.Lost:
		line = bannerStyle.Render("You were slain.") +
			hudHelpStyle.Render("  r restart · esc quit")
	default:
		if m.paused {
			line = bannerStyle.Render("PAUSED") + hudHelpStyle.Render("  p resume")
		} else {
			line = helpLine()
		}
	}
	if m.notice != "" {
		line += "  " + warnStyle.Render(m.notice)
	}
	return line
}

// Run starts the Bubble Tea program for one local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer position aims mouse casts
	)

	_, err = p.Run()
	return err
}
