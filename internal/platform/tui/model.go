package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Default terminal and input settings
const (
	DefaultWidth         = 80
	DefaultHeight        = 24
	DefaultHoldWindow    = 150 * time.Millisecond
	DefaultMaxFrameDelta = 0.1
)

// Options configures a game model.
type Options struct {
	Store         *storage.Store // Round history; nil runs without it
	Logger        *log.Logger    // nil discards logs
	Width         int            // Terminal columns
	Height        int            // Terminal rows
	HoldWindow    time.Duration  // How long a direction key stays held
	MaxFrameDelta float64        // Upper bound for dt in seconds
	AllowBack     bool           // Esc/b leaves the game instead of being ignored
	ScreenshotDir string         // Defaults to ~/.breakout/screenshots
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.HoldWindow <= 0 {
		o.HoldWindow = DefaultHoldWindow
	}
	if o.MaxFrameDelta <= 0 {
		o.MaxFrameDelta = DefaultMaxFrameDelta
	}
	if o.ScreenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			o.ScreenshotDir = filepath.Join(home, ".breakout", "screenshots")
		}
	}
	return o
}

// Model is the Bubble Tea model that drives one game: it turns key events
// into input frames, tick messages into frame deltas, and renders the game
// canvas into the terminal.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	canvas  *core.ScreenCanvas
	runtime core.RuntimeConfig
	opts    Options
	logger  *log.Logger

	keys         *KeyMapper
	hold         *HoldTracker
	clock        *frameClock
	startPressed bool

	gameState  core.GameState
	roundSaved bool // Whether the current finished round has been stored
	quitting   bool
	backToMenu bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}

	opts = opts.withDefaults()
	screen := core.NewScreen(opts.Width, opts.Height)

	return Model{
		game:    game,
		screen:  screen,
		canvas:  core.NewScreenCanvas(screen, cfg.ScreenW, cfg.ScreenH),
		runtime: cfg,
		opts:    opts,
		logger:  opts.Logger.With("game", game.ID()),
		keys:    NewKeyMapper(),
		hold:    NewHoldTracker(opts.HoldWindow),
		clock:   newFrameClock(opts.MaxFrameDelta),
		now:     time.Now,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.clock.Reset()
	m.hold.Reset()
	m.game.Reset(m.runtime)
	if ws, ok := m.game.(registry.WorldSizer); ok {
		m.canvas.SetWorld(ws.WorldSize())
	}
	w, h := m.canvas.Bounds()
	m.logger.Debug("game reset", "seed", m.runtime.Seed, "world", fmt.Sprintf("%vx%v", w, h))
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world keeps its size; only the cell scaling changes.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "esc", "b":
		if m.opts.AllowBack && m.canLeave() {
			// A session model intercepts this and shows its menu instead.
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	now := m.now()
	switch action {
	case core.ActionLeft:
		m.hold.Press(core.ActionLeft, now)
		m.hold.Release(core.ActionRight)
	case core.ActionRight:
		m.hold.Press(core.ActionRight, now)
		m.hold.Release(core.ActionLeft)
	case core.ActionStart:
		m.startPressed = true
	}

	return m, nil
}

// canLeave reports whether leaving would not abandon a running round.
func (m Model) canLeave() bool {
	return m.gameState.GameOver || m.gameState.Phase == "" || m.gameState.Phase == "menu"
}

// frame builds the input frame for the next simulation step.
// Start is an edge: it is consumed by exactly one frame.
func (m *Model) frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	if m.hold.Held(core.ActionLeft, now) {
		in.Set(core.ActionLeft)
	}
	if m.hold.Held(core.ActionRight, now) {
		in.Set(core.ActionRight)
	}
	if m.startPressed {
		in.Set(core.ActionStart)
		m.startPressed = false
	}
	return in
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Delta(now)
	in := m.frame(now)

	prev := m.gameState.Phase
	result := m.game.Step(in, dt)
	m.gameState = result.State

	if m.gameState.Phase != prev && prev != "" {
		m.logger.Debug("phase changed", "from", prev, "to", m.gameState.Phase, "score", m.gameState.Score)
	}

	// Save the round once per game over
	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	}
	if !m.gameState.GameOver {
		m.roundSaved = false
	}

	return m, tickCmd(m.runtime.TickRate)
}

// saveRound stores the finished round. Failures are logged and ignored.
func (m *Model) saveRound() {
	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}

	round := storage.Round{
		GameID:    m.game.ID(),
		Outcome:   outcome,
		Score:     m.gameState.Score,
		LivesLeft: m.gameState.Lives,
		Seed:      m.runtime.Seed,
	}
	if sr, ok := m.game.(registry.StatsReporter); ok {
		stats := sr.Stats()
		round.BlocksDestroyed = stats.BlocksDestroyed
		round.BallsSpawned = stats.BallsSpawned
		round.Duration = time.Duration(stats.Elapsed * float64(time.Second))
	}

	m.logger.Info("round finished", "outcome", outcome, "score", round.Score, "lives", round.LivesLeft)

	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveRound(round)
	if err != nil {
		m.logger.Warn("cannot save round", "err", err)
		return
	}
	m.logger.Debug("round saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		m.logger.Warn("screenshot skipped: no screenshot directory")
		return
	}

	m.game.Render(m.canvas)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
