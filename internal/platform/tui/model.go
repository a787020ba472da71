package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// helpHeight is the row reserved below the game for the key help line.
const helpHeight = 1

// resizer is implemented by games that can follow terminal resizes without
// being reset.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a maze game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	scoreboard Scoreboard
	width      int
	height     int
	gen        int  // Bumped on every reset; stale ticks carry an older value
	ticks      uint64
	showScores bool
	recorded   bool // Whether the current game's run is in the journal
	quitting   bool
	err        error // Fatal tick error, returned from Run
}

// NewModel resets the game and wraps it in a Bubble Tea model.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		scoreboard: newScoreboard(store, game.ID(), game.Title()),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())

	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) gameHeight() int {
	return max(m.height-helpHeight, 0)
}

func (m *Model) reset() error {
	cfg := m.config
	cfg.ScreenW = m.width
	cfg.ScreenH = m.gameHeight()
	if err := m.game.Reset(cfg); err != nil {
		return err
	}
	m.gen++
	m.ticks = 0
	m.recorded = false
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.logger.Info("game started", "maze", m.game.ID(), "seed", cfg.Seed, "tick", m.game.TickInterval())
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval(), m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.recordRun(storage.ReasonQuit)
		m.quitting = true
		return m, tea.Quit

	case core.ActionScores:
		m.showScores = !m.showScores
		return m, nil

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		m.config.Seed = time.Now().UnixNano()
		if err := m.reset(); err != nil {
			m.logger.Error("restart failed", "maze", m.game.ID(), "error", err)
			m.err = err
			return m, tea.Quit
		}
		m.showScores = false
		return m, tickCmd(m.game.TickInterval(), m.gen)

	case core.ActionNone:
		return m, nil

	default:
		m.inputFrame.Set(action)
		return m, nil
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.gameHeight())
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, m.gameHeight())
	}
	return m, nil
}

// handleTick runs one simulation step and arms the next tick while the game
// is still running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.ticks++

	if result.Err != nil {
		m.logger.Error("simulation failed", "maze", m.game.ID(), "tick", m.ticks, "error", result.Err)
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	m.gameState = result.State
	if m.gameState.GameOver {
		m.logger.Info("game over", "maze", m.game.ID(), "score", m.gameState.Score, "ticks", m.ticks)
		m.recordRun(storage.ReasonContact)
		return m, nil
	}

	return m, tickCmd(m.game.TickInterval(), m.gen)
}

// recordRun stores the current run once. Journal failures never stop play.
func (m *Model) recordRun(reason string) {
	if m.recorded || m.store == nil || m.ticks == 0 {
		return
	}
	m.recorded = true

	id, err := m.store.RecordRun(storage.RunRecord{
		MazeID: m.game.ID(),
		Score:  m.gameState.Score,
		Ticks:  m.ticks,
		Seed:   m.config.Seed,
		Reason: reason,
	})
	if err != nil {
		m.logger.Warn("could not record run", "maze", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id, "reason", reason)

	if err := m.scoreboard.Refresh(); err != nil {
		m.logger.Warn("could not load session scores", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))

	if m.showScores {
		panel := lipgloss.Place(m.width, m.gameHeight(), lipgloss.Center, lipgloss.Center, m.scoreboard.View())
		return panel + "\n" + helpLine
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpLine
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model, err := NewModel(game, store, logger, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
