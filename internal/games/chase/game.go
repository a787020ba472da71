// Package chase adapts the maze simulation to the platform's Game interface:
// it turns input actions into direction requests and draws snapshots.
package chase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/sim"
)

// Game runs one maze.
type Game struct {
	id    string
	title string
	fixed *config.MazeConfig // Set when built from an explicit definition

	cfg      config.MazeConfig
	sim      *sim.Game
	interval time.Duration
	consumed []bool

	screenW int
	screenH int
}

// New creates a game for a maze id resolved through config.Load on Reset.
func New(id, title string) *Game {
	return &Game{id: id, title: title}
}

// FromConfig creates a game for an already loaded maze definition.
func FromConfig(cfg config.MazeConfig) *Game {
	return &Game{id: cfg.ID, title: cfg.Name, fixed: &cfg}
}

func init() {
	for _, id := range config.Presets() {
		title := id
		if cfg, err := config.Preset(id); err == nil {
			title = cfg.Name
		}
		registry.Register(registry.GameInfo{ID: id, Title: title}, func() registry.Game {
			return New(id, title)
		})
	}
}

// ID returns the maze identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh simulation. Consumed tiles, score and positions
// never carry over from the previous game.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	var cfg config.MazeConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		var err error
		if cfg, err = config.Load(g.id, rc.ConfigPath); err != nil {
			return err
		}
	}

	s, err := cfg.NewGame(rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.sim = s
	g.consumed = make([]bool, s.Grid().Len())
	g.interval = cfg.TickInterval()
	if rc.TickInterval > 0 {
		g.interval = rc.TickInterval
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	return nil
}

// Resize records new screen dimensions without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// TickInterval returns the time between steps.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}

var headings = map[core.Action]sim.Heading{
	core.ActionUp:    sim.HeadingUp,
	core.ActionDown:  sim.HeadingDown,
	core.ActionLeft:  sim.HeadingLeft,
	core.ActionRight: sim.HeadingRight,
}

// Step applies the latest movement action and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{Err: fmt.Errorf("chase: %s: step before reset", g.id)}
	}
	if h, ok := headings[in.Last]; ok {
		g.sim.RequestHeading(h)
	}

	res, err := g.sim.Tick()
	for _, ev := range res.Events {
		if ev.Kind == sim.EventTileConsumed {
			g.consumed[ev.Index] = true
		}
	}
	return core.StepResult{State: g.State(), Err: err}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.Status() == sim.StatusEnded,
	}
}

// Snapshot returns the simulation snapshot for determinism checks.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// Maze returns the active maze definition.
func (g *Game) Maze() config.MazeConfig {
	return g.cfg
}
