package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// ErrBadDirection is returned by RequestDirection for steps that are not
// axis-aligned at the game's speed.
var ErrBadDirection = errors.New("sim: bad direction")

// Spawn is the initial placement of an entity, given in grid cells.
type Spawn struct {
	Col, Row int
	Heading  Heading
}

// Options configures a new Game. All values are fixed for the game's lifetime.
type Options struct {
	Grid        *maze.Grid
	Agent       Spawn
	Adversaries []Spawn
	Speed       int // World units per tick, must divide the cell size
	Rand        RandSource
}

// TickResult describes one completed tick.
type TickResult struct {
	Tick   uint64
	Score  int
	Status Status
	Events []Event
}

// Game is the tick loop aggregate. It is not safe for concurrent use: ticks,
// direction requests and reads all happen on one logical thread.
type Game struct {
	state   State
	speed   int
	rng     RandSource
	tick    uint64
	pending core.Vec
	hasReq  bool
	err     error
}

// New validates options and places every entity at its spawn cell.
func New(opts Options) (*Game, error) {
	if opts.Grid == nil {
		return nil, errors.New("sim: nil grid")
	}
	if opts.Rand == nil {
		return nil, errors.New("sim: nil random source")
	}
	cs := opts.Grid.CellSize()
	if opts.Speed <= 0 || opts.Speed > cs || cs%opts.Speed != 0 {
		return nil, fmt.Errorf("sim: speed %d must divide cell size %d", opts.Speed, cs)
	}
	if len(opts.Adversaries) == 0 {
		return nil, errors.New("sim: at least one adversary is required")
	}

	agent, err := place(opts.Grid, opts.Agent, opts.Speed)
	if err != nil {
		return nil, fmt.Errorf("sim: agent: %w", err)
	}
	adversaries := make([]Entity, len(opts.Adversaries))
	for i, sp := range opts.Adversaries {
		adversaries[i], err = place(opts.Grid, sp, opts.Speed)
		if err != nil {
			return nil, fmt.Errorf("sim: adversary %d: %w", i, err)
		}
	}

	return &Game{
		state: State{
			Grid:        opts.Grid,
			Agent:       agent,
			Adversaries: adversaries,
			Status:      StatusRunning,
		},
		speed: opts.Speed,
		rng:   opts.Rand,
	}, nil
}

func place(g *maze.Grid, sp Spawn, speed int) (Entity, error) {
	if sp.Col < 0 || sp.Col >= g.W() || sp.Row < 0 || sp.Row >= g.H() {
		return Entity{}, fmt.Errorf("spawn (%d, %d): %w", sp.Col, sp.Row, maze.ErrIndexOutOfRange)
	}
	pos := g.Anchor(sp.Col, sp.Row)
	if !CanEnter(g, pos) {
		return Entity{}, fmt.Errorf("spawn (%d, %d) is a wall", sp.Col, sp.Row)
	}
	return Entity{Pos: pos, Dir: sp.Heading.Vec(speed)}, nil
}

// RequestDirection buffers a direction change for the next tick. Only the
// latest request is kept; it is applied, or dropped if it leads into a wall,
// at the start of the next tick.
func (g *Game) RequestDirection(dx, dy int) error {
	v := core.V(dx, dy)
	if _, ok := HeadingOf(v); !ok || core.Abs(dx)+core.Abs(dy) != g.speed {
		return fmt.Errorf("%w: (%d, %d) at speed %d", ErrBadDirection, dx, dy, g.speed)
	}
	g.pending = v
	g.hasReq = true
	return nil
}

// RequestHeading is RequestDirection for a named heading.
func (g *Game) RequestHeading(h Heading) {
	g.pending = h.Vec(g.speed)
	g.hasReq = true
}

// Tick advances the simulation one step. Once the game has ended Tick is a
// no-op. A non-nil error is fatal: the game refuses every later tick.
func (g *Game) Tick() (TickResult, error) {
	if g.err != nil {
		return g.result(nil), g.err
	}
	if g.state.Status == StatusEnded {
		return g.result(nil), nil
	}

	g.tick++
	s := &g.state
	var events []Event

	// Buffered aim change, consumed whether or not it applies.
	if g.hasReq {
		if g.pending != s.Agent.Dir && CanEnter(s.Grid, s.Agent.Pos.Add(g.pending)) {
			s.Agent.Dir = g.pending
			events = append(events, Event{Kind: EventAimChanged})
		}
		g.hasReq = false
	}

	if !s.Agent.Dir.IsZero() && CanEnter(s.Grid, s.Agent.Pos.Add(s.Agent.Dir)) {
		Advance(&s.Agent, s.Agent.Dir)
		events = append(events, Event{Kind: EventAgentMoved})
	}

	ev, ok, err := ResolveCollectible(s)
	if err != nil {
		g.err = fmt.Errorf("tick %d: %w", g.tick, err)
		return g.result(events), g.err
	}
	if ok {
		events = append(events, ev)
	}

	for i := range s.Adversaries {
		if StepAdversary(s.Grid, &s.Adversaries[i], g.speed, g.rng) {
			events = append(events, Event{Kind: EventAdversaryMoved, Adversary: i})
		} else {
			events = append(events, Event{Kind: EventAdversaryTurned, Adversary: i})
		}
	}

	if ev, ok := ResolveContact(s); ok {
		events = append(events, ev)
	}

	return g.result(events), nil
}

func (g *Game) result(events []Event) TickResult {
	return TickResult{
		Tick:   g.tick,
		Score:  g.state.Score,
		Status: g.state.Status,
		Events: events,
	}
}

// Grid exposes the maze for rendering. Callers must not mutate it.
func (g *Game) Grid() *maze.Grid {
	return g.state.Grid
}

// Speed returns the per-tick step length.
func (g *Game) Speed() int {
	return g.speed
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.state.Status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// Err returns the fatal error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}
