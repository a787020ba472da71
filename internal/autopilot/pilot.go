// Package autopilot steers the agent without a human at the keyboard. It is
// an input collaborator: it only ever calls RequestHeading, exactly like
// the keyboard path does.
package autopilot

import (
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/sim"
)

// Pilot picks a heading at every junction. Neighbours holding an item are
// preferred; reversing is only chosen at dead ends.
type Pilot struct {
	rng sim.RandSource
}

// New returns a pilot drawing its choices from rng.
func New(rng sim.RandSource) *Pilot {
	return &Pilot{rng: rng}
}

// Choose returns the heading to request for the next tick. ok is false
// while the agent is between cells or boxed in, when any request would be
// dropped anyway.
func (p *Pilot) Choose(g *sim.Game) (h sim.Heading, ok bool) {
	grid := g.Grid()
	agent := g.Snapshot().Agent
	if !grid.Aligned(agent.Pos) {
		return 0, false
	}

	current, moving := sim.HeadingOf(agent.Dir)

	var open, reverse, items []sim.Heading
	for _, cand := range sim.Headings {
		if !sim.CanEnter(grid, agent.Pos.Add(cand.Vec(g.Speed()))) {
			continue
		}
		if moving && cand == current.Opposite() {
			reverse = append(reverse, cand)
			continue
		}
		open = append(open, cand)
		if t, err := grid.TileOf(agent.Pos.Add(cand.Vec(grid.CellSize()))); err == nil && t == maze.TileItem {
			items = append(items, cand)
		}
	}

	switch {
	case len(items) > 0:
		return p.pick(items), true
	case len(open) > 0:
		return p.pick(open), true
	case len(reverse) > 0:
		return reverse[0], true
	}
	return 0, false
}

// Steer requests the chosen heading, if any.
func (p *Pilot) Steer(g *sim.Game) {
	if h, ok := p.Choose(g); ok {
		g.RequestHeading(h)
	}
}

func (p *Pilot) pick(options []sim.Heading) sim.Heading {
	if len(options) == 1 {
		return options[0]
	}
	return options[p.rng.Intn(len(options))]
}
