package sim

import (
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// RandSource is the random source used for adversary turns.
// *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// ChooseHeading draws one of the four headings uniformly.
func ChooseHeading(rng RandSource) Heading {
	return Headings[rng.Intn(len(Headings))]
}

// StepAdversary runs one tick of the adversary random walk. If the next cell
// along the current direction can be entered the adversary advances and keeps
// its direction. Otherwise it draws a new direction and stays put this tick;
// the draw may pick a blocked direction, which is simply retried next tick.
func StepAdversary(g *maze.Grid, a *Entity, speed int, rng RandSource) (moved bool) {
	candidate := a.Pos.Add(a.Dir)
	if CanEnter(g, candidate) {
		Advance(a, a.Dir)
		return true
	}
	a.Dir = ChooseHeading(rng).Vec(speed)
	return false
}
