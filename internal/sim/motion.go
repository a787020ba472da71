// Package sim implements the maze-chase simulation: grid-aligned motion,
// the adversary random walk, collectible and contact resolution, and the
// discrete tick loop that ties them together.
package sim

import (
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Entity is an agent or adversary: a position and the step it takes per tick.
type Entity struct {
	Pos core.Vec
	Dir core.Vec
}

// IsPassable reports whether the cell containing pos is not a wall.
// Positions outside the grid are not passable.
func IsPassable(g *maze.Grid, pos core.Vec) bool {
	t, err := g.TileOf(pos)
	if err != nil {
		return false
	}
	return t.Passable()
}

// FarCorner returns the footprint corner opposite pos. An entity anchored at
// pos covers one full cell extending right and down from it.
func FarCorner(g *maze.Grid, pos core.Vec) core.Vec {
	n := g.CellSize() - 1
	return core.V(pos.X+n, pos.Y-n)
}

// Footprint returns a cell-sized rectangle at pos for overlap tests.
func Footprint(g *maze.Grid, pos core.Vec) core.Rect {
	return core.NewRect(pos.X, pos.Y, g.CellSize(), g.CellSize())
}

// CanEnter reports whether an entity may move to pos: it must be aligned to
// the grid on at least one axis and both footprint corners must be passable,
// so no entity can clip a wall corner.
func CanEnter(g *maze.Grid, pos core.Vec) bool {
	if !g.AlignedX(pos.X) && !g.AlignedY(pos.Y) {
		return false
	}
	return IsPassable(g, pos) && IsPassable(g, FarCorner(g, pos))
}

// Advance moves the entity by dir. Callers validate with CanEnter first.
func Advance(e *Entity, dir core.Vec) {
	e.Pos = e.Pos.Add(dir)
}
