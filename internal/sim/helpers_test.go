package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	seq []int
	i   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

// twoPockets keeps the agent (left) and the adversary (right) apart.
var twoPockets = []string{
	"#########",
	"#P..#...#",
	"#.#.#.#.#",
	"#...#...#",
	"#########",
}

func mustLayout(t *testing.T, rows []string, cellSize int) maze.Layout {
	t.Helper()
	l, err := maze.ParseLayout(rows, cellSize)
	require.NoError(t, err)
	return l
}

func newPocketGame(t *testing.T, speed int, rng RandSource) *Game {
	t.Helper()
	l := mustLayout(t, twoPockets, 20)
	g, err := New(Options{
		Grid:        l.Grid,
		Agent:       Spawn{Col: l.SpawnCol, Row: l.SpawnRow, Heading: HeadingRight},
		Adversaries: []Spawn{{Col: 5, Row: 1, Heading: HeadingRight}},
		Speed:       speed,
		Rand:        rng,
	})
	require.NoError(t, err)
	return g
}
