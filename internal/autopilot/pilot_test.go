package autopilot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/sim"
)

type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func newGame(t *testing.T, rows []string, agent sim.Heading, adversary sim.Spawn) *sim.Game {
	t.Helper()
	l, err := maze.ParseLayout(rows, 20)
	require.NoError(t, err)
	g, err := sim.New(sim.Options{
		Grid:        l.Grid,
		Agent:       sim.Spawn{Col: l.SpawnCol, Row: l.SpawnRow, Heading: agent},
		Adversaries: []sim.Spawn{adversary},
		Speed:       5,
		Rand:        fixedRand(0),
	})
	require.NoError(t, err)
	return g
}

// sealed is an adversary cell walled off from the rest of each layout.
var sealedRow = "#.#####"

func TestChoosePrefersItems(t *testing.T) {
	g := newGame(t, []string{
		"#######",
		"# P. ##",
		"#######",
		sealedRow,
		"#######",
	}, sim.HeadingUp, sim.Spawn{Col: 1, Row: 3, Heading: sim.HeadingUp})

	h, ok := New(fixedRand(0)).Choose(g)
	require.True(t, ok)
	assert.Equal(t, sim.HeadingRight, h, "right holds an item, left is empty")
}

func TestChooseDoesNotReverseInCorridor(t *testing.T) {
	g := newGame(t, []string{
		"#######",
		"#.P  ##",
		"#######",
		sealedRow,
		"#######",
	}, sim.HeadingRight, sim.Spawn{Col: 1, Row: 3, Heading: sim.HeadingUp})

	for seed := 0; seed < 4; seed++ {
		h, ok := New(fixedRand(seed)).Choose(g)
		require.True(t, ok)
		assert.Equal(t, sim.HeadingRight, h, "the item behind never triggers a reversal")
	}
}

func TestChooseReversesAtDeadEnd(t *testing.T) {
	g := newGame(t, []string{
		"#######",
		"#  P###",
		"#######",
		sealedRow,
		"#######",
	}, sim.HeadingRight, sim.Spawn{Col: 1, Row: 3, Heading: sim.HeadingUp})

	h, ok := New(fixedRand(0)).Choose(g)
	require.True(t, ok)
	assert.Equal(t, sim.HeadingLeft, h)
}

func TestChooseWaitsBetweenCells(t *testing.T) {
	g := newGame(t, []string{
		"#######",
		"#.P...#",
		"#######",
		sealedRow,
		"#######",
	}, sim.HeadingRight, sim.Spawn{Col: 1, Row: 3, Heading: sim.HeadingUp})

	_, err := g.Tick()
	require.NoError(t, err)

	_, ok := New(fixedRand(0)).Choose(g)
	assert.False(t, ok)
}

func TestPilotClearsOpenMaze(t *testing.T) {
	rows := []string{
		"#########",
		"#...#...#",
		"#.#.#.#.#",
		"#...P...#",
		"#########",
		"#.#######",
		"#########",
	}
	g := newGame(t, rows, sim.HeadingLeft, sim.Spawn{Col: 1, Row: 5, Heading: sim.HeadingUp})
	pilot := New(rand.New(rand.NewSource(3)))

	lastScore := 0
	for i := 0; i < 2000 && g.Grid().ItemsLeft() > 0; i++ {
		pilot.Steer(g)
		res, err := g.Tick()
		require.NoError(t, err)
		require.Equal(t, sim.StatusRunning, res.Status)
		assert.GreaterOrEqual(t, res.Score, lastScore)
		lastScore = res.Score
	}
	assert.Greater(t, lastScore, 0)
}
