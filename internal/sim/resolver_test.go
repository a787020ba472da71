package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

func TestResolveCollectibleConsumesOnce(t *testing.T) {
	// A single item cell walled in except for the opening above it.
	l := mustLayout(t, []string{
		"#P#",
		"#.#",
		"###",
	}, 20)
	s := &State{Grid: l.Grid, Agent: Entity{Pos: l.Grid.Anchor(1, 0), Dir: HeadingDown.Vec(20)}}

	_, ok, err := ResolveCollectible(s)
	require.NoError(t, err)
	assert.False(t, ok, "spawn cell holds no item")

	require.True(t, CanEnter(s.Grid, s.Agent.Pos.Add(s.Agent.Dir)))
	Advance(&s.Agent, s.Agent.Dir)

	ev, ok, err := ResolveCollectible(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, EventTileConsumed, ev.Kind)
	assert.Equal(t, 4, ev.Index)
	assert.Equal(t, 1, s.Score)

	tile, err := s.Grid.TileAt(4)
	require.NoError(t, err)
	assert.Equal(t, maze.TileEmpty, tile)

	// Standing on the consumed tile awards nothing further.
	_, ok, err = ResolveCollectible(s)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Score)
}

func TestResolveCollectibleEscapedAgent(t *testing.T) {
	l := mustLayout(t, twoPockets, 20)
	s := &State{Grid: l.Grid, Agent: Entity{Pos: core.V(1000, 1000)}}

	_, _, err := ResolveCollectible(s)
	assert.ErrorIs(t, err, maze.ErrIndexOutOfRange)
}

func TestResolveContact(t *testing.T) {
	l := mustLayout(t, twoPockets, 20)
	agent := l.Grid.Anchor(2, 1)

	tests := []struct {
		name    string
		offset  core.Vec
		contact bool
	}{
		{"same position", core.V(0, 0), true},
		{"overlap on x", core.V(15, 0), true},
		{"overlap on both axes", core.V(-19, 19), true},
		{"touching edge", core.V(20, 0), false},
		{"one cell below", core.V(0, -20), false},
		{"diagonal apart", core.V(19, 20), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &State{
				Grid:  l.Grid,
				Agent: Entity{Pos: agent},
				Adversaries: []Entity{
					{Pos: l.Grid.Anchor(7, 3)},
					{Pos: agent.Add(tc.offset)},
				},
			}
			ev, ok := ResolveContact(s)
			assert.Equal(t, tc.contact, ok)
			if tc.contact {
				assert.Equal(t, StatusEnded, s.Status)
				assert.Equal(t, EventGameEnded, ev.Kind)
				assert.Equal(t, 1, ev.Adversary)
			} else {
				assert.Equal(t, StatusRunning, s.Status)
			}
		})
	}
}
