package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// ResolveCollectible consumes the item under the agent, if any, and bumps the
// score by one. An agent position outside the grid is an internal
// consistency violation and is returned as an error.
func ResolveCollectible(s *State) (Event, bool, error) {
	index, err := s.Grid.IndexOf(s.Agent.Pos)
	if err != nil {
		return Event{}, false, fmt.Errorf("sim: agent escaped the maze: %w", err)
	}
	tile, err := s.Grid.TileAt(index)
	if err != nil {
		return Event{}, false, err
	}
	if tile != maze.TileItem {
		return Event{}, false, nil
	}
	if err := s.Grid.SetTile(index, maze.TileEmpty); err != nil {
		return Event{}, false, err
	}
	s.Score++
	return Event{Kind: EventTileConsumed, Index: index}, true, nil
}

// ResolveContact ends the game if any adversary footprint overlaps the agent,
// i.e. both |dx| and |dy| are below one cell. Checking stops at the first hit.
func ResolveContact(s *State) (Event, bool) {
	agent := Footprint(s.Grid, s.Agent.Pos)
	for i, a := range s.Adversaries {
		if agent.Intersects(Footprint(s.Grid, a.Pos)) {
			s.Status = StatusEnded
			return Event{Kind: EventGameEnded, Adversary: i}, true
		}
	}
	return Event{}, false
}
