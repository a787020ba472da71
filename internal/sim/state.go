package sim

import (
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Status is the game lifecycle state.
type Status uint8

const (
	StatusRunning Status = iota
	StatusEnded
)

func (s Status) String() string {
	if s == StatusEnded {
		return "ended"
	}
	return "running"
}

// State is the mutable simulation aggregate. It is owned by Game and handed
// explicitly to each rule so the rules can be exercised in isolation.
type State struct {
	Grid        *maze.Grid
	Agent       Entity
	Adversaries []Entity
	Score       int
	Status      Status
}

// EventKind identifies what happened during a tick.
type EventKind uint8

const (
	EventAimChanged EventKind = iota
	EventAgentMoved
	EventTileConsumed
	EventAdversaryMoved
	EventAdversaryTurned
	EventGameEnded
)

func (k EventKind) String() string {
	switch k {
	case EventAimChanged:
		return "aim_changed"
	case EventAgentMoved:
		return "agent_moved"
	case EventTileConsumed:
		return "tile_consumed"
	case EventAdversaryMoved:
		return "adversary_moved"
	case EventAdversaryTurned:
		return "adversary_turned"
	case EventGameEnded:
		return "game_ended"
	default:
		return "unknown"
	}
}

// Event is one entry of a tick's event list, consumed by renderers.
// Index is the tile index for EventTileConsumed; Adversary is the adversary
// slot for adversary events and EventGameEnded.
type Event struct {
	Kind      EventKind
	Index     int
	Adversary int
}
