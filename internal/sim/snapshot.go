package sim

// Snapshot is a read-only copy of everything a renderer needs between ticks.
type Snapshot struct {
	Tick        uint64
	Score       int
	Status      Status
	ItemsLeft   int
	Agent       Entity
	Adversaries []Entity
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	adversaries := make([]Entity, len(g.state.Adversaries))
	copy(adversaries, g.state.Adversaries)
	return Snapshot{
		Tick:        g.tick,
		Score:       g.state.Score,
		Status:      g.state.Status,
		ItemsLeft:   g.state.Grid.ItemsLeft(),
		Agent:       g.state.Agent,
		Adversaries: adversaries,
	}
}
