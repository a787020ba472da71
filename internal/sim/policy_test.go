package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAdversaryOpenPathKeepsDirection(t *testing.T) {
	g := mustLayout(t, twoPockets, 20).Grid
	a := Entity{Pos: g.Anchor(5, 1), Dir: HeadingRight.Vec(5)}
	rng := &scriptedRand{seq: []int{0}}

	for i := 0; i < 4; i++ {
		require.True(t, StepAdversary(g, &a, 5, rng))
	}
	assert.Equal(t, g.Anchor(6, 1), a.Pos)
	assert.Equal(t, HeadingRight.Vec(5), a.Dir)
	assert.Equal(t, 0, rng.i, "no draw while the path is open")
}

func TestStepAdversaryBlockedRerollsWithoutMoving(t *testing.T) {
	g := mustLayout(t, twoPockets, 20).Grid
	// Facing the wall above (5, 1).
	a := Entity{Pos: g.Anchor(5, 1), Dir: HeadingUp.Vec(5)}
	// First draw picks Up again (still blocked), second picks Down (open).
	rng := &scriptedRand{seq: []int{2, 3}}

	moved := StepAdversary(g, &a, 5, rng)
	assert.False(t, moved)
	assert.Equal(t, g.Anchor(5, 1), a.Pos)
	assert.Equal(t, HeadingUp.Vec(5), a.Dir)

	moved = StepAdversary(g, &a, 5, rng)
	assert.False(t, moved, "turning tick never moves")
	assert.Equal(t, HeadingDown.Vec(5), a.Dir)

	moved = StepAdversary(g, &a, 5, rng)
	assert.True(t, moved)
	assert.Equal(t, g.Anchor(5, 1).Add(HeadingDown.Vec(5)), a.Pos)
}

func TestChooseHeadingIsUniform(t *testing.T) {
	g := mustLayout(t, twoPockets, 20).Grid
	rng := rand.New(rand.NewSource(20240501))

	const trials = 1000
	counts := make(map[Heading]int)
	for i := 0; i < trials; i++ {
		a := Entity{Pos: g.Anchor(5, 1), Dir: HeadingLeft.Vec(5)}
		require.False(t, StepAdversary(g, &a, 5, rng))
		h, ok := HeadingOf(a.Dir)
		require.True(t, ok)
		counts[h]++
	}

	expected := float64(trials) / float64(len(Headings))
	chi2 := 0.0
	for _, h := range Headings {
		d := float64(counts[h]) - expected
		chi2 += d * d / expected
		assert.InDelta(t, expected, counts[h], 60, "heading %s", h)
	}
	// Critical value for 3 degrees of freedom at p = 0.001.
	assert.Less(t, chi2, 16.27, "counts %v", counts)
}
