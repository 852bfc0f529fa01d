package greedy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

func TestAttemptFillsASmallBoardExactly(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{1, 1, 1, 1, 0, 0, 0}) // I, J, L, O -> 16 cells
	rng := rand.New(rand.NewSource(1))

	placements, ok := s.Attempt(4, 4, bag, rng)
	require.True(t, ok)
	require.Len(t, placements, 4)

	covered := map[totem.Point]bool{}
	for _, p := range placements {
		for _, c := range p.Cells {
			assert.False(t, covered[c])
			covered[c] = true
		}
	}
	assert.Len(t, covered, 16)
}

func TestAttemptFailsWhenBagCannotFit(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{0, 0, 0, 0, 0, 0, 0})
	bag[totem.I] = 3
	rng := rand.New(rand.NewSource(1))

	_, ok := s.Attempt(2, 2, bag, rng)
	assert.False(t, ok)
}

func TestTrySolveSucceedsWithStochasticTieBreaking(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{2, 0, 0, 0, 0, 0, 0}) // two I totems, 8 cells
	rng := rand.New(rand.NewSource(42))

	successes := 0
	for i := 0; i < 20; i++ {
		if _, ok := s.TrySolve(4, 2, bag, 50, rng); ok {
			successes++
		}
	}
	assert.Greater(t, successes, 0)
}
