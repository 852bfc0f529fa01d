package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

func TestSelectBackendRoutesSmallBagsToExhaustive(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{1, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, backendExhaustive, s.selectBackend(1, 4, bag))
}

func TestSelectBackendRoutesLargeNonPerfectBagsToGreedy(t *testing.T) {
	s := New()
	bag := totem.Bag{}
	bag[totem.I] = 20 // N=20 > ExhaustiveMaxTotems, not a perfect 64/256-totem fit
	assert.Equal(t, backendGreedy, s.selectBackend(20, 20, bag))
}

func TestTrySolveSingleIFillsA1x4Board(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{1, 0, 0, 0, 0, 0, 0})
	placements, ok := s.TrySolve(1, 4, bag)
	require.True(t, ok)
	assert.Len(t, placements, 1)
}

func TestSolveLevelOneProducesAFullCoverSolution(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{1, 0, 0, 0, 0, 0, 0}) // single I, N=1
	placements := s.Solve(bag)
	require.Len(t, placements, 1)

	covered := map[totem.Point]bool{}
	for _, c := range placements[0].Cells {
		covered[c] = true
	}
	assert.Len(t, covered, 4)
}

func TestInferredLevelIsCeilLog2(t *testing.T) {
	assert.Equal(t, 0, inferredLevel(1))
	assert.Equal(t, 2, inferredLevel(4))
	assert.Equal(t, 6, inferredLevel(64))
}

func TestMinDimensionsNeededTakesComponentwiseMax(t *testing.T) {
	bag := totem.Bag{}
	bag[totem.I] = 1
	bag[totem.O] = 1
	dims := minDimensionsNeeded(bag)
	assert.GreaterOrEqual(t, dims.Width, 2)
	assert.GreaterOrEqual(t, dims.Height, 2)
}
