package exhaustive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

func TestSingleIFillsA1x4Board(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{1, 0, 0, 0, 0, 0, 0})
	placements, ok := s.TrySolve(1, 4, bag)
	require.True(t, ok)
	require.Len(t, placements, 1)

	covered := map[totem.Point]bool{}
	for _, c := range placements[0].Cells {
		covered[c] = true
	}
	for y := 0; y < 4; y++ {
		assert.True(t, covered[totem.Point{X: 0, Y: y}])
	}
}

func TestFourShapesFillA4x4BoardExactly(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{1, 1, 1, 1, 0, 0, 0}) // I, J, L, O
	placements, ok := s.TrySolve(4, 4, bag)
	require.True(t, ok)
	require.Len(t, placements, 4)

	covered := map[totem.Point]bool{}
	for _, p := range placements {
		for _, c := range p.Cells {
			assert.False(t, covered[c], "cell %v covered twice", c)
			covered[c] = true
		}
	}
	assert.Len(t, covered, 16)
	assert.True(t, covered[totem.Point{X: 0, Y: 0}])
}

func TestEmptyBagReturnsEmptyPlacementList(t *testing.T) {
	s := New()
	placements, ok := s.TrySolve(4, 4, totem.Bag{})
	require.True(t, ok)
	assert.Empty(t, placements)
}

func TestNoFitReturnsFalse(t *testing.T) {
	s := New()
	bag := totem.NewBag([totem.Count]int{0, 0, 0, 0, 0, 0, 0})
	bag[totem.I] = 3 // 3 I totems can't fit a 2x2 board
	_, ok := s.TrySolve(2, 2, bag)
	assert.False(t, ok)
}
