package mcts

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/blitz-2022-inscription/internal/rectinventory"
)

func TestPackTilesAPerfectFitExactly(t *testing.T) {
	// A 4x4 bin tiled exactly by two 1x4 handles and two 2x2 handles.
	rectangles := []rectinventory.Metadata{
		{Dims: rectinventory.Dims{Width: 1, Height: 4}, Index: 0},
		{Dims: rectinventory.Dims{Width: 1, Height: 4}, Index: 0},
		{Dims: rectinventory.Dims{Width: 2, Height: 2}, Index: 1},
		{Dims: rectinventory.Dims{Width: 2, Height: 2}, Index: 1},
	}
	rng := rand.New(rand.NewSource(7))

	placements, ok := Pack(4, 4, rectangles, 20, rng)
	require.True(t, ok)
	require.Len(t, placements, 4)

	area := 0
	for _, p := range placements {
		area += p.Rect.Dims.Width * p.Rect.Dims.Height
	}
	assert.Equal(t, 16, area)
}

func TestPackFailsWhenRectanglesCannotTileTheBin(t *testing.T) {
	rectangles := []rectinventory.Metadata{
		{Dims: rectinventory.Dims{Width: 3, Height: 3}, Index: 0},
		{Dims: rectinventory.Dims{Width: 3, Height: 3}, Index: 0},
	}
	rng := rand.New(rand.NewSource(1))

	_, ok := Pack(4, 4, rectangles, 5, rng)
	assert.False(t, ok)
}

func TestPackWithNoRectanglesReturnsEmptySolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	placements, ok := Pack(4, 4, nil, 5, rng)
	require.True(t, ok)
	assert.Empty(t, placements)
}
