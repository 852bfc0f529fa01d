package rectpack

import (
	"encoding/json"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/blitz-2022-inscription/internal/rectinventory"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

func testInventory(t *testing.T) *rectinventory.Inventory {
	t.Helper()
	rects := []rectinventory.Rectangle{
		{
			Dims: rectinventory.Dims{Width: 1, Height: 4},
			Cost: totem.NewBag([totem.Count]int{1, 0, 0, 0, 0, 0, 0}),
			Placements: []totem.Placement{
				{Shape: totem.I, Cells: [4]totem.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}},
			},
		},
		{
			Dims: rectinventory.Dims{Width: 2, Height: 2},
			Cost: totem.NewBag([totem.Count]int{0, 0, 0, 1, 0, 0, 0}),
			Placements: []totem.Placement{
				{Shape: totem.O, Cells: [4]totem.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
			},
		},
	}
	data, err := json.Marshal(rects)
	require.NoError(t, err)
	path := t.TempDir() + "/inv.json"
	require.NoError(t, os.WriteFile(path, data, 0644))

	inv, err := rectinventory.LoadFile(path)
	require.NoError(t, err)
	return inv
}

func TestTrySolveFillsA4x4BoxFromRectangleCombination(t *testing.T) {
	inv := testInventory(t)
	solver := New(inv, 5, 10, 10_000, 20)
	bag := totem.NewBag([totem.Count]int{2, 0, 0, 2, 0, 0, 0}) // two I, two O
	rng := rand.New(rand.NewSource(3))

	placements, ok := solver.TrySolve(4, 4, bag, rng)
	require.True(t, ok)

	covered := map[totem.Point]bool{}
	for _, p := range placements {
		for _, c := range p.Cells {
			assert.False(t, covered[c])
			covered[c] = true
		}
	}
	assert.Len(t, covered, 16)
}

func TestTrySolveFailsWhenNoRectangleIsAffordable(t *testing.T) {
	inv := testInventory(t)
	solver := New(inv, 3, 5, 1000, 10)
	bag := totem.NewBag([totem.Count]int{0, 1, 0, 0, 0, 0, 0}) // a lone J, unaffordable for either rect
	rng := rand.New(rand.NewSource(1))

	_, ok := solver.TrySolve(4, 4, bag, rng)
	assert.False(t, ok)
}
