package subsetsum

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/blitz-2022-inscription/internal/rectinventory"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

// testInventory writes a small fixture straight to a JSON file in the
// format rectinventory persists to, then loads it back, since the package
// deliberately only builds inventories via Build or LoadFile.
func testInventory(t *testing.T) *rectinventory.Inventory {
	t.Helper()
	rects := []rectinventory.Rectangle{
		{Dims: rectinventory.Dims{Width: 1, Height: 4}, Cost: totem.NewBag([totem.Count]int{1, 0, 0, 0, 0, 0, 0})},
		{Dims: rectinventory.Dims{Width: 2, Height: 2}, Cost: totem.NewBag([totem.Count]int{0, 0, 0, 1, 0, 0, 0})},
	}
	data, err := json.Marshal(rects)
	require.NoError(t, err)
	path := t.TempDir() + "/inv.json"
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := rectinventory.LoadFile(path)
	require.NoError(t, err)
	return loaded
}

func TestMultiDimSubsetSumFindsExactCombination(t *testing.T) {
	inv := testInventory(t)
	bag := totem.NewBag([totem.Count]int{2, 0, 0, 1, 0, 0, 0}) // two I, one O
	all := inv.AvailableRectangles(bag)

	it := New(bag, inv, all, 50_000)
	combo, ok := it.Next()
	require.True(t, ok)

	total := totem.Bag{}
	for _, handle := range combo {
		total = total.Add(inv.Cost(handle))
	}
	assert.Equal(t, bag, total)
}

func TestMultiDimSubsetSumNoDuplicateCombinations(t *testing.T) {
	inv := testInventory(t)
	bag := totem.NewBag([totem.Count]int{4, 0, 0, 2, 0, 0, 0})
	all := inv.AvailableRectangles(bag)

	it := New(bag, inv, all, 50_000)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		combo, ok := it.Next()
		if !ok {
			break
		}
		key := fingerprintCombo(combo)
		assert.False(t, seen[key], "duplicate combination returned")
		seen[key] = true
	}
}

func TestMultiDimSubsetSumTerminatesWhenNoCombinationExists(t *testing.T) {
	inv := testInventory(t)
	// 3 totems of shape J cannot be made from any rectangle in the fixture.
	bag := totem.NewBag([totem.Count]int{0, 3, 0, 0, 0, 0, 0})
	all := inv.AvailableRectangles(bag)

	it := New(bag, inv, all, 1000)
	_, ok := it.Next()
	assert.False(t, ok)
}

func fingerprintCombo(combo []rectinventory.Metadata) string {
	key := ""
	for _, m := range combo {
		key += string(rune(m.Index)) + ","
	}
	return key
}
