package rectinventory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

func sampleRectangles() []Rectangle {
	return []Rectangle{
		{
			Dims: Dims{Width: 1, Height: 4},
			Cost: totem.NewBag([totem.Count]int{1, 0, 0, 0, 0, 0, 0}),
			Placements: []totem.Placement{
				{Shape: totem.I, Cells: [4]totem.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}},
			},
		},
		{
			Dims: Dims{Width: 2, Height: 2},
			Cost: totem.NewBag([totem.Count]int{0, 0, 0, 1, 0, 0, 0}),
			Placements: []totem.Placement{
				{Shape: totem.O, Cells: [4]totem.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
			},
		},
	}
}

func TestSaveFileThenLoadFileRoundTrips(t *testing.T) {
	inv := newInventory(sampleRectangles())
	path := filepath.Join(t.TempDir(), "rects.json")

	require.NoError(t, inv.SaveFile(path))
	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, inv.Len(), loaded.Len())
	for i := range inv.Metadata {
		assert.Equal(t, inv.GetRectangle(inv.Metadata[i]).Dims, loaded.GetRectangle(loaded.Metadata[i]).Dims)
		assert.Equal(t, inv.GetRectangle(inv.Metadata[i]).Cost, loaded.GetRectangle(loaded.Metadata[i]).Cost)
	}
}

func TestAvailableRectanglesFiltersByAffordability(t *testing.T) {
	inv := newInventory(sampleRectangles())
	bag := totem.NewBag([totem.Count]int{1, 0, 0, 0, 0, 0, 0})
	available := inv.AvailableRectangles(bag)
	require.Len(t, available, 1)
	assert.Equal(t, Dims{Width: 1, Height: 4}, available[0].Dims)
}

func TestRotateSwapsDimsAndRemapsCoordinates(t *testing.T) {
	rect := sampleRectangles()[0] // 1x4 vertical I
	rotated := rect.Rotate()
	assert.Equal(t, Dims{Width: 4, Height: 1}, rotated.Dims)
	// (x, y) -> (y, width-1-x), width of the original rect is 1
	assert.Equal(t, totem.Point{X: 0, Y: 0}, rotated.Placements[0].Cells[0])
	assert.Equal(t, totem.Point{X: 3, Y: 0}, rotated.Placements[0].Cells[3])
}

func TestMetadataRotatedSwapsDims(t *testing.T) {
	m := Metadata{Dims: Dims{Width: 2, Height: 3}, Index: 0}
	assert.False(t, m.IsSquare())
	rotated := m.Rotated()
	assert.Equal(t, Dims{Width: 3, Height: 2}, rotated.Dims)
}

func TestBuildFindsOSquareAndIBarRectangles(t *testing.T) {
	inv := Build(4)
	found := map[Dims]bool{}
	for _, m := range inv.Metadata {
		found[m.Dims] = true
	}
	assert.True(t, found[Dims{Width: 1, Height: 4}] || found[Dims{Width: 4, Height: 1}])
	assert.True(t, found[Dims{Width: 2, Height: 2}])
}
