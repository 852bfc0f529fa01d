package totem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantCountsPerShape(t *testing.T) {
	tests := []struct {
		shape Shape
		count int
	}{
		{I, 2}, {J, 4}, {L, 4}, {O, 1}, {S, 2}, {T, 4}, {Z, 2},
	}
	for _, tc := range tests {
		assert.Len(t, Variants(tc.shape), tc.count, "variant count for %s", tc.shape)
	}
}

func TestVariantCoordinatesNormalizedAndDistinct(t *testing.T) {
	for _, shape := range All {
		for _, v := range Variants(shape) {
			minX, minY := v.Cells[0].X, v.Cells[0].Y
			seen := map[Point]bool{}
			for _, c := range v.Cells {
				if c.X < minX {
					minX = c.X
				}
				if c.Y < minY {
					minY = c.Y
				}
				assert.False(t, seen[c], "duplicate cell %v in %s variant", c, shape)
				seen[c] = true
			}
			assert.Equal(t, 0, minX, "min x must be 0 for %s", shape)
			assert.Equal(t, 0, minY, "min y must be 0 for %s", shape)
		}
	}
}

func TestVariantRowMaskPopulationMatchesRowCellCount(t *testing.T) {
	for _, shape := range All {
		for _, v := range Variants(shape) {
			counts := make([]int, v.Height)
			for _, c := range v.Cells {
				counts[c.Y]++
			}
			for y, mask := range v.RowMasks {
				assert.Equal(t, counts[y], popcount(mask), "row %d mask population for %s", y, shape)
			}
		}
	}
}

func popcount(x uint64) int {
	n := 0
	for x != 0 {
		n += int(x & 1)
		x >>= 1
	}
	return n
}

func TestMinimumDimsPicksSmallestWidthThenHeight(t *testing.T) {
	w, h := MinimumDims(I)
	assert.Equal(t, 1, w)
	assert.Equal(t, 4, h)
}

func TestBagFingerprintDistinguishesDistinctBags(t *testing.T) {
	a := NewBag([Count]int{1, 0, 0, 0, 0, 0, 0})
	b := NewBag([Count]int{0, 1, 0, 0, 0, 0, 0})
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := NewBag([Count]int{1, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, a.Fingerprint(), c.Fingerprint())
}

func TestBagArithmetic(t *testing.T) {
	bag := NewBag([Count]int{2, 1, 0, 0, 0, 0, 0})
	cost := NewBag([Count]int{1, 1, 0, 0, 0, 0, 0})

	assert.True(t, bag.CanAfford(cost))
	assert.Equal(t, 3, bag.Total())
	assert.False(t, bag.IsEmpty())

	remaining := bag.Subtract(cost)
	assert.Equal(t, NewBag([Count]int{1, 0, 0, 0, 0, 0, 0}), remaining)
	assert.True(t, remaining.Add(cost) == bag)
}

func TestBagExpandListsEachShapeOnceperCount(t *testing.T) {
	bag := NewBag([Count]int{2, 0, 0, 1, 0, 0, 0})
	shapes := bag.Expand()
	assert.Len(t, shapes, 3)
	assert.Equal(t, I, shapes[0])
	assert.Equal(t, I, shapes[1])
	assert.Equal(t, O, shapes[2])
}

func TestEmptyBagIsEmpty(t *testing.T) {
	var bag Bag
	assert.True(t, bag.IsEmpty())
	assert.Equal(t, uint64(0), bag.Fingerprint())
}
