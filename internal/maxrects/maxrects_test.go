package maxrects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBottomLeftInsertEmptyFits(t *testing.T) {
	m := New(10, 20)
	x, y, ok := m.BottomLeftInsert(5, 7)
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestBottomLeftInsertEmptyNoFit(t *testing.T) {
	m := New(10, 20)
	_, _, ok := m.BottomLeftInsert(30, 40)
	assert.False(t, ok)
}

func TestBottomLeftInsertTwoSplits(t *testing.T) {
	m := New(10, 20)
	x, y, ok := m.BottomLeftInsert(2, 3)
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Len(t, m.free, 2)
}

func TestSplitKeepsFreeSpaceMaximal(t *testing.T) {
	m := New(20, 20)
	_, _, ok := m.BottomLeftInsert(8, 6)
	assert.True(t, ok)
	for i := range m.free {
		for j := range m.free {
			if i == j {
				continue
			}
			assert.False(t, m.free[i].fullyContains(m.free[j]), "free list still has a redundant rectangle")
		}
	}
}

func TestBottomLeftInsertPicksLowestThenLeftmost(t *testing.T) {
	m := New(20, 20)
	_, _, ok := m.BottomLeftInsert(10, 5)
	assert.True(t, ok)
	x, y, ok := m.BottomLeftInsert(5, 5)
	assert.True(t, ok)
	assert.Equal(t, 0, y)
	assert.Equal(t, 10, x)
}

func TestCloneIsIndependent(t *testing.T) {
	m := New(10, 10)
	clone := m.Clone()
	_, _, _ = clone.BottomLeftInsert(5, 5)
	assert.Len(t, m.free, 1)
	assert.Len(t, clone.free, 2)
}
