//
// totems - a tetromino packing solver
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package maxrects implements a MaxRects free-space structure: a list of
// axis-aligned free rectangles, kept maximal, used by the MCTS rectangle
// packer to find bottom-left insertion points.
//
// Based on the "Rectangle Bin Packing" survey by Jukka Jylänki.
package maxrects

type rect struct {
	x, y, w, h int
}

func (r rect) top() int    { return r.y + r.h }
func (r rect) bottom() int { return r.y }
func (r rect) left() int   { return r.x }
func (r rect) right() int  { return r.x + r.w }

func (r rect) fits(width, height int) bool {
	return width <= r.w && height <= r.h
}

func (r rect) fullyContains(other rect) bool {
	return other.left() >= r.left() && other.right() <= r.right() &&
		other.bottom() >= r.bottom() && other.top() <= r.top()
}

func (r rect) intersects(other rect) bool {
	noIntersect := r.right() <= other.left() || r.left() >= other.right() ||
		r.bottom() >= other.top() || r.top() <= other.bottom()
	return !noIntersect
}

// MaxRects tracks the free space of a width x height bin as a list of
// (possibly overlapping) maximal free rectangles.
type MaxRects struct {
	width, height int
	free          []rect
}

// New creates a MaxRects for an empty width x height bin.
func New(width, height int) *MaxRects {
	return &MaxRects{
		width:  width,
		height: height,
		free:   []rect{{0, 0, width, height}},
	}
}

// BottomLeftInsert finds the lowest, then left-most, free rectangle that
// fits a width x height piece, splits the free list around it, and returns
// its bottom-left corner. Returns ok=false if no free rectangle fits.
func (m *MaxRects) BottomLeftInsert(width, height int) (x, y int, ok bool) {
	bestIndex := -1
	for i, r := range m.free {
		if !r.fits(width, height) {
			continue
		}
		if bestIndex == -1 {
			bestIndex = i
			continue
		}
		best := m.free[bestIndex]
		if r.y < best.y || (r.y == best.y && r.x < best.x) {
			bestIndex = i
		}
	}
	if bestIndex == -1 {
		return 0, 0, false
	}
	chosen := m.free[bestIndex]
	m.splitAt(bestIndex, width, height)
	return chosen.x, chosen.y, true
}

func (m *MaxRects) splitAt(index, splitterWidth, splitterHeight int) {
	toSplit := m.free[index]
	m.updateOverlaps(rect{toSplit.x, toSplit.y, splitterWidth, splitterHeight})
	m.removeRedundancy()
}

func (m *MaxRects) updateOverlaps(notFree rect) {
	i := 0
	addedSplits := 0
	for i < len(m.free)-addedSplits {
		r := m.free[i]
		if !r.intersects(notFree) {
			i++
			continue
		}
		if notFree.left() > r.left() {
			m.free = append(m.free, rect{r.left(), r.bottom(), notFree.left() - r.left(), r.h})
			addedSplits++
		}
		if notFree.right() < r.right() {
			m.free = append(m.free, rect{notFree.right(), r.bottom(), r.right() - notFree.right(), r.h})
			addedSplits++
		}
		if notFree.top() < r.top() {
			m.free = append(m.free, rect{r.left(), notFree.top(), r.w, r.top() - notFree.top()})
			addedSplits++
		}
		if notFree.bottom() > r.bottom() {
			m.free = append(m.free, rect{r.left(), r.bottom(), r.w, notFree.bottom() - r.bottom()})
			addedSplits++
		}
		m.swapRemove(i)
		if addedSplits > 0 {
			addedSplits--
			i++
		}
	}
}

func (m *MaxRects) removeRedundancy() {
	i := 0
	for i < len(m.free) {
		j := i + 1
		for j < len(m.free) {
			switch {
			case m.free[i].fullyContains(m.free[j]):
				m.swapRemove(j)
			case m.free[j].fullyContains(m.free[i]):
				m.swapRemove(i)
				j = i + 1
			default:
				j++
			}
		}
		i++
	}
}

func (m *MaxRects) swapRemove(i int) {
	last := len(m.free) - 1
	m.free[i] = m.free[last]
	m.free = m.free[:last]
}

// Clone returns a deep copy, used to explore candidate placements without
// disturbing the caller's state.
func (m *MaxRects) Clone() *MaxRects {
	free := make([]rect, len(m.free))
	copy(free, m.free)
	return &MaxRects{width: m.width, height: m.height, free: free}
}
