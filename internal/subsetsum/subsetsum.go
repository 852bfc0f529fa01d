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

// Package subsetsum lazily enumerates multisets of rectangle-inventory
// handles (with replacement, since multiple identical rectangles may be
// picked) whose costs sum exactly to a target piece bag. It backtracks
// with a dead-end cache so repeated residual bags are not re-explored.
package subsetsum

import (
	"github.com/JesseEmond/blitz-2022-inscription/internal/deadends"
	"github.com/JesseEmond/blitz-2022-inscription/internal/rectinventory"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

type frame struct {
	index   int
	deadEnd bool
}

// Iterator lazily yields rectangle combinations summing to a target bag.
type Iterator struct {
	inventory  *rectinventory.Inventory
	rectangles []rectinventory.Metadata

	residual     totem.Bag
	chosen       []frame
	currentIndex int

	deadEnds      *deadends.Set
	backtracks    int
	maxBacktracks int
	exhausted     bool
}

// New builds an iterator over combinations of rectangles drawn from
// rectangles that sum exactly to bag, giving up after maxBacktracks failed
// backtracking steps.
func New(bag totem.Bag, inventory *rectinventory.Inventory, rectangles []rectinventory.Metadata, maxBacktracks int) *Iterator {
	return &Iterator{
		inventory:     inventory,
		rectangles:    rectangles,
		residual:      bag,
		deadEnds:      deadends.New(),
		maxBacktracks: maxBacktracks,
	}
}

// Next returns the next rectangle combination whose costs sum to the
// target bag, or ok=false once the search is exhausted.
func (it *Iterator) Next() ([]rectinventory.Metadata, bool) {
	if it.exhausted {
		return nil, false
	}
	if it.residual.IsEmpty() && len(it.chosen) > 0 {
		if !it.backtrack() {
			it.exhausted = true
			return nil, false
		}
	}
	for {
		if it.currentIndex >= len(it.rectangles) {
			if !it.backtrack() {
				it.exhausted = true
				return nil, false
			}
			continue
		}
		handle := it.rectangles[it.currentIndex]
		cost := it.inventory.Cost(handle)
		if !it.residual.CanAfford(cost) {
			it.currentIndex++
			if it.currentIndex == len(it.rectangles) {
				if !it.backtrack() {
					it.exhausted = true
					return nil, false
				}
			}
			continue
		}
		it.pickCurrent(cost)
		if it.residual.IsEmpty() {
			return it.matchFound(), true
		}
		if it.deadEnds.Contains(it.residual.Fingerprint()) {
			if !it.backtrack() {
				it.exhausted = true
				return nil, false
			}
		}
	}
}

// Take collects up to n combinations, stopping early if the search is
// exhausted first.
func (it *Iterator) Take(n int) [][]rectinventory.Metadata {
	out := make([][]rectinventory.Metadata, 0, n)
	for i := 0; i < n; i++ {
		combo, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, combo)
	}
	return out
}

func (it *Iterator) pickCurrent(cost totem.Bag) {
	it.chosen = append(it.chosen, frame{index: it.currentIndex, deadEnd: true})
	it.residual = it.residual.Subtract(cost)
}

func (it *Iterator) matchFound() []rectinventory.Metadata {
	for i := range it.chosen {
		it.chosen[i].deadEnd = false
	}
	it.backtracks = 0
	combo := make([]rectinventory.Metadata, len(it.chosen))
	for i, f := range it.chosen {
		combo[i] = it.rectangles[f.index]
	}
	return combo
}

// backtrack undoes the most recent pick and advances currentIndex past it,
// returning false once there is nothing left to try or the backtrack
// budget is spent.
func (it *Iterator) backtrack() bool {
	it.backtracks++
	if it.backtracks >= it.maxBacktracks {
		return false
	}
	for {
		if len(it.chosen) == 0 {
			return false
		}
		last := it.chosen[len(it.chosen)-1]
		it.chosen = it.chosen[:len(it.chosen)-1]
		if last.deadEnd {
			it.deadEnds.Insert(it.residual.Fingerprint())
		}
		cost := it.inventory.Cost(it.rectangles[last.index])
		it.residual = it.residual.Add(cost)
		it.currentIndex = last.index + 1
		if it.currentIndex < len(it.rectangles) {
			return true
		}
	}
}
