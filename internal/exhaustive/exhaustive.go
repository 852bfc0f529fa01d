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

// Package exhaustive implements a depth-first backtracking solver, only
// tractable for small piece counts (<= 8).
package exhaustive

import (
	"github.com/JesseEmond/blitz-2022-inscription/internal/board"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

// Solver is a stateless exhaustive backtracking packer.
type Solver struct{}

// New builds an exhaustive solver.
func New() *Solver {
	return &Solver{}
}

// TrySolve attempts to place every piece in bag inside a width x height
// board, returning the placement list on success.
func (s *Solver) TrySolve(width, height int, bag totem.Bag) ([]totem.Placement, bool) {
	b := board.New(width, height)
	return recursiveSolve(b, bag)
}

func recursiveSolve(b *board.Board, bag totem.Bag) ([]totem.Placement, bool) {
	shapesLeft := bag.Total()
	if shapesLeft == 0 {
		return b.Placements(), true
	}

	first := b.Len() == 0

	for _, shape := range totem.All {
		if bag[shape] == 0 {
			continue
		}
		for vi := range totem.Variants(shape) {
			variant := &totem.Variants(shape)[vi]
			upperDx := b.Width + 1 - variant.Width
			if first {
				if upperDx > 1 {
					upperDx = 1
				}
				coversOrigin := false
				for _, c := range variant.Cells {
					if c.X == 0 && c.Y == 0 {
						coversOrigin = true
						break
					}
				}
				if !coversOrigin {
					continue
				}
			}
			for dx := 0; dx < upperDx; dx++ {
				y, ok := b.MoveFirstFitAbove(variant, dx)
				if !ok {
					continue
				}
				b.Mark(variant, dx, y)
				bag[shape]--
				if sln, found := recursiveSolve(b, bag); found {
					return sln, true
				}
				b.Unmark()
				bag[shape]++
			}
		}
	}
	return nil, false
}
