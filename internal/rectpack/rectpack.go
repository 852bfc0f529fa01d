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

// Package rectpack is the rectangle-packing backend: it turns a hard
// perfect-fit instance into a search over whole precomputed rectangles
// (via subsetsum) instead of individual pieces, then tries to tile the
// target box with each candidate combination (via mcts).
package rectpack

import (
	"math/rand"

	"github.com/JesseEmond/blitz-2022-inscription/internal/mcts"
	"github.com/JesseEmond/blitz-2022-inscription/internal/rectinventory"
	"github.com/JesseEmond/blitz-2022-inscription/internal/subsetsum"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

// Solver is the rectangle-packing backend, parameterized by how hard it
// tries before giving up.
type Solver struct {
	inventory        *rectinventory.Inventory
	shuffles         int
	combosPerShuffle int
	maxBacktracks    int
	rollouts         int
}

// New builds a rectangle-packing backend over a loaded inventory.
func New(inventory *rectinventory.Inventory, shuffles, combosPerShuffle, maxBacktracks, rollouts int) *Solver {
	return &Solver{
		inventory:        inventory,
		shuffles:         shuffles,
		combosPerShuffle: combosPerShuffle,
		maxBacktracks:    maxBacktracks,
		rollouts:         rollouts,
	}
}

// TrySolve attempts to perfectly fill a width x height box with bag's
// pieces via rectangle decomposition, reshuffling candidate rectangle
// order across attempts since that affects which subset-sum combinations
// are found first.
func (s *Solver) TrySolve(width, height int, bag totem.Bag, rng *rand.Rand) ([]totem.Placement, bool) {
	all := s.inventory.AvailableRectangles(bag)
	if len(all) == 0 {
		return nil, false
	}
	shuffled := make([]rectinventory.Metadata, len(all))
	copy(shuffled, all)

	for attempt := 0; attempt < s.shuffles; attempt++ {
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		it := subsetsum.New(bag, s.inventory, shuffled, s.maxBacktracks)
		for _, combo := range it.Take(s.combosPerShuffle) {
			if sln, ok := mcts.Pack(width, height, combo, s.rollouts, rng); ok {
				return s.convertSolution(sln), true
			}
		}
	}
	return nil, false
}

func (s *Solver) convertSolution(placements []mcts.Placement) []totem.Placement {
	var out []totem.Placement
	for _, p := range placements {
		rect := s.inventory.GetRectangle(p.Rect)
		if p.Rect.Dims.Width != rect.Dims.Width {
			rect = rect.Rotate()
		}
		for _, piece := range rect.Placements {
			out = append(out, piece.Offset(p.X, p.Y))
		}
	}
	return out
}
