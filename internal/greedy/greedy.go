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

// Package greedy implements a randomized "touchpoints" heuristic solver:
// repeated independent passes that at each step place the piece maximizing
// neighbor adjacency, breaking ties uniformly at random.
package greedy

import (
	"math/rand"

	"github.com/JesseEmond/blitz-2022-inscription/internal/board"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

// Solver is a stateless greedy touchpoint packer.
type Solver struct{}

// New builds a greedy solver.
func New() *Solver {
	return &Solver{}
}

type candidate struct {
	variant *totem.Variant
	shape   totem.Shape
	x, y    int
}

// Attempt runs a single randomized pass: repeatedly place the candidate
// placement with the highest touchpoint score, breaking ties uniformly at
// random, until the bag is empty (success) or no placement is possible
// while pieces remain (failure).
func (s *Solver) Attempt(width, height int, bag totem.Bag, rng *rand.Rand) ([]totem.Placement, bool) {
	b := board.New(width, height)
	for {
		if bag.IsEmpty() {
			return b.Placements(), true
		}

		best := -1
		var tied []candidate
		for _, shape := range totem.All {
			if bag[shape] == 0 {
				continue
			}
			variants := totem.Variants(shape)
			for vi := range variants {
				variant := &variants[vi]
				for x := 0; x+variant.Width <= width; x++ {
					y, ok := b.MoveFirstFitAbove(variant, x)
					if !ok {
						continue
					}
					score := b.NumTouchpoints(variant, x, y)
					switch {
					case score > best:
						best = score
						tied = tied[:0]
						tied = append(tied, candidate{variant, shape, x, y})
					case score == best:
						tied = append(tied, candidate{variant, shape, x, y})
					}
				}
			}
		}

		if len(tied) == 0 {
			return nil, false
		}
		chosen := tied[rng.Intn(len(tied))]
		b.Mark(chosen.variant, chosen.x, chosen.y)
		bag[chosen.shape]--
	}
}

// TrySolve runs up to attempts independent randomized passes, each seeded
// off rng, returning the first one that places every piece.
func (s *Solver) TrySolve(width, height int, bag totem.Bag, attempts int, rng *rand.Rand) ([]totem.Placement, bool) {
	for i := 0; i < attempts; i++ {
		attemptRng := rand.New(rand.NewSource(rng.Int63()))
		if sln, ok := s.Attempt(width, height, bag, attemptRng); ok {
			return sln, true
		}
	}
	return nil, false
}
