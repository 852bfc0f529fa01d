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

// Package mcts implements a Monte-Carlo tree search over a MaxRects
// free-space structure to pack a fixed multiset of precomputed rectangles
// into a target bounding box. For each candidate next move it runs a few
// random rollouts and commits to the move with the best mean rollout
// depth, based on:
// https://www.researchgate.net/publication/343895750_Monte_carlo_tree_search_on_perfect_rectangle_packing_problem_instances
package mcts

import (
	"math/rand"

	"github.com/JesseEmond/blitz-2022-inscription/internal/maxrects"
	"github.com/JesseEmond/blitz-2022-inscription/internal/rectinventory"
)

// Placement records where a rectangle handle was placed, including any
// rotation applied before placing it.
type Placement struct {
	X, Y int
	Rect rectinventory.Metadata
}

type state struct {
	width, height int
	freeSpace     *maxrects.MaxRects
	placements    []Placement
	remaining     []int // indices into the rectangles slice still left to place
}

func newState(width, height int, rectangles []rectinventory.Metadata) *state {
	remaining := make([]int, len(rectangles))
	for i := range rectangles {
		remaining[i] = i
	}
	return &state{
		width:     width,
		height:    height,
		freeSpace: maxrects.New(width, height),
		remaining: remaining,
	}
}

func (s *state) clone() *state {
	remaining := make([]int, len(s.remaining))
	copy(remaining, s.remaining)
	placements := make([]Placement, len(s.placements))
	copy(placements, s.placements)
	return &state{
		width: s.width, height: s.height,
		freeSpace:  s.freeSpace.Clone(),
		placements: placements,
		remaining:  remaining,
	}
}

// bottomLeftPlace places rect (already rotated by the caller if desired)
// via the MaxRects bottom-left heuristic, removing remaining[remIdx].
func (s *state) bottomLeftPlace(remIdx int, rect rectinventory.Metadata) bool {
	x, y, ok := s.freeSpace.BottomLeftInsert(rect.Dims.Width, rect.Dims.Height)
	if !ok {
		return false
	}
	s.placements = append(s.placements, Placement{X: x, Y: y, Rect: rect})
	last := len(s.remaining) - 1
	s.remaining[remIdx] = s.remaining[last]
	s.remaining = s.remaining[:last]
	return true
}

func (s *state) randomLegalMove(rng *rand.Rand, rectangles []rectinventory.Metadata) bool {
	i := rng.Intn(len(s.remaining))
	rect := rectangles[s.remaining[i]]
	if !rect.IsSquare() && rng.Intn(2) == 1 {
		rect = rect.Rotated()
	}
	if s.bottomLeftPlace(i, rect) {
		return true
	}
	if !rect.IsSquare() {
		rect = rect.Rotated()
		return s.bottomLeftPlace(i, rect)
	}
	return false
}

type simulationResult struct {
	depth    int
	solution []Placement // non-nil iff every rectangle was placed
}

func (s *state) simulate(rng *rand.Rand, rectangles []rectinventory.Metadata) simulationResult {
	depth := 0
	for len(s.remaining) > 0 {
		if !s.randomLegalMove(rng, rectangles) {
			break
		}
		depth++
	}
	result := simulationResult{depth: depth}
	if len(s.remaining) == 0 {
		result.solution = s.placements
	}
	return result
}

// Pack runs MCTS to place every rectangle in rectangles inside a
// width x height bin, using nRolls random rollouts per candidate move to
// score it. Returns the full placement list on success.
func Pack(width, height int, rectangles []rectinventory.Metadata, nRolls int, rng *rand.Rand) ([]Placement, bool) {
	current := newState(width, height, rectangles)
	if len(current.remaining) == 0 {
		return current.placements, true
	}
	for {
		var best *state
		bestScore := 0.0
		for i := range current.remaining {
			rect := rectangles[current.remaining[i]]
			rotations := 2
			if rect.IsSquare() {
				rotations = 1
			}
			for r := 0; r < rotations; r++ {
				candidate := current.clone()
				if candidate.bottomLeftPlace(i, rect) {
					depths := make([]int, 0, nRolls)
					for roll := 0; roll < nRolls; roll++ {
						sim := candidate.clone()
						result := sim.simulate(rng, rectangles)
						if result.solution != nil {
							return result.solution, true
						}
						depths = append(depths, result.depth)
					}
					if len(depths) > 0 {
						total := 0
						for _, d := range depths {
							total += d
						}
						score := float64(total) / float64(len(depths))
						if score > bestScore {
							bestScore = score
							best = candidate
						}
					}
				}
				rect = rect.Rotated()
			}
		}
		if best == nil {
			return nil, false
		}
		current = best
		if len(current.remaining) == 0 {
			return current.placements, true
		}
	}
}
