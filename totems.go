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

// Package totems plays a timed packing game: given a multiset of
// tetromino-shaped pieces ("totems" — the seven standard shapes I, J, L, O,
// S, T, Z), it places every piece onto an axis-aligned rectangular grid so
// that no two piece cells overlap, (0,0) is covered, only 90° rotations are
// used, and the enclosing bounding box maximizes a squareness-biased score.
package totems

import (
	"errors"
	"fmt"

	"github.com/JesseEmond/blitz-2022-inscription/internal/dispatcher"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

// Shape names a totem's orientation-independent tag, one of "I", "J", "L",
// "O", "S", "T", "Z".
type Shape = totem.Shape

// Re-export the shape constants so callers never need to import internal
// packages to build a Question.
const (
	I = totem.I
	J = totem.J
	L = totem.L
	O = totem.O
	S = totem.S
	T = totem.T
	Z = totem.Z
)

// ErrMalformedQuestion is returned when a question contains an unknown
// shape tag.
var ErrMalformedQuestion = errors.New("totems: question contains an unknown shape tag")

// ErrEmptyQuestion is returned when a question has zero pieces.
var ErrEmptyQuestion = errors.New("totems: question has zero pieces")

// TotemQuestion is one piece entry in a Question: just its shape tag.
type TotemQuestion struct {
	Shape Shape
}

// Question is an ordered list of piece entries to pack.
type Question struct {
	Totems []TotemQuestion
}

// Coordinate is an absolute, non-negative (x, y) grid cell.
type Coordinate struct {
	X, Y int
}

// TotemAnswer is one placed piece: its shape tag and the four absolute
// cells it occupies.
type TotemAnswer struct {
	Shape       Shape
	Coordinates []Coordinate
}

// Answer is an ordered list of placements solving a Question.
type Answer struct {
	Totems []TotemAnswer
}

func (q Question) bag() (totem.Bag, error) {
	if len(q.Totems) == 0 {
		return totem.Bag{}, ErrEmptyQuestion
	}
	var bag totem.Bag
	for _, tq := range q.Totems {
		if tq.Shape < 0 || int(tq.Shape) >= totem.Count {
			return totem.Bag{}, ErrMalformedQuestion
		}
		bag[tq.Shape]++
	}
	return bag, nil
}

func toAnswer(placements []totem.Placement) Answer {
	answer := Answer{Totems: make([]TotemAnswer, len(placements))}
	for i, p := range placements {
		coords := make([]Coordinate, len(p.Cells))
		for j, c := range p.Cells {
			coords[j] = Coordinate{X: c.X, Y: c.Y}
		}
		answer.Totems[i] = TotemAnswer{Shape: p.Shape, Coordinates: coords}
	}
	return answer
}

// Solver is the hybrid packing engine: construct once with New and reuse
// across many questions.
type Solver struct {
	dispatch *dispatcher.Solver
}

// New constructs a Solver with the default configuration: multithreading
// on, rectangle inventory loaded if configured and available.
func New() *Solver {
	return &Solver{dispatch: dispatcher.New()}
}

// Close releases any resources held by the solver. Present for symmetry
// with the embedding application's resource lifecycle; the current backend
// set holds nothing that needs explicit releasing.
func (s *Solver) Close() {}

// Solve fully answers a question: it derives the piece bag, iterates
// candidate dimensions in score order, and returns a placement covering
// every piece.
func (s *Solver) Solve(question Question) (Answer, error) {
	bag, err := question.bag()
	if err != nil {
		return Answer{}, fmt.Errorf("totems: solve: %w", err)
	}
	placements := s.dispatch.Solve(bag)
	return toAnswer(placements), nil
}

// TrySolve attempts to fit bag's pieces inside a single width x height box,
// useful for evaluation harnesses that want to test one size directly.
func (s *Solver) TrySolve(width, height int, bag [totem.Count]int) (Answer, bool) {
	placements, ok := s.dispatch.TrySolve(width, height, totem.Bag(bag))
	if !ok {
		return Answer{}, false
	}
	return toAnswer(placements), true
}
