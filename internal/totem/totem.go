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

// Package totem defines the seven tetromino shapes ("totems"), their
// rotation variants, and a fixed-arity bag type to count them.
package totem

// Shape identifies one of the seven standard tetromino shapes. The order
// below is used as the array index throughout the solver.
type Shape int

const (
	I Shape = iota
	J
	L
	O
	S
	T
	Z

	// Count is the number of distinct shapes.
	Count = 7
)

var names = [Count]string{"I", "J", "L", "O", "S", "T", "Z"}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if s < 0 || int(s) >= Count {
		return "?"
	}
	return names[s]
}

// All lists every shape tag in fixed index order.
var All = [Count]Shape{I, J, L, O, S, T, Z}

// Point is a non-negative (x, y) cell offset.
type Point struct {
	X, Y int
}

// Placement records where a specific rotation of a shape was placed on a
// board: the shape, and the four absolute cell coordinates it occupies.
type Placement struct {
	Shape Shape
	Cells [4]Point
}

// Offset returns a copy of the placement translated by (dx, dy).
func (p Placement) Offset(dx, dy int) Placement {
	out := p
	for i, c := range p.Cells {
		out.Cells[i] = Point{c.X + dx, c.Y + dy}
	}
	return out
}
