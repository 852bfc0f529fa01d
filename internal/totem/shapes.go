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

package totem

import "github.com/JesseEmond/blitz-2022-inscription/internal/assert"

// Variant is one fixed 90°-rotation orientation of a shape: its four cell
// offsets (normalized so min x = min y = 0), its bounding width/height, and
// a per-row occupancy mask used for constant-time collision tests against a
// Board's row bitmap. RowMasks[dy] has bit (63-x) set for every cell at
// relative row dy, so once shifted right by the placement's x0 it can be
// OR'd or AND'd directly against a board row.
type Variant struct {
	Shape  Shape
	Cells  [4]Point
	Width  int
	Height int
	RowMasks []uint64
}

func newVariant(shape Shape, coords [4][2]int) Variant {
	v := Variant{Shape: shape}
	maxX, maxY := 0, 0
	for i, c := range coords {
		v.Cells[i] = Point{X: c[0], Y: c[1]}
		if c[0] > maxX {
			maxX = c[0]
		}
		if c[1] > maxY {
			maxY = c[1]
		}
	}
	v.Width = maxX + 1
	v.Height = maxY + 1
	v.RowMasks = make([]uint64, v.Height)
	for _, c := range v.Cells {
		v.RowMasks[c.Y] |= uint64(1) << uint(63-c.X)
	}
	for _, c := range v.Cells {
		assert.Assert(c.X >= 0 && c.Y >= 0, "shape variant coordinate must be non-negative: %v", c)
	}
	return v
}

var variantTables [Count][]Variant

func init() {
	variantTables[I] = []Variant{
		newVariant(I, [4][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}),
		newVariant(I, [4][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}),
	}
	variantTables[J] = []Variant{
		newVariant(J, [4][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 2}}),
		newVariant(J, [4][2]int{{0, 1}, {0, 0}, {1, 0}, {2, 0}}),
		newVariant(J, [4][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}}),
		newVariant(J, [4][2]int{{0, 1}, {1, 1}, {2, 1}, {2, 0}}),
	}
	variantTables[L] = []Variant{
		newVariant(L, [4][2]int{{0, 2}, {0, 1}, {0, 0}, {1, 0}}),
		newVariant(L, [4][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}}),
		newVariant(L, [4][2]int{{0, 2}, {1, 2}, {1, 1}, {1, 0}}),
		newVariant(L, [4][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 1}}),
	}
	variantTables[O] = []Variant{
		newVariant(O, [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}),
	}
	variantTables[S] = []Variant{
		newVariant(S, [4][2]int{{0, 2}, {0, 1}, {1, 1}, {1, 0}}),
		newVariant(S, [4][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}}),
	}
	variantTables[T] = []Variant{
		newVariant(T, [4][2]int{{0, 1}, {1, 1}, {2, 1}, {1, 0}}),
		newVariant(T, [4][2]int{{0, 2}, {0, 1}, {1, 1}, {0, 0}}),
		newVariant(T, [4][2]int{{0, 0}, {1, 0}, {2, 0}, {1, 1}}),
		newVariant(T, [4][2]int{{1, 2}, {1, 1}, {1, 0}, {0, 1}}),
	}
	variantTables[Z] = []Variant{
		newVariant(Z, [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}}),
		newVariant(Z, [4][2]int{{0, 1}, {1, 1}, {1, 0}, {2, 0}}),
	}
}

// Variants returns the ordered list of rotation variants for a shape tag.
func Variants(s Shape) []Variant {
	return variantTables[s]
}

// MinimumDims returns the (width, height) of the smallest-width variant of
// a shape, breaking ties in favor of the smaller height.
func MinimumDims(s Shape) (int, int) {
	best := variantTables[s][0]
	for _, v := range variantTables[s][1:] {
		if v.Width < best.Width || (v.Width == best.Width && v.Height < best.Height) {
			best = v
		}
	}
	return best.Width, best.Height
}
