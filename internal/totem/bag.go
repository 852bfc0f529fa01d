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

// fingerprintBase bounds the encoding to at most 512 pieces of any one
// shape; counts are not expected to exceed that in practice.
const fingerprintBase = 513

// Bag is a length-Count vector of non-negative piece counts indexed by
// Shape. The zero value is an empty bag.
type Bag [Count]int

// NewBag builds a Bag from an array of per-shape counts ordered as All.
func NewBag(counts [Count]int) Bag {
	return Bag(counts)
}

// Add returns a new Bag with other's counts added to b's.
func (b Bag) Add(other Bag) Bag {
	var out Bag
	for i := range b {
		out[i] = b[i] + other[i]
	}
	return out
}

// Subtract returns a new Bag with other's counts removed from b's. Callers
// must check CanAfford first: underflow is not guarded against here to
// keep this on the hot path of the solvers.
func (b Bag) Subtract(other Bag) Bag {
	var out Bag
	for i := range b {
		out[i] = b[i] - other[i]
	}
	return out
}

// CanAfford reports whether b has at least as many of each shape as cost.
func (b Bag) CanAfford(cost Bag) bool {
	for i := range b {
		if b[i] < cost[i] {
			return false
		}
	}
	return true
}

// Total returns the sum of all counts in the bag.
func (b Bag) Total() int {
	total := 0
	for _, c := range b {
		total += c
	}
	return total
}

// IsEmpty reports whether every count in the bag is zero.
func (b Bag) IsEmpty() bool {
	return b.Total() == 0
}

// Expand returns the list of shape tags in the bag, one entry repeated
// count times for each shape with a non-zero count.
func (b Bag) Expand() []Shape {
	shapes := make([]Shape, 0, b.Total())
	for i, c := range b {
		for j := 0; j < c; j++ {
			shapes = append(shapes, Shape(i))
		}
	}
	return shapes
}

// Fingerprint encodes the bag as a single uint64, treating it as a base-513
// number so distinct bags (up to 512 pieces of any one shape) map to
// distinct fingerprints. Used as a cache/set key for dead-end and
// memoization tables, mirroring the subset-sum solver's bag encoding.
func (b Bag) Fingerprint() uint64 {
	var encoded uint64
	mult := uint64(1)
	for _, c := range b {
		assert.Assert(c >= 0 && c < fingerprintBase, "bag count out of fingerprint range: %d", c)
		encoded += uint64(c) * mult
		mult *= fingerprintBase
	}
	return encoded
}
