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

// Package scoring computes the packing score and precomputes the ordered
// candidate (width, height) dimensions the dispatcher iterates over.
package scoring

import (
	"math"
	"sort"
)

// Dims is a candidate (width, height) bounding box.
type Dims struct {
	Width, Height int
}

// Score returns the packing score for numTotems pieces placed inside a
// width x height bounding box: (10*N - W*H) * min(W,H) / max(W,H).
func Score(numTotems, width, height int) float64 {
	short, long := width, height
	if long < short {
		short, long = long, short
	}
	return float64(10*numTotems-width*height) * float64(short) / float64(long)
}

func allDims(numTotems int) []Dims {
	nSquares := numTotems * 4
	optimalSide := int(math.Ceil(math.Sqrt(float64(nSquares))))
	maxSide := optimalSide * 2
	if maxSide < 4 {
		maxSide = 4 // ensure the 4x1 totem always fits
	}

	seen := make(map[Dims]bool, maxSide*2)
	var dims []Dims
	add := func(d Dims) {
		if !seen[d] {
			seen[d] = true
			dims = append(dims, d)
		}
	}

	for length := 1; length <= maxSide; length++ {
		if length*length >= nSquares {
			add(Dims{length, length})
		}
		otherSide := int(math.Ceil(float64(nSquares) / float64(length)))
		short, long := length, otherSide
		if long < short {
			short, long = long, short
		}
		add(Dims{short, long})
	}
	return dims
}

// OptimalDimensions precomputes, per level (level = ceil(log2(N))), the
// candidate dimensions ordered from highest to lowest score.
type OptimalDimensions struct {
	levelDims [10][]Dims
}

// NewOptimalDimensions builds the table for levels 0 through 9 (covering up
// to 512 totems), the level count mirroring the teacher's fixed-size table.
func NewOptimalDimensions() *OptimalDimensions {
	var o OptimalDimensions
	for level := 0; level < 10; level++ {
		numTotems := 1 << uint(level)
		dims := allDims(numTotems)
		sort.SliceStable(dims, func(i, j int) bool {
			return Score(numTotems, dims[i].Width, dims[i].Height) >
				Score(numTotems, dims[j].Width, dims[j].Height)
		})
		o.levelDims[level] = dims
	}
	return &o
}

// LevelDims returns the ordered candidate dimensions for a level.
func (o *OptimalDimensions) LevelDims(level int) []Dims {
	if level < 0 {
		level = 0
	}
	if level >= len(o.levelDims) {
		level = len(o.levelDims) - 1
	}
	return o.levelDims[level]
}
