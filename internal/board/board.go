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

// Package board implements the mutable packing surface that the exhaustive
// and greedy solvers place totems on: a row-wise occupancy bitmap (mirroring
// the teacher's bitboard package), a per-column lowest-free-row cursor, a
// per-cell touchpoint counter, and an append-only placement log with undo.
package board

import (
	"strings"

	"github.com/JesseEmond/blitz-2022-inscription/internal/assert"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

// originTouchBonus biases touchpoint selection so the first placement on an
// empty board always covers (0,0), without a special case in the caller.
const originTouchBonus = 1 << 20

// logEntry records one placement so it can be undone in exact reverse order.
type logEntry struct {
	placement totem.Placement
	x0, y0    int
	variant   *totem.Variant
}

// Board is the packing surface: bitmap, column cursors, touchpoint counts,
// and the undo log, kept in lockstep across mark/unmark.
type Board struct {
	Width, Height int

	grid         []uint64 // grid[y] has bit (63-x) set iff (x,y) occupied; H rows plus 3 trailing pad rows
	touchpoints  [][]int  // touchpoints[y][x]
	firstUnsetY  []int    // firstUnsetY[x]: smallest unoccupied y in column x, or Height if full
	log          []logEntry
}

// New builds an empty board of the given dimensions, seeding border and
// corner touchpoints.
func New(width, height int) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		grid:   make([]uint64, height+3),
	}
	b.touchpoints = make([][]int, height)
	for y := range b.touchpoints {
		b.touchpoints[y] = make([]int, width)
	}
	b.firstUnsetY = make([]int, width)

	for x := 0; x < width; x++ {
		b.touchpoints[0][x]++
		b.touchpoints[height-1][x]++
	}
	for y := 0; y < height; y++ {
		b.touchpoints[y][0]++
		b.touchpoints[y][width-1]++
	}
	b.touchpoints[0][0] += originTouchBonus

	return b
}

// Fits reports whether variant can be placed at (x0, y0) without overlapping
// any already-occupied cell. Runs as an AND of the shifted variant mask against
// the board's rows, so it stays constant time regardless of board size.
func (b *Board) Fits(v *totem.Variant, x0, y0 int) bool {
	for dy := 0; dy < len(v.RowMasks); dy++ {
		shifted := v.RowMasks[dy] >> uint(x0)
		if shifted&b.grid[y0+dy] != 0 {
			return false
		}
	}
	return true
}

// NumTouchpoints sums the touchpoint counts of the cells variant would
// occupy at (x0, y0).
func (b *Board) NumTouchpoints(v *totem.Variant, x0, y0 int) int {
	total := 0
	for _, c := range v.Cells {
		total += b.touchpoints[y0+c.Y][x0+c.X]
	}
	return total
}

// MoveFirstFitAbove returns the smallest y at or above the column cursors
// for variant's footprint such that it fits, or false if no such y exists
// within the board's height.
func (b *Board) MoveFirstFitAbove(v *totem.Variant, x0 int) (int, bool) {
	minY := 0
	for _, c := range v.Cells {
		candidate := b.firstUnsetY[x0+c.X] - c.Y
		if candidate < 0 {
			candidate = 0
		}
		if candidate > minY {
			minY = candidate
		}
	}
	for y := minY; y+v.Height <= b.Height; y++ {
		if b.Fits(v, x0, y) {
			return y, true
		}
	}
	return 0, false
}

// Mark places variant at (x0, y0): sets its cells, updates neighbor
// touchpoints, advances column cursors, merges its row masks into the grid,
// and appends to the undo log.
func (b *Board) Mark(v *totem.Variant, x0, y0 int) totem.Placement {
	placement := totem.Placement{Shape: v.Shape}
	for i, c := range v.Cells {
		placement.Cells[i] = totem.Point{X: x0 + c.X, Y: y0 + c.Y}
	}

	for _, c := range v.Cells {
		x, y := x0+c.X, y0+c.Y
		if y > 0 {
			b.touchpoints[y-1][x]++
		}
		if y+1 < b.Height {
			b.touchpoints[y+1][x]++
		}
		if x > 0 {
			b.touchpoints[y][x-1]++
		}
		if x+1 < b.Width {
			b.touchpoints[y][x+1]++
		}
	}

	for dy := 0; dy < len(v.RowMasks); dy++ {
		b.grid[y0+dy] |= v.RowMasks[dy] >> uint(x0)
	}

	touchedCols := make(map[int]bool, len(v.Cells))
	for _, c := range v.Cells {
		touchedCols[x0+c.X] = true
	}
	for x := range touchedCols {
		b.recomputeColumnCursor(x)
	}

	b.log = append(b.log, logEntry{placement: placement, x0: x0, y0: y0, variant: v})
	return placement
}

// Unmark reverses the most recent Mark call. Callers must undo in exact
// reverse order of marking.
func (b *Board) Unmark() {
	assert.Assert(len(b.log) > 0, "unmark called on empty board log")
	entry := b.log[len(b.log)-1]
	b.log = b.log[:len(b.log)-1]
	v, x0, y0 := entry.variant, entry.x0, entry.y0

	for dy := 0; dy < len(v.RowMasks); dy++ {
		b.grid[y0+dy] &^= v.RowMasks[dy] >> uint(x0)
	}

	for _, c := range v.Cells {
		x, y := x0+c.X, y0+c.Y
		if y > 0 {
			b.touchpoints[y-1][x]--
		}
		if y+1 < b.Height {
			b.touchpoints[y+1][x]--
		}
		if x > 0 {
			b.touchpoints[y][x-1]--
		}
		if x+1 < b.Width {
			b.touchpoints[y][x+1]--
		}
	}

	for x := 0; x < b.Width; x++ {
		b.recomputeColumnCursor(x)
	}
}

// recomputeColumnCursor scans column x from the bottom, used by Unmark to
// restore firstUnsetY without keeping a full history stack per column.
func (b *Board) recomputeColumnCursor(x int) {
	bit := uint64(1) << uint(63-x)
	y := 0
	for y < b.Height && b.grid[y]&bit != 0 {
		y++
	}
	b.firstUnsetY[x] = y
}

// Placements returns the placement log in the order pieces were marked.
func (b *Board) Placements() []totem.Placement {
	out := make([]totem.Placement, len(b.log))
	for i, e := range b.log {
		out[i] = e.placement
	}
	return out
}

// Len returns the number of pieces currently marked on the board.
func (b *Board) Len() int {
	return len(b.log)
}

// String renders the board as an ASCII grid for debugging, one letter per
// occupied cell and '.' for empty, row 0 at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	occupant := make([][]rune, b.Height)
	for y := range occupant {
		occupant[y] = make([]rune, b.Width)
		for x := range occupant[y] {
			occupant[y][x] = '.'
		}
	}
	for _, e := range b.log {
		for _, c := range e.placement.Cells {
			occupant[c.Y][c.X] = rune(e.placement.Shape.String()[0])
		}
	}
	for y := b.Height - 1; y >= 0; y-- {
		sb.WriteString(string(occupant[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
