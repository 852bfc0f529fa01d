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

// Package rectinventory holds a precomputed library of small rectangles
// that can be exactly tiled with totems, used by the rectangle-packing
// backend to turn a hard perfect-fit instance into a smaller combinatorial
// search over whole rectangles instead of individual pieces.
package rectinventory

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/JesseEmond/blitz-2022-inscription/internal/exhaustive"
	"github.com/JesseEmond/blitz-2022-inscription/internal/logging"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
)

// Dims is a width x height pair, always stored with width <= height for a
// canonical (un-rotated) rectangle entry.
type Dims struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rectangle is a full inventory entry: its dimensions, the piece cost to
// build it, and the placement list that tiles it exactly.
type Rectangle struct {
	Dims       Dims              `json:"dims"`
	Cost       totem.Bag         `json:"cost"`
	Placements []totem.Placement `json:"placements"`
}

// Rotate returns a copy of the rectangle rotated 90 degrees clockwise: its
// width/height are swapped and every placement cell (x, y) maps to
// (y, width-1-x).
func (r Rectangle) Rotate() Rectangle {
	out := Rectangle{
		Dims:       Dims{Width: r.Dims.Height, Height: r.Dims.Width},
		Cost:       r.Cost,
		Placements: make([]totem.Placement, len(r.Placements)),
	}
	for i, p := range r.Placements {
		rotated := totem.Placement{Shape: p.Shape}
		for j, c := range p.Cells {
			rotated.Cells[j] = totem.Point{X: c.Y, Y: r.Dims.Width - 1 - c.X}
		}
		out.Placements[i] = rotated
	}
	return out
}

// Metadata is a lightweight handle into the inventory: just the dims and
// the slot index, used throughout the subset-sum and MCTS search so the
// heavier placement lists are only touched once a final solution is found.
type Metadata struct {
	Dims  Dims
	Index int
}

// IsSquare reports whether the handle's dims are square.
func (m Metadata) IsSquare() bool {
	return m.Dims.Width == m.Dims.Height
}

// Rotated returns a copy of the handle with its dims swapped.
func (m Metadata) Rotated() Metadata {
	m.Dims.Width, m.Dims.Height = m.Dims.Height, m.Dims.Width
	return m
}

// Inventory holds every precomputed rectangle plus a parallel metadata
// array of light handles into it.
type Inventory struct {
	rectangles []Rectangle
	Metadata   []Metadata
}

func newInventory(rectangles []Rectangle) *Inventory {
	metadata := make([]Metadata, len(rectangles))
	for i, r := range rectangles {
		metadata[i] = Metadata{Dims: r.Dims, Index: i}
	}
	return &Inventory{rectangles: rectangles, Metadata: metadata}
}

// Cost returns the piece cost of the rectangle a handle points to.
func (inv *Inventory) Cost(m Metadata) totem.Bag {
	return inv.rectangles[m.Index].Cost
}

// GetRectangle returns the full entry a handle points to.
func (inv *Inventory) GetRectangle(m Metadata) Rectangle {
	return inv.rectangles[m.Index]
}

// AvailableRectangles returns every handle whose cost bag can be afforded.
func (inv *Inventory) AvailableRectangles(bag totem.Bag) []Metadata {
	out := make([]Metadata, 0, len(inv.Metadata))
	for _, m := range inv.Metadata {
		if bag.CanAfford(inv.Cost(m)) {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of rectangles in the inventory.
func (inv *Inventory) Len() int {
	return len(inv.rectangles)
}

// LoadFile reads a previously built inventory from a JSON file.
func LoadFile(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rectangles []Rectangle
	if err := json.Unmarshal(data, &rectangles); err != nil {
		return nil, err
	}
	return newInventory(rectangles), nil
}

// SaveFile writes the inventory to a JSON file, creating parent
// directories if needed.
func (inv *Inventory) SaveFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(inv.rectangles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build computes every rectangle tileable with totems up to maxArea, by
// enumerating every (w, h) with w <= h, w*h <= maxArea, (w*h) mod 4 == 0,
// then every multiset of (w*h/4) shapes, calling the exhaustive solver on
// each candidate.
func Build(maxArea int) *Inventory {
	log := logging.GetLog()
	solver := exhaustive.New()
	var rectangles []Rectangle

	for w := 1; w <= maxArea; w++ {
		maxH := maxArea / w
		for h := w; h <= maxH; h++ {
			if (w*h)%4 != 0 {
				continue
			}
			numShapes := w * h / 4
			found := 0
			for _, bag := range combinationsWithReplacement(numShapes) {
				if placements, ok := solver.TrySolve(w, h, bag); ok {
					rectangles = append(rectangles, Rectangle{
						Dims:       Dims{Width: w, Height: h},
						Cost:       bag,
						Placements: placements,
					})
					found++
				}
			}
			log.Debugf("%dx%d rectangles: %d found", w, h, found)
		}
	}
	return newInventory(rectangles)
}

// combinationsWithReplacement enumerates every multiset of size n drawn
// from the seven shape tags, each as a totem.Bag of counts.
func combinationsWithReplacement(n int) []totem.Bag {
	var out []totem.Bag
	var rec func(start int, remaining int, bag totem.Bag)
	rec = func(start, remaining int, bag totem.Bag) {
		if remaining == 0 {
			out = append(out, bag)
			return
		}
		for s := start; s < totem.Count; s++ {
			bag[s]++
			rec(s, remaining-1, bag)
			bag[s]--
		}
	}
	rec(0, n, totem.Bag{})
	return out
}
