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

// Package deadends implements a cache of residual-bag fingerprints known
// to admit no rectangle combination, so a subset-sum search can skip
// re-exploring them. Modeled on the engine's transposition table, but
// scoped to a single search rather than shared across many.
package deadends

// Set is a cache of fingerprints known to be dead ends. Not safe for
// concurrent use; each search owns its own Set.
type Set struct {
	entries map[uint64]struct{}
	Stats   Stats
}

// Stats holds usage counters for a Set, mirroring the engine's tt stats.
type Stats struct {
	Probes int
	Hits   int
	Misses int
	Puts   int
}

// New creates an empty dead-end set.
func New() *Set {
	return &Set{entries: make(map[uint64]struct{})}
}

// Contains reports whether fingerprint is a known dead end.
func (s *Set) Contains(fingerprint uint64) bool {
	s.Stats.Probes++
	if _, ok := s.entries[fingerprint]; ok {
		s.Stats.Hits++
		return true
	}
	s.Stats.Misses++
	return false
}

// Insert records fingerprint as a known dead end.
func (s *Set) Insert(fingerprint uint64) {
	s.Stats.Puts++
	s.entries[fingerprint] = struct{}{}
}

// Len returns the number of recorded dead ends.
func (s *Set) Len() int {
	return len(s.entries)
}

// Clear empties the set and resets its stats.
func (s *Set) Clear() {
	s.entries = make(map[uint64]struct{})
	s.Stats = Stats{}
}
