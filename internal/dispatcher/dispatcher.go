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

// Package dispatcher picks, for a given piece bag and candidate box
// dimensions, the cheapest backend able to solve it, fans out to worker
// goroutines when the backend supports it, and falls back to an oversized
// greedy attempt if every candidate dimension fails.
package dispatcher

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/JesseEmond/blitz-2022-inscription/internal/config"
	"github.com/JesseEmond/blitz-2022-inscription/internal/exhaustive"
	"github.com/JesseEmond/blitz-2022-inscription/internal/greedy"
	myLogging "github.com/JesseEmond/blitz-2022-inscription/internal/logging"
	"github.com/JesseEmond/blitz-2022-inscription/internal/rectinventory"
	"github.com/JesseEmond/blitz-2022-inscription/internal/rectpack"
	"github.com/JesseEmond/blitz-2022-inscription/internal/scoring"
	"github.com/JesseEmond/blitz-2022-inscription/internal/totem"
	"github.com/JesseEmond/blitz-2022-inscription/internal/util"
)

// backend identifies which packing strategy try_solve routed an attempt to.
type backend int

const (
	backendExhaustive backend = iota
	backendGreedy
	backendRectPack
)

// Solver is the hybrid dispatcher: it owns one instance of each backend and
// the precomputed optimal-dimensions table, and exposes the polymorphic
// solver capability set (solve, try_solve) the backends themselves share.
type Solver struct {
	log *logging.Logger

	optimalDims *scoring.OptimalDimensions
	exhaustive  *exhaustive.Solver
	greedy      *greedy.Solver
	rectPack    *rectpack.Solver // nil if the inventory could not be loaded

	useMultithreading bool
	workers           int
	// sem bounds the total number of in-flight worker goroutines across
	// concurrent Solve calls, so a burst of questions can't oversubscribe
	// the machine.
	sem *semaphore.Weighted
}

// New builds a dispatcher, loading the rectangle inventory if configured.
// A missing or corrupt inventory file is not fatal: the rectangle-packing
// backend is simply left unavailable and the dispatcher degrades to the
// greedy backend for the instances that would have used it.
func New() *Solver {
	config.Setup()
	log := myLogging.GetDispatchLog()

	s := &Solver{
		log:               log,
		optimalDims:       scoring.NewOptimalDimensions(),
		exhaustive:        exhaustive.New(),
		greedy:            greedy.New(),
		useMultithreading: config.Settings.Solver.UseMultithreading,
		workers:           config.Settings.Solver.Workers,
		sem:               semaphore.NewWeighted(int64(maxInt(config.Settings.Solver.Workers, 1) * 4)),
	}

	if config.Settings.Solver.UseRectPacking {
		inv, err := rectinventory.LoadFile(config.Settings.Solver.RectInventoryPath)
		if err != nil {
			log.Warningf("rectangle inventory unavailable (%v), disabling rectangle-packing backend", err)
		} else {
			s.rectPack = rectpack.New(inv,
				config.Settings.Solver.SubsetSumShuffles,
				config.Settings.Solver.SubsetSumMaxCombosPerShuffle,
				config.Settings.Solver.SubsetSumMaxBacktracks,
				config.Settings.Solver.McstRollouts)
		}
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// selectBackend implements the backend-selection rule of try_solve: small
// instances go exhaustive, perfect-fit hard instances of a size the
// rectangle inventory was built for go to rectangle-packing (if available),
// everything else is greedy.
func (s *Solver) selectBackend(width, height int, bag totem.Bag) backend {
	n := bag.Total()
	if n <= config.Settings.Solver.ExhaustiveMaxTotems {
		return backendExhaustive
	}
	perfect := 4*n == width*height
	if s.rectPack != nil && perfect && (n == 64 || n == 256) {
		return backendRectPack
	}
	return backendGreedy
}

// TrySolve is a single-size attempt: decide the right backend for (width,
// height, bag), optionally fanning out across worker goroutines, and
// return the first placement list found.
func (s *Solver) TrySolve(width, height int, bag totem.Bag) ([]totem.Placement, bool) {
	runID := uuid.New().String()[:8]
	backend := s.selectBackend(width, height, bag)
	n := bag.Total()

	switch backend {
	case backendExhaustive:
		s.log.Debugf("[%s] exhaustive %dx%d, %d totems", runID, width, height, n)
		return s.exhaustive.TrySolve(width, height, bag)
	case backendRectPack:
		s.log.Debugf("[%s] rect-packing %dx%d, %d totems", runID, width, height, n)
		return s.runParallel(runID, func(rng *rand.Rand) ([]totem.Placement, bool) {
			return s.rectPack.TrySolve(width, height, bag, rng)
		})
	default:
		s.log.Debugf("[%s] greedy %dx%d, %d totems", runID, width, height, n)
		attempts := config.Settings.Solver.GreedyAttemptsSmall
		if n >= config.Settings.Solver.GreedyAttemptsThreshold {
			attempts = config.Settings.Solver.GreedyAttemptsLarge
		}
		return s.runParallel(runID, func(rng *rand.Rand) ([]totem.Placement, bool) {
			return s.greedy.TrySolve(width, height, bag, attempts, rng)
		})
	}
}

// runParallel fans out attempt across K worker goroutines (K = workers, a
// rough physical-cores-minus-one count) if multithreading is enabled,
// returning the first success. Each worker gets its own entropy-seeded
// random generator: generators are never shared across goroutines. A
// panicking worker is recovered and treated as a failed attempt so one bad
// worker cannot take down the whole dispatch.
func (s *Solver) runParallel(runID string, attempt func(rng *rand.Rand) ([]totem.Placement, bool)) ([]totem.Placement, bool) {
	newRng := func() *rand.Rand {
		var seed [8]byte
		_, _ = cryptorand.Read(seed[:])
		return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
	}
	if !s.useMultithreading {
		return attempt(newRng())
	}

	type result struct {
		placements []totem.Placement
		ok         bool
	}
	results := make(chan result, s.workers)
	var wg sync.WaitGroup
	// found lets a worker that just finished skip spawning further siblings
	// still waiting on the semaphore, mirroring the teacher's isRunning stop
	// flag for an in-progress search.
	found := util.NewBool(false)

	for i := 0; i < s.workers; i++ {
		if found.Load() {
			break
		}
		if err := s.sem.Acquire(context.Background(), 1); err != nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.sem.Release(1)
			defer func() {
				if r := recover(); r != nil {
					s.log.Errorf("[%s] worker panic recovered: %v", runID, r)
					results <- result{nil, false}
				}
			}()
			rng := newRng()
			placements, ok := attempt(rng)
			if ok {
				found.Store(true)
			}
			results <- result{placements, ok}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.ok {
			return r.placements, true
		}
	}
	return nil, false
}

// minDimensionsNeeded returns the componentwise max of minimum_dims(tag)
// over every shape present in the bag, used to skip candidate dimensions
// too small to even fit a single piece of some required shape.
func minDimensionsNeeded(bag totem.Bag) scoring.Dims {
	var dims scoring.Dims
	for _, shape := range totem.All {
		if bag[shape] == 0 {
			continue
		}
		w, h := totem.MinimumDims(shape)
		if w > dims.Width {
			dims.Width = w
		}
		if h > dims.Height {
			dims.Height = h
		}
	}
	return dims
}

// Solve answers a full question: iterate over candidate dimensions in
// score order, try each (and its rotation), falling back to an oversized
// greedy attempt if every candidate dimension fails.
func (s *Solver) Solve(bag totem.Bag) []totem.Placement {
	defer util.TimeTrack(time.Now(), "dispatcher.Solve")
	n := bag.Total()
	level := inferredLevel(n)
	minDims := minDimensionsNeeded(bag)

	for _, d := range s.optimalDims.LevelDims(level) {
		if minDims.Width > d.Width || minDims.Height > d.Height {
			continue
		}
		if sln, ok := s.TrySolve(d.Width, d.Height, bag); ok {
			return sln
		}
		if d.Width != d.Height {
			if sln, ok := s.TrySolve(d.Height, d.Width, bag); ok {
				return sln
			}
		}
	}

	s.log.Warningf("no candidate dimension fit %d totems, falling back to oversized greedy", n)
	side := 4 * n
	sln, ok := s.runParallel("fallback", func(rng *rand.Rand) ([]totem.Placement, bool) {
		return s.greedy.TrySolve(side, side, bag, config.Settings.Solver.GreedyAttemptsSmall, rng)
	})
	if !ok {
		s.log.Criticalf("fallback greedy attempt failed on a %dx%d board for %d totems", side, side, n)
		panic("fallback greedy attempt failed on an oversized board: this should never happen")
	}
	return sln
}

func inferredLevel(n int) int {
	level := 0
	for (1 << uint(level)) < n {
		level++
	}
	return level
}
