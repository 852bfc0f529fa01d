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

package config

import (
	"runtime"

	"github.com/JesseEmond/blitz-2022-inscription/internal/util"
)

// solverConfiguration is a data structure to hold the configuration of an
// instance of the hybrid solver.
type solverConfiguration struct {
	// Concurrency
	UseMultithreading bool
	Workers           int // 0 means "derive from NumCPU"

	// Exhaustive backend
	ExhaustiveMaxTotems int

	// Greedy backend
	GreedyAttemptsSmall int // used when N < GreedyAttemptsThreshold
	GreedyAttemptsLarge int // used when N >= GreedyAttemptsThreshold
	GreedyAttemptsThreshold int

	// Rectangle-packing / MCTS backend
	UseRectPacking       bool
	RectInventoryPath    string
	RectInventoryMaxArea int
	SubsetSumMaxBacktracks int
	SubsetSumMaxCombosPerShuffle int
	SubsetSumShuffles           int
	McstRollouts int

	// Dispatcher fallback
	FallbackAreaMultiplier int
}

// sets defaults which might be overwritten by the config file
func init() {
	Settings.Solver.UseMultithreading = true
	Settings.Solver.Workers = 0

	Settings.Solver.ExhaustiveMaxTotems = 8

	Settings.Solver.GreedyAttemptsSmall = 1000
	Settings.Solver.GreedyAttemptsLarge = 100
	Settings.Solver.GreedyAttemptsThreshold = 256

	Settings.Solver.UseRectPacking = true
	Settings.Solver.RectInventoryPath = "./precomputed_area_32.json"
	Settings.Solver.RectInventoryMaxArea = 32
	Settings.Solver.SubsetSumMaxBacktracks = 50_000
	Settings.Solver.SubsetSumMaxCombosPerShuffle = 5
	Settings.Solver.SubsetSumShuffles = 5
	Settings.Solver.McstRollouts = 7

	Settings.Solver.FallbackAreaMultiplier = 4
}

// setupSolver applies defaults for values not explicitly set after reading
// the configuration file.
func setupSolver() {
	if Settings.Solver.Workers <= 0 {
		Settings.Solver.Workers = util.Max(runtime.NumCPU()-1, 1)
	}
}
