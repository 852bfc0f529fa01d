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

// Package config holds globally available configuration variables, either
// set by defaults, read from a config file, or set by the embedding
// application before the solver is constructed.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/JesseEmond/blitz-2022-inscription/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory)
	ConfFile = "./totems.toml"

	// LogLevel defines the general log level - can be overridden by the config file
	LogLevel = 4 // logging.INFO

	// DispatchLogLevel defines the dispatcher's own log level
	DispatchLogLevel = 4

	// TestLogLevel defines the test log level
	TestLogLevel = 5 // logging.DEBUG

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Solver solverConfiguration
}

// Setup reads the configuration file and applies settings from it, falling
// back to defaults for anything it does not specify.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found, using defaults (", err, ")")
	}
	setupSolver()
	initialized = true
}

// String prints out the current configuration settings and values, using
// reflection to read struct fields and their values.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Solver config:\n")
	v := reflect.ValueOf(&c.Solver).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
	return b.String()
}
