// +build !debug

/*
 * totems - a tetromino packing solver
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package assert is a helper to allow invariant checks in a more standardized
// and simple manner. Using it makes it clear that a check is only meant for
// non production settings (board/bag invariants are expensive to check on
// every placement).
package assert

// DEBUG if this is set to "true" asserts are evaluated
const DEBUG = false

// Assert does nothing in builds without the "debug" tag; the debug build's
// Assert panics with the given message if test is false. Go still evaluates arguments
// (e.g. value.String()) to calls to this even when DEBUG is false, so it is
// necessary to also wrap call sites in `if assert.DEBUG { ... }` to really
// avoid any run time impact - the compiler then eliminates the whole
// statement since DEBUG is a const.
// Example:
//  if assert.DEBUG {
//    assert.Assert(n >= 0, "negative count for shape %s", tag)
//  }
func Assert(test bool, msg string, a ...interface{}) {}
