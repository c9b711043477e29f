// +build !debug

//
// Corvid - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
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

// Package assert gives the rest of the engine a way to state invariants
// that only run in debug builds, so release builds never pay for them.
package assert

import "fmt"

func init() {
	fmt.Println("RELEASE MODE")
}

// DEBUG gates whether Assert calls are wired to actually check anything.
// Call sites must additionally guard with "if assert.DEBUG {" so the
// compiler can eliminate the arguments to Assert entirely in a release
// build; DEBUG alone only prevents the no-op body from firing.
const DEBUG = false

// Assert panics with msg if test is false. A no-op in release builds.
//
//  if assert.DEBUG {
//    assert.Assert(v > 0, "expected positive value, got %d", v)
//  }
func Assert(test bool, msg string, a ...interface{}) {}
