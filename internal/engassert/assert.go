/*
 * chessgo - a chess engine core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 chessgo authors
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

// Package engassert is a helper to allow assertion checks in the hot paths
// of the engine (bitboard partition invariants, TT full-hash checks) without
// paying their cost in release builds.
package engassert

import "fmt"

// DEBUG gates every assertion in the engine. The Go compiler eliminates
// calls guarded by "if engassert.DEBUG {}" entirely when this is false, so
// callers should always wrap Assert in such a guard in hot paths:
//
//	if engassert.DEBUG {
//		engassert.Assert(bb.PopCount() <= 64, "bad bitboard")
//	}
const DEBUG = false

// Assert panics with the formatted message if test is false. Only call this
// guarded by "if engassert.DEBUG {}" in hot paths - arguments are always
// evaluated even when DEBUG is false.
func Assert(test bool, format string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(format, a...))
	}
}
