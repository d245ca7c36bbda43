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

package transpositiontable

import . "github.com/anthropics/chessgo/internal/types"

// Bound classifies how a stored score relates to the search window that
// produced it, per the classical alpha-beta storage convention.
type Bound uint8

const (
	// BoundNone marks an empty slot.
	BoundNone Bound = iota
	// BoundExact is an interior score that strictly improved alpha without
	// a cutoff: the true minimax value.
	BoundExact
	// BoundUpper ("alpha upper bound") means no move exceeded alpha: the
	// true value is at most the stored score.
	BoundUpper
	// BoundLower ("beta lower bound") means a beta cutoff was taken: the
	// true value is at least the stored score.
	BoundLower
)

// Entry is one transposition table slot: 64-bit hash, depth, score, bound,
// and best move. Kept deliberately narrow (move is a uint32) so a table of
// many millions of entries stays cache-friendly.
type Entry struct {
	Key   Key
	Move  Move
	Score Value
	Depth int8
	Bound Bound
}

// Empty reports whether this slot has never been written.
func (e *Entry) Empty() bool { return e.Bound == BoundNone }
