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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/anthropics/chessgo/internal/types"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := New(1)
	_, ok := tt.Probe(Key(12345))
	assert.False(t, ok)
}

func TestPutThenProbeHits(t *testing.T) {
	tt := New(1)
	m := EncodeMove(SqE2, SqE4, Pawn, PieceTypeNone, White, MoveFlags{DoublePush: true}, PieceTypeNone)
	tt.Put(Key(42), m, Value(150), 4, BoundExact)
	entry, ok := tt.Probe(Key(42))
	assert.True(t, ok)
	assert.Equal(t, m, entry.Move)
	assert.Equal(t, Value(150), entry.Score)
	assert.Equal(t, BoundExact, entry.Bound)
}

func TestAlwaysReplacePolicy(t *testing.T) {
	tt := New(1)
	// write a shallower entry over a deeper one in the slot key 7 maps to: a
	// depth-preferred table would keep the first write, this one replaces it.
	tt.Put(Key(7), MoveNone, Value(10), 8, BoundExact)
	tt.Put(Key(7), MoveNone, Value(20), 2, BoundLower)
	entry, ok := tt.Probe(Key(7))
	assert.True(t, ok)
	assert.Equal(t, Value(20), entry.Score)
	assert.Equal(t, int8(2), entry.Depth)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(1)
	tt.Put(Key(1), MoveNone, Value(1), 1, BoundExact)
	tt.Clear()
	_, ok := tt.Probe(Key(1))
	assert.False(t, ok)
	assert.Equal(t, 0, tt.Hashfull())
}

func TestProbeScoreBounds(t *testing.T) {
	exact := Entry{Score: 50, Depth: 4, Bound: BoundExact}
	score, ok := ProbeScore(exact, 3, -100, 100)
	assert.True(t, ok)
	assert.Equal(t, Value(50), score)

	// an upper bound only licenses a cutoff when the stored score already
	// fails low against alpha (score <= alpha).
	upper := Entry{Score: 50, Depth: 4, Bound: BoundUpper}
	_, ok = ProbeScore(upper, 3, 60, 100)
	assert.True(t, ok) // 50 <= 60
	_, ok = ProbeScore(upper, 3, 40, 100)
	assert.False(t, ok) // 50 <= 40 is false

	// a lower bound only licenses a cutoff when the stored score already
	// fails high against beta (score >= beta).
	lower := Entry{Score: 50, Depth: 4, Bound: BoundLower}
	_, ok = ProbeScore(lower, 3, -100, 40)
	assert.True(t, ok) // 50 >= 40
	_, ok = ProbeScore(lower, 3, -100, 60)
	assert.False(t, ok) // 50 >= 60 is false

	shallow := Entry{Score: 50, Depth: 1, Bound: BoundExact}
	_, ok = ProbeScore(shallow, 5, -100, 100)
	assert.False(t, ok)
}
