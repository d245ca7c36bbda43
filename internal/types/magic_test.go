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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRookAttacksEmptyBoard(t *testing.T) {
	attacks := SliderAttacks(Rook, SqA1, BbEmpty)
	assert.True(t, attacks.Has(SqA8))
	assert.True(t, attacks.Has(SqH1))
	assert.False(t, attacks.Has(SqB2))
}

func TestRookAttacksBlocked(t *testing.T) {
	occupied := SqA4.Bb()
	attacks := SliderAttacks(Rook, SqA1, occupied)
	assert.True(t, attacks.Has(SqA2))
	assert.True(t, attacks.Has(SqA3))
	assert.True(t, attacks.Has(SqA4)) // captures the blocker
	assert.False(t, attacks.Has(SqA5))
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	attacks := SliderAttacks(Bishop, SqD4, BbEmpty)
	assert.True(t, attacks.Has(SqA1))
	assert.True(t, attacks.Has(SqG7))
	assert.False(t, attacks.Has(SqD5))
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occupied := BbEmpty
	queen := SliderAttacks(Queen, SqD4, occupied)
	rook := SliderAttacks(Rook, SqD4, occupied)
	bishop := SliderAttacks(Bishop, SqD4, occupied)
	assert.Equal(t, rook|bishop, queen)
}

func TestKnightAndKingAttacksCornerCounts(t *testing.T) {
	assert.Equal(t, 2, KnightAttacks(SqA1).PopCount())
	assert.Equal(t, 3, KingAttacks(SqA1).PopCount())
	assert.Equal(t, 8, KnightAttacks(SqD4).PopCount())
	assert.Equal(t, 8, KingAttacks(SqD4).PopCount())
}

func TestPawnAttacksDirection(t *testing.T) {
	white := PawnAttacks(White, SqE4)
	assert.True(t, white.Has(SqD5))
	assert.True(t, white.Has(SqF5))
	black := PawnAttacks(Black, SqE4)
	assert.True(t, black.Has(SqD3))
	assert.True(t, black.Has(SqF3))
}
