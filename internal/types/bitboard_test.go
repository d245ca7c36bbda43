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

func TestBitboardSetClearHas(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(SqE4)
	assert.True(t, bb.Has(SqE4))
	assert.False(t, bb.Has(SqE5))
	bb = bb.Clear(SqE4)
	assert.False(t, bb.Has(SqE4))
}

func TestBitboardPopCount(t *testing.T) {
	assert.Equal(t, 0, BbEmpty.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 8, Rank4.PopCount())
}

func TestBitboardLsbPopLsb(t *testing.T) {
	bb := SqC3.Bb() | SqG7.Bb()
	assert.Equal(t, SqC3, bb.Lsb())
	sq, rest := bb.PopLsb()
	assert.Equal(t, SqC3, sq)
	assert.Equal(t, SqG7, rest.Lsb())
	sq, rest = rest.PopLsb()
	assert.Equal(t, SqG7, sq)
	assert.Equal(t, BbEmpty, rest)
}

func TestFileRankMasks(t *testing.T) {
	assert.True(t, FileA.Has(SqA1))
	assert.True(t, FileA.Has(SqA8))
	assert.False(t, FileA.Has(SqB1))
	assert.True(t, Rank1.Has(SqA1))
	assert.True(t, Rank1.Has(SqH1))
	assert.False(t, Rank1.Has(SqA2))
}
