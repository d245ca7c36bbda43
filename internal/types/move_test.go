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

func TestEncodeMoveRoundTrip(t *testing.T) {
	m := EncodeMove(SqE2, SqE4, Pawn, PieceTypeNone, White, MoveFlags{DoublePush: true}, PieceTypeNone)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Pawn, m.Piece())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
	assert.Equal(t, White, m.Color())
	assert.Equal(t, "e2e4", m.String())
}

func TestEncodeMoveCapture(t *testing.T) {
	m := EncodeMove(SqD4, SqE5, Pawn, PieceTypeNone, White, MoveFlags{Capture: true}, Knight)
	assert.True(t, m.IsCapture())
	assert.Equal(t, Knight, m.CapturedPieceType())
}

func TestEncodeMovePromotion(t *testing.T) {
	m := EncodeMove(SqA7, SqA8, Pawn, Queen, White, MoveFlags{}, PieceTypeNone)
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, "a7a8q", m.String())
}

func TestParseLongAlgebraic(t *testing.T) {
	from, to, promo, err := ParseLongAlgebraic("e7e8q")
	assert.NoError(t, err)
	assert.Equal(t, SqE7, from)
	assert.Equal(t, SqE8, to)
	assert.Equal(t, Queen, promo)

	_, _, _, err = ParseLongAlgebraic("zz")
	assert.Error(t, err)
}

func TestMoveListPushOverflowPanics(t *testing.T) {
	var list MoveList
	assert.Panics(t, func() {
		for i := 0; i <= MaxMoves; i++ {
			list.Push(MoveNone)
		}
	})
}

func TestMoveListResetAndSlice(t *testing.T) {
	var list MoveList
	list.Push(EncodeMove(SqE2, SqE4, Pawn, PieceTypeNone, White, MoveFlags{}, PieceTypeNone))
	list.Push(EncodeMove(SqD2, SqD4, Pawn, PieceTypeNone, White, MoveFlags{}, PieceTypeNone))
	assert.Equal(t, 2, list.Len())
	assert.Len(t, list.Slice(), 2)
	list.Reset()
	assert.Equal(t, 0, list.Len())
}
