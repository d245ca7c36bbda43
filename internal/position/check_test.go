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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/anthropics/chessgo/internal/types"
)

// TestIsRepetitionThreefold shuffles a knight back and forth until the
// starting position's hash has occurred three times (the initial position
// plus two returns to it).
func TestIsRepetitionThreefold(t *testing.T) {
	p := NewPosition()
	assert.False(t, p.IsRepetition(3))

	shuffle := []Move{
		EncodeMove(SqG1, SqF3, Knight, PieceTypeNone, White, MoveFlags{}, PieceTypeNone),
		EncodeMove(SqG8, SqF6, Knight, PieceTypeNone, Black, MoveFlags{}, PieceTypeNone),
		EncodeMove(SqF3, SqG1, Knight, PieceTypeNone, White, MoveFlags{}, PieceTypeNone),
		EncodeMove(SqF6, SqG8, Knight, PieceTypeNone, Black, MoveFlags{}, PieceTypeNone),
	}
	for round := 0; round < 2; round++ {
		for _, m := range shuffle {
			p.MakeMove(m)
		}
	}
	assert.True(t, p.IsRepetition(3))
}

func TestAttacksByIncludesRookAttacks(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	require.NoError(t, err)
	whiteAttacks := p.AttacksBy(White)
	assert.True(t, whiteAttacks.Has(SqD5)) // rook on d2 sees the black queen on d5
}
