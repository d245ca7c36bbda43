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

func TestStartPositionFEN(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.FEN())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAll, p.CastlingRights())
	assert.Equal(t, SquareNone, p.EpTarget())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbq1rk1/ppp2ppp/4pn2/3p4/1bPP4/2N1PN2/PP3PPP/R1BQKB1R w KQ - 2 7",
	}
	for _, fen := range fens {
		p, err := NewPositionFromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestInvalidFENReturnsError(t *testing.T) {
	_, err := NewPositionFromFEN("not a fen")
	assert.Error(t, err)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := NewPosition()
	before := p.FEN()
	beforeHash := p.Hash()

	m := EncodeMove(SqE2, SqE4, Pawn, PieceTypeNone, White, MoveFlags{DoublePush: true}, PieceTypeNone)
	snap := p.MakeMove(m)
	assert.NotEqual(t, before, p.FEN())
	assert.Equal(t, SqE3, p.EpTarget())

	p.UnmakeMove(m, snap)
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeHash, p.Hash())
}

func TestMakeUnmakeCastling(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := p.FEN()
	beforeHash := p.Hash()

	m := EncodeMove(SqE1, SqG1, King, PieceTypeNone, White, MoveFlags{Castle: true}, PieceTypeNone)
	snap := p.MakeMove(m)
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(SqF1))
	assert.False(t, p.CastlingRights().Has(WhiteKingside))
	assert.False(t, p.CastlingRights().Has(WhiteQueenside))

	p.UnmakeMove(m, snap)
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeHash, p.Hash())
}

func TestCapturingRookClearsOpponentCastlingRight(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R2QK2R w Kkq - 0 1")
	require.NoError(t, err)
	m := EncodeMove(SqD1, SqH5, Queen, PieceTypeNone, White, MoveFlags{}, PieceTypeNone)
	p.MakeMove(m)
	m2 := EncodeMove(SqH5, SqH8, Queen, PieceTypeNone, White, MoveFlags{Capture: true}, Rook)
	p.MakeMove(m2)
	assert.False(t, p.CastlingRights().Has(BlackKingside))
	assert.True(t, p.CastlingRights().Has(BlackQueenside))
}

func TestEnPassantMakeUnmake(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	before := p.FEN()
	beforeHash := p.Hash()

	m := EncodeMove(SqE5, SqD6, Pawn, PieceTypeNone, White, MoveFlags{Capture: true, EnPassant: true}, Pawn)
	snap := p.MakeMove(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceAt(SqD6))

	p.UnmakeMove(m, snap)
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeHash, p.Hash())
}

func TestPromotionMakeUnmake(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	before := p.FEN()
	beforeHash := p.Hash()

	m := EncodeMove(SqA7, SqA8, Pawn, Queen, White, MoveFlags{}, PieceTypeNone)
	snap := p.MakeMove(m)
	assert.Equal(t, MakePiece(White, Queen), p.PieceAt(SqA8))

	p.UnmakeMove(m, snap)
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeHash, p.Hash())
}

func TestInCheckAndHasInsufficientMaterial(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.InCheck(White))

	p2, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p2.HasInsufficientMaterial())

	p3, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p3.HasInsufficientMaterial())
}

func TestIsFiftyMoveDraw(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 50")
	require.NoError(t, err)
	assert.True(t, p.IsFiftyMoveDraw())
}
