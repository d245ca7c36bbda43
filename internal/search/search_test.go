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

package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/chessgo/internal/position"
	. "github.com/anthropics/chessgo/internal/types"
)

func TestFindMoveFindsMateInOne(t *testing.T) {
	// white to move, back-rank mate with Ra8#. Depth 1 cannot prove the mate:
	// the reply is resolved by quiescence, which never reaches negamax's
	// no-legal-moves check; depth 2 does.
	p, err := position.NewPositionFromFEN("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	require.NoError(t, err)
	s := NewSearcher()
	stats := s.FindMove(context.Background(), p, Limits{MaxDepth: 3})
	assert.Equal(t, SqA1, stats.BestMove.From())
	assert.Equal(t, SqA8, stats.BestMove.To())
	assert.True(t, IsMateScore(stats.BestScore, maxPly))
}

func TestFindMoveRespectsMoveTime(t *testing.T) {
	p := position.NewPosition()
	s := NewSearcher()
	start := time.Now()
	stats := s.FindMove(context.Background(), p, Limits{MaxDepth: 64, MoveTime: 50 * time.Millisecond})
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, stats.BestMove.IsValid())
}

func TestFindMoveHonorsCancelledContext(t *testing.T) {
	p := position.NewPosition()
	s := NewSearcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats := s.FindMove(ctx, p, Limits{MaxDepth: 10})
	// a pre-cancelled context should yield no completed ply.
	assert.Equal(t, 0, stats.Depth)
}

func TestStaticExchangeFavorsWinningCapture(t *testing.T) {
	// white pawn takes an undefended black knight: a clean positive SEE.
	p, err := position.NewPositionFromFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := EncodeMove(SqE4, SqD5, Pawn, PieceTypeNone, White, MoveFlags{Capture: true}, Knight)
	assert.Greater(t, int(StaticExchange(p, m)), 0)
}

func TestStaticExchangeLosingCaptureIsNegative(t *testing.T) {
	// white queen takes a pawn defended by a rook: loses the queen for a pawn.
	p, err := position.NewPositionFromFEN("4k3/8/8/3r4/3Q4/3p4/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := EncodeMove(SqD4, SqD3, Queen, PieceTypeNone, White, MoveFlags{Capture: true}, Pawn)
	assert.Less(t, int(StaticExchange(p, m)), 0)
}

func TestKillerTableTracksTwoMostRecent(t *testing.T) {
	var k killerTable
	m1 := EncodeMove(SqE2, SqE4, Pawn, PieceTypeNone, White, MoveFlags{}, PieceTypeNone)
	m2 := EncodeMove(SqD2, SqD4, Pawn, PieceTypeNone, White, MoveFlags{}, PieceTypeNone)
	m3 := EncodeMove(SqG1, SqF3, Knight, PieceTypeNone, White, MoveFlags{}, PieceTypeNone)

	k.add(0, m1)
	k.add(0, m2)
	assert.True(t, k.isKiller(0, m1))
	assert.True(t, k.isKiller(0, m2))
	assert.False(t, k.isKiller(0, m3))

	k.add(0, m3)
	assert.False(t, k.isKiller(0, m1))
	assert.True(t, k.isKiller(0, m2))
	assert.True(t, k.isKiller(0, m3))
}
