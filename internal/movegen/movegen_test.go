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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/chessgo/internal/position"
	. "github.com/anthropics/chessgo/internal/types"
)

// perft counts leaf nodes of the legal move tree to depth, used here purely
// to validate move generation correctness rather than search speed.
func perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	GenerateLegal(p, &list)
	if depth == 1 {
		return uint64(list.Len())
	}
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		snap := p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove(m, snap)
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	p := position.NewPosition()
	expected := []uint64{1, 20, 400, 8902, 197281}
	for depth, want := range expected {
		assert.Equal(t, want, perft(p, depth), "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	p, err := position.NewPositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	expected := []uint64{1, 48, 2039, 97862}
	for depth, want := range expected {
		assert.Equal(t, want, perft(p, depth), "depth %d", depth)
	}
}

func TestPerftEnPassantPosition(t *testing.T) {
	p, err := position.NewPositionFromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	expected := []uint64{1, 14, 191, 2812}
	for depth, want := range expected {
		assert.Equal(t, want, perft(p, depth), "depth %d", depth)
	}
}

func TestGenerateLegalExcludesMovesThatLeaveKingInCheck(t *testing.T) {
	p, err := position.NewPositionFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	var list MoveList
	GenerateLegal(p, &list)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, SqF2, list.At(i).To(), "king cannot step onto a square the rook covers along its rank")
	}
}

func TestCastlingBlockedWhenKingPathAttacked(t *testing.T) {
	// black rook on f8 covers f1, so white may not castle kingside.
	p, err := position.NewPositionFromFEN("5r2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	var list MoveList
	GenerateLegal(p, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, m.IsCastle(), "castling through an attacked square must be excluded")
	}
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	p, err := position.NewPositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	var list MoveList
	GenerateLegal(p, &list)
	found := false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == SqE5 && m.To() == SqD6 && m.IsEnPassant() {
			found = true
		}
	}
	assert.True(t, found, "expected en-passant capture e5xd6 to be generated")
}
