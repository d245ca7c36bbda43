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

// Package engine is the public facade over the chess engine core: position
// setup, move generation, static evaluation, and time-bounded search,
// assembled from the internal packages that each own one concern.
package engine

import (
	"context"
	"time"

	"github.com/anthropics/chessgo/internal/engineconfig"
	"github.com/anthropics/chessgo/internal/evaluator"
	"github.com/anthropics/chessgo/internal/movegen"
	"github.com/anthropics/chessgo/internal/position"
	"github.com/anthropics/chessgo/internal/search"
	. "github.com/anthropics/chessgo/internal/types"
)

// Game wraps one position plus the search state (transposition table,
// killer moves) that should persist across moves in a single game.
type Game struct {
	pos      *position.Position
	searcher *search.Searcher
}

// NewGame starts a Game from the standard chess starting position.
func NewGame() *Game {
	engineconfig.Setup()
	return &Game{pos: position.NewPosition(), searcher: search.NewSearcher()}
}

// NewGameFromFEN starts a Game from an arbitrary FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	engineconfig.Setup()
	pos, err := position.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: pos, searcher: search.NewSearcher()}, nil
}

// Position exposes the underlying position for read-only inspection.
func (g *Game) Position() *position.Position { return g.pos }

// FEN returns the current position in Forsyth-Edwards notation.
func (g *Game) FEN() string { return g.pos.FEN() }

// LegalMoves returns every legal move in the current position.
func (g *Game) LegalMoves() []Move {
	var list MoveList
	movegen.GenerateLegal(g.pos, &list)
	return append([]Move(nil), list.Slice()...)
}

// Play applies a legal move given in long algebraic notation ("e2e4",
// "a7a8q"), matching it against the legal move list so illegal or malformed
// input is rejected rather than silently corrupting the position.
func (g *Game) Play(longAlgebraic string) error {
	from, to, promo, err := ParseLongAlgebraic(longAlgebraic)
	if err != nil {
		return err
	}
	var list MoveList
	movegen.GenerateLegal(g.pos, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == from && m.To() == to && m.Promotion() == promo {
			g.pos.MakeMove(m)
			return nil
		}
	}
	return errNotLegal(longAlgebraic)
}

// Evaluate returns the static evaluation of the current position from the
// side-to-move's perspective.
func (g *Game) Evaluate() Value { return evaluator.Evaluate(g.pos) }

// FindMove runs a time-bounded search from the current position and
// returns the best move found plus the statistics of that search.
func (g *Game) FindMove(ctx context.Context, moveTime time.Duration, maxDepth int) (Move, search.Stats) {
	stats := g.searcher.FindMove(ctx, g.pos, search.Limits{MoveTime: moveTime, MaxDepth: maxDepth})
	return stats.BestMove, stats
}

// Hashfull reports the search transposition table's fill level in permille.
func (g *Game) Hashfull() int { return g.searcher.TranspositionTable().Hashfull() }

type illegalMoveError struct{ move string }

func (e *illegalMoveError) Error() string { return "engine: move not legal: " + e.move }

func errNotLegal(move string) error { return &illegalMoveError{move: move} }

// Perft counts the leaf nodes of the legal move tree rooted at pos to the
// given depth, the standard move-generator correctness benchmark.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	movegen.GenerateLegal(pos, &list)
	if depth == 1 {
		return uint64(list.Len())
	}
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		snap := pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove(m, snap)
	}
	return nodes
}
