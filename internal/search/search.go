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

// Package search finds the best move in a position via iterative-deepening
// negamax with alpha-beta pruning, a transposition table, quiescence search
// at the horizon, and SEE/MVV-LVA move ordering. Search is single-threaded
// by design (SPEC_FULL.md §7): one Searcher drives one tree at a time.
package search

import (
	"context"
	"time"

	"github.com/anthropics/chessgo/internal/engineconfig"
	"github.com/anthropics/chessgo/internal/enginelog"
	"github.com/anthropics/chessgo/internal/evaluator"
	"github.com/anthropics/chessgo/internal/movegen"
	"github.com/anthropics/chessgo/internal/position"
	"github.com/anthropics/chessgo/internal/transpositiontable"
	. "github.com/anthropics/chessgo/internal/types"
)

// Limits bounds one search: a fixed depth, a wall-clock budget, or both. A zero Limits means "search until ctx is cancelled".
type Limits struct {
	MaxDepth int
	MoveTime time.Duration
}

// Stats reports what one FindMove call did, surfaced to callers for
// logging/UCI-style reporting.
type Stats struct {
	Nodes     uint64
	Depth     int
	BestMove  Move
	BestScore Value
	Elapsed   time.Duration
}

// Searcher owns one transposition table and the mutable per-search state
// (killers, node counter) needed across an iterative-deepening run. It is
// not safe for concurrent use - spec.md and SPEC_FULL.md §7 both call for a
// single search at a time per Searcher.
type Searcher struct {
	tt       *transpositiontable.Table
	killers  killerTable
	nodes    uint64
	stop     bool
	scoreBuf [MaxMoves]int32
}

// NewSearcher builds a Searcher with its own transposition table sized per
// engineconfig.Settings.TT.SizeMb.
func NewSearcher() *Searcher {
	return &Searcher{tt: transpositiontable.New(engineconfig.Settings.TT.SizeMb)}
}

// TranspositionTable exposes the underlying table, e.g. for Hashfull
// reporting by the owning engine facade.
func (s *Searcher) TranspositionTable() *transpositiontable.Table { return s.tt }

// FindMove runs iterative deepening from the root position until ctx is
// cancelled, limits.MaxDepth is reached, or limits.MoveTime elapses,
// whichever comes first. It never returns a move from a partial, unfinished
// ply: each depth's result only replaces the previous one once that depth's
// full root search completes (spec.md §5/§7).
func (s *Searcher) FindMove(ctx context.Context, pos *position.Position, limits Limits) Stats {
	log := enginelog.GetSearchLog()
	s.nodes = 0
	s.stop = false

	var deadline <-chan time.Time
	if limits.MoveTime > 0 {
		timer := time.NewTimer(limits.MoveTime)
		defer timer.Stop()
		deadline = timer.C
	}

	start := time.Now()
	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = maxPly - 1
	}

	var best Stats
	for depth := 1; depth <= maxDepth; depth++ {
		select {
		case <-ctx.Done():
			return best
		case <-deadline:
			return best
		default:
		}

		rootMove, rootScore, completed := s.searchRoot(ctx, deadline, pos, depth)
		if !completed {
			return best
		}
		best = Stats{
			Nodes:     s.nodes,
			Depth:     depth,
			BestMove:  rootMove,
			BestScore: rootScore,
			Elapsed:   time.Since(start),
		}
		log.Debugf("depth=%d nodes=%d score=%d move=%s elapsed=%s", depth, s.nodes, rootScore, rootMove, best.Elapsed)
		if IsMateScore(rootScore, maxPly) {
			break
		}
	}
	return best
}

// searchRoot runs one full iterative-deepening ply at the root and reports
// whether it ran to completion (false means the ply was cut short by ctx or
// the deadline and its result must be discarded).
func (s *Searcher) searchRoot(ctx context.Context, deadline <-chan time.Time, pos *position.Position, depth int) (Move, Value, bool) {
	var moves MoveList
	movegen.GenerateLegal(pos, &moves)
	if moves.Len() == 0 {
		return 0, ValueZero, true
	}

	var ttMove Move
	if entry, ok := s.tt.Probe(pos.Hash()); ok {
		ttMove = entry.Move
	}
	orderMoves(pos, &moves, ttMove, 0, &s.killers, engineconfig.Settings.Search.UseSEE, &s.scoreBuf)

	alpha, beta := Value(-ValueInfinite), Value(ValueInfinite)
	var bestMove Move
	bestScore := Value(-ValueInfinite)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if s.shouldStop(ctx, deadline) {
			return 0, 0, false
		}
		snap := pos.MakeMove(m)
		score := -s.negamax(ctx, deadline, pos, depth-1, 1, -beta, -alpha)
		pos.UnmakeMove(m, snap)
		if s.stop {
			return 0, 0, false
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	bound := transpositiontable.BoundExact
	s.tt.Put(pos.Hash(), bestMove, bestScore, depth, bound)
	return bestMove, bestScore, true
}

func (s *Searcher) shouldStop(ctx context.Context, deadline <-chan time.Time) bool {
	if s.stop {
		return true
	}
	every := engineconfig.Settings.Search.NodePollEvery
	if every <= 0 {
		every = 1
	}
	if s.nodes%uint64(every) != 0 {
		return false
	}
	select {
	case <-ctx.Done():
		s.stop = true
	case <-deadline:
		s.stop = true
	default:
	}
	return s.stop
}

// negamax implements alpha-beta negamax search to depth, returning the
// score from the perspective of the side to move at pos, per spec.md §4.9.
func (s *Searcher) negamax(ctx context.Context, deadline <-chan time.Time, pos *position.Position, depth, ply int, alpha, beta Value) Value {
	s.nodes++
	if s.shouldStop(ctx, deadline) {
		return ValueZero
	}

	if ply > 0 {
		if pos.IsFiftyMoveDraw() || pos.HasInsufficientMaterial() || pos.IsRepetition(3) {
			return ValueZero
		}
	}

	origAlpha := alpha
	var ttMove Move
	if entry, ok := s.tt.Probe(pos.Hash()); ok {
		ttMove = entry.Move
		if engineconfig.Settings.Search.UseTTMove {
			if score, usable := transpositiontable.ProbeScore(entry, depth, alpha, beta); usable {
				return score
			}
		}
	}

	if depth <= 0 {
		if engineconfig.Settings.Search.UseQuiescence {
			return s.quiescence(ctx, deadline, pos, ply, alpha, beta, 0)
		}
		return evaluator.Evaluate(pos)
	}

	var moves MoveList
	movegen.GenerateLegal(pos, &moves)
	if moves.Len() == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return -ValueMate + Value(ply)
		}
		return ValueZero
	}

	orderMoves(pos, &moves, ttMove, ply, &s.killers, engineconfig.Settings.Search.UseSEE, &s.scoreBuf)
	best := Value(-ValueInfinite)
	var bestMove Move

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		snap := pos.MakeMove(m)
		score := -s.negamax(ctx, deadline, pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove(m, snap)
		if s.stop {
			return ValueZero
		}
		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if engineconfig.Settings.Search.UseKillers && !m.IsCapture() {
				s.killers.add(ply, m)
			}
			break
		}
	}

	bound := transpositiontable.BoundExact
	switch {
	case best <= origAlpha:
		bound = transpositiontable.BoundUpper
	case best >= beta:
		bound = transpositiontable.BoundLower
	}
	s.tt.Put(pos.Hash(), bestMove, best, depth, bound)
	return best
}

// quiescence extends search along capturing lines past the nominal horizon
// to avoid misjudging a position mid-exchange, per SPEC_FULL.md §11. It is
// bounded to MaxQDepth plies past the horizon and only considers captures.
func (s *Searcher) quiescence(ctx context.Context, deadline <-chan time.Time, pos *position.Position, ply int, alpha, beta Value, qdepth int) Value {
	s.nodes++
	if s.shouldStop(ctx, deadline) {
		return ValueZero
	}

	standPat := evaluator.Evaluate(pos)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth >= engineconfig.Settings.Search.MaxQDepth {
		return standPat
	}

	var pseudo MoveList
	movegen.GeneratePseudoLegal(pos, &pseudo)
	us := pos.SideToMove()
	orderMoves(pos, &pseudo, 0, ply, &s.killers, engineconfig.Settings.Search.UseSEE, &s.scoreBuf)

	best := standPat
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if !m.IsCapture() {
			continue
		}
		if engineconfig.Settings.Search.UseSEE && StaticExchange(pos, m) < 0 {
			continue
		}
		snap := pos.MakeMove(m)
		if pos.InCheck(us) {
			pos.UnmakeMove(m, snap)
			continue
		}
		score := -s.quiescence(ctx, deadline, pos, ply+1, -beta, -alpha, qdepth+1)
		pos.UnmakeMove(m, snap)
		if s.stop {
			return ValueZero
		}
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
