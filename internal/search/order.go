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
	"sort"

	"github.com/anthropics/chessgo/internal/position"
	. "github.com/anthropics/chessgo/internal/types"
)

// maxPly bounds the killer-move table and the search's ply-indexed state.
const maxPly = 128

// killerTable holds, per ply, the two most recent quiet moves that caused a
// beta cutoff there - the classical killer-move heuristic.
type killerTable struct {
	moves [maxPly][2]Move
}

func (k *killerTable) add(ply int, m Move) {
	if ply >= maxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerTable) isKiller(ply int, m Move) bool {
	if ply >= maxPly {
		return false
	}
	return k.moves[ply][0] == m || k.moves[ply][1] == m
}

// moveSorter adapts a MoveList plus a parallel score buffer to sort.Interface
// so ordering can swap moves in the caller's own fixed array instead of
// building a freshly allocated, scored copy of the list.
type moveSorter struct {
	list   *MoveList
	scores *[MaxMoves]int32
}

func (s moveSorter) Len() int { return s.list.Len() }

func (s moveSorter) Less(i, j int) bool { return s.scores[i] > s.scores[j] }

func (s moveSorter) Swap(i, j int) {
	mi, mj := s.list.At(i), s.list.At(j)
	s.list.Set(i, mj)
	s.list.Set(j, mi)
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}

// orderMoves scores every move in list and sorts list in place best-first:
// the transposition table move, then captures by MVV-LVA/SEE, then killer
// quiets, then the rest, matching spec.md §4.9's ordering guidance. scoreBuf
// is scratch space owned by the caller (one per Searcher, reused across
// every node) so ordering a node's move list never allocates.
func orderMoves(p *position.Position, list *MoveList, ttMove Move, ply int, killers *killerTable, useSEE bool, scoreBuf *[MaxMoves]int32) {
	n := list.Len()
	for i := 0; i < n; i++ {
		scoreBuf[i] = scoreMove(p, list.At(i), ttMove, ply, killers, useSEE)
	}
	sort.Stable(moveSorter{list: list, scores: scoreBuf})
}

const (
	scoreTTMove    = 1_000_000
	scoreGoodCap   = 100_000
	scoreKiller1   = 90_000
	scoreKiller2   = 80_000
	scoreQuietBase = 0
)

func scoreMove(p *position.Position, m Move, ttMove Move, ply int, killers *killerTable, useSEE bool) int32 {
	if m == ttMove {
		return scoreTTMove
	}
	if m.IsCapture() {
		if useSEE {
			return scoreGoodCap + int32(StaticExchange(p, m))
		}
		// MVV-LVA: most valuable victim first, least valuable attacker as
		// a tiebreak, both in coarse material units.
		victim := int32(seeValue[m.CapturedPieceType()])
		attacker := int32(seeValue[m.Piece()])
		return scoreGoodCap + victim*16 - attacker
	}
	if killers.isKiller(ply, m) {
		if killers.moves[ply][0] == m {
			return scoreKiller1
		}
		return scoreKiller2
	}
	return scoreQuietBase
}
