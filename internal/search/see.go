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
	"github.com/anthropics/chessgo/internal/position"
	. "github.com/anthropics/chessgo/internal/types"
)

// seeValue gives each piece type the material value SEE swaps on, in the
// same units as the evaluator's material table.
var seeValue = [6]Value{100, 320, 330, 500, 900, 20000}

// attackersOf returns every square (of either color) holding a piece that
// attacks sq given occupied, used to refresh the attacker set as the
// exchange uncovers new sliders behind captured pieces.
func attackersOf(p *position.Position, sq Square, occupied Bitboard) Bitboard {
	var att Bitboard
	att |= PawnAttacks(Black, sq) & p.PiecesBB(White, Pawn)
	att |= PawnAttacks(White, sq) & p.PiecesBB(Black, Pawn)
	att |= KnightAttacks(sq) & (p.PiecesBB(White, Knight) | p.PiecesBB(Black, Knight))
	att |= KingAttacks(sq) & (p.PiecesBB(White, King) | p.PiecesBB(Black, King))
	bishopsQueens := p.PiecesBB(White, Bishop) | p.PiecesBB(Black, Bishop) | p.PiecesBB(White, Queen) | p.PiecesBB(Black, Queen)
	att |= SliderAttacks(Bishop, sq, occupied) & bishopsQueens
	rooksQueens := p.PiecesBB(White, Rook) | p.PiecesBB(Black, Rook) | p.PiecesBB(White, Queen) | p.PiecesBB(Black, Queen)
	att |= SliderAttacks(Rook, sq, occupied) & rooksQueens
	return att & occupied
}

// smallestAttackerIn returns the least valuable piece of color side among
// attackers that is still on the board in occupied, and its type.
func smallestAttackerIn(attackers Bitboard, p *position.Position, side Color, occupied Bitboard) (Square, PieceType) {
	for pt := Pawn; pt <= King; pt++ {
		bb := attackers & p.PiecesBB(side, pt) & occupied
		if bb != 0 {
			return bb.Lsb(), pt
		}
	}
	return SquareNone, PieceTypeNone
}

// StaticExchange evaluates the material outcome of the full capture
// sequence on m.To(), least valuable attacker moving first on each side,
// per the classical static exchange evaluation (SEE) swap-off algorithm.
// The result is the net material gain for the side making m, assuming both
// sides play the exchange optimally (each side may also choose to stop).
func StaticExchange(p *position.Position, m Move) Value {
	to := m.To()
	from := m.From()
	mover := m.Color()

	// xraySources are piece types whose attacks on `to` can change once a
	// blocker leaves the `to` ray: pawns, bishops, rooks, queens.
	xraySources := p.PiecesBB(White, Pawn) | p.PiecesBB(Black, Pawn) |
		p.PiecesBB(White, Bishop) | p.PiecesBB(Black, Bishop) |
		p.PiecesBB(White, Rook) | p.PiecesBB(Black, Rook) |
		p.PiecesBB(White, Queen) | p.PiecesBB(Black, Queen)

	var gain [32]Value
	depth := 0

	var victimValue Value
	if m.IsEnPassant() {
		victimValue = seeValue[Pawn]
	} else {
		victimValue = seeValue[p.PieceAt(to).TypeOf()]
	}
	gain[0] = victimValue
	attackerPt := m.Piece()

	occupied := p.OccupiedBB() &^ from.Bb()
	attackers := attackersOf(p, to, occupied)
	side := mover.Flip()

	for {
		sq, pt := smallestAttackerIn(attackers, p, side, occupied)
		if sq == SquareNone || depth+1 >= len(gain) {
			break
		}
		depth++
		gain[depth] = seeValue[attackerPt] - gain[depth-1]
		attackerPt = pt
		occupied &^= sq.Bb()
		if xraySources&sq.Bb() != 0 {
			attackers |= attackersOf(p, to, occupied)
		}
		attackers &= occupied
		side = side.Flip()
	}

	for depth > 0 {
		depth--
		if -gain[depth+1] < gain[depth] {
			gain[depth] = -gain[depth+1]
		}
	}
	return gain[0]
}
