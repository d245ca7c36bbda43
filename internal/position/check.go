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
	. "github.com/anthropics/chessgo/internal/types"
)

// IsAttacked reports whether sq is attacked by any piece of color by. It
// places a "super piece" of every kind on sq and checks whether it would
// see a matching enemy piece, per spec.md §4.5.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if PawnAttacks(by.Flip(), sq)&p.PiecesBB(by, Pawn) != 0 {
		return true
	}
	if KnightAttacks(sq)&p.PiecesBB(by, Knight) != 0 {
		return true
	}
	if KingAttacks(sq)&p.PiecesBB(by, King) != 0 {
		return true
	}
	bishopsQueens := p.PiecesBB(by, Bishop) | p.PiecesBB(by, Queen)
	if bishopsQueens != 0 && SliderAttacks(Bishop, sq, p.allBB)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.PiecesBB(by, Rook) | p.PiecesBB(by, Queen)
	if rooksQueens != 0 && SliderAttacks(Rook, sq, p.allBB)&rooksQueens != 0 {
		return true
	}
	return false
}

// AttacksBy returns the union of every attack set of color by - used by
// castling legality to compute the "taboo" squares an opponent covers.
func (p *Position) AttacksBy(by Color) Bitboard {
	var attacks Bitboard
	attacks |= PawnAttacksFromSet(p.PiecesBB(by, Pawn), by)
	attacks |= KnightAttacksFromSet(p.PiecesBB(by, Knight))
	attacks |= KingAttacksFromSet(p.PiecesBB(by, King))
	bb := p.PiecesBB(by, Bishop) | p.PiecesBB(by, Queen)
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLsb()
		attacks |= SliderAttacks(Bishop, sq, p.allBB)
	}
	bb = p.PiecesBB(by, Rook) | p.PiecesBB(by, Queen)
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLsb()
		attacks |= SliderAttacks(Rook, sq, p.allBB)
	}
	return attacks
}

// InCheck reports whether the king of color c is attacked by the opponent.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.kingSquare[c], c.Flip())
}

// IsRepetition reports whether the current position's hash has occurred at
// least n times in the recorded game history, counting the current
// occurrence itself (SPEC_FULL.md §11).
func (p *Position) IsRepetition(n int) bool {
	if p.historyLen == 0 {
		return false
	}
	count := 1
	// only even-ply-distance entries can repeat the same side-to-move
	// position; the halfmove clock bounds how far back an irreversible move
	// cuts off any possible repetition.
	limit := (p.historyLen - 1) - p.halfmoveClock
	if limit < 0 {
		limit = 0
	}
	for i := p.historyLen - 3; i >= limit; i -= 2 {
		if p.repetitionHistory[i] == p.hash {
			count++
			if count >= n {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate: K v K, K v K+minor, and K+minor v K+minor are all
// detected (SPEC_FULL.md §11, beyond the bare "only kings" case).
func (p *Position) HasInsufficientMaterial() bool {
	if p.PiecesBB(White, Pawn) != 0 || p.PiecesBB(Black, Pawn) != 0 {
		return false
	}
	if p.PiecesBB(White, Rook) != 0 || p.PiecesBB(Black, Rook) != 0 {
		return false
	}
	if p.PiecesBB(White, Queen) != 0 || p.PiecesBB(Black, Queen) != 0 {
		return false
	}
	whiteMinors := p.PiecesBB(White, Knight).PopCount() + p.PiecesBB(White, Bishop).PopCount()
	blackMinors := p.PiecesBB(Black, Knight).PopCount() + p.PiecesBB(Black, Bishop).PopCount()
	return whiteMinors <= 1 && blackMinors <= 1
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached the
// fifty-move (100 ply) threshold, per spec.md §4.10.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfmoveClock >= 100
}
