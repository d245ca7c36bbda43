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
	"github.com/anthropics/chessgo/internal/engassert"
	. "github.com/anthropics/chessgo/internal/types"
)

// rightClearedBySquare returns the castling rights, if any, that are lost
// when a piece leaves or a capture lands on sq: both of a side's rights for
// its king's origin square, a single right for a rook's origin corner. Used both when a piece moves from its own corner and,
// per SPEC_FULL.md §12, when an enemy rook is captured on its home square.
func rightClearedBySquare(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return WhiteKingside | WhiteQueenside
	case SqH1:
		return WhiteKingside
	case SqA1:
		return WhiteQueenside
	case SqE8:
		return BlackKingside | BlackQueenside
	case SqH8:
		return BlackKingside
	case SqA8:
		return BlackQueenside
	default:
		return CastlingNone
	}
}

// MakeMove applies m to the position in place and returns a Snapshot that
// UnmakeMove needs to reverse it exactly.
func (p *Position) MakeMove(m Move) Snapshot {
	from := m.From()
	to := m.To()
	mover := p.sideToMove
	fromPc := p.board[from]
	capturedPc := PieceNone
	if m.IsCapture() && !m.IsEnPassant() {
		capturedPc = p.board[to]
	}

	snap := Snapshot{
		castling:      p.castling,
		epTarget:      p.epTarget,
		halfmoveClock: p.halfmoveClock,
		hash:          p.hash,
		captured:      capturedPc,
		historyLen:    p.historyLen,
	}

	priorEp := p.epTarget
	priorCastling := p.castling

	// clear en-passant target before any move-type-specific logic resets it
	p.epTarget = SquareNone

	switch {
	case m.IsCastle():
		p.doCastle(mover, from, to)
	case m.IsEnPassant():
		p.doEnPassant(mover, from, to)
	case m.Promotion() != PieceTypeNone:
		p.doPromotion(m, mover, from, to)
	default:
		p.doNormal(m, mover, from, to, fromPc)
	}

	// castling-right bookkeeping common to every move type: clear rights
	// touched by the mover's origin/destination and by a capture landing on
	// an enemy rook's home square (SPEC_FULL.md §12 open-question resolution).
	if p.castling != CastlingNone {
		cleared := rightClearedBySquare(from) | rightClearedBySquare(to)
		p.castling &^= cleared
	}

	p.sideToMove = mover.Flip()
	if mover == Black {
		p.fullmoveNumber++
	}

	p.hash ^= ZobristSide()
	if priorEp != SquareNone {
		p.hash ^= ZobristEpFile(priorEp.FileOf())
	}
	if p.epTarget != SquareNone {
		p.hash ^= ZobristEpFile(p.epTarget.FileOf())
	}
	p.hash ^= ZobristCastleDiff(priorCastling, p.castling)

	if p.historyLen < maxGamePlies {
		p.repetitionHistory[p.historyLen] = p.hash
	}
	p.historyLen++

	p.checkPartitionInvariant()
	return snap
}

func (p *Position) doNormal(m Move, mover Color, from, to Square, fromPc Piece) {
	if m.IsCapture() {
		captured := p.removePiece(to)
		p.hash ^= ZobristPiece(captured, to)
		p.halfmoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	p.hash ^= ZobristPiece(fromPc, from)
	p.movePiece(from, to)
	p.hash ^= ZobristPiece(fromPc, to)

	if fromPc.TypeOf() == Pawn && m.IsDoublePush() {
		p.epTarget = epSquareBehind(to, mover)
	}
}

// epSquareBehind returns the square a pawn "passed over" on a double push:
// one step behind the destination, relative to the mover.
func epSquareBehind(to Square, mover Color) Square {
	if mover == White {
		return to - 8
	}
	return to + 8
}

func (p *Position) doPromotion(m Move, mover Color, from, to Square) {
	fromPc := MakePiece(mover, Pawn)
	if m.IsCapture() {
		captured := p.removePiece(to)
		p.hash ^= ZobristPiece(captured, to)
	}
	p.hash ^= ZobristPiece(fromPc, from)
	p.removePiece(from)
	promoted := MakePiece(mover, m.Promotion())
	p.putPiece(promoted, to)
	p.hash ^= ZobristPiece(promoted, to)
	p.halfmoveClock = 0
}

func (p *Position) doEnPassant(mover Color, from, to Square) {
	capSq := epSquareBehind(to, mover)
	capturedPc := MakePiece(mover.Flip(), Pawn)
	if engassert.DEBUG {
		engassert.Assert(p.board[capSq] == capturedPc, "position: en passant capture square empty")
	}
	p.removePiece(capSq)
	p.hash ^= ZobristPiece(capturedPc, capSq)
	fromPc := MakePiece(mover, Pawn)
	p.hash ^= ZobristPiece(fromPc, from)
	p.movePiece(from, to)
	p.hash ^= ZobristPiece(fromPc, to)
	p.halfmoveClock = 0
}

var castleRookSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

func (p *Position) doCastle(mover Color, from, to Square) {
	kingPc := MakePiece(mover, King)
	p.hash ^= ZobristPiece(kingPc, from)
	p.movePiece(from, to)
	p.hash ^= ZobristPiece(kingPc, to)

	rookSq, ok := castleRookSquares[to]
	if !ok {
		panic("position: invalid castle destination")
	}
	rookPc := MakePiece(mover, Rook)
	p.hash ^= ZobristPiece(rookPc, rookSq[0])
	p.movePiece(rookSq[0], rookSq[1])
	p.hash ^= ZobristPiece(rookPc, rookSq[1])

	p.halfmoveClock++
}

// UnmakeMove reverses the effect of MakeMove(m), restoring the position to
// exactly the state captured in snap.
func (p *Position) UnmakeMove(m Move, snap Snapshot) {
	p.historyLen = snap.historyLen
	mover := m.Color()
	from := m.From()
	to := m.To()

	switch {
	case m.IsCastle():
		p.movePiece(to, from)
		rookSq := castleRookSquares[to]
		p.movePiece(rookSq[1], rookSq[0])
	case m.IsEnPassant():
		p.movePiece(to, from)
		capSq := epSquareBehind(to, mover)
		p.putPiece(MakePiece(mover.Flip(), Pawn), capSq)
	case m.Promotion() != PieceTypeNone:
		p.removePiece(to)
		p.putPiece(MakePiece(mover, Pawn), from)
		if snap.captured != PieceNone {
			p.putPiece(snap.captured, to)
		}
	default:
		p.movePiece(to, from)
		if snap.captured != PieceNone {
			p.putPiece(snap.captured, to)
		}
	}

	p.castling = snap.castling
	p.epTarget = snap.epTarget
	p.halfmoveClock = snap.halfmoveClock
	p.hash = snap.hash
	p.sideToMove = mover
	if mover == Black {
		p.fullmoveNumber--
	}

	p.checkPartitionInvariant()
}

// computeHash recomputes the Zobrist key from scratch: every occupied
// piece-square code, every held castling right, the en-passant file if a
// target is present, and the side code if black is to move.
func (p *Position) computeHash() Key {
	var h Key
	for sq := SqA1; sq <= SqH8; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			h ^= ZobristPiece(pc, sq)
		}
	}
	h ^= ZobristCastleDiff(CastlingNone, p.castling)
	if p.epTarget != SquareNone {
		h ^= ZobristEpFile(p.epTarget.FileOf())
	}
	if p.sideToMove == Black {
		h ^= ZobristSide()
	}
	return h
}
