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

package types

import "fmt"

// Move is a packed integer move representation.
//
// bits   field
// 0-5    source square (0-63)
// 6-11   destination square (0-63)
// 12-14  piece kind (0-5)
// 15-17  promotion kind (0 if none, else knight/bishop/rook/queen)
// 18     capture flag
// 19     double-push flag
// 20     en-passant flag
// 21     castle flag
// 22     side to move (color that moved)
// 23-25  captured piece kind, meaningful iff capture flag set
type Move uint32

const (
	moveFromShift   = 0
	moveToShift     = 6
	movePieceShift  = 12
	movePromoShift  = 15
	moveCaptureBit  = 18
	moveDoubleBit   = 19
	moveEpBit       = 20
	moveCastleBit   = 21
	moveColorShift  = 22
	moveCapPtShift  = 23

	sqMask = 0x3F
	ptMask = 0x7
)

// MoveNone is the sentinel "no move" value.
const MoveNone Move = 0

// MoveFlags bundle the boolean flags used when encoding a move.
type MoveFlags struct {
	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castle     bool
}

// EncodeMove packs a move's fields into the wire representation.
func EncodeMove(from, to Square, piece PieceType, promo PieceType, color Color, flags MoveFlags, captured PieceType) Move {
	var m Move
	m |= Move(from) << moveFromShift
	m |= Move(to) << moveToShift
	m |= Move(piece) << movePieceShift
	if promo != PieceTypeNone {
		m |= Move(promo+1) << movePromoShift
	}
	if flags.Capture {
		m |= 1 << moveCaptureBit
		m |= Move(captured) << moveCapPtShift
	}
	if flags.DoublePush {
		m |= 1 << moveDoubleBit
	}
	if flags.EnPassant {
		m |= 1 << moveEpBit
	}
	if flags.Castle {
		m |= 1 << moveCastleBit
	}
	m |= Move(color) << moveColorShift
	return m
}

func (m Move) From() Square { return Square(m >> moveFromShift & sqMask) }
func (m Move) To() Square   { return Square(m >> moveToShift & sqMask) }
func (m Move) Piece() PieceType { return PieceType(m >> movePieceShift & ptMask) }

// Promotion returns the promotion piece kind, or PieceTypeNone if this move
// is not a promotion.
func (m Move) Promotion() PieceType {
	v := m >> movePromoShift & ptMask
	if v == 0 {
		return PieceTypeNone
	}
	return PieceType(v - 1)
}

func (m Move) IsCapture() bool    { return m&(1<<moveCaptureBit) != 0 }
func (m Move) IsDoublePush() bool { return m&(1<<moveDoubleBit) != 0 }
func (m Move) IsEnPassant() bool  { return m&(1<<moveEpBit) != 0 }
func (m Move) IsCastle() bool     { return m&(1<<moveCastleBit) != 0 }
func (m Move) Color() Color       { return Color(m >> moveColorShift & 1) }

// CapturedPieceType returns the captured piece kind. Only meaningful when
// IsCapture() is true.
func (m Move) CapturedPieceType() PieceType {
	return PieceType(m >> moveCapPtShift & ptMask)
}

// IsValid reports whether this is anything other than the MoveNone sentinel.
func (m Move) IsValid() bool {
	return m != MoveNone
}

var promoLetters = "nbrq"

// String renders the move in long algebraic notation: source square,
// destination square, and an optional lowercase promotion letter.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promo := m.Promotion(); promo != PieceTypeNone {
		switch promo {
		case Knight:
			s += "n"
		case Bishop:
			s += "b"
		case Rook:
			s += "r"
		case Queen:
			s += "q"
		}
	}
	return s
}

// ParseLongAlgebraic parses a long algebraic move string ("e2e4", "a7a8q")
// into source/destination squares and an optional promotion kind. It does
// not validate legality or resolve piece/capture/flag fields - the caller
// must match the result against a legal move (engine.Game.Play does).
func ParseLongAlgebraic(s string) (from, to Square, promo PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return SquareNone, SquareNone, PieceTypeNone, fmt.Errorf("types: invalid long algebraic move %q", s)
	}
	from, err = ParseSquare(s[0:2])
	if err != nil {
		return SquareNone, SquareNone, PieceTypeNone, err
	}
	to, err = ParseSquare(s[2:4])
	if err != nil {
		return SquareNone, SquareNone, PieceTypeNone, err
	}
	promo = PieceTypeNone
	if len(s) == 5 {
		idx := -1
		for i, c := range promoLetters {
			if byte(c) == s[4] {
				idx = i
			}
		}
		if idx < 0 {
			return SquareNone, SquareNone, PieceTypeNone, fmt.Errorf("types: invalid promotion letter in %q", s)
		}
		promo = PieceType(Knight) + PieceType(idx)
	}
	return from, to, promo, nil
}

// MaxMoves is the capacity of a MoveList; legal chess positions never
// produce more than ~218 pseudo-legal moves.
const MaxMoves = 256

// MoveList is a fixed-capacity, caller-owned buffer of moves, reused per
// search ply so that move generation never allocates on the hot path.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.n = 0 }

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.n }

// At returns the i-th move.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Set overwrites the i-th move (used by move-ordering sorts).
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

// Push appends a move. Panics (via engassert-style invariant) if the list
// overflows its fixed capacity - this can only happen on a corrupted
// position, never in a legal game, per the core's resource-exhaustion policy.
func (l *MoveList) Push(m Move) {
	if l.n >= MaxMoves {
		panic("types: move list overflow")
	}
	l.moves[l.n] = m
	l.n++
}

// Slice returns the stored moves as a slice sharing the list's backing array.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}
