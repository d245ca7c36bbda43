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

// Non-sliding attack tables, pre-computed once at package init from
// pre-masked shifts so that move generation and check detection never
// branch on board edges.
var (
	knightAttacks [SquareLength]Bitboard
	kingAttacks   [SquareLength]Bitboard
	pawnAttacksBb [ColorLength][SquareLength]Bitboard
)

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		b := sq.Bb()
		knightAttacks[sq] = knightAttacksFrom(b)
		kingAttacks[sq] = kingAttacksFrom(b)
		pawnAttacksBb[White][sq] = pawnAttacksFrom(b, White)
		pawnAttacksBb[Black][sq] = pawnAttacksFrom(b, Black)
	}
}

// knightAttacksFrom computes the knight attack set from a (usually
// single-square) source bitboard: two-file/one-rank and one-file/two-rank
// L-shapes, pre-masked to suppress wrap-around.
func knightAttacksFrom(n Bitboard) Bitboard {
	l1 := (n >> 1) & notFileH
	l2 := (n >> 2) & notFileGH
	r1 := (n << 1) & notFileA
	r2 := (n << 2) & notFileAB
	h1 := l1 | r1
	h2 := l2 | r2
	return (h1 << 16) | (h1 >> 16) | (h2 << 8) | (h2 >> 8)
}

// kingAttacksFrom computes the king attack set: all eight single-step
// directions, pre-masked to suppress wrap-around.
func kingAttacksFrom(k Bitboard) Bitboard {
	attacks := shiftEast(k) | shiftWest(k)
	k |= attacks
	attacks |= shiftNorth(k) | shiftSouth(k)
	return attacks
}

// pawnAttacksFrom computes the two diagonal capture squares for a pawn of
// color c on the squares set in p.
func pawnAttacksFrom(p Bitboard, c Color) Bitboard {
	if c == White {
		return shiftNW(p) | shiftNE(p)
	}
	return shiftSW(p) | shiftSE(p)
}

// KnightAttacks returns the knight attack bitboard from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack bitboard from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the attack (capture) bitboard of a pawn of color c on sq.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacksBb[c][sq] }

// PawnAttacksFromSet returns the union of attack squares for every pawn of
// color c in the set pawns - used by the in-check "super piece" test so
// that all enemy pawn attacks can be evaluated without a loop over squares.
func PawnAttacksFromSet(pawns Bitboard, c Color) Bitboard {
	return pawnAttacksFrom(pawns, c)
}

// KnightAttacksFromSet is the set-wide equivalent of KnightAttacks.
func KnightAttacksFromSet(knights Bitboard) Bitboard {
	return knightAttacksFrom(knights)
}

// KingAttacksFromSet is the set-wide equivalent of KingAttacks.
func KingAttacksFromSet(kings Bitboard) Bitboard {
	return kingAttacksFrom(kings)
}

// SinglePushTargets returns the set of squares a white (or, mirrored, black)
// pawn in pawns can reach by a single forward push into the empty squares.
func SinglePushTargets(pawns, empty Bitboard, c Color) Bitboard {
	if c == White {
		return shiftNorth(pawns) & empty
	}
	return shiftSouth(pawns) & empty
}

// DoublePushTargets returns the set of squares reachable by a two-square
// pawn advance, requiring both the intervening and destination squares to
// be empty.
func DoublePushTargets(pawns, empty Bitboard, c Color) Bitboard {
	singlePushes := SinglePushTargets(pawns, empty, c)
	if c == White {
		return shiftNorth(singlePushes) & empty & Rank4
	}
	return shiftSouth(singlePushes) & empty & Rank5
}
