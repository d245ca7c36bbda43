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

// Package types holds the leaf data types of the engine core: bitboards,
// squares, pieces, colors, and the packed move representation, plus the
// magic-bitboard slider attack tables built on top of them.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square, a1=bit0..h8=bit63.
type Bitboard uint64

const (
	BbEmpty Bitboard = 0
	BbAll   Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File masks.
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7
)

// Rank masks.
const (
	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

var fileMasks = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
var rankMasks = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// not-wrap guards used by knight/king attack generation.
const (
	notFileA = ^FileA
	notFileH = ^FileH
	notFileAB = ^(FileA | FileB)
	notFileGH = ^(FileG | FileH)
)

// SquareBb returns the single-bit bitboard for a square.
func SquareBb(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBb(sq) != 0
}

// Set returns b with sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBb(sq)
}

// Clear returns b with sq cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBb(sq)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SquareNone if
// b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SquareNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square and the bitboard with that
// bit removed.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// shiftNorth etc. shift a bitboard by one square in a board direction,
// masking off squares that would wrap around an edge.
func shiftNorth(b Bitboard) Bitboard { return b << 8 }
func shiftSouth(b Bitboard) Bitboard { return b >> 8 }
func shiftEast(b Bitboard) Bitboard  { return (b & notFileH) << 1 }
func shiftWest(b Bitboard) Bitboard  { return (b & notFileA) >> 1 }
func shiftNE(b Bitboard) Bitboard    { return (b & notFileH) << 9 }
func shiftNW(b Bitboard) Bitboard    { return (b & notFileA) << 7 }
func shiftSE(b Bitboard) Bitboard    { return (b & notFileH) >> 7 }
func shiftSW(b Bitboard) Bitboard    { return (b & notFileA) >> 9 }

// String renders a bitboard as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sq := MakeSquare(File(f), Rank(r))
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if f < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
