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

// Square is a board square, 0..63, a1=0, h1=7, a8=56, h8=63.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SquareNone Square = 64
	SquareLength = 64
)

// File is a board file, 0 (a) .. 7 (h).
type File int8

const (
	FileA_ File = iota
	FileB_
	FileC_
	FileD_
	FileE_
	FileF_
	FileG_
	FileH_
)

// Rank is a board rank, 0 (rank 1) .. 7 (rank 8).
type Rank int8

const (
	Rank1_ Rank = iota
	Rank2_
	Rank3_
	Rank4_
	Rank5_
	Rank6_
	Rank7_
	Rank8_
)

// MakeSquare builds a Square from a file and rank.
func MakeSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// FileOf returns the file of a square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of a square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// IsValid reports whether sq is a real board square.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// Bb returns the single-bit bitboard for this square.
func (sq Square) Bb() Bitboard {
	return SquareBb(sq)
}

// Bb returns the bitboard of all squares on the file.
func (f File) Bb() Bitboard {
	return fileMasks[f]
}

// Bb returns the bitboard of all squares on the rank.
func (r Rank) Bb() Bitboard {
	return rankMasks[r]
}

var fileLetters = "abcdefgh"

// String renders the square in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileLetters[sq.FileOf()], int(sq.RankOf())+1)
}

// ParseSquare parses algebraic notation ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("types: invalid square %q", s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SquareNone, fmt.Errorf("types: invalid square %q", s)
	}
	return MakeSquare(File(f-'a'), Rank(r-'1')), nil
}

// Color is the side to move or owner of a piece.
type Color int8

const (
	White Color = iota
	Black
	ColorLength = 2
	ColorNone   = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is a kind of chess piece, independent of color.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeNone
	PieceTypeLength = 6
)

var pieceTypeLetters = "pnbrqk"

func (pt PieceType) String() string {
	if pt < 0 || pt > King {
		return "-"
	}
	return string(pieceTypeLetters[pt])
}

// Piece is a (kind, color) pair, encoded as 2*kind + color so that
// PieceNone == 12 falls outside any valid array bound used elsewhere.
type Piece int8

const (
	PieceNone Piece = 12
)

// MakePiece builds a Piece from a color and kind.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(2*int8(pt) + int8(c))
}

// TypeOf returns the piece kind.
func (p Piece) TypeOf() PieceType {
	return PieceType(p / 2)
}

// ColorOf returns the piece's color.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	s := p.TypeOf().String()
	if p.ColorOf() == White {
		return string(s[0] - 'a' + 'A')
	}
	return s
}

// CastlingRights packs the four castling rights into 4 bits.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	CastlingNone = CastlingRights(0)
	CastlingAll  = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether the given right(s) are held.
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right != 0
}

// Value is a centipawn (or mate-distance) score.
type Value int32

const (
	ValueZero     Value = 0
	ValueMate     Value = 32000
	ValueInfinite Value = 32001
	ValueNone     Value = 32002
)

// IsMateScore reports whether v represents a forced mate within maxPly.
func IsMateScore(v Value, maxPly int) bool {
	av := v
	if av < 0 {
		av = -av
	}
	return av >= ValueMate-Value(maxPly)
}
