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

// Package position represents a chess position: piece bitboards, an 8x8
// piece board for O(1) lookup, side to move, castling rights, en-passant
// target, halfmove clock and fullmove number. Positions are mutated only
// through MakeMove/UnmakeMove, which keep the bitboard partition invariant
// and the incremental Zobrist hash in sync.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anthropics/chessgo/internal/engassert"
	. "github.com/anthropics/chessgo/internal/types"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxGamePlies bounds the in-memory undo history kept for repetition
// detection; a single game in progress never approaches it.
const maxGamePlies = 2048

// Position is the mutable chess board state.
type Position struct {
	pieceBB [2 * PieceTypeLength]Bitboard // index: MakePiece(color, kind)
	colorBB [ColorLength]Bitboard
	allBB   Bitboard
	board   [SquareLength]Piece

	sideToMove      Color
	castling        CastlingRights
	epTarget        Square
	halfmoveClock   int
	fullmoveNumber  int
	kingSquare      [ColorLength]Square

	hash Key

	// repetitionHistory records the hash after every move played so far in
	// the game (including moves made before search started), enabling
	// threefold-repetition detection (SPEC_FULL.md §11).
	repetitionHistory [maxGamePlies]Key
	historyLen        int
}

// Snapshot is the compact state MakeMove returns and UnmakeMove consumes to
// restore a Position exactly, per the core's make/unmake contract.
type Snapshot struct {
	castling      CastlingRights
	epTarget      Square
	halfmoveClock int
	hash          Key
	captured      Piece
	historyLen    int
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := NewPositionFromFEN(StartFen)
	if err != nil {
		panic("position: start FEN failed to parse: " + err.Error())
	}
	return p
}

// NewPositionFromFEN builds a Position from a FEN string, returning a
// domain error if the string is malformed.
func NewPositionFromFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setFromFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) setFromFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: FEN needs at least 4 fields, got %d: %q", len(fields), fen)
	}
	for i := range p.board {
		p.board[i] = PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: FEN board needs 8 ranks, got %d: %q", len(ranks), fen)
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := File(0)
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			if file > 7 {
				return fmt.Errorf("position: FEN rank overflow: %q", fen)
			}
			pc, err := pieceFromFenChar(byte(c))
			if err != nil {
				return err
			}
			sq := MakeSquare(file, rank)
			p.putPiece(pc, sq)
			file++
		}
		if file != 8 {
			return fmt.Errorf("position: FEN rank %q does not sum to 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("position: invalid side to move %q", fields[1])
	}

	p.castling = CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling |= WhiteKingside
			case 'Q':
				p.castling |= WhiteQueenside
			case 'k':
				p.castling |= BlackKingside
			case 'q':
				p.castling |= BlackQueenside
			default:
				return fmt.Errorf("position: invalid castling field %q", fields[2])
			}
		}
	}

	p.epTarget = SquareNone
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return fmt.Errorf("position: invalid en-passant field %q: %w", fields[3], err)
		}
		p.epTarget = sq
	}

	p.halfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err == nil {
			p.halfmoveClock = n
		}
	}
	p.fullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err == nil {
			p.fullmoveNumber = n
		}
	}

	p.hash = p.computeHash()
	// the position's own starting hash occupies index 0 of the repetition
	// history so later lookups never need to special-case "no moves yet".
	p.repetitionHistory[0] = p.hash
	p.historyLen = 1
	return nil
}

func pieceFromFenChar(c byte) (Piece, error) {
	idx := strings.IndexByte("PNBRQKpnbrqk", c)
	if idx < 0 {
		return PieceNone, fmt.Errorf("position: invalid FEN piece char %q", c)
	}
	color := White
	if idx >= 6 {
		color = Black
		idx -= 6
	}
	return MakePiece(color, PieceType(idx)), nil
}

// FEN serializes the position back to Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.board[MakeSquare(File(f), Rank(r))]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(fenPieceChar(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	if p.castling == CastlingNone {
		sb.WriteByte('-')
	} else {
		if p.castling.Has(WhiteKingside) {
			sb.WriteByte('K')
		}
		if p.castling.Has(WhiteQueenside) {
			sb.WriteByte('Q')
		}
		if p.castling.Has(BlackKingside) {
			sb.WriteByte('k')
		}
		if p.castling.Has(BlackQueenside) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	if p.epTarget == SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epTarget.String())
	}
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)
	return sb.String()
}

func fenPieceChar(pc Piece) string {
	s := pc.TypeOf().String()
	if pc.ColorOf() == White {
		return strings.ToUpper(s)
	}
	return s
}

// --- accessors -------------------------------------------------------------

func (p *Position) SideToMove() Color               { return p.sideToMove }
func (p *Position) PieceAt(sq Square) Piece         { return p.board[sq] }
func (p *Position) PiecesBB(c Color, pt PieceType) Bitboard { return p.pieceBB[MakePiece(c, pt)] }
func (p *Position) ColorBB(c Color) Bitboard        { return p.colorBB[c] }
func (p *Position) OccupiedBB() Bitboard            { return p.allBB }
func (p *Position) CastlingRights() CastlingRights  { return p.castling }
func (p *Position) EpTarget() Square                { return p.epTarget }
func (p *Position) HalfmoveClock() int              { return p.halfmoveClock }
func (p *Position) FullmoveNumber() int             { return p.fullmoveNumber }
func (p *Position) KingSquare(c Color) Square       { return p.kingSquare[c] }
func (p *Position) Hash() Key                        { return p.hash }

func (p *Position) String() string { return p.FEN() }

// --- board mutation helpers --------------------------------------------------

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	bb := sq.Bb()
	p.pieceBB[pc] |= bb
	p.colorBB[pc.ColorOf()] |= bb
	p.allBB |= bb
	if pc.TypeOf() == King {
		p.kingSquare[pc.ColorOf()] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if engassert.DEBUG {
		engassert.Assert(pc != PieceNone, "position: removePiece on empty square %s", sq)
	}
	bb := sq.Bb()
	p.pieceBB[pc] &^= bb
	p.colorBB[pc.ColorOf()] &^= bb
	p.allBB &^= bb
	p.board[sq] = PieceNone
	return pc
}

func (p *Position) movePiece(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

// checkPartitionInvariant validates the testable partition invariant
// (SPEC_FULL.md §10 / spec.md §8.1): the two color boards are disjoint and
// their union equals the aggregate occupancy.
func (p *Position) checkPartitionInvariant() {
	if !engassert.DEBUG {
		return
	}
	engassert.Assert(p.colorBB[White]&p.colorBB[Black] == 0, "position: color boards overlap")
	engassert.Assert(p.allBB == p.colorBB[White]|p.colorBB[Black], "position: allBB out of sync")
	var union Bitboard
	for pt := Pawn; pt <= King; pt++ {
		union |= p.pieceBB[MakePiece(White, pt)] | p.pieceBB[MakePiece(Black, pt)]
	}
	engassert.Assert(union == p.allBB, "position: piece boards do not partition allBB")
}
