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

// Package movegen produces pseudo-legal and legal moves for a position.
// Pseudo-legal generation never allocates: callers pass in a *types.MoveList
// to fill, reused across plies the way search wants it.
package movegen

import (
	"github.com/anthropics/chessgo/internal/position"
	. "github.com/anthropics/chessgo/internal/types"
)

// GeneratePseudoLegal fills out with every pseudo-legal move for the side to
// move in p, ordered pawn, knight, bishop, rook, queen, king (spec.md §4.3's
// stable baseline ordering). out is reset first.
func GeneratePseudoLegal(p *position.Position, out *MoveList) {
	out.Reset()
	us := p.SideToMove()
	them := us.Flip()
	own := p.ColorBB(us)
	enemy := p.ColorBB(them)
	occupied := p.OccupiedBB()
	empty := ^occupied

	genPawnMoves(p, out, us, them, enemy, empty)
	genPieceMoves(p, out, us, Knight, own, occupied)
	genPieceMoves(p, out, us, Bishop, own, occupied)
	genPieceMoves(p, out, us, Rook, own, occupied)
	genPieceMoves(p, out, us, Queen, own, occupied)
	genKingMoves(p, out, us, own, occupied)
}

// GenerateLegal fills out with only the moves from GeneratePseudoLegal that
// do not leave the mover's own king in check, per spec.md §4.3.
func GenerateLegal(p *position.Position, out *MoveList) {
	var pseudo MoveList
	GeneratePseudoLegal(p, &pseudo)
	out.Reset()
	us := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		snap := p.MakeMove(m)
		legal := !p.InCheck(us)
		p.UnmakeMove(m, snap)
		if legal {
			out.Push(m)
		}
	}
}

func attackBBFor(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case Bishop, Rook, Queen:
		return SliderAttacks(pt, sq, occupied)
	default:
		return BbEmpty
	}
}

func genPieceMoves(p *position.Position, out *MoveList, us Color, pt PieceType, own, occupied Bitboard) {
	bb := p.PiecesBB(us, pt)
	for bb != 0 {
		var from Square
		from, bb = bb.PopLsb()
		targets := attackBBFor(pt, from, occupied) &^ own
		for targets != 0 {
			var to Square
			to, targets = targets.PopLsb()
			capturedPt := PieceTypeNone
			flags := MoveFlags{}
			if p.PieceAt(to) != PieceNone {
				flags.Capture = true
				capturedPt = p.PieceAt(to).TypeOf()
			}
			out.Push(EncodeMove(from, to, pt, PieceTypeNone, us, flags, capturedPt))
		}
	}
}

func genKingMoves(p *position.Position, out *MoveList, us Color, own, occupied Bitboard) {
	from := p.KingSquare(us)
	targets := KingAttacks(from) &^ own
	for targets != 0 {
		var to Square
		to, targets = targets.PopLsb()
		capturedPt := PieceTypeNone
		flags := MoveFlags{}
		if p.PieceAt(to) != PieceNone {
			flags.Capture = true
			capturedPt = p.PieceAt(to).TypeOf()
		}
		out.Push(EncodeMove(from, to, King, PieceTypeNone, us, flags, capturedPt))
	}
	genCastles(p, out, us, from, occupied)
}

type castleSpec struct {
	right       CastlingRights
	kingFrom    Square
	kingTo      Square
	rookFrom    Square
	betweenMask Bitboard
	kingPath    [3]Square // squares that must not be attacked: from, transit, to
}

var castleSpecs = [2][2]castleSpec{
	White: {
		{WhiteKingside, SqE1, SqG1, SqH1, SqF1.Bb() | SqG1.Bb(), [3]Square{SqE1, SqF1, SqG1}},
		{WhiteQueenside, SqE1, SqC1, SqA1, SqB1.Bb() | SqC1.Bb() | SqD1.Bb(), [3]Square{SqE1, SqD1, SqC1}},
	},
	Black: {
		{BlackKingside, SqE8, SqG8, SqH8, SqF8.Bb() | SqG8.Bb(), [3]Square{SqE8, SqF8, SqG8}},
		{BlackQueenside, SqE8, SqC8, SqA8, SqB8.Bb() | SqC8.Bb() | SqD8.Bb(), [3]Square{SqE8, SqD8, SqC8}},
	},
}

// genCastles adds castling moves per spec.md §4.3: the right must be held,
// the rook must stand on its original corner, the squares between king and
// rook must be empty, and the king's source/transit/destination squares
// must not be attacked. Any failing condition skips that castle without a
// second in-check test.
func genCastles(p *position.Position, out *MoveList, us Color, kingFrom Square, occupied Bitboard) {
	var taboo Bitboard
	tabooComputed := false
	for _, spec := range castleSpecs[us] {
		if !p.CastlingRights().Has(spec.right) {
			continue
		}
		if p.PieceAt(spec.rookFrom) != MakePiece(us, Rook) {
			continue
		}
		if occupied&spec.betweenMask != 0 {
			continue
		}
		if !tabooComputed {
			taboo = p.AttacksBy(us.Flip())
			tabooComputed = true
		}
		blocked := false
		for _, sq := range spec.kingPath {
			if taboo.Has(sq) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		out.Push(EncodeMove(kingFrom, spec.kingTo, King, PieceTypeNone, us, MoveFlags{Castle: true}, PieceTypeNone))
	}
}

func genPawnMoves(p *position.Position, out *MoveList, us, them Color, enemy, empty Bitboard) {
	bb := p.PiecesBB(us, Pawn)
	promoRank := Rank8_
	startRankMask := Rank2
	if us == Black {
		promoRank = Rank1_
		startRankMask = Rank7
	}
	for pawns := bb; pawns != 0; {
		var from Square
		from, pawns = pawns.PopLsb()
		fromBb := from.Bb()

		single := SinglePushTargets(fromBb, empty, us)
		if single != 0 {
			to := single.Lsb()
			addPawnMove(out, from, to, us, promoRank, MoveFlags{}, PieceTypeNone)
		}
		// double push requires a strict source-rank check (spec.md §12 open
		// question: do not rely on the ambiguous arithmetic shift test).
		if fromBb&startRankMask != 0 {
			double := DoublePushTargets(fromBb, empty, us)
			if double != 0 {
				to := double.Lsb()
				addPawnMove(out, from, to, us, promoRank, MoveFlags{DoublePush: true}, PieceTypeNone)
			}
		}
		captures := PawnAttacks(us, from) & enemy
		for captures != 0 {
			var to Square
			to, captures = captures.PopLsb()
			addPawnMove(out, from, to, us, promoRank, MoveFlags{Capture: true}, p.PieceAt(to).TypeOf())
		}
		if ep := p.EpTarget(); ep != SquareNone && PawnAttacks(us, from).Has(ep) {
			out.Push(EncodeMove(from, ep, Pawn, PieceTypeNone, us, MoveFlags{Capture: true, EnPassant: true}, Pawn))
		}
	}
}

// addPawnMove emits either a plain pawn move or, on the back rank, the four
// promotion variants (spec.md §4.3).
func addPawnMove(out *MoveList, from, to Square, us Color, promoRank Rank, flags MoveFlags, capturedPt PieceType) {
	if to.RankOf() == promoRank {
		for _, promo := range [4]PieceType{Knight, Bishop, Rook, Queen} {
			out.Push(EncodeMove(from, to, Pawn, promo, us, flags, capturedPt))
		}
		return
	}
	out.Push(EncodeMove(from, to, Pawn, PieceTypeNone, us, flags, capturedPt))
}
