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

// Key is a Zobrist hash key. It needs the full 64 bits for good distribution
// across a transposition table.
type Key uint64

// Zobrist code tables, filled once at package init with a deterministic
// pseudo-random generator so that the same binary always produces the same
// hash for the same position (important for reproducible tests, not for
// hash quality).
var (
	zobristPiece   [2 * PieceTypeLength][SquareLength]Key
	zobristCastle  [16]Key
	zobristEpFile  [8]Key
	zobristSideKey Key
)

func init() {
	rng := splitMix64{state: 0x853C49E6748FEA9B}
	for p := 0; p < 2*PieceTypeLength; p++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristPiece[p][sq] = Key(rng.next())
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = Key(rng.next())
	}
	for i := range zobristEpFile {
		zobristEpFile[i] = Key(rng.next())
	}
	zobristSideKey = Key(rng.next())
}

// ZobristPiece returns the code for a piece standing on a square.
func ZobristPiece(p Piece, sq Square) Key {
	return zobristPiece[p][sq]
}

// ZobristCastle returns the code for one specific castling right (a single
// bit of CastlingRights, not an arbitrary combination).
func ZobristCastle(right CastlingRights) Key {
	return zobristCastle[right]
}

// ZobristCastleDiff returns the XOR of the codes for every right present in
// exactly one of before/after (their symmetric difference), which is what
// must be folded into an incremental hash update when castling rights change.
func ZobristCastleDiff(before, after CastlingRights) Key {
	changed := before ^ after
	var k Key
	for r := CastlingRights(1); r != 0 && r <= 8; r <<= 1 {
		if changed&r != 0 {
			k ^= zobristCastle[r]
		}
	}
	return k
}

// ZobristEpFile returns the code for an en-passant target on the given file.
func ZobristEpFile(f File) Key {
	return zobristEpFile[f]
}

// ZobristSide returns the code XORed whenever the side to move changes.
func ZobristSide() Key {
	return zobristSideKey
}
