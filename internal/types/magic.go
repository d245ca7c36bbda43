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

// Fancy magic bitboards for rook and bishop sliding attacks, built once at
// package init by searching for collision-free multiplicative hashes over
// each square's relevant occupancy subsets; see
// https://www.chessprogramming.org/Magic_Bitboards.

// direction is a board step used only for the slow reference ray-filler that
// verifies magic candidates and seeds the attack tables.
type direction int

const (
	north direction = 8
	south direction = -8
	east  direction = 1
	west  direction = -1
)

var rookSteps = [4]direction{north, south, east, west}
var bishopSteps = [4]direction{north + east, north + west, south + east, south + west}

// magicEntry holds the per-square multiplicative-hash parameters and its
// slice view into the square's shared attack table.
type magicEntry struct {
	mask    Bitboard
	number  Bitboard
	shift   uint
	attacks []Bitboard
}

func (m *magicEntry) lookup(occupied Bitboard) Bitboard {
	hash := ((occupied & m.mask) * m.number) >> m.shift
	return m.attacks[hash]
}

var (
	rookMagics   [SquareLength]magicEntry
	bishopMagics [SquareLength]magicEntry
	rookTable    [0x19000]Bitboard
	bishopTable  [0x1480]Bitboard
)

func init() {
	buildAttackTable(rookTable[:], &rookMagics, &rookSteps)
	buildAttackTable(bishopTable[:], &bishopMagics, &bishopSteps)
}

// splitMix64 is Sebastiano Vigna's public-domain fixed-increment generator.
// It is used only to search for magic multipliers at startup; its output
// never influences game play once the attack tables are populated.
type splitMix64 struct{ state uint64 }

func (g *splitMix64) next() uint64 {
	g.state += 0x9E3779B97F4A7C15
	z := g.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// sparseCandidate returns a value with roughly an eighth of its bits set on
// average: ANDing three independent draws together converges on valid magic
// multipliers far faster than testing uniformly distributed values.
func (g *splitMix64) sparseCandidate() Bitboard {
	return Bitboard(g.next() & g.next() & g.next())
}

// seedForRank derives a per-rank search seed arithmetically instead of
// tabulating hand-picked constants: each rank gets a distinct, well-mixed
// starting state so the searches for squares on different ranks don't all
// walk the same sequence; squares on the same rank share a seed.
func seedForRank(r Rank) uint64 {
	mixer := splitMix64{state: 0xD1B54A32D192ED03 + uint64(r)*0x2545F4914F6CDD1D}
	return mixer.next()
}

// slidingAttack computes, by brute-force ray walking, the attack set of a
// slider on sq along steps given an occupancy. Used only to build reference
// data at startup, never in the move-generation hot path.
func slidingAttack(steps *[4]direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range steps {
		s := sq
		for {
			prevFile := s.FileOf()
			ns := Square(int(s) + int(d))
			if !ns.IsValid() {
				break
			}
			// reject wrap-around: a single step must change file by at
			// most one place.
			df := int(ns.FileOf()) - int(prevFile)
			if df < -1 || df > 1 {
				break
			}
			attack = attack.Set(ns)
			s = ns
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// relevantOccupancies enumerates every subset of mask via the Carry-Rippler
// trick, returning the subsets alongside their true (ray-walked) attack sets
// so the magic search below has reference data to validate candidates
// against.
func relevantOccupancies(steps *[4]direction, sq Square, mask Bitboard) (subsets, attacks []Bitboard) {
	var b Bitboard
	for {
		subsets = append(subsets, b)
		attacks = append(attacks, slidingAttack(steps, sq, b))
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
	return subsets, attacks
}

// findMagic searches for a multiplier that maps every entry of subsets to a
// distinct (or consistently repeated) index into a table of 1<<popcount(mask)
// slots, writing the resulting attack sets into dst as a side effect of
// verification.
func findMagic(rng *splitMix64, mask Bitboard, shift uint, subsets, attacks []Bitboard, dst []Bitboard) Bitboard {
	used := make([]int, len(dst))
	attempt := 0
	for {
		var candidate Bitboard
		for {
			candidate = Bitboard(rng.sparseCandidate())
			// reject multipliers whose top byte over the mask is too dense
			// to plausibly hash sparsely; a cheap filter that speeds up
			// convergence without affecting correctness.
			if ((mask * candidate) >> 56).PopCount() >= 6 {
				continue
			}
			break
		}
		attempt++
		ok := true
		for i, occ := range subsets {
			idx := ((occ & mask) * candidate) >> shift
			if used[idx] != attempt {
				used[idx] = attempt
				dst[idx] = attacks[i]
			} else if dst[idx] != attacks[i] {
				ok = false
				break
			}
		}
		if ok {
			return candidate
		}
	}
}

// buildAttackTable fills table with the attack entries for every square,
// deriving each square's relevant-occupancy mask, searching for a
// collision-free magic multiplier, and pointing magics[sq].attacks at its
// slice of the shared table.
func buildAttackTable(table []Bitboard, magics *[SquareLength]magicEntry, steps *[4]direction) {
	offset := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1 | Rank8) &^ sq.RankOf().Bb()) | ((FileA | FileH) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(steps, sq, BbEmpty) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		subsets, attacks := relevantOccupancies(steps, sq, m.mask)
		m.attacks = table[offset : offset+len(subsets)]
		offset += len(subsets)

		rng := splitMix64{state: seedForRank(sq.RankOf())}
		m.number = findMagic(&rng, m.mask, m.shift, subsets, attacks, m.attacks)
	}
}

// SliderAttacks returns the attack bitboard of a rook, bishop, or queen on
// sq given the full board occupancy. Queen attacks are the union of rook
// and bishop attacks, as required by the magic lookup contract.
func SliderAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Rook:
		return rookMagics[sq].lookup(occupied)
	case Bishop:
		return bishopMagics[sq].lookup(occupied)
	case Queen:
		return SliderAttacks(Rook, sq, occupied) | SliderAttacks(Bishop, sq, occupied)
	default:
		return BbEmpty
	}
}
