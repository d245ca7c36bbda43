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

// Package transpositiontable caches search results keyed by the Zobrist hash
// of a position, letting search skip work it has already done in a different
// move order that reached the same position.
package transpositiontable

import (
	"github.com/anthropics/chessgo/internal/enginelog"
	. "github.com/anthropics/chessgo/internal/types"
)

const bytesPerEntry = 24 // Key(8) + Move(4) + Score(4) + Depth(1) + Bound(1), rounded for slice overhead

// Table is a fixed-size, always-replace transposition table. Slot count is
// rounded down to a power of two so a slot is addressed by key&mask instead
// of a division, per spec.md §4.7; a new write always overwrites whatever
// was there, per SPEC_FULL.md §12 (simplicity over depth-preferred
// replacement schemes for this size of engine).
type Table struct {
	slots []Entry
	mask  uint64
	used  int
}

// New builds a table sized to roughly sizeMb megabytes.
func New(sizeMb int) *Table {
	t := &Table{}
	t.Resize(sizeMb)
	return t
}

// Resize reallocates the table to roughly sizeMb megabytes, discarding all
// existing entries.
func (t *Table) Resize(sizeMb int) {
	if sizeMb < 1 {
		sizeMb = 1
	}
	want := (sizeMb * 1024 * 1024) / bytesPerEntry
	if want < 1 {
		want = 1
	}
	count := 1
	for count*2 <= want {
		count *= 2
	}
	t.slots = make([]Entry, count)
	t.mask = uint64(count - 1)
	t.used = 0
	enginelog.GetLog().Debugf("transposition table resized to %d entries (%d MB)", count, sizeMb)
}

// Clear empties the table without reallocating.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = Entry{}
	}
	t.used = 0
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key. The second return value is false on a miss or on a
// key collision (a different position hashed to the same slot).
func (t *Table) Probe(key Key) (Entry, bool) {
	e := t.slots[t.index(key)]
	if e.Bound == BoundNone || e.Key != key {
		return Entry{}, false
	}
	return e, true
}

// Put stores a search result for key, always overwriting whatever occupied
// the slot before.
func (t *Table) Put(key Key, move Move, score Value, depth int, bound Bound) {
	idx := t.index(key)
	if t.slots[idx].Bound == BoundNone {
		t.used++
	}
	t.slots[idx] = Entry{
		Key:   key,
		Move:  move,
		Score: score,
		Depth: int8(depth),
		Bound: bound,
	}
}

// Hashfull returns table occupancy in permille (0-1000), the conventional
// UCI-style fill-level statistic.
func (t *Table) Hashfull() int {
	if len(t.slots) == 0 {
		return 0
	}
	return (t.used * 1000) / len(t.slots)
}

// ProbeScore returns (e.Score, true) when the entry's depth and bound license
// a cutoff at depth given alpha/beta, per the classical negamax TT-cutoff
// rule. The stored score is returned unchanged.
func ProbeScore(e Entry, depth int, alpha, beta Value) (Value, bool) {
	if int(e.Depth) < depth {
		return ValueZero, false
	}
	switch e.Bound {
	case BoundExact:
		return e.Score, true
	case BoundUpper:
		if e.Score <= alpha {
			return e.Score, true
		}
	case BoundLower:
		if e.Score >= beta {
			return e.Score, true
		}
	}
	return ValueZero, false
}
