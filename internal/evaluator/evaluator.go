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

// Package evaluator computes a tapered midgame/endgame static evaluation of
// a position from the side-to-move's perspective, using material plus
// piece-square tables blended by a non-pawn-material game phase.
package evaluator

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anthropics/chessgo/internal/position"
	. "github.com/anthropics/chessgo/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluate returns the static evaluation of pos in centipawns from the
// perspective of the side to move: positive is good for the mover.
func Evaluate(pos *position.Position) Value {
	var mg, eg [ColorLength]int32
	phase := 0

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := pos.PiecesBB(c, pt)
			count := bb.PopCount()
			phase += count * phaseWeight[pt]
			for bb != 0 {
				var sq Square
				sq, bb = bb.PopLsb()
				mg[c] += int32(materialMg[pt]) + int32(pstMg(pt, c, sq))
				eg[c] += int32(materialEg[pt]) + int32(pstEg(pt, c, sq))
			}
		}
	}

	if phase > MaxPhase {
		phase = MaxPhase
	}

	mgScore := mg[White] - mg[Black]
	egScore := eg[White] - eg[Black]
	tapered := (mgScore*int32(phase) + egScore*int32(MaxPhase-phase)) / int32(MaxPhase)

	if pos.SideToMove() == Black {
		tapered = -tapered
	}
	return Value(tapered)
}

// GamePhase returns the non-pawn-material phase of pos, 0 (pure endgame
// material) to MaxPhase (full midgame material).
func GamePhase(pos *position.Position) int {
	phase := 0
	for c := White; c <= Black; c++ {
		for pt := Knight; pt <= Queen; pt++ {
			phase += pos.PiecesBB(c, pt).PopCount() * phaseWeight[pt]
		}
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return phase
}

// Report renders a human-readable breakdown of the static evaluation of
// pos, grouping the centipawn figures with the printer's locale so large
// scores and phase counts stay readable in debug output.
func Report(pos *position.Position) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", pos.FEN()))
	report.WriteString(out.Sprintf("Game phase: %d / %d\n", GamePhase(pos), MaxPhase))
	report.WriteString(out.Sprintf("Evaluation (side to move): %d\n", int(Evaluate(pos))))
	return report.String()
}
