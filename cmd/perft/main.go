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

// Command perft runs the move-generator leaf-node count benchmark from a
// FEN position, optionally under CPU profiling.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anthropics/chessgo/engine"
	"github.com/anthropics/chessgo/internal/position"
)

var out = message.NewPrinter(language.German)

func main() {
	fen := flag.String("fen", position.StartFen, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := position.NewPositionFromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft: invalid FEN:", err)
		os.Exit(1)
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := engine.Perft(pos, d)
		elapsed := time.Since(start)
		nps := uint64(0)
		if elapsed > 0 {
			nps = uint64(float64(nodes) / elapsed.Seconds())
		}
		out.Printf("depth %2d: %15d nodes in %-12s (%12d nps)\n", d, nodes, elapsed, nps)
	}
}
