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

// Package testsuite runs EPD-format perft regression files: one position per
// line, with one or more "Dn count" depth/expected-leaf-count pairs. Each
// line is independent, so the runner checks a whole file concurrently with
// errgroup rather than adding parallelism inside search or move generation.
package testsuite

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/anthropics/chessgo/engine"
	"github.com/anthropics/chessgo/internal/position"
)

// Case is one EPD perft line: a FEN and the expected leaf count at each
// depth named in the line (1-indexed by depth, as found in the file).
type Case struct {
	FEN     string
	Line    int
	Expects map[int]uint64
}

// Result is the outcome of running one Case.
type Result struct {
	Case    Case
	Mismatch map[int]struct{ Got, Want uint64 }
	Err     error
}

// OK reports whether the case passed every depth with no error.
func (r Result) OK() bool { return r.Err == nil && len(r.Mismatch) == 0 }

// ParseEPD reads perft EPD lines of the form:
//
//	<fen> ;D1 20 ;D2 400 ;D3 8902
//
// Blank lines and lines starting with '#' are skipped.
func ParseEPD(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ";")
		fen := strings.TrimSpace(parts[0])
		expects := map[int]uint64{}
		for _, field := range parts[1:] {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			tokens := strings.Fields(field)
			if len(tokens) != 2 || !strings.HasPrefix(tokens[0], "D") {
				return nil, fmt.Errorf("testsuite: line %d: malformed depth field %q", lineNo, field)
			}
			depth, err := strconv.Atoi(tokens[0][1:])
			if err != nil {
				return nil, fmt.Errorf("testsuite: line %d: bad depth %q: %w", lineNo, tokens[0], err)
			}
			count, err := strconv.ParseUint(tokens[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("testsuite: line %d: bad count %q: %w", lineNo, tokens[1], err)
			}
			expects[depth] = count
		}
		cases = append(cases, Case{FEN: fen, Line: lineNo, Expects: expects})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

// Run executes every case concurrently (bounded by an errgroup, one
// goroutine per case) and returns one Result per case in input order.
func Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			results[i] = runCase(ctx, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runCase(ctx context.Context, c Case) Result {
	pos, err := position.NewPositionFromFEN(c.FEN)
	if err != nil {
		return Result{Case: c, Err: err}
	}
	mismatch := map[int]struct{ Got, Want uint64 }{}
	for depth, want := range c.Expects {
		select {
		case <-ctx.Done():
			return Result{Case: c, Err: ctx.Err()}
		default:
		}
		got := engine.Perft(pos, depth)
		if got != want {
			mismatch[depth] = struct{ Got, Want uint64 }{Got: got, Want: want}
		}
	}
	return Result{Case: c, Mismatch: mismatch}
}
