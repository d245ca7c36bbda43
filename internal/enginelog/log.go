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

// Package enginelog is a thin wrapper around "github.com/op/go-logging"
// handing out preconfigured *logging.Logger instances so that every package
// in the engine core needs only one line to get a usable logger.
package enginelog

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/anthropics/chessgo/internal/engineconfig"
)

var (
	engineLog *logging.Logger
	searchLog *logging.Logger

	stdFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	engineLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
}

// GetLog returns the general engine logger, configured to write to stdout
// at engineconfig.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, stdFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(engineconfig.LogLevel), "")
	engineLog.SetBackend(leveled)
	return engineLog
}

// GetSearchLog returns the logger used for per-iteration iterative deepening
// trace lines (depth, nodes, score, best move, elapsed), configured to write to
// stdout at engineconfig.SearchLogLevel.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, stdFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(engineconfig.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}
