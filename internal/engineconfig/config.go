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

// Package engineconfig holds globally available configuration values for the
// engine core, read from a TOML file with hard coded defaults as fallback.
package engineconfig

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the config file, relative to the working directory.
var ConfFile = "./chessgo.toml"

// LogLevel is the general engine log level (op/go-logging level number).
var LogLevel = 4

// SearchLogLevel is the log level for the per-ply search trace.
var SearchLogLevel = 4

// Settings is the global configuration decoded from ConfFile, or defaults.
var Settings conf

var initialized = false

type conf struct {
	TT     ttConfiguration
	Search searchConfiguration
}

// ttConfiguration configures the transposition table.
type ttConfiguration struct {
	// SizeMb is the transposition table size in mebibytes. Rounded down to
	// the next power-of-two slot count by the tt package.
	SizeMb int
}

// searchConfiguration configures correctness-neutral search behaviour, per
// the ordering and polling levers the core contract names as performance-only.
type searchConfiguration struct {
	UseTTMove      bool
	UseSEE         bool
	UseKillers     bool
	UseQuiescence  bool
	NodePollEvery  int
	MaxQDepth      int
}

func init() {
	Settings.TT.SizeMb = 64

	Settings.Search.UseTTMove = true
	Settings.Search.UseSEE = true
	Settings.Search.UseKillers = true
	Settings.Search.UseQuiescence = true
	Settings.Search.NodePollEvery = 4096
	Settings.Search.MaxQDepth = 16
}

// Setup reads ConfFile if present and overlays it onto the defaults set in
// init(). Safe to call multiple times; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	initialized = true
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("chessgo: config file not found, using defaults (", err, ")")
	}
}
