//
// Corvid - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types holds the board-representation primitives shared by every
// other package: squares, pieces, bitboards, moves and their encodings.
// Nearly all of these would be enums in a language that had them.
package types

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("types")

var initialized = false

// Init builds the attack tables and piece-square tables once for the
// process lifetime. Calling it a second time is a no-op.
func init() {
	if initialized {
		return
	}
	log.Debug("initializing board representation tables")
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength is the number of squares on the board.
	SqLength int = 64

	// MaxDepth is the largest ply the search will recurse to.
	MaxDepth = 128

	// MaxMoves bounds the length of a single game's move list.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024
	// MB is KB*KB bytes.
	MB uint64 = KB * KB
	// GB is KB*MB bytes.
	GB uint64 = KB * MB

	// GamePhaseMax is the game-phase factor (GPF_OPEN) of the opening
	// reference position: 2*(Knight+Bishop+2*Rook)+4*Queen.
	GamePhaseMax = 24
)
