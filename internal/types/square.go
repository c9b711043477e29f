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

package types

import "fmt"

// Square is a board square, file-major: A1=0 .. H8=63. SqNone is the
// sentinel for "no square", distinct from every valid square.
type Square uint8

// Square constants, A1..H8 followed by the invalid sentinel.
const (
	SqA1, SqB1, SqC1, SqD1, SqE1, SqF1, SqG1, SqH1 = Square(iota * 8), Square(iota*8 + 1), Square(iota*8 + 2), Square(iota*8 + 3), Square(iota*8 + 4), Square(iota*8 + 5), Square(iota*8 + 6), Square(iota*8 + 7)
	SqA2, SqB2, SqC2, SqD2, SqE2, SqF2, SqG2, SqH2
	SqA3, SqB3, SqC3, SqD3, SqE3, SqF3, SqG3, SqH3
	SqA4, SqB4, SqC4, SqD4, SqE4, SqF4, SqG4, SqH4
	SqA5, SqB5, SqC5, SqD5, SqE5, SqF5, SqG5, SqH5
	SqA6, SqB6, SqC6, SqD6, SqE6, SqF6, SqG6, SqH6
	SqA7, SqB7, SqC7, SqD7, SqE7, SqF7, SqG7, SqH7
	SqA8, SqB8, SqC8, SqD8, SqE8, SqF8, SqG8, SqH8
	SqNone = Square(iota * 8)
)

// IsValid checks if sq is a square on the board.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare parses an algebraic square name, e.g. "e4". Returns SqNone
// on malformed input.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0] - 'a'
	r := s[1] - '1'
	if f > 7 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// SquareOf composes a square from a file and rank. Returns SqNone if
// the file or the rank is off the board.
func SquareOf(f File, r Rank) Square {
	if f > FileH || r > Rank8 {
		return SqNone
	}
	return Square(uint8(r)<<3 + uint8(f))
}

// sqTo precomputes, per square and direction, the neighboring square
// (SqNone if the shift would leave the board).
var sqTo [SqLength][8]Square

// To returns the square reached by moving one step in direction d, or
// SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	return sqTo[sq][orientationOf(d)]
}

// orientationOf maps a Direction onto its Directions-array index so it
// can index sqTo without a second lookup table per direction.
func orientationOf(d Direction) int {
	for i, dd := range Directions {
		if dd == d {
			return i
		}
	}
	panic(fmt.Sprintf("invalid direction %d", d))
}

func toPreCompute(d Direction) {
	for sq := Square(0); sq < Square(SqLength); sq++ {
		f := sq.FileOf()
		var target Square
		switch d {
		case North:
			target = sq + 8
		case South:
			target = sq - 8
		case East:
			if f == FileH {
				sqTo[sq][orientationOf(d)] = SqNone
				continue
			}
			target = sq + 1
		case West:
			if f == FileA {
				sqTo[sq][orientationOf(d)] = SqNone
				continue
			}
			target = sq - 1
		case Northeast:
			if f == FileH {
				sqTo[sq][orientationOf(d)] = SqNone
				continue
			}
			target = sq + 9
		case Southeast:
			if f == FileH {
				sqTo[sq][orientationOf(d)] = SqNone
				continue
			}
			target = sq - 7
		case Southwest:
			if f == FileA {
				sqTo[sq][orientationOf(d)] = SqNone
				continue
			}
			target = sq - 9
		case Northwest:
			if f == FileA {
				sqTo[sq][orientationOf(d)] = SqNone
				continue
			}
			target = sq + 7
		}
		if target > Square(SqLength-1) {
			sqTo[sq][orientationOf(d)] = SqNone
			continue
		}
		sqTo[sq][orientationOf(d)] = target
	}
}

func init() {
	for _, d := range Directions {
		toPreCompute(d)
	}
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.FileOf(), '1'+sq.RankOf())
}
