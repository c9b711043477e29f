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

// CastlingRights is a 4-bit mask over {WhiteOO, WhiteOOO, BlackOO, BlackOOO}.
type CastlingRights uint8

// CastlingRights constants.
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO
	CastlingAny      CastlingRights = CastlingWhite | CastlingBlack

	CastlingRightsLength int = 16
)

// Has reports whether all bits of rhs are set.
func (c CastlingRights) Has(rhs CastlingRights) bool {
	return c&rhs == rhs
}

// Remove clears the bits of rhs.
func (c *CastlingRights) Remove(rhs CastlingRights) {
	*c &^= rhs
}

// Add sets the bits of rhs.
func (c *CastlingRights) Add(rhs CastlingRights) {
	*c |= rhs
}

// String renders the FEN castling-availability fragment, e.g. "KQkq", or
// "-" when no rights remain.
func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(CastlingWhiteOO) {
		s += "K"
	}
	if c.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if c.Has(CastlingBlackOO) {
		s += "k"
	}
	if c.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}
