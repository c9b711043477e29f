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

// Piece packs a Color into the top bit and a PieceType into the low three
// bits: (color<<3)+pieceType. PieceNone is the unique "empty square" value.
type Piece int8

// Piece constants.
const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14

	PieceLength int = 16
)

// MakePiece composes a Piece from a Color and PieceType.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 + uint8(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type, discarding color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceToString = " KPNBRQ- kpnbrq-"

// PieceFromChar parses a single FEN piece letter into a Piece. Returns
// PieceNone if s does not contain a recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	for i := 0; i < len(pieceToString); i++ {
		if pieceToString[i] == s[0] && s[0] != '-' {
			return Piece(i)
		}
	}
	return PieceNone
}

func (p Piece) String() string {
	return string(pieceToString[p])
}

const pieceToChar = " KONBRQ- k*nbrq-"

// Char returns a single-character ASCII board-rendering glyph for the
// piece (pawns render as O/* rather than P/p to keep board columns
// visually distinct from the file labels).
func (p Piece) Char() string {
	return string(pieceToChar[p])
}

var pieceToUniChar = [PieceLength]rune{
	' ', '♔', '♙', '♘', '♗', '♖', '♕', ' ', ' ',
	'♚', '♟', '♞', '♝', '♜', '♛', ' ',
}

// UniChar returns a unicode chess glyph for the piece.
func (p Piece) UniChar() rune {
	return pieceToUniChar[p]
}
