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

// MoveType distinguishes the effect a Move has on the board beyond its
// source/destination squares: whether it is a capture, a promotion, an
// en-passant capture or a castle, each of which mutates the Position
// differently in MakeMove/UndoMove.
type MoveType uint8

// MoveType constants. Three bits, eight values, matching the width
// reserved for it in the Move encoding below.
const (
	Normal MoveType = iota
	DoublePush
	SimpleCapture
	EnPassantCapture
	SimplePromotion
	PromotionCapture
	CastlesShort
	CastlesLong

	MoveTypeLength int = 8
)

// IsValid checks if mt is one of the defined MoveType values.
func (mt MoveType) IsValid() bool {
	return mt < MoveType(MoveTypeLength)
}

// IsCapture reports whether a move of this type removes an opponent
// piece from the board.
func (mt MoveType) IsCapture() bool {
	return mt == SimpleCapture || mt == EnPassantCapture || mt == PromotionCapture
}

// IsPromotion reports whether a move of this type replaces the moving
// pawn with a promoted piece.
func (mt MoveType) IsPromotion() bool {
	return mt == SimplePromotion || mt == PromotionCapture
}

// IsCastle reports whether a move of this type also relocates a rook.
func (mt MoveType) IsCastle() bool {
	return mt == CastlesShort || mt == CastlesLong
}

var moveTypeToString = [MoveTypeLength]string{
	"Normal", "DoublePush", "SimpleCapture", "EnPassantCapture",
	"SimplePromotion", "PromotionCapture", "CastlesShort", "CastlesLong",
}

func (mt MoveType) String() string {
	if !mt.IsValid() {
		panic(fmt.Sprintf("invalid move type %d", mt))
	}
	return moveTypeToString[mt]
}
