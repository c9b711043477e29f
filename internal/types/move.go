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

import (
	"fmt"
	"strings"

	"github.com/corvid-chess/corvid/internal/assert"
)

// Move is a bit-packed encoding of one ply:
//
//  bit 0-5    to square       (6 bits)
//  bit 6-11   from square     (6 bits)
//  bit 12-14  move type       (3 bits, MoveType)
//  bit 15-16  promotion type  (2 bits, 0=Knight..3=Queen)
//  bit 17-20  moving piece    (4 bits, Piece)
//  bit 21-24  captured piece  (4 bits, Piece, PieceNone if none)
//  bit 32-47  sort value      (16 bits, offset-encoded, see SetValue)
//
// Moves compare equal (==) iff every encoded field agrees. MoveNone is
// the all-zero sentinel, distinct from any move since from==to==0 can
// never occur for a legal move.
type Move uint64

// MoveNone is the sentinel for "no move".
const MoveNone Move = 0

const (
	toShift   = 0
	fromShift = 6
	typeShift = 12
	promShift = 15
	movShift  = 17
	capShift  = 21
	valShift  = 32

	toMask   Move = 0x3F
	fromMask Move = 0x3F
	typeMask Move = 0x7
	promMask Move = 0x3
	movMask  Move = 0xF
	capMask  Move = 0xF
	valMask  Move = 0xFFFF

	// moveMask strips the sort value, leaving the fields that define
	// move identity.
	moveMask Move = 0x1FFFFFF
)

// CreateMove packs a move without a sort value (value defaults to ValueNA).
func CreateMove(from, to Square, mt MoveType, movingPiece, capturedPiece Piece, promType PieceType) Move {
	return CreateMoveValue(from, to, mt, movingPiece, capturedPiece, promType, ValueNA)
}

// CreateMoveValue packs a move together with a search sort value.
func CreateMoveValue(from, to Square, mt MoveType, movingPiece, capturedPiece Piece, promType PieceType, value Value) Move {
	var promBits Move
	if mt.IsPromotion() {
		promBits = Move(promType-Knight) & promMask
	}
	m := Move(to)&toMask |
		(Move(from)&fromMask)<<fromShift |
		(Move(mt)&typeMask)<<typeShift |
		promBits<<promShift |
		(Move(movingPiece)&movMask)<<movShift |
		(Move(capturedPiece)&capMask)<<capShift
	m.SetValue(value)
	return m
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m >> toShift & toMask)
}

// From returns the source square.
func (m Move) From() Square {
	return Square(m >> fromShift & fromMask)
}

// MoveType returns the encoded move type.
func (m Move) MoveType() MoveType {
	return MoveType(m >> typeShift & typeMask)
}

// PromotionType returns the promotion piece type, valid only when
// MoveType().IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return PieceType(m>>promShift&promMask) + Knight
}

// MovingPiece returns the piece that occupies From() before the move.
func (m Move) MovingPiece() Piece {
	return Piece(m >> movShift & movMask)
}

// CapturedPiece returns the piece removed by the move, or PieceNone for
// a non-capturing move.
func (m Move) CapturedPiece() Piece {
	return Piece(m >> capShift & capMask)
}

// MoveOf strips the sort value, leaving only the identity-defining bits.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf decodes the sort value set by SetValue or CreateMoveValue.
func (m Move) ValueOf() Value {
	return Value(m>>valShift&valMask) + ValueNA
}

// SetValue overwrites the move's sort value in place and returns the
// updated move. A no-op on MoveNone so that accidentally scoring the
// empty move never corrupts the identity bits.
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		// sort values may exceed the evaluation range (move ordering
		// uses offsets beyond it) but not the offset encoding's floor
		assert.Assert(v >= ValueNA, "move sort value out of range %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	*m = *m&^(valMask<<valShift) | (Move(v-ValueNA)&valMask)<<valShift
	return *m
}

// IsValid checks that every field of the move decodes to something
// sensible. It does not check legality against any position.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	return m.From().IsValid() && m.To().IsValid() && m.MoveType().IsValid() &&
		m.PromotionType() >= Knight && m.PromotionType() <= Queen &&
		(m.ValueOf().IsValid() || m.ValueOf() == ValueNA)
}

// MakesProgress reports whether the move is irreversible for the
// purposes of the three-fold repetition rule: a capture or a pawn move.
func (m Move) MakesProgress() bool {
	return m.MoveType().IsCapture() || m.MovingPiece().TypeOf() == Pawn
}

func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	s := fmt.Sprintf("%s%s", m.From().String(), m.To().String())
	if m.MoveType().IsPromotion() {
		s += m.PromotionType().Char()
	}
	return fmt.Sprintf("%s (%s)", s, m.ValueOf().String())
}

// StringUci renders the move in UCI long algebraic notation, e.g.
// "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "no move"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType().IsPromotion() {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}

// StringBits renders the raw bit pattern, useful when debugging the
// encoding itself.
func (m Move) StringBits() string {
	return fmt.Sprintf("%048b", uint64(m))
}
