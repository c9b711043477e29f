/*
 * Corvid - a bitboard chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 The Corvid Authors
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

package evaluator

import (
	"github.com/corvid-chess/corvid/internal/position"
	. "github.com/corvid-chess/corvid/internal/types"
)

// EndgameType names a material configuration the generic evaluator would
// score poorly and which gets its own, hand-written recognizer instead.
type EndgameType uint8

// Endgame type constants. EgUnknown means "let the generic evaluator score
// this position" - every other value is a recognized special case.
const (
	EgUnknown EndgameType = iota
	EgKPvK
	EgKBNvK
	EgKRvK
	EgKQvK
	EgKBBvK
	EgKRvKN // drawn: lone knight holds against a rook
	EgKRvKB // drawn: lone bishop holds against a rook
	EgKRvKR // drawn: rook endings with no pawns are a dead draw
	EgKQvKQ // drawn: queen endings with no pawns are a dead draw
)

// endgameData is the result of identify(): the recognized type and, for the
// non-drawn types, which color is the side with the mating material.
type endgameData struct {
	egType EndgameType
	lhs    Color
}

// materialCount tallies one color's non-king piece counts, used to pattern
// match the small set of material signatures the recognizers understand.
type materialCount struct {
	pawns, knights, bishops, rooks, queens int
}

func countMaterial(pos *position.Position, c Color) materialCount {
	return materialCount{
		pawns:   pos.PiecesBb(c, Pawn).PopCount(),
		knights: pos.PiecesBb(c, Knight).PopCount(),
		bishops: pos.PiecesBb(c, Bishop).PopCount(),
		rooks:   pos.PiecesBb(c, Rook).PopCount(),
		queens:  pos.PiecesBb(c, Queen).PopCount(),
	}
}

// isBareKing is true if a side has no pawns and no pieces at all.
func (m materialCount) isBareKing() bool {
	return m == materialCount{}
}

// isOnly is true if a side's entire army is exactly the given pawnless
// piece counts.
func (m materialCount) isOnly(knights, bishops, rooks, queens int) bool {
	return m.pawns == 0 && m.knights == knights && m.bishops == bishops &&
		m.rooks == rooks && m.queens == queens
}

// isOnlyPawns is true if a side has exactly n pawns and nothing else.
func (m materialCount) isOnlyPawns(n int) bool {
	return m.pawns == n && m.knights == 0 && m.bishops == 0 &&
		m.rooks == 0 && m.queens == 0
}

// identify classifies the position's material signature into one of the
// endgame types this package knows how to score directly, or EgUnknown if
// the generic hand-crafted evaluator should be used instead.
func identify(pos *position.Position) endgameData {
	white := countMaterial(pos, White)
	black := countMaterial(pos, Black)

	// symmetric draws first - material is (close enough to) equal on both
	// sides and no side can force progress.
	if white.isOnly(0, 0, 1, 0) && black.isOnly(1, 0, 0, 0) {
		return endgameData{EgKRvKN, White}
	}
	if white.isOnly(1, 0, 0, 0) && black.isOnly(0, 0, 1, 0) {
		return endgameData{EgKRvKN, Black}
	}
	if white.isOnly(0, 0, 1, 0) && black.isOnly(0, 1, 0, 0) {
		return endgameData{EgKRvKB, White}
	}
	if white.isOnly(0, 1, 0, 0) && black.isOnly(0, 0, 1, 0) {
		return endgameData{EgKRvKB, Black}
	}
	if white.isOnly(0, 0, 1, 0) && black.isOnly(0, 0, 1, 0) {
		return endgameData{EgKRvKR, White}
	}
	if white.isOnly(0, 0, 0, 1) && black.isOnly(0, 0, 0, 1) {
		return endgameData{EgKQvKQ, White}
	}

	// one side has mating material, the other is a bare king
	if lhs, ok := matingMaterialSide(white, black); ok {
		m := white
		if lhs == Black {
			m = black
		}
		switch {
		case m.isOnlyPawns(1):
			return endgameData{EgKPvK, lhs}
		case m.isOnly(1, 1, 0, 0):
			return endgameData{EgKBNvK, lhs}
		case m.isOnly(0, 0, 1, 0):
			return endgameData{EgKRvK, lhs}
		case m.isOnly(0, 0, 0, 1):
			return endgameData{EgKQvK, lhs}
		case m.isOnly(0, 2, 0, 0):
			return endgameData{EgKBBvK, lhs}
		}
	}

	return endgameData{EgUnknown, White}
}

// matingMaterialSide returns which color is the lone-army side when the
// other color is a bare king, i.e. exactly one of the two sides has any
// material at all.
func matingMaterialSide(white, black materialCount) (Color, bool) {
	whiteBare := white.isBareKing()
	blackBare := black.isBareKing()
	if whiteBare == blackBare {
		return White, false
	}
	if whiteBare {
		return Black, true
	}
	return White, true
}

// losingKingCornerTable[sq] rewards pushing the defending king away from
// the center and towards any corner - used by every recognizer except
// KBNvK, which needs the color-complex-specific tables below.
var losingKingCornerTable [SqLength]int16

func init() {
	for sq := Square(0); sq < Square(SqLength); sq++ {
		losingKingCornerTable[sq] = int16(sq.CenterDistance())
	}
}

// kbnLoneKingBonus[bishopIsLight][sq] drives the lone king towards the
// corner matching the winning bishop's square color - the only corners a
// King+Bishop+Knight mate can actually be forced into.
var kbnLoneKingBonus = [2][SqLength]int16{
	// dark-squared bishop: force towards a1/h8
	{
		7, 6, 5, 4, 3, 2, 1, 0,
		6, 7, 6, 5, 4, 3, 2, 1,
		5, 6, 7, 6, 5, 4, 3, 2,
		4, 5, 6, 7, 6, 5, 4, 3,
		3, 4, 5, 6, 7, 6, 5, 4,
		2, 3, 4, 5, 6, 7, 6, 5,
		1, 2, 3, 4, 5, 6, 7, 6,
		0, 1, 2, 3, 4, 5, 6, 7,
	},
	// light-squared bishop: force towards a8/h1
	{
		0, 1, 2, 3, 4, 5, 6, 7,
		1, 2, 3, 4, 5, 6, 7, 6,
		2, 3, 4, 5, 6, 7, 6, 5,
		3, 4, 5, 6, 7, 6, 5, 4,
		4, 5, 6, 7, 6, 5, 4, 3,
		5, 6, 7, 6, 5, 4, 3, 2,
		6, 7, 6, 5, 4, 3, 2, 1,
		7, 6, 5, 4, 3, 2, 1, 0,
	},
}

// queenValue mirrors the material weight used elsewhere for a quick,
// phase-independent centipawn scale in the KPvK recognizer.
const queenValue = 900

// evaluateEndgame scores a position already classified by identify(),
// always from White's point of view, ready for finalEval to apply the
// side-to-move sign flip exactly as evaluate() does. ok is false when the
// recognizer declines to special-case this exact position (e.g. a KPvK
// where the pawn is not yet winning outright) and the caller should fall
// back to the generic evaluate().
func (e *Evaluator) evaluateEndgame(data endgameData) (value Value, ok bool) {
	switch data.egType {
	case EgKRvKN, EgKRvKB, EgKRvKR, EgKQvKQ:
		return ValueDraw, true
	case EgKPvK:
		v, recognized := e.evaluateKPvK(data.lhs)
		if !recognized {
			return 0, false
		}
		value = v
	case EgKBNvK:
		value = e.evaluateKBNvK(data.lhs)
	case EgKRvK, EgKQvK, EgKBBvK:
		value = e.evaluateCloseTheNet(data.lhs, data.egType)
	default:
		return 0, false
	}
	if data.lhs == Black {
		value = -value
	}
	return value, true
}

// evaluateKPvK handles the classical "square of the pawn" rule: once the
// defending king can no longer reach the pawn's path, promotion is certain
// and the score collapses to queen-value minus the remaining distance.
func (e *Evaluator) evaluateKPvK(lhs Color) (Value, bool) {
	rhs := lhs.Flip()
	pawns := e.position.PiecesBb(lhs, Pawn)
	if pawns == BbZero {
		return 0, false
	}
	pawnSq := pawns.Lsb()
	enemyKing := e.position.KingSquare(rhs)

	if !isInsideSquareOfThePawn(pawnSq, enemyKing, lhs, e.position.NextPlayer()) {
		dist := stepsFromPromotion(pawnSq, lhs)
		return Value(queenValue - dist*100), true
	}
	return 0, false
}

// isInsideSquareOfThePawn implements the classical rule: the defending
// king holds the draw iff it can reach the promotion square at least as
// fast as the pawn, with the side to move getting the tempo.
func isInsideSquareOfThePawn(pawnSq Square, kingSq Square, pawnColor Color, sideToMove Color) bool {
	promRank := Rank8
	if pawnColor == Black {
		promRank = Rank1
	}
	promSq := SquareOf(pawnSq.FileOf(), promRank)
	dist := stepsFromPromotion(pawnSq, pawnColor)
	if sideToMove != pawnColor {
		dist++ // defender moves first, effectively gaining one tempo
	}
	return SquareDistance(kingSq, promSq) <= dist
}

// evaluateKBNvK scores King+Bishop+Knight vs King: material plus a bonus
// for driving the lone king into the corner that matches the bishop's
// square color, since the mate is impossible in the other two corners.
func (e *Evaluator) evaluateKBNvK(lhs Color) Value {
	rhs := lhs.Flip()
	base := Bishop.ValueOf() + Knight.ValueOf() + Pawn.ValueOf()/2

	bishopBb := e.position.PiecesBb(lhs, Bishop)
	loneKing := e.position.KingSquare(rhs)

	table := 0
	if bishopBb != BbZero && SquaresBb(White).Has(bishopBb.Lsb()) {
		table = 1
	}

	return base + Value(kbnLoneKingBonus[table][loneKing])*50/7
}

// evaluateCloseTheNet scores King+Rook, King+Queen and King+Bishop+Bishop
// against a bare king: material, a bonus for walking the attacking king
// towards the defender (restricting its mobility), and a bonus for pushing
// the defending king towards any corner.
func (e *Evaluator) evaluateCloseTheNet(lhs Color, egType EndgameType) Value {
	rhs := lhs.Flip()

	var material Value
	switch egType {
	case EgKRvK:
		material = Rook.ValueOf()
	case EgKQvK:
		material = Queen.ValueOf()
	case EgKBBvK:
		material = 2 * Bishop.ValueOf()
	}

	winningKing := e.position.KingSquare(lhs)
	losingKing := e.position.KingSquare(rhs)

	closeness := 7 - SquareDistance(winningKing, losingKing)
	cornerBonus := losingKingCornerTable[losingKing]

	return material + Value(closeness*10) + Value(cornerBonus*10)
}
