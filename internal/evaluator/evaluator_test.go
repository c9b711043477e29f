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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvid-chess/corvid/internal/config"
	"github.com/corvid-chess/corvid/internal/position"
	. "github.com/corvid-chess/corvid/internal/types"
)

func TestKnightOutpostBonus(t *testing.T) {
	Settings.Eval.UseAdvancedPieceEval = true
	Settings.Eval.KnightOutpostBonus = 18

	e := NewEvaluator()

	// White knight on d5 defended by a pawn on e4, with no black pawn on
	// c, d or e file able to ever challenge the square - a textbook outpost.
	outpost, _ := position.NewPositionFen("4k3/8/8/3N4/4P3/8/8/4K3 w - - 0 1")
	e.InitEval(outpost)
	withOutpost := e.evalPiece(White, Knight)
	assert.EqualValues(t, 18, withOutpost.MidGameValue)
	assert.EqualValues(t, 9, withOutpost.EndGameValue)

	// Same knight square but the only white pawn is on b2, so the knight
	// is not defended by a pawn - no bonus.
	noOutpost, _ := position.NewPositionFen("4k3/8/8/3N4/8/8/1P6/4K3 w - - 0 1")
	e.InitEval(noOutpost)
	withoutOutpost := e.evalPiece(White, Knight)
	assert.EqualValues(t, 0, withoutOutpost.MidGameValue)
}
