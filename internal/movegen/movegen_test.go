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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-chess/corvid/internal/position"
	. "github.com/corvid-chess/corvid/internal/types"
)

// every move the legal generator emits must also pass the pseudo legal
// check - this is what allows a transposition table move to be replayed
// after validation with the same predicate
func TestGeneratedMovesArePseudoLegal(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"r1b1r3/1pp2p1p/3p4/2b2Pk1/p1PPp1Pn/P6R/1P2BP1P/R1B1K3 b Q d3 0 22",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
	}
	mg := NewMoveGen()
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		assert.NoError(t, err)
		for _, m := range *mg.GenerateLegalMoves(p, GenAll) {
			assert.True(t, p.IsMovePseudoLegal(m.MoveOf()),
				"move %s not pseudo legal on %s", m.StringUci(), fen)
		}
	}
}

// making and unmaking every legal move must restore the position exactly,
// including the zobrist key
func TestDoUndoRoundTrip(t *testing.T) {
	p, _ := position.NewPositionFen("r1b1r3/1pp2p1p/3p4/2b2Pk1/p1PPp1Pn/P6R/1P2BP1P/R1B1K3 b Q d3 0 22")
	mg := NewMoveGen()

	fenBefore := p.StringFen()
	keyBefore := p.ZobristKey()

	for _, m := range *mg.GenerateLegalMoves(p, GenAll) {
		p.DoMove(m)
		p.UndoMove()
		assert.Equal(t, fenBefore, p.StringFen(), "fen changed after %s", m.StringUci())
		assert.Equal(t, keyBefore, p.ZobristKey(), "zobrist changed after %s", m.StringUci())
	}
}

// the on demand generator must produce the same move set as the bulk
// generator, just in its phased order
func TestOnDemandMatchesBulk(t *testing.T) {
	p, _ := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")

	bulk := NewMoveGen().GeneratePseudoLegalMoves(p, GenAll)
	expected := make(map[Move]bool, bulk.Len())
	for _, m := range *bulk {
		expected[m.MoveOf()] = true
	}

	od := NewMoveGen()
	count := 0
	for m := od.GetNextMove(p, GenAll, p.HasCheck()); m != MoveNone; m = od.GetNextMove(p, GenAll, p.HasCheck()) {
		assert.True(t, expected[m.MoveOf()], "unexpected move %s", m.StringUci())
		count++
	}
	assert.Equal(t, bulk.Len(), count)
}

// noisy only generation must emit exactly the captures, promotions and
// en passant moves of the full move set
func TestNonQuietGeneration(t *testing.T) {
	p, _ := position.NewPositionFen("r1b1r3/1pp2p1p/3p4/2b2Pk1/p1PPp1Pn/P6R/1P2BP1P/R1B1K3 b Q d3 0 22")

	mg := NewMoveGen()
	nonQuiet := mg.GeneratePseudoLegalMoves(p, GenNonQuiet).Clone()
	for _, m := range *nonQuiet {
		assert.True(t, m.MoveType().IsCapture() || m.MoveType().IsPromotion(),
			"quiet move %s in non quiet generation", m.StringUci())
	}

	all := mg.GeneratePseudoLegalMoves(p, GenAll)
	wantNonQuiet := 0
	for _, m := range *all {
		if m.MoveType().IsCapture() || m.MoveType().IsPromotion() {
			wantNonQuiet++
		}
	}
	assert.Equal(t, wantNonQuiet, nonQuiet.Len())
}
