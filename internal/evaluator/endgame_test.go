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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvid-chess/corvid/internal/config"
	"github.com/corvid-chess/corvid/internal/position"
	. "github.com/corvid-chess/corvid/internal/types"
)

func TestIdentifyEndgames(t *testing.T) {
	tests := []struct {
		fen    string
		egType EndgameType
		lhs    Color
	}{
		{"8/8/3k4/8/5P2/8/4K3/8 w - -", EgKPvK, White},
		{"8/8/3K4/8/5p2/8/4k3/8 b - -", EgKPvK, Black},
		{"8/8/3k4/8/8/8/4K3/4BN2 w - -", EgKBNvK, White},
		{"8/8/3k4/8/8/8/4K3/4R3 w - -", EgKRvK, White},
		{"8/8/3k4/8/7Q/8/4K3/8 w - -", EgKQvK, White},
		{"8/8/3k4/8/8/8/4K3/4BB2 w - -", EgKBBvK, White},
		{"8/8/3k1n2/8/8/8/4K3/4R3 w - -", EgKRvKN, White},
		{"8/8/3k1b2/8/8/8/4K3/4R3 w - -", EgKRvKB, White},
		{"8/8/3k1r2/8/8/8/4K3/4R3 w - -", EgKRvKR, White},
		{"8/8/3k1q2/8/8/8/4K3/4Q3 w - -", EgKQvKQ, White},
		// composite material is no recognized endgame
		{"8/8/3k1q2/8/8/8/4K3/4R3 w - -", EgUnknown, White},
		{position.StartFen, EgUnknown, White},
	}

	for _, test := range tests {
		p, err := position.NewPositionFen(test.fen)
		assert.NoError(t, err)
		data := identify(p)
		assert.Equal(t, test.egType, data.egType, "identify(%s)", test.fen)
		if data.egType != EgUnknown {
			assert.Equal(t, test.lhs, data.lhs, "lhs of %s", test.fen)
		}
	}
}

func TestEndgameKQvK(t *testing.T) {
	Settings.Eval.UseEndgameEval = true
	e := NewEvaluator()

	p, _ := position.NewPositionFen("8/8/3k4/8/7Q/8/4K3/8 w - -")
	data := identify(p)
	assert.Equal(t, EgKQvK, data.egType)
	assert.Equal(t, White, data.lhs)

	// large positive for white to move, large negative when black is to move
	value := e.Evaluate(p)
	assert.Greater(t, int(value), 500)

	p, _ = position.NewPositionFen("8/8/3k4/8/7Q/8/4K3/8 b - -")
	value = e.Evaluate(p)
	assert.Less(t, int(value), -500)
}

func TestEndgameDrawnMaterial(t *testing.T) {
	Settings.Eval.UseEndgameEval = true
	e := NewEvaluator()

	// bare kings are a draw no matter who is to move
	p, _ := position.NewPositionFen("8/3k4/8/8/8/8/4K3/8 w - -")
	assert.Equal(t, ValueDraw, e.Evaluate(p))
	p, _ = position.NewPositionFen("8/3k4/8/8/8/8/4K3/8 b - -")
	assert.Equal(t, ValueDraw, e.Evaluate(p))

	// rook against rook without pawns is a known draw
	p, _ = position.NewPositionFen("8/8/3k1r2/8/8/8/4K3/4R3 w - -")
	assert.Equal(t, ValueDraw, e.Evaluate(p))
}

func TestKPvKSquareOfThePawn(t *testing.T) {
	Settings.Eval.UseEndgameEval = true
	e := NewEvaluator()

	// black king far outside the square of the pawn - white is winning by
	// promotion and the score collapses to near queen value
	p, _ := position.NewPositionFen("8/8/8/8/5P2/8/k3K3/8 w - -")
	value := e.Evaluate(p)
	assert.Greater(t, int(value), 400)

	// defending king inside the square - recognizer declines and the
	// generic evaluation keeps the score modest
	p, _ = position.NewPositionFen("8/5k2/8/8/5P2/8/4K3/8 w - -")
	value = e.Evaluate(p)
	assert.Less(t, int(value), 400)
}

// mirrorFen mirrors a position across the ranks and swaps the colors of
// all pieces, castling rights and the side to move.
func mirrorFen(fen string) string {
	parts := strings.Split(strings.TrimSpace(fen), " ")

	// board: reverse rank order, swap piece case
	ranks := strings.Split(parts[0], "/")
	mirrored := make([]string, len(ranks))
	for i, r := range ranks {
		mirrored[len(ranks)-1-i] = swapCase(r)
	}
	board := strings.Join(mirrored, "/")

	sideToMove := "w"
	if parts[1] == "w" {
		sideToMove = "b"
	}

	castling := "-"
	if len(parts) >= 3 && parts[2] != "-" {
		castling = swapCase(parts[2])
	}

	ep := "-"
	if len(parts) >= 4 && parts[3] != "-" {
		file := parts[3][:1]
		if parts[3][1] == '3' {
			ep = file + "6"
		} else {
			ep = file + "3"
		}
	}

	return board + " " + sideToMove + " " + castling + " " + ep
}

func swapCase(s string) string {
	var sb strings.Builder
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
			sb.WriteRune(c - 'a' + 'A')
		case c >= 'A' && c <= 'Z':
			sb.WriteRune(c - 'A' + 'a')
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// mirroring a position across the ranks and swapping the colors must
// yield the same score from the (also swapped) side to move's view
func TestEvaluatorSymmetry(t *testing.T) {
	Settings.Eval.UseMaterialEval = true
	Settings.Eval.UsePositionalEval = true
	Settings.Eval.UseAdvancedPieceEval = true
	Settings.Eval.UseKingEval = true
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = false
	Settings.Eval.UseLazyEval = false
	oldTempo := Settings.Eval.Tempo
	Settings.Eval.Tempo = 0
	defer func() { Settings.Eval.Tempo = oldTempo }()

	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"r1bqkb1r/ppp1pppp/2n2n2/1B1P4/8/8/PPPP1PPP/RNBQK1NR w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
	}

	e := NewEvaluator()
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		assert.NoError(t, err)
		m, err := position.NewPositionFen(mirrorFen(fen))
		assert.NoError(t, err)
		assert.Equal(t, e.Evaluate(p), e.Evaluate(m), "eval asymmetry on %s", fen)
	}
}
