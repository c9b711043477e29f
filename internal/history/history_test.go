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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvid-chess/corvid/internal/types"
)

func TestHistoryRewardFavorsDeeperCutoffs(t *testing.T) {
	h := NewHistory()
	h.Reward(White, SqE2, SqE4, 2)
	shallow := h.HistoryCount[White][SqE2][SqE4]
	h2 := NewHistory()
	h2.Reward(White, SqE2, SqE4, 6)
	deep := h2.HistoryCount[White][SqE2][SqE4]

	assert.Equal(t, int64(4), shallow)
	assert.Equal(t, int64(36), deep)
	assert.Greater(t, deep, shallow)
}

func TestHistoryPenalizeNeverGoesNegative(t *testing.T) {
	h := NewHistory()
	h.Penalize(Black, SqD7, SqD5, 4)
	assert.Equal(t, int64(0), h.HistoryCount[Black][SqD7][SqD5])
}

func TestHistoryRewardCapsAtBonusCeiling(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 10000; i++ {
		h.Reward(White, SqA1, SqA2, 64)
	}
	assert.LessOrEqual(t, h.HistoryCount[White][SqA1][SqA2], int64(1)<<20)
}

func TestHistoryStoreCounterMove(t *testing.T) {
	h := NewHistory()
	lastMove := CreateMove(SqE7, SqE5, DoublePush, BlackPawn, PieceNone, PtNone)
	reply := CreateMove(SqG1, SqF3, Normal, WhiteKnight, PieceNone, PtNone)
	h.StoreCounterMove(lastMove, reply)
	assert.Equal(t, reply, h.CounterMoves[lastMove.From()][lastMove.To()])
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory()
	h.Reward(White, SqE2, SqE4, 3)
	lastMove := CreateMove(SqE7, SqE5, DoublePush, BlackPawn, PieceNone, PtNone)
	reply := CreateMove(SqG1, SqF3, Normal, WhiteKnight, PieceNone, PtNone)
	h.StoreCounterMove(lastMove, reply)

	h.Reset()

	assert.Equal(t, int64(0), h.HistoryCount[White][SqE2][SqE4])
	assert.Equal(t, MoveNone, h.CounterMoves[lastMove.From()][lastMove.To()])
}
