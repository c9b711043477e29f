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

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvid-chess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting.
type History struct {
	HistoryCount [2][64][64]int64
	CounterMoves [64][64]Move
}

// historyBonusCap keeps a single depth*depth bonus from ever overflowing a
// reasonable sort range after many repeated beta cuts at the same depth -
// the table saturates instead of growing without bound across a long game.
const historyBonusCap = int64(1) << 20

// Reward increases the history score for a move that caused a beta cut-off.
// The bonus scales with depth*depth so a cut-off found deep in the tree
// moves the move further up the ordering than a shallow one.
func (h *History) Reward(us Color, from, to Square, depth int) {
	bonus := int64(depth) * int64(depth)
	count := h.HistoryCount[us][from][to] + bonus
	if count > historyBonusCap {
		count = historyBonusCap
	}
	h.HistoryCount[us][from][to] = count
}

// Penalize lowers the history score for a quiet move that was searched but
// did not cause a cut-off, by half the bonus Reward would have given it at
// the same depth, clamped at zero so a move can never sort worse than an
// untried one.
func (h *History) Penalize(us Color, from, to Square, depth int) {
	bonus := int64(depth) * int64(depth) / 2
	count := h.HistoryCount[us][from][to] - bonus
	if count < 0 {
		count = 0
	}
	h.HistoryCount[us][from][to] = count
}

// StoreCounterMove records move as the reply that refuted lastMove.
func (h *History) StoreCounterMove(lastMove, move Move) {
	h.CounterMoves[lastMove.From()][lastMove.To()] = move
}

// Reset clears all history and counter-move state, used between searches of
// unrelated positions so stale move-ordering data from a prior game does not
// leak into the next one.
func (h *History) Reset() {
	h.HistoryCount = [2][64][64]int64{}
	h.CounterMoves = [64][64]Move{}
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for c := White; c <= 1; c++ {
				count := h.HistoryCount[c][sf][st]
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), count))
			}
			m := h.CounterMoves[sf][st]
			sb.WriteString(out.Sprintf("cm=%s\n", m.StringUci()))
		}
	}
	return sb.String()
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}
