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

package search

import (
	"sort"
	"time"

	"github.com/corvid-chess/corvid/internal/moveslice"
	. "github.com/corvid-chess/corvid/internal/types"
)

// //////////////////////////////////////////////////////
// Result
// //////////////////////////////////////////////////////

// Result is the external search-results object. If BestMove is not
// MoveNone all other fields can be assumed valid. SearchedVariations
// mirrors Pv for multi-PV callers; entries are kept sorted so that
// Exact lines precede bounded ones, then by descending score.
type Result struct {
	BestMove           Move
	BestValue          Value
	PonderMove         Move
	SearchTime         time.Duration
	SearchDepth        int
	ExtraDepth         int
	VisitedNodes       uint64
	Pv                 moveslice.MoveSlice
	SearchedVariations []Variation
}

// Variation is one line in a multi-PV result set.
type Variation struct {
	Type  ValueType
	Score Value
	Moves moveslice.MoveSlice
}

// SortVariations orders SearchedVariations so that exact lines precede
// bounded ones and lines of the same type are sorted by descending score.
func (searchResult *Result) SortVariations() {
	sort.SliceStable(searchResult.SearchedVariations, func(i, j int) bool {
		a := searchResult.SearchedVariations[i]
		b := searchResult.SearchedVariations[j]
		if (a.Type == EXACT) != (b.Type == EXACT) {
			return a.Type == EXACT
		}
		return a.Score > b.Score
	})
}

func (searchResult *Result) String() string {
	return out.Sprintf("bestmove = %s, value = %s (%d), ponder = %s, search time = %d ms, search depth = %d/%d, nodes = %d, pv = %s",
		searchResult.BestMove.StringUci(), searchResult.BestValue.String(), searchResult.BestValue, searchResult.PonderMove.StringUci(),
		searchResult.SearchTime.Milliseconds(), searchResult.SearchDepth, searchResult.ExtraDepth, searchResult.VisitedNodes,
		searchResult.Pv.StringUci())
}
