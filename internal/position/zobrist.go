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

package position

import (
	. "github.com/corvid-chess/corvid/internal/types"
)

// zobristKeys holds every random key a Position XORs into its zobristKey.
// All fields are populated once by initZobrist() and never change again -
// they are immutable for the lifetime of the process.
type zobristKeys struct {
	// pieces[piece][square] covers every (color, pieceType, square) triple.
	pieces [PieceLength][SqLength]Key
	// nextPlayer is XORed in whenever the side to move changes.
	nextPlayer Key
	// castlingRights is indexed by the full CastlingRights bitmask so a
	// change in rights can be un-XORed and re-XORed in one step.
	castlingRights [CastlingAny + 1]Key
	// enPassantFile is indexed by file - the rank is implied by side to
	// move, so file alone is enough to distinguish ep states.
	enPassantFile [int(FileNone) + 1]Key
}

// zobristBase is the single package-wide table of zobrist keys, built by
// initZobrist() before any Position is constructed.
var zobristBase zobristKeys

// zobristSeed is a fixed seed so the generated keys - and therefore every
// zobrist hash ever produced - are stable across runs and processes.
const zobristSeed uint64 = 1_070_372

// initZobrist seeds zobristBase from a deterministic PRNG. Called once by
// this package's init(); calling it again would reseed the keys, so it must
// never run after a Position has been created.
func initZobrist() {
	r := NewRandom(zobristSeed)

	for pc := 0; pc < PieceLength; pc++ {
		for sq := 0; sq < SqLength; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.Rand64())
		}
	}

	zobristBase.nextPlayer = Key(r.Rand64())

	for cr := CastlingRights(0); cr <= CastlingAny; cr++ {
		zobristBase.castlingRights[cr] = Key(r.Rand64())
	}

	for f := FileA; f <= FileNone; f++ {
		zobristBase.enPassantFile[f] = Key(r.Rand64())
	}
}

// computeZobristKey recalculates the position's zobrist key from scratch
// off the board state. DoMove/UndoMove maintain the key incrementally;
// this is the canonical definition the incremental path must agree with.
// Used when a position is first set up from a fen and by tests that
// validate the incremental updates.
func (p *Position) computeZobristKey() Key {
	var key Key
	for sq := SqA1; sq < SqNone; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			key ^= zobristBase.pieces[pc][sq]
		}
	}
	if p.nextPlayer == Black {
		key ^= zobristBase.nextPlayer
	}
	key ^= zobristBase.castlingRights[p.castlingRights]
	if p.enPassantSquare != SqNone {
		key ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
	}
	return key
}
