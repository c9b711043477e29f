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
	. "github.com/corvid-chess/corvid/internal/config"
	"github.com/corvid-chess/corvid/internal/position"
	. "github.com/corvid-chess/corvid/internal/types"
)

// FileState classifies a file by its pawn occupation.
type FileState uint8

// FileState constants. Seen from one side, a file is open when neither
// side has a pawn on it, semi open when only the opponent has one and
// closed whenever the side itself has a pawn on it.
const (
	FileOpen FileState = iota
	FileSemiOpen
	FileClosed
)

// fileState returns the FileState of file f from the view of color us.
// Semi open means us has no pawn on the file but the opponent has.
func fileState(p *position.Position, us Color, f File) FileState {
	fileBb := f.Bb()
	ourPawns := p.PiecesBb(us, Pawn) & fileBb
	theirPawns := p.PiecesBb(us.Flip(), Pawn) & fileBb
	switch {
	case ourPawns == BbZero && theirPawns == BbZero:
		return FileOpen
	case ourPawns == BbZero:
		return FileSemiOpen
	default:
		return FileClosed
	}
}

// KingsDistribution classifies on which board half (king side e-h,
// queen side a-d) the two kings stand. The first letter is the white
// king's half, the second the black king's.
type KingsDistribution uint8

// KingsDistribution constants.
const (
	KDistKK KingsDistribution = iota
	KDistKQ
	KDistQK
	KDistQQ
)

// kingsDistribution returns the distribution class for the current king
// placement of the position.
func kingsDistribution(p *position.Position) KingsDistribution {
	whiteOnKingSide := p.KingSquare(White).FileOf() >= FileE
	blackOnKingSide := p.KingSquare(Black).FileOf() >= FileE
	switch {
	case whiteOnKingSide && blackOnKingSide:
		return KDistKK
	case whiteOnKingSide:
		return KDistKQ
	case blackOnKingSide:
		return KDistQK
	default:
		return KDistQQ
	}
}

// passedPawns returns all pawns of us with no opposing pawn ahead on
// their own or a neighbouring file.
func passedPawns(p *position.Position, us Color) Bitboard {
	theirPawns := p.PiecesBb(us.Flip(), Pawn)
	result := BbZero
	pawns := p.PiecesBb(us, Pawn)
	for pawns != BbZero {
		sq := pawns.PopLsb()
		if sq.PassedPawnMask(us)&theirPawns == BbZero {
			result.PushSquare(sq)
		}
	}
	return result
}

// connectedPawns returns all pawns of us with a friendly pawn beside
// them (phalanx) or defending them (supported).
func connectedPawns(p *position.Position, us Color) Bitboard {
	ourPawns := p.PiecesBb(us, Pawn)
	result := BbZero
	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()
		phalanx := sq.NeighbourFilesMask() & sq.RankOf().Bb() & ourPawns
		supported := GetPawnAttacks(us.Flip(), sq) & ourPawns
		if phalanx != BbZero || supported != BbZero {
			result.PushSquare(sq)
		}
	}
	return result
}

// backwardPawns returns all pawns of us which can no longer be defended
// by a friendly pawn and whose stop square is guarded by an enemy pawn,
// so they can't safely advance to rejoin their neighbours either.
func backwardPawns(p *position.Position, us Color) Bitboard {
	them := us.Flip()
	ourPawns := p.PiecesBb(us, Pawn)
	theirPawns := p.PiecesBb(them, Pawn)
	result := BbZero
	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()
		// squares from which a friendly pawn could still defend this pawn:
		// neighbouring files, same rank or behind
		behindMask := sq.RanksNorthMask() | sq.RankOf().Bb()
		if us == White {
			behindMask = sq.RanksSouthMask() | sq.RankOf().Bb()
		}
		if sq.NeighbourFilesMask()&behindMask&ourPawns != BbZero {
			continue
		}
		// the reverse color attack set gives the squares an enemy pawn
		// would guard the stop square from
		stopSq := sq.To(us.MoveDirection())
		if GetPawnAttacks(us, stopSq)&theirPawns != BbZero {
			result.PushSquare(sq)
		}
	}
	return result
}

// blockingPawns returns all pawns of us with another friendly pawn
// ahead of them on the same file (doubled pawns seen from behind).
func blockingPawns(p *position.Position, us Color) Bitboard {
	ourPawns := p.PiecesBb(us, Pawn)
	result := BbZero
	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()
		aheadMask := sq.RanksNorthMask()
		if us == Black {
			aheadMask = sq.RanksSouthMask()
		}
		if aheadMask&sq.FileOf().Bb()&ourPawns != BbZero {
			result.PushSquare(sq)
		}
	}
	return result
}

// outpostSquares returns the squares in the opponent's half which are
// defended by one of our pawns and which no enemy pawn on the same or a
// neighbouring file can ever contest - candidate squares for a minor
// piece outpost.
func outpostSquares(p *position.Position, us Color) Bitboard {
	them := us.Flip()
	theirHalf := Rank5.Bb() | Rank6.Bb() | Rank7.Bb() | Rank8.Bb()
	if us == Black {
		theirHalf = Rank1.Bb() | Rank2.Bb() | Rank3.Bb() | Rank4.Bb()
	}
	result := BbZero
	candidates := theirHalf
	for candidates != BbZero {
		sq := candidates.PopLsb()
		if sq.PassedPawnMask(us)&p.PiecesBb(them, Pawn) == BbZero &&
			GetPawnAttacks(them, sq)&p.PiecesBb(us, Pawn) != BbZero {
			result.PushSquare(sq)
		}
	}
	return result
}

func (e *Evaluator) evaluatePawns() *Score {
	pawnScore.MidGameValue = 0
	pawnScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			pawnScore.MidGameValue = entry.score.MidGameValue
			pawnScore.EndGameValue = entry.score.EndGameValue
			return &pawnScore
		}
	}

	e.evaluatePawnsOfColor(White)
	e.evaluatePawnsOfColor(Black)

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &pawnScore)
	}

	return &pawnScore
}

// evaluatePawnsOfColor scores structural features - passed, isolated,
// backward, doubled/blocking, connected (phalanx/supported) - for one
// color's pawns and adds (for White) or subtracts (for Black) the result
// into pawnScore.
func (e *Evaluator) evaluatePawnsOfColor(us Color) {
	sign := int16(us.Direction())

	ourPawns := e.position.PiecesBb(us, Pawn)
	if ourPawns == BbZero {
		return
	}

	backward := backwardPawns(e.position, us)
	blocking := blockingPawns(e.position, us)
	connected := connectedPawns(e.position, us)
	passers := passedPawns(e.position, us)

	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()

		// isolated: no own pawn on a neighbouring file
		if (sq.NeighbourFilesMask() & ourPawns) == BbZero {
			pawnScore.MidGameValue += sign * Settings.Eval.PawnIsolatedMidMalus
			pawnScore.EndGameValue += sign * Settings.Eval.PawnIsolatedEndMalus
		}
		if backward.Has(sq) {
			pawnScore.MidGameValue += sign * Settings.Eval.PawnBackwardMidMalus
			pawnScore.EndGameValue += sign * Settings.Eval.PawnBackwardEndMalus
		}
		if blocking.Has(sq) {
			pawnScore.MidGameValue += sign * Settings.Eval.PawnBlockedMidMalus
			pawnScore.EndGameValue += sign * Settings.Eval.PawnBlockedEndMalus
		}
		if connected.Has(sq) {
			pawnScore.MidGameValue += sign * Settings.Eval.PawnSupportedMidBonus
			pawnScore.EndGameValue += sign * Settings.Eval.PawnSupportedEndBonus
		}

		// passed: no opposing pawn can ever stop or capture this pawn on its
		// way to promotion - scaled by how close it already is
		if passers.Has(sq) {
			idx := stepsFromPromotion(sq, us)
			if idx >= len(passedPawnStepBonus) {
				idx = len(passedPawnStepBonus) - 1
			}
			pawnScore.MidGameValue += sign * passedPawnStepBonus[idx].MidGameValue
			pawnScore.EndGameValue += sign * passedPawnStepBonus[idx].EndGameValue
		}
	}
}

// evaluateKingPawns scores the king relative to the pawn structure for
// one color. These terms depend on king placement and therefore must not
// go through the pawn cache, which is keyed on pawn structure alone.
func (e *Evaluator) evaluateKingPawns(us Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	them := us.Flip()
	ourKing := e.position.KingSquare(us)
	ourPawns := e.position.PiecesBb(us, Pawn)

	// king to pawn distance matters once material comes off the board -
	// a king far from the remaining pawns loses the race
	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()
		tmpScore.EndGameValue -= int16(SquareDistance(ourKing, sq)) * Settings.Eval.KingPawnDistanceMalus
	}

	// with kings on opposite halves advanced pawns on the enemy king's
	// half are storming pawns, not weaknesses
	dist := kingsDistribution(e.position)
	if dist == KDistKQ || dist == KDistQK {
		enemyKingHalf := kingSideFiles
		if e.position.KingSquare(them).FileOf() < FileE {
			enemyKingHalf = queenSideFiles
		}
		stormers := ourPawns & enemyKingHalf
		for stormers != BbZero {
			sq := stormers.PopLsb()
			advance := int16(sq.RankOf())
			if us == Black {
				advance = int16(Rank8 - sq.RankOf())
			}
			tmpScore.MidGameValue += advance * Settings.Eval.PawnStormBonus
		}
	}

	return &tmpScore
}

var kingSideFiles = FileE.Bb() | FileF.Bb() | FileG.Bb() | FileH.Bb()
var queenSideFiles = FileA.Bb() | FileB.Bb() | FileC.Bb() | FileD.Bb()

// pawnScore is the reused accumulator for pawn structure evaluation to
// avoid per-call allocation.
var pawnScore = Score{}

// passedPawnStepBonus scales Settings.Eval.PawnPassed{Mid,End}Bonus by how
// close the pawn already is to promotion (index 0 == about to promote).
var passedPawnStepBonus [7]Score

func init() {
	for steps := 0; steps < len(passedPawnStepBonus); steps++ {
		scale := int16(len(passedPawnStepBonus) - steps)
		passedPawnStepBonus[steps] = Score{
			MidGameValue: Settings.Eval.PawnPassedMidBonus * scale / int16(len(passedPawnStepBonus)),
			EndGameValue: Settings.Eval.PawnPassedEndBonus * scale / int16(len(passedPawnStepBonus)),
		}
	}
}

// stepsFromPromotion returns how many ranks the pawn on sq still needs to
// advance before it reaches the promotion rank for color c.
func stepsFromPromotion(sq Square, c Color) int {
	if c == White {
		return int(Rank8 - sq.RankOf())
	}
	return int(sq.RankOf() - Rank1)
}
