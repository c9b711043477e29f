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

package transpositiontable

import (
	"math/rand"
	"os"
	"path"
	"runtime"
	"testing"
	"time"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/corvid-chess/corvid/internal/config"
	"github.com/corvid-chess/corvid/internal/logging"
	"github.com/corvid-chess/corvid/internal/position"
	. "github.com/corvid-chess/corvid/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	e := TtEntry{}
	assert.EqualValues(t, TtEntrySize, unsafe.Sizeof(e))
	logTest.Debugf("Size of Entry %d bytes", unsafe.Sizeof(e))
}

func TestNew(t *testing.T) {

	tt := NewTtTable(2)
	assert.Equal(t, uint64(65_536), tt.maxNumberOfEntries)
	assert.Equal(t, 65_536, cap(tt.data))
	logTest.Debug(tt.String())

	tt = NewTtTable(64)
	assert.Equal(t, uint64(2_097_152), tt.maxNumberOfEntries)
	assert.Equal(t, 2_097_152, cap(tt.data))

	tt = NewTtTable(100)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)
	assert.Equal(t, 4_194_304, cap(tt.data))

	tt = NewTtTable(4_096)
	assert.Equal(t, uint64(134_217_728), tt.maxNumberOfEntries)
	assert.Equal(t, 134_217_728, cap(tt.data))
}

func TestGetAndProbe(t *testing.T) {
	// setup
	tt := NewTtTable(64)

	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, DoublePush, WhitePawn, PieceNone, PtNone)
	tt.Put(pos.ZobristKey(), move, 5, Value(101), EXACT, ValueNA)

	// test to get unaltered entry
	e := tt.GetEntry(pos.ZobristKey())
	assert.Equal(t, pos.ZobristKey(), e.Key())
	assert.Equal(t, move.MoveOf(), e.Move().MoveOf())
	assert.EqualValues(t, 5, e.Depth())
	assert.EqualValues(t, 1, e.Age())
	assert.Equal(t, EXACT, e.Vtype())

	// age must be reduced by 1
	e = tt.Probe(pos.ZobristKey())
	assert.Equal(t, pos.ZobristKey(), e.Key())
	assert.EqualValues(t, 0, e.Age())

	// age does not go below 0
	e = tt.Probe(pos.ZobristKey())
	assert.EqualValues(t, 0, e.Age())

	// not in tt
	pos.DoMove(move)
	e = tt.Probe(pos.ZobristKey())
	assert.Nil(t, e)
}

func TestClear(t *testing.T) {
	// setup
	tt := NewTtTable(1)

	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, DoublePush, WhitePawn, PieceNone, PtNone)
	tt.Put(pos.ZobristKey(), move, 5, Value(101), EXACT, ValueNA)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()

	// entry is gone
	e := tt.Probe(pos.ZobristKey())
	assert.Nil(t, e)
	assert.EqualValues(t, 0, tt.Len())
}

func TestRemove(t *testing.T) {
	tt := NewTtTable(1)
	move := CreateMove(SqE2, SqE4, DoublePush, WhitePawn, PieceNone, PtNone)

	tt.Put(111, move, 5, Value(101), EXACT, ValueNA)
	assert.EqualValues(t, 1, tt.Len())

	// a non matching key in the same bucket is not removed
	collisionKey := position.Key(111 + tt.maxNumberOfEntries)
	tt.Remove(collisionKey)
	assert.EqualValues(t, 1, tt.Len())
	assert.NotNil(t, tt.Probe(111))

	tt.Remove(111)
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(111))
}

func TestAge(t *testing.T) {
	// setup
	tt := NewTtTable(16)
	move := CreateMove(SqE2, SqE4, DoublePush, WhitePawn, PieceNone, PtNone)

	tt.Put(111, move, 5, Value(101), EXACT, ValueNA)
	tt.Put(112, move, 5, Value(101), EXACT, ValueNA)

	assert.EqualValues(t, 1, tt.GetEntry(111).Age())
	assert.EqualValues(t, 1, tt.GetEntry(112).Age())

	tt.AgeEntries()

	assert.EqualValues(t, 2, tt.GetEntry(111).Age())
	assert.EqualValues(t, 2, tt.GetEntry(112).Age())
}

func TestPut(t *testing.T) {
	// setup
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, DoublePush, WhitePawn, PieceNone, PtNone)

	// test of put and probe
	tt.Put(111, move, 4, Value(111), ALPHA, ValueNA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)
	e := tt.Probe(111)
	assert.EqualValues(t, 111, e.Key())
	assert.EqualValues(t, move.MoveOf(), e.Move().MoveOf())
	assert.EqualValues(t, 111, e.Value())
	assert.EqualValues(t, 4, e.Depth())
	assert.EqualValues(t, ALPHA, e.Vtype())
	assert.EqualValues(t, 0, e.Age())

	// test of put update and probe
	tt.Put(111, move, 5, Value(112), BETA, ValueNA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)
	e = tt.Probe(111)
	assert.EqualValues(t, 111, e.Key())
	assert.EqualValues(t, 112, e.Value())
	assert.EqualValues(t, 5, e.Depth())
	assert.EqualValues(t, BETA, e.Vtype())

	// test of collision - higher depth wins the bucket
	collisionKey := position.Key(111 + tt.maxNumberOfEntries)
	tt.Put(collisionKey, move, 6, Value(113), EXACT, ValueNA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 3, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e = tt.Probe(collisionKey)
	assert.EqualValues(t, collisionKey, e.Key())
	assert.EqualValues(t, 113, e.Value())
	assert.EqualValues(t, 6, e.Depth())
	assert.EqualValues(t, EXACT, e.Vtype())

	// test of collision with lower depth - resident entry stays
	collisionKey2 := position.Key(111 + (tt.maxNumberOfEntries << 1))
	tt.Put(collisionKey2, move, 4, Value(114), BETA, ValueNA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 4, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 2, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e = tt.Probe(collisionKey2)
	assert.Nil(t, e)
	e = tt.Probe(collisionKey)
	assert.EqualValues(t, collisionKey, e.Key())
	assert.EqualValues(t, 113, e.Value())
	assert.EqualValues(t, 6, e.Depth())
}

// the stored move must survive the round trip through the entry encoding
// with all its identity fields intact
func TestMoveRoundTrip(t *testing.T) {
	tt := NewTtTable(1)

	moves := []Move{
		CreateMove(SqE2, SqE4, DoublePush, WhitePawn, PieceNone, PtNone),
		CreateMove(SqE4, SqD5, SimpleCapture, WhitePawn, BlackPawn, PtNone),
		CreateMove(SqE7, SqE8, SimplePromotion, WhitePawn, PieceNone, Queen),
		CreateMove(SqD7, SqC8, PromotionCapture, WhitePawn, BlackRook, Knight),
		CreateMove(SqE1, SqG1, CastlesShort, WhiteKing, PieceNone, PtNone),
	}
	for i, m := range moves {
		key := position.Key(1000 + i)
		tt.Put(key, m, 5, Value(42), EXACT, ValueNA)
		e := tt.Probe(key)
		assert.NotNil(t, e)
		stored := e.Move()
		assert.Equal(t, m.MoveOf(), stored.MoveOf())
		assert.Equal(t, m.From(), stored.From())
		assert.Equal(t, m.To(), stored.To())
		assert.Equal(t, m.MoveType(), stored.MoveType())
		assert.Equal(t, m.MovingPiece(), stored.MovingPiece())
		assert.Equal(t, m.CapturedPiece(), stored.CapturedPiece())
		if m.MoveType().IsPromotion() {
			assert.Equal(t, m.PromotionType(), stored.PromotionType())
		}
	}
}

func TestTimingTTe(t *testing.T) {

	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	// setup
	tt := NewTtTable(1_024)
	move := CreateMove(SqE2, SqE4, DoublePush, WhitePawn, PieceNone, PtNone)

	const rounds = 5
	const iterations uint64 = 50_000_000

	for r := 1; r <= rounds; r++ {
		out.Printf("Round %d\n", r)
		key := position.Key(rand.Uint64())
		depth := int8(rand.Int31n(128))
		value := Value(rand.Int31n(int32(ValueMax)))
		valueType := ValueType(rand.Int31n(4))
		start := time.Now()
		for i := uint64(0); i < iterations; i++ {
			tt.Put(key+position.Key(i), move, depth, value, valueType, ValueNA)
		}
		for i := uint64(0); i < iterations; i++ {
			key := position.Key(key + position.Key(2*i))
			_ = tt.Probe(key)
		}
		elapsed := time.Since(start)
		out.Println(tt.String())
		out.Printf("TimingTT took %d ns for %d iterations (1 put 1 probe)\n", elapsed.Nanoseconds(), iterations)
		out.Printf("1 put/probes in %d ns: %d tts\n",
			elapsed.Nanoseconds()/int64(iterations),
			(iterations*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()))

	}
}
