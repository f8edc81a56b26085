//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

	. "github.com/chessgo/engine/internal/types"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	assert.EqualValues(t, 0, h.HistoryCount[White][SqE2][SqE4])
	assert.EqualValues(t, MoveNone, h.CounterMoves[SqE2][SqE4])
}

func TestHistoryCountAccumulates(t *testing.T) {
	h := NewHistory()
	h.HistoryCount[White][SqE2][SqE4] += 1 << 3
	h.HistoryCount[White][SqE2][SqE4] += 1 << 5
	assert.EqualValues(t, (1<<3)+(1<<5), h.HistoryCount[White][SqE2][SqE4])
	assert.EqualValues(t, 0, h.HistoryCount[Black][SqE2][SqE4])
}

func TestCounterMoves(t *testing.T) {
	h := NewHistory()
	lastMove := CreateMove(SqD2, SqD4, Normal)
	counter := CreateMove(SqG8, SqF6, Normal)
	h.CounterMoves[lastMove.From()][lastMove.To()] = counter
	assert.EqualValues(t, counter, h.CounterMoves[lastMove.From()][lastMove.To()])
}

func TestHistoryString(t *testing.T) {
	h := NewHistory()
	h.HistoryCount[White][SqE2][SqE4] = 42
	h.CounterMoves[SqE2][SqE4] = CreateMove(SqD7, SqD5, Normal)
	s := h.String()
	assert.Contains(t, s, "Move=e2e4")
	assert.Contains(t, s, "w=42")
}
