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

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chessgo/engine/internal/types"
)

func TestNewPositionDefaultsToStartPosition(t *testing.T) {
	p, err := NewPosition()
	assert.NoError(t, err)
	assert.Equal(t, 20, len(LegalMoves(p)))
}

func TestNewPositionRejectsBadFen(t *testing.T) {
	_, err := NewPosition("not a fen")
	assert.Error(t, err)
}

func TestToFENRoundTrips(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	p, err := FromFEN(fen)
	assert.NoError(t, err)
	assert.Equal(t, fen, ToFEN(p))
}

func TestLegalMovesFilteredByOrigin(t *testing.T) {
	p, err := NewPosition()
	assert.NoError(t, err)

	all := LegalMoves(p)
	assert.Equal(t, 20, len(all))

	fromE2 := LegalMoves(p, all[0].From())
	for _, m := range fromE2 {
		assert.Equal(t, all[0].From(), m.From())
	}
}

func TestMakeUnmakeMoveRoundTrips(t *testing.T) {
	p, err := NewPosition()
	assert.NoError(t, err)
	before := ToFEN(p)

	moves := LegalMoves(p)
	assert.NotEmpty(t, moves)
	m := moves[0]

	u := MakeMove(p, m)
	assert.NotEqual(t, before, ToFEN(p))

	UnmakeMove(p, m, u)
	assert.Equal(t, before, ToFEN(p))
}

func TestSearchNegamaxFindsLegalMove(t *testing.T) {
	p, err := NewPosition()
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res := SearchNegamax(ctx, p, 4, time.Second)
	assert.NotEqual(t, types.MoveNone, res.BestMove)
}

func TestSearchMCTSFindsLegalMove(t *testing.T) {
	p, err := NewPosition()
	assert.NoError(t, err)

	res := SearchMCTS(context.Background(), p, 300, 2)
	assert.NotEqual(t, types.MoveNone, res.BestMove)
}
