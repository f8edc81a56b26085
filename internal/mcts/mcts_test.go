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

package mcts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chessgo/engine/internal/movegen"
	"github.com/chessgo/engine/internal/position"
	. "github.com/chessgo/engine/internal/types"
)

func TestRunReturnsLegalMove(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.NoError(t, err)

	s := NewSearch()
	res := s.Run(context.Background(), p, 200)
	assert.NotEqual(t, MoveNone, res.BestMove)

	mg := movegen.NewMoveGen()
	legal := mg.GenerateLegalMoves(p, movegen.GenAll)
	found := false
	legal.ForEach(func(i int) {
		if legal.At(i).MoveOf() == res.BestMove {
			found = true
		}
	})
	assert.True(t, found, "best move must be one of the legal root moves")
}

func TestRunDoesNotMutatePosition(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.NoError(t, err)
	before := p.StringFen()

	s := NewSearch()
	s.Run(context.Background(), p, 100)

	assert.Equal(t, before, p.StringFen())
}

func TestRunFindsMateInOne(t *testing.T) {
	// White to move, Ra2-a8 delivers mate on the back rank.
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/R7/6K1 w - -")
	assert.NoError(t, err)

	s := NewSearch()
	res := s.Run(context.Background(), p, 500)

	mateMove, found := findMove(p, "a2a8")
	assert.True(t, found)
	assert.Equal(t, mateMove, res.BestMove)
}

func TestRunParallelAggregatesAcrossWorkers(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.NoError(t, err)

	res := RunParallel(context.Background(), p, 400, 4)
	assert.NotEqual(t, MoveNone, res.BestMove)
	assert.Greater(t, len(res.RootMoves), 0)

	total := 0
	for _, rm := range res.RootMoves {
		total += rm.Visits
	}
	assert.Equal(t, 400, total)
}

func TestTerminalPositionReturnsNoMove(t *testing.T) {
	// Black has no legal moves and is not in check: stalemate.
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - -")
	assert.NoError(t, err)

	s := NewSearch()
	res := s.Run(context.Background(), p, 50)
	assert.Equal(t, MoveNone, res.BestMove)
}

func findMove(p *position.Position, uci string) (Move, bool) {
	mg := movegen.NewMoveGen()
	legal := mg.GenerateLegalMoves(p, movegen.GenAll)
	var found Move
	ok := false
	legal.ForEach(func(i int) {
		m := legal.At(i).MoveOf()
		if m.StringUci() == uci {
			found = m
			ok = true
		}
	})
	return found, ok
}
