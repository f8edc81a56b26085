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

// Package engine is the package-level API a caller embeds against: create
// a position, generate legal moves, make/unmake a move, and run either of
// the two independent searches (negamax/alpha-beta in internal/search,
// MCTS in internal/mcts). It is a thin facade - all of the actual chess
// logic lives in the internal packages it wires together.
package engine

import (
	"context"
	"time"

	"github.com/chessgo/engine/internal/assert"
	"github.com/chessgo/engine/internal/mcts"
	"github.com/chessgo/engine/internal/movegen"
	"github.com/chessgo/engine/internal/position"
	"github.com/chessgo/engine/internal/search"
	"github.com/chessgo/engine/internal/types"
)

// Difficulty is a coarse preset controlling search depth/time for
// callers that don't want to tune negamax/MCTS parameters themselves.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExpert
)

// difficultyPreset bundles the suggested negamax depth/time budget for
// a Difficulty. Not part of the external contract - a convenience for
// callers that want a single knob instead of tuning maxDepth/timeLimit.
type difficultyPreset struct {
	maxDepth  int
	timeLimit time.Duration
}

var difficultyPresets = map[Difficulty]difficultyPreset{
	DifficultyEasy:   {maxDepth: 3, timeLimit: 500 * time.Millisecond},
	DifficultyMedium: {maxDepth: 6, timeLimit: 2 * time.Second},
	DifficultyHard:   {maxDepth: 10, timeLimit: 5 * time.Second},
	DifficultyExpert: {maxDepth: 20, timeLimit: 15 * time.Second},
}

// SearchDepthAndTime returns the suggested maxDepth/timeLimit pair for
// d, for callers of SearchNegamax that want a named preset rather than
// tuning the two parameters directly.
func SearchDepthAndTime(d Difficulty) (maxDepth int, timeLimit time.Duration) {
	p := difficultyPresets[d]
	return p.maxDepth, p.timeLimit
}

// NewPosition creates a position from an optional FEN string (the
// standard start position if fen is omitted), or an error if the FEN
// is malformed.
func NewPosition(fen ...string) (*position.Position, error) {
	if len(fen) == 0 {
		return position.NewPosition(), nil
	}
	return position.NewPositionFen(fen[0])
}

// FromFEN parses fen into a Position, or returns an error if it is
// malformed.
func FromFEN(fen string) (*position.Position, error) {
	return position.NewPositionFen(fen)
}

// ToFEN renders p's current state as a FEN string.
func ToFEN(p *position.Position) string {
	return p.StringFen()
}

// LegalMoves returns every legal move in p. If one or more origin
// squares are given, the result is filtered down to moves starting on
// one of them.
func LegalMoves(p *position.Position, from ...types.Square) []types.Move {
	mg := movegen.NewMoveGen()
	legal := mg.GenerateLegalMoves(p, movegen.GenAll)

	moves := make([]types.Move, 0, legal.Len())
	legal.ForEach(func(i int) {
		m := legal.At(i).MoveOf()
		if len(from) == 0 {
			moves = append(moves, m)
			return
		}
		for _, sq := range from {
			if m.From() == sq {
				moves = append(moves, m)
				break
			}
		}
	})
	return moves
}

// MakeMove plays m on p and returns a token that must be passed to a
// matching UnmakeMove to undo it. p's own undo stack is strictly LIFO
// (mirroring Position.DoMove/UndoMove); UnmakeMove asserts the token
// matches the most recently made move.
func MakeMove(p *position.Position, m types.Move) position.UndoRecord {
	u := position.NewUndoRecord(p, m)
	p.DoMove(m)
	return u
}

// UnmakeMove undoes the move m made on p, identified by the UndoRecord
// MakeMove returned for it. u must be the record from the most recent
// unmatched MakeMove call on p.
func UnmakeMove(p *position.Position, m types.Move, u position.UndoRecord) {
	assert.Assert(u.Matches(p, m), "engine.UnmakeMove: move %s is not the most recently made move", m.String())
	p.UndoMove()
}

// SearchNegamax runs the alpha-beta/PVS negamax search to maxDepth (0
// for unlimited, bounded only by timeLimit) or until timeLimit elapses,
// whichever comes first.
func SearchNegamax(ctx context.Context, p *position.Position, maxDepth int, timeLimit time.Duration) NegamaxResult {
	s := search.NewSearch()
	sl := search.NewSearchLimits()
	if maxDepth > 0 {
		sl.Depth = maxDepth
	}
	if timeLimit > 0 {
		sl.TimeControl = true
		sl.MoveTime = timeLimit
	}

	done := make(chan struct{})
	go func() {
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		close(done)
	}()

	select {
	case <-ctx.Done():
		s.StopSearch()
		<-done
	case <-done:
	}

	result := s.LastSearchResult()
	return NegamaxResult{
		BestMove:   result.BestMove,
		PonderMove: result.PonderMove,
		Value:      result.BestValue,
		Depth:      result.SearchDepth,
		Nodes:      s.NodesVisited(),
	}
}

// NegamaxResult is the outcome of SearchNegamax.
type NegamaxResult struct {
	BestMove   types.Move
	PonderMove types.Move
	Value      types.Value
	Depth      int
	Nodes      uint64
}

// SearchMCTS runs the Monte Carlo Tree Search for the given iteration
// budget, splitting it across numThreads root-parallel workers when
// numThreads > 1.
func SearchMCTS(ctx context.Context, p *position.Position, iterations int, numThreads int) MCTSResult {
	var res mcts.Result
	if numThreads > 1 {
		res = mcts.RunParallel(ctx, p, iterations, numThreads)
	} else {
		res = mcts.NewSearch().Run(ctx, p, iterations)
	}
	return MCTSResult{
		BestMove: res.BestMove,
		Visits:   res.Visits,
		Score:    res.Score,
	}
}

// MCTSResult is the outcome of SearchMCTS.
type MCTSResult struct {
	BestMove types.Move
	Visits   int
	Score    float64
}
