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

// Package mcts implements a Monte Carlo Tree Search independent of the
// alpha-beta search in package search. It grows an asymmetric tree guided
// by progressive widening and an evaluation-biased UCB formula, using
// package evaluator for both the cheap per-node estimates and the rollout
// cutoff evaluation, and package movegen for already move-ordered legal
// move lists - no separate move orderer is needed since movegen sorts
// pseudo-legal moves by a capture/PV/killer heuristic value before
// filtering them down to legal ones.
package mcts

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/chessgo/engine/internal/config"
	"github.com/chessgo/engine/internal/evaluator"
	"github.com/chessgo/engine/internal/movegen"
	"github.com/chessgo/engine/internal/position"
	. "github.com/chessgo/engine/internal/types"
)

// RootMoveStat reports the aggregated statistics of one root move after a
// search, used both for single-threaded results and to merge the private
// trees of root-parallel workers.
type RootMoveStat struct {
	Move   Move
	Visits int
	Score  float64
}

// Result is the outcome of an MCTS search.
type Result struct {
	BestMove  Move
	Visits    int
	Score     float64
	RootMoves []RootMoveStat
}

// Search holds the state of one MCTS run. It is not safe for concurrent
// use - root parallelization runs one Search per worker goroutine, each
// with its own position clone, and merges their RootMoveStats afterwards.
type Search struct {
	eval *evaluator.Evaluator
	mg   *movegen.Movegen
}

// NewSearch creates a Search ready to run on its own goroutine.
func NewSearch() *Search {
	return &Search{
		eval: evaluator.NewEvaluator(),
		mg:   movegen.NewMoveGen(),
	}
}

// Run grows a single tree for the given number of iterations, starting
// at p's current position, and returns the most-visited root move. p is
// left unmodified (every DoMove during the search is paired with an
// UndoMove before Run returns).
func (s *Search) Run(ctx context.Context, p *position.Position, iterations int) Result {
	rootPlayer := p.NextPlayer()
	root := newNode(nil, MoveNone, 0, s.mg.GenerateLegalMoves(p, movegen.GenAll))
	if root.terminal {
		return Result{BestMove: MoveNone}
	}

	for i := 0; i < iterations; i++ {
		select {
		case <-ctx.Done():
			return bestResult(root)
		default:
		}
		s.iterate(root, p, rootPlayer)
	}
	return bestResult(root)
}

// iterate runs one selection/expansion/simulation/backpropagation cycle.
func (s *Search) iterate(root *node, p *position.Position, rootPlayer Color) {
	cfg := config.Settings.MCTS
	n := root
	path := []*node{root}
	depth := 0
	expanded := false

	for !n.terminal {
		target := widenTarget(n.visits, cfg.InitialChildren, cfg.ProgressiveWideningK, float64(n.moves.Len()))
		if n.childrenMade < target && !n.fullyMaterialized() {
			child := s.expand(n, p, rootPlayer)
			depth++
			path = append(path, child)
			n = child
			expanded = true
			break
		}

		var next *node
		for _, c := range n.children {
			if c.visits == 0 {
				next = c
				break
			}
		}
		if next == nil {
			next = s.selectBest(n)
		}
		p.DoMove(next.move)
		depth++
		path = append(path, next)
		n = next
	}

	// The loop above only stops in two ways: it breaks right after
	// expand() creates a fresh leaf (expanded == true), or its condition
	// becomes false because the node it just descended into is terminal.
	// Either way there is exactly one outcome to compute here.
	var result float64
	if n.terminal {
		result = n.absorbed
	} else if expanded {
		result = s.playout(p, rootPlayer)
	}

	for _, vn := range path {
		vn.visits++
		vn.totalScore += result
	}
	for i := 0; i < depth; i++ {
		p.UndoMove()
	}
}

// expand materializes the next not-yet-created child of n (the legal
// moves in n.moves are already ordered, so children are created in that
// order) and scores it with a 2-ply lookahead. p must be at n's position;
// it is left at the child's position (after m has been played) for the
// caller to continue descending from.
func (s *Search) expand(n *node, p *position.Position, rootPlayer Color) *node {
	m := n.moves.At(n.childrenMade).MoveOf()
	n.childrenMade++

	p.DoMove(m)
	legal := s.mg.GenerateLegalMoves(p, movegen.GenAll)
	child := newNode(n, m, n.ply+1, legal)
	if child.terminal {
		child.absorbed = absorbingValue(p, rootPlayer)
	} else {
		child.eval = s.twoPlyEval(p, rootPlayer)
	}
	n.children = append(n.children, child)
	return child
}

// selectBest picks the child maximizing the eval-biased UCB formula:
//
//	score/visits + c*sqrt(ln(parentVisits)/visits) + biasWeight*clamp(eval/2000,-1,1)*sign
//
// sign is +1 when n itself is a node where the root player is to move
// and -1 at the opponent's turn, so the eval bias always pushes toward
// outcomes good for the root player regardless of whose turn n is at.
// Every child is assumed to have at least one visit - zero-visit
// children are always selected before this is reached.
func (s *Search) selectBest(n *node) *node {
	cfg := config.Settings.MCTS
	sign := 1.0
	if n.ply%2 != 0 {
		sign = -1.0
	}
	logParent := math.Log(float64(n.visits))

	var best *node
	bestScore := math.Inf(-1)
	for _, c := range n.children {
		exploit := c.totalScore / float64(c.visits)
		explore := cfg.ExplorationConstant * math.Sqrt(logParent/float64(c.visits))
		bias := cfg.EvalBiasWeight * clamp(float64(c.eval)/2000.0, -1, 1) * sign
		ucb := exploit + explore + bias
		if best == nil || ucb > bestScore {
			best = c
			bestScore = ucb
		}
	}
	return best
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// twoPlyEval scores a freshly expanded child: p sits at the position
// right after our move, i.e. the opponent is to move. It enumerates the
// opponent's top-5 ordered responses, plays each, evaluates from the
// root player's perspective, and returns the worst (minimum) of those -
// the opponent's best reply, not ours, drives the child's initial
// estimate. If the opponent has no legal moves it returns the direct
// evaluation of p instead.
func (s *Search) twoPlyEval(p *position.Position, rootPlayer Color) Value {
	responses := s.mg.GenerateLegalMoves(p, movegen.GenAll)
	count := responses.Len()
	if count == 0 {
		return s.evalForRoot(p, rootPlayer)
	}
	if count > 5 {
		count = 5
	}
	worst := ValueMax
	for i := 0; i < count; i++ {
		m := responses.At(i).MoveOf()
		p.DoMove(m)
		v := s.evalForRoot(p, rootPlayer)
		p.UndoMove()
		if v < worst {
			worst = v
		}
	}
	return worst
}

// evalForRoot evaluates the current position and flips the sign to the
// root player's perspective. Evaluator.Evaluate already returns its
// value from the side-to-move's perspective, so this is the only
// adjustment needed; the same helper backs both the "quick" per-node
// estimates and the "full" rollout cutoff evaluation described in the
// specification - there is no separate cheap/expensive evaluator here.
func (s *Search) evalForRoot(p *position.Position, rootPlayer Color) Value {
	v := s.eval.Evaluate(p)
	if p.NextPlayer() != rootPlayer {
		v = -v
	}
	return v
}

// absorbingValue is the fixed backpropagation value of a terminal node:
// +1 if the side to move there is checkmated and it is the opponent of
// the root player, -1 if the root player itself is mated, 0 on
// stalemate.
func absorbingValue(p *position.Position, rootPlayer Color) float64 {
	if !p.HasCheck() {
		return 0
	}
	if p.NextPlayer() == rootPlayer {
		return -1
	}
	return 1
}

// playout runs a guided rollout from p's current position: at each ply
// it considers the top PlayoutMovesPerPly ordered moves, picks the one
// maximizing a 2-ply lookahead score, and plays it, up to
// PlayoutDepthCap plies. It returns an absorbing value on reaching
// checkmate or stalemate, or tanh(eval/2000) if the depth cap is hit.
// Every DoMove here is undone before playout returns.
func (s *Search) playout(p *position.Position, rootPlayer Color) float64 {
	cfg := config.Settings.MCTS
	undoCount := 0
	defer func() {
		for i := 0; i < undoCount; i++ {
			p.UndoMove()
		}
	}()

	for ply := 0; ply < cfg.PlayoutDepthCap; ply++ {
		legal := s.mg.GenerateLegalMoves(p, movegen.GenAll)
		count := legal.Len()
		if count == 0 {
			if p.HasCheck() {
				if p.NextPlayer() == rootPlayer {
					return -1
				}
				return 1
			}
			return 0
		}
		if count > cfg.PlayoutMovesPerPly {
			count = cfg.PlayoutMovesPerPly
		}

		bestIdx := 0
		bestScore := ValueMin
		for i := 0; i < count; i++ {
			m := legal.At(i).MoveOf()
			p.DoMove(m)
			v := s.twoPlyEval(p, rootPlayer)
			p.UndoMove()
			if v > bestScore {
				bestScore = v
				bestIdx = i
			}
		}

		p.DoMove(legal.At(bestIdx).MoveOf())
		undoCount++
	}

	v := s.evalForRoot(p, rootPlayer)
	return math.Tanh(float64(v) / 2000.0)
}

// bestResult reports the most-visited root child, ties broken in favor
// of the earlier-created (i.e. better move-ordered) child.
func bestResult(root *node) Result {
	stats := make([]RootMoveStat, len(root.children))
	var best *node
	for i, c := range root.children {
		stats[i] = RootMoveStat{Move: c.move, Visits: c.visits, Score: c.totalScore}
		if best == nil || c.visits > best.visits {
			best = c
		}
	}
	if best == nil {
		return Result{BestMove: MoveNone, RootMoves: stats}
	}
	return Result{BestMove: best.move, Visits: best.visits, Score: best.totalScore, RootMoves: stats}
}

// RunParallel splits iterations across numThreads worker goroutines. Each
// worker grows its own tree on its own clone of p (Position holds no
// pointers or slices, so a plain value copy is an independent position),
// using its own Search/Evaluator/Movegen instances. Results are merged
// by summing visits and scores per root move; the move with the
// greatest summed visit count wins.
func RunParallel(ctx context.Context, p *position.Position, iterations int, numThreads int) Result {
	if numThreads < 1 {
		numThreads = 1
	}
	share := iterations / numThreads
	remainder := iterations % numThreads

	var mu sync.Mutex
	agg := map[Move]*RootMoveStat{}
	var order []Move

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < numThreads; w++ {
		iters := share
		if w < remainder {
			iters++
		}
		if iters == 0 {
			continue
		}
		g.Go(func() error {
			localPos := clonePosition(p)
			s := NewSearch()
			res := s.Run(gctx, localPos, iters)

			mu.Lock()
			defer mu.Unlock()
			for _, rm := range res.RootMoves {
				e, ok := agg[rm.Move]
				if !ok {
					e = &RootMoveStat{Move: rm.Move}
					agg[rm.Move] = e
					order = append(order, rm.Move)
				}
				e.Visits += rm.Visits
				e.Score += rm.Score
			}
			return nil
		})
	}
	_ = g.Wait()

	stats := make([]RootMoveStat, len(order))
	var best *RootMoveStat
	for i, m := range order {
		e := agg[m]
		stats[i] = *e
		if best == nil || e.Visits > best.Visits {
			best = e
		}
	}
	if best == nil {
		return Result{BestMove: MoveNone}
	}
	return Result{BestMove: best.Move, Visits: best.Visits, Score: best.Score, RootMoves: stats}
}

// clonePosition makes an independent copy of p. Position's fields are
// all fixed-size arrays and scalars, never pointers or slices, so a
// plain value copy is safe to hand to another goroutine.
func clonePosition(p *position.Position) *position.Position {
	cp := *p
	return &cp
}
