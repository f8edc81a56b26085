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
	"math"

	"github.com/chessgo/engine/internal/moveslice"
	. "github.com/chessgo/engine/internal/types"
)

// node is a single vertex of an MCTS tree. It never stores a board - the
// position it represents is reconstructed by replaying moves from the
// search root, so a node only needs the move that produced it plus the
// bookkeeping the selection/expansion/backprop steps need.
type node struct {
	parent *node
	move   Move // move played to reach this node; MoveNone at the root
	ply    int  // 0 at root, used to know whose turn it is without a board

	visits     int
	totalScore float64 // sum of backpropagated results, root player's perspective

	eval     Value // cached static/2-ply evaluation, root player's perspective
	terminal bool
	absorbed float64 // fixed backprop value for terminal nodes (mate/stalemate)

	moves        moveslice.MoveSlice // ordered legal moves from this node's position
	children     []*node
	childrenMade int
}

// newNode builds a node for the position p currently sits at (after the
// move that produced it has already been played on p, except for the
// root node). The caller is responsible for restoring p afterwards.
func newNode(parent *node, move Move, ply int, legalMoves *moveslice.MoveSlice) *node {
	n := &node{
		parent: parent,
		move:   move,
		ply:    ply,
		moves:  *legalMoves.Clone(),
	}
	n.terminal = n.moves.Len() == 0
	return n
}

// mover returns which side is to move at this node: the root player on
// even plies, the opponent on odd plies.
func (n *node) mover(rootPlayer Color) Color {
	if n.ply%2 == 0 {
		return rootPlayer
	}
	return rootPlayer.Flip()
}

// fullyMaterialized reports whether every legal move from this node
// already has a corresponding child.
func (n *node) fullyMaterialized() bool {
	return n.childrenMade >= n.moves.Len()
}

// widenTarget returns how many children n is currently allowed to have,
// per the progressive-widening schedule: max(initialChildren,
// floor(k*sqrt(visits))), clamped to the number of legal moves.
func widenTarget(visits int, initialChildren int, k float64, maxChildren float64) int {
	target := initialChildren
	if visits > 0 {
		widened := int(k * math.Sqrt(float64(visits)))
		if widened > target {
			target = widened
		}
	}
	if float64(target) > maxChildren {
		target = int(maxChildren)
	}
	return target
}
