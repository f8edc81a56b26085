/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chessgo/engine/internal/position"
	. "github.com/chessgo/engine/internal/types"
)

// exercises the pin-aware fast path: a pinned rook may only shuffle
// along the pin ray or capture the pinner, everything else is pruned
// without ever calling position.IsLegalMove.
func TestGenerateLegalMoves_PinnedPiece(t *testing.T) {
	pos, err := position.NewPositionFen("4r3/8/8/8/8/8/4R3/4K3 w - -")
	assert.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)

	moves.ForEach(func(i int) {
		m := moves.At(i).Move
		if m.From() != SqE2 {
			return
		}
		assert.EqualValues(t, FileE, m.To().FileOf())
	})
}

// in check, only moves that block, capture the checker or move the king
// are legal - a knight move unrelated to the check must be pruned even
// though the knight itself is not pinned.
func TestGenerateLegalMoves_InCheckRestrictsToEvasions(t *testing.T) {
	pos, err := position.NewPositionFen("4k3/8/8/8/8/1N1n4/4r3/4K3 w - -")
	assert.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)

	moves.ForEach(func(i int) {
		m := moves.At(i).Move
		assert.EqualValues(t, SqE1, m.From(), "only the king can move out of a double check")
	})
}

// a non-pinned, non-king move while not in check must still be present
// in the legal list - the fast path keeps it without validation.
func TestGenerateLegalMoves_FastPathKeepsOrdinaryMoves(t *testing.T) {
	pos, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.EqualValues(t, 20, moves.Len())
}
