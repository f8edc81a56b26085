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

package position

// UndoRecord is the token the package-level engine API hands back from
// MakeMove and expects back in UnmakeMove. Position already keeps its
// own LIFO undo stack (DoMove/UndoMove need no argument), so UndoRecord
// carries nothing DoMove doesn't already track - it exists only so a
// caller unwinding moves out of order (unmaking a move that wasn't the
// most recent one made) gets an assertion failure instead of silently
// corrupting history.
type UndoRecord struct {
	move  Move
	depth int
}

// HistoryDepth returns the number of moves currently on p's undo stack.
func (p *Position) HistoryDepth() int {
	return p.historyCounter
}

// NewUndoRecord captures the state needed to verify that a later
// UnmakeMove(p, m, u) call unwinds moves in the same order they were
// made. Call it before playing m on p.
func NewUndoRecord(p *Position, m Move) UndoRecord {
	return UndoRecord{move: m, depth: p.historyCounter}
}

// Matches reports whether u is the record for the move most recently
// made on p (i.e. p.HistoryDepth() is one more than u's depth, and that
// move was m).
func (u UndoRecord) Matches(p *Position, m Move) bool {
	return u.move == m && p.historyCounter == u.depth+1
}
