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

// Package moveslice provides helper functionality for slices of moves
// carrying a move-ordering sort value alongside each move.
//
// The wire Move (internal/types) is a plain 16-bit value with no room for
// an embedded sort key, so move generation and search pair each Move with
// a Value in a ScoredMove instead of packing it into the move itself.
package moveslice

import (
	"fmt"
	"strings"
	"sync"

	. "github.com/chessgo/engine/internal/types"
)

// ScoredMove pairs a Move with a sort value used for move ordering during
// generation and search. The value has no meaning outside of the list it
// was computed for - it is not an evaluation score.
type ScoredMove struct {
	Move  Move
	Value Value
}

// NoScoredMove is the zero value, holding MoveNone.
var NoScoredMove = ScoredMove{Move: MoveNone, Value: 0}

// CreateMoveValue builds a ScoredMove from its move components.
func CreateMoveValue(from Square, to Square, t MoveType, value Value) ScoredMove {
	return ScoredMove{Move: CreateMove(from, to, t), Value: value}
}

// MoveOf returns the plain move, discarding the sort value.
func (sm ScoredMove) MoveOf() Move {
	return sm.Move
}

// SetValue sets sm's Value in place (useful when sm is addressable, e.g. a
// pointer into a MoveSlice) and also returns the updated ScoredMove.
func (sm *ScoredMove) SetValue(v Value) ScoredMove {
	sm.Value = v
	return *sm
}

// String returns a string representation including the sort value.
func (sm ScoredMove) String() string {
	return fmt.Sprintf("%s (%d)", sm.Move.String(), sm.Value)
}

// MoveSlice represents a data structure (go slice) of ScoredMove.
type MoveSlice []ScoredMove

// NewMoveSlice creates a new move slice with the given capacity
// and 0 elements.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]ScoredMove, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the slice.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends an element at the end of the slice.
func (ms *MoveSlice) PushBack(m ScoredMove) {
	*ms = append(*ms, m)
}

// PushMove appends a plain Move with sort value 0.
func (ms *MoveSlice) PushMove(m Move) {
	*ms = append(*ms, ScoredMove{Move: m})
}

// PopBack removes and returns the move from the back of the slice.
// If the slice is empty, the call panics.
func (ms *MoveSlice) PopBack() ScoredMove {
	if len(*ms) <= 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	back := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return back
}

// PushFront prepends an element at the beginning of the slice using
// the underlying array (does not create a new array).
func (ms *MoveSlice) PushFront(m ScoredMove) {
	*ms = append(*ms, NoScoredMove)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// PopFront removes and returns the move from the front of the slice.
// If the slice is empty, the call panics.
func (ms *MoveSlice) PopFront() ScoredMove {
	if len(*ms) <= 0 {
		panic("MoveSlice: PopFront() called on empty slice")
	}
	front := (*ms)[0]
	*ms = (*ms)[1:]
	return front
}

// Front returns the move at the front of the slice.
// This call panics if the slice is empty.
func (ms *MoveSlice) Front() ScoredMove {
	if len(*ms) <= 0 {
		panic("MoveSlice: Front() called when empty")
	}
	return (*ms)[0]
}

// Back returns the move at the back of the slice.
// This call panics if the slice is empty.
func (ms *MoveSlice) Back() ScoredMove {
	if len(*ms) <= 0 {
		panic("MoveSlice: Back() called when empty")
	}
	return (*ms)[len(*ms)-1]
}

// At returns the move at index i in the slice without removing it.
// Index will be checked against bounds and panics if out of bounds.
func (ms *MoveSlice) At(i int) ScoredMove {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("MoveSlice: Index out of bounds")
	}
	return (*ms)[i]
}

// Set puts a move at index i in the slice.
// Index will be checked against bounds and panics if out of bounds.
func (ms *MoveSlice) Set(i int, move ScoredMove) {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("MoveSlice: Index out of bounds")
	}
	(*ms)[i] = move
}

// Filter removes all elements from the MoveSlice for
// which the given call to func will return false.
func (ms *MoveSlice) Filter(f func(index int) bool) {
	b := (*ms)[:0]
	for i, x := range *ms {
		if f(i) {
			b = append(b, x)
		}
	}
	*ms = b
}

// FilterCopy copies the MoveSlice into the given destination slice
// without the filtered elements.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, f func(index int) bool) {
	for i, x := range *ms {
		if f(i) {
			*dest = append(*dest, x)
		}
	}
}

// Clone copies the MoveSlice into a newly created MoveSlice, doing a deep copy.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]ScoredMove, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals returns true if all moves of the MoveSlice equal the moves of the
// other MoveSlice (sort values are ignored).
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m.Move != (*other)[i].Move {
			return false
		}
	}
	return true
}

// ForEach simple range loop calling the given function on each element
// in stored order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// ForEachParallel simple loop over all elements calling a goroutine
// which calls the given func with the index of the current element
// as a parameter. Waits until all elements have been processed.
func (ms *MoveSlice) ForEachParallel(f func(index int)) {
	sliceLength := len(*ms)
	var wg sync.WaitGroup
	wg.Add(sliceLength)
	for index := range *ms {
		go func(i int) {
			defer wg.Done()
			f(i)
		}(index)
	}
	wg.Wait()
}

// Clear removes all moves from the slice, but retains the current capacity.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Sort sorts moves from highest Value to lowest Value.
// It uses a stable InsertionSort as MoveSlices are mostly pre-sorted and small.
func (ms *MoveSlice) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.Value > (*ms)[j-1].Value {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// String returns a string representation of a slice of moves.
func (ms *MoveSlice) String() string {
	var os strings.Builder
	size := len(*ms)
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", size))
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(ms.At(i).Move.String())
	}
	os.WriteString(" }")
	return os.String()
}

// StringUci returns a string with a space separated list
// of all moves in the list in UCI protocol format.
func (ms *MoveSlice) StringUci() string {
	var os strings.Builder
	size := len(*ms)
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString((*ms)[i].Move.StringUci())
	}
	return os.String()
}
