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

package types

import (
	"strconv"
	"strings"

	"github.com/chessgo/engine/internal/util"
)

// Value is a centipawn evaluation or search score. Mate scores are encoded
// as ValueCheckMate minus the number of plies to the mate so that shorter
// mates sort as more valuable than longer ones.
type Value int16

// Bounds and sentinels for Value. ValueCheckMate must leave enough headroom
// below ValueMax for MaxPly adjustments (ValueCheckMate - ply) to never
// overflow or collide with ValueMax/ValueMin.
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueNA                 Value = -16383
	ValueMin                Value = -15000
	ValueMax                Value = 15000
	ValueCheckMate          Value = 14000
	ValueCheckMateThreshold Value = ValueCheckMate - 1000
	ValueInf                Value = ValueMax
)

// GamePhaseMax is the number of phase points at the start position, used
// to interpolate between mid game and end game piece-square tables.
const GamePhaseMax = 24

// IsValid reports whether v falls within the legal search/evaluation range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a forced mate score (for
// either side).
func (v Value) IsCheckMateValue() bool {
	return v > ValueCheckMateThreshold || v < -ValueCheckMateThreshold
}

// String renders v as "mate N" (plies to mate, negative if being mated),
// "N/A" for ValueNA, or "cp N" centipawns otherwise.
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsCheckMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - util.Abs(int(v))
		b.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
