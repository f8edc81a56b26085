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
	"fmt"
	"strings"
)

// Move is a 16-bit packed chess move: 6 bits source square, 6 bits
// destination square, 4 bits move-type tag.
//  BITMAP 16-bit
//  |-from --|--to ---|-type-|
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//                      1 1 1 1  move type (0-6, see MoveType)
//            1 1 1 1 1 1        to
//  1 1 1 1 1 1                  from
//
// Move carries no sort value by design (unlike the teacher's 32-bit
// packing) — search and move-ordering code that needs to rank moves
// pairs a Move with a score in moveslice.ScoredMove instead.
type Move uint16

// MoveNone is the zero value, never a legal move.
const MoveNone Move = 0

const (
	typeBits uint = 4
	toShift  uint = typeBits
	fromShift uint = typeBits + 6

	moveTypeMask Move = (1 << typeBits) - 1
	toMask       Move = 0x3F << toShift
	fromMask     Move = 0x3F << fromShift
)

// CreateMove returns an encoded Move for a source square, destination
// square and move-type tag (the promotion piece, if any, is implied by
// the tag itself — see MoveTypeFromPromotion).
func CreateMove(from Square, to Square, t MoveType) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(t)
}

// MoveType returns the move's type tag.
func (m Move) MoveType() MoveType {
	return MoveType(m & moveTypeMask)
}

// PromotionType returns the piece type promoted to when MoveType is one
// of the four promotion tags. Must be ignored otherwise.
func (m Move) PromotionType() PieceType {
	return m.MoveType().PromotionPieceType()
}

// From returns the move's source square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// IsValid reports whether m has valid squares and a valid move-type tag.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MoveType().IsValid()
}

// String returns a descriptive representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s type:%s }", m.StringUci(), m.MoveType().String())
}

// StringUci returns the UCI long-algebraic form of the move (e.g. "e2e4",
// "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType().IsPromotion() {
		os.WriteString(m.PromotionType().Char())
	}
	return strings.ToLower(os.String())
}

// StringBits returns a bit-level debug representation of the move.
func (m Move) StringBits() string {
	return fmt.Sprintf("Move { From[%06b](%s) To[%06b](%s) Type[%04b](%s) (%d) }",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.MoveType(), m.MoveType().String(),
		uint16(m))
}
