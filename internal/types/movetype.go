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

// MoveType tags the seven kinds of move the 4-bit move-type field of a
// Move can hold. The four promotion tags fold the promotion piece type
// into the tag itself rather than into a separate field, since Move has
// no bits left over for one.
type MoveType uint8

// MoveType constants.
const (
	Normal MoveType = iota
	EnPassant
	Castling
	PromotionQueen
	PromotionRook
	PromotionBishop
	PromotionKnight
	moveTypeLength
)

// IsValid reports whether mt is one of the seven defined move tags.
func (mt MoveType) IsValid() bool {
	return mt < moveTypeLength
}

// IsPromotion reports whether mt is one of the four promotion tags.
func (mt MoveType) IsPromotion() bool {
	return mt >= PromotionQueen && mt < moveTypeLength
}

// PromotionPieceType returns the piece type a PromotionX tag promotes to.
// Must be ignored when mt is not a promotion tag.
func (mt MoveType) PromotionPieceType() PieceType {
	switch mt {
	case PromotionQueen:
		return Queen
	case PromotionRook:
		return Rook
	case PromotionBishop:
		return Bishop
	case PromotionKnight:
		return Knight
	default:
		return PtNone
	}
}

var moveTypeToString = [moveTypeLength]string{
	"Normal", "EnPassant", "Castling",
	"PromotionQueen", "PromotionRook", "PromotionBishop", "PromotionKnight",
}

// String returns a readable label for the move tag.
func (mt MoveType) String() string {
	if !mt.IsValid() {
		return "InvalidMoveType"
	}
	return moveTypeToString[mt]
}

// MoveTypeFromPromotion returns the PromotionX tag corresponding to the
// given promotion piece type (Knight/Bishop/Rook/Queen).
func MoveTypeFromPromotion(pt PieceType) MoveType {
	switch pt {
	case Queen:
		return PromotionQueen
	case Rook:
		return PromotionRook
	case Bishop:
		return PromotionBishop
	case Knight:
		return PromotionKnight
	default:
		return Normal
	}
}
