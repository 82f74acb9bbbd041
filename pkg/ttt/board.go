package ttt

import (
	"math/bits"
	"strings"
)

// Board is the 3x3 grid stored row-major: rows {0,1,2}, {3,4,5}, {6,7,8}.
// It is a plain value type, so passing a Board copies it: a callee always
// works on its own snapshot and can never mutate the caller's state.
type Board [9]Side

const fullMask uint = 0b111111111

// mask returns the occupancy bitboard of the given side.
func (b Board) mask(side Side) uint {
	var m uint
	for i := range b {
		if b[i] == side {
			m |= 1 << i
		}
	}
	return m
}

func (b Board) freeMask() uint {
	return b.mask(None)
}

// LegalMoves lists the empty cells in ascending index order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, 9)
	free := b.freeMask()
	for free != 0 {
		moves = append(moves, Move(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return moves
}

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	return b.freeMask() == 0
}

// IsEmpty reports whether no mark has been placed yet.
func (b Board) IsEmpty() bool {
	return b.freeMask() == fullMask
}

func (b Board) String() string {
	builder := strings.Builder{}
	for row := range 3 {
		for col := range 3 {
			builder.WriteString(b[row*3+col].String())
		}
		if row != 2 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
