package minimax

import "github.com/IlikeChooros/go-minimax/pkg/ttt"

// horizontal, vertical and diagonal lines, scanned in that order
var winLines = [8][3]ttt.Move{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// FindWinMove looks for a cell that completes three in a row for the given
// side: a line with exactly two of the side's marks and one empty cell.
// Returns the first such cell in line scan order, or MoveNone and false
// when no line is one move away.
func FindWinMove(board ttt.Board, side ttt.Side) (ttt.Move, bool) {
	for _, line := range winLines {
		own, empties := 0, 0
		empty := ttt.MoveNone

		for _, m := range line {
			switch board[m] {
			case side:
				own++
			case ttt.None:
				empties++
				empty = m
			}
		}

		if own == 2 && empties == 1 {
			return empty, true
		}
	}
	return ttt.MoveNone, false
}
