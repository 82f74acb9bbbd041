package ttt

import (
	"fmt"
	"strings"
)

// Notation is a compact FEN-like form of the board: three rows separated by
// '/', top row first, with 'x' and 'o' for marks and a digit for a run of
// empty cells.
//
// For example, the board
//
//	x | x |
//
// ---------
//
//	  | o |
//
// ---------
//
//	  |   |
//
// has the notation "xx1/1o1/3", and the empty board is "3/3/3".
func (b Board) Notation() string {
	builder := strings.Builder{}
	for row := range 3 {
		counter := 0
		for col := range 3 {
			switch cell := b[row*3+col]; cell {
			case Cross, Circle:
				if counter > 0 {
					builder.WriteByte('0' + byte(counter))
					counter = 0
				}
				builder.WriteString(cell.String())
			default:
				counter++
			}
		}
		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}
		if row != 2 {
			builder.WriteByte('/')
		}
	}
	return builder.String()
}

// ParseNotation builds a board from its Notation form.
func ParseNotation(notation string) (Board, error) {
	var board Board

	rows := strings.Split(notation, "/")
	if len(rows) != 3 {
		return board, fmt.Errorf("invalid notation %q: expected 3 rows, got %d", notation, len(rows))
	}

	for row, line := range rows {
		col := 0
		for _, v := range line {
			switch v {
			case 'x', 'o':
				if col > 2 {
					return board, fmt.Errorf("invalid notation %q: row %d overflows", notation, row)
				}
				side := Cross
				if v == 'o' {
					side = Circle
				}
				board[row*3+col] = side
				col++
			case '1', '2', '3':
				// Skip given number of empty cells
				col += int(v - '0')
			default:
				return board, fmt.Errorf("invalid notation %q: bad token %q in row %d", notation, v, row)
			}
		}
		if col != 3 {
			return board, fmt.Errorf("invalid notation %q: row %d has %d cells", notation, row, col)
		}
	}

	return board, nil
}
