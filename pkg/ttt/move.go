package ttt

import "fmt"

// Move is a cell index on the board, in range [0, 8].
type Move int

// Enum for the squares, row-major from the top-left corner
const (
	A3 Move = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

const MoveNone Move = -1

// Valid reports whether the move refers to a cell on the board.
func (m Move) Valid() bool {
	return m >= A3 && m <= C1
}

func (m Move) String() string {
	if !m.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + m%3), byte('3' - m/3)})
}

// ParseSquare converts a name like "b2" (files a-c, ranks 1-3) into a Move.
func ParseSquare(s string) (Move, error) {
	if len(s) != 2 {
		return MoveNone, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0]) - 'a'
	rank := '3' - int(s[1])
	if file < 0 || file > 2 || rank < 0 || rank > 2 {
		return MoveNone, fmt.Errorf("invalid square %q", s)
	}
	return Move(rank*3 + file), nil
}
