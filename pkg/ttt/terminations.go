package ttt

type Termination int

const (
	TerminationNone Termination = iota
	TerminationCrossWon
	TerminationCircleWon
	TerminationDraw
)

// horizontal, vertical and diagonal patterns as bitboards, scanned in that order
var winPatterns = [8]uint{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// HasWon reports whether the given side holds three in a row anywhere on
// the board. The board may be any 9-cell array, reachable or not.
func HasWon(b Board, side Side) bool {
	m := b.mask(side)
	for i := range 8 {
		if m&winPatterns[i] == winPatterns[i] {
			return true
		}
	}
	return false
}

// Termination evaluates the board: a win for either side, a draw on a full
// board, or TerminationNone while the game is still open.
func (b Board) Termination() Termination {
	if HasWon(b, Cross) {
		return TerminationCrossWon
	}
	if HasWon(b, Circle) {
		return TerminationCircleWon
	}
	if b.IsFull() {
		return TerminationDraw
	}
	return TerminationNone
}

// Winner of a terminated board, None for a draw or an open game.
func (t Termination) Winner() Side {
	switch t {
	case TerminationCrossWon:
		return Cross
	case TerminationCircleWon:
		return Circle
	}
	return None
}

func (t Termination) String() string {
	switch t {
	case TerminationCrossWon:
		return "cross won"
	case TerminationCircleWon:
		return "circle won"
	case TerminationDraw:
		return "draw"
	}
	return "none"
}
