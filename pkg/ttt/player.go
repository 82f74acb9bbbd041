package ttt

// Player decides a move for the given side on the given board. The board
// is passed by value, so implementations may scribble on their copy; the
// returned move must refer to an empty cell.
type Player interface {
	DecideMove(board Board, side Side) Move
}
