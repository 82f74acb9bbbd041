package ttt

import "errors"

var (
	ErrInvalidMove  = errors.New("move out of range")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrGameOver     = errors.New("game already over")
)

// Game tracks a single match: the board, whose turn it is, and how it
// ended. Cross always moves first.
type Game struct {
	Board Board
	Turn  Side
	Moves int

	termination Termination
}

func NewGame() *Game {
	return &Game{Turn: Cross}
}

// NewGameFromBoard resumes a game from an arbitrary position. Cross is to
// move when both sides have the same number of marks, circle otherwise.
func NewGameFromBoard(b Board) *Game {
	crosses, circles := 0, 0
	for _, cell := range b {
		switch cell {
		case Cross:
			crosses++
		case Circle:
			circles++
		}
	}

	turn := Cross
	if crosses > circles {
		turn = Circle
	}
	return &Game{
		Board:       b,
		Turn:        turn,
		Moves:       crosses + circles,
		termination: b.Termination(),
	}
}

// Play puts the current side's mark on the given cell and flips the turn.
func (g *Game) Play(m Move) error {
	if g.termination != TerminationNone {
		return ErrGameOver
	}
	if !m.Valid() {
		return ErrInvalidMove
	}
	if g.Board[m] != None {
		return ErrCellOccupied
	}

	g.Board[m] = g.Turn
	g.Moves++
	g.termination = g.Board.Termination()
	g.Turn = g.Turn.Swap()
	return nil
}

// Get the termination reason, TerminationNone while the game is running.
func (g *Game) Termination() Termination {
	return g.termination
}

// Over reports whether the game ended.
func (g *Game) Over() bool {
	return g.termination != TerminationNone
}

// Winner side, None for a draw or a running game.
func (g *Game) Winner() Side {
	return g.termination.Winner()
}
