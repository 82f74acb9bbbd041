package ttt

import (
	"math/rand"
	"testing"
)

var winningLines = [8][3]Move{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

func TestHasWonAllLines(t *testing.T) {
	for _, side := range []Side{Cross, Circle} {
		for _, line := range winningLines {
			var board Board
			for _, cell := range line {
				board[cell] = side
			}
			if !HasWon(board, side) {
				t.Errorf("line %v not detected for %v", line, side)
			}
			if HasWon(board, side.Swap()) {
				t.Errorf("line %v wrongly credited to %v", line, side.Swap())
			}
		}
	}
}

func TestHasWonNoLine(t *testing.T) {
	cases := []string{
		"3/3/3",
		"xx1/1o1/3",
		"xo1/ox1/3",
		"xxo/oox/xxo",
	}
	for _, notation := range cases {
		board, err := ParseNotation(notation)
		if err != nil {
			t.Fatalf("ParseNotation(%q): %v", notation, err)
		}
		if HasWon(board, Cross) || HasWon(board, Circle) {
			t.Errorf("unexpected win on %q", notation)
		}
	}
}

func TestTermination(t *testing.T) {
	cases := []struct {
		notation string
		want     Termination
	}{
		{"3/3/3", TerminationNone},
		{"xx1/1o1/3", TerminationNone},
		{"xxx/3/oo1", TerminationCrossWon},
		{"ooo/xx1/1x1", TerminationCircleWon},
		{"xxo/oox/xxo", TerminationDraw},
		// A full board where the last mark completed a line is a win,
		// not a draw.
		{"xox/oxo/xox", TerminationCrossWon},
	}
	for _, c := range cases {
		board, err := ParseNotation(c.notation)
		if err != nil {
			t.Fatalf("ParseNotation(%q): %v", c.notation, err)
		}
		if got := board.Termination(); got != c.want {
			t.Errorf("Termination(%q) = %v, want %v", c.notation, got, c.want)
		}
	}
}

func TestTerminationWinner(t *testing.T) {
	cases := []struct {
		termination Termination
		want        Side
	}{
		{TerminationNone, None},
		{TerminationCrossWon, Cross},
		{TerminationCircleWon, Circle},
		{TerminationDraw, None},
	}
	for _, c := range cases {
		if got := c.termination.Winner(); got != c.want {
			t.Errorf("Winner(%v) = %v, want %v", c.termination, got, c.want)
		}
	}
}

func TestRandomPlayout(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		g := NewGame()
		for !g.Over() {
			moves := g.Board.LegalMoves()
			if len(moves) == 0 {
				t.Fatal("no legal moves on a running game")
			}
			if err := g.Play(moves[r.Intn(len(moves))]); err != nil {
				t.Fatalf("legal move rejected: %v", err)
			}
		}
		if g.Termination() == TerminationNone {
			t.Fatal("game ended without a termination reason")
		}
		if g.Moves > 9 {
			t.Fatalf("impossible move count %d", g.Moves)
		}
	}
}
