package minimax

import "github.com/IlikeChooros/go-minimax/pkg/ttt"

type moveScore struct {
	move  ttt.Move
	score int
}

// evaluate scores the board from root's perspective under optimal play by
// both sides: 1 root wins, -1 root loses, 0 draw. When maximizing is true
// the root side placed the last mark, otherwise its opponent did. The board
// is mutated and restored in place during the recursion.
func evaluate(board *ttt.Board, root ttt.Side, maximizing bool) int {
	switch {
	case maximizing && ttt.HasWon(*board, root):
		return 1
	case !maximizing && ttt.HasWon(*board, root.Swap()):
		return -1
	case board.IsFull():
		return 0
	}

	// The other side is about to move now
	maximizing = !maximizing
	scores := moveScores(board, root, maximizing)

	best := scores[0].score
	for _, ms := range scores[1:] {
		if maximizing {
			best = max(best, ms.score)
		} else {
			best = min(best, ms.score)
		}
	}
	return best
}

// moveScores scores every empty cell for the side to move: root itself when
// maximizing, its opponent otherwise. Each cell is marked, evaluated and
// restored before the next one, so the board comes back unchanged. Pairs
// are listed in ascending cell order.
func moveScores(board *ttt.Board, root ttt.Side, maximizing bool) []moveScore {
	mover := root
	if !maximizing {
		mover = root.Swap()
	}

	moves := board.LegalMoves()
	scores := make([]moveScore, 0, len(moves))
	for _, m := range moves {
		board[m] = mover
		scores = append(scores, moveScore{m, evaluate(board, root, maximizing)})
		board[m] = ttt.None
	}
	return scores
}
