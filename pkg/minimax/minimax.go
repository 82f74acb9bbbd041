package minimax

/*
Stateless tic-tac-toe agent built on exhaustive minimax search. Every call
to DecideMove is a self-contained computation over a private copy of the
board: score each legal move by full game-tree search, then pick uniformly
among the best-scoring ones.

Two think chances soften the play. With chance thinkChanceDeep the agent
runs the full search; otherwise, with chance thinkChanceShallow, it only
takes an immediate win or blocks the opponent's; failing both it moves at
random. Both default to 1.0, which is perfect play.
*/

import (
	"math/rand"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type AI struct {
	thinkChanceDeep    float64
	thinkChanceShallow float64
	rand               *rand.Rand
}

var _ ttt.Player = (*AI)(nil)

// New creates an agent that always searches the full game tree.
func New() *AI {
	return &AI{
		thinkChanceDeep:    1.0,
		thinkChanceShallow: 1.0,
		rand:               rand.New(rand.NewSource(SeedGeneratorFn())),
	}
}

// Set the chance of running the deep search, and the chance of checking
// the obvious win/block moves when the deep search is skipped
func (ai *AI) SetThinkChances(deep, shallow float64) *AI {
	ai.thinkChanceDeep = min(1.0, max(0.0, deep))
	ai.thinkChanceShallow = min(1.0, max(0.0, shallow))
	return ai
}

// Set the random source used for all probabilistic choices, replacing the
// default seeded from SeedGeneratorFn
func (ai *AI) SetRand(r *rand.Rand) *AI {
	if r != nil {
		ai.rand = r
	}
	return ai
}

// Clone returns an independent agent with the same think chances and its
// own random source. An AI owns a single *rand.Rand, so concurrent callers
// must each use their own clone.
func (ai *AI) Clone() ttt.Player {
	return &AI{
		thinkChanceDeep:    ai.thinkChanceDeep,
		thinkChanceShallow: ai.thinkChanceShallow,
		rand:               rand.New(rand.NewSource(SeedGeneratorFn())),
	}
}

// DecideMove picks a cell for the given side. The board must have at least
// one empty cell; the returned move always refers to one of them.
func (ai *AI) DecideMove(board ttt.Board, side ttt.Side) ttt.Move {
	// All opening moves are equivalent up to symmetry, skip the most
	// expensive search of the game
	if board.IsEmpty() {
		return ttt.Move(ai.rand.Intn(9))
	}

	if ai.rand.Float64() < ai.thinkChanceDeep {
		return ai.searchBest(&board, side)
	}

	if ai.rand.Float64() < ai.thinkChanceShallow {
		if m, ok := FindWinMove(board, side); ok {
			return m
		}
		if m, ok := FindWinMove(board, side.Swap()); ok {
			return m
		}
	}

	moves := board.LegalMoves()
	return moves[ai.rand.Intn(len(moves))]
}

// searchBest runs the full minimax over every legal move and picks
// uniformly among the moves sharing the best score.
func (ai *AI) searchBest(board *ttt.Board, side ttt.Side) ttt.Move {
	scores := moveScores(board, side, true)

	best := scores[0].score
	for _, ms := range scores[1:] {
		best = max(best, ms.score)
	}

	ties := make([]ttt.Move, 0, len(scores))
	for _, ms := range scores {
		if ms.score == best {
			ties = append(ties, ms.move)
		}
	}
	return ties[ai.rand.Intn(len(ties))]
}
