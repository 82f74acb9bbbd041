package bench

/*
Arena benchmark subpackage, plays a series of games between two players
concurrently and aggregates the results: per-agent wins, first/second
mover wins, draws and game-length statistics.
*/

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Player is an arena contestant. Clone must return an independent copy
// with its own random source, since every worker goroutine plays with its
// own pair of players.
type Player interface {
	ttt.Player
	Clone() ttt.Player
}

type VersusArena struct {
	VersusArenaStats
	Player1  Player
	Player2  Player
	P1Name   string
	P2Name   string
	NGames   uint
	NWorkers uint

	mu          sync.Mutex
	gameLengths []float64
	wg          sync.WaitGroup
	finished    atomic.Bool
}

func NewVersusArena(p1, p2 Player) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		P1Name:   "player1",
		P2Name:   "player2",
		NGames:   100,
		NWorkers: 2,
	}
}

func (va *VersusArena) SetNames(p1, p2 string) *VersusArena {
	va.P1Name = p1
	va.P2Name = p2
	return va
}

func (va *VersusArena) Setup(nGames, nWorkers uint) {
	va.NGames = nGames
	va.NWorkers = max(nWorkers, 1)
}

// Wait blocks until every worker finished and the summary was delivered.
func (va *VersusArena) Wait() {
	va.wg.Wait()

	for {
		if va.finished.Load() {
			break
		}
		runtime.Gosched()
	}
}

// Start distributes the games equally between worker goroutines and
// returns immediately; use Wait to block until the series is done.
func (va *VersusArena) Start(listener Listener) {
	if listener == nil {
		listener = DefaultListener{}
	}

	va.finished.Store(false)
	nGames := va.NGames / va.NWorkers
	rest := uint(0)
	if va.NWorkers > 1 {
		rest = va.NGames % va.NWorkers
	}

	for i := range va.NWorkers {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}
		va.wg.Add(1)

		// Always use clones, the players own their random sources
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		go va.worker(int(i), int(nGames)+delta, listener, p1, p2)
	}
}

func (va *VersusArena) worker(id, nGames int, listener Listener, p1, p2 ttt.Player) {
	r := rand.New(rand.NewSource(minimax.SeedGeneratorFn()))

	for i := range nGames {
		p1First := r.Int()%2 == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		moves, outcome := playGame(first, second)

		if outcome.IsDraw {
			atomic.AddUint32(&va.draws, 1)
		} else {
			if outcome.FirstPlayerWon {
				atomic.AddUint32(&va.firstToMoveWins, 1)
			} else {
				atomic.AddUint32(&va.secondToMoveWins, 1)
			}
			if toAgentResult(outcome, p1First) == VersusPl1Win {
				atomic.AddUint32(&va.p1Wins, 1)
			} else {
				atomic.AddUint32(&va.p2Wins, 1)
			}
		}

		va.mu.Lock()
		va.gameLengths = append(va.gameLengths, float64(len(moves)))
		va.mu.Unlock()

		listener.OnGameFinished(VersusWorkerInfo{
			WorkerID:         id,
			NGames:           nGames,
			FinishedGames:    i + 1,
			GameMoveNum:      len(moves),
			Moves:            moves,
			P1Wins:           va.P1Wins(),
			P2Wins:           va.P2Wins(),
			Draws:            va.Draws(),
			FirstToMoveWins:  va.FirstToMoveWins(),
			SecondToMoveWins: va.SecondToMoveWins(),
			P1Name:           va.P1Name,
			P2Name:           va.P2Name,
		})
	}

	va.wg.Done()

	if id == 0 {
		va.wg.Wait()
		listener.OnFinished(va.summary())
		va.finished.Store(true)
	}
}

// playGame runs a single game, the first player moves as cross. Returns
// the move list and the outcome from the first mover's perspective.
func playGame(first, second ttt.Player) ([]ttt.Move, GameOutcome) {
	g := ttt.NewGame()
	players := [2]ttt.Player{first, second}
	moves := make([]ttt.Move, 0, 9)

	for !g.Over() {
		m := players[len(moves)%2].DecideMove(g.Board, g.Turn)
		if err := g.Play(m); err != nil {
			panic(fmt.Sprintf("bench: illegal move %v on %q: %v", m, g.Board.Notation(), err))
		}
		moves = append(moves, m)
	}

	return moves, computeOutcome(g)
}
