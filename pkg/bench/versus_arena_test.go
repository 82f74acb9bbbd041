package bench

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func TestMain(m *testing.M) {
	minimax.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", minimax.SeedGeneratorFn())

	os.Exit(m.Run())
}

func randomPlayer() *minimax.AI {
	return minimax.New().SetThinkChances(0, 0)
}

func TestArenaTotals(t *testing.T) {
	// 53 games over 4 workers exercises the remainder distribution
	arena := NewVersusArena(randomPlayer(), randomPlayer())
	arena.Setup(53, 4)
	arena.Start(nil)
	arena.Wait()

	if got := arena.Total(); got != 53 {
		t.Fatalf("Total() = %d, want 53", got)
	}
	if sum := arena.FirstToMoveWins() + arena.SecondToMoveWins() + arena.Draws(); sum != 53 {
		t.Fatalf("mover stats add up to %d, want 53", sum)
	}
}

type countingListener struct {
	mu        sync.Mutex
	games     int
	summaries int
	summary   VersusSummaryInfo
}

func (cl *countingListener) OnGameFinished(info VersusWorkerInfo) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.games++

	if info.GameMoveNum < 5 || info.GameMoveNum > 9 {
		panic(fmt.Sprintf("impossible game length %d", info.GameMoveNum))
	}
}

func (cl *countingListener) OnFinished(summary VersusSummaryInfo) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.summaries++
	cl.summary = summary
}

func TestArenaListener(t *testing.T) {
	listener := &countingListener{}

	arena := NewVersusArena(randomPlayer(), randomPlayer()).SetNames("rnd1", "rnd2")
	arena.Setup(20, 3)
	arena.Start(listener)
	arena.Wait()

	if listener.games != 20 {
		t.Fatalf("OnGameFinished called %d times, want 20", listener.games)
	}
	if listener.summaries != 1 {
		t.Fatalf("OnFinished called %d times, want 1", listener.summaries)
	}

	s := listener.summary
	if s.TotalGames != 20 || s.P1Wins+s.P2Wins+s.Draws != 20 {
		t.Fatalf("inconsistent summary: %+v", s)
	}
	if s.P1Name != "rnd1" || s.P2Name != "rnd2" {
		t.Fatalf("names not carried: %+v", s)
	}
	if s.MeanGameLength < 5 || s.MeanGameLength > 9 {
		t.Fatalf("mean game length %.2f out of range", s.MeanGameLength)
	}
	if s.P1Score < 0 || s.P1Score > 1 {
		t.Fatalf("player 1 score %.2f out of range", s.P1Score)
	}
}

// A full-strength agent can force at least a draw from any reachable
// position, so it must not drop a single arena game to a random mover.
func TestArenaDeepNeverLoses(t *testing.T) {
	arena := NewVersusArena(minimax.New(), randomPlayer())
	arena.Setup(30, 2)
	arena.Start(nil)
	arena.Wait()

	if got := arena.P2Wins(); got != 0 {
		t.Fatalf("random player won %d games against full search", got)
	}
	if got := arena.Total(); got != 30 {
		t.Fatalf("Total() = %d, want 30", got)
	}
}

func TestArenaSingleWorker(t *testing.T) {
	arena := NewVersusArena(randomPlayer(), randomPlayer())
	arena.Setup(5, 1)
	arena.Start(nil)
	arena.Wait()

	if got := arena.Total(); got != 5 {
		t.Fatalf("Total() = %d, want 5", got)
	}
}

func TestPlayGameOutcome(t *testing.T) {
	// Both sides at full strength always draw a game of tic-tac-toe.
	for range 10 {
		moves, outcome := playGame(minimax.New(), minimax.New())
		if !outcome.IsDraw {
			t.Fatalf("perfect play did not draw, moves %v", moves)
		}
		if len(moves) != 9 {
			t.Fatalf("drawn game has %d moves, want 9", len(moves))
		}
	}
}

func TestToAgentResult(t *testing.T) {
	cases := []struct {
		outcome GameOutcome
		p1First bool
		want    VersusMatchResult
	}{
		{GameOutcome{IsDraw: true}, true, VersusDraw},
		{GameOutcome{IsDraw: true}, false, VersusDraw},
		{GameOutcome{FirstPlayerWon: true}, true, VersusPl1Win},
		{GameOutcome{FirstPlayerWon: true}, false, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, true, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, false, VersusPl1Win},
	}
	for _, c := range cases {
		if got := toAgentResult(c.outcome, c.p1First); got != c.want {
			t.Errorf("toAgentResult(%+v, %v) = %v, want %v", c.outcome, c.p1First, got, c.want)
		}
	}
}

func TestComputeOutcome(t *testing.T) {
	g := ttt.NewGame()
	// 0 1 / 3 4 / 6: cross completes the left column
	for _, m := range []ttt.Move{0, 1, 3, 4, 6} {
		if err := g.Play(m); err != nil {
			t.Fatalf("Play(%v): %v", m, err)
		}
	}

	outcome := computeOutcome(g)
	if outcome.IsDraw || !outcome.FirstPlayerWon {
		t.Fatalf("computeOutcome = %+v, want first player win", outcome)
	}
}
