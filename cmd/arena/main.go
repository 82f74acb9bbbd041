package main

/*

Headless arena runner: plays a series of games between two minimax agents
and prints the aggregated results. Each agent is configured with its own
think chances, so full-strength, win/block-only and purely random players
can be pitted against each other.

Per-game progress is shown only when stdout is a terminal.

*/

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	isatty "github.com/mattn/go-isatty"
)

type cliListener struct {
	progress bool
	total    int
}

func (cl cliListener) OnGameFinished(info bench.VersusWorkerInfo) {
	if cl.progress {
		fmt.Printf("\rplayed %d/%d games", info.P1Wins+info.P2Wins+info.Draws, cl.total)
	}
}

func (cl cliListener) OnFinished(s bench.VersusSummaryInfo) {
	if cl.progress {
		fmt.Print("\r\033[2K")
	}

	fmt.Printf("games:            %d (%d workers)\n", s.TotalGames, s.Workers)
	fmt.Printf("%-16s  %d wins\n", s.P1Name+":", s.P1Wins)
	fmt.Printf("%-16s  %d wins\n", s.P2Name+":", s.P2Wins)
	fmt.Printf("draws:            %d\n", s.Draws)
	fmt.Printf("first to move:    %d wins\n", s.FirstToMoveWins)
	fmt.Printf("second to move:   %d wins\n", s.SecondToMoveWins)
	fmt.Printf("game length:      %.2f ± %.2f\n", s.MeanGameLength, s.StdDevGameLength)
	fmt.Printf("%s score:  %.3f ± %.3f (95%% CI)\n", s.P1Name, s.P1Score, s.P1ScoreMoE)
}

func main() {
	var (
		games     = flag.Uint("games", 100, "number of games to play")
		workers   = flag.Uint("workers", 4, "number of worker goroutines")
		seed      = flag.Int64("seed", 0, "base random seed, 0 means time-based")
		p1Deep    = flag.Float64("p1-deep", 1.0, "player 1 chance of running the full search")
		p1Shallow = flag.Float64("p1-shallow", 1.0, "player 1 chance of checking win/block moves")
		p2Deep    = flag.Float64("p2-deep", 0.0, "player 2 chance of running the full search")
		p2Shallow = flag.Float64("p2-shallow", 0.0, "player 2 chance of checking win/block moves")
	)
	flag.Parse()

	if *games == 0 {
		fmt.Fprintln(os.Stderr, "Error: -games must be positive")
		os.Exit(1)
	}

	if *seed != 0 {
		// Hand out distinct deterministic seeds, one per random source
		var counter atomic.Int64
		counter.Store(*seed)
		minimax.SetSeedGeneratorFn(func() int64 {
			return counter.Add(1)
		})
	}

	p1 := minimax.New().SetThinkChances(*p1Deep, *p1Shallow)
	p2 := minimax.New().SetThinkChances(*p2Deep, *p2Shallow)

	arena := bench.NewVersusArena(p1, p2).SetNames(
		fmt.Sprintf("minimax(%.2g, %.2g)", *p1Deep, *p1Shallow),
		fmt.Sprintf("minimax(%.2g, %.2g)", *p2Deep, *p2Shallow),
	)
	arena.Setup(*games, *workers)

	listener := cliListener{
		progress: isatty.IsTerminal(os.Stdout.Fd()),
		total:    int(*games),
	}

	arena.Start(listener)
	arena.Wait()
}
