package main

/*

Interactive tic-tac-toe against the minimax agent.

Moves are entered as square names (a1..c3, files left to right, ranks
bottom to top) or as cell indices (0..8, row-major from the top-left
corner). Enter q to resign.

Lowering -deep and -shallow weakens the agent: with -deep 0 it only takes
obvious wins and blocks, with both at 0 it moves at random.

*/

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/muesli/termenv"
)

func main() {
	var (
		sideFlag = flag.String("side", "x", "side to play, x moves first")
		deep     = flag.Float64("deep", 1.0, "chance the agent runs the full search")
		shallow  = flag.Float64("shallow", 1.0, "chance the agent checks win/block moves when skipping the search")
		seed     = flag.Int64("seed", 0, "random seed for the agent, 0 means time-based")
		notation = flag.String("notation", "", "start position, e.g. xx1/1o1/3 (empty board by default)")
		plain    = flag.Bool("plain", false, "disable colored output")
	)
	flag.Parse()

	opts := []termenv.OutputOption{}
	if *plain {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(os.Stdout, opts...)

	var human ttt.Side
	switch strings.ToLower(*sideFlag) {
	case "x":
		human = ttt.Cross
	case "o":
		human = ttt.Circle
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid side %q, want x or o\n", *sideFlag)
		os.Exit(1)
	}

	ai := minimax.New().SetThinkChances(*deep, *shallow)
	if *seed != 0 {
		ai.SetRand(rand.New(rand.NewSource(*seed)))
	}

	game := ttt.NewGame()
	if *notation != "" {
		board, err := ttt.ParseNotation(*notation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		game = ttt.NewGameFromBoard(board)
	}

	scanner := bufio.NewScanner(os.Stdin)
	render(out, game.Board)

	for !game.Over() {
		var m ttt.Move
		if game.Turn == human {
			move, quit := readMove(scanner, game)
			if quit {
				fmt.Println("resigned")
				return
			}
			m = move
		} else {
			m = ai.DecideMove(game.Board, game.Turn)
			fmt.Printf("agent plays %s\n", m)
		}

		if err := game.Play(m); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		render(out, game.Board)
	}

	fmt.Println(game.Termination().String())
}

// readMove prompts until the user enters a legal move, or quits.
func readMove(scanner *bufio.Scanner, game *ttt.Game) (ttt.Move, bool) {
	for {
		fmt.Printf("%s to move > ", game.Turn)
		if !scanner.Scan() {
			return ttt.MoveNone, true
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "q", "quit":
			return ttt.MoveNone, true
		}

		m, err := parseMove(input)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		if game.Board[m] != ttt.None {
			fmt.Printf("%s is occupied\n", m)
			continue
		}
		return m, false
	}
}

func parseMove(input string) (ttt.Move, error) {
	if cell, err := strconv.Atoi(input); err == nil {
		m := ttt.Move(cell)
		if !m.Valid() {
			return ttt.MoveNone, fmt.Errorf("cell %d out of range", cell)
		}
		return m, nil
	}
	return ttt.ParseSquare(input)
}

func render(out *termenv.Output, board ttt.Board) {
	marks := map[ttt.Side]string{
		ttt.None:   " ",
		ttt.Cross:  out.String("x").Foreground(termenv.ANSIRed).Bold().String(),
		ttt.Circle: out.String("o").Foreground(termenv.ANSIBlue).Bold().String(),
	}

	for row := range 3 {
		cells := make([]string, 3)
		for col := range 3 {
			cells[col] = marks[board[row*3+col]]
		}
		fmt.Printf("%d  %s\n", 3-row, strings.Join(cells, " | "))
		if row != 2 {
			fmt.Println("  ---+---+---")
		}
	}
	fmt.Println("   a   b   c")
}
