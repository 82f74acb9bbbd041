package bench

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// summary builds the final report. A player's score counts a win as 1 and
// a draw as 0.5; the margin of error is a 95% normal-approximation
// interval on player 1's mean score per game.
func (va *VersusArena) summary() VersusSummaryInfo {
	va.mu.Lock()
	lengths := va.gameLengths
	va.mu.Unlock()

	info := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          int(va.NWorkers),
		P1Name:           va.P1Name,
		P2Name:           va.P2Name,
	}

	n := len(lengths)
	if n == 0 {
		return info
	}

	info.MeanGameLength = stat.Mean(lengths, nil)

	scores := make([]float64, 0, n)
	for range info.P1Wins {
		scores = append(scores, 1)
	}
	for range info.Draws {
		scores = append(scores, 0.5)
	}
	for range info.P2Wins {
		scores = append(scores, 0)
	}
	info.P1Score = stat.Mean(scores, nil)

	if n > 1 {
		info.StdDevGameLength = stat.StdDev(lengths, nil)
		info.P1ScoreMoE = 1.96 * stat.StdDev(scores, nil) / math.Sqrt(float64(n))
	}

	return info
}
