package searcher

import (
	"math"

	"boardgame/game"
)

// CSquared is the default exploration constant, the square of UCT's c.
const CSquared = 2.0

// Rewards from the point of view of the player who moved into a node.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

// reward scores a playout for pov. Playouts stopped before an outcome score as a draw.
func reward(outcome game.Outcome, done bool, pov game.Player) float64 {
	if !done || outcome.IsDraw() {
		return Draw
	}
	if winner, _ := outcome.Winner(); winner == pov {
		return Win
	}
	return Loss
}

// uct ranks the children of a node visited N times.
type uct struct {
	numerator float64 // c^2*ln(N)
}

func newUCT(cSquared float64, N float64) uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return uct{numerator: cSquared * math.Log(N)}
}

// evaluate returns q/n + sqrt(c^2*ln(N)/n) for a child with total reward q over n visits.
func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	return q/n + math.Sqrt(u.numerator/n)
}

// best returns the index of the highest scoring of count children, the first one on ties.
func (u uct) best(count int, stats func(i int) (q, n float64)) int {
	bestIndex := 0
	bestScore := math.Inf(-1)
	for i := 0; i < count; i++ {
		if score := u.evaluate(stats(i)); score > bestScore {
			bestIndex, bestScore = i, score
		}
	}
	return bestIndex
}
