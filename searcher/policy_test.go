package searcher

import (
	"math"
	"testing"

	"boardgame/game"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	require.Panics(t, func() {
		newUCT(CSquared, 0)
	}, "Should panic when N is 0")
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		got := newUCT(CSquared, 100).evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(CSquared*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001, "Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(CSquared, 100).evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	tests := []struct {
		name          string
		lowN, highN   float64
		lowQ, highQ   float64
		lowNc, highNc float64
	}{
		{name: "exploration term increases with parent visits", lowN: 100, highN: 1000, lowQ: 5, highQ: 5, lowNc: 10, highNc: 10},
		{name: "exploration term decreases with child visits", lowN: 100, highN: 100, lowQ: 5, highQ: 5, lowNc: 20, highNc: 10},
		{name: "exploitation term increases with rewards", lowN: 100, highN: 100, lowQ: 5, highQ: 10, lowNc: 10, highNc: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low := newUCT(CSquared, tt.lowN).evaluate(tt.lowQ, tt.lowNc)
			high := newUCT(CSquared, tt.highN).evaluate(tt.highQ, tt.highNc)

			require.Greater(t, high, low)
		})
	}
}

func TestUCTBest(t *testing.T) {
	stats := [][2]float64{{1, 4}, {3, 4}, {3, 4}, {0, 1}}
	get := func(i int) (float64, float64) { return stats[i][0], stats[i][1] }

	t.Run("exploitation wins without exploration", func(t *testing.T) {
		require.Equal(t, 1, newUCT(0, 13).best(len(stats), get), "Should pick the first of the tied best children")
	})

	t.Run("exploration favours rarely visited children", func(t *testing.T) {
		require.Equal(t, 3, newUCT(100, 13).best(len(stats), get))
	})
}

func TestReward(t *testing.T) {
	tests := []struct {
		name    string
		outcome game.Outcome
		done    bool
		pov     game.Player
		want    float64
	}{
		{name: "win", outcome: game.WonBy(game.PlayerA), done: true, pov: game.PlayerA, want: Win},
		{name: "loss", outcome: game.WonBy(game.PlayerA), done: true, pov: game.PlayerB, want: Loss},
		{name: "draw", outcome: game.Draw(), done: true, pov: game.PlayerB, want: Draw},
		{name: "cut off", done: false, pov: game.PlayerA, want: Draw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reward(tt.outcome, tt.done, tt.pov))
		})
	}
}
