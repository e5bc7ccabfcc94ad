package player

import (
	"testing"

	"boardgame/experiments/metrics"
	"boardgame/games/tictactoe"

	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	board := tictactoe.New()
	board.Play(4)

	a := NewRandom[*tictactoe.Board, tictactoe.Move](1)
	b := NewRandom[*tictactoe.Board, tictactoe.Move](1)
	for i := 0; i < 20; i++ {
		mv, metric := a.FindMove(board)
		other, _ := b.FindMove(board)

		require.True(t, board.IsAvailableMove(mv))
		require.Equal(t, mv, other, "Same seed should play the same moves")
		require.Equal(t, metrics.SearchMetric{}, metric)
	}
}

func TestFromConfig(t *testing.T) {
	t.Run("random by default", func(t *testing.T) {
		a := FromConfig[*tictactoe.Board, tictactoe.Move](metrics.AgentConfig{}, 1)
		require.IsType(t, &random[*tictactoe.Board, tictactoe.Move]{}, a)
	})

	t.Run("search agent", func(t *testing.T) {
		a := FromConfig[*tictactoe.Board, tictactoe.Move](metrics.AgentConfig{Kind: metrics.SearchAgent, Episodes: 200, Goroutines: 2}, 1)
		require.IsType(t, search[*tictactoe.Board, tictactoe.Move]{}, a)

		board := tictactoe.New()
		mv, metric := a.FindMove(board)
		require.True(t, board.IsAvailableMove(mv))
		require.Equal(t, 200, metric.Episodes)
		require.Equal(t, 2, metric.Goroutines)
	})
}
