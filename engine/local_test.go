package engine

import (
	"testing"

	"boardgame/experiments/metrics"
	"boardgame/game"
	"boardgame/games/maxmoves"
	"boardgame/games/tictactoe"
	"boardgame/player"
	"boardgame/symmetry"

	"github.com/stretchr/testify/require"
)

type capped = *maxmoves.Board[*tictactoe.Board, tictactoe.Move, symmetry.D4, uint32]

type scripted struct {
	moves []tictactoe.Move
}

func (s *scripted) FindMove(*tictactoe.Board) (tictactoe.Move, metrics.SearchMetric) {
	mv := s.moves[0]
	s.moves = s.moves[1:]
	return mv, metrics.SearchMetric{Episodes: 1}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("plays until the outcome", func(t *testing.T) {
		a := &scripted{moves: []tictactoe.Move{0, 1, 2}}
		b := &scripted{moves: []tictactoe.Move{3, 4}}
		e := LocalEngine[*tictactoe.Board, tictactoe.Move](tictactoe.New(), a, b)

		gameMetric, moveMetrics := e.Run()

		require.True(t, gameMetric.Finished)
		require.Equal(t, game.WonBy(game.PlayerA), gameMetric.Outcome)
		require.Equal(t, game.PlayerA, gameMetric.StartingPlayer)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 5)
		require.Equal(t, metrics.MoveMetric{Step: 2, Player: game.PlayerB, Move: "a2", SearchMetric: metrics.SearchMetric{Episodes: 1}}, moveMetrics[1])
		require.True(t, game.IsDone(e.Board))
	})

	t.Run("random agents finish a capped game", func(t *testing.T) {
		board := maxmoves.New(tictactoe.New(), 4)
		e := LocalEngine(board, player.NewRandom[capped, tictactoe.Move](1), player.NewRandom[capped, tictactoe.Move](2))

		gameMetric, _ := e.Run()

		require.True(t, gameMetric.Finished)
		require.Equal(t, game.Draw(), gameMetric.Outcome, "Tic-tac-toe cannot be won in 4 moves")
		require.Equal(t, 4, gameMetric.TotalMoves)
	})

	t.Run("rejects unavailable moves", func(t *testing.T) {
		a := &scripted{moves: []tictactoe.Move{4}}
		b := &scripted{moves: []tictactoe.Move{4}}
		e := LocalEngine[*tictactoe.Board, tictactoe.Move](tictactoe.New(), a, b)

		require.Panics(t, func() { e.Run() })
	})

	t.Run("rejects done boards", func(t *testing.T) {
		board := maxmoves.New(tictactoe.New(), 0)
		require.Panics(t, func() {
			LocalEngine[capped, tictactoe.Move](board, nil, nil)
		})
	})
}
