package maxmoves

import (
	"slices"
	"testing"

	"boardgame/game"
	"boardgame/games/onemove"
	"boardgame/games/tictactoe"
	"boardgame/symmetry"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestOutcome(t *testing.T) {
	t.Run("draw once the cap is reached", func(t *testing.T) {
		b := New(tictactoe.New(), 3)
		for _, mv := range []tictactoe.Move{0, 4, 8} {
			b.Play(mv)
		}

		outcome, done := b.Outcome()
		require.True(t, done)
		require.Equal(t, game.Draw(), outcome)
		require.False(t, game.IsDone(b.Inner()), "Inner board should still be ongoing")
		require.Equal(t, uint64(3), b.Moves())
	})

	t.Run("inner outcome before the cap", func(t *testing.T) {
		b := New(tictactoe.New(), 9)
		for _, mv := range []tictactoe.Move{0, 3, 1, 4, 2} {
			b.Play(mv)
		}

		outcome, done := b.Outcome()
		require.True(t, done)
		require.Equal(t, game.WonBy(game.PlayerA), outcome)
	})

	t.Run("cap takes precedence on the boundary", func(t *testing.T) {
		b := New(onemove.New(), 1)
		b.Play(onemove.Win)

		outcome, done := b.Outcome()
		require.True(t, done)
		require.Equal(t, game.Draw(), outcome)
		innerOutcome, _ := b.Inner().Outcome()
		require.Equal(t, game.WonBy(game.PlayerA), innerOutcome)
	})

	t.Run("ongoing below the cap", func(t *testing.T) {
		b := New(tictactoe.New(), 3)
		b.Play(4)

		_, done := b.Outcome()
		require.False(t, done)
	})
}

func TestDelegation(t *testing.T) {
	inner := tictactoe.New()
	b := New(inner, 5)

	t.Run("wraps a copy", func(t *testing.T) {
		b.Clone().Play(4)
		require.True(t, b.Inner().Equal(inner))
		require.Zero(t, b.Moves())
	})

	t.Run("queries match the inner board", func(t *testing.T) {
		require.Equal(t, inner.NextPlayer(), b.NextPlayer())
		require.Equal(t, slices.Collect(inner.AvailableMoves()), slices.Collect(b.AvailableMoves()))
		require.Equal(t, slices.Collect(inner.AllPossibleMoves()), slices.Collect(b.AllPossibleMoves()))
		require.Equal(t, inner.CanLoseAfterMove(), b.CanLoseAfterMove())
		require.True(t, b.IsAvailableMove(4))
	})

	t.Run("random move is available", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		for i := 0; i < 100; i++ {
			require.True(t, b.IsAvailableMove(game.RandomAvailableMove[tictactoe.Move](b, rng)))
		}
	})

	t.Run("clone and play counts moves", func(t *testing.T) {
		next := game.CloneAndPlay(b, tictactoe.Move(4))
		require.Equal(t, uint64(1), next.Moves())
		require.Zero(t, b.Moves())
		require.False(t, next.Equal(b))
		require.NotEqual(t, next.Hash(), b.Hash())
	})

	t.Run("renders moves", func(t *testing.T) {
		require.Equal(t, inner.String()+"\nmoves: 0/5", b.String())
	})
}

func TestDoneBoard(t *testing.T) {
	b := New(tictactoe.New(), 1)
	b.Play(4)

	require.Panics(t, func() { b.Play(0) })
	require.Panics(t, func() { b.AvailableMoves() })
	require.Panics(t, func() { b.IsAvailableMove(0) })
	require.Panics(t, func() { b.RandomAvailableMove(rand.New(rand.NewSource(1))) })
	require.Equal(t, uint64(1), b.Moves(), "Rejected play should not count")
}

func TestSymmetry(t *testing.T) {
	b := New(tictactoe.New(), 4)
	b.Play(0)
	b.Play(5)

	for _, s := range symmetry.Elements[symmetry.D4]() {
		mapped := b.Map(s)
		require.Equal(t, b.Moves(), mapped.Moves(), "Mapping should keep the move counter")
		require.True(t, mapped.Map(s.Inverse()).Equal(b))
		require.True(t, game.Canonicalize(b).Equal(game.Canonicalize(mapped)))

		mv := tictactoe.Move(8)
		require.True(t, game.CloneAndPlay(b, mv).Map(s).Equal(game.CloneAndPlay(mapped, b.MapMove(s, mv))))
	}
}
