// Package maxmoves wraps a board so that its game ends in a draw after a fixed number of moves.
package maxmoves

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"iter"

	"boardgame/game"
	"boardgame/symmetry"

	"github.com/cespare/xxhash/v2"
)

// Board behaves like its inner board, except that the outcome is a draw once maxMoves moves have been played.
type Board[B game.SymmetricBoard[B, M, S, K], M game.Move, S symmetry.Symmetry[S], K cmp.Ordered] struct {
	inner    B
	moves    uint64
	maxMoves uint64
}

// New wraps a copy of inner.
func New[B game.SymmetricBoard[B, M, S, K], M game.Move, S symmetry.Symmetry[S], K cmp.Ordered](inner game.SymmetricBoard[B, M, S, K], maxMoves uint64) *Board[B, M, S, K] {
	return &Board[B, M, S, K]{
		inner:    inner.Clone(),
		maxMoves: maxMoves,
	}
}

func (b *Board[B, M, S, K]) Inner() B {
	return b.inner
}

func (b *Board[B, M, S, K]) Moves() uint64 {
	return b.moves
}

func (b *Board[B, M, S, K]) MaxMoves() uint64 {
	return b.maxMoves
}

func (b *Board[B, M, S, K]) Clone() *Board[B, M, S, K] {
	return &Board[B, M, S, K]{
		inner:    b.inner.Clone(),
		moves:    b.moves,
		maxMoves: b.maxMoves,
	}
}

func (b *Board[B, M, S, K]) Equal(other *Board[B, M, S, K]) bool {
	return b.moves == other.moves && b.maxMoves == other.maxMoves && b.inner.Equal(other.inner)
}

func (b *Board[B, M, S, K]) Hash() game.StateHash {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(b.inner.Hash()))
	binary.LittleEndian.PutUint64(buf[8:], b.moves)
	binary.LittleEndian.PutUint64(buf[16:], b.maxMoves)
	return game.StateHash(xxhash.Sum64(buf[:]))
}

func (b *Board[B, M, S, K]) CanLoseAfterMove() bool {
	return b.inner.CanLoseAfterMove()
}

func (b *Board[B, M, S, K]) NextPlayer() game.Player {
	return b.inner.NextPlayer()
}

func (b *Board[B, M, S, K]) IsAvailableMove(mv M) bool {
	game.AssertNotDone(b, "check move availability")
	return b.inner.IsAvailableMove(mv)
}

func (b *Board[B, M, S, K]) AvailableMoves() iter.Seq[M] {
	game.AssertNotDone(b, "get available moves")
	return b.inner.AvailableMoves()
}

func (b *Board[B, M, S, K]) AllPossibleMoves() iter.Seq[M] {
	return b.inner.AllPossibleMoves()
}

func (b *Board[B, M, S, K]) RandomAvailableMove(rng game.Rand) M {
	game.AssertNotDone(b, "pick a random move")
	return game.RandomAvailableMove[M](b.inner, rng)
}

func (b *Board[B, M, S, K]) Play(mv M) {
	game.AssertNotDone(b, "play")
	b.inner.Play(mv)
	b.moves++
}

func (b *Board[B, M, S, K]) Outcome() (game.Outcome, bool) {
	if b.moves == b.maxMoves {
		return game.Draw(), true
	}
	return b.inner.Outcome()
}

func (b *Board[B, M, S, K]) Map(sym S) *Board[B, M, S, K] {
	return &Board[B, M, S, K]{
		inner:    b.inner.Map(sym),
		moves:    b.moves,
		maxMoves: b.maxMoves,
	}
}

func (b *Board[B, M, S, K]) MapMove(sym S, mv M) M {
	return b.inner.MapMove(sym, mv)
}

// CanonicalKey is the inner key; the move counters do not change under symmetry.
func (b *Board[B, M, S, K]) CanonicalKey() K {
	return b.inner.CanonicalKey()
}

func (b *Board[B, M, S, K]) String() string {
	return fmt.Sprintf("%v\nmoves: %d/%d", b.inner, b.moves, b.maxMoves)
}

