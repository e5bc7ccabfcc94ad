package game

import (
	"fmt"
	"iter"
)

type StateHash uint64

// Board is the state of a two player game. B is the concrete board type itself and M its move type.
//
// A board only changes through Play. Play, IsAvailableMove and AvailableMoves panic with a *Violation
// when the board is done; callers are expected to check IsDone first.
// Each game provides its own constructors for custom start positions.
type Board[B any, M Move] interface {
	fmt.Stringer

	// Clone returns an independent copy of the board.
	Clone() B
	Equal(other B) bool
	Hash() StateHash

	// NextPlayer returns the player to move. On a done board this is the player that did not make the last move.
	NextPlayer() Player

	IsAvailableMove(mv M) bool

	// AvailableMoves yields the moves legal on this board. It is never empty while the board is not done,
	// and its order stays the same as long as the board is not modified.
	AvailableMoves() iter.Seq[M]

	// AllPossibleMoves yields every move that can occur on any board of this game, in a stable order.
	// It must not depend on the receiver's state.
	AllPossibleMoves() iter.Seq[M]

	// Play applies mv to the board. Panics if the board is done or mv is not available.
	Play(mv M)

	// Outcome returns the result of the game, or false while it is still ongoing.
	Outcome() (Outcome, bool)

	// CanLoseAfterMove reports whether the player who plays a move can lose because of it.
	// Returning true is always correct.
	CanLoseAfterMove() bool
}

// Rand is the randomness a board needs: a uniformly distributed integer in [0, n) for n > 0.
// Both golang.org/x/exp/rand and math/rand generators satisfy it.
type Rand interface {
	Intn(n int) int
}

// RandomMover is implemented by boards that can pick a uniformly random available move faster than
// RandomAvailableMove's two scans.
type RandomMover[M Move] interface {
	RandomAvailableMove(rng Rand) M
}

// Alternating is a marker for boards whose NextPlayer flips after every Play.
type Alternating interface {
	Alternates()
}

// IsAlternating reports whether b declares the Alternating guarantee.
func IsAlternating(b any) bool {
	_, ok := b.(Alternating)
	return ok
}

// IsDone reports whether the game on b is finished.
func IsDone(b interface{ Outcome() (Outcome, bool) }) bool {
	_, done := b.Outcome()
	return done
}

// CloneAndPlay returns a copy of b with mv played on it, leaving b untouched.
func CloneAndPlay[B Board[B, M], M Move](b B, mv M) B {
	next := b.Clone()
	next.Play(mv)
	return next
}

type moveSource[M Move] interface {
	fmt.Stringer
	Outcome() (Outcome, bool)
	AvailableMoves() iter.Seq[M]
}

// RandomAvailableMove picks a uniformly random available move, using the board's own RandomMover when it has one.
func RandomAvailableMove[M Move](b moveSource[M], rng Rand) M {
	if r, ok := b.(RandomMover[M]); ok {
		return r.RandomAvailableMove(rng)
	}
	return DefaultRandomAvailableMove(b, rng)
}

// DefaultRandomAvailableMove counts the available moves, draws an index and walks a fresh enumeration to it.
func DefaultRandomAvailableMove[M Move](b moveSource[M], rng Rand) M {
	AssertNotDone(b, "pick a random move")

	count := Count(b.AvailableMoves())
	Assert(count > 0, b, "board is not done but has no available moves")

	mv, ok := Nth(b.AvailableMoves(), rng.Intn(count))
	Assert(ok, b, "available moves changed between scans")
	return mv
}
