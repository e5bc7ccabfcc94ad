package game

import "iter"

type bruteforceSource[M Move] interface {
	moveSource[M]
	AllPossibleMoves() iter.Seq[M]
	IsAvailableMove(mv M) bool
}

// BruteforceMoves derives the available moves of b by filtering AllPossibleMoves through IsAvailableMove.
// Its cost follows the size of the whole move space, so games usually generate moves directly instead.
// Panics if b is done.
func BruteforceMoves[M Move](b bruteforceSource[M]) iter.Seq[M] {
	AssertNotDone(b, "get available moves")

	return func(yield func(M) bool) {
		for mv := range b.AllPossibleMoves() {
			if b.IsAvailableMove(mv) && !yield(mv) {
				return
			}
		}
	}
}
