package game

import (
	"fmt"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Move is the constraint for per-game move values. Moves are plain ordered values so they can be
// compared, used as map keys, sorted for a deterministic scan order and copied freely.
type Move interface {
	constraints.Ordered
	fmt.Stringer
}

// Count consumes seq and returns the number of values it produced.
func Count[M any](seq iter.Seq[M]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Nth returns the value at index n of seq, stopping the sequence as soon as it is reached.
func Nth[M any](seq iter.Seq[M], n int) (M, bool) {
	i := 0
	for mv := range seq {
		if i == n {
			return mv, true
		}
		i++
	}
	var zero M
	return zero, false
}

// Contains reports whether seq produces mv.
func Contains[M comparable](seq iter.Seq[M], mv M) bool {
	for other := range seq {
		if other == mv {
			return true
		}
	}
	return false
}

// Sorted collects seq in ascending move order.
func Sorted[M Move](seq iter.Seq[M]) []M {
	return slices.Sorted(seq)
}
