// Package symmetry declares the finite symmetry groups a game can use to collapse equivalent boards.
package symmetry

import "fmt"

// Symmetry is the constraint for an element of a finite group of board transformations.
//
// The zero value must be the identity. All is called on the zero value and returns every element of
// the group in a fixed order, identity first; this order breaks ties during canonicalization.
type Symmetry[S any] interface {
	comparable
	fmt.Stringer
	Inverse() S
	Compose(other S) S
	All() []S
}

// Elements returns every element of the group S.
func Elements[S Symmetry[S]]() []S {
	var identity S
	return identity.All()
}

func Identity[S Symmetry[S]]() S {
	var identity S
	return identity
}
