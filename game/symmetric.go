package game

import (
	"cmp"

	"boardgame/symmetry"
)

// SymmetricBoard is a Board that declares the symmetry group S it is invariant under.
// Games without symmetry use symmetry.Unit.
type SymmetricBoard[B any, M Move, S symmetry.Symmetry[S], K cmp.Ordered] interface {
	Board[B, M]

	// Map returns the image of this board under sym.
	Map(sym S) B

	// MapMove maps mv the same way Map maps the board, so that playing the mapped move on the mapped board
	// gives the mapped result of playing mv.
	MapMove(sym S, mv M) M

	// CanonicalKey extracts all of the state that Map can change.
	CanonicalKey() K
}

// Canonicalizer is implemented by boards with a faster canonicalization. It must return the same
// board Canonicalize would.
type Canonicalizer[B any] interface {
	Canonicalize() B
}

// Canonicalize maps b with the symmetry that gives the smallest CanonicalKey, the first such symmetry
// in enumeration order on ties. Every symmetric variant of b has the same canonical board.
func Canonicalize[B SymmetricBoard[B, M, S, K], M Move, S symmetry.Symmetry[S], K cmp.Ordered](b SymmetricBoard[B, M, S, K]) B {
	if c, ok := b.(Canonicalizer[B]); ok {
		return c.Canonicalize()
	}
	canonical, _ := canonicalize[B, M, S, K](b)
	return canonical
}

// CanonicalSymmetry returns the element that maps b onto its canonical board.
func CanonicalSymmetry[B SymmetricBoard[B, M, S, K], M Move, S symmetry.Symmetry[S], K cmp.Ordered](b SymmetricBoard[B, M, S, K]) S {
	_, sym := canonicalize[B, M, S, K](b)
	return sym
}

func canonicalize[B SymmetricBoard[B, M, S, K], M Move, S symmetry.Symmetry[S], K cmp.Ordered](b SymmetricBoard[B, M, S, K]) (B, S) {
	mapFn := func(x B, sym S) B {
		return x.Map(sym)
	}
	return CanonicalizeFunc(b.Clone(), symmetry.Elements[S](), mapFn, func(x, y B) int {
		return cmp.Compare(x.CanonicalKey(), y.CanonicalKey())
	})
}

// CanonicalizeFunc maps b by every element of syms and returns the smallest candidate according to compare,
// along with the element that produced it. The first minimum wins. Panics if syms is empty.
func CanonicalizeFunc[B any, S any](b B, syms []S, mapFn func(B, S) B, compare func(x, y B) int) (B, S) {
	if len(syms) == 0 {
		panic("cannot canonicalize without symmetry elements")
	}

	best, bestSym := mapFn(b, syms[0]), syms[0]
	for _, sym := range syms[1:] {
		if cand := mapFn(b, sym); compare(cand, best) < 0 {
			best, bestSym = cand, sym
		}
	}
	return best, bestSym
}
