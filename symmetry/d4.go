package symmetry

import "fmt"

// D4 is the dihedral group of the square, the 4 rotations and 4 reflections of a square grid.
// An element is applied as: transpose, then flip x, then flip y.
type D4 struct {
	Transpose bool
	FlipX     bool
	FlipY     bool
}

var d4All = func() []D4 {
	all := make([]D4, 0, 8)
	for _, transpose := range []bool{false, true} {
		for _, flipX := range []bool{false, true} {
			for _, flipY := range []bool{false, true} {
				all = append(all, D4{Transpose: transpose, FlipX: flipX, FlipY: flipY})
			}
		}
	}
	return all
}()

func (D4) All() []D4 {
	return d4All
}

// MapXY maps the coordinate (x, y) of a size x size grid.
func (s D4) MapXY(x, y, size int) (int, int) {
	if s.Transpose {
		x, y = y, x
	}
	if s.FlipX {
		x = size - 1 - x
	}
	if s.FlipY {
		y = size - 1 - y
	}
	return x, y
}

// Compose returns the element equivalent to applying other first and then s.
func (s D4) Compose(other D4) D4 {
	// Moving a transpose of s in front of other's flips swaps their axes.
	flipX, flipY := other.FlipX, other.FlipY
	if s.Transpose {
		flipX, flipY = flipY, flipX
	}
	return D4{
		Transpose: s.Transpose != other.Transpose,
		FlipX:     flipX != s.FlipX,
		FlipY:     flipY != s.FlipY,
	}
}

func (s D4) Inverse() D4 {
	if !s.Transpose {
		return s
	}
	return D4{Transpose: true, FlipX: s.FlipY, FlipY: s.FlipX}
}

func (s D4) String() string {
	return fmt.Sprintf("D4(transpose=%t, flipX=%t, flipY=%t)", s.Transpose, s.FlipX, s.FlipY)
}
