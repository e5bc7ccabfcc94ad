package symmetry

// D1 is the group of a single mirror axis: the identity and one flip.
type D1 struct {
	Flip bool
}

var d1All = []D1{{Flip: false}, {Flip: true}}

func (s D1) Inverse() D1 {
	return s
}

func (s D1) Compose(other D1) D1 {
	return D1{Flip: s.Flip != other.Flip}
}

func (D1) All() []D1 {
	return d1All
}

// MapAxis mirrors x in [0, size) when the flip is set.
func (s D1) MapAxis(x, size int) int {
	if s.Flip {
		return size - 1 - x
	}
	return x
}

func (s D1) String() string {
	if s.Flip {
		return "D1(flip)"
	}
	return "D1(id)"
}
