package symmetry

// Unit is the trivial group, for games without any symmetry.
type Unit struct{}

var unitAll = []Unit{{}}

func (Unit) Inverse() Unit     { return Unit{} }
func (Unit) Compose(Unit) Unit { return Unit{} }
func (Unit) All() []Unit       { return unitAll }
func (Unit) String() string    { return "Unit" }
