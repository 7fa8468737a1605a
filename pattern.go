package motif

// Pattern is an ordered sequence of points.
//
// Unlike PointSet, a pattern is NOT sorted: the order of the points is
// controlled by the caller and carries meaning. Discovery algorithms build
// patterns in point-set index order, so construction order equals occurrence
// order, and downstream consumers rely on that.
//
// A pattern owns its points. Construction copies the input slice, so the
// caller's backing storage may be freely mutated afterwards without
// affecting the pattern.
type Pattern[P Point[P]] struct {
	points []P
}

// NewPattern returns a pattern containing the given points in the given
// order. The points are copied.
func NewPattern[P Point[P]](points []P) Pattern[P] {
	cp := make([]P, len(points))
	copy(cp, points)
	return Pattern[P]{points: cp}
}

// Len returns the number of points in the pattern.
func (p Pattern[P]) Len() int {
	return len(p.points)
}

// At returns the point at the given index.
func (p Pattern[P]) At(i int) P {
	return p.points[i]
}

// Points returns a copy of the pattern's points in pattern order.
func (p Pattern[P]) Points() []P {
	cp := make([]P, len(p.points))
	copy(cp, p.points)
	return cp
}

// Vectorize returns the sequence of forward differences between adjacent
// points in this pattern. The vectorized form is a translation-invariant
// shape signature: two patterns are translationally equivalent if, and only
// if, their vectorized forms are equal. A pattern of n points vectorizes to
// n-1 difference vectors; patterns of fewer than two points vectorize to an
// empty pattern.
func (p Pattern[P]) Vectorize() Pattern[P] {
	if len(p.points) < 2 {
		return Pattern[P]{}
	}

	diffs := make([]P, 0, len(p.points)-1)
	for i := 0; i < len(p.points)-1; i++ {
		diffs = append(diffs, p.points[i+1].Sub(p.points[i]))
	}
	return Pattern[P]{points: diffs}
}

// Translate returns a copy of this pattern with every point shifted by
// translator. The point order is preserved and the receiver is unmodified.
func (p Pattern[P]) Translate(translator P) Pattern[P] {
	translated := make([]P, len(p.points))
	for i, point := range p.points {
		translated[i] = point.Add(translator)
	}
	return Pattern[P]{points: translated}
}

// Equal reports whether two patterns contain the same points in the
// same order.
func (p Pattern[P]) Equal(other Pattern[P]) bool {
	if len(p.points) != len(other.points) {
		return false
	}
	for i := range p.points {
		if p.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// Compare orders patterns lexicographically over their point sequences.
// If the shared-length prefixes are equal, the shorter pattern orders first.
func (p Pattern[P]) Compare(other Pattern[P]) int {
	shorter := min(len(p.points), len(other.points))

	for i := 0; i < shorter; i++ {
		if c := p.points[i].Compare(other.points[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(p.points) < len(other.points):
		return -1
	case len(p.points) > len(other.points):
		return 1
	default:
		return 0
	}
}
