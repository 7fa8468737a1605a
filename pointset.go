package motif

import "sort"

// PointSet is a sorted, duplicate-free collection of points.
//
// The constructor sorts the input into ascending lexicographic order and
// removes equal adjacent points, establishing the invariant that
// ps.At(i).Compare(ps.At(i+1)) < 0 for every valid i. All set operations
// below preserve the invariant; none of them mutate their operands.
//
// Sortedness is what makes the set algebra cheap: intersection, union, and
// difference are classic two-pointer merges over sorted sequences, O(n+m)
// with output produced already in order. Translation by a fixed vector also
// preserves the invariant, because lexicographic order is preserved when the
// same constant is added to every element.
type PointSet[P Point[P]] struct {
	points []P
}

// NewPointSet returns a point set built from the given points. The input may
// be in any order and may contain duplicates; the set sorts a copy of it and
// drops duplicate points. The caller's slice is not modified.
func NewPointSet[P Point[P]](points []P) PointSet[P] {
	cp := make([]P, len(points))
	copy(cp, points)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Compare(cp[j]) < 0 })

	deduped := cp[:0]
	for i, p := range cp {
		if i == 0 || p != deduped[len(deduped)-1] {
			deduped = append(deduped, p)
		}
	}
	return PointSet[P]{points: deduped}
}

// Len returns the number of points in the set.
func (ps PointSet[P]) Len() int {
	return len(ps.points)
}

// At returns the point at the given index in sorted order.
func (ps PointSet[P]) At(i int) P {
	return ps.points[i]
}

// Points returns a copy of the set's points in ascending order.
func (ps PointSet[P]) Points() []P {
	cp := make([]P, len(ps.points))
	copy(cp, ps.points)
	return cp
}

// GetPattern returns a pattern consisting of the points at the given
// indices. The index order is preserved in the returned pattern and need
// not match set order; the discovery algorithms depend on source-index
// order, not spatial order.
func (ps PointSet[P]) GetPattern(indices []int) Pattern[P] {
	points := make([]P, len(indices))
	for i, idx := range indices {
		points[i] = ps.points[idx]
	}
	return Pattern[P]{points: points}
}

// Pattern returns the whole set as a pattern in ascending point order.
func (ps PointSet[P]) Pattern() Pattern[P] {
	return NewPattern(ps.points)
}

// Translate returns a point set with every point shifted by translator.
// No re-sort is needed: adding the same vector to every point preserves
// lexicographic order.
func (ps PointSet[P]) Translate(translator P) PointSet[P] {
	translated := make([]P, len(ps.points))
	for i, p := range ps.points {
		translated[i] = p.Add(translator)
	}
	return PointSet[P]{points: translated}
}

// Intersect returns the set of points present in both this set and other.
func (ps PointSet[P]) Intersect(other PointSet[P]) PointSet[P] {
	var common []P

	i, j := 0, 0
	for i < len(ps.points) && j < len(other.points) {
		c := ps.points[i].Compare(other.points[j])
		switch {
		case c == 0:
			common = append(common, ps.points[i])
			i++
			j++
		case c > 0:
			j++
		default:
			i++
		}
	}
	return PointSet[P]{points: common}
}

// Union returns the set of points present in this set, in other, or in both.
func (ps PointSet[P]) Union(other PointSet[P]) PointSet[P] {
	merged := make([]P, 0, len(ps.points)+len(other.points))

	i, j := 0, 0
	for i < len(ps.points) && j < len(other.points) {
		c := ps.points[i].Compare(other.points[j])
		switch {
		case c == 0:
			merged = append(merged, ps.points[i])
			i++
			j++
		case c < 0:
			merged = append(merged, ps.points[i])
			i++
		default:
			merged = append(merged, other.points[j])
			j++
		}
	}
	merged = append(merged, ps.points[i:]...)
	merged = append(merged, other.points[j:]...)

	return PointSet[P]{points: merged}
}

// Difference returns the set of points present in this set but not in other.
func (ps PointSet[P]) Difference(other PointSet[P]) PointSet[P] {
	var diff []P

	i, j := 0, 0
	for i < len(ps.points) && j < len(other.points) {
		c := ps.points[i].Compare(other.points[j])
		switch {
		case c == 0:
			i++
			j++
		case c > 0:
			j++
		default:
			diff = append(diff, ps.points[i])
			i++
		}
	}
	diff = append(diff, ps.points[i:]...)

	return PointSet[P]{points: diff}
}

// FindIndex binary-searches for the given point. It returns the point's
// index and true when the point is present, or the index at which the point
// would be inserted and false when it is not.
func (ps PointSet[P]) FindIndex(point P) (int, bool) {
	idx := sort.Search(len(ps.points), func(i int) bool {
		return ps.points[i].Compare(point) >= 0
	})
	if idx < len(ps.points) && ps.points[idx] == point {
		return idx, true
	}
	return idx, false
}

// Equal reports whether two point sets contain exactly the same points.
func (ps PointSet[P]) Equal(other PointSet[P]) bool {
	if len(ps.points) != len(other.points) {
		return false
	}
	for i := range ps.points {
		if ps.points[i] != other.points[i] {
			return false
		}
	}
	return true
}
