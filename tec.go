package motif

import "github.com/RoaringBitmap/roaring"

// Tec is a Translational Equivalence Class: a pattern together with every
// translator that maps the pattern onto another occurrence of the same shape
// in the point set.
//
// Invariant: Translators never contains the zero vector. The pattern itself
// is the implicit zero-translator occurrence, so the class with k translators
// has k+1 occurrences in total.
type Tec[P Point[P]] struct {
	// Pattern is the canonical occurrence of the class.
	Pattern Pattern[P]
	// Translators are the non-zero vectors producing the other occurrences.
	Translators []P
}

// Equal reports whether two TECs have structurally equal patterns and
// translator lists. Two structurally different TECs may still describe
// the same shape; compare vectorized patterns for that.
func (t Tec[P]) Equal(other Tec[P]) bool {
	if len(t.Translators) != len(other.Translators) {
		return false
	}
	for i := range t.Translators {
		if t.Translators[i] != other.Translators[i] {
			return false
		}
	}
	return t.Pattern.Equal(other.Pattern)
}

// Expand returns all occurrences of the class. The first element is always
// the TEC's own pattern unmodified, followed by one translated copy per
// translator, in translator order.
func (t Tec[P]) Expand() []Pattern[P] {
	occurrences := make([]Pattern[P], 0, len(t.Translators)+1)
	occurrences = append(occurrences, NewPattern(t.Pattern.points))

	for _, translator := range t.Translators {
		occurrences = append(occurrences, t.Pattern.Translate(translator))
	}
	return occurrences
}

// CoveredSet returns the set of all points covered by any occurrence of
// the class, deduplicated.
func (t Tec[P]) CoveredSet() PointSet[P] {
	points := make([]P, 0, (len(t.Translators)+1)*t.Pattern.Len())
	for _, occurrence := range t.Expand() {
		points = append(points, occurrence.points...)
	}
	return NewPointSet(points)
}

// Conjugate returns an alternate representation of the same covered set,
// obtained by exchanging the roles of intra-pattern structure and
// inter-occurrence translation: the new pattern is the first original point
// together with its image under each original translator, and the new
// translators are the offsets of the remaining original pattern points from
// the first. A compact covering sometimes scores better in the conjugate
// framing, so the covering algorithms consider both.
func (t Tec[P]) Conjugate() Tec[P] {
	if t.Pattern.Len() == 0 {
		return Tec[P]{Pattern: NewPattern[P](nil)}
	}

	first := t.Pattern.At(0)

	pattern := make([]P, 0, len(t.Translators)+1)
	pattern = append(pattern, first)
	for _, translator := range t.Translators {
		pattern = append(pattern, first.Add(translator))
	}

	translators := make([]P, 0, t.Pattern.Len()-1)
	for i := 1; i < t.Pattern.Len(); i++ {
		translators = append(translators, t.Pattern.At(i).Sub(first))
	}

	return Tec[P]{Pattern: Pattern[P]{points: pattern}, Translators: translators}
}

// RemoveRedundantTranslators returns a copy of this TEC with duplicate
// translators and translators implied by the others removed. A translator is
// redundant when dropping it leaves the covered set unchanged, which happens
// when its occurrence is already produced by other translators combined with
// the pattern's own structure. Quadratic in the number of distinct
// translators, which is typically small relative to the point-set size.
func (t Tec[P]) RemoveRedundantTranslators() Tec[P] {
	kept := make([]P, 0, len(t.Translators))
	seen := make(map[P]struct{}, len(t.Translators))
	for _, translator := range t.Translators {
		if _, ok := seen[translator]; ok {
			continue
		}
		seen[translator] = struct{}{}
		kept = append(kept, translator)
	}

	full := t.CoveredSet()

	for i := 0; i < len(kept); {
		candidate := make([]P, 0, len(kept)-1)
		candidate = append(candidate, kept[:i]...)
		candidate = append(candidate, kept[i+1:]...)

		without := Tec[P]{Pattern: t.Pattern, Translators: candidate}
		if without.CoveredSet().Equal(full) {
			kept = candidate
			continue
		}
		i++
	}

	return Tec[P]{Pattern: NewPattern(t.Pattern.points), Translators: kept}
}

// CoveredIndices returns the point-set indices of the points covered by the
// TEC as a compressed bitmap. Every covered point must be a member of the
// point set; a covered point missing from the set indicates the TEC was not
// produced from that set, which is an internal-consistency violation.
func CoveredIndices[P Point[P]](tec Tec[P], pointSet PointSet[P]) *roaring.Bitmap {
	indices := roaring.New()
	covered := tec.CoveredSet()
	for i := 0; i < covered.Len(); i++ {
		idx, ok := pointSet.FindIndex(covered.At(i))
		if !ok {
			panic("motif: covered point not present in point set")
		}
		indices.Add(uint32(idx))
	}
	return indices
}
