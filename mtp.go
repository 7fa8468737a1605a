package motif

// Mtp is a Maximal Translatable Pattern: the set of all points in a point
// set D that can be translated by Translator so that every translated point
// is also within D. The pattern's points are in ascending point-set order.
type Mtp[P Point[P]] struct {
	// Translator is the vector shared by every point in the pattern.
	Translator P
	// Pattern holds the translatable points.
	Pattern Pattern[P]
}

// Equal reports whether two MTPs have the same translator and pattern.
func (m Mtp[P]) Equal(other Mtp[P]) bool {
	return m.Translator == other.Translator && m.Pattern.Equal(other.Pattern)
}
