package motif

import (
	"fmt"
	"math"
)

// TecStats scores a TEC against the full point set it was discovered in.
// The covering algorithms use the scores to pick, from many overlapping
// candidate TECs, the ones that compress the point set best.
type TecStats[P Point[P]] struct {
	// Tec is the scored class.
	Tec Tec[P]

	// CompRatio is the compression ratio: covered-set size divided by
	// representation size (pattern length plus translator count). The
	// zero translator is already excluded from TECs, so no off-by-one
	// correction is applied to the denominator.
	CompRatio float64

	// Compactness is the best, over all occurrences, of the pattern length
	// divided by the number of original points inside that occurrence's
	// axis-aligned bounding box. A compact pattern fills its region of the
	// piece instead of skipping over intervening material.
	Compactness float64

	// CoveredSet is the set of points covered by any occurrence.
	CoveredSet PointSet[P]

	// PatternWidth is the onset extent of the canonical pattern's
	// bounding box.
	PatternWidth float64

	// PatternArea is the area of the canonical pattern's bounding box.
	PatternArea float64
}

// StatsOf scores a TEC against the point set it was discovered in.
func StatsOf[P Point[P]](tec Tec[P], pointSet PointSet[P]) TecStats[P] {
	covered := tec.CoveredSet()
	bb := boundingBoxOf(tec.Pattern)

	return TecStats[P]{
		Tec:          tec,
		CompRatio:    float64(covered.Len()) / float64(tec.Pattern.Len()+len(tec.Translators)),
		Compactness:  bestCompactness(tec, pointSet),
		CoveredSet:   covered,
		PatternWidth: bb.upperX - bb.lowerX,
		PatternArea:  (bb.upperX - bb.lowerX) * (bb.upperY - bb.lowerY),
	}
}

// IsBetterThan reports whether this TEC should replace other as the running
// best. The comparison cascades: it returns true at the FIRST criterion
// where this TEC strictly beats the other, in the order compression ratio,
// compactness, covered-set size, pattern length, then bounding-box width and
// area ascending.
//
// The cascade does not gate later criteria on earlier ties, so it does not
// define a transitive total order. It is designed for replacing a running
// best during a linear scan, not for general sorting; SiatecCompress
// knowingly sorts with it anyway (see that type's documentation).
func (s TecStats[P]) IsBetterThan(other TecStats[P]) bool {
	if s.CompRatio > other.CompRatio {
		return true
	}
	if s.Compactness > other.Compactness {
		return true
	}
	if s.CoveredSet.Len() > other.CoveredSet.Len() {
		return true
	}
	if s.Tec.Pattern.Len() > other.Tec.Pattern.Len() {
		return true
	}
	if s.PatternWidth < other.PatternWidth {
		return true
	}
	if s.PatternArea < other.PatternArea {
		return true
	}
	return false
}

// boundingBox is an axis-aligned rectangle over the first two components.
type boundingBox struct {
	lowerX, lowerY float64
	upperX, upperY float64
}

func (bb boundingBox) contains(x, y float64) bool {
	return x >= bb.lowerX && x <= bb.upperX && y >= bb.lowerY && y <= bb.upperY
}

// boundingBoxOf returns the bounding box of the pattern's points. The
// heuristic is defined over two-dimensional data; points must expose both
// components.
func boundingBoxOf[P Point[P]](pattern Pattern[P]) boundingBox {
	bb := boundingBox{
		lowerX: math.MaxFloat64,
		lowerY: math.MaxFloat64,
		upperX: -math.MaxFloat64,
		upperY: -math.MaxFloat64,
	}

	for i := 0; i < pattern.Len(); i++ {
		x, y := planeComponents(pattern.At(i))
		bb.lowerX = math.Min(bb.lowerX, x)
		bb.upperX = math.Max(bb.upperX, x)
		bb.lowerY = math.Min(bb.lowerY, y)
		bb.upperY = math.Max(bb.upperY, y)
	}
	return bb
}

// bestCompactness returns the best bounding-box compactness over all
// occurrences of the TEC.
func bestCompactness[P Point[P]](tec Tec[P], pointSet PointSet[P]) float64 {
	best := 0.0
	patLen := float64(tec.Pattern.Len())

	for _, occurrence := range tec.Expand() {
		bb := boundingBoxOf(occurrence)

		contained := 0.0
		for i := 0; i < pointSet.Len(); i++ {
			if bb.contains(planeComponents(pointSet.At(i))) {
				contained++
			}
		}

		if compactness := patLen / contained; compactness > best {
			best = compactness
		}
	}
	return best
}

func planeComponents[P Point[P]](p P) (float64, float64) {
	x, okX := p.Component(0)
	y, okY := p.Component(1)
	if !okX || !okY {
		panic(fmt.Sprintf("motif: point %v does not span two dimensions", p))
	}
	return x, y
}
