package motif

// Cosiatec implements the COSIATEC greedy covering algorithm.
//
// HOW COSIATEC WORKS:
// Repeat until the residual point set is empty: run the configured TEC
// algorithm over the residual set; among every produced TEC AND its
// conjugate (each first pruned of redundant translators) track the best
// by the TecStats cascade; emit the best TEC and subtract its covered set
// from the residual. Each emitted TEC is the locally best compressor of
// whatever the earlier picks left uncovered, so the sequence approximates a
// minimum-description-length encoding of the whole point set.
//
// A hard bound of one iteration per original point guards against a
// selected TEC that fails to shrink the residual set; without it such a
// selection would loop forever.
type Cosiatec[P Point[P]] struct {
	algorithm TecAlgorithm[P]
}

// Compile-time check that Cosiatec implements TecAlgorithm.
var _ TecAlgorithm[Point2D] = (*Cosiatec[Point2D])(nil)

// NewCosiatec returns a COSIATEC instance that computes its TEC candidates
// with the given algorithm.
func NewCosiatec[P Point[P]](algorithm TecAlgorithm[P]) *Cosiatec[P] {
	return &Cosiatec[P]{algorithm: algorithm}
}

// ComputeTecs returns the greedy cover of the point set, best TEC first.
func (c *Cosiatec[P]) ComputeTecs(pointSet PointSet[P]) []Tec[P] {
	var tecs []Tec[P]
	c.ComputeTecsToSink(pointSet, func(tec Tec[P]) { tecs = append(tecs, tec) })
	return tecs
}

// ComputeTecsToSink streams the greedy cover of the point set to sink,
// best TEC first.
func (c *Cosiatec[P]) ComputeTecsToSink(pointSet PointSet[P], sink TecSink[P]) {
	residual := pointSet

	for iterations := 0; residual.Len() > 0 && iterations < pointSet.Len(); iterations++ {
		best := c.bestTec(residual)
		residual = residual.Difference(best.CoveredSet)
		sink(best.Tec)
	}
}

// bestTec scans every TEC the algorithm produces for the point set,
// together with each TEC's conjugate, and keeps the best-scoring one.
// Candidates are pruned of redundant translators before scoring.
func (c *Cosiatec[P]) bestTec(pointSet PointSet[P]) TecStats[P] {
	best := TecStats[P]{
		Tec:       Tec[P]{Pattern: NewPattern[P](nil)},
		CompRatio: -1,
	}

	c.algorithm.ComputeTecsToSink(pointSet, func(tec Tec[P]) {
		candidate := StatsOf(tec.RemoveRedundantTranslators(), pointSet)
		if candidate.IsBetterThan(best) {
			best = candidate
		}

		conjugate := StatsOf(tec.Conjugate().RemoveRedundantTranslators(), pointSet)
		if conjugate.IsBetterThan(best) {
			best = conjugate
		}
	})

	return best
}
