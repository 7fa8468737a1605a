package motif

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// SiatecCompress implements the SIATECCompress covering algorithm.
//
// HOW SIATECCOMPRESS WORKS:
// Unlike COSIATEC, which recomputes TECs over a shrinking residual set,
// SIATECCompress computes every TEC and conjugate once up front, scores
// them, ranks them best-first, and walks the ranked list accumulating
// coverage. A TEC is accepted only if the NEW points it would add beyond the
// running cover outnumber its own representation size, the pattern length
// plus the translator count. The walk stops as
// soon as the accumulated cover equals the whole point set, and any
// uncovered remainder is emitted as one degenerate singleton-pattern TEC
// whose translators reach every remaining point, guaranteeing full coverage
// at a compression-negative cost.
//
// Accepted coverage is tracked as a compressed bitmap over point-set
// indices; the payoff test is a bitmap and-not cardinality rather than a
// point-set merge.
//
// KNOWN ORDERING LOOSENESS:
// The ranking sorts with TecStats.IsBetterThan, whose cascading criteria do
// not define a consistent total order. Two heuristically incomparable TECs
// can therefore be ranked either way. This replicates the reference
// behavior deliberately; see DESIGN.md for the open question around it.
type SiatecCompress[P Point[P]] struct {
	algorithm TecAlgorithm[P]
}

// Compile-time check that SiatecCompress implements TecAlgorithm.
var _ TecAlgorithm[Point2D] = (*SiatecCompress[Point2D])(nil)

// NewSiatecCompress returns a SIATECCompress instance that computes its TEC
// candidates with the given algorithm.
func NewSiatecCompress[P Point[P]](algorithm TecAlgorithm[P]) *SiatecCompress[P] {
	return &SiatecCompress[P]{algorithm: algorithm}
}

// ComputeTecs returns the ranked compressing cover of the point set.
func (s *SiatecCompress[P]) ComputeTecs(pointSet PointSet[P]) []Tec[P] {
	candidates := s.algorithm.ComputeTecs(pointSet)
	for _, tec := range candidates[:len(candidates):len(candidates)] {
		candidates = append(candidates, tec.Conjugate())
	}

	stats := make([]TecStats[P], 0, len(candidates))
	for _, tec := range candidates {
		stats = append(stats, StatsOf(tec.RemoveRedundantTranslators(), pointSet))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].IsBetterThan(stats[j])
	})

	return s.computeEncoding(stats, pointSet)
}

// ComputeTecsToSink streams the ranked compressing cover of the point set
// to sink.
func (s *SiatecCompress[P]) ComputeTecsToSink(pointSet PointSet[P], sink TecSink[P]) {
	for _, tec := range s.ComputeTecs(pointSet) {
		sink(tec)
	}
}

// computeEncoding walks the ranked candidates, accepting each TEC whose new
// coverage exceeds its representation size, and closes the encoding with a
// residual singleton TEC if any points remain uncovered.
func (s *SiatecCompress[P]) computeEncoding(stats []TecStats[P], pointSet PointSet[P]) []Tec[P] {
	totalCover := roaring.New()
	var encoding []Tec[P]

	for _, candidate := range stats {
		covered := CoveredIndices(candidate.Tec, pointSet)
		newPoints := roaring.AndNot(covered, totalCover).GetCardinality()

		// The zero translator is not represented, so the representation
		// size carries no -1 correction.
		reprSize := uint64(candidate.Tec.Pattern.Len() + len(candidate.Tec.Translators))

		if newPoints > reprSize {
			encoding = append(encoding, candidate.Tec)
			totalCover.Or(covered)
			if totalCover.GetCardinality() == uint64(pointSet.Len()) {
				break
			}
		}
	}

	if residual := s.residualTec(totalCover, pointSet); residual != nil {
		encoding = append(encoding, *residual)
	}
	return encoding
}

// residualTec builds the degenerate TEC covering every point the accepted
// encoding left out: a singleton pattern of the first uncovered point with
// one translator per further uncovered point. Returns nil when the cover is
// already complete.
func (s *SiatecCompress[P]) residualTec(totalCover *roaring.Bitmap, pointSet PointSet[P]) *Tec[P] {
	var uncovered []P
	for i := 0; i < pointSet.Len(); i++ {
		if !totalCover.Contains(uint32(i)) {
			uncovered = append(uncovered, pointSet.At(i))
		}
	}
	if len(uncovered) == 0 {
		return nil
	}

	first := uncovered[0]
	translators := make([]P, 0, len(uncovered)-1)
	for _, p := range uncovered[1:] {
		translators = append(translators, p.Sub(first))
	}

	return &Tec[P]{Pattern: NewPattern([]P{first}), Translators: translators}
}
