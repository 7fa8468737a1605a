package motif

import "sort"

// SiaR implements the SIAR algorithm: SIA restricted to r subdiagonals of
// the difference matrix.
//
// HOW SIAR WORKS:
// Instead of all O(n^2) point pairs, only pairs (i, j) with j at most r
// positions after i are differenced, costing O(n*r). The windowed
// differences are partitioned into candidate patterns exactly as in SIA.
// The candidates are then mined for translator evidence: all pairwise
// differences internal to each candidate pattern are computed, sorted, and
// tallied into a frequency table ordered by descending occurrence count.
// Each tallied difference is a candidate translator, strongest first, and
// its true maximal pattern is recovered exactly with
// pointSet.Intersect(pointSet.Translate(-translator)).
//
// GUARANTEES & TRADE-OFFS:
// SIAR may miss translators whose defining point pairs all fall outside the
// window, so it is an approximation of SIA by design, not a bug. In exchange
// the difference computation is linear in n for fixed r. Every MTP it emits
// is exact and maximal for its translator; only the set of translators
// explored is restricted.
type SiaR[P Point[P]] struct {
	// Window is the number of subdiagonals r, i.e. how many positions past
	// each source point are differenced.
	Window int
}

// Compile-time check that SiaR implements MtpAlgorithm.
var _ MtpAlgorithm[Point2D] = SiaR[Point2D]{}

// ComputeMtps returns the MTPs discovered within the window restriction,
// in descending order of translator evidence.
func (s SiaR[P]) ComputeMtps(pointSet PointSet[P]) []Mtp[P] {
	var mtps []Mtp[P]
	s.ComputeMtpsToSink(pointSet, func(mtp Mtp[P]) { mtps = append(mtps, mtp) })
	return mtps
}

// ComputeMtpsToSink streams the discovered MTPs to sink, most frequent
// internal shift first.
func (s SiaR[P]) ComputeMtpsToSink(pointSet PointSet[P], sink MtpSink[P]) {
	diffs := s.computeWindowedDifferences(pointSet)

	var candidates []Pattern[P]
	partitionIndexedDiffs(diffs, func(_ P, indices []int) {
		candidates = append(candidates, pointSet.GetPattern(indices))
	})

	intraDiffs := computeIntraPatternDiffs(candidates)
	frequencies := computeDiffFrequencies(intraDiffs)

	for _, freq := range frequencies {
		translator := freq.vec
		intersection := pointSet.Intersect(pointSet.Translate(translator.Scale(-1)))
		sink(Mtp[P]{Translator: translator, Pattern: intersection.Pattern()})
	}
}

// computeWindowedDifferences returns the forward differences restricted to
// the window, tagged with source indices and sorted lexicographically.
func (s SiaR[P]) computeWindowedDifferences(pointSet PointSet[P]) []indexedDiff[P] {
	n := pointSet.Len()
	if n < 2 {
		return nil
	}

	diffs := make([]indexedDiff[P], 0, n*s.Window)
	for i := 0; i < n-1; i++ {
		from := pointSet.At(i)
		for j := i + 1; j < min(n, i+s.Window+1); j++ {
			diffs = append(diffs, indexedDiff[P]{vec: pointSet.At(j).Sub(from), source: i})
		}
	}

	sortIndexedDiffs(diffs)
	return diffs
}

// computeIntraPatternDiffs returns all pairwise forward differences internal
// to each candidate pattern, sorted in ascending lexicographic order.
func computeIntraPatternDiffs[P Point[P]](patterns []Pattern[P]) []P {
	var intraDiffs []P
	for _, pattern := range patterns {
		m := pattern.Len()
		for i := 0; i < m-1; i++ {
			from := pattern.At(i)
			for j := i + 1; j < m; j++ {
				intraDiffs = append(intraDiffs, pattern.At(j).Sub(from))
			}
		}
	}

	sort.Slice(intraDiffs, func(i, j int) bool {
		return intraDiffs[i].Compare(intraDiffs[j]) < 0
	})
	return intraDiffs
}

// diffFrequency is a difference vector with its occurrence count.
type diffFrequency[P Point[P]] struct {
	vec   P
	count int
}

// computeDiffFrequencies collapses a sorted difference list into a frequency
// table sorted by descending count. The most frequent internal shift is the
// strongest translator candidate.
func computeDiffFrequencies[P Point[P]](sortedDiffs []P) []diffFrequency[P] {
	if len(sortedDiffs) == 0 {
		return nil
	}

	var frequencies []diffFrequency[P]
	current := sortedDiffs[0]
	count := 0
	for _, diff := range sortedDiffs {
		if diff == current {
			count++
			continue
		}
		frequencies = append(frequencies, diffFrequency[P]{vec: current, count: count})
		current = diff
		count = 1
	}
	frequencies = append(frequencies, diffFrequency[P]{vec: current, count: count})

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].count > frequencies[j].count
	})
	return frequencies
}
