package motif

// Sia implements the SIA algorithm for discovering all maximal translatable
// patterns in a point set.
//
// HOW SIA WORKS:
// For n points, compute every forward difference p[j] - p[i] with i < j and
// tag it with its source index i, giving n(n-1)/2 pairs. Sort the pairs
// lexicographically by difference. Every maximal run of equal differences in
// the sorted list is an MTP: the shared difference is the translator, and
// the pattern is formed from the run's source indices in ascending order.
//
// TIME COMPLEXITY:
//   - O(n^2 log n) overall, dominated by sorting the O(n^2) difference pairs.
//
// MEMORY REQUIREMENTS:
//   - O(n^2) for the difference list. The streaming entry point bounds the
//     output memory, not the working memory.
//
// SIA is exhaustive: every MTP in the input is produced exactly once.
type Sia[P Point[P]] struct{}

// Compile-time check that Sia implements MtpAlgorithm.
var _ MtpAlgorithm[Point2D] = Sia[Point2D]{}

// ComputeMtps returns all MTPs in the given point set.
func (s Sia[P]) ComputeMtps(pointSet PointSet[P]) []Mtp[P] {
	var mtps []Mtp[P]
	s.ComputeMtpsToSink(pointSet, func(mtp Mtp[P]) { mtps = append(mtps, mtp) })
	return mtps
}

// ComputeMtpsToSink streams all MTPs in the given point set to sink.
func (s Sia[P]) ComputeMtpsToSink(pointSet PointSet[P], sink MtpSink[P]) {
	diffs := siaComputeDifferences(pointSet)
	partitionIndexedDiffs(diffs, func(translator P, indices []int) {
		sink(Mtp[P]{Translator: translator, Pattern: pointSet.GetPattern(indices)})
	})
}

// siaComputeDifferences returns all forward differences of the point set
// tagged with their source indices, sorted in ascending lexicographic order.
func siaComputeDifferences[P Point[P]](pointSet PointSet[P]) []indexedDiff[P] {
	n := pointSet.Len()
	if n < 2 {
		return nil
	}

	diffs := make([]indexedDiff[P], 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		from := pointSet.At(i)
		for j := i + 1; j < n; j++ {
			diffs = append(diffs, indexedDiff[P]{vec: pointSet.At(j).Sub(from), source: i})
		}
	}

	sortIndexedDiffs(diffs)
	return diffs
}
