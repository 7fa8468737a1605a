package motif

// PatternMatcher finds occurrences of an externally given query pattern in a
// point set. This is the companion problem to discovery: instead of finding
// what repeats, it finds where a known shape occurs. Matchers reuse the same
// point/pattern/point-set primitives as the discovery algorithms.
type PatternMatcher[P Point[P]] interface {
	// FindIndicesToSink streams each match to sink as the point-set
	// indices of the matched points, in query order.
	FindIndicesToSink(query Pattern[P], pointSet PointSet[P], sink func(indices []int))
}

// FindMatchIndices returns every match of the query as point-set index
// lists, one list per match.
func FindMatchIndices[P Point[P]](matcher PatternMatcher[P], query Pattern[P], pointSet PointSet[P]) [][]int {
	var matches [][]int
	matcher.FindIndicesToSink(query, pointSet, func(indices []int) {
		matches = append(matches, indices)
	})
	return matches
}

// FindMatchOccurrences returns every match of the query as a pattern of the
// matched points.
func FindMatchOccurrences[P Point[P]](matcher PatternMatcher[P], query Pattern[P], pointSet PointSet[P]) []Pattern[P] {
	var occurrences []Pattern[P]
	matcher.FindIndicesToSink(query, pointSet, func(indices []int) {
		occurrences = append(occurrences, pointSet.GetPattern(indices))
	})
	return occurrences
}

// ExactMatcher finds all complete translationally equivalent occurrences of
// a query pattern. Based on the exact matching algorithm for problem P1 in
// [Ukkonen et al. 2003]: each point of the set is tried as the image of the
// query's first point, and the implied translation is verified with a
// bounded linear scan. O(n^2) worst case without preprocessing.
type ExactMatcher[P Point[P]] struct{}

var _ PatternMatcher[Point2D] = ExactMatcher[Point2D]{}

// FindIndicesToSink streams each complete occurrence of the query to sink.
func (m ExactMatcher[P]) FindIndicesToSink(query Pattern[P], pointSet PointSet[P], sink func(indices []int)) {
	if query.Len() == 0 || pointSet.Len() < query.Len() {
		return
	}

	for i := 0; i <= pointSet.Len()-query.Len(); i++ {
		translator := pointSet.At(i).Sub(query.At(0))
		cutoff := query.At(query.Len() - 1).Add(translator)

		candidate := make([]int, 0, query.Len())
		scanIndex := i
		queryIndex := 0

		for scanIndex < pointSet.Len() && queryIndex < query.Len() && pointSet.At(scanIndex).Compare(cutoff) <= 0 {
			translated := query.At(queryIndex).Add(translator)

			if pointSet.At(scanIndex) == translated {
				candidate = append(candidate, scanIndex)
			}

			if translated.Compare(pointSet.At(scanIndex)) <= 0 {
				queryIndex++
			}

			scanIndex++
		}

		if len(candidate) == query.Len() {
			sink(candidate)
		}
	}
}

// PartialMatcher finds occurrences that match at least MinMatchSize points
// of the query. Based on the partial matching algorithm for problem P2 in
// [Ukkonen et al. 2003]: every (query point, set point) difference is
// computed and sorted, and each run of equal differences long enough to
// clear the threshold is a partial match.
type PartialMatcher[P Point[P]] struct {
	// MinMatchSize is the minimum number of matching points required for
	// a run to be reported.
	MinMatchSize int
}

var _ PatternMatcher[Point2D] = PartialMatcher[Point2D]{}

// FindIndicesToSink streams each sufficiently large partial occurrence of
// the query to sink.
func (m PartialMatcher[P]) FindIndicesToSink(query Pattern[P], pointSet PointSet[P], sink func(indices []int)) {
	diffs := make([]indexedDiff[P], 0, query.Len()*pointSet.Len())
	for i := 0; i < query.Len(); i++ {
		from := query.At(i)
		for j := 0; j < pointSet.Len(); j++ {
			diffs = append(diffs, indexedDiff[P]{vec: pointSet.At(j).Sub(from), source: j})
		}
	}

	sortIndexedDiffs(diffs)

	partitionIndexedDiffs(diffs, func(_ P, indices []int) {
		if len(indices) >= m.MinMatchSize {
			sink(indices)
		}
	})
}
