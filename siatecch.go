package motif

// SiatecCH implements the SIATEC-CH algorithm: SIATEC-C with a hash-backed
// difference index and cover-based candidate pruning.
//
// WHAT CHANGES RELATIVE TO SIATEC-C:
//   - The global difference index is a hash map keyed by the exact
//     difference vector, giving O(1) average lookups with no ordering
//     requirement, instead of a sorted, binary-searched slice.
//   - A cover array holds, per point index, the largest accepted pattern
//     size known to already include that point. A split MTP candidate is
//     fully processed (translators resolved, TEC emitted) only if accepting
//     it could strictly raise cover for at least one of its source or target
//     indices. After acceptance, the vectorized-difference chain is walked
//     BACKWARD from the resolved targets, raising the cover of every index
//     on the chain to the pattern's length where currently lower.
//
// Every cover entry is non-decreasing over a run. The pruning skips
// candidates dominated by already-accepted patterns, which matters heavily
// once TEC candidates overlap densely.
//
// Candidates inside one window iteration are gathered in a hash map, so
// their processing order is unspecified; the set of emitted TECs does not
// depend on it, but their order may.
type SiatecCH[P Point[P]] struct {
	// MaxIOI is the maximum allowed onset difference between any two points
	// compared directly.
	MaxIOI float64
}

// Compile-time check that SiatecCH implements TecAlgorithm.
var _ TecAlgorithm[Point2D] = SiatecCH[Point2D]{}

// splitCandidate is a split MTP sub-pattern with the point-set indices of
// its points and of their images under the MTP translator.
type splitCandidate[P Point[P]] struct {
	pattern Pattern[P]
	sources []int
	targets []int
}

// ComputeTecs returns the TECs of the IOI-windowed, split, cover-improving
// MTPs.
func (s SiatecCH[P]) ComputeTecs(pointSet PointSet[P]) []Tec[P] {
	var tecs []Tec[P]
	s.ComputeTecsToSink(pointSet, func(tec Tec[P]) { tecs = append(tecs, tec) })
	return tecs
}

// ComputeTecsToSink streams the TECs of the IOI-windowed, split,
// cover-improving MTPs to sink.
func (s SiatecCH[P]) ComputeTecsToSink(pointSet PointSet[P], sink TecSink[P]) {
	n := pointSet.Len()
	if n < 2 {
		return
	}

	diffIndex := newHashDiffIndex(pointSet, s.MaxIOI)
	windows := newIOIWindows(pointSet, s.MaxIOI)
	cover := make([]int, n)

	for !windows.done() {
		windowDiffs := make(map[P][]indexPair)
		windows.scan(pointSet, func(diff P, source, target int) {
			windowDiffs[diff] = append(windowDiffs[diff], indexPair{source: source, target: target})
		})

		for _, pairs := range windowDiffs {
			sources := make([]int, len(pairs))
			targets := make([]int, len(pairs))
			for i, pair := range pairs {
				sources[i] = pair.source
				targets[i] = pair.target
			}
			pattern := pointSet.GetPattern(sources)

			for _, candidate := range splitCandidateOnIOIGaps(pattern, sources, targets, s.MaxIOI) {
				if candidate.pattern.Len() < 2 {
					continue
				}
				if !improvesCover(cover, candidate.sources, candidate.targets, candidate.pattern.Len()) {
					continue
				}

				translators := findChainTranslatorsUpdateCover(candidate.pattern, diffIndex, pointSet, cover)
				sink(Tec[P]{Pattern: candidate.pattern, Translators: translators})
			}
		}
	}
}

// splitCandidateOnIOIGaps splits a pattern at onset gaps exceeding maxIOI,
// slicing the source and target index lists at the same positions so each
// sub-pattern keeps its own endpoints.
func splitCandidateOnIOIGaps[P Point[P]](pattern Pattern[P], sources, targets []int, maxIOI float64) []splitCandidate[P] {
	var candidates []splitCandidate[P]
	start := 0

	for i := 1; i < pattern.Len(); i++ {
		if onsetOf(pattern.At(i))-onsetOf(pattern.At(i-1)) > maxIOI {
			candidates = append(candidates, splitCandidate[P]{
				pattern: NewPattern(pattern.points[start:i]),
				sources: sources[start:i],
				targets: targets[start:i],
			})
			start = i
		}
	}

	candidates = append(candidates, splitCandidate[P]{
		pattern: NewPattern(pattern.points[start:]),
		sources: sources[start:],
		targets: targets[start:],
	})
	return candidates
}

// improvesCover reports whether accepting a pattern of the given length
// could strictly raise the cover of any of its source or target indices.
func improvesCover(cover []int, sources, targets []int, length int) bool {
	for _, idx := range sources {
		if cover[idx] < length {
			return true
		}
	}
	for _, idx := range targets {
		if cover[idx] < length {
			return true
		}
	}
	return false
}

// findChainTranslatorsUpdateCover resolves the pattern's translators through
// the difference index exactly as SIATEC-C does, then walks the vectorized
// chain backward from the resolved targets, raising the cover of every index
// on the chain to the pattern's length where currently lower.
func findChainTranslatorsUpdateCover[P Point[P]](pattern Pattern[P], index differenceIndex[P], pointSet PointSet[P], cover []int) []P {
	vectorized := pattern.Vectorize()

	pairs := mustLookup(index, vectorized.At(0))
	targets := make([]int, 0, len(pairs))
	for _, pair := range pairs {
		targets = append(targets, pair.target)
	}

	for i := 1; i < vectorized.Len(); i++ {
		targets = matchIndexPairsForward(targets, mustLookup(index, vectorized.At(i)))
	}

	last := pattern.At(pattern.Len() - 1)
	translators := make([]P, 0, len(targets))
	for _, target := range targets {
		translator := pointSet.At(target).Sub(last)
		if !translator.IsZero() {
			translators = append(translators, translator)
		}
	}

	updateCover(index, cover, vectorized, targets, pattern.Len())

	return translators
}

// updateCover raises the cover of every index reached by walking the
// vectorized chain backward from the accepted pattern's resolved targets.
// Cover entries only ever grow.
func updateCover[P Point[P]](index differenceIndex[P], cover []int, vectorized Pattern[P], chainTargets []int, length int) {
	indices := chainTargets

	for i := vectorized.Len() - 1; i >= 0; i-- {
		indices = matchIndexPairsBackward(indices, mustLookup(index, vectorized.At(i)))

		for _, idx := range indices {
			if cover[idx] < length {
				cover[idx] = length
			}
		}
	}
}
