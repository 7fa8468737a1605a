package motif

import "sort"

// Siatec implements the SIATEC algorithm: exhaustive, exact discovery of the
// translational equivalence class of every maximal translatable pattern.
//
// HOW SIATEC WORKS:
//  1. Build the full n x n difference table diff[i][j] = p[j] - p[i] along
//     with the sorted forward-difference list used by SIA.
//  2. Partition the forward list into MTPs exactly as SIA does, carrying
//     each MTP's vectorized pattern along.
//  3. Optionally merge translationally duplicate MTPs: MTPs with equal
//     vectorized patterns describe the same shape and would yield identical
//     translator sets, so only the first occurrence's indices are kept.
//     Duplicate removal itself costs a sort, so it is configurable.
//  4. For each remaining MTP, find ALL of its translators with a
//     synchronized multi-column scan of the difference table: fix the MTP's
//     source-point columns, advance one shared row value across the columns
//     in lock-step, and accept a value as a translator when every column
//     contains it, it is non-zero, and (for single-point patterns) trivially.
//
// TIME COMPLEXITY:
//   - O(n^3) worst case for the translator scans, O(n^2) memory for the
//     difference table. The row pointers advance monotonically, so each
//     MTP's scan is O(n) amortized per column.
type Siatec[P Point[P]] struct {
	// RemoveDuplicates enables merging of translationally equivalent MTPs
	// before translator computation.
	RemoveDuplicates bool
}

// Compile-time check that Siatec implements TecAlgorithm.
var _ TecAlgorithm[Point2D] = Siatec[Point2D]{}

// mtpCandidate is an MTP pattern with its vectorized shape signature and
// the point-set indices that form it.
type mtpCandidate[P Point[P]] struct {
	pattern    Pattern[P]
	vectorized Pattern[P]
	indices    []int
}

// ComputeTecs returns one TEC per discovered MTP.
func (s Siatec[P]) ComputeTecs(pointSet PointSet[P]) []Tec[P] {
	var tecs []Tec[P]
	s.ComputeTecsToSink(pointSet, func(tec Tec[P]) { tecs = append(tecs, tec) })
	return tecs
}

// ComputeTecsToSink streams one TEC per discovered MTP to sink.
func (s Siatec[P]) ComputeTecsToSink(pointSet PointSet[P], sink TecSink[P]) {
	n := pointSet.Len()
	if n < 2 {
		return
	}

	diffTable, forwardDiffs := siatecComputeDifferences(pointSet)
	candidates := siatecPartition(pointSet, forwardDiffs)

	if s.RemoveDuplicates {
		candidates = removeTranslationalDuplicateCandidates(candidates)
	}

	for _, candidate := range candidates {
		translators := findTableTranslators(n, candidate, diffTable)
		sink(Tec[P]{Pattern: candidate.pattern, Translators: translators})
	}
}

// siatecComputeDifferences builds the full difference table and the sorted
// forward-difference list in one pass over all point pairs.
func siatecComputeDifferences[P Point[P]](pointSet PointSet[P]) ([][]P, []indexedDiff[P]) {
	n := pointSet.Len()
	diffTable := make([][]P, n)
	forwardDiffs := make([]indexedDiff[P], 0, n*(n-1)/2)

	for i := 0; i < n; i++ {
		from := pointSet.At(i)
		diffTable[i] = make([]P, n)

		for j := 0; j < n; j++ {
			diff := pointSet.At(j).Sub(from)
			diffTable[i][j] = diff

			if i < j {
				forwardDiffs = append(forwardDiffs, indexedDiff[P]{vec: diff, source: i})
			}
		}
	}

	sortIndexedDiffs(forwardDiffs)
	return diffTable, forwardDiffs
}

// siatecPartition partitions the sorted forward differences into MTP
// candidates, carrying each candidate's vectorized pattern.
func siatecPartition[P Point[P]](pointSet PointSet[P], forwardDiffs []indexedDiff[P]) []mtpCandidate[P] {
	var candidates []mtpCandidate[P]
	partitionIndexedDiffs(forwardDiffs, func(_ P, indices []int) {
		pattern := pointSet.GetPattern(indices)
		candidates = append(candidates, mtpCandidate[P]{
			pattern:    pattern,
			vectorized: pattern.Vectorize(),
			indices:    indices,
		})
	})
	return candidates
}

// removeTranslationalDuplicateCandidates keeps only the first MTP candidate
// of each distinct shape. Candidates are grouped under their vectorized
// pattern: sorting by (length, vectorized form) makes translationally
// equivalent candidates adjacent so a single pass can drop the duplicates.
func removeTranslationalDuplicateCandidates[P Point[P]](candidates []mtpCandidate[P]) []mtpCandidate[P] {
	if len(candidates) == 0 {
		return candidates
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].vectorized, candidates[j].vectorized
		if a.Len() != b.Len() {
			return a.Len() < b.Len()
		}
		return a.Compare(b) < 0
	})

	distinct := candidates[:1]
	for _, candidate := range candidates[1:] {
		if !candidate.vectorized.Equal(distinct[len(distinct)-1].vectorized) {
			distinct = append(distinct, candidate)
		}
	}
	return distinct
}

// findTableTranslators finds every translator of the candidate pattern by a
// synchronized scan over the pattern's columns of the difference table. One
// shared row value is advanced in lock-step: a row is accepted only when
// every column holds the same difference as column 0. A single-point pattern
// accepts any non-zero difference trivially.
func findTableTranslators[P Point[P]](n int, candidate mtpCandidate[P], diffTable [][]P) []P {
	patLen := candidate.pattern.Len()
	colInd := candidate.indices

	rowInd := make([]int, patLen)

	var translators []P
	for rowInd[0] <= n-patLen {
		for j := 1; j < patLen; j++ {
			rowInd[j] = rowInd[0] + j
		}

		vec := diffTable[colInd[0]][rowInd[0]]
		found := false

		for col := 1; col < patLen; col++ {
			for rowInd[col] < n && diffTable[colInd[col]][rowInd[col]].Compare(vec) < 0 {
				rowInd[col]++
			}

			if rowInd[col] >= n || vec != diffTable[colInd[col]][rowInd[col]] {
				break
			}

			if col == patLen-1 {
				found = true
			}
		}

		if (found || patLen == 1) && !vec.IsZero() {
			translators = append(translators, vec)
		}

		rowInd[0]++
	}

	return translators
}
