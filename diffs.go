package motif

import "sort"

// indexedDiff is a difference vector tagged with the point-set index of the
// point it was computed from.
type indexedDiff[P Point[P]] struct {
	vec    P
	source int
}

// indexPair identifies the source and target points that produced a
// forward difference.
type indexPair struct {
	source int
	target int
}

// pairedDiff is a difference vector tagged with both endpoint indices.
type pairedDiff[P Point[P]] struct {
	vec  P
	pair indexPair
}

// sortIndexedDiffs sorts difference-index pairs into ascending
// lexicographic order of the difference vector, breaking ties by
// source index.
func sortIndexedDiffs[P Point[P]](diffs []indexedDiff[P]) {
	sort.Slice(diffs, func(i, j int) bool {
		if c := diffs[i].vec.Compare(diffs[j].vec); c != 0 {
			return c < 0
		}
		return diffs[i].source < diffs[j].source
	})
}

// partitionIndexedDiffs walks a sorted difference list once and emits each
// maximal run of equal difference vectors together with the source indices
// collected over the run. Runs become MTPs: the shared difference is the
// translator and the collected indices select the pattern.
func partitionIndexedDiffs[P Point[P]](diffs []indexedDiff[P], emit func(translator P, indices []int)) {
	m := len(diffs)
	i := 0
	for i < m {
		translator := diffs[i].vec

		var indices []int
		j := i
		for j < m && translator == diffs[j].vec {
			indices = append(indices, diffs[j].source)
			j++
		}

		i = j
		emit(translator, indices)
	}
}

// onsetOf returns the first component of a point. The windowed algorithms
// compare onsets pairwise; a point without a first component violates their
// precondition and aborts the computation.
func onsetOf[P Point[P]](p P) float64 {
	onset, ok := p.Component(0)
	if !ok {
		panic(ErrMissingOnset)
	}
	return onset
}
