package motif

import (
	"fmt"
	"sort"
)

// differenceIndex answers one query: which (source, target) index pairs of
// the point set have a forward difference equal to a given vector?
//
// Two interchangeable backends implement it. SIATEC-C uses a sorted slice
// with binary-search lookup; SIATEC-CH uses a hash map keyed by the exact
// difference vector for O(1) average lookup with no ordering requirement.
// The pruning logic layered on top is independent of the backend choice.
//
// Within a group, pairs are ordered by ascending source index. For a fixed
// difference vector the source-to-target mapping is monotone over a sorted
// point set, so target indices ascend as well; the chain-matching merges in
// SIATEC-C/CH rely on both orderings.
type differenceIndex[P Point[P]] interface {
	// lookup returns the index pairs whose forward difference equals diff,
	// and whether any were indexed. The discovery algorithms only look up
	// differences they derived from indexed point pairs, so a miss is an
	// internal-consistency violation, not a recoverable condition.
	lookup(diff P) ([]indexPair, bool)
}

// mustLookup resolves a difference that the algorithm's own invariants
// guarantee to be present. Substituting a "nearest" result on a miss would
// corrupt output undetectably, so a miss panics instead.
func mustLookup[P Point[P]](index differenceIndex[P], diff P) []indexPair {
	pairs, ok := index.lookup(diff)
	if !ok {
		panic(fmt.Sprintf("motif: difference index has no entry for %v", diff))
	}
	return pairs
}

// diffGroup is one distinct difference vector with every index pair that
// produced it.
type diffGroup[P Point[P]] struct {
	vec   P
	pairs []indexPair
}

// sortedDiffIndex is the binary-searched backend: groups held in ascending
// lexicographic order of the difference vector.
type sortedDiffIndex[P Point[P]] struct {
	groups []diffGroup[P]
}

var _ differenceIndex[Point2D] = (*sortedDiffIndex[Point2D])(nil)

// newSortedDiffIndex indexes all forward differences of the point set with
// an inter-onset interval of at most maxIOI, grouped by exact difference
// vector and sorted for binary search.
func newSortedDiffIndex[P Point[P]](pointSet PointSet[P], maxIOI float64) *sortedDiffIndex[P] {
	diffs := computeBoundedForwardDiffs(pointSet, maxIOI)

	sort.Slice(diffs, func(i, j int) bool {
		if c := diffs[i].vec.Compare(diffs[j].vec); c != 0 {
			return c < 0
		}
		return diffs[i].pair.source < diffs[j].pair.source
	})

	index := &sortedDiffIndex[P]{}
	m := len(diffs)
	i := 0
	for i < m {
		vec := diffs[i].vec

		var pairs []indexPair
		j := i
		for j < m && vec == diffs[j].vec {
			pairs = append(pairs, diffs[j].pair)
			j++
		}

		i = j
		index.groups = append(index.groups, diffGroup[P]{vec: vec, pairs: pairs})
	}
	return index
}

func (s *sortedDiffIndex[P]) lookup(diff P) ([]indexPair, bool) {
	idx := sort.Search(len(s.groups), func(i int) bool {
		return s.groups[i].vec.Compare(diff) >= 0
	})
	if idx < len(s.groups) && s.groups[idx].vec == diff {
		return s.groups[idx].pairs, true
	}
	return nil, false
}

// hashDiffIndex is the hash-backed backend: the exact difference vector is
// the map key. Point types are comparable values, so the language's map
// hashing is consistent with point equality by construction.
type hashDiffIndex[P Point[P]] struct {
	groups map[P][]indexPair
}

var _ differenceIndex[Point2D] = (*hashDiffIndex[Point2D])(nil)

// newHashDiffIndex indexes all forward differences of the point set with an
// inter-onset interval of at most maxIOI in a hash map.
func newHashDiffIndex[P Point[P]](pointSet PointSet[P], maxIOI float64) *hashDiffIndex[P] {
	n := pointSet.Len()
	groups := make(map[P][]indexPair)

	for i := 0; i < n-1; i++ {
		from := pointSet.At(i)
		for j := i + 1; j < n; j++ {
			diff := pointSet.At(j).Sub(from)
			if onsetOf(diff) > maxIOI {
				break
			}
			groups[diff] = append(groups[diff], indexPair{source: i, target: j})
		}
	}
	return &hashDiffIndex[P]{groups: groups}
}

func (h *hashDiffIndex[P]) lookup(diff P) ([]indexPair, bool) {
	pairs, ok := h.groups[diff]
	return pairs, ok
}

// computeBoundedForwardDiffs returns every forward difference whose
// onset delta does not exceed maxIOI, tagged with both endpoint indices.
// The inner loop breaks at the first over-bound target because the point
// set is sorted by onset.
func computeBoundedForwardDiffs[P Point[P]](pointSet PointSet[P], maxIOI float64) []pairedDiff[P] {
	n := pointSet.Len()

	var diffs []pairedDiff[P]
	for i := 0; i < n-1; i++ {
		from := pointSet.At(i)
		for j := i + 1; j < n; j++ {
			diff := pointSet.At(j).Sub(from)
			if onsetOf(diff) > maxIOI {
				break
			}
			diffs = append(diffs, pairedDiff[P]{vec: diff, pair: indexPair{source: i, target: j}})
		}
	}
	return diffs
}
