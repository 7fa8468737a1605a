package motif

import "sort"

// SiatecC implements the SIATEC-C algorithm: TEC discovery windowed by a
// maximum inter-onset interval (IOI).
//
// HOW SIATEC-C WORKS:
// Instead of an n x n difference table, SIATEC-C bounds every pairwise
// comparison by the difference in the points' onset (first) coordinate:
//
//  1. A global difference index records all forward differences with an
//     onset delta of at most MaxIOI, grouped by exact difference vector
//     with the (source, target) index pairs that produced each one.
//  2. The main loop gives every source point a sliding target window of
//     onset width MaxIOI. Each outer iteration differences every source
//     against the targets inside its current window, partitions the
//     differences into MTPs exactly as SIA does, then advances the windows.
//  3. Each MTP pattern is split at any internal gap where consecutive
//     points' onset delta exceeds MaxIOI. Points far apart in the set can
//     land in one MTP while violating the bound pairwise, so the split is
//     necessary for the windowed semantics, and it is exactly what makes the
//     output differ from exhaustive SIATEC.
//  4. Translators for every split sub-pattern longer than one point are
//     resolved by chain matching over the difference index: look up the
//     index pairs for the first vectorized step, then intersect the running
//     reachable-target set against each subsequent step's pairs.
//
// The loop terminates once every source window has slid past the end of the
// data. Points without an onset component are a precondition violation and
// abort the computation.
type SiatecC[P Point[P]] struct {
	// MaxIOI is the maximum allowed onset difference between any two points
	// compared directly.
	MaxIOI float64
}

// Compile-time check that SiatecC implements TecAlgorithm.
var _ TecAlgorithm[Point2D] = SiatecC[Point2D]{}

// ComputeTecs returns the TECs of the IOI-windowed, split MTPs.
func (s SiatecC[P]) ComputeTecs(pointSet PointSet[P]) []Tec[P] {
	var tecs []Tec[P]
	s.ComputeTecsToSink(pointSet, func(tec Tec[P]) { tecs = append(tecs, tec) })
	return tecs
}

// ComputeTecsToSink streams the TECs of the IOI-windowed, split MTPs
// to sink.
func (s SiatecC[P]) ComputeTecsToSink(pointSet PointSet[P], sink TecSink[P]) {
	if pointSet.Len() < 2 {
		return
	}

	diffIndex := newSortedDiffIndex(pointSet, s.MaxIOI)
	windows := newIOIWindows(pointSet, s.MaxIOI)

	for !windows.done() {
		var forwardDiffs []indexedDiff[P]
		windows.scan(pointSet, func(diff P, source, _ int) {
			forwardDiffs = append(forwardDiffs, indexedDiff[P]{vec: diff, source: source})
		})
		sortIndexedDiffs(forwardDiffs)

		partitionIndexedDiffs(forwardDiffs, func(translator P, indices []int) {
			pattern := pointSet.GetPattern(indices)
			for _, split := range splitPatternOnIOIGaps(pattern, s.MaxIOI) {
				if split.Len() > 1 {
					translators := findChainTranslators(split, diffIndex, pointSet)
					sink(Tec[P]{Pattern: split, Translators: translators})
				}
			}
		})
	}
}

// ioiWindows tracks, per source point, the next target index to difference
// against and the onset upper bound of the current window. A bound advances
// by the IOI limit each time the target pointer slides past it.
type ioiWindows[P Point[P]] struct {
	maxIOI  float64
	n       int
	targets []int
	bounds  []float64
}

func newIOIWindows[P Point[P]](pointSet PointSet[P], maxIOI float64) *ioiWindows[P] {
	n := pointSet.Len()
	targets := make([]int, n)
	bounds := make([]float64, n)
	for i := 0; i < n; i++ {
		targets[i] = i
		bounds[i] = onsetOf(pointSet.At(i)) + maxIOI
	}
	return &ioiWindows[P]{maxIOI: maxIOI, n: n, targets: targets, bounds: bounds}
}

// done reports whether every source window has moved past the data.
func (w *ioiWindows[P]) done() bool {
	return w.targets[0] >= w.n
}

// scan emits the forward difference for every (source, target) pair whose
// target lies inside the source's current window, then advances the windows.
// Each source has its own window position, so difference vectors of the same
// onset span are always computed during the same iteration.
func (w *ioiWindows[P]) scan(pointSet PointSet[P], emit func(diff P, source, target int)) {
	for i := 0; i < w.n-1; i++ {
		if w.targets[i] >= w.n {
			continue
		}
		from := pointSet.At(i)

		windowExceedsData := true
		for j := w.targets[i]; j < w.n; j++ {
			if i == j {
				continue
			}

			to := pointSet.At(j)
			if onsetOf(to) > w.bounds[i] {
				w.targets[i] = j
				w.bounds[i] += w.maxIOI
				windowExceedsData = false
				break
			}

			emit(to.Sub(from), i, j)
		}

		// The window end extends beyond the last point, so there are no
		// more windows to handle from this source.
		if windowExceedsData {
			w.targets[i] = w.n
		}
	}
}

// splitPatternOnIOIGaps splits a pattern wherever the onset delta between
// consecutive points exceeds maxIOI, returning the runs in pattern order.
func splitPatternOnIOIGaps[P Point[P]](pattern Pattern[P], maxIOI float64) []Pattern[P] {
	var splits []Pattern[P]
	var run []P

	prev := pattern.At(0)
	for i := 0; i < pattern.Len(); i++ {
		p := pattern.At(i)
		if onsetOf(p)-onsetOf(prev) > maxIOI {
			splits = append(splits, NewPattern(run))
			run = run[:0]
		}
		run = append(run, p)
		prev = p
	}

	if len(run) > 0 {
		splits = append(splits, NewPattern(run))
	}
	return splits
}

// findChainTranslators resolves all translators of a pattern through a
// difference index. The pattern's vectorized steps form a chain: the first
// step's index pairs seed the reachable-target set, and each further step
// keeps only the targets from which the chain can be continued. Whatever
// targets survive the whole chain are ends of complete translated copies,
// and each yields the translator from the pattern's last point.
func findChainTranslators[P Point[P]](pattern Pattern[P], index differenceIndex[P], pointSet PointSet[P]) []P {
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
	return translators
}

// matchIndexPairsForward keeps the targets of the pairs whose source
// continues one of the running chains. Both inputs are in ascending order,
// so a two-pointer merge suffices.
func matchIndexPairsForward(targets []int, pairs []indexPair) []int {
	var next []int
	j, k := 0, 0
	for j < len(targets) && k < len(pairs) {
		switch {
		case targets[j] == pairs[k].source:
			next = append(next, pairs[k].target)
			j++
			k++
		case targets[j] < pairs[k].source:
			j++
		default:
			k++
		}
	}
	return next
}

// matchIndexPairsBackward maps chain positions one step backward: it keeps
// the sources of the pairs whose target is one of the given indices. Both
// inputs are in ascending order.
func matchIndexPairsBackward(indices []int, pairs []indexPair) []int {
	var prev []int
	j, k := 0, 0
	for j < len(indices) && k < len(pairs) {
		switch {
		case indices[j] == pairs[k].target:
			prev = append(prev, pairs[k].source)
			j++
			k++
		case indices[j] < pairs[k].target:
			j++
		default:
			k++
		}
	}
	return prev
}

// RemoveTranslationalDuplicates sorts the TECs by the length and content of
// their vectorized patterns and drops all but the first TEC of each shape.
// The windowed algorithms can produce the same shape from several window
// iterations, so callers that need distinct shapes apply this once at the
// end.
func RemoveTranslationalDuplicates[P Point[P]](tecs []Tec[P]) []Tec[P] {
	if len(tecs) == 0 {
		return tecs
	}

	sort.SliceStable(tecs, func(i, j int) bool {
		a, b := tecs[i].Pattern.Vectorize(), tecs[j].Pattern.Vectorize()
		if a.Len() != b.Len() {
			return a.Len() < b.Len()
		}
		return a.Compare(b) < 0
	})

	distinct := tecs[:1]
	for _, tec := range tecs[1:] {
		if !tec.Pattern.Vectorize().Equal(distinct[len(distinct)-1].Pattern.Vectorize()) {
			distinct = append(distinct, tec)
		}
	}
	return distinct
}
