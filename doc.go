/*
Package motif provides point-set pattern discovery algorithms for Go.

Motif discovers repeated patterns in multi-dimensional point sets under
translation: given a set of points (for example note onsets paired with
pitches), it finds the maximal groups of points that recur elsewhere in the
set shifted by a constant vector. The package implements the SIA family of
discovery algorithms along with greedy compression schemes built on top of
them, and pattern matchers for locating known query patterns.

# Overview

Motif is built for developers who want to understand how geometric pattern
discovery works from the inside out. It provides faithful, well-documented
implementations of the published algorithms with a uniform API, so variants
can be swapped and compared on the same data.

# Quick Start

Discover the maximal translatable patterns of a point set:

	package main

	import (
	    "fmt"
	    "log"

	    "github.com/quaverkit/motif"
	)

	func main() {
	    points := []motif.Point2D{
	        {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0},
	    }
	    pointSet := motif.NewPointSet(points)

	    algorithm, err := motif.NewMtpAlgorithm[motif.Point2D](motif.AlgorithmConfig{
	        Kind: motif.KindSia,
	    })
	    if err != nil {
	        log.Fatal(err)
	    }

	    mtps := algorithm.ComputeMtps(pointSet)
	    for _, mtp := range mtps {
	        fmt.Printf("translator=%v pattern size=%d\n", mtp.Translator, mtp.Pattern.Len())
	    }
	}

# Point Types

Three point implementations are provided, each satisfying the Point
interface:

Point2D: Plain float64 coordinates. Best when the input is already exact
(integer-valued onsets, pitch numbers).

	p := motif.Point2D{X: 1.5, Y: 60}

RoundedPoint2D: Rounds the first component to five decimal places on
construction and after every arithmetic operation, so onsets produced by
floating-point arithmetic (triplet durations and the like) compare equal
when they should.

	p := motif.NewRoundedPoint2D(0.3333333333, 60)

IntPoint2D: Pure integer coordinates with no rounding concerns at all.

	p := motif.IntPoint2D{X: 2, Y: 64}

# Discovery Algorithms

Five discovery algorithms are available behind two interfaces. MTP
algorithms enumerate maximal translatable patterns; TEC algorithms
additionally find every occurrence of each pattern, producing translational
equivalence classes.

SIA: The baseline O(n² log n) MTP algorithm. Computes all pairwise forward
differences, sorts them, and reads the MTPs off as runs of equal vectors.

	algorithm, _ := motif.NewMtpAlgorithm[motif.Point2D](motif.AlgorithmConfig{
	    Kind: motif.KindSia,
	})

SIAR: A windowed variant that only computes differences within r
subdiagonals, then recovers full MTPs for the most frequent intra-pattern
difference vectors. Trades completeness for speed on large inputs.

	algorithm, _ := motif.NewMtpAlgorithm[motif.Point2D](motif.AlgorithmConfig{
	    Kind:   motif.KindSiaR,
	    Window: 8,
	})

SIATEC: The baseline O(n³) TEC algorithm. Builds the full difference table
and finds every translator of every MTP with a synchronized column scan.

	algorithm, _ := motif.NewTecAlgorithm[motif.Point2D](motif.AlgorithmConfig{
	    Kind: motif.KindSiatec,
	})

SIATEC-C: Bounds the pattern search by a maximum inter-onset interval,
splitting candidate patterns at gaps wider than the bound and resolving
translators by chaining through a sorted difference index. Scales to much
larger inputs than SIATEC when patterns are temporally compact.

	algorithm, _ := motif.NewTecAlgorithm[motif.Point2D](motif.AlgorithmConfig{
	    Kind:   motif.KindSiatecC,
	    MaxIOI: 4,
	})

SIATEC-CH: The same bounded search as SIATEC-C with a hash-based difference
index and a cover array that prunes candidates whose points are already
covered by an equally long or longer discovered pattern.

	algorithm, _ := motif.NewTecAlgorithm[motif.Point2D](motif.AlgorithmConfig{
	    Kind:   motif.KindSiatecCH,
	    MaxIOI: 4,
	})

# Compression

Two greedy schemes select a compact subset of TECs that covers the input.
Both consult TecStats, a quality heuristic combining compression ratio,
compactness, and pattern geometry.

COSIATEC: Repeatedly picks the best TEC of the remaining points and removes
the points it covers, yielding a strict partition of the input.

	algorithm, _ := motif.NewTecAlgorithm[motif.Point2D](motif.AlgorithmConfig{Kind: motif.KindSiatec})
	cosiatec := motif.NewCosiatec(algorithm)
	tecs := cosiatec.ComputeTecs(pointSet)

SIATECCompress: Ranks all TECs and their conjugates once, then accepts each
in order while it still covers enough new points to pay for itself. Faster
than COSIATEC and allows overlapping patterns.

	compress := motif.NewSiatecCompress(algorithm)
	tecs := compress.ComputeTecs(pointSet)

# Pattern Matching

Given a known query pattern, the matchers report where it occurs:

	matcher := motif.ExactMatcher[motif.Point2D]{}
	occurrences := motif.FindMatchOccurrences[motif.Point2D](matcher, query, pointSet)

ExactMatcher finds complete translated occurrences; PartialMatcher finds
occurrences where at least MinMatchSize query points are matched.

# Input and Output

CSV readers parse point sets from two-column numeric files, and discovered
TECs serialize to the JSON interchange format used by pattern-discovery
evaluation tooling:

	points, _ := motif.ReadPoints2D(file)
	motif.WriteTecsJSON(out, "piece-name", "SIATEC", tecs)

# Streaming

Every algorithm also exposes a sink variant (ComputeMtpsToSink,
ComputeTecsToSink) that hands each result to a callback as it is found,
so callers can filter or serialize output without holding all of it in
memory. Sinks are invoked synchronously from the calling goroutine.

# Choosing an Algorithm

  - Small inputs, need all MTPs: use SIA
  - Small inputs, need all occurrences: use SIATEC
  - Large inputs: use SIATEC-C or SIATEC-CH with a MaxIOI suited to the data
  - Need a lossless compressed description: use COSIATEC
  - Need the best patterns quickly, overlap acceptable: use SIATECCompress

# License

MIT License
*/
package motif
