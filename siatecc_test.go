package motif

import "testing"

func TestSiatecCWithMinimalNumberOfMtps(t *testing.T) {
	a := Point2D{X: 1, Y: 1}
	b := Point2D{X: 2, Y: 1}
	c := Point2D{X: 3, Y: 1}
	d := Point2D{X: 4, Y: 1}
	pointSet := NewPointSet([]Point2D{a, b, c, d})

	tecs := SiatecC[Point2D]{MaxIOI: 2}.ComputeTecs(pointSet)
	sortTecsByPatternLength(tecs)

	assertTecsEqual(t, tecs, []Tec[Point2D]{
		{
			Pattern:     NewPattern([]Point2D{a, b}),
			Translators: []Point2D{{X: 1, Y: 0}, {X: 2, Y: 0}},
		},
		{
			Pattern:     NewPattern([]Point2D{a, b, c}),
			Translators: []Point2D{{X: 1, Y: 0}},
		},
	})
}

func TestSiatecCWithGap(t *testing.T) {
	// The gap between onsets 2 and 5 exceeds the IOI bound, so the only
	// discovered shape is the two-note step repeated across the gap.
	a := Point2D{X: 1, Y: 1}
	b := Point2D{X: 2, Y: 1}
	pointSet := NewPointSet([]Point2D{a, b, {X: 5, Y: 1}, {X: 6, Y: 1}})

	tecs := SiatecC[Point2D]{MaxIOI: 2}.ComputeTecs(pointSet)
	tecs = RemoveTranslationalDuplicates(tecs)

	assertTecsEqual(t, tecs, []Tec[Point2D]{
		{
			Pattern:     NewPattern([]Point2D{a, b}),
			Translators: []Point2D{{X: 4, Y: 0}},
		},
	})
}

func TestSiatecCWithMultipleGaps(t *testing.T) {
	a := Point2D{X: 1, Y: 1}
	b := Point2D{X: 2, Y: 1}
	pointSet := NewPointSet([]Point2D{a, b, {X: 4, Y: 1}, {X: 7, Y: 1}, {X: 8, Y: 1}})

	tecs := SiatecC[Point2D]{MaxIOI: 2}.ComputeTecs(pointSet)
	tecs = RemoveTranslationalDuplicates(tecs)

	assertTecsEqual(t, tecs, []Tec[Point2D]{
		{
			Pattern:     NewPattern([]Point2D{a, b}),
			Translators: []Point2D{{X: 6, Y: 0}},
		},
	})
}

func TestSiatecCTranslatorsNeverContainZero(t *testing.T) {
	pointSet := benchmarkPointSet(60)

	tecs := SiatecC[Point2D]{MaxIOI: 4}.ComputeTecs(pointSet)
	for i, tec := range tecs {
		for _, translator := range tec.Translators {
			if translator.IsZero() {
				t.Errorf("TEC %d contains the zero translator", i)
			}
		}
	}
}

func TestSiatecCSmallInputs(t *testing.T) {
	single := NewPointSet([]Point2D{{X: 1, Y: 1}})
	if tecs := (SiatecC[Point2D]{MaxIOI: 2}).ComputeTecs(single); len(tecs) != 0 {
		t.Errorf("single point produced %d TECs", len(tecs))
	}
}

func TestRemoveTranslationalDuplicates(t *testing.T) {
	shape := NewPattern([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}})
	sameShapeElsewhere := NewPattern([]Point2D{{X: 10, Y: 5}, {X: 11, Y: 5}})
	otherShape := NewPattern([]Point2D{{X: 0, Y: 0}, {X: 2, Y: 1}})

	tecs := []Tec[Point2D]{
		{Pattern: shape, Translators: []Point2D{{X: 4, Y: 0}}},
		{Pattern: sameShapeElsewhere, Translators: []Point2D{{X: 2, Y: 0}}},
		{Pattern: otherShape, Translators: []Point2D{{X: 3, Y: 0}}},
	}

	distinct := RemoveTranslationalDuplicates(tecs)
	if len(distinct) != 2 {
		t.Fatalf("got %d TECs, want 2", len(distinct))
	}
	for _, tec := range distinct {
		if tec.Pattern.Equal(sameShapeElsewhere) {
			t.Error("the later duplicate of a shape should have been dropped")
		}
	}
}

func BenchmarkSiatecC(b *testing.B) {
	pointSet := benchmarkPointSet(200)
	algorithm := SiatecC[Point2D]{MaxIOI: 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		algorithm.ComputeTecsToSink(pointSet, func(Tec[Point2D]) {})
	}
}
