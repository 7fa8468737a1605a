package motif

import "testing"

func TestNewPointSetSortsAndDeduplicates(t *testing.T) {
	pointSet := NewPointSet([]Point2D{
		{X: 3, Y: 1},
		{X: 1, Y: 2},
		{X: 1, Y: 1},
		{X: 3, Y: 1},
		{X: 2, Y: 5},
	})

	want := []Point2D{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 5}, {X: 3, Y: 1}}
	if pointSet.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", pointSet.Len(), len(want))
	}
	for i, p := range want {
		if pointSet.At(i) != p {
			t.Errorf("At(%d) = %v, want %v", i, pointSet.At(i), p)
		}
	}
}

func TestPointSetStrictlyAscending(t *testing.T) {
	pointSet := NewPointSet([]Point2D{
		{X: 2, Y: 2}, {X: 0, Y: 5}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 0},
	})

	for i := 0; i < pointSet.Len()-1; i++ {
		if pointSet.At(i).Compare(pointSet.At(i+1)) >= 0 {
			t.Fatalf("points %d and %d are not strictly ascending: %v, %v",
				i, i+1, pointSet.At(i), pointSet.At(i+1))
		}
	}
}

func TestPointSetGetPatternPreservesIndexOrder(t *testing.T) {
	pointSet := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})

	pattern := pointSet.GetPattern([]int{2, 0})
	want := NewPattern([]Point2D{{X: 2, Y: 0}, {X: 0, Y: 0}})
	if !pattern.Equal(want) {
		t.Errorf("GetPattern = %v, want %v", pattern.Points(), want.Points())
	}
}

func TestPointSetTranslate(t *testing.T) {
	pointSet := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 2}})
	translated := pointSet.Translate(Point2D{X: -1, Y: 1})

	want := NewPointSet([]Point2D{{X: -1, Y: 1}, {X: 0, Y: 3}})
	if !translated.Equal(want) {
		t.Errorf("Translate = %v, want %v", translated.Points(), want.Points())
	}
}

func TestPointSetIntersect(t *testing.T) {
	a := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	b := NewPointSet([]Point2D{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})

	want := NewPointSet([]Point2D{{X: 1, Y: 0}, {X: 2, Y: 0}})
	if got := a.Intersect(b); !got.Equal(want) {
		t.Errorf("Intersect = %v, want %v", got.Points(), want.Points())
	}

	// Intersection is commutative.
	if !a.Intersect(b).Equal(b.Intersect(a)) {
		t.Error("Intersect should be commutative")
	}
}

func TestPointSetUnion(t *testing.T) {
	a := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}})
	b := NewPointSet([]Point2D{{X: 1, Y: 0}, {X: 2, Y: 0}})

	want := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	if got := a.Union(b); !got.Equal(want) {
		t.Errorf("Union = %v, want %v", got.Points(), want.Points())
	}
	if !a.Union(b).Equal(b.Union(a)) {
		t.Error("Union should be commutative")
	}
}

func TestPointSetDifference(t *testing.T) {
	a := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	b := NewPointSet([]Point2D{{X: 1, Y: 0}, {X: 3, Y: 0}})

	want := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}})
	if got := a.Difference(b); !got.Equal(want) {
		t.Errorf("Difference = %v, want %v", got.Points(), want.Points())
	}

	if got := a.Difference(a); got.Len() != 0 {
		t.Errorf("set minus itself has %d points, want 0", got.Len())
	}
	if got := a.Difference(NewPointSet[Point2D](nil)); !got.Equal(a) {
		t.Error("set minus the empty set should equal the set")
	}
}

func TestPointSetFindIndex(t *testing.T) {
	pointSet := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})

	tests := []struct {
		name      string
		point     Point2D
		wantIdx   int
		wantFound bool
	}{
		{name: "first", point: Point2D{X: 0, Y: 0}, wantIdx: 0, wantFound: true},
		{name: "last", point: Point2D{X: 2, Y: 0}, wantIdx: 2, wantFound: true},
		{name: "absent inside range", point: Point2D{X: 1, Y: 5}, wantIdx: 2, wantFound: false},
		{name: "absent past end", point: Point2D{X: 9, Y: 0}, wantIdx: 3, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, found := pointSet.FindIndex(tt.point)
			if idx != tt.wantIdx || found != tt.wantFound {
				t.Errorf("FindIndex(%v) = %d, %v, want %d, %v",
					tt.point, idx, found, tt.wantIdx, tt.wantFound)
			}
		})
	}
}

func TestPointSetEqual(t *testing.T) {
	a := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}})
	b := NewPointSet([]Point2D{{X: 1, Y: 0}, {X: 0, Y: 0}})
	c := NewPointSet([]Point2D{{X: 0, Y: 0}})

	if !a.Equal(b) {
		t.Error("sets with the same points should be equal regardless of input order")
	}
	if a.Equal(c) {
		t.Error("sets of different size should not be equal")
	}
}
