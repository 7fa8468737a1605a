package motif

import "testing"

func TestDiffIndexBackendsAgree(t *testing.T) {
	pointSet := benchmarkPointSet(60)
	const maxIOI = 4.0

	sorted := newSortedDiffIndex(pointSet, maxIOI)
	hashed := newHashDiffIndex(pointSet, maxIOI)

	// Every indexed difference must resolve identically in both backends.
	for _, group := range sorted.groups {
		pairs, ok := hashed.lookup(group.vec)
		if !ok {
			t.Fatalf("hash index missing difference %v", group.vec)
		}
		if len(pairs) != len(group.pairs) {
			t.Fatalf("difference %v: hash index has %d pairs, sorted index has %d",
				group.vec, len(pairs), len(group.pairs))
		}
		for i := range pairs {
			if pairs[i] != group.pairs[i] {
				t.Errorf("difference %v pair %d: %v vs %v", group.vec, i, pairs[i], group.pairs[i])
			}
		}
	}

	if len(hashed.groups) != len(sorted.groups) {
		t.Errorf("hash index has %d groups, sorted index has %d", len(hashed.groups), len(sorted.groups))
	}
}

func TestDiffIndexRespectsIOIBound(t *testing.T) {
	pointSet := NewPointSet([]Point2D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 0},
	})

	index := newSortedDiffIndex(pointSet, 2)

	if _, ok := index.lookup(Point2D{X: 1, Y: 0}); !ok {
		t.Error("difference within the bound should be indexed")
	}
	if _, ok := index.lookup(Point2D{X: 5, Y: 0}); ok {
		t.Error("difference beyond the bound should not be indexed")
	}
	if _, ok := index.lookup(Point2D{X: 4, Y: 0}); ok {
		t.Error("difference beyond the bound should not be indexed")
	}
}

func TestDiffIndexPairOrdering(t *testing.T) {
	pointSet := NewPointSet([]Point2D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
	})

	for name, index := range map[string]differenceIndex[Point2D]{
		"sorted": newSortedDiffIndex(pointSet, 2),
		"hash":   newHashDiffIndex(pointSet, 2),
	} {
		t.Run(name, func(t *testing.T) {
			pairs, ok := index.lookup(Point2D{X: 1, Y: 0})
			if !ok {
				t.Fatal("difference (1, 0) should be indexed")
			}
			want := []indexPair{{source: 0, target: 1}, {source: 1, target: 2}, {source: 2, target: 3}}
			if len(pairs) != len(want) {
				t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
			}
			for i := range want {
				if pairs[i] != want[i] {
					t.Errorf("pair %d = %v, want %v", i, pairs[i], want[i])
				}
			}
		})
	}
}

func TestMustLookupPanicsOnMiss(t *testing.T) {
	pointSet := NewPointSet([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}})
	index := newHashDiffIndex(pointSet, 2)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unindexed difference")
		}
	}()
	mustLookup(index, Point2D{X: 7, Y: 7})
}
