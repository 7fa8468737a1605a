package motif

import "testing"

func TestPoint2DArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b Point2D
		sum  Point2D
		diff Point2D
	}{
		{
			name: "positive components",
			a:    Point2D{X: 1, Y: 2},
			b:    Point2D{X: 3, Y: 4},
			sum:  Point2D{X: 4, Y: 6},
			diff: Point2D{X: -2, Y: -2},
		},
		{
			name: "negative components",
			a:    Point2D{X: -1.5, Y: 2},
			b:    Point2D{X: 0.5, Y: -2},
			sum:  Point2D{X: -1, Y: 0},
			diff: Point2D{X: -2, Y: 4},
		},
		{
			name: "zero operand",
			a:    Point2D{X: 7, Y: -3},
			b:    Point2D{},
			sum:  Point2D{X: 7, Y: -3},
			diff: Point2D{X: 7, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.sum {
				t.Errorf("Add = %v, want %v", got, tt.sum)
			}
			if got := tt.a.Sub(tt.b); got != tt.diff {
				t.Errorf("Sub = %v, want %v", got, tt.diff)
			}
		})
	}
}

func TestPoint2DScale(t *testing.T) {
	p := Point2D{X: 2, Y: -3}

	if got := p.Scale(2); got != (Point2D{X: 4, Y: -6}) {
		t.Errorf("Scale(2) = %v, want (4, -6)", got)
	}
	if got := p.Scale(-1); got != (Point2D{X: -2, Y: 3}) {
		t.Errorf("Scale(-1) = %v, want (-2, 3)", got)
	}
}

func TestPoint2DCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Point2D
		want int
	}{
		{name: "equal", a: Point2D{X: 1, Y: 2}, b: Point2D{X: 1, Y: 2}, want: 0},
		{name: "smaller first component", a: Point2D{X: 0, Y: 9}, b: Point2D{X: 1, Y: 0}, want: -1},
		{name: "greater first component", a: Point2D{X: 2, Y: 0}, b: Point2D{X: 1, Y: 9}, want: 1},
		{name: "tie broken by second component", a: Point2D{X: 1, Y: 1}, b: Point2D{X: 1, Y: 2}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPoint2DIsZero(t *testing.T) {
	if !(Point2D{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if (Point2D{X: 0, Y: 1}).IsZero() {
		t.Error("(0, 1) should not report IsZero")
	}
}

func TestPoint2DComponents(t *testing.T) {
	p := Point2D{X: 1.5, Y: 60}

	if p.Dimensionality() != 2 {
		t.Errorf("Dimensionality = %d, want 2", p.Dimensionality())
	}

	x, ok := p.Component(0)
	if !ok || x != 1.5 {
		t.Errorf("Component(0) = %v, %v, want 1.5, true", x, ok)
	}
	y, ok := p.Component(1)
	if !ok || y != 60 {
		t.Errorf("Component(1) = %v, %v, want 60, true", y, ok)
	}
	if _, ok := p.Component(2); ok {
		t.Error("Component(2) should report out of range")
	}
}

func TestRoundedPoint2DRoundsOnset(t *testing.T) {
	// Two different arithmetic paths to one third must produce equal points.
	a := NewRoundedPoint2D(1.0/3.0, 60)
	b := NewRoundedPoint2D(1.0-2.0/3.0, 60)

	if a != b {
		t.Errorf("onsets computed along different paths differ: %v vs %v", a, b)
	}
	if a.Compare(b) != 0 {
		t.Errorf("Compare = %d, want 0", a.Compare(b))
	}
}

func TestRoundedPoint2DArithmeticRerounds(t *testing.T) {
	third := NewRoundedPoint2D(1.0/3.0, 0)

	// 1/3 + 1/3 + 1/3 must land exactly on 1.
	sum := third.Add(third).Add(third)
	want := NewRoundedPoint2D(1, 0)
	if sum != want {
		t.Errorf("summed thirds = %v, want %v", sum, want)
	}

	if got := NewRoundedPoint2D(1, 0).Sub(third).Sub(third); got != third {
		t.Errorf("1 - 1/3 - 1/3 = %v, want %v", got, third)
	}
}

func TestRoundedPoint2DAsMapKey(t *testing.T) {
	// Rounded points hash consistently with equality, so equivalent onsets
	// collapse to one map entry.
	counts := make(map[RoundedPoint2D]int)
	counts[NewRoundedPoint2D(1.0/3.0, 60)]++
	counts[NewRoundedPoint2D(2.0/3.0-1.0/3.0, 60)]++

	if len(counts) != 1 {
		t.Fatalf("map has %d entries, want 1", len(counts))
	}
	for _, count := range counts {
		if count != 2 {
			t.Errorf("count = %d, want 2", count)
		}
	}
}

func TestRoundedPoint2DAccessors(t *testing.T) {
	p := NewRoundedPoint2D(0.123456789, 64)

	if p.X() != 0.12346 {
		t.Errorf("X = %v, want 0.12346", p.X())
	}
	if p.Y() != 64 {
		t.Errorf("Y = %v, want 64", p.Y())
	}
}

func TestIntPoint2DArithmetic(t *testing.T) {
	a := IntPoint2D{X: 3, Y: -2}
	b := IntPoint2D{X: 1, Y: 5}

	if got := a.Add(b); got != (IntPoint2D{X: 4, Y: 3}) {
		t.Errorf("Add = %v, want (4, 3)", got)
	}
	if got := a.Sub(b); got != (IntPoint2D{X: 2, Y: -7}) {
		t.Errorf("Sub = %v, want (2, -7)", got)
	}
}

func TestIntPoint2DScaleTruncatesFactor(t *testing.T) {
	p := IntPoint2D{X: 4, Y: -2}

	if got := p.Scale(2.9); got != (IntPoint2D{X: 8, Y: -4}) {
		t.Errorf("Scale(2.9) = %v, want (8, -4)", got)
	}
	if got := p.Scale(-1); got != (IntPoint2D{X: -4, Y: 2}) {
		t.Errorf("Scale(-1) = %v, want (-4, 2)", got)
	}
}

func TestIntPoint2DCompare(t *testing.T) {
	a := IntPoint2D{X: 1, Y: 2}
	b := IntPoint2D{X: 1, Y: 3}

	if a.Compare(b) >= 0 {
		t.Error("(1, 2) should order before (1, 3)")
	}
	if b.Compare(a) <= 0 {
		t.Error("(1, 3) should order after (1, 2)")
	}
	if a.Compare(a) != 0 {
		t.Error("point should compare equal to itself")
	}
}
