package motif

import (
	"strings"
	"testing"
)

func TestReadPoints2D(t *testing.T) {
	input := "onset,pitch\n0.0,60\n1.5, 62\n2.25,64\n"

	points, err := ReadPoints2D(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Point2D{{X: 0, Y: 60}, {X: 1.5, Y: 62}, {X: 2.25, Y: 64}}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i, p := range want {
		if points[i] != p {
			t.Errorf("point %d = %v, want %v", i, points[i], p)
		}
	}
}

func TestReadPoints2DIgnoresExtraColumns(t *testing.T) {
	input := "onset,pitch,duration,voice\n0.0,60,1.0,1\n1.0,62,0.5,2\n"

	points, err := ReadPoints2D(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[1] != (Point2D{X: 1, Y: 62}) {
		t.Errorf("point 1 = %v, want (1, 62)", points[1])
	}
}

func TestReadPoints2DErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "non-numeric onset", input: "onset,pitch\nabc,60\n"},
		{name: "missing pitch column", input: "onset,pitch\n1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPoints2D(strings.NewReader(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestReadPoints2DEmptyInput(t *testing.T) {
	points, err := ReadPoints2D(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("got %d points, want 0", len(points))
	}
}

func TestReadRoundedPoints2D(t *testing.T) {
	input := "onset,pitch\n0.333333333333,60\n0.666666666667,62\n"

	points, err := ReadRoundedPoints2D(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0] != NewRoundedPoint2D(1.0/3.0, 60) {
		t.Errorf("point 0 = %v, want rounded 1/3", points[0])
	}
}

func TestReadIntPoints2D(t *testing.T) {
	input := "tatum,pitch\n0,60\n4,62\n8,64\n"

	points, err := ReadIntPoints2D(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []IntPoint2D{{X: 0, Y: 60}, {X: 4, Y: 62}, {X: 8, Y: 64}}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i, p := range want {
		if points[i] != p {
			t.Errorf("point %d = %v, want %v", i, points[i], p)
		}
	}
}

func TestReadIntPoints2DRejectsFloats(t *testing.T) {
	input := "tatum,pitch\n0.5,60\n"
	if _, err := ReadIntPoints2D(strings.NewReader(input)); err == nil {
		t.Error("expected an error for a non-integer onset")
	}
}
