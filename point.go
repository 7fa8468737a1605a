// Package motif implements point-set pattern discovery for symbolic music.
//
// WHAT IS POINT-SET PATTERN DISCOVERY?
// A piece of music can be represented as a set of points in a plane, most
// commonly (onset time, pitch) pairs. Repeated musical material then shows up
// as a geometric regularity: a group of points that reappears elsewhere in the
// set, shifted by a fixed translation vector. The algorithms in this package
// find such repetitions without any prior knowledge of what the repeated
// material looks like or where it occurs.
//
// The point types in this file are the foundation of the package. Points
// behave mathematically as vectors: they support addition, subtraction,
// scalar multiplication, and total lexicographic ordering. Multiple concrete
// representations coexist behind the Point interface so that the same
// algorithms can run on exact floating-point data, on onset-rounded data
// (tolerant of tuplet rounding noise), and on integer data.
package motif

import "math"

// Point is the capability set shared by all concrete point types.
//
// The interface is self-referential: a concrete type C implements Point[C].
// All containers in this package (Pattern, PointSet, Tec) are generic over
// this interface rather than over any fixed concrete type.
//
// Implementations must be comparable value types. Comparability gives the
// algorithms a hash consistent with equality for free: points and difference
// vectors can be used directly as map keys.
type Point[P any] interface {
	comparable

	// Add returns the component-wise sum of this point and other.
	Add(other P) P

	// Sub returns the component-wise difference of this point and other.
	Sub(other P) P

	// Scale returns this point with every component multiplied by factor.
	Scale(factor float64) P

	// Compare orders points lexicographically: component 0 is compared
	// first, then component 1, and so on. It returns a negative number if
	// this point is smaller than other, zero if they are equal, and a
	// positive number if this point is greater.
	Compare(other P) int

	// IsZero reports whether every component of this point is zero.
	IsZero() bool

	// Component returns the component at the given index as a float64.
	// The second return value is false if the index is out of range.
	Component(index int) (float64, bool)

	// Dimensionality returns the number of components in this point.
	Dimensionality() int
}

// Compile-time checks that the concrete point types satisfy Point. The
// constraint embeds comparable, so the check instantiates a constrained
// function instead of declaring interface-typed variables.
func assertPoint[P Point[P]]() {}

var (
	_ = assertPoint[Point2D]
	_ = assertPoint[RoundedPoint2D]
	_ = assertPoint[IntPoint2D]
)

// compareFloat2 orders two float pairs lexicographically.
func compareFloat2(ax, ay, bx, by float64) int {
	switch {
	case ax < bx:
		return -1
	case ax > bx:
		return 1
	case ay < by:
		return -1
	case ay > by:
		return 1
	default:
		return 0
	}
}

// Point2D is a two-dimensional point with exact float64 components.
// The first component is conventionally the onset time and the second
// the pitch, but nothing in the algorithms depends on that reading.
type Point2D struct {
	// X is the first (onset) coordinate of the point.
	X float64
	// Y is the second (pitch) coordinate of the point.
	Y float64
}

// Add returns the component-wise sum of p and other.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference of p and other.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p with both components multiplied by factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Compare orders points lexicographically, X first, then Y.
func (p Point2D) Compare(other Point2D) int {
	return compareFloat2(p.X, p.Y, other.X, other.Y)
}

// IsZero reports whether both components are zero.
func (p Point2D) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Component returns the component at the given index, or false
// if the index is out of range.
func (p Point2D) Component(index int) (float64, bool) {
	switch index {
	case 0:
		return p.X, true
	case 1:
		return p.Y, true
	default:
		return 0, false
	}
}

// Dimensionality returns 2.
func (p Point2D) Dimensionality() int {
	return 2
}

// roundedPrecision is the scale at which RoundedPoint2D onsets are rounded:
// five decimal places, fine enough to keep distinct note onsets apart and
// coarse enough to absorb the rounding noise of tuplet divisions.
const roundedPrecision = 100000.0

func roundOnset(v float64) float64 {
	return math.Round(v*roundedPrecision) / roundedPrecision
}

// RoundedPoint2D is a two-dimensional point whose first (onset) component is
// rounded to five decimal places on construction and after every arithmetic
// operation. Tuplet rhythms produce onsets like 1/3 that cannot be
// represented exactly in binary floating point; rounding makes two such
// onsets compare equal even when they were computed along different paths.
//
// The rounded value is the point's identity: equality, ordering, and map-key
// hashing all agree on it. Construct values with NewRoundedPoint2D so the
// invariant holds.
type RoundedPoint2D struct {
	x float64
	y float64
}

// NewRoundedPoint2D returns a point with the onset rounded to five
// decimal places.
func NewRoundedPoint2D(x, y float64) RoundedPoint2D {
	return RoundedPoint2D{x: roundOnset(x), y: y}
}

// X returns the rounded onset coordinate of the point.
func (p RoundedPoint2D) X() float64 {
	return p.x
}

// Y returns the second coordinate of the point.
func (p RoundedPoint2D) Y() float64 {
	return p.y
}

// Add returns the component-wise sum of p and other, with the onset
// re-rounded to keep the representation canonical.
func (p RoundedPoint2D) Add(other RoundedPoint2D) RoundedPoint2D {
	return NewRoundedPoint2D(p.x+other.x, p.y+other.y)
}

// Sub returns the component-wise difference of p and other, with the onset
// re-rounded to keep the representation canonical.
func (p RoundedPoint2D) Sub(other RoundedPoint2D) RoundedPoint2D {
	return NewRoundedPoint2D(p.x-other.x, p.y-other.y)
}

// Scale returns p with both components multiplied by factor.
func (p RoundedPoint2D) Scale(factor float64) RoundedPoint2D {
	return NewRoundedPoint2D(p.x*factor, p.y*factor)
}

// Compare orders points lexicographically on (rounded onset, Y).
func (p RoundedPoint2D) Compare(other RoundedPoint2D) int {
	return compareFloat2(p.x, p.y, other.x, other.y)
}

// IsZero reports whether both components are zero.
func (p RoundedPoint2D) IsZero() bool {
	return p.x == 0 && p.y == 0
}

// Component returns the component at the given index, or false
// if the index is out of range. Index 0 is the rounded onset.
func (p RoundedPoint2D) Component(index int) (float64, bool) {
	switch index {
	case 0:
		return p.x, true
	case 1:
		return p.y, true
	default:
		return 0, false
	}
}

// Dimensionality returns 2.
func (p RoundedPoint2D) Dimensionality() int {
	return 2
}

// IntPoint2D is a two-dimensional point with integer components, suitable
// for data such as (tatum index, MIDI pitch) where coordinates are exact.
type IntPoint2D struct {
	// X is the first (onset) coordinate of the point.
	X int64
	// Y is the second (pitch) coordinate of the point.
	Y int64
}

// Add returns the component-wise sum of p and other.
func (p IntPoint2D) Add(other IntPoint2D) IntPoint2D {
	return IntPoint2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference of p and other.
func (p IntPoint2D) Sub(other IntPoint2D) IntPoint2D {
	return IntPoint2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p with both components multiplied by the integer part
// of factor.
func (p IntPoint2D) Scale(factor float64) IntPoint2D {
	f := int64(factor)
	return IntPoint2D{X: p.X * f, Y: p.Y * f}
}

// Compare orders points lexicographically, X first, then Y.
func (p IntPoint2D) Compare(other IntPoint2D) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether both components are zero.
func (p IntPoint2D) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Component returns the component at the given index converted to float64,
// or false if the index is out of range.
func (p IntPoint2D) Component(index int) (float64, bool) {
	switch index {
	case 0:
		return float64(p.X), true
	case 1:
		return float64(p.Y), true
	default:
		return 0, false
	}
}

// Dimensionality returns 2.
func (p IntPoint2D) Dimensionality() int {
	return 2
}
