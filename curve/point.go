package curve

import (
	"fmt"
)

// Point is a pair of integer coordinates on the curve
// y^2 = x^3 + a*x + b. The only way to obtain a non-zero Point is
// [NewPoint] (or [Curve.Point]), which rejects off-curve coordinates.
//
// Points are immutable values and safe to share between goroutines.
type Point struct {
	x, y int32
	a, b int32
}

// NewPoint returns the point (x, y) on the curve with coefficients a and b.
// It returns a [*NotOnCurveError] if y^2 != x^3 + a*x + b.
func NewPoint(x, y, a, b int32) (Point, error) {
	if !onCurve(x, y, a, b) {
		return Point{}, &NotOnCurveError{X: x, Y: y, A: a, B: b}
	}
	return Point{x: x, y: y, a: a, b: b}, nil
}

// X returns the x coordinate.
func (p Point) X() int32 { return p.x }

// Y returns the y coordinate.
func (p Point) Y() int32 { return p.y }

// A returns the linear coefficient of the curve.
func (p Point) A() int32 { return p.a }

// B returns the constant coefficient of the curve.
func (p Point) B() int32 { return p.b }

// Curve returns the curve p lies on.
func (p Point) Curve() Curve {
	return Curve{A: p.a, B: p.b}
}

// Equal reports whether p and q have the same coordinates on the same
// curve.
func (p Point) Equal(q Point) bool {
	return p.a == q.a && p.b == q.b && p.x == q.x && p.y == q.y
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%d,%d)_%d_%d", p.x, p.y, p.a, p.b)
}
