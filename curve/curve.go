package curve

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Curve holds the coefficients of y^2 = x^3 + A*x + B.
type Curve struct {
	A, B int32
}

// New returns the curve y^2 = x^3 + a*x + b.
func New(a, b int32) Curve {
	return Curve{A: a, B: b}
}

// Contains reports whether (x, y) satisfies the curve equation exactly.
func (c Curve) Contains(x, y int32) bool {
	return onCurve(x, y, c.A, c.B)
}

// Point returns (x, y) as a point of c.
// It returns a [*NotOnCurveError] if (x, y) is not on c.
func (c Curve) Point(x, y int32) (Point, error) {
	return NewPoint(x, y, c.A, c.B)
}

func (c Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %dx + %d", c.A, c.B)
}

// onCurve evaluates y^2 == x^3 + a*x + b in 256-bit two's complement.
// Every term is below 2^94 in magnitude, so wrapping arithmetic modulo
// 2^256 decides the integer equation exactly.
func onCurve(x, y, a, b int32) bool {
	X, Y, A, B := word(x), word(y), word(a), word(b)

	lhs := new(uint256.Int).Mul(Y, Y)

	rhs := new(uint256.Int).Mul(X, X)
	rhs.Mul(rhs, X)
	ax := new(uint256.Int).Mul(A, X)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, B)

	return lhs.Eq(rhs)
}

// word converts v to its two's complement 256-bit representation.
func word(v int32) *uint256.Int {
	if v >= 0 {
		return uint256.NewInt(uint64(v))
	}
	z := uint256.NewInt(uint64(-int64(v)))
	return z.Neg(z)
}
