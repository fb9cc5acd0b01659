package curve

import (
	"errors"
	"fmt"
)

// ErrNotOnCurve is matched by errors reporting coordinates that do not
// satisfy the curve equation.
var ErrNotOnCurve = errors.New("curve: point is not on the curve")

// NotOnCurveError reports the rejected coordinates and the curve they
// were checked against.
type NotOnCurveError struct {
	X, Y int32
	A, B int32
}

func (e *NotOnCurveError) Error() string {
	return fmt.Sprintf("curve: (%d, %d) is not on the curve y^2 = x^3 + %dx + %d", e.X, e.Y, e.A, e.B)
}

func (e *NotOnCurveError) Unwrap() error {
	return ErrNotOnCurve
}
