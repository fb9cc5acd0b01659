// Package curve validates points on short Weierstrass curves over the
// integers.
//
// A curve is given by its coefficients a and b:
//
//	y^2 = x^3 + a*x + b
//
// [NewPoint] checks the equation with exact integer arithmetic and only
// returns a [Point] whose coordinates satisfy it, so a Point is on its
// curve for its whole lifetime:
//
//	p, err := curve.NewPoint(-1, -1, 5, 7) // ok
//	_, err = curve.NewPoint(-1, -2, 5, 7)  // *NotOnCurveError
//
// A point does not reference a separate curve object; two points are equal
// only if their coordinates and their coefficients all match.
//
// Point arithmetic (addition, doubling, scalar multiplication) and the
// point at infinity are not provided.
package curve
