package curve

import (
	"errors"
	"strings"
	"testing"
)

func mustPoint(t *testing.T, x, y, a, b int32) Point {
	t.Helper()
	p, err := NewPoint(x, y, a, b)
	if err != nil {
		t.Fatalf("NewPoint(%d, %d, %d, %d): %v", x, y, a, b, err)
	}
	return p
}

func TestNewPoint(t *testing.T) {
	t.Run("OnCurve", func(t *testing.T) {
		p := mustPoint(t, -1, -1, 5, 7)
		if p.X() != -1 || p.Y() != -1 || p.A() != 5 || p.B() != 7 {
			t.Errorf("accessors returned %v", p)
		}
	})

	t.Run("NotOnCurve", func(t *testing.T) {
		p, err := NewPoint(-1, -2, 5, 7)
		if !errors.Is(err, ErrNotOnCurve) {
			t.Fatalf("expected ErrNotOnCurve, got %v", err)
		}
		if p != (Point{}) {
			t.Errorf("rejected construction returned %v", p)
		}

		var notOnCurve *NotOnCurveError
		if !errors.As(err, &notOnCurve) {
			t.Fatalf("expected *NotOnCurveError, got %T", err)
		}
		if *notOnCurve != (NotOnCurveError{X: -1, Y: -2, A: 5, B: 7}) {
			t.Errorf("unexpected error fields %+v", *notOnCurve)
		}
		if !strings.Contains(err.Error(), "(-1, -2) is not on the curve") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}

func TestContains(t *testing.T) {
	tests := []struct {
		name       string
		x, y, a, b int32
		want       bool
	}{
		{"Small", 2, 5, 5, 7, true},
		{"SmallNegativeY", 2, -5, 5, 7, true},
		{"Larger", 18, 77, 5, 7, true},
		{"Off", 5, 7, 5, 7, false},
		{"Origin", 0, 0, 0, 0, true},
		// int32 evaluation would overflow on both sides
		{"Wide", 1 << 20, 1 << 30, 0, 0, true},
		{"WideNegative", 1 << 20, -(1 << 30), 0, 0, true},
		{"WideWithCoefficients", 1000, 31623, 0, 14129, true},
		// x^3 = 2^33 and 2^66 vanish modulo 2^32 and 2^64
		{"Wraps32", 1 << 11, 0, 0, 0, false},
		{"Wraps64", 1 << 22, 0, 0, 0, false},
		{"Extremes", -2147483648, 2147483647, -2147483648, 2147483647, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.a, tc.b)
			if got := c.Contains(tc.x, tc.y); got != tc.want {
				t.Fatalf("Contains(%d, %d) = %v on %v", tc.x, tc.y, got, c)
			}

			p, err := c.Point(tc.x, tc.y)
			if tc.want {
				if err != nil {
					t.Fatal(err)
				}
				if p.Curve() != c {
					t.Errorf("point reports curve %v, want %v", p.Curve(), c)
				}
			} else if !errors.Is(err, ErrNotOnCurve) {
				t.Errorf("expected ErrNotOnCurve, got %v", err)
			}
		})
	}
}

func TestPointEqual(t *testing.T) {
	p := mustPoint(t, 18, 77, 5, 7)
	q := mustPoint(t, 18, 77, 5, 7)
	r := mustPoint(t, -1, -1, 5, 7)

	if !p.Equal(q) {
		t.Error("points with identical fields should be equal")
	}
	if p.Equal(r) {
		t.Error("points with different coordinates should not be equal")
	}

	t.Run("DifferentA", func(t *testing.T) {
		// 0^2 = 0^3 + a*0 + 0 for any a
		s := mustPoint(t, 0, 0, 1, 0)
		u := mustPoint(t, 0, 0, 2, 0)
		if s.Equal(u) {
			t.Error("points on curves with different a should not be equal")
		}
	})

	t.Run("DifferentB", func(t *testing.T) {
		// 25 = 8 + 10 + 7 = 8 + 8 + 9
		s := mustPoint(t, 2, 5, 5, 7)
		u := mustPoint(t, 2, 5, 4, 9)
		if s.Equal(u) {
			t.Error("points on curves with different b should not be equal")
		}
	})

	t.Run("OnlyBDiffers", func(t *testing.T) {
		// x, y and a fix b on a valid point, so compare the fields directly
		s := mustPoint(t, 2, 5, 5, 7)
		u := Point{x: 2, y: 5, a: 5, b: 8}
		if s.Equal(u) || u.Equal(s) {
			t.Error("Equal should compare b")
		}
	})
}

func TestString(t *testing.T) {
	p := mustPoint(t, -1, -1, 5, 7)
	if got := p.String(); got != "Point(-1,-1)_5_7" {
		t.Errorf("got %q", got)
	}
	if got := p.Curve().String(); got != "y^2 = x^3 + 5x + 7" {
		t.Errorf("got %q", got)
	}
}
