package field

import (
	"fmt"
)

// Element is a residue modulo a prime. The zero value is not a valid
// element; create elements with [New] or a [Field].
//
// Elements are immutable values and safe to share between goroutines.
type Element struct {
	num   int32
	prime int32
}

// New returns the element num of the field of integers modulo prime.
//
// It returns a [*RangeError] if num is outside [0, prime). The only
// in-range value with a modulus below 2 is New(0, 1), which returns
// [ErrInvalidModulus]. New does not check that prime is prime; use
// [NewField] for that.
func New(num, prime int32) (Element, error) {
	if num < 0 || num >= prime {
		return Element{}, &RangeError{Num: num, Prime: prime}
	}
	if prime < 2 {
		return Element{}, fmt.Errorf("%w: got %d", ErrInvalidModulus, prime)
	}
	return Element{num: num, prime: prime}, nil
}

// Num returns the canonical residue in [0, prime).
func (e Element) Num() int32 {
	return e.num
}

// Prime returns the modulus of the field e belongs to.
func (e Element) Prime() int32 {
	return e.prime
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.num == 0
}

// Equal reports whether e and b have the same residue in the same field.
// Elements of different fields are never equal.
func (e Element) Equal(b Element) bool {
	return e.num == b.num && e.prime == b.prime
}

// String returns the display form "FieldElement <num> (<prime>)".
func (e Element) String() string {
	return fmt.Sprintf("FieldElement %d (%d)", e.num, e.prime)
}

// valid rejects the zero Element, whose modulus would divide by zero.
func (e Element) valid() error {
	if e.prime < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidModulus, e.prime)
	}
	return nil
}

func (e Element) sameField(op string, b Element) error {
	if err := e.valid(); err != nil {
		return err
	}
	if e.prime != b.prime {
		return &MismatchError{Op: op, Left: e.prime, Right: b.prime}
	}
	return nil
}

// Add returns e + b.
func (e Element) Add(b Element) (Element, error) {
	if err := e.sameField("add", b); err != nil {
		return Element{}, err
	}
	// the sum of two residues can exceed MaxInt32 for large primes
	sum := (int64(e.num) + int64(b.num)) % int64(e.prime)
	return New(int32(sum), e.prime)
}

// Sub returns e - b.
func (e Element) Sub(b Element) (Element, error) {
	if err := e.sameField("subtract", b); err != nil {
		return Element{}, err
	}
	diff := int64(e.num) - int64(b.num)
	if diff < 0 {
		diff += int64(e.prime)
	}
	return New(int32(diff), e.prime)
}

// Mul returns e * b.
func (e Element) Mul(b Element) (Element, error) {
	if err := e.sameField("multiply", b); err != nil {
		return Element{}, err
	}
	return New(mulMod(e.num, b.num, e.prime), e.prime)
}

// Div returns e / b, computed as e * b^(p-2).
// It returns [ErrDivisionByZero] if b is zero.
func (e Element) Div(b Element) (Element, error) {
	if err := e.sameField("divide", b); err != nil {
		return Element{}, err
	}
	if b.IsZero() {
		return Element{}, ErrDivisionByZero
	}
	inv := expMod(b.num, int64(e.prime)-2, e.prime)
	return New(mulMod(e.num, inv, e.prime), e.prime)
}

// Pow returns e raised to exponent. Negative exponents are allowed: the
// exponent is first reduced into [0, p-2] using a^(p-1) = 1, so e.Pow(-1)
// is the inverse of a nonzero e.
//
// The reduction applies to every base. For zero this makes 0^n one when
// n is a multiple of p-1 and zero otherwise.
func (e Element) Pow(exponent int32) (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	return New(expMod(e.num, reduceExponent(exponent, e.prime), e.prime), e.prime)
}

// Neg returns the additive inverse -e.
func (e Element) Neg() (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	if e.num == 0 {
		return New(0, e.prime)
	}
	return New(e.prime-e.num, e.prime)
}

// Inverse returns the multiplicative inverse of e.
// It returns [ErrDivisionByZero] if e is zero.
func (e Element) Inverse() (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	if e.IsZero() {
		return Element{}, ErrDivisionByZero
	}
	return New(expMod(e.num, int64(e.prime)-2, e.prime), e.prime)
}

// reduceExponent maps any exponent to its representative in [0, p-2].
// Adding multiples of p-1 to a negative exponent and then reducing
// modulo p-1 is the same as a single floor modulo.
func reduceExponent(exponent, prime int32) int64 {
	order := int64(prime) - 1
	exp := int64(exponent) % order
	if exp < 0 {
		exp += order
	}
	return exp
}

// mulMod returns a*b mod m. Both operands are below 2^31, so the product
// fits in 62 bits.
func mulMod(a, b, m int32) int32 {
	return int32(int64(a) * int64(b) % int64(m))
}

// expMod returns base^exp mod m by square-and-multiply. exp must be
// non-negative.
func expMod(base int32, exp int64, m int32) int32 {
	result := int32(1 % m)
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, b, m)
		}
		b = mulMod(b, b, m)
		exp >>= 1
	}
	return result
}
