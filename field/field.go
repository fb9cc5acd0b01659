package field

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
)

// Field is the set of integers modulo a prime. It is a factory for
// elements of that field, in the same way a group hands out scalars.
// Obtain one from [NewField], [BabyBear] or [KoalaBear]; methods on the
// zero Field return [ErrInvalidModulus].
//
// A Field is read-only after construction and safe for concurrent use.
type Field struct {
	prime int32
}

// NewField returns the field of integers modulo prime.
// It returns [ErrInvalidModulus] if prime is smaller than 2 and
// [ErrNotPrime] if prime is composite.
func NewField(prime int32) (*Field, error) {
	if prime < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidModulus, prime)
	}
	// ProbablyPrime(0) runs Baillie-PSW, which has no known
	// counterexample below 2^64.
	if !big.NewInt(int64(prime)).ProbablyPrime(0) {
		return nil, fmt.Errorf("%w: %d", ErrNotPrime, prime)
	}
	return &Field{prime: prime}, nil
}

// Prime returns the field modulus.
func (f *Field) Prime() int32 {
	return f.prime
}

// valid rejects a Field that was not built by NewField or a preset.
func (f *Field) valid() error {
	if f.prime < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidModulus, f.prime)
	}
	return nil
}

// Zero returns the additive identity.
func (f *Field) Zero() (Element, error) {
	if err := f.valid(); err != nil {
		return Element{}, err
	}
	return New(0, f.prime)
}

// One returns the multiplicative identity.
func (f *Field) One() (Element, error) {
	if err := f.valid(); err != nil {
		return Element{}, err
	}
	return New(1, f.prime)
}

// Element returns num as an element of f.
// It returns a [*RangeError] if num is outside [0, prime).
func (f *Field) Element(num int32) (Element, error) {
	if err := f.valid(); err != nil {
		return Element{}, err
	}
	return New(num, f.prime)
}

// Reduce returns the canonical residue of v modulo the field prime.
// Unlike [Field.Element], any integer is accepted, including negative ones.
func (f *Field) Reduce(v int64) (Element, error) {
	if err := f.valid(); err != nil {
		return Element{}, err
	}
	r := v % int64(f.prime)
	if r < 0 {
		r += int64(f.prime)
	}
	return New(int32(r), f.prime)
}

// Contains reports whether e is an element of f.
func (f *Field) Contains(e Element) bool {
	return f.valid() == nil && e.prime == f.prime
}

// Random reads 8 bytes from r and reduces them modulo the field prime.
// The bias of the reduction is below 2^-32.
func (f *Field) Random(r io.Reader) (Element, error) {
	if err := f.valid(); err != nil {
		return Element{}, err
	}
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Element{}, fmt.Errorf("field: read randomness: %w", err)
	}
	v := binary.BigEndian.Uint64(buf[:]) % uint64(f.prime)
	return New(int32(v), f.prime)
}

// HashToElement hashes data to an element of f using the default
// [Hasher]. Multiple byte slices are absorbed in order.
func (f *Field) HashToElement(data ...[]byte) (Element, error) {
	return defaultHasher.Hash(f, "h2f", data...)
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(%d)", f.prime)
}
