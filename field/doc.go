// Package field implements arithmetic over prime fields whose modulus fits
// in a signed 32-bit integer.
//
// The package provides two types:
//
//   - [Element]: an immutable residue modulo a prime, with addition,
//     subtraction, multiplication, division and exponentiation
//   - [Field]: a factory bound to one prime, used to create, reduce, sample
//     and hash elements
//
// # Arithmetic
//
// Every operation returns a new validated [Element]; operands are never
// modified. Binary operations require both operands to belong to the same
// field and return a [*MismatchError] otherwise:
//
//	a, _ := field.New(7, 13)
//	b, _ := field.New(12, 13)
//	c, err := a.Add(b) // FieldElement 6 (13)
//
// Intermediate products are computed in 64 bits, so primes close to 2^31
// are handled without overflow. Division and negative exponents use
// Fermat's little theorem: for a prime p and nonzero a, a^(p-1) = 1, so
// a^-1 = a^(p-2).
//
// # Errors
//
// Construction and arithmetic report precondition violations as errors
// rather than panicking. Use [errors.Is] with [ErrOutOfRange],
// [ErrFieldMismatch] or [ErrDivisionByZero] to classify them, or
// [errors.As] with [*RangeError] and [*MismatchError] to inspect the
// offending values.
//
// # Presets
//
// [BabyBear] and [KoalaBear] return fields for the 31-bit primes used by
// STARK provers. Their moduli are taken from gnark-crypto.
package field
