package field

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by errors reporting a residue outside [0, prime).
	ErrOutOfRange = errors.New("field: element out of range")
	// ErrFieldMismatch is matched by errors from operations mixing two fields.
	ErrFieldMismatch = errors.New("field: elements belong to different fields")
	// ErrDivisionByZero is returned when the zero element would be inverted.
	ErrDivisionByZero = errors.New("field: division by zero")
	// ErrInvalidModulus is returned for a modulus smaller than 2.
	ErrInvalidModulus = errors.New("field: modulus must be at least 2")
	// ErrNotPrime is returned by NewField for a composite modulus.
	ErrNotPrime = errors.New("field: modulus is not prime")
)

// RangeError reports a residue that does not lie in [0, Prime).
type RangeError struct {
	Num   int32
	Prime int32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("field: num %d not in field range 0 to %d", e.Num, e.Prime-1)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// MismatchError reports a binary operation between elements of different
// fields. Op names the attempted operation ("add", "subtract", ...).
type MismatchError struct {
	Op    string
	Left  int32 // prime of the receiver
	Right int32 // prime of the argument
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("field: cannot %s two numbers in different fields (%d != %d)", e.Op, e.Left, e.Right)
}

func (e *MismatchError) Unwrap() error {
	return ErrFieldMismatch
}
