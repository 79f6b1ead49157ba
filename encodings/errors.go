package encodings

import "errors"

var (
	// ErrBadConfig is returned by New for a dimension count other than 7, 8 or 9.
	ErrBadConfig = errors.New("unsupported dimension count")

	// ErrBadDim signals a dimension index >= MaxDims.
	ErrBadDim = errors.New("dimension index out of range")

	// ErrUninvertible signals a modular inverse of a multiple of PMod.
	ErrUninvertible = errors.New("uninvertible residue modulo PMod")

	// ErrUnification signals two operands that carry a non-zero exponent in the
	// same dimension but disagree on its unit.
	ErrUnification = errors.New("unit unification failed")

	// ErrUnitMismatch signals an addition, subtraction or comparison of
	// quantities expressed in different units of a shared dimension.
	ErrUnitMismatch = errors.New("operands expressed in different units")

	// ErrDecodeExhausted signals a residue that no rational of height up to
	// MaxHeight encodes to. Such a residue can only be produced by driving an
	// exponent vector outside the encoding's valid operating range.
	ErrDecodeExhausted = errors.New("no rational within MaxHeight matches residue")
)
