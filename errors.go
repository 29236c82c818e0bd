package amount

import "github.com/zeebo/errs"

// Error classes returned by this package.
// Use the Has method of a class to test an error, for example
// BasisMismatch.Has(err).
var (
	// BasisMismatch is returned when an operation requires a particular basis
	// and the amount does not have it, including every basis assertion on a
	// DecimalAmount, which has no intrinsic basis.
	BasisMismatch = errs.Class("basis mismatch")

	// Overflow is returned when a count of smallest units does not fit into
	// an int64, or a value does not fit into a fixed-point decimal.
	Overflow = errs.Class("amount overflow")

	// InvalidBasis is returned for a basis that is not a positive integer.
	InvalidBasis = errs.Class("invalid basis")

	// Inexact is returned when the Unnecessary rounding mode is asked to
	// discard a non-zero fraction.
	Inexact = errs.Class("inexact result")
)
