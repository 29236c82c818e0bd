/*
Package amount implements exact financial quantities in two representations:
a continuous arbitrary-precision decimal and a discrete count of indivisible
units at a given basis.
It leverages the [decimal] package for arbitrary-precision arithmetic and
reports every value discarded by rounding to a caller-supplied policy.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Exact decimal addition, subtraction, and multiplication
  - Conversion to any positive basis with an explicit remainder
  - Comparison across representations by exact numeric value
  - Per-amount working precision and rounding mode, without global state

# Representation

[DecimalAmount] wraps a [decimal.Decimal]: an unbounded integer coefficient
and an exponent. [DiscreteAmount] holds an int64 count and a [Basis], the
number of units per whole; a count of 150 at basis 100 represents 1.50.
Both implement the [Amount] interface and are bound to a [Context] holding
the working precision (16 significant digits by default) and the default
[RoundingMode].

# Remainders

Whenever a value must be rounded to fit its destination, the caller passes a
[RemainderHandler]. The handler chooses the rounding mode and is called
exactly once with the result and the signed remainder, the original value
minus the result:

	var acc amount.Accumulator
	d, err := amount.MustParseDecimalAmount("1.005").ToBasis(100, &acc)
	// d = 1.00, acc.Total() = 0.005

[Accumulator], [Discard], [HandlerFunc], and [LogHandler] cover common
policies.

# Division by zero

Inversion and division by zero return zero instead of failing, so that
arithmetic pipelines stay total.

# Errors

Errors belong to one of the classes [BasisMismatch], [Overflow],
[InvalidBasis], or [Inexact], and are wrapped with the failing expression:

	computing [9223372036854775807 + 1]: amount overflow: ...

# Fixed-point interop

[NewDecimalAmountFromFixed], [NewDiscreteAmountFromFixed], and the Fixed
methods convert to and from the 19-digit fixed-point
[github.com/govalues/decimal.Decimal], for callers that store or exchange values in
that format. Conversions fail with [Overflow] or [InvalidBasis] when a value
does not fit.

# Persistence

Amounts have no mutable state. Persistence code that needs to fill in a
value after construction uses [DecimalRecord], which implements
[database/sql.Scanner] and [database/sql/driver.Valuer], or [Rehydrate].
*/
package amount
